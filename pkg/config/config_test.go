package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Pipeline: PipelineConfig{RetryAttempts: 3, RetryBaseDelay: 2 * time.Second},
			Queue:    QueueConfig{MaxRetries: 3},
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects out of range ports", func(t *testing.T) {
		for _, port := range []int{0, -1, 70000} {
			cfg := valid()
			cfg.Server.Port = port
			assert.Error(t, cfg.Validate(), "port %d", port)
		}
	})

	t.Run("auto-corrects non-positive retry attempts", func(t *testing.T) {
		cfg := valid()
		cfg.Pipeline.RetryAttempts = 0
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 3, cfg.Pipeline.RetryAttempts)
	})

	t.Run("auto-corrects non-positive queue retries", func(t *testing.T) {
		cfg := valid()
		cfg.Queue.MaxRetries = -1
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 3, cfg.Queue.MaxRetries)
	})
}

func TestSetDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, viper.GetInt("server.port"))
	assert.Equal(t, "./data/voicenote.db", viper.GetString("database.path"))
	assert.Equal(t, int64(52428800), viper.GetInt64("storage.max_upload_size"))
	assert.Equal(t, int64(26214400), viper.GetInt64("whisper.max_file_size"))
	assert.Equal(t, 0.006, viper.GetFloat64("whisper.cost_per_minute"))
	assert.Equal(t, 3, viper.GetInt("pipeline.retry_attempts"))
	assert.Equal(t, 2*time.Second, viper.GetDuration("pipeline.retry_base_delay"))
	assert.Equal(t, 3, viper.GetInt("queue.max_retries"))
	assert.True(t, viper.GetBool("rate_limiting.enabled"))
	assert.Equal(t, "info", viper.GetString("logging.level"))
}

func TestDefaultsUnmarshal(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	var cfg Config
	require.NoError(t, viper.Unmarshal(&cfg))

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "recordings", cfg.Storage.Bucket)
	assert.Equal(t, "whisper-1", cfg.Whisper.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "ffprobe", cfg.Pipeline.FFprobePath)
	assert.Equal(t, 20, cfg.RateLimiting.PremiumRPS)
	assert.NoError(t, cfg.Validate())
}
