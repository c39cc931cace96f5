package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		// Local development keys live in .env; missing file is fine
		_ = godotenv.Load()

		setDefaults()

		viper.SetEnvPrefix("VOICENOTE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file means defaults plus env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct invalid retry settings
	if viper.GetInt("pipeline.retry_attempts") <= 0 {
		viper.Set("pipeline.retry_attempts", 3)
	}
	if viper.GetInt("queue.max_retries") <= 0 {
		viper.Set("queue.max_retries", 3)
	}

	return nil
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	checks := map[string]string{
		"OpenAI API key":      viper.GetString("openai.api_key"),
		"Whisper API key":     viper.GetString("whisper.api_key"),
		"storage service key": viper.GetString("storage.api_key"),
	}

	for name, value := range checks {
		for _, placeholder := range placeholders {
			if value == placeholder {
				if isProduction {
					return fmt.Errorf("invalid %s: cannot use placeholder values in production", name)
				}
				fmt.Printf("Warning: %s is using a placeholder value\n", name)
				break
			}
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Pipeline.RetryAttempts <= 0 {
		c.Pipeline.RetryAttempts = 3
	}
	if c.Queue.MaxRetries <= 0 {
		c.Queue.MaxRetries = 3
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/voicenote.db")
	viper.SetDefault("database.verbose", false)

	// Object storage defaults
	viper.SetDefault("storage.url", "http://localhost:54321/storage/v1")
	viper.SetDefault("storage.bucket", "recordings")
	viper.SetDefault("storage.temp_dir", "./tmp")
	viper.SetDefault("storage.max_upload_size", 52428800) // 50 MiB
	viper.SetDefault("storage.timeout", 2*time.Minute)

	// Whisper defaults
	viper.SetDefault("whisper.api_url", "https://api.openai.com/v1/audio/transcriptions")
	viper.SetDefault("whisper.model", "whisper-1")
	viper.SetDefault("whisper.temperature", 0)
	viper.SetDefault("whisper.timeout", 5*time.Minute)
	viper.SetDefault("whisper.max_file_size", 26214400) // 25 MiB provider limit
	viper.SetDefault("whisper.cost_per_minute", 0.006)

	// Text generation defaults
	viper.SetDefault("openai.api_url", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.max_tokens", 4096)
	viper.SetDefault("openai.timeout", 2*time.Minute)
	viper.SetDefault("openai.input_token_cost", 0.00000015)
	viper.SetDefault("openai.output_token_cost", 0.0000006)

	// Pipeline defaults
	viper.SetDefault("pipeline.retry_attempts", 3)
	viper.SetDefault("pipeline.retry_base_delay", 2*time.Second)
	viper.SetDefault("pipeline.ffprobe_path", "ffprobe")

	// Offline queue defaults
	viper.SetDefault("queue.max_retries", 3)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.default_rps", 5)
	viper.SetDefault("rate_limiting.default_burst", 10)
	viper.SetDefault("rate_limiting.premium_rps", 20)
	viper.SetDefault("rate_limiting.premium_burst", 40)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
