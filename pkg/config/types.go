package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Storage      StorageConfig   `mapstructure:"storage"`
	Whisper      WhisperConfig   `mapstructure:"whisper"`
	OpenAI       OpenAIConfig    `mapstructure:"openai"`
	Pipeline     PipelineConfig  `mapstructure:"pipeline"`
	Queue        QueueConfig     `mapstructure:"queue"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig contains object storage settings
type StorageConfig struct {
	URL           string        `mapstructure:"url"`
	APIKey        string        `mapstructure:"api_key"`
	Bucket        string        `mapstructure:"bucket"`
	TempDir       string        `mapstructure:"temp_dir"`
	MaxUploadSize int64         `mapstructure:"max_upload_size"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// WhisperConfig contains speech-to-text API settings
type WhisperConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	APIURL        string        `mapstructure:"api_url"`
	Model         string        `mapstructure:"model"`
	Temperature   float64       `mapstructure:"temperature"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxFileSize   int64         `mapstructure:"max_file_size"`
	CostPerMinute float64       `mapstructure:"cost_per_minute"`
}

// OpenAIConfig contains text generation API settings
type OpenAIConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	APIURL          string        `mapstructure:"api_url"`
	Model           string        `mapstructure:"model"`
	MaxTokens       int           `mapstructure:"max_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"`
	InputTokenCost  float64       `mapstructure:"input_token_cost"`
	OutputTokenCost float64       `mapstructure:"output_token_cost"`
}

// PipelineConfig contains recording pipeline settings
type PipelineConfig struct {
	RetryAttempts  int           `mapstructure:"retry_attempts"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay"`
	FFprobePath    string        `mapstructure:"ffprobe_path"`
}

// QueueConfig contains offline queue settings
type QueueConfig struct {
	MaxRetries int `mapstructure:"max_retries"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	DefaultRPS   int  `mapstructure:"default_rps"`
	DefaultBurst int  `mapstructure:"default_burst"`
	PremiumRPS   int  `mapstructure:"premium_rps"`
	PremiumBurst int  `mapstructure:"premium_burst"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
