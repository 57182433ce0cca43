package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Rice leaf detection specifics
	Classifier ClassifierConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ClassifierConfig points at the Gradio Space that does the actual inference.
type ClassifierConfig struct {
	SpaceID        string
	BaseURL        string // overrides the URL derived from SpaceID
	APIPrefix      string
	Endpoint       string
	HFToken        string
	RequestTimeout time.Duration
	MaxImageBytes  int64
	DedupTolerance float64
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// envFiles are loaded before viper reads the environment. Existing variables win.
var envFiles = []string{".env.local", ".env"}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Classifier
	cfg.Classifier.SpaceID = viper.GetString("classifier.space_id")
	cfg.Classifier.BaseURL = viper.GetString("classifier.base_url")
	cfg.Classifier.APIPrefix = viper.GetString("classifier.api_prefix")
	cfg.Classifier.Endpoint = viper.GetString("classifier.endpoint")
	cfg.Classifier.HFToken = viper.GetString("classifier.hf_token")
	if hfToken := viper.GetString("hf_token"); hfToken != "" {
		cfg.Classifier.HFToken = hfToken
	}
	cfg.Classifier.RequestTimeout = viper.GetDuration("classifier.request_timeout")
	cfg.Classifier.MaxImageBytes = viper.GetInt64("classifier.max_image_bytes")
	cfg.Classifier.DedupTolerance = viper.GetFloat64("classifier.dedup_tolerance")

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EffectiveRequestsPerMin returns the limit, or 0 when limiting is off.
func (c RateLimitConfig) EffectiveRequestsPerMin() int {
	if !c.Enabled {
		return 0
	}
	return c.RequestsPerMin
}

func (c *Config) validate() error {
	if c.Classifier.SpaceID == "" && c.Classifier.BaseURL == "" {
		return fmt.Errorf("classifier.space_id or classifier.base_url is required")
	}
	if c.Classifier.MaxImageBytes <= 0 {
		return fmt.Errorf("classifier.max_image_bytes must be positive")
	}
	if c.Classifier.DedupTolerance < 0 {
		return fmt.Errorf("classifier.dedup_tolerance must not be negative")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func loadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", f, err)
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Classifier defaults
	viper.SetDefault("classifier.space_id", "wilsondt/rice-disease-classification")
	viper.SetDefault("classifier.api_prefix", "/gradio_api")
	viper.SetDefault("classifier.endpoint", "/predict")
	viper.SetDefault("classifier.request_timeout", "3m") // Long enough for a Space cold start
	viper.SetDefault("classifier.max_image_bytes", 10<<20)
	viper.SetDefault("classifier.dedup_tolerance", 1e-6)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)
}
