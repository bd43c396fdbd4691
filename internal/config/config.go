// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	// Server configuration
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`

	// Model configuration
	Model       string `mapstructure:"model"`
	InputName   string `mapstructure:"input_name"`
	OutputName  string `mapstructure:"output_name"`
	InputHeight int64  `mapstructure:"input_height"`
	InputWidth  int64  `mapstructure:"input_width"`
	ONNXLib     string `mapstructure:"onnx_lib"`

	// Result cache
	Redis    string        `mapstructure:"redis"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// OpenTelemetry configuration
	OTELEnabled  bool   `mapstructure:"otel_enabled"`
	OTELEndpoint string `mapstructure:"otel_endpoint"`

	// Feature flags
	UseMock  bool   `mapstructure:"use_mock"`
	LogLevel string `mapstructure:"log_level"`
}

// Load loads configuration from environment variables and an optional config
// file. Priority (highest to lowest): env vars > config file > defaults.
// Flag overrides are applied by the caller on top of the returned Config.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("port", 50051)
	v.SetDefault("metrics_port", 9100)
	v.SetDefault("model", "model.onnx")
	v.SetDefault("input_name", "")
	v.SetDefault("output_name", "")
	v.SetDefault("input_height", 0)
	v.SetDefault("input_width", 0)
	v.SetDefault("onnx_lib", "")
	v.SetDefault("redis", "")
	v.SetDefault("cache_ttl", "5m")
	v.SetDefault("otel_enabled", false)
	v.SetDefault("otel_endpoint", "")
	v.SetDefault("use_mock", false)
	v.SetDefault("log_level", "info")

	// Environment variable configuration
	v.SetEnvPrefix("MODEL_RUNNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also honor the standard OTEL exporter variable
	v.BindEnv("otel_endpoint", "MODEL_RUNNER_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")

	// Config file (optional)
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/model-runner/")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// Config file not found; ignore
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.OTELEndpoint != "" {
		cfg.OTELEnabled = true
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MetricsPort <= 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", c.MetricsPort)
	}
	if c.Port == c.MetricsPort {
		return fmt.Errorf("port and metrics_port must be different")
	}
	if c.Model == "" && !c.UseMock {
		return fmt.Errorf("model path is required when not using the mock engine")
	}
	if c.InputHeight < 0 || c.InputWidth < 0 {
		return fmt.Errorf("input_height and input_width must not be negative")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative")
	}
	return nil
}
