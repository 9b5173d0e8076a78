// Package config loads server configuration from defaults, an optional
// ninexta.yaml file and NINEXTA_* environment variables, in ascending
// precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server binary needs to wire itself.
type Config struct {
	Addr          string
	Provider      string // openai, anthropic or none
	Model         string // provider default when empty
	APIKey        string // Anthropic key; the OpenAI SDK reads its own env
	SearchTimeout time.Duration
	LogLevel      string
	LogFormat     string // json or text
	CORSOrigins   []string
}

// Load reads the configuration. A missing config file is fine; a present
// but unreadable one is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("provider", "none")
	v.SetDefault("model", "")
	v.SetDefault("api_key", "")
	v.SetDefault("search_timeout", "10s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("cors_origins", []string{"*"})

	v.SetConfigName("ninexta")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/ninexta")

	v.SetEnvPrefix("NINEXTA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Addr:          v.GetString("addr"),
		Provider:      v.GetString("provider"),
		Model:         v.GetString("model"),
		APIKey:        v.GetString("api_key"),
		SearchTimeout: v.GetDuration("search_timeout"),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
		CORSOrigins:   v.GetStringSlice("cors_origins"),
	}

	switch cfg.Provider {
	case "openai", "anthropic", "none":
	default:
		return nil, fmt.Errorf("unknown provider %q (want openai, anthropic or none)", cfg.Provider)
	}
	if cfg.SearchTimeout <= 0 {
		return nil, fmt.Errorf("search_timeout must be positive, got %s", cfg.SearchTimeout)
	}
	return cfg, nil
}
