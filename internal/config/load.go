package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables with built-in defaults.
// Environment variables use the TOMERATER_ prefix with underscores for
// nesting (e.g. TOMERATER_APP_LOG_LEVEL, TOMERATER_REPORT_FORMAT).
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.demo_seed", true)
	v.SetDefault("report.format", "table")
	v.SetDefault("report.top_n", 3)

	v.SetEnvPrefix("TOMERATER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
