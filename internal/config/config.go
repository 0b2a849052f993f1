// Package config loads and validates the application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	Report ReportConfig `mapstructure:"report" validate:"required"`
}

// AppConfig contains general application settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// DemoSeed controls whether the CLI seeds the sample catalog on start.
	DemoSeed bool `mapstructure:"demo_seed"`
}

// ReportConfig contains settings for the report rendering layer.
type ReportConfig struct {
	// Format selects the output encoding of the rendered reports.
	Format string `mapstructure:"format" validate:"required,oneof=table json"`
	// TopN is the default n for the top-N rankings.
	TopN int `mapstructure:"top_n" validate:"required,gt=0"`
}
