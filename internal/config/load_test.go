package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.True(t, cfg.App.DemoSeed)
	assert.Equal(t, "table", cfg.Report.Format)
	assert.Equal(t, 3, cfg.Report.TopN)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TOMERATER_APP_LOG_LEVEL", "debug")
	t.Setenv("TOMERATER_REPORT_FORMAT", "json")
	t.Setenv("TOMERATER_REPORT_TOP_N", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, 10, cfg.Report.TopN)
}

func TestLoadValidation(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("TOMERATER_APP_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("invalid report format", func(t *testing.T) {
		t.Setenv("TOMERATER_REPORT_FORMAT", "yaml")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive top n", func(t *testing.T) {
		t.Setenv("TOMERATER_REPORT_TOP_N", "0")

		_, err := Load()
		assert.Error(t, err)
	})
}
