package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, Default().Validate())
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Report.Path = ""
	cfg.Report.Message = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.path")
	assert.Contains(t, err.Error(), "report.message")
}

func TestValidate_BadLogSettings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
