package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "crashcatch.log", cfg.Report.Path)
	assert.Equal(t, "Crash report", cfg.Report.Title)
	assert.True(t, cfg.Report.Overwrite)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Log.Format)
}

func TestLoader_ConfigFileOverridesDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
report:
  path: /var/log/app-crash.log
  title: "App crash"
  message: "App failed, see {filename}"
  overwrite: false
  extra:
    build: "1.2.3"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoader().WithConfigFile(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/log/app-crash.log", cfg.Report.Path)
	assert.Equal(t, "App crash", cfg.Report.Title)
	assert.False(t, cfg.Report.Overwrite)
	assert.Equal(t, "1.2.3", cfg.Report.Extra["build"])
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unspecified keys keep defaults.
	assert.Equal(t, "auto", cfg.Log.Format)
}

func TestLoader_EnvOverride(t *testing.T) {
	t.Setenv("CRASHCATCH_LOG_LEVEL", "error")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_InvalidConfigRejected(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))

	_, err := NewLoader().WithConfigFile(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}
