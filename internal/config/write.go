package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file, env or flag
// overrides anything.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Path:      "crashcatch.log",
			Title:     "Crash report",
			Message:   "The app has crashed",
			Postamble: "Please file a bug report with the contents of '{filename}'",
			Overwrite: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// WriteFile serializes cfg to YAML and writes it atomically via rename,
// creating the parent directory when needed.
func WriteFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := renameio.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
