// Package config loads crashcatch configuration from flags, environment
// and YAML config files, in that precedence order.
package config

import (
	"fmt"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Report ReportConfig `mapstructure:"report" yaml:"report"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// ReportConfig configures crash report generation.
type ReportConfig struct {
	// Path is the desired report file; collisions are resolved at crash
	// time when Overwrite is false.
	Path      string `mapstructure:"path" yaml:"path"`
	Title     string `mapstructure:"title" yaml:"title"`
	Message   string `mapstructure:"message" yaml:"message"`
	Postamble string `mapstructure:"postamble" yaml:"postamble"`
	Overwrite bool   `mapstructure:"overwrite" yaml:"overwrite"`

	// Extra fields are embedded verbatim in the report's crash-data block.
	Extra map[string]string `mapstructure:"extra" yaml:"extra,omitempty"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []string

	if c.Report.Path == "" {
		errs = append(errs, "report.path: required")
	}
	if c.Report.Title == "" {
		errs = append(errs, "report.title: required")
	}
	if c.Report.Message == "" {
		errs = append(errs, "report.message: required")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error (got %q)", c.Log.Level))
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format: must be one of auto, text, json (got %q)", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
