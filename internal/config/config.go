package config

import (
	"fmt"
	"time"
)

// Config represents the application configuration
type Config struct {
	Probe   ProbeConfig   `mapstructure:"probe" yaml:"probe"`
	Collect CollectConfig `mapstructure:"collect" yaml:"collect"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Archive ArchiveConfig `mapstructure:"archive" yaml:"archive"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ProbeConfig contains interpreter probe settings
type ProbeConfig struct {
	// Tclsh is the tclsh executable used for introspection queries
	Tclsh string `mapstructure:"tclsh" yaml:"tclsh"`
	// Timeout bounds each probe session
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// Strict surfaces probe failures instead of degrading to an empty manifest
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// CollectConfig contains data collection settings
type CollectConfig struct {
	// TclExcludes are glob patterns dropped from the Tcl data tree
	TclExcludes []string `mapstructure:"tcl_excludes" yaml:"tcl_excludes"`
	// TkExcludes are glob patterns dropped from the Tk data tree
	TkExcludes []string `mapstructure:"tk_excludes" yaml:"tk_excludes"`
}

// OutputConfig contains manifest rendering settings
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "text", "json" or "yaml"
}

// ArchiveConfig contains archive emission settings
type ArchiveConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Level int    `mapstructure:"level" yaml:"level"` // zstd compression level
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate checks the configuration and applies fallbacks for invalid values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (expected text, json or yaml)", c.Output.Format)
	}

	if c.Probe.Tclsh == "" {
		c.Probe.Tclsh = "tclsh"
	}
	if c.Probe.Timeout <= 0 {
		c.Probe.Timeout = 30 * time.Second
	}

	if c.Archive.Level < 1 || c.Archive.Level > 19 {
		c.Archive.Level = 3
	}

	return nil
}
