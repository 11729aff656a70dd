package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Default values
const (
	// Probe defaults
	DefaultTclsh        = "tclsh"
	DefaultProbeTimeout = 30 * time.Second

	// Output defaults
	DefaultFormat = "text"

	// Archive defaults
	DefaultArchiveLevel = 3

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// Default exclusion globs, per toolkit. Demos, static import libraries and
// build-configuration scripts are never useful at runtime.
var (
	DefaultTclExcludes = []string{"demos", "*.lib", "tclConfig.sh"}
	DefaultTkExcludes  = []string{"demos", "*.lib", "tkConfig.sh"}
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pkgfreeze"
	}
	return filepath.Join(home, ".pkgfreeze")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// setDefaults sets default values on a viper instance
func setDefaults(v *viper.Viper) {
	v.SetDefault("probe.tclsh", DefaultTclsh)
	v.SetDefault("probe.timeout", DefaultProbeTimeout)
	v.SetDefault("probe.strict", false)

	v.SetDefault("collect.tcl_excludes", DefaultTclExcludes)
	v.SetDefault("collect.tk_excludes", DefaultTkExcludes)

	v.SetDefault("output.format", DefaultFormat)

	v.SetDefault("archive.path", "")
	v.SetDefault("archive.level", DefaultArchiveLevel)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
