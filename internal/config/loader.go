package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	v := viper.GetViper()
	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (PKGFREEZE_*)
	v.SetEnvPrefix("PKGFREEZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a configuration with default values applied
func Default() *Config {
	cfg := &Config{
		Probe: ProbeConfig{
			Tclsh:   DefaultTclsh,
			Timeout: DefaultProbeTimeout,
		},
		Collect: CollectConfig{
			TclExcludes: append([]string(nil), DefaultTclExcludes...),
			TkExcludes:  append([]string(nil), DefaultTkExcludes...),
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Archive: ArchiveConfig{
			Level: DefaultArchiveLevel,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
	return cfg
}
