package config

import (
	"strings"

	"github.com/marmos91/vfsemu/pkg/vfs"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Zero values are replaced with defaults; explicit values are preserved.
// Booleans keep their zero value, so register_cloned_links and
// metrics.enabled default to false.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyFilesystemDefaults(&cfg.Filesystem)
	applyOutputDefaults(&cfg.Output)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	// stdout carries the rendered tree
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

// applyFilesystemDefaults sets the drive name and normalizes its case.
func applyFilesystemDefaults(cfg *FilesystemConfig) {
	if cfg.Drive == "" {
		cfg.Drive = vfs.DefaultDriveName
	}
	cfg.Drive = strings.ToUpper(cfg.Drive)
}

// applyOutputDefaults sets renderer defaults.
func applyOutputDefaults(cfg *OutputConfig) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if cfg.YAML == nil {
		cfg.YAML = make(map[string]any)
	}
	if _, ok := cfg.YAML["indent"]; !ok {
		cfg.YAML["indent"] = 2
	}
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// Used to generate sample configuration files and in tests.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
