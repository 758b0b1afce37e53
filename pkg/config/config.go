package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marmos91/vfsemu/pkg/vfs"
	"github.com/spf13/viper"
)

// Config represents the complete emulator configuration.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (VFSEMU_*)
//  3. Configuration file (YAML or TOML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Filesystem configures the emulated tree
	Filesystem FilesystemConfig `mapstructure:"filesystem"`

	// Output selects how the final tree is rendered
	Output OutputConfig `mapstructure:"output"`

	// Metrics controls command metrics collection
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" jsonschema:"enum=DEBUG,enum=INFO,enum=WARN,enum=ERROR,enum=debug,enum=info,enum=warn,enum=error,default=INFO"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json" jsonschema:"enum=text,enum=json,default=text"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" jsonschema:"default=stderr"`
}

// FilesystemConfig configures the emulated filesystem.
type FilesystemConfig struct {
	// Drive is the name of the single root drive (e.g. "C:")
	Drive string `mapstructure:"drive" validate:"required,drive" jsonschema:"pattern=^[A-Za-z]:$,default=C:"`

	// RegisterClonedLinks makes links created by copy count as aliases of
	// their target, so the copied link blocks deletion of the target like
	// the original link does.
	RegisterClonedLinks bool `mapstructure:"register_cloned_links"`
}

// VFS converts the section into a vfs.Config.
func (c FilesystemConfig) VFS() vfs.Config {
	return vfs.Config{
		DriveName:           c.Drive,
		RegisterClonedLinks: c.RegisterClonedLinks,
	}
}

// OutputConfig specifies the renderer and its format-specific options.
//
// Only the section matching Format is used.
type OutputConfig struct {
	// Format specifies the renderer
	// Valid values: text, yaml
	Format string `mapstructure:"format" validate:"required,oneof=text yaml" jsonschema:"enum=text,enum=yaml,default=text"`

	// YAML contains yaml renderer options
	// Only used when Format = "yaml"
	YAML map[string]any `mapstructure:"yaml"`
}

// MetricsConfig controls metrics collection.
type MetricsConfig struct {
	// Enabled turns on Prometheus command metrics
	Enabled bool `mapstructure:"enabled"`

	// Textfile is where metrics are written when a run finishes
	// Required when Enabled is true
	Textfile string `mapstructure:"textfile"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (VFSEMU_*)
//  2. Configuration file
//  3. Default values
//
// A missing file at the default location is not an error: defaults are used.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures viper with environment variables and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Example: VFSEMU_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("VFSEMU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about
	for _, key := range []string{
		"logging.level", "logging.format", "logging.output",
		"filesystem.drive", "filesystem.register_cloned_links",
		"output.format",
		"metrics.enabled", "metrics.textfile",
	} {
		_ = v.BindEnv(key)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default location: $XDG_CONFIG_HOME/vfsemu/config.yaml
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file.
//
// Only a missing file at the default location is tolerated; an explicit
// path that does not exist is an error.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to current
// directory (.) if home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "vfsemu")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "vfsemu")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// ConfigExists checks if a config file exists at the default location.
func ConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() string {
	return getConfigDir()
}
