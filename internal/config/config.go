// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "500ms", "1s", "5s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all snapshot tool configuration.
type Config struct {
	Collection CollectionConfig `yaml:"collection"`
	Disk       DiskConfig       `yaml:"disk"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CollectionConfig holds sampling windows and the per-collector timeout.
type CollectionConfig struct {
	CPUSample Duration `yaml:"cpu_sample"`
	NetSample Duration `yaml:"net_sample"`
	Timeout   Duration `yaml:"timeout"`
}

// DiskConfig holds mount filtering settings applied on top of the built-in
// pseudo-filesystem exclusions.
type DiskConfig struct {
	ExcludeFSTypes []string `yaml:"exclude_fstypes"`
	ExcludeMounts  []string `yaml:"exclude_mounts"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
	Color  string `yaml:"color"`  // "auto", "always", or "never"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Collection: CollectionConfig{
			CPUSample: Duration{500 * time.Millisecond},
			NetSample: Duration{1 * time.Second},
			Timeout:   Duration{5 * time.Second},
		},
		Disk: DiskConfig{},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with defaults.
// Environment variables take highest precedence and override values from the byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty, standard per-OS locations are searched; a missing file
// is not an error and yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Locate()
	}
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFromBytes(nil)
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have the highest precedence.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("SNAPSYS_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("SNAPSYS_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
	if color := os.Getenv("SNAPSYS_COLOR"); color != "" {
		cfg.Output.Color = color
	}
}

// Validate checks that the configuration is usable. It runs once at startup;
// unlike metric read failures, a validation failure is fatal.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output format must be \"text\" or \"json\" (got: %q)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output color must be \"auto\", \"always\" or \"never\" (got: %q)", c.Output.Color)
	}
	if c.Collection.CPUSample.Duration <= 0 {
		return fmt.Errorf("collection.cpu_sample must be positive")
	}
	if c.Collection.NetSample.Duration <= 0 {
		return fmt.Errorf("collection.net_sample must be positive")
	}
	if c.Collection.Timeout.Duration <= 0 {
		return fmt.Errorf("collection.timeout must be positive")
	}
	return nil
}
