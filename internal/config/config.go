// Package config handles loading, validation, and persistence of the
// airscout configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configDirPerm  = 0755
	configFilePerm = 0644

	// DefaultScanTimeout bounds a single scan utility invocation. The
	// underlying utility has no timeout of its own; a hung process would
	// otherwise hang the caller indefinitely.
	DefaultScanTimeout = 30 * time.Second
)

// Duration wraps time.Duration so YAML config files can use Go duration
// syntax ("30s", "1m") instead of integer nanoseconds.
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting duration strings
// and integer nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var nanos int64
		if err := value.Decode(&nanos); err != nil {
			return fmt.Errorf("invalid duration value %q: %w", value.Value, err)
		}
		*d = Duration(nanos)
		return nil
	}

	var text string
	if err := value.Decode(&text); err != nil {
		return fmt.Errorf("invalid duration value %q: %w", value.Value, err)
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the complete airscout configuration.
type Config struct {
	// Scan configuration
	Scan ScanConfig `yaml:"scan" json:"scan"`

	// Output configuration
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ScanConfig holds scan pipeline settings.
type ScanConfig struct {
	// Platform overrides host platform detection (e.g. "darwin").
	// Empty means use the running OS.
	Platform string `yaml:"platform" json:"platform"`

	// Command overrides the registered variant's command template.
	Command string `yaml:"command" json:"command"`

	// Timeout bounds the scan utility invocation. Zero disables the bound.
	Timeout Duration `yaml:"timeout" json:"timeout"`

	// Interface is the wireless interface to scan on, where the scan
	// utility supports selecting one.
	Interface string `yaml:"interface" json:"interface"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	// Format is the output format: "table" or "json".
	Format string `yaml:"format" json:"format"`

	// Color enables quality-band coloring of table output.
	Color bool `yaml:"color" json:"color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `yaml:"level" json:"level"`

	// Log format: text or json
	Format string `yaml:"format" json:"format"`

	// Log output: stdout, stderr, or file path
	Output string `yaml:"output" json:"output"`
}

// Default returns a configuration populated with defaults.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Timeout: Duration(DefaultScanTimeout),
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load loads configuration from a file, applying defaults for anything the
// file does not set. A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		return config, nil
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // Return defaults if no config file
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, configDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write file
	if err := os.WriteFile(path, data, configFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	// Validate scan configuration
	if c.Scan.Timeout < 0 {
		return fmt.Errorf("scan timeout must not be negative")
	}

	// Validate output configuration
	validFormats := map[string]bool{
		"table": true,
		"json":  true,
	}
	if c.Output.Format != "" && !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	// Validate logging configuration
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}
