// Package config provides YAML configuration for the esal CLI.
// Priority: defaults < config file < flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all esal configuration.
type Config struct {
	Version int `yaml:"version"`

	Ingest IngestConfig `yaml:"ingest"`
	Output OutputConfig `yaml:"output"`
}

// IngestConfig controls how source files map onto event fields.
type IngestConfig struct {
	Columns     ColumnsConfig `yaml:"columns"`
	TimeLayouts []string      `yaml:"time_layouts"` // Go reference layouts, tried first
	Delimiter   string        `yaml:"delimiter"`    // CSV delimiter, single character
	AssignSeq   bool          `yaml:"assign_seq"`   // generate a sequence ID per file
	Sheet       string        `yaml:"sheet"`        // XLSX sheet name
}

// ColumnsConfig names the source columns for the five event fields.
type ColumnsConfig struct {
	Seq  string `yaml:"seq"`
	Time string `yaml:"time"`
	Dura string `yaml:"dura"`
	Ev   string `yaml:"ev"`
	Val  string `yaml:"val"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Color bool `yaml:"color"`
	Limit int  `yaml:"limit"` // max events printed, 0 = unlimited
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Ingest: IngestConfig{
			Columns: ColumnsConfig{
				Seq:  "seq",
				Time: "time",
				Dura: "dura",
				Ev:   "ev",
				Val:  "val",
			},
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".esal", "config.yaml")
}

// Load reads a config file and merges it over the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the given path, creating directories as
// needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
