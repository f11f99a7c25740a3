// Package config provides configuration loading for the rank filtering tools.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Filter parameters
	Filter struct {
		// Statistic is the default rank statistic applied when none is given
		// on the command line.
		Statistic string `yaml:"statistic"`

		// Radius is the default disk footprint radius.
		Radius int `yaml:"radius"`

		// BinWarnThreshold is the histogram bin count above which a warning
		// is logged for wide-domain inputs.
		BinWarnThreshold int `yaml:"binWarnThreshold"`
	} `yaml:"filter"`

	// Flood fill parameters
	Flood struct {
		// Connectivity is the default neighborhood connectivity.
		Connectivity int `yaml:"connectivity"`

		// Tolerance is the default fill tolerance. Negative means exact match.
		Tolerance float64 `yaml:"tolerance"`
	} `yaml:"flood"`

	// Output parameters
	Output struct {
		// MaxWidth rescales wider inputs down before filtering. Zero disables.
		MaxWidth int `yaml:"maxWidth"`

		// Verbose controls the level of logging output.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Filter.Statistic = "median"
	cfg.Filter.Radius = 3
	cfg.Filter.BinWarnThreshold = 1 << 10

	cfg.Flood.Connectivity = 2
	cfg.Flood.Tolerance = -1

	cfg.Output.MaxWidth = 0
	cfg.Output.Verbose = false

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}
