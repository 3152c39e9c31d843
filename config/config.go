package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geanlabs/beacontypes/preset"
)

// ToolConfig represents the parsed config.yaml for the block tool.
type ToolConfig struct {
	PresetBase  string `yaml:"PRESET_BASE"`
	MetricsPort int    `yaml:"METRICS_PORT"`
	LogLevel    string `yaml:"LOG_LEVEL"`
}

// Load reads and parses a tool config YAML file.
func Load(path string) (*ToolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *ToolConfig {
	return &ToolConfig{
		PresetBase: "mainnet",
		LogLevel:   "info",
	}
}

func (c *ToolConfig) validate() error {
	if c.PresetBase == "" {
		c.PresetBase = "mainnet"
	}
	if _, err := preset.ByName(c.PresetBase); err != nil {
		return fmt.Errorf("PRESET_BASE: %w", err)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("METRICS_PORT out of range: %d", c.MetricsPort)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL: %q", c.LogLevel)
	}
	return nil
}

// Preset resolves the configured preset table.
func (c *ToolConfig) Preset() *preset.Preset {
	p, err := preset.ByName(c.PresetBase)
	if err != nil {
		// validate() already pinned the name to a known preset.
		panic(err)
	}
	return p
}
