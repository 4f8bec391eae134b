package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects how sub-agents are reached.
type Mode string

const (
	// ModeLocal wires all four shells in one process.
	ModeLocal Mode = "local"
	// ModeRemote reaches sub-agents over HTTP using the configured URLs.
	ModeRemote Mode = "remote"
)

// Config is the top-level configuration.
type Config struct {
	Mode      Mode              `yaml:"mode"`
	Remotes   map[string]string `yaml:"remotes"`    // agent name -> base URL, remote mode only
	Telemetry TelemetryConfig   `yaml:"telemetry"`
	CustomOps []CustomOpConfig  `yaml:"custom_operations"`
	Version   string            `yaml:"version"` // reported in agent cards
}

// TelemetryConfig holds trace export settings.
type TelemetryConfig struct {
	TracesFile string `yaml:"traces_file"` // empty disables export
}

// CustomOpConfig registers a named multiply-by-factor operation with the
// advanced calculator, alongside the built-in chimichanga.
type CustomOpConfig struct {
	Name   string  `yaml:"name"`
	Factor float64 `yaml:"factor"`
}

// DefaultConfig is a fully local deployment with telemetry disabled.
func DefaultConfig() Config {
	return Config{Mode: ModeLocal, Version: "1.0.0"}
}

// LoadConfig reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing, so
// remote URLs can be kept in the environment.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeLocal, ModeRemote:
	default:
		return fmt.Errorf("engine: config: unknown mode %q", c.Mode)
	}

	if c.Mode == ModeRemote {
		for _, name := range []string{"weather", "calculator", "advanced_calculator"} {
			if c.Remotes[name] == "" {
				return fmt.Errorf("engine: config: remote mode requires a URL for %q", name)
			}
		}
	}

	seen := make(map[string]struct{}, len(c.CustomOps))
	for _, op := range c.CustomOps {
		if op.Name == "" {
			return fmt.Errorf("engine: config: custom operation name is required")
		}
		if _, dup := seen[op.Name]; dup {
			return fmt.Errorf("engine: config: duplicate custom operation %q", op.Name)
		}
		seen[op.Name] = struct{}{}
	}

	return nil
}
