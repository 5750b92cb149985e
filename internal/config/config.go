// Package config loads the freexor-garble CLI's YAML configuration
// file, the way the pack's cggmp/dkg example loads a YAML config for
// its own subcommands.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the CLI's on-disk configuration: default seed material and
// logging level, so repeated runs don't need every flag respecified.
type Config struct {
	// SeedHex is a 64-character hex-encoded 32-byte master seed, used
	// when the garble subcommand is not given an explicit --seed flag.
	SeedHex string `yaml:"seed"`
	// LogLevel is the sirius/log level name (debug, info, warn, error,
	// crit).
	LogLevel string `yaml:"logLevel"`
}

// Load reads and parses a YAML config file at path. An empty path
// yields a zero-value Config rather than an error, since every field
// has a sensible zero-value fallback; a path naming a file that cannot
// be read is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
