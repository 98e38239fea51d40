// Package config loads tool configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Lexer  LexerConfig  `yaml:"lexer"`
	Output OutputConfig `yaml:"output"`
}

type LexerConfig struct {
	// Tolerant keeps tokenizing past unrecognized characters, turning
	// each one into an error token.
	Tolerant bool `yaml:"tolerant"`

	// EmitNewlines includes newline tokens in token listings.
	EmitNewlines bool `yaml:"emit_newlines"`
}

type OutputConfig struct {
	// Format selects the parse output rendering: "text" or "json".
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "text"},
	}
}

// Load reads a YAML configuration file, fills in defaults and validates
// the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
}

// Validate checks the configuration for values the tool cannot act on.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format: unknown format %q (want \"text\" or \"json\")", cfg.Output.Format)
	}
	return nil
}
