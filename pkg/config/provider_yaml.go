package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML configuration files.
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a provider reading from the given file.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// LoadConfig reads, parses and validates the configuration file.
func (y *YAMLProvider) LoadConfig() (*Config, error) {
	raw, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", y.filename, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", y.filename, err)
	}
	return &cfg, nil
}
