// Package config defines the almanac service configuration and the
// provider abstraction for loading it from different sources.
package config

import (
	"fmt"

	"github.com/skywheel/almanac/pkg/almanac"
)

// Provider is a configuration data source.
type Provider interface {
	LoadConfig() (*Config, error)
}

// Config is the complete service configuration.
type Config struct {
	HTTP     HTTPConfig       `json:"http" yaml:"http"`
	Location almanac.Location `json:"location" yaml:"location"`
	Events   EventsConfig     `json:"events" yaml:"events"`
	Debug    bool             `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// HTTPConfig configures the REST listener.
type HTTPConfig struct {
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
	Port       int    `json:"port" yaml:"port"`
}

// EventsConfig configures calendar event persistence.
type EventsConfig struct {
	DatabasePath string `json:"database_path,omitempty" yaml:"database_path,omitempty"`
}

// Validate checks the configuration for problems that would only
// surface later as confusing runtime failures.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port %d out of range", c.HTTP.Port)
	}
	if err := c.Location.Validate(); err != nil {
		return fmt.Errorf("default location: %w", err)
	}
	return nil
}

// ApplyDefaults fills in unset optional fields.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8090
	}
	if c.Events.DatabasePath == "" {
		c.Events.DatabasePath = "almanac-events.db"
	}
}
