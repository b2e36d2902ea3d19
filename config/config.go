package config

import (
	"fmt"

	"github.com/skillsenselab/carhub/auth"
	"github.com/skillsenselab/carhub/logger"
	"github.com/skillsenselab/carhub/observability"
	"github.com/skillsenselab/carhub/server"
)

// Config is the root configuration for the car registry service.
type Config struct {
	Name          string               `yaml:"name" mapstructure:"name"`
	Environment   string               `yaml:"environment" mapstructure:"environment"`
	Debug         bool                 `yaml:"debug" mapstructure:"debug"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Auth          auth.Config          `yaml:"auth" mapstructure:"auth"`
	Database      DatabaseConfig       `yaml:"database" mapstructure:"database"`
	Seed          SeedConfig           `yaml:"seed" mapstructure:"seed"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// DatabaseConfig selects the credential store backend. An empty URL selects
// the in-memory store.
type DatabaseConfig struct {
	URL string `yaml:"url" mapstructure:"url"`
}

// SeedConfig controls the startup seed user.
type SeedConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
}

// ApplyDefaults applies defaults across all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "carhub"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Seed.Enabled {
		if c.Seed.Username == "" {
			c.Seed.Username = "testuser"
		}
		if c.Seed.Password == "" {
			c.Seed.Password = "testpass"
		}
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = c.Name
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Environment
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("config.auth: %w", err)
	}
	return nil
}
