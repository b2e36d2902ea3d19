package auth

import (
	"fmt"

	"github.com/skillsenselab/carhub/auth/password"
	"github.com/skillsenselab/carhub/auth/token"
)

// Config holds all authentication configuration, composing the token and
// password sub-configs for loading from YAML/env.
type Config struct {
	// Token configures the bearer token service.
	Token token.Config `yaml:"token" mapstructure:"token"`

	// Password configures password hashing.
	Password password.Config `yaml:"password" mapstructure:"password"`
}

// ApplyDefaults sets sensible defaults on sub-configurations.
func (c *Config) ApplyDefaults() {
	c.Token.ApplyDefaults()
	c.Password.ApplyDefaults()
}

// Validate checks all sub-configurations.
func (c *Config) Validate() error {
	if err := c.Token.Validate(); err != nil {
		return fmt.Errorf("auth.token: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("auth.password: %w", err)
	}
	return nil
}
