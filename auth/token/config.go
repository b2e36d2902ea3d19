package token

import (
	"errors"
	"time"
)

// Config configures the token service.
type Config struct {
	// Secret is the HMAC signing key. Process-wide, loaded once at
	// startup; rotating it invalidates all previously issued tokens.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// TTL is the fixed lifetime of issued tokens (default: 15m).
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`

	// Issuer is the "iss" claim (optional).
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = 15 * time.Minute
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("secret is required")
	}
	if len(c.Secret) < 16 {
		return errors.New("secret must be at least 16 bytes")
	}
	if c.TTL < 0 {
		return errors.New("ttl must be positive")
	}
	return nil
}
