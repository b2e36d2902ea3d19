// Package config provides configuration loading and validation.
//
// Configuration is loaded with Viper from a config.yml file, then overridden
// by environment variables and an optional .env file (loaded via godotenv).
// Every section implements ApplyDefaults and Validate; Load only populates
// the struct, the caller drives the defaults/validation pass.
package config
