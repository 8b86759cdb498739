package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded from an optional
// YAML file with environment variable overrides.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	Storage struct {
		// Type selects the storage backend: "memory" (default) or "redis"
		Type     string `yaml:"type"`
		RedisURL string `yaml:"redis_url"`
	} `yaml:"storage"`

	JWT struct {
		SigningKey string `yaml:"signing_key"`
		Issuer     string `yaml:"issuer"`
		TokenTTL   string `yaml:"token_ttl"`
	} `yaml:"jwt"`

	// Proctors are provisioned at startup and immutable afterwards.
	// Either a bcrypt PasswordHash or a plaintext Password may be
	// given; plaintext is hashed at load time and never stored.
	Proctors []ProctorConfig `yaml:"proctors"`
}

// ProctorConfig describes one statically provisioned proctor account
type ProctorConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

// Load reads configuration from the given path (if it exists) and
// applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = 8080
	cfg.Storage.Type = "memory"
	cfg.Storage.RedisURL = "redis://localhost:6379"
	cfg.JWT.SigningKey = "dev-signing-secret-change"
	cfg.JWT.Issuer = "proctor-server"
	cfg.JWT.TokenTTL = "24h"
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Storage.RedisURL = v
	}
	if v := os.Getenv("JWT_SIGNING_KEY"); v != "" {
		cfg.JWT.SigningKey = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.JWT.Issuer = v
	}
	if v := os.Getenv("JWT_TOKEN_TTL"); v != "" {
		cfg.JWT.TokenTTL = v
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Storage.Type != "memory" && cfg.Storage.Type != "redis" {
		return fmt.Errorf("invalid storage type %q: must be 'memory' or 'redis'", cfg.Storage.Type)
	}
	if _, err := cfg.TokenTTL(); err != nil {
		return err
	}
	for _, p := range cfg.Proctors {
		if p.Username == "" {
			return fmt.Errorf("proctor account with empty username")
		}
		if p.Password == "" && p.PasswordHash == "" {
			return fmt.Errorf("proctor account %q has neither password nor password_hash", p.Username)
		}
	}
	return nil
}

// TokenTTL parses the configured token lifetime
func (c *Config) TokenTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.JWT.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid jwt token_ttl %q: %w", c.JWT.TokenTTL, err)
	}
	return d, nil
}

// Addr returns the server listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
