// Package config loads, validates and persists the healthbot
// configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HEALTHBOT_*). A double underscore in a
// variable name descends into a section: HEALTHBOT_SERVER__PORT sets
// server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("HEALTHBOT_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "HEALTHBOT_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Assistant.MaxResults < 1 {
		return fmt.Errorf("assistant.max_results must be positive")
	}
	if c.Assistant.ListingLimit < 1 {
		return fmt.Errorf("assistant.listing_limit must be positive")
	}
	if c.Assistant.FuzzyCutoff <= 0 || c.Assistant.FuzzyCutoff >= 1 {
		return fmt.Errorf("assistant.fuzzy_cutoff %v must be between 0 and 1", c.Assistant.FuzzyCutoff)
	}
	if c.Session.TTLMinutes < 1 {
		return fmt.Errorf("session.ttl_minutes must be positive")
	}
	if c.Session.SweepMinutes < 1 {
		return fmt.Errorf("session.sweep_minutes must be positive")
	}
	return nil
}
