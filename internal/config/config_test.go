package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DatabasePath != "healthbot.db" {
		t.Errorf("expected default database_path %q, got %q", "healthbot.db", cfg.DatabasePath)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Assistant.FuzzyCutoff != 0.35 {
		t.Errorf("expected default fuzzy_cutoff 0.35, got %v", cfg.Assistant.FuzzyCutoff)
	}
	if cfg.Session.TTLMinutes != 30 {
		t.Errorf("expected default ttl_minutes 30, got %d", cfg.Session.TTLMinutes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.healthbot.yml")

	original := DefaultConfig()
	original.StoreName = "TestMart"
	original.DatabasePath = "/tmp/test.db"
	original.Server.Port = 9090
	original.Server.CORSOrigins = []string{"https://example.com"}
	original.Assistant.MaxResults = 3
	original.Session.TTLMinutes = 45

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.StoreName != original.StoreName {
		t.Errorf("store_name: got %q, want %q", loaded.StoreName, original.StoreName)
	}
	if loaded.DatabasePath != original.DatabasePath {
		t.Errorf("database_path: got %q, want %q", loaded.DatabasePath, original.DatabasePath)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if len(loaded.Server.CORSOrigins) != 1 || loaded.Server.CORSOrigins[0] != "https://example.com" {
		t.Errorf("cors_origins: got %v", loaded.Server.CORSOrigins)
	}
	if loaded.Assistant.MaxResults != 3 {
		t.Errorf("max_results: got %d, want 3", loaded.Assistant.MaxResults)
	}
	if loaded.Session.TTLMinutes != 45 {
		t.Errorf("ttl_minutes: got %d, want 45", loaded.Session.TTLMinutes)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected defaults, got port %d", cfg.Server.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HEALTHBOT_SERVER__PORT", "3001")
	t.Setenv("HEALTHBOT_STORE_NAME", "EnvMart")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 3001 {
		t.Errorf("port: got %d, want env override 3001", cfg.Server.Port)
	}
	if cfg.StoreName != "EnvMart" {
		t.Errorf("store_name: got %q, want EnvMart", cfg.StoreName)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty database path", func(c *Config) { c.DatabasePath = "" }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"zero max results", func(c *Config) { c.Assistant.MaxResults = 0 }},
		{"cutoff above one", func(c *Config) { c.Assistant.FuzzyCutoff = 1.5 }},
		{"zero ttl", func(c *Config) { c.Session.TTLMinutes = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
