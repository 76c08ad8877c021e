package config

// DefaultConfigFile is where Load looks when no path is given and where
// the wizard saves.
const DefaultConfigFile = ".healthbot.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath: "healthbot.db",
		StoreName:    "HomeVed",
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		Assistant: AssistantConfig{
			MaxResults:   5,
			ListingLimit: 10,
			FuzzyCutoff:  0.35,
			LogBuffer:    64,
		},
		Session: SessionConfig{
			TTLMinutes:   30,
			SweepMinutes: 15,
		},
	}
}
