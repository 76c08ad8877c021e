package config

// Config is the top-level healthbot configuration, corresponding to
// .healthbot.yml.
type Config struct {
	DatabasePath string          `yaml:"database_path" koanf:"database_path"`
	StoreName    string          `yaml:"store_name" koanf:"store_name"`
	Server       ServerConfig    `yaml:"server" koanf:"server"`
	Assistant    AssistantConfig `yaml:"assistant" koanf:"assistant"`
	Session      SessionConfig   `yaml:"session" koanf:"session"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host        string   `yaml:"host" koanf:"host"`
	Port        int      `yaml:"port" koanf:"port"`
	CORSOrigins []string `yaml:"cors_origins" koanf:"cors_origins"`
}

// AssistantConfig tunes the query pipeline.
type AssistantConfig struct {
	MaxResults   int     `yaml:"max_results" koanf:"max_results"`
	ListingLimit int     `yaml:"listing_limit" koanf:"listing_limit"`
	FuzzyCutoff  float64 `yaml:"fuzzy_cutoff" koanf:"fuzzy_cutoff"`
	LogBuffer    int     `yaml:"log_buffer" koanf:"log_buffer"`
}

// SessionConfig controls conversation memory expiry.
type SessionConfig struct {
	TTLMinutes   int `yaml:"ttl_minutes" koanf:"ttl_minutes"`
	SweepMinutes int `yaml:"sweep_minutes" koanf:"sweep_minutes"`
}
