package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"bscscan_node/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "config/config.yml"

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ExplorerConfig describes the upstream explorer API.
type ExplorerConfig struct {
	Provider       string                     `yaml:"provider"`
	DefaultNetwork entity.NetworkID           `yaml:"defaultNetwork"`
	Networks       []entity.NetworkDefinition `yaml:"networks"`
}

// CredentialsConfig locates the explorer API key.
type CredentialsConfig struct {
	APIKey         string `yaml:"apiKey"`
	KeyringService string `yaml:"keyringService"`
	KeyringUser    string `yaml:"keyringUser"`
}

// RateLimitConfig limits inbound REST requests.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Explorer    ExplorerConfig    `yaml:"explorer"`
	Credentials CredentialsConfig `yaml:"credentials"`
	RateLimit   RateLimitConfig   `yaml:"rateLimit"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML configuration file from the given path and unmarshals it.
// A missing file at DefaultPath is not an error: defaults are returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Config{Metrics: MetricsConfig{Enabled: true}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Explorer.Provider == "" {
		cfg.Explorer.Provider = "bscscan"
	}
	if cfg.Explorer.DefaultNetwork == "" {
		cfg.Explorer.DefaultNetwork = entity.NetworkBSC
	}

	if cfg.Credentials.KeyringService == "" {
		cfg.Credentials.KeyringService = "bscscan-node"
	}
	if cfg.Credentials.KeyringUser == "" {
		cfg.Credentials.KeyringUser = "apikey"
	}

	// BscScan free tier allows 5 calls/sec per key.
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = 5
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 5
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	seen := make(map[entity.NetworkID]struct{}, len(cfg.Explorer.Networks))
	for i, n := range cfg.Explorer.Networks {
		if n.ID == "" {
			return fmt.Errorf("explorer.networks[%d]: id is required", i)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("explorer.networks[%d]: duplicate id %q", i, n.ID)
		}
		seen[n.ID] = struct{}{}
		if n.BaseURL == "" {
			return fmt.Errorf("explorer.networks[%d] (%s): baseURL is required", i, n.ID)
		}
	}
	return nil
}
