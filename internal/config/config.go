package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for a local development setup.
const (
	DefaultAPIURL  = "http://localhost:8080"
	DefaultSiteURL = "http://localhost:3000"
)

// Config holds user preferences for the voltlab CLI.
type Config struct {
	APIURL   string `yaml:"api_url"`   // Voltlab API base URL
	SiteURL  string `yaml:"site_url"`  // Voltlab web site base URL, used by the login flow
	LogLevel string `yaml:"log_level"` // zerolog level: debug, info, warn, error
}

// DefaultConfig returns default settings.
func DefaultConfig() *Config {
	return &Config{
		APIURL:   DefaultAPIURL,
		SiteURL:  DefaultSiteURL,
		LogLevel: "info",
	}
}

// Dir returns the voltlab state directory (~/.voltlab).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".voltlab"), nil
}

// Load reads ~/.voltlab/config.yaml and applies environment overrides.
// A missing file is not an error; defaults apply. Environment variables
// (VOLTLAB_API_URL, VOLTLAB_SITE_URL, VOLTLAB_LOG_LEVEL) beat file values.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(dir, "config.yaml")

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.APIURL = getEnv("VOLTLAB_API_URL", c.APIURL)
	c.SiteURL = getEnv("VOLTLAB_SITE_URL", c.SiteURL)
	c.LogLevel = getEnv("VOLTLAB_LOG_LEVEL", c.LogLevel)
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Save writes the config to ~/.voltlab/config.yaml.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
