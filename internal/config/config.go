package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variable overrides for the remote feature service. They win
// over config.json so credentials never need to live on disk.
const (
	EnvServiceURL   = "GEOBRIDGE_SERVICE_URL"
	EnvServiceToken = "GEOBRIDGE_SERVICE_TOKEN"
)

// Config represents the flat geobridge configuration
type Config struct {
	Version       string  `json:"version"`
	OutputDir     string  `json:"output_dir,omitempty"`     // default artifact directory
	RainfallIndex float64 `json:"rainfall_index,omitempty"` // default scenario input
	ServiceURL    string  `json:"service_url,omitempty"`    // feature-service endpoint
	ServiceToken  string  `json:"service_token,omitempty"`  // feature-service credential
}

// LoadConfig reads .geobridge/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".geobridge", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	bridgeDir := filepath.Join(dir, ".geobridge")
	if err := os.MkdirAll(bridgeDir, 0755); err != nil {
		return fmt.Errorf("failed to create .geobridge dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(bridgeDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{
		Version:       "1",
		OutputDir:     "output",
		RainfallIndex: 0.6,
	}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if url := os.Getenv(EnvServiceURL); url != "" {
		c.ServiceURL = url
	}
	if token := os.Getenv(EnvServiceToken); token != "" {
		c.ServiceToken = token
	}
}
