package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	bridgeDir := filepath.Join(tmpDir, ".geobridge")
	if err := os.MkdirAll(bridgeDir, 0755); err != nil {
		t.Fatalf("failed to create .geobridge dir: %v", err)
	}
	doc := `{"version":"1","output_dir":"artifacts","rainfall_index":0.8,"service_url":"https://service.example"}`
	if err := os.WriteFile(filepath.Join(bridgeDir, "config.json"), []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OutputDir != "artifacts" || cfg.RainfallIndex != 0.8 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ServiceURL != "https://service.example" {
		t.Errorf("ServiceURL = %q", cfg.ServiceURL)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("expected error when config file is missing")
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{Version: "1", OutputDir: "out", RainfallIndex: 0.6}
	if err := SaveConfig(tmpDir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.OutputDir != "out" || loaded.RainfallIndex != 0.6 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestEnvOverridesServiceCredentials(t *testing.T) {
	t.Setenv(EnvServiceURL, "https://override.example")
	t.Setenv(EnvServiceToken, "env-token")

	cfg := Default()
	if cfg.ServiceURL != "https://override.example" {
		t.Errorf("ServiceURL = %q", cfg.ServiceURL)
	}
	if cfg.ServiceToken != "env-token" {
		t.Errorf("ServiceToken = %q", cfg.ServiceToken)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.RainfallIndex != 0.6 {
		t.Errorf("RainfallIndex = %v", cfg.RainfallIndex)
	}
}
