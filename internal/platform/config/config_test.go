package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"civiq/internal/platform/config"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	cfg, err := config.New(home)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.APIBaseURL != config.DefaultAPIBaseURL {
		t.Fatalf("unexpected api base url %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != config.DefaultRequestTimeout {
		t.Fatalf("unexpected timeout %s", cfg.RequestTimeout)
	}
	if cfg.DBPath != filepath.Join(home, "civiq.db") || cfg.CredentialsPath != filepath.Join(home, "credentials.json") {
		t.Fatalf("unexpected paths: %+v", cfg)
	}
	if cfg.DefaultPosition.Set {
		t.Fatalf("default position should be unset")
	}
}

func TestConfigFileOverrides(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	raw := `
api_base_url: https://civiq.example.org/api
socket_url: wss://civiq.example.org/socket
request_timeout_ms: 5000
locate_command: termux-location
classifier_plugin: /usr/local/bin/civiq-classifier
default_position:
  lat: 12.97
  lng: 77.59
log:
  level: debug
  file: /tmp/civiq.log
`
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(home)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.APIBaseURL != "https://civiq.example.org/api" || cfg.SocketURL != "wss://civiq.example.org/socket" {
		t.Fatalf("urls not applied: %+v", cfg)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("timeout not applied: %s", cfg.RequestTimeout)
	}
	if cfg.LocateCommand != "termux-location" || cfg.ClassifierPlugin != "/usr/local/bin/civiq-classifier" {
		t.Fatalf("commands not applied: %+v", cfg)
	}
	if !cfg.DefaultPosition.Set || cfg.DefaultPosition.Lat != 12.97 {
		t.Fatalf("default position not applied: %+v", cfg.DefaultPosition)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/civiq.log" {
		t.Fatalf("log config not applied: %+v", cfg.Log)
	}
}
