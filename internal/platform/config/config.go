package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIBaseURL     = "http://localhost:5000/api"
	DefaultSocketURL      = "ws://localhost:5000/socket"
	DefaultRequestTimeout = 30 * time.Second
)

type LogConfig struct {
	Level      string `yaml:"level"`
	Console    bool   `yaml:"console"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type PositionConfig struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
	Set bool    `yaml:"-"`
}

type fileConfig struct {
	APIBaseURL       string          `yaml:"api_base_url"`
	SocketURL        string          `yaml:"socket_url"`
	RequestTimeoutMS int             `yaml:"request_timeout_ms"`
	Log              LogConfig       `yaml:"log"`
	LocateCommand    string          `yaml:"locate_command"`
	DefaultPosition  *PositionConfig `yaml:"default_position"`
	ClassifierPlugin string          `yaml:"classifier_plugin"`
}

type Config struct {
	HomePath         string
	DBPath           string
	CredentialsPath  string
	SyncPIDPath      string
	APIBaseURL       string
	SocketURL        string
	RequestTimeout   time.Duration
	Log              LogConfig
	LocateCommand    string
	DefaultPosition  PositionConfig
	ClassifierPlugin string
}

// New resolves the home directory and loads config.yaml if present.
// A missing config file is not an error; defaults apply.
func New(homePath string) (Config, error) {
	if homePath == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		homePath = filepath.Join(userHome, ".civiq")
	}

	cfg := Config{
		HomePath:        homePath,
		DBPath:          filepath.Join(homePath, "civiq.db"),
		CredentialsPath: filepath.Join(homePath, "credentials.json"),
		SyncPIDPath:     filepath.Join(homePath, "sync.pid"),
		APIBaseURL:      DefaultAPIBaseURL,
		SocketURL:       DefaultSocketURL,
		RequestTimeout:  DefaultRequestTimeout,
		Log:             LogConfig{Level: "info", Console: true},
	}

	raw, err := os.ReadFile(filepath.Join(homePath, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.SocketURL != "" {
		cfg.SocketURL = fc.SocketURL
	}
	if fc.RequestTimeoutMS > 0 {
		cfg.RequestTimeout = time.Duration(fc.RequestTimeoutMS) * time.Millisecond
	}
	if fc.Log.Level != "" || fc.Log.File != "" {
		cfg.Log = fc.Log
	}
	cfg.LocateCommand = fc.LocateCommand
	cfg.ClassifierPlugin = fc.ClassifierPlugin
	if fc.DefaultPosition != nil {
		cfg.DefaultPosition = PositionConfig{Lat: fc.DefaultPosition.Lat, Lng: fc.DefaultPosition.Lng, Set: true}
	}
	return cfg, nil
}
