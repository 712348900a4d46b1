package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the server settings. Everything has a default so the
// server runs without a config file at all.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	AllowOrigins string `yaml:"allow_origins"`
	DatabasePath string `yaml:"database_path"`
}

func defaultConfig() Config {
	return Config{
		ListenAddr:   ":8000",
		AllowOrigins: "*",
		DatabasePath: "./chess.db",
	}
}

// Load reads the YAML config at path. A missing file is not an error; a
// present but unreadable or malformed file is. The PORT environment
// variable overrides the listen address either way.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.ListenAddr = ":" + port
	}
	return cfg, nil
}
