// Package config loads server configuration from YAML with sensible
// defaults; flags in cmd override individual fields.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string `yaml:"addr"`
	DBPath   string `yaml:"db_path"`
	LogLevel string `yaml:"log_level"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Addr:     ":8080",
		DBPath:   "./mapcolor.db",
		LogLevel: "info",
		Board:    Board{Width: 800, Height: 600},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Board.Width <= 0 || cfg.Board.Height <= 0 {
		return cfg, fmt.Errorf("invalid board size %gx%g", cfg.Board.Width, cfg.Board.Height)
	}
	return cfg, nil
}
