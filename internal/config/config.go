package config

import (
	"fmt"
	"os"

	"moontools/internal/logger"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "configs/moontools.toml"

type Config struct {
	Compat CompatConfig `toml:"compat"`
	Sheet  SheetConfig  `toml:"sheet"`
	Log    LogConfig    `toml:"log"`
}

type CompatConfig struct {
	File      string `toml:"file"`
	TargetEnv string `toml:"target_env"`
	ExportEnv string `toml:"export_env"`
	Lock      *bool  `toml:"lock"`
}

type SheetConfig struct {
	Workbook string `toml:"workbook"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// LockEnabled reports whether appends to the export file take a lock.
func (c CompatConfig) LockEnabled() bool {
	return c.Lock == nil || *c.Lock
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from the specified config file path.
// A missing file is not an error; the defaults are returned instead.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Debug("Config file not found, using defaults", "path", configPath)
		return Default(), nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Set defaults if missing
	config.applyDefaults()

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Compat.File == "" {
		c.Compat.File = "ci/stellarium-compat.yml"
	}
	if c.Compat.TargetEnv == "" {
		c.Compat.TargetEnv = "REQUESTED_TARGET"
	}
	if c.Compat.ExportEnv == "" {
		c.Compat.ExportEnv = "GITHUB_ENV"
	}
	if c.Sheet.Workbook == "" {
		c.Sheet.Workbook = "/Users/ryder/Downloads/Relaxed-Moon-Avoidance.xlsx"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
