// Package config loads sparkcalc settings from a YAML or TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"sparkcalc/calc"
)

// EnvPath names the environment variable that points at a config file.
const EnvPath = "SPARKCALC_CONFIG"

const (
	maxPrecision   = 17
	maxHistorySize = 1000
)

type Config struct {
	AngleMode   string `yaml:"angle_mode" toml:"angle_mode"`
	Precision   int    `yaml:"precision" toml:"precision"`       // significant digits in results
	HistorySize int    `yaml:"history_size" toml:"history_size"` // entries kept for :hist
	LogLevel    string `yaml:"log_level" toml:"log_level"`
}

func Default() Config {
	return Config{
		AngleMode:   "deg",
		Precision:   calc.DefaultPrecision,
		HistorySize: 10,
		LogLevel:    "info",
	}
}

func (c Config) Validate() error {
	if _, err := calc.ParseAngleMode(c.AngleMode); err != nil {
		return fmt.Errorf("config: angle_mode: %w", err)
	}
	if c.Precision < 1 || c.Precision > maxPrecision {
		return fmt.Errorf("config: precision %d out of range 1..%d", c.Precision, maxPrecision)
	}
	if c.HistorySize < 1 || c.HistorySize > maxHistorySize {
		return fmt.Errorf("config: history_size %d out of range 1..%d", c.HistorySize, maxHistorySize)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// Mode returns the configured angle mode, Degrees if it does not parse.
func (c Config) Mode() calc.AngleMode {
	m, _ := calc.ParseAngleMode(c.AngleMode)
	return m
}

// Engine returns the calc.Engine settings this config describes.
func (c Config) Engine() calc.Config {
	return calc.Config{AngleMode: c.Mode(), Precision: c.Precision}
}

// LoadFile reads path over Default, so keys missing from the file keep their defaults. Files ending
// in .toml are decoded as TOML, anything else as YAML.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parse(path, data)
}

// Load reads the file named by $SPARKCALC_CONFIG, else ~/.sparkcalc/config.yaml, else returns
// Default.
func Load() (Config, error) {
	if envPath := os.Getenv(EnvPath); envPath != "" {
		return LoadFile(envPath)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	homePath := filepath.Join(home, ".sparkcalc", "config.yaml")
	data, err := os.ReadFile(homePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", homePath, err)
	}
	return parse(homePath, data)
}

func parse(path string, data []byte) (Config, error) {
	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: invalid TOML in %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid YAML in %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
