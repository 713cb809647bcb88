package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkcalc/calc"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, calc.Degrees, cfg.Mode())
	assert.Equal(t, calc.Config{AngleMode: calc.Degrees, Precision: 10}, cfg.Engine())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "radians", mutate: func(c *Config) { c.AngleMode = "RAD" }},
		{name: "bad mode", mutate: func(c *Config) { c.AngleMode = "grad" }, wantErr: "config: angle_mode"},
		{name: "zero precision", mutate: func(c *Config) { c.Precision = 0 }, wantErr: "config: precision 0"},
		{name: "huge precision", mutate: func(c *Config) { c.Precision = 18 }, wantErr: "config: precision 18"},
		{name: "no history", mutate: func(c *Config) { c.HistorySize = 0 }, wantErr: "config: history_size"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "config: log_level"},
		{name: "debug level", mutate: func(c *Config) { c.LogLevel = "debug" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "angle_mode: rad\nprecision: 6\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, calc.Radians, cfg.Mode())
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "angle_mode = \"rad\"\nhistory_size = 25\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, calc.Radians, cfg.Mode())
	assert.Equal(t, 25, cfg.HistorySize)
	assert.Equal(t, 10, cfg.Precision)

	_, err = LoadFile(writeFile(t, dir, "broken.toml", "angle_mode = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid TOML")
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeFile(t, dir, "broken.yaml", "angle_mode: [deg\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")

	_, err = LoadFile(writeFile(t, dir, "invalid.yaml", "history_size: 5000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history_size")
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "calc.yaml", "history_size: 3\nlog_level: debug\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.HistorySize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvPath, "")
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	writeFile(t, home, filepath.Join(".sparkcalc", "config.yaml"), "angle_mode: radians\n")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, calc.Radians, cfg.Mode())
}
