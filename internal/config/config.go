// Package config loads the CLI configuration from fixcap.toml, discovered
// by walking up from the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest the loader searches for.
const FileName = "fixcap.toml"

// Config is the full CLI configuration.
type Config struct {
	Log  LogConfig  `toml:"log"`
	Dump DumpConfig `toml:"dump"`
}

// LogConfig controls the diagnostic sink.
type LogConfig struct {
	Level string `toml:"level"`
	Color string `toml:"color"`
}

// DumpConfig controls hexdump streaming.
type DumpConfig struct {
	ChunkSize int `toml:"chunk_size"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Log:  LogConfig{Level: "warning", Color: "auto"},
		Dump: DumpConfig{ChunkSize: 256},
	}
}

// Find walks up from startDir looking for FileName. Returns the manifest
// path and whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Log.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("log.color must be auto, on or off, got %q", c.Log.Color)
	}
	if c.Dump.ChunkSize <= 0 {
		return fmt.Errorf("dump.chunk_size must be positive, got %d", c.Dump.ChunkSize)
	}
	return nil
}
