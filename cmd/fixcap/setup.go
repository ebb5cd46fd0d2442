package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fixcap/internal/config"
	"fixcap/internal/logsink"
)

// resolveConfig loads the manifest named by --config, or the nearest
// fixcap.toml above the working directory, or the defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	found, ok, err := config.Find(".")
	if err != nil {
		return config.Config{}, err
	}
	if !ok {
		return config.Default(), nil
	}
	return config.Load(found)
}

// resolveSink builds the stderr diagnostic sink from config and flags.
func resolveSink(cmd *cobra.Command, cfg config.Config) (logsink.Sink, error) {
	level, err := logsink.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if verbose {
		level = logsink.LevelDebug
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if colorMode == "" {
		colorMode = cfg.Log.Color
	}
	var colored bool
	switch colorMode {
	case "on":
		colored = true
	case "off":
		colored = false
	case "auto":
		colored = isTerminal(os.Stderr)
	default:
		return nil, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", colorMode)
	}

	return logsink.NewConsole(os.Stderr, level, colored), nil
}
