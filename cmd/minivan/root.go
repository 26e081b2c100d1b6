package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minivan/config"
	"github.com/katalvlaran/minivan/minivan"
)

var (
	// configFlag is the --config flag value
	configFlag string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "minivan",
	Short: "minivan - attribute models for graph visualization",
	Long: `minivan infers a visualization model for the node and edge attributes of a
graph: partitions with per-modality flow statistics and colors, and size or
color rankings with observed ranges.

Configuration is layered: defaults, minivan.yaml|toml|json in the working
directory (or --config), .env and MINIVAN_* variables, then flags.`,
	Version:       minivan.BundleVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("minivan bundle version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: ./minivan.{yaml,toml,json})")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")
}

// loadConfig resolves the layered configuration against the flags of cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFlag,
		EnvFile:    config.DefaultEnvFile(),
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, newLogger(cfg), nil
}
