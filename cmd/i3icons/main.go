package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/i3icons/internal/config"
)

var version = "dev"

// globalFlags are shared by the root command and its subcommands.
type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:   "i3icons",
		Short: "Replace i3status wireless, battery and volume text with icons",
		Long: `Reads an i3status stream on stdin and writes it to stdout with the
wireless, battery and volume blocks turned into icons. Use it as a pipe
stage in the i3 bar config:

  bar {
    status_command i3status | i3icons
  }`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.RunE = filterRunE(&g, rootCmd)

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (default ~/.config/i3icons/config.toml)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the config)")

	rootCmd.AddCommand(previewCmd(&g))
	rootCmd.AddCommand(doctorCmd(&g))

	return rootCmd
}

// setup loads the config and installs the stderr logger every command uses.
func setup(g *globalFlags, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	levelName := cfg.Log.Level
	if g.logLevel != "" {
		levelName = g.logLevel
	}
	level, err := config.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
