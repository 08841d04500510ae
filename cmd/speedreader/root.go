package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/RileyTheRiler/Speed-Reader/internal/config"
	"github.com/RileyTheRiler/Speed-Reader/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
	closeLog  = func() error { return nil }
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "speedreader",
		Short:         "Rapid serial visual presentation reader",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			activeCfg = loaded
			return setupLogger(loaded.LogLevel, loaded.LogFile)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return closeLog()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newEstimateCmd())
	cmd.AddCommand(newPresetsCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr, file string) error {
	lvl, err := logging.ParseLevel(levelStr)
	if err != nil {
		lvl = slog.LevelWarn
	}
	logger, closeFn, err := logging.New(logging.Options{
		Level:  lvl,
		Writer: os.Stderr,
		File:   file,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	closeLog = closeFn
	return nil
}

func requireConfig() (config.Config, error) {
	if activeCfg.Reader.WPM == 0 {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}
