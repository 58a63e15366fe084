// Package cli implements the trialboard commands.
package cli

import (
	"fmt"
	"os"

	"trialboard/internal/config"
	"trialboard/internal/logging"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagLogLevel  string
	flagLogFormat string
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "trialboard",
	Short:         "Kanban board and timeline service for clinical-trial tasks",
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cfg = config.Load()
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = flagLogLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = flagLogFormat
		}
		logging.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format: text or json")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
