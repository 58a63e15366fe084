package cli

import (
	"log/slog"

	"trialboard/internal/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migrations.Up(cfg.MigrateURL()); err != nil {
			return err
		}
		slog.Info("migrations applied")
		return nil
	},
}

var flagSteps int

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migrations.Down(cfg.MigrateURL(), flagSteps); err != nil {
			return err
		}
		slog.Info("migrations rolled back", "steps", flagSteps)
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&flagSteps, "steps", 1, "number of migrations to roll back, 0 for all")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
