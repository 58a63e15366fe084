package cli

import (
	"log/slog"

	"trialboard/internal/migrations"
	"trialboard/internal/server"

	"github.com/spf13/cobra"
)

var flagMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagMigrate {
			if err := migrations.Up(cfg.MigrateURL()); err != nil {
				return err
			}
			slog.Info("migrations applied")
		}

		s, err := server.Init(cfg)
		if err != nil {
			return err
		}
		return s.Run()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&flagMigrate, "migrate", true, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}
