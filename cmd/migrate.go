package cmd

import (
	"bodylover-backend/config"
	"bodylover-backend/internal/database"
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply the embedded SQL migrations on postgres. With DB_DRIVER=sqlite the
schema is created from the models instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := initLogger(cfg); err != nil {
			return err
		}

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if cfg.DBDriver != "postgres" {
			return database.AutoMigrate(db)
		}
		return database.RunMigrations(db)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
}
