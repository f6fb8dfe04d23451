package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"modupload/internal/config"
	"modupload/internal/database"
	"modupload/internal/database/migration"
)

// migrateCmd creates the module/resource tables if they are missing.
// Uploads never migrate implicitly.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the module and resource tables if they do not exist",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	return migration.EnsureMigrated(cmd.Context(), db, logger)
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
