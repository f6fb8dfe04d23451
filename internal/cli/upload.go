package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modupload/internal/config"
	"modupload/internal/database"
	"modupload/internal/model"
	"modupload/internal/modfile"
	"modupload/internal/repository/postgres"
	"modupload/internal/service"
	"modupload/internal/storage"
)

// Swappable in tests, same as database.sqlOpen.
var (
	openDatabase = database.NewPostgres
	newStorage   = storage.NewMinIO
	newUploader  = service.NewUploadService
)

func runUpload(cmd *cobra.Command, args []string) error {
	rootPath := args[0]
	if _, err := os.Stat(rootPath); err != nil {
		return fmt.Errorf("invalid path %q: %w", rootPath, err)
	}

	logger := newLogger()

	// All file reading happens before the database is touched, so a
	// missing or malformed file aborts the run with nothing inserted.
	resources, err := modfile.Resources(rootPath)
	if err != nil {
		return err
	}
	logger.Info().Int("resources", len(resources)).Str("path", rootPath).Msg("resources collected")

	mod, err := loadModule(rootPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	var store storage.Storage
	if cfg.StorageEnabled {
		store, err = newStorage(cfg.MinIO)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
	}

	svc := newUploader(
		postgres.NewModulePostgres(db),
		postgres.NewResourcePostgres(db),
		store,
		logger,
	)

	result, err := svc.Upload(cmd.Context(), mod, resources, subscriptionPlanID)
	if err != nil {
		return err
	}

	logger.Info().
		Int64("module_id", result.ModuleID).
		Int("resources", len(result.ResourceIDs)).
		Msg("upload complete")
	return nil
}

// loadModule reads the module metadata from the --module path when
// given (a description file or a directory to search), or from the
// module directory itself.
func loadModule(rootPath string) (*model.Module, error) {
	target := rootPath
	if modulePath != "" {
		target = modulePath
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("invalid module path %q: %w", target, err)
	}
	if info.IsDir() {
		return modfile.Module(target)
	}
	return modfile.ModuleFromFile(target)
}
