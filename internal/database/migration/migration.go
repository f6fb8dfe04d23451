package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Column names are quoted CamelCase to match the schema the uploader
// inserts into; Content and StorageKey are mutually exclusive in
// practice (inline content vs object-storage offload).
var steps = []migrationStep{
	{
		Name: "create_table_module",
		SQL: `CREATE TABLE IF NOT EXISTS "module" (
  "Id"                 SERIAL PRIMARY KEY,
  "ModuleName"         TEXT   NOT NULL,
  "ModuleDescription"  TEXT   NOT NULL,
  "SubscriptionPlanId" INTEGER NOT NULL
);`,
	},
	{
		Name: "create_table_resource",
		SQL: `CREATE TABLE IF NOT EXISTS "resource" (
  "Id"             SERIAL PRIMARY KEY,
  "ModuleId"       INTEGER NOT NULL REFERENCES "module" ("Id"),
  "Content"        TEXT,
  "StorageKey"     TEXT,
  "NextResourceId" INTEGER REFERENCES "resource" ("Id")
);`,
	},
	{
		Name: "create_index_resource_module_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_resource_module_id ON "resource" ("ModuleId");`,
	},
}

// EnsureMigrated checks if the 'module' table exists and runs the
// migration steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	start := time.Now()

	var exists bool
	query := `SELECT to_regclass('public.module') IS NOT NULL`
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info().
			Dur("duration", time.Since(start)).
			Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logger.Info().
			Str("step", step.Name).
			Dur("duration", time.Since(stepStart)).
			Msg("migration step applied")
	}

	logger.Info().
		Dur("duration", time.Since(start)).
		Msg("schema created")

	return nil
}
