package postgres

import (
	"context"
	"database/sql"

	"modupload/internal/model"
	"modupload/internal/repository"
)

// ModulePostgres is a PostgreSQL implementation of
// repository.ModuleRepository. It uses database/sql with parameterized
// queries and contains no business logic.
type ModulePostgres struct {
	db *sql.DB
}

// NewModulePostgres creates a new ModulePostgres repository.
func NewModulePostgres(db *sql.DB) *ModulePostgres {
	return &ModulePostgres{db: db}
}

var _ repository.ModuleRepository = (*ModulePostgres)(nil)

// Create inserts a new module row and returns its generated id.
func (r *ModulePostgres) Create(ctx context.Context, mod *model.Module, subscriptionPlanID int) (int64, error) {
	const q = `
		INSERT INTO "module" ("ModuleDescription", "SubscriptionPlanId", "ModuleName")
		VALUES ($1, $2, $3)
		RETURNING "Id"
	`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		mod.Description,
		subscriptionPlanID,
		mod.Name,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ResourcePostgres is a PostgreSQL implementation of
// repository.ResourceRepository.
type ResourcePostgres struct {
	db *sql.DB
}

// NewResourcePostgres creates a new ResourcePostgres repository.
func NewResourcePostgres(db *sql.DB) *ResourcePostgres {
	return &ResourcePostgres{db: db}
}

var _ repository.ResourceRepository = (*ResourcePostgres)(nil)

// Create inserts a new resource row and returns its generated id.
// Nil Content/StorageKey/NextResourceID become SQL NULLs.
func (r *ResourcePostgres) Create(ctx context.Context, rec *repository.ResourceRecord) (int64, error) {
	const q = `
		INSERT INTO "resource" ("ModuleId", "Content", "StorageKey", "NextResourceId")
		VALUES ($1, $2, $3, $4)
		RETURNING "Id"
	`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		rec.ModuleID,
		rec.Content,
		rec.StorageKey,
		rec.NextResourceID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
