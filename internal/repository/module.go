package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this
// directory. No business logic here — strictly persistence operations.

import (
	"context"

	"modupload/internal/model"
)

// ModuleRepository defines data access for module records.
type ModuleRepository interface {
	// Create inserts a new module row associated with the given
	// subscription plan and returns the generated id.
	Create(ctx context.Context, mod *model.Module, subscriptionPlanID int) (int64, error)
}

// ResourceRecord is the persistence shape of one resource row.
// Exactly one of Content/StorageKey is set: Content carries the file
// text inline, StorageKey points at the object-storage copy.
// NextResourceID links to the resource that follows in declared order;
// nil marks the last resource of the chain.
type ResourceRecord struct {
	ModuleID       int64
	Content        *string
	StorageKey     *string
	NextResourceID *int64
}

// ResourceRepository defines data access for resource records.
type ResourceRepository interface {
	// Create inserts a new resource row and returns the generated id.
	Create(ctx context.Context, rec *ResourceRecord) (int64, error)
}
