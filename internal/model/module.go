package model

// Package model contains domain models/data structures.
// Pure data, no database-specific dependencies or tags; usable across
// layers (CLI, service, repository) without coupling to persistence.

// Module is the metadata of an uploadable module, read from its YAML
// description file.
type Module struct {
	Name        string
	Description string
}

// Resource is a single content file belonging to a module. Name is the
// bare filename; Content holds the file bytes decoded as UTF-8 text.
type Resource struct {
	Name    string
	Content string
}
