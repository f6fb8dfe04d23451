package storage

import (
	"context"
	"io"
)

// Package storage contains object storage abstractions for
// S3-compatible backends. Implementations must rely on streaming I/O
// only; no local disk.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set
// to -1 and the implementation will buffer/chunk as supported by the
// backend. ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

// Storage is a reusable, S3-compatible object storage client
// interface covering the operations the uploader needs: putting
// resource content and deleting it again when a database insert fails.
type Storage interface {
	// Put uploads an object under the given key using the provided
	// reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
