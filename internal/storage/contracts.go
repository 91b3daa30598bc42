// Package storage defines the blob-store collaborator the pipeline persists
// exam files through, plus a filesystem-backed implementation for local
// deployments and tests.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrBlobNotFound = errors.New("blob not found")

// PutResult describes a stored blob.
type PutResult struct {
	Path string // store-relative path, persisted on the exam record
	Size int
}

// BlobStore stores exam documents. Byte-size limits and MIME allow-lists
// are enforced by the caller (ingest), not here.
type BlobStore interface {
	Put(ctx context.Context, content []byte, name, mimeType string) (PutResult, error)
	Get(ctx context.Context, path string) ([]byte, error)
	// SignedURL returns a time-limited access URL for path.
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, path string) error
}
