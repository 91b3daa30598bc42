// Package ingest accepts exam documents, validates them against the upload
// policy, stores the blob and creates the pending exam record.
package ingest

import (
	"context"
	"time"
)

// UploadParams carries one exam document and its ownership metadata.
type UploadParams struct {
	PatientID string
	UserID    string
	Gender    string // "M", "F" or empty
	Age       int    // 0 when unknown
	FileName  string
	MimeType  string // inferred from FileName when empty
	Content   []byte
}

// UploadResult is the per-upload outcome.
type UploadResult struct {
	ExamID    string
	Status    string
	HashHex   string
	Format    string
	Duplicate bool // an exam with the same content already exists for this patient
	CreatedAt time.Time
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Ingestor is the behavior the service depends on.
type Ingestor interface {
	Upload(ctx context.Context, p UploadParams) (UploadResult, error)
	// IngestPath uploads a single file from the local filesystem.
	IngestPath(ctx context.Context, patientID, userID, path string) (UploadResult, error)
	// IngestDirectory uploads all matching files under root.
	IngestDirectory(ctx context.Context, patientID, userID, root string, skipHidden bool) ([]UploadResult, DirStats, error)
}
