package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/internal/async"
	"github.com/examtrack/exam-analyzer/internal/audit"
	"github.com/examtrack/exam-analyzer/internal/common"
	"github.com/examtrack/exam-analyzer/internal/repository"
	"github.com/examtrack/exam-analyzer/internal/storage"
)

var (
	ErrEmptyUpload       = errors.New("upload content is empty")
	ErrUploadTooLarge    = fmt.Errorf("upload exceeds %d bytes", constants.MaxUploadBytes)
	ErrUnsupportedUpload = errors.New("unsupported file type")
)

// Service validates uploads, stores blobs and creates pending exam records.
type Service struct {
	examsRepo repository.ExamRepository
	blobs     storage.BlobStore
	queue     async.Queue
	auditSink audit.Sink
	logger    *slog.Logger
}

func NewService(
	exams repository.ExamRepository,
	blobs storage.BlobStore,
	queue async.Queue,
	sink audit.Sink,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = audit.Nop{}
	}
	return &Service{
		examsRepo: exams,
		blobs:     blobs,
		queue:     queue,
		auditSink: sink,
		logger:    logger,
	}
}

// Upload runs the full ingestion sequence: policy checks, blob store write,
// exam record create, queue enqueue. A record-create failure rolls the blob
// back so storage never holds orphans.
func (s *Service) Upload(ctx context.Context, p UploadParams) (UploadResult, error) {
	var out UploadResult

	if strings.TrimSpace(p.PatientID) == "" {
		return out, common.NewAppError("INVALID_UPLOAD", "patient_id is required", common.ErrInvalidInput)
	}
	if strings.TrimSpace(p.UserID) == "" {
		return out, common.NewAppError("INVALID_UPLOAD", "user_id is required", common.ErrInvalidInput)
	}
	if len(p.Content) == 0 {
		return out, ErrEmptyUpload
	}
	if len(p.Content) > constants.MaxUploadBytes {
		return out, ErrUploadTooLarge
	}

	mimeType := constants.NormalizeMIME(p.MimeType)
	if mimeType == "" {
		mimeType = constants.InferMIMEFromName(p.FileName)
	}
	format := constants.MapMIMEToFormat(mimeType)
	if format == "" || !constants.IsAllowedMIME(mimeType) {
		s.logger.Warn("rejected upload", "file_name", p.FileName, "mime_type", p.MimeType)
		return out, fmt.Errorf("%w: %q", ErrUnsupportedUpload, p.MimeType)
	}

	sum := sha256.Sum256(p.Content)

	if prior, err := s.examsRepo.FindByContentHash(ctx, p.PatientID, sum[:]); err != nil {
		return out, fmt.Errorf("dedup lookup: %w", err)
	} else if prior != nil {
		s.logger.Info("duplicate upload", "patient_id", p.PatientID, "exam_id", prior.ID, "file_name", p.FileName)
		s.auditSink.Record(ctx, audit.Entry{
			Operation: "ingest.duplicate",
			ExamID:    prior.ID.String(),
			UserID:    p.UserID,
		})
		return UploadResult{
			ExamID:    prior.ID.String(),
			Status:    prior.Status,
			HashHex:   hex.EncodeToString(sum[:]),
			Format:    prior.Format,
			Duplicate: true,
			CreatedAt: prior.CreatedAt,
		}, nil
	}

	put, err := s.blobs.Put(ctx, p.Content, p.FileName, mimeType)
	if err != nil {
		return out, fmt.Errorf("store document: %w", err)
	}

	params := repository.CreateExamParams{
		PatientID:   p.PatientID,
		UserID:      p.UserID,
		FileName:    p.FileName,
		FilePath:    put.Path,
		FileSize:    put.Size,
		MimeType:    mimeType,
		Format:      format,
		ContentHash: sum[:],
	}
	if g := strings.ToUpper(strings.TrimSpace(p.Gender)); g == "M" || g == "F" {
		params.PatientGender = &g
	}
	if p.Age > 0 {
		age := p.Age
		params.PatientAge = &age
	}

	exam, err := s.examsRepo.Create(ctx, params)
	if err != nil {
		// roll the blob back; a dangling record is worse than a retried upload
		if derr := s.blobs.Delete(ctx, put.Path); derr != nil {
			s.logger.Error("blob rollback failed", "path", put.Path, "error", derr)
		}
		return out, fmt.Errorf("create exam: %w", err)
	}

	s.auditSink.Record(ctx, audit.Entry{
		Operation: "ingest.upload",
		ExamID:    exam.ID.String(),
		UserID:    p.UserID,
		Detail:    format,
	})

	if err := s.queue.Enqueue(ctx, async.Job{ExamID: exam.ID, SubmittedAt: exam.CreatedAt}); err != nil {
		s.logger.Error("enqueue failed", "exam_id", exam.ID, "error", err)
	}

	out = UploadResult{
		ExamID:    exam.ID.String(),
		Status:    exam.Status,
		HashHex:   hex.EncodeToString(sum[:]),
		Format:    format,
		CreatedAt: exam.CreatedAt,
	}
	return out, nil
}

// IngestPath uploads one local file on behalf of a patient.
func (s *Service) IngestPath(ctx context.Context, patientID, userID, path string) (UploadResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return UploadResult{}, err
	}
	mimeType := constants.InferMIMEFromName(abs)
	if mimeType == "" {
		return UploadResult{}, fmt.Errorf("%w: %q", ErrUnsupportedUpload, filepath.Ext(abs))
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return UploadResult{}, err
	}
	return s.Upload(ctx, UploadParams{
		PatientID: patientID,
		UserID:    userID,
		FileName:  filepath.Base(abs),
		MimeType:  mimeType,
		Content:   content,
	})
}

// IngestDirectory walks root, skips hidden entries if requested, and uploads
// every supported file. Per-file failures are counted, not fatal.
func (s *Service) IngestDirectory(ctx context.Context, patientID, userID, root string, skipHidden bool) ([]UploadResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []UploadResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if constants.InferMIMEFromName(path) == "" {
			return nil
		}
		stats.Matched++

		r, err := s.IngestPath(ctx, patientID, userID, path)
		if err != nil {
			s.logger.Warn("directory ingest: file failed", "path", path, "error", err)
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

// isHidden checks if a file or directory is hidden (starts with '.').
func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
