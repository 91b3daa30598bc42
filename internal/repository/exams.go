package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/gen/ent"
	entexam "github.com/examtrack/exam-analyzer/gen/ent/exam"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/utils"
)

// CreateExamParams carries the fields known at upload time.
type CreateExamParams struct {
	PatientID     string
	UserID        string
	PatientGender *string // "M" | "F" | nil
	PatientAge    *int
	FileName      string
	FilePath      string
	FileSize      int
	MimeType      string
	Format        string
	ContentHash   []byte
}

type ExamRepository interface {
	Create(ctx context.Context, p CreateExamParams) (*entity.Exam, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exam, error)
	// FindByContentHash returns the patient's most recent exam with the same
	// file hash, or nil when none exists.
	FindByContentHash(ctx context.Context, patientID string, hash []byte) (*entity.Exam, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*entity.Exam, error)
	// MarkProcessing transitions pending -> processing and stamps the start time.
	MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error
	SaveOCRResult(ctx context.Context, id uuid.UUID, text string, confidence float32) error
	// Complete transitions to the terminal completed state with the summary narrative.
	Complete(ctx context.Context, id uuid.UUID, summary string, completedAt time.Time) error
	// Fail transitions to the terminal failed state with a diagnostic message.
	Fail(ctx context.Context, id uuid.UUID, message string, completedAt time.Time) error
}

type examRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewExamRepository(entc *ent.Client, logger *slog.Logger) ExamRepository {
	return &examRepo{ent: entc, logger: logger}
}

func (r *examRepo) Create(ctx context.Context, p CreateExamParams) (*entity.Exam, error) {
	b := r.ent.Exam.Create().
		SetPatientID(p.PatientID).
		SetUserID(p.UserID).
		SetFileName(p.FileName).
		SetFilePath(p.FilePath).
		SetFileSize(p.FileSize).
		SetMimeType(p.MimeType).
		SetFormat(p.Format).
		SetContentHash(p.ContentHash).
		SetStatus(string(constants.ExamStatusPending))
	if p.PatientGender != nil {
		b = b.SetPatientGender(*p.PatientGender)
	}
	if p.PatientAge != nil {
		b = b.SetPatientAge(*p.PatientAge)
	}
	row, err := b.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create exam", "patient_id", p.PatientID, "file_name", p.FileName, "error", err)
		return nil, err
	}
	r.logger.Info("exam created", "exam_id", row.ID, "patient_id", p.PatientID, "format", p.Format)
	return utils.ToExam(row), nil
}

func (r *examRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exam, error) {
	row, err := r.ent.Exam.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToExam(row), nil
}

func (r *examRepo) FindByContentHash(ctx context.Context, patientID string, hash []byte) (*entity.Exam, error) {
	row, err := r.ent.Exam.Query().
		Where(entexam.PatientID(patientID), entexam.ContentHash(hash)).
		Order(ent.Desc(entexam.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to query exam by content hash", "patient_id", patientID, "error", err)
		return nil, err
	}
	return utils.ToExam(row), nil
}

func (r *examRepo) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*entity.Exam, error) {
	q := r.ent.Exam.Query().
		Where(entexam.PatientID(patientID)).
		Order(ent.Desc(entexam.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list exams", "patient_id", patientID, "error", err)
		return nil, err
	}
	exams := make([]*entity.Exam, 0, len(rows))
	for _, row := range rows {
		exams = append(exams, utils.ToExam(row))
	}
	return exams, nil
}

func (r *examRepo) MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	_, err := r.ent.Exam.UpdateOneID(id).
		SetStatus(string(constants.ExamStatusProcessing)).
		SetProcessingStartedAt(startedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark exam processing", "exam_id", id, "error", err)
		return err
	}
	r.logger.Info("exam processing", "exam_id", id)
	return nil
}

func (r *examRepo) SaveOCRResult(ctx context.Context, id uuid.UUID, text string, confidence float32) error {
	_, err := r.ent.Exam.UpdateOneID(id).
		SetOcrText(text).
		SetOcrConfidence(confidence).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save ocr result", "exam_id", id, "error", err)
		return err
	}
	return nil
}

func (r *examRepo) Complete(ctx context.Context, id uuid.UUID, summary string, completedAt time.Time) error {
	_, err := r.ent.Exam.UpdateOneID(id).
		SetStatus(string(constants.ExamStatusCompleted)).
		SetBiomarkerSummary(summary).
		SetProcessingCompletedAt(completedAt).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to complete exam", "exam_id", id, "error", err)
		return err
	}
	r.logger.Info("exam completed", "exam_id", id)
	return nil
}

func (r *examRepo) Fail(ctx context.Context, id uuid.UUID, message string, completedAt time.Time) error {
	_, err := r.ent.Exam.UpdateOneID(id).
		SetStatus(string(constants.ExamStatusFailed)).
		SetErrorMessage(message).
		SetProcessingCompletedAt(completedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark exam failed", "exam_id", id, "error", err)
		return err
	}
	r.logger.Warn("exam failed", "exam_id", id, "error", message)
	return nil
}
