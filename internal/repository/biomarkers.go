package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/gen/ent"
	entbiomarker "github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/utils"
)

type BiomarkerRepository interface {
	// ReplaceForExam atomically swaps the exam's biomarker set. Re-analysis
	// runs call this too, so stale rows never survive a rerun.
	ReplaceForExam(ctx context.Context, examID uuid.UUID, biomarkers []entity.Biomarker) ([]*entity.Biomarker, error)
	ListByExam(ctx context.Context, examID uuid.UUID) ([]*entity.Biomarker, error)
	CountByExam(ctx context.Context, examID uuid.UUID) (int, error)
}

type biomarkerRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBiomarkerRepository(entc *ent.Client, logger *slog.Logger) BiomarkerRepository {
	return &biomarkerRepo{ent: entc, logger: logger}
}

func (r *biomarkerRepo) ReplaceForExam(ctx context.Context, examID uuid.UUID, biomarkers []entity.Biomarker) ([]*entity.Biomarker, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	rollback := func(err error) ([]*entity.Biomarker, error) {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "exam_id", examID, "error", rerr)
		}
		return nil, err
	}

	if _, err := tx.Biomarker.Delete().
		Where(entbiomarker.ExamID(examID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear biomarkers", "exam_id", examID, "error", err)
		return rollback(err)
	}

	builders := make([]*ent.BiomarkerCreate, 0, len(biomarkers))
	for _, bm := range biomarkers {
		b := tx.Biomarker.Create().
			SetExamID(examID).
			SetName(bm.Name).
			SetNormalizedName(bm.NormalizedName).
			SetValue(bm.Value).
			SetUnit(bm.Unit).
			SetStatus(bm.Status).
			SetSeverity(bm.Severity).
			SetInterpretation(bm.Interpretation).
			SetConfidenceScore(bm.ConfidenceScore).
			SetRawText(bm.RawText)
		if bm.ReferenceMin != nil {
			b = b.SetReferenceMin(*bm.ReferenceMin)
		}
		if bm.ReferenceMax != nil {
			b = b.SetReferenceMax(*bm.ReferenceMax)
		}
		builders = append(builders, b)
	}
	rows, err := tx.Biomarker.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create biomarkers", "exam_id", examID, "error", err)
		return rollback(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("biomarkers stored", "exam_id", examID, "count", len(rows))

	out := make([]*entity.Biomarker, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToBiomarker(row))
	}
	return out, nil
}

func (r *biomarkerRepo) ListByExam(ctx context.Context, examID uuid.UUID) ([]*entity.Biomarker, error) {
	rows, err := r.ent.Biomarker.Query().
		Where(entbiomarker.ExamID(examID)).
		Order(ent.Asc(entbiomarker.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list biomarkers", "exam_id", examID, "error", err)
		return nil, err
	}
	out := make([]*entity.Biomarker, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToBiomarker(row))
	}
	return out, nil
}

func (r *biomarkerRepo) CountByExam(ctx context.Context, examID uuid.UUID) (int, error) {
	return r.ent.Biomarker.Query().
		Where(entbiomarker.ExamID(examID)).
		Count(ctx)
}
