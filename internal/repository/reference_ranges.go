package repository

import (
	"context"
	"log/slog"

	"github.com/examtrack/exam-analyzer/gen/ent"
	entrange "github.com/examtrack/exam-analyzer/gen/ent/referencerange"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/utils"
)

type ReferenceRangeRepository interface {
	ListActive(ctx context.Context) ([]entity.ReferenceRange, error)
	ListByName(ctx context.Context, normalizedName string) ([]entity.ReferenceRange, error)
	Count(ctx context.Context) (int, error)
	// SeedIfEmpty inserts rows only when the table has no rows yet, so
	// operator-curated ranges are never overwritten on restart.
	SeedIfEmpty(ctx context.Context, rows []entity.ReferenceRange) (int, error)
}

type referenceRangeRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewReferenceRangeRepository(entc *ent.Client, logger *slog.Logger) ReferenceRangeRepository {
	return &referenceRangeRepo{ent: entc, logger: logger}
}

func (r *referenceRangeRepo) ListActive(ctx context.Context) ([]entity.ReferenceRange, error) {
	rows, err := r.ent.ReferenceRange.Query().
		Where(entrange.IsActive(true)).
		Order(ent.Asc(entrange.FieldNormalizedName)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list reference ranges", "error", err)
		return nil, err
	}
	return toRanges(rows), nil
}

func (r *referenceRangeRepo) ListByName(ctx context.Context, normalizedName string) ([]entity.ReferenceRange, error) {
	rows, err := r.ent.ReferenceRange.Query().
		Where(
			entrange.NormalizedNameEqualFold(normalizedName),
			entrange.IsActive(true),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list reference ranges by name", "normalized_name", normalizedName, "error", err)
		return nil, err
	}
	return toRanges(rows), nil
}

func (r *referenceRangeRepo) Count(ctx context.Context) (int, error) {
	return r.ent.ReferenceRange.Query().Count(ctx)
}

func (r *referenceRangeRepo) SeedIfEmpty(ctx context.Context, rows []entity.ReferenceRange) (int, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Info("reference ranges already seeded", "count", n)
		return 0, nil
	}

	builders := make([]*ent.ReferenceRangeCreate, 0, len(rows))
	for _, row := range rows {
		b := r.ent.ReferenceRange.Create().
			SetBiomarkerName(row.BiomarkerName).
			SetNormalizedName(row.NormalizedName).
			SetMinValue(row.MinValue).
			SetMaxValue(row.MaxValue).
			SetUnit(row.Unit).
			SetSource(row.Source).
			SetIsActive(row.IsActive)
		if row.Gender != nil {
			b = b.SetGender(*row.Gender)
		}
		if row.AgeMin != nil {
			b = b.SetAgeMin(*row.AgeMin)
		}
		if row.AgeMax != nil {
			b = b.SetAgeMax(*row.AgeMax)
		}
		builders = append(builders, b)
	}
	created, err := r.ent.ReferenceRange.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to seed reference ranges", "error", err)
		return 0, err
	}
	r.logger.Info("reference ranges seeded", "count", len(created))
	return len(created), nil
}

func toRanges(rows []*ent.ReferenceRange) []entity.ReferenceRange {
	out := make([]entity.ReferenceRange, 0, len(rows))
	for _, row := range rows {
		out = append(out, *utils.ToReferenceRange(row))
	}
	return out
}
