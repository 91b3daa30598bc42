package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/examtrack/exam-analyzer/internal/analyze"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/recognize"
	"github.com/examtrack/exam-analyzer/internal/repository"
)

type AnalyzeStage struct {
	RangesRepo     repository.ReferenceRangeRepository
	BiomarkersRepo repository.BiomarkerRepository
	Recognizer     *recognize.Recognizer
	Analyzer       *analyze.Analyzer
	Logger         *slog.Logger
}

func NewAnalyzeStage(
	ranges repository.ReferenceRangeRepository,
	biomarkers repository.BiomarkerRepository,
	rec *recognize.Recognizer,
	an *analyze.Analyzer,
	logger *slog.Logger,
) *AnalyzeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeStage{
		RangesRepo:     ranges,
		BiomarkersRepo: biomarkers,
		Recognizer:     rec,
		Analyzer:       an,
		Logger:         logger,
	}
}

// Run recognizes biomarker mentions in text, interprets them against the
// active reference ranges and replaces the exam's stored biomarker set.
// Zero recognized observations is a valid outcome, not an error.
func (s *AnalyzeStage) Run(ctx context.Context, exam *entity.Exam, text string) ([]*entity.Biomarker, entity.AnalysisSummary, error) {
	result := s.Recognizer.Recognize(text)

	ranges, err := s.RangesRepo.ListActive(ctx)
	if err != nil {
		return nil, entity.AnalysisSummary{}, fmt.Errorf("load reference ranges: %w", err)
	}

	demo := demographics(exam)
	biomarkers, summary := s.Analyzer.Analyze(result.Observations, ranges, exam.ID, demo)

	stored, err := s.BiomarkersRepo.ReplaceForExam(ctx, exam.ID, biomarkers)
	if err != nil {
		return nil, entity.AnalysisSummary{}, fmt.Errorf("store biomarkers: %w", err)
	}

	s.Logger.Info("analyze stage done",
		"exam_id", exam.ID,
		"observations", len(result.Observations),
		"biomarkers", len(stored),
		"critical", summary.CriticalCount,
	)
	return stored, summary, nil
}

func demographics(exam *entity.Exam) *analyze.Demographics {
	if exam.PatientGender == nil && exam.PatientAge == nil {
		return nil
	}
	d := &analyze.Demographics{}
	if exam.PatientGender != nil {
		d.Gender = *exam.PatientGender
	}
	if exam.PatientAge != nil {
		d.Age = *exam.PatientAge
	}
	return d
}
