// Package pipeline orchestrates the exam lifecycle: OCR extraction followed
// by biomarker recognition and clinical analysis, with the exam record
// advanced through pending -> processing -> completed | failed.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/internal/audit"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/repository"
)

type Processor struct {
	ocrStage     *OCRStage
	analyzeStage *AnalyzeStage
	examsRepo    repository.ExamRepository
	auditSink    audit.Sink
	logger       *slog.Logger
}

func NewProcessor(
	ocrStage *OCRStage,
	analyzeStage *AnalyzeStage,
	exams repository.ExamRepository,
	sink audit.Sink,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = audit.Nop{}
	}
	return &Processor{
		ocrStage:     ocrStage,
		analyzeStage: analyzeStage,
		examsRepo:    exams,
		auditSink:    sink,
		logger:       logger,
	}
}

// ProcessExam runs the full pipeline for one exam. Any stage failure marks
// the exam failed with a diagnostic; a failed exam never keeps biomarkers
// from a partial run.
func (p *Processor) ProcessExam(ctx context.Context, examID uuid.UUID) error {
	p.auditSink.Record(ctx, audit.Entry{Operation: "pipeline.start", ExamID: examID.String()})

	exam, res, err := p.ocrStage.Run(ctx, examID)
	if err != nil {
		return p.fail(ctx, examID, fmt.Errorf("ocr: %w", err))
	}

	_, summary, err := p.analyzeStage.Run(ctx, exam, res.Text)
	if err != nil {
		return p.fail(ctx, examID, fmt.Errorf("analyze: %w", err))
	}

	if err := p.examsRepo.Complete(ctx, examID, summary.Narrative, time.Now().UTC()); err != nil {
		return p.fail(ctx, examID, fmt.Errorf("complete exam: %w", err))
	}

	p.auditSink.Record(ctx, audit.Entry{Operation: "pipeline.completed", ExamID: examID.String()})
	return nil
}

// Reanalyze reruns recognition and analysis over already extracted text.
// Used when an exam has OCR text but no stored biomarkers, e.g. after the
// reference catalog changed.
func (p *Processor) Reanalyze(ctx context.Context, exam *entity.Exam) ([]*entity.Biomarker, entity.AnalysisSummary, error) {
	if exam.OCRText == nil || *exam.OCRText == "" {
		return nil, entity.AnalysisSummary{}, fmt.Errorf("exam %s has no extracted text", exam.ID)
	}
	p.auditSink.Record(ctx, audit.Entry{Operation: "pipeline.reanalyze", ExamID: exam.ID.String()})

	biomarkers, summary, err := p.analyzeStage.Run(ctx, exam, *exam.OCRText)
	if err != nil {
		return nil, entity.AnalysisSummary{}, err
	}
	if err := p.examsRepo.Complete(ctx, exam.ID, summary.Narrative, time.Now().UTC()); err != nil {
		return nil, entity.AnalysisSummary{}, fmt.Errorf("complete exam: %w", err)
	}
	return biomarkers, summary, nil
}

func (p *Processor) fail(ctx context.Context, examID uuid.UUID, cause error) error {
	p.logger.Error("pipeline failed", "exam_id", examID, "error", cause)
	p.auditSink.Record(ctx, audit.Entry{Operation: "pipeline.failed", ExamID: examID.String(), Err: cause})
	if err := p.examsRepo.Fail(ctx, examID, cause.Error(), time.Now().UTC()); err != nil {
		p.logger.Error("failed to record exam failure", "exam_id", examID, "error", err)
	}
	return cause
}
