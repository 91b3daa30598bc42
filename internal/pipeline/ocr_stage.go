package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/extract"
	"github.com/examtrack/exam-analyzer/internal/repository"
	"github.com/examtrack/exam-analyzer/internal/storage"
)

type OCRStage struct {
	ExamsRepo     repository.ExamRepository
	Blobs         storage.BlobStore
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(exams repository.ExamRepository, blobs storage.BlobStore, tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{ExamsRepo: exams, Blobs: blobs, TextExtractor: tx, Logger: logger}
}

// Run transitions the exam to processing, fetches the stored document and
// extracts its text. The extracted text and confidence are persisted before
// returning so a later analysis failure never loses OCR work.
func (s *OCRStage) Run(ctx context.Context, examID uuid.UUID) (*entity.Exam, extract.TextExtractionResult, error) {
	exam, err := s.ExamsRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, extract.TextExtractionResult{}, fmt.Errorf("get exam: %w", err)
	}

	if err := s.ExamsRepo.MarkProcessing(ctx, examID, time.Now().UTC()); err != nil {
		return exam, extract.TextExtractionResult{}, fmt.Errorf("mark processing: %w", err)
	}

	content, err := s.Blobs.Get(ctx, exam.FilePath)
	if err != nil {
		return exam, extract.TextExtractionResult{}, fmt.Errorf("load document: %w", err)
	}

	res, err := s.TextExtractor.Extract(ctx, content, exam.MimeType, exam.FileName)
	if err != nil {
		return exam, res, fmt.Errorf("extract text: %w", err)
	}
	s.Logger.Debug("ocr stage done",
		"exam_id", examID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
	)

	if err := s.ExamsRepo.SaveOCRResult(ctx, examID, res.Text, res.Confidence); err != nil {
		return exam, res, fmt.Errorf("save ocr result: %w", err)
	}
	return exam, res, nil
}
