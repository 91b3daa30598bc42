package extract

import (
	"context"
	"log/slog"

	"github.com/examtrack/exam-analyzer/internal/ocr"
)

type OCRAdapter struct {
	e *ocr.Extractor
}

func NewOCRAdapter(e *ocr.Extractor, _ *slog.Logger) *OCRAdapter {
	return &OCRAdapter{e: e}
}

func (a *OCRAdapter) Extract(ctx context.Context, content []byte, mimeType, filename string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, content, mimeType, filename)
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
		Confidence: r.Confidence,
		TextHash:   r.TextHash,
	}, err
}
