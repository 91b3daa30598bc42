package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/examtrack/exam-analyzer/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	examsRepo      repository.ExamRepository
	biomarkersRepo repository.BiomarkerRepository
	logger         *slog.Logger
}

func NewService(exams repository.ExamRepository, biomarkers repository.BiomarkerRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{examsRepo: exams, biomarkersRepo: biomarkers, logger: logger}
}

// ExportExamXLSX returns an XLSX workbook (as bytes) with the exam's analyzed
// biomarkers, one row per reading.
func (s *Service) ExportExamXLSX(ctx context.Context, examID uuid.UUID) ([]byte, error) {
	start := time.Now()

	exam, err := s.examsRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("query exam: %w", err)
	}
	biomarkers, err := s.biomarkersRepo.ListByExam(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("query biomarkers: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Biomarkers"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Biomarker",
		"Normalized Name",
		"Value",
		"Unit",
		"Status",
		"Severity",
		"Reference Min",
		"Reference Max",
		"Interpretation",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, bm := range biomarkers {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, bm.Name)
		write(2, bm.NormalizedName)
		write(3, bm.Value)
		write(4, bm.Unit)
		write(5, bm.Status)
		write(6, bm.Severity)
		if bm.ReferenceMin != nil {
			write(7, *bm.ReferenceMin)
		}
		if bm.ReferenceMax != nil {
			write(8, *bm.ReferenceMax)
		}
		write(9, truncate(bm.Interpretation, 140))
		write(10, bm.ConfidenceScore)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 22)
	_ = f.SetColWidth(sheet, "C", "D", 12)
	_ = f.SetColWidth(sheet, "E", "F", 12)
	_ = f.SetColWidth(sheet, "G", "H", 14)
	_ = f.SetColWidth(sheet, "I", "I", 48)
	_ = f.SetColWidth(sheet, "J", "J", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"exam_id", examID.String(),
		"file_name", exam.FileName,
		"rows", len(biomarkers),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
