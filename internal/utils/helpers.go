package utils

import (
	"encoding/hex"
	"time"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/gen/ent"
	examspb "github.com/examtrack/exam-analyzer/gen/proto/exams/v1"
	"github.com/examtrack/exam-analyzer/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func ToExam(e *ent.Exam) *entity.Exam {
	return &entity.Exam{
		ID:                    e.ID,
		PatientID:             e.PatientID,
		UserID:                e.UserID,
		PatientGender:         e.PatientGender,
		PatientAge:            e.PatientAge,
		FileName:              e.FileName,
		FilePath:              e.FilePath,
		FileSize:              e.FileSize,
		MimeType:              e.MimeType,
		Format:                e.Format,
		ContentHash:           e.ContentHash,
		Status:                e.Status,
		OCRText:               e.OcrText,
		OCRConfidence:         e.OcrConfidence,
		BiomarkerSummary:      e.BiomarkerSummary,
		ErrorMessage:          e.ErrorMessage,
		ProcessingStartedAt:   e.ProcessingStartedAt,
		ProcessingCompletedAt: e.ProcessingCompletedAt,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

func ToBiomarker(e *ent.Biomarker) *entity.Biomarker {
	return &entity.Biomarker{
		ID:              e.ID,
		ExamID:          e.ExamID,
		Name:            e.Name,
		NormalizedName:  e.NormalizedName,
		Value:           e.Value,
		Unit:            e.Unit,
		Status:          e.Status,
		Severity:        e.Severity,
		Interpretation:  e.Interpretation,
		ReferenceMin:    e.ReferenceMin,
		ReferenceMax:    e.ReferenceMax,
		ConfidenceScore: e.ConfidenceScore,
		RawText:         e.RawText,
		CreatedAt:       e.CreatedAt,
	}
}

func ToReferenceRange(e *ent.ReferenceRange) *entity.ReferenceRange {
	return &entity.ReferenceRange{
		ID:             e.ID,
		BiomarkerName:  e.BiomarkerName,
		NormalizedName: e.NormalizedName,
		MinValue:       e.MinValue,
		MaxValue:       e.MaxValue,
		Unit:           e.Unit,
		Gender:         e.Gender,
		AgeMin:         e.AgeMin,
		AgeMax:         e.AgeMax,
		Source:         e.Source,
		IsActive:       e.IsActive,
	}
}

func ToPBExam(x *entity.Exam) *examspb.Exam {
	var conf float32
	if x.OCRConfidence != nil {
		conf = *x.OCRConfidence
	}
	return &examspb.Exam{
		Id:             x.ID.String(),
		PatientId:      x.PatientID,
		UserId:         x.UserID,
		FileName:       x.FileName,
		FileSize:       int32(x.FileSize),
		MimeType:       x.MimeType,
		Format:         x.Format,
		ContentHashHex: hex.EncodeToString(x.ContentHash),
		Status:         x.Status,
		StatusMessage:  constants.StatusMessage(constants.ExamStatus(x.Status)),
		OcrConfidence:  conf,
		ErrorMessage:   strOrEmpty(x.ErrorMessage),
		CreatedAt:      x.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      x.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBBiomarker(b *entity.Biomarker) *examspb.Biomarker {
	pb := &examspb.Biomarker{
		Id:              b.ID.String(),
		ExamId:          b.ExamID.String(),
		Name:            b.Name,
		NormalizedName:  b.NormalizedName,
		Value:           b.Value,
		Unit:            b.Unit,
		Status:          b.Status,
		Severity:        b.Severity,
		Interpretation:  b.Interpretation,
		ConfidenceScore: b.ConfidenceScore,
	}
	if b.ReferenceMin != nil && b.ReferenceMax != nil {
		pb.HasReference = true
		pb.ReferenceMin = *b.ReferenceMin
		pb.ReferenceMax = *b.ReferenceMax
	}
	return pb
}

func ToPBReferenceRange(r *entity.ReferenceRange) *examspb.ReferenceRange {
	pb := &examspb.ReferenceRange{
		Id:             r.ID.String(),
		BiomarkerName:  r.BiomarkerName,
		NormalizedName: r.NormalizedName,
		MinValue:       r.MinValue,
		MaxValue:       r.MaxValue,
		Unit:           r.Unit,
		Gender:         strOrEmpty(r.Gender),
		Source:         r.Source,
	}
	if r.AgeMin != nil {
		pb.AgeMin = int32(*r.AgeMin)
	}
	if r.AgeMax != nil {
		pb.AgeMax = int32(*r.AgeMax)
	}
	return pb
}

func ToPBSummary(s *entity.AnalysisSummary) *examspb.AnalysisSummary {
	breakdown := make(map[string]int32, len(s.SeverityBreakdown))
	for k, v := range s.SeverityBreakdown {
		breakdown[k] = int32(v)
	}
	return &examspb.AnalysisSummary{
		TotalBiomarkers:   int32(s.Total),
		NormalCount:       int32(s.NormalCount),
		AbnormalCount:     int32(s.AbnormalCount),
		SeverityBreakdown: breakdown,
		CriticalCount:     int32(s.CriticalCount),
		SummaryText:       s.Narrative,
		GeneratedAt:       s.GeneratedAt.UTC().Format(time.RFC3339),
	}
}

func TimestampOrEmpty(p *time.Time) string { return timeOrEmpty(p) }
