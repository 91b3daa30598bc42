package entity

import (
	"time"

	"github.com/google/uuid"
)

// RawObservation is one biomarker mention found in extracted text, prior to
// clinical interpretation. Created once per pattern match and immutable
// afterward; only the analyzed form is persisted.
type RawObservation struct {
	CatalogKey      string  `json:"catalog_key"`      // e.g. "hemoglobina"
	NormalizedName  string  `json:"normalized_name"`  // e.g. "Hb"
	DisplayName     string  `json:"display_name"`     // literal name substring from the text
	Value           float64 `json:"value"`            // 0.0 when the captured value did not parse
	Unit            string  `json:"unit"`             // captured or inferred
	SourceText      string  `json:"source_text"`      // exact matched substring, kept for audit
	MatchConfidence float64 `json:"match_confidence"` // 0-100
}

// Biomarker is one fully interpreted reading, persisted per exam.
type Biomarker struct {
	ID              uuid.UUID `json:"id"`
	ExamID          uuid.UUID `json:"exam_id"`
	Name            string    `json:"name"` // display name from the source text
	NormalizedName  string    `json:"normalized_name"`
	Value           float64   `json:"value"`
	Unit            string    `json:"unit"`
	Status          string    `json:"status"`   // constants.BiomarkerStatus values
	Severity        string    `json:"severity"` // constants.Severity values
	Interpretation  string    `json:"interpretation"`
	ReferenceMin    *float64  `json:"reference_min,omitempty"`
	ReferenceMax    *float64  `json:"reference_max,omitempty"`
	ConfidenceScore float64   `json:"confidence_score"`
	RawText         string    `json:"raw_text"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReferenceRange is an externally supplied clinical bound. Read-only input
// to the analyzer; owned by the reference-data collaborator.
type ReferenceRange struct {
	ID             uuid.UUID `json:"id"`
	BiomarkerName  string    `json:"biomarker_name"`
	NormalizedName string    `json:"normalized_name"`
	MinValue       float64   `json:"min_value"`
	MaxValue       float64   `json:"max_value"`
	Unit           string    `json:"unit"`
	Gender         *string   `json:"gender,omitempty"` // "M" | "F" | nil (any)
	AgeMin         *int      `json:"age_min,omitempty"`
	AgeMax         *int      `json:"age_max,omitempty"`
	Source         string    `json:"source"`
	IsActive       bool      `json:"is_active"`
}

// AnalysisSummary aggregates one exam's analyzed biomarkers. Recomputed
// fresh on every analysis run, never updated incrementally.
type AnalysisSummary struct {
	Total             int            `json:"total_biomarkers"`
	NormalCount       int            `json:"normal_count"`
	AbnormalCount     int            `json:"abnormal_count"`
	SeverityBreakdown map[string]int `json:"severity_breakdown"`
	CriticalCount     int            `json:"critical_count"`
	Narrative         string         `json:"summary_text"`
	GeneratedAt       time.Time      `json:"generated_at"`
}
