package entity

import (
	"time"

	"github.com/google/uuid"
)

// Exam represents one uploaded exam document for data transfer between layers.
type Exam struct {
	ID                    uuid.UUID  `json:"id"`
	PatientID             string     `json:"patient_id"`
	UserID                string     `json:"user_id"`
	PatientGender         *string    `json:"patient_gender,omitempty"` // "M" | "F"
	PatientAge            *int       `json:"patient_age,omitempty"`
	FileName              string     `json:"file_name"`
	FilePath              string     `json:"file_path"` // blob store path
	FileSize              int        `json:"file_size"`
	MimeType              string     `json:"mime_type"`
	Format                string     `json:"format"` // constants.PDF | IMAGE | TXT
	ContentHash           []byte     `json:"content_hash"`
	Status                string     `json:"status"`
	OCRText               *string    `json:"ocr_text,omitempty"`
	OCRConfidence         *float32   `json:"ocr_confidence,omitempty"`
	BiomarkerSummary      *string    `json:"biomarker_summary,omitempty"`
	ErrorMessage          *string    `json:"error_message,omitempty"`
	ProcessingStartedAt   *time.Time `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time `json:"processing_completed_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
