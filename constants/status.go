package constants

// ExamStatus is the canonical processing state for rows in exams.
type ExamStatus string

// Stable values (store these exact strings in DB).
const (
	ExamStatusPending    ExamStatus = "pending"    // uploaded, waiting for a worker
	ExamStatusProcessing ExamStatus = "processing" // OCR + analysis in progress
	ExamStatusCompleted  ExamStatus = "completed"  // terminal success
	ExamStatusFailed     ExamStatus = "failed"     // terminal failure
)

// ExamStatuses holds the allowed values for the exam status field.
var ExamStatuses = []string{
	string(ExamStatusPending),
	string(ExamStatusProcessing),
	string(ExamStatusCompleted),
	string(ExamStatusFailed),
}

// StatusMessage returns the user-facing description for an exam status.
func StatusMessage(s ExamStatus) string {
	switch s {
	case ExamStatusPending:
		return "Exame aguardando processamento"
	case ExamStatusProcessing:
		return "Exame sendo processado (OCR em andamento)"
	case ExamStatusCompleted:
		return "Processamento concluído com sucesso"
	case ExamStatusFailed:
		return "Falha no processamento"
	default:
		return "Status desconhecido"
	}
}

// BiomarkerStatus classifies a reading relative to its reference range.
type BiomarkerStatus string

const (
	BiomarkerNormal  BiomarkerStatus = "normal"
	BiomarkerLow     BiomarkerStatus = "low"
	BiomarkerHigh    BiomarkerStatus = "high"
	BiomarkerUnknown BiomarkerStatus = "unknown" // no matching reference range
	BiomarkerError   BiomarkerStatus = "error"   // analysis of this reading failed
)

// BiomarkerStatuses holds the allowed values for the biomarker status field.
var BiomarkerStatuses = []string{
	string(BiomarkerNormal),
	string(BiomarkerLow),
	string(BiomarkerHigh),
	string(BiomarkerUnknown),
	string(BiomarkerError),
}

// Severity grades how far an abnormal value deviates from the breached bound.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
	SeverityUnknown  Severity = "unknown"
)

// Severities holds the allowed values for the biomarker severity field.
var Severities = []string{
	string(SeverityNormal),
	string(SeverityMild),
	string(SeverityModerate),
	string(SeveritySevere),
	string(SeverityCritical),
	string(SeverityUnknown),
}
