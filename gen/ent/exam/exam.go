// Code generated by ent, DO NOT EDIT.

package exam

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the exam type in the database.
	Label = "exam"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPatientGender holds the string denoting the patient_gender field in the database.
	FieldPatientGender = "patient_gender"
	// FieldPatientAge holds the string denoting the patient_age field in the database.
	FieldPatientAge = "patient_age"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOcrText holds the string denoting the ocr_text field in the database.
	FieldOcrText = "ocr_text"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldBiomarkerSummary holds the string denoting the biomarker_summary field in the database.
	FieldBiomarkerSummary = "biomarker_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldProcessingStartedAt holds the string denoting the processing_started_at field in the database.
	FieldProcessingStartedAt = "processing_started_at"
	// FieldProcessingCompletedAt holds the string denoting the processing_completed_at field in the database.
	FieldProcessingCompletedAt = "processing_completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBiomarkers holds the string denoting the biomarkers edge name in mutations.
	EdgeBiomarkers = "biomarkers"
	// Table holds the table name of the exam in the database.
	Table = "exams"
	// BiomarkersTable is the table that holds the biomarkers relation/edge.
	BiomarkersTable = "biomarkers"
	// BiomarkersInverseTable is the table name for the Biomarker entity.
	// It exists in this package in order to avoid circular dependency with the "biomarker" package.
	BiomarkersInverseTable = "biomarkers"
	// BiomarkersColumn is the table column denoting the biomarkers relation/edge.
	BiomarkersColumn = "exam_id"
)

// Columns holds all SQL columns for exam fields.
var Columns = []string{
	FieldID,
	FieldPatientID,
	FieldUserID,
	FieldPatientGender,
	FieldPatientAge,
	FieldFileName,
	FieldFilePath,
	FieldFileSize,
	FieldMimeType,
	FieldFormat,
	FieldContentHash,
	FieldStatus,
	FieldOcrText,
	FieldOcrConfidence,
	FieldBiomarkerSummary,
	FieldErrorMessage,
	FieldProcessingStartedAt,
	FieldProcessingCompletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	PatientIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// PatientGenderValidator is a validator for the "patient_gender" field. It is called by the builders before save.
	PatientGenderValidator func(string) error
	// PatientAgeValidator is a validator for the "patient_age" field. It is called by the builders before save.
	PatientAgeValidator func(int) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	MimeTypeValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Exam queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPatientGender orders the results by the patient_gender field.
func ByPatientGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientGender, opts...).ToFunc()
}

// ByPatientAge orders the results by the patient_age field.
func ByPatientAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientAge, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOcrText orders the results by the ocr_text field.
func ByOcrText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrText, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByBiomarkerSummary orders the results by the biomarker_summary field.
func ByBiomarkerSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBiomarkerSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByProcessingStartedAt orders the results by the processing_started_at field.
func ByProcessingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStartedAt, opts...).ToFunc()
}

// ByProcessingCompletedAt orders the results by the processing_completed_at field.
func ByProcessingCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBiomarkersCount orders the results by biomarkers count.
func ByBiomarkersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBiomarkersStep(), opts...)
	}
}

// ByBiomarkers orders the results by biomarkers terms.
func ByBiomarkers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBiomarkersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBiomarkersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BiomarkersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BiomarkersTable, BiomarkersColumn),
	)
}
