// Code generated by ent, DO NOT EDIT.

package exam

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUserID, v))
}

// PatientGender applies equality check predicate on the "patient_gender" field. It's identical to PatientGenderEQ.
func PatientGender(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientGender, v))
}

// PatientAge applies equality check predicate on the "patient_age" field. It's identical to PatientAgeEQ.
func PatientAge(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientAge, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldFileName, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldFilePath, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldFileSize, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldMimeType, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldFormat, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldContentHash, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldStatus, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldOcrText, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float32) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldOcrConfidence, v))
}

// BiomarkerSummary applies equality check predicate on the "biomarker_summary" field. It's identical to BiomarkerSummaryEQ.
func BiomarkerSummary(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldBiomarkerSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldErrorMessage, v))
}

// ProcessingStartedAt applies equality check predicate on the "processing_started_at" field. It's identical to ProcessingStartedAtEQ.
func ProcessingStartedAt(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// ProcessingCompletedAt applies equality check predicate on the "processing_completed_at" field. It's identical to ProcessingCompletedAtEQ.
func ProcessingCompletedAt(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldProcessingCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldPatientID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldUserID, v))
}

// PatientGenderEQ applies the EQ predicate on the "patient_gender" field.
func PatientGenderEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientGender, v))
}

// PatientGenderNEQ applies the NEQ predicate on the "patient_gender" field.
func PatientGenderNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldPatientGender, v))
}

// PatientGenderIn applies the In predicate on the "patient_gender" field.
func PatientGenderIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldPatientGender, vs...))
}

// PatientGenderNotIn applies the NotIn predicate on the "patient_gender" field.
func PatientGenderNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldPatientGender, vs...))
}

// PatientGenderGT applies the GT predicate on the "patient_gender" field.
func PatientGenderGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldPatientGender, v))
}

// PatientGenderGTE applies the GTE predicate on the "patient_gender" field.
func PatientGenderGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldPatientGender, v))
}

// PatientGenderLT applies the LT predicate on the "patient_gender" field.
func PatientGenderLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldPatientGender, v))
}

// PatientGenderLTE applies the LTE predicate on the "patient_gender" field.
func PatientGenderLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldPatientGender, v))
}

// PatientGenderContains applies the Contains predicate on the "patient_gender" field.
func PatientGenderContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldPatientGender, v))
}

// PatientGenderHasPrefix applies the HasPrefix predicate on the "patient_gender" field.
func PatientGenderHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldPatientGender, v))
}

// PatientGenderHasSuffix applies the HasSuffix predicate on the "patient_gender" field.
func PatientGenderHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldPatientGender, v))
}

// PatientGenderIsNil applies the IsNil predicate on the "patient_gender" field.
func PatientGenderIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldPatientGender))
}

// PatientGenderNotNil applies the NotNil predicate on the "patient_gender" field.
func PatientGenderNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldPatientGender))
}

// PatientGenderEqualFold applies the EqualFold predicate on the "patient_gender" field.
func PatientGenderEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldPatientGender, v))
}

// PatientGenderContainsFold applies the ContainsFold predicate on the "patient_gender" field.
func PatientGenderContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldPatientGender, v))
}

// PatientAgeEQ applies the EQ predicate on the "patient_age" field.
func PatientAgeEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldPatientAge, v))
}

// PatientAgeNEQ applies the NEQ predicate on the "patient_age" field.
func PatientAgeNEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldPatientAge, v))
}

// PatientAgeIn applies the In predicate on the "patient_age" field.
func PatientAgeIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldPatientAge, vs...))
}

// PatientAgeNotIn applies the NotIn predicate on the "patient_age" field.
func PatientAgeNotIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldPatientAge, vs...))
}

// PatientAgeGT applies the GT predicate on the "patient_age" field.
func PatientAgeGT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldPatientAge, v))
}

// PatientAgeGTE applies the GTE predicate on the "patient_age" field.
func PatientAgeGTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldPatientAge, v))
}

// PatientAgeLT applies the LT predicate on the "patient_age" field.
func PatientAgeLT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldPatientAge, v))
}

// PatientAgeLTE applies the LTE predicate on the "patient_age" field.
func PatientAgeLTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldPatientAge, v))
}

// PatientAgeIsNil applies the IsNil predicate on the "patient_age" field.
func PatientAgeIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldPatientAge))
}

// PatientAgeNotNil applies the NotNil predicate on the "patient_age" field.
func PatientAgeNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldPatientAge))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldFileName, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldFilePath, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldFileSize, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldMimeType, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldFormat, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldContentHash, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldStatus, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldOcrText, v))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float32) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float32) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float32) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float32) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float32) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float32) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float32) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float32) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldOcrConfidence, v))
}

// OcrConfidenceIsNil applies the IsNil predicate on the "ocr_confidence" field.
func OcrConfidenceIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldOcrConfidence))
}

// OcrConfidenceNotNil applies the NotNil predicate on the "ocr_confidence" field.
func OcrConfidenceNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldOcrConfidence))
}

// BiomarkerSummaryEQ applies the EQ predicate on the "biomarker_summary" field.
func BiomarkerSummaryEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryNEQ applies the NEQ predicate on the "biomarker_summary" field.
func BiomarkerSummaryNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryIn applies the In predicate on the "biomarker_summary" field.
func BiomarkerSummaryIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldBiomarkerSummary, vs...))
}

// BiomarkerSummaryNotIn applies the NotIn predicate on the "biomarker_summary" field.
func BiomarkerSummaryNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldBiomarkerSummary, vs...))
}

// BiomarkerSummaryGT applies the GT predicate on the "biomarker_summary" field.
func BiomarkerSummaryGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryGTE applies the GTE predicate on the "biomarker_summary" field.
func BiomarkerSummaryGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryLT applies the LT predicate on the "biomarker_summary" field.
func BiomarkerSummaryLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryLTE applies the LTE predicate on the "biomarker_summary" field.
func BiomarkerSummaryLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryContains applies the Contains predicate on the "biomarker_summary" field.
func BiomarkerSummaryContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryHasPrefix applies the HasPrefix predicate on the "biomarker_summary" field.
func BiomarkerSummaryHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryHasSuffix applies the HasSuffix predicate on the "biomarker_summary" field.
func BiomarkerSummaryHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryIsNil applies the IsNil predicate on the "biomarker_summary" field.
func BiomarkerSummaryIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldBiomarkerSummary))
}

// BiomarkerSummaryNotNil applies the NotNil predicate on the "biomarker_summary" field.
func BiomarkerSummaryNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldBiomarkerSummary))
}

// BiomarkerSummaryEqualFold applies the EqualFold predicate on the "biomarker_summary" field.
func BiomarkerSummaryEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldBiomarkerSummary, v))
}

// BiomarkerSummaryContainsFold applies the ContainsFold predicate on the "biomarker_summary" field.
func BiomarkerSummaryContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldBiomarkerSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Exam {
	return predicate.Exam(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Exam {
	return predicate.Exam(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProcessingStartedAtEQ applies the EQ predicate on the "processing_started_at" field.
func ProcessingStartedAtEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtNEQ applies the NEQ predicate on the "processing_started_at" field.
func ProcessingStartedAtNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIn applies the In predicate on the "processing_started_at" field.
func ProcessingStartedAtIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtNotIn applies the NotIn predicate on the "processing_started_at" field.
func ProcessingStartedAtNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtGT applies the GT predicate on the "processing_started_at" field.
func ProcessingStartedAtGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtGTE applies the GTE predicate on the "processing_started_at" field.
func ProcessingStartedAtGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLT applies the LT predicate on the "processing_started_at" field.
func ProcessingStartedAtLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLTE applies the LTE predicate on the "processing_started_at" field.
func ProcessingStartedAtLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIsNil applies the IsNil predicate on the "processing_started_at" field.
func ProcessingStartedAtIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldProcessingStartedAt))
}

// ProcessingStartedAtNotNil applies the NotNil predicate on the "processing_started_at" field.
func ProcessingStartedAtNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldProcessingStartedAt))
}

// ProcessingCompletedAtEQ applies the EQ predicate on the "processing_completed_at" field.
func ProcessingCompletedAtEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtNEQ applies the NEQ predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtIn applies the In predicate on the "processing_completed_at" field.
func ProcessingCompletedAtIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldProcessingCompletedAt, vs...))
}

// ProcessingCompletedAtNotIn applies the NotIn predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldProcessingCompletedAt, vs...))
}

// ProcessingCompletedAtGT applies the GT predicate on the "processing_completed_at" field.
func ProcessingCompletedAtGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtGTE applies the GTE predicate on the "processing_completed_at" field.
func ProcessingCompletedAtGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtLT applies the LT predicate on the "processing_completed_at" field.
func ProcessingCompletedAtLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtLTE applies the LTE predicate on the "processing_completed_at" field.
func ProcessingCompletedAtLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtIsNil applies the IsNil predicate on the "processing_completed_at" field.
func ProcessingCompletedAtIsNil() predicate.Exam {
	return predicate.Exam(sql.FieldIsNull(FieldProcessingCompletedAt))
}

// ProcessingCompletedAtNotNil applies the NotNil predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNotNil() predicate.Exam {
	return predicate.Exam(sql.FieldNotNull(FieldProcessingCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Exam {
	return predicate.Exam(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBiomarkers applies the HasEdge predicate on the "biomarkers" edge.
func HasBiomarkers() predicate.Exam {
	return predicate.Exam(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BiomarkersTable, BiomarkersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBiomarkersWith applies the HasEdge predicate on the "biomarkers" edge with a given conditions (other predicates).
func HasBiomarkersWith(preds ...predicate.Biomarker) predicate.Exam {
	return predicate.Exam(func(s *sql.Selector) {
		step := newBiomarkersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Exam) predicate.Exam {
	return predicate.Exam(sql.NotPredicates(p))
}
