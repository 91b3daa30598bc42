// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/examtrack/exam-analyzer/db/ent/schema"
	"github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/gen/ent/exam"
	"github.com/examtrack/exam-analyzer/gen/ent/referencerange"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	biomarkerFields := schema.Biomarker{}.Fields()
	_ = biomarkerFields
	// biomarkerDescName is the schema descriptor for name field.
	biomarkerDescName := biomarkerFields[2].Descriptor()
	// biomarker.NameValidator is a validator for the "name" field. It is called by the builders before save.
	biomarker.NameValidator = biomarkerDescName.Validators[0].(func(string) error)
	// biomarkerDescNormalizedName is the schema descriptor for normalized_name field.
	biomarkerDescNormalizedName := biomarkerFields[3].Descriptor()
	// biomarker.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	biomarker.NormalizedNameValidator = biomarkerDescNormalizedName.Validators[0].(func(string) error)
	// biomarkerDescStatus is the schema descriptor for status field.
	biomarkerDescStatus := biomarkerFields[6].Descriptor()
	// biomarker.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	biomarker.StatusValidator = biomarkerDescStatus.Validators[0].(func(string) error)
	// biomarkerDescSeverity is the schema descriptor for severity field.
	biomarkerDescSeverity := biomarkerFields[7].Descriptor()
	// biomarker.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	biomarker.SeverityValidator = biomarkerDescSeverity.Validators[0].(func(string) error)
	// biomarkerDescCreatedAt is the schema descriptor for created_at field.
	biomarkerDescCreatedAt := biomarkerFields[13].Descriptor()
	// biomarker.DefaultCreatedAt holds the default value on creation for the created_at field.
	biomarker.DefaultCreatedAt = biomarkerDescCreatedAt.Default.(func() time.Time)
	// biomarkerDescID is the schema descriptor for id field.
	biomarkerDescID := biomarkerFields[0].Descriptor()
	// biomarker.DefaultID holds the default value on creation for the id field.
	biomarker.DefaultID = biomarkerDescID.Default.(func() uuid.UUID)
	examFields := schema.Exam{}.Fields()
	_ = examFields
	// examDescPatientID is the schema descriptor for patient_id field.
	examDescPatientID := examFields[1].Descriptor()
	// exam.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	exam.PatientIDValidator = examDescPatientID.Validators[0].(func(string) error)
	// examDescUserID is the schema descriptor for user_id field.
	examDescUserID := examFields[2].Descriptor()
	// exam.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	exam.UserIDValidator = examDescUserID.Validators[0].(func(string) error)
	// examDescPatientGender is the schema descriptor for patient_gender field.
	examDescPatientGender := examFields[3].Descriptor()
	// exam.PatientGenderValidator is a validator for the "patient_gender" field. It is called by the builders before save.
	exam.PatientGenderValidator = examDescPatientGender.Validators[0].(func(string) error)
	// examDescPatientAge is the schema descriptor for patient_age field.
	examDescPatientAge := examFields[4].Descriptor()
	// exam.PatientAgeValidator is a validator for the "patient_age" field. It is called by the builders before save.
	exam.PatientAgeValidator = examDescPatientAge.Validators[0].(func(int) error)
	// examDescFileName is the schema descriptor for file_name field.
	examDescFileName := examFields[5].Descriptor()
	// exam.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	exam.FileNameValidator = examDescFileName.Validators[0].(func(string) error)
	// examDescFilePath is the schema descriptor for file_path field.
	examDescFilePath := examFields[6].Descriptor()
	// exam.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	exam.FilePathValidator = examDescFilePath.Validators[0].(func(string) error)
	// examDescFileSize is the schema descriptor for file_size field.
	examDescFileSize := examFields[7].Descriptor()
	// exam.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	exam.FileSizeValidator = examDescFileSize.Validators[0].(func(int) error)
	// examDescMimeType is the schema descriptor for mime_type field.
	examDescMimeType := examFields[8].Descriptor()
	// exam.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	exam.MimeTypeValidator = examDescMimeType.Validators[0].(func(string) error)
	// examDescFormat is the schema descriptor for format field.
	examDescFormat := examFields[9].Descriptor()
	// exam.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	exam.FormatValidator = func() func(string) error {
		validators := examDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// examDescContentHash is the schema descriptor for content_hash field.
	examDescContentHash := examFields[10].Descriptor()
	// exam.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	exam.ContentHashValidator = examDescContentHash.Validators[0].(func([]byte) error)
	// examDescStatus is the schema descriptor for status field.
	examDescStatus := examFields[11].Descriptor()
	// exam.DefaultStatus holds the default value on creation for the status field.
	exam.DefaultStatus = examDescStatus.Default.(string)
	// exam.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	exam.StatusValidator = examDescStatus.Validators[0].(func(string) error)
	// examDescCreatedAt is the schema descriptor for created_at field.
	examDescCreatedAt := examFields[18].Descriptor()
	// exam.DefaultCreatedAt holds the default value on creation for the created_at field.
	exam.DefaultCreatedAt = examDescCreatedAt.Default.(func() time.Time)
	// examDescUpdatedAt is the schema descriptor for updated_at field.
	examDescUpdatedAt := examFields[19].Descriptor()
	// exam.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	exam.DefaultUpdatedAt = examDescUpdatedAt.Default.(func() time.Time)
	// exam.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	exam.UpdateDefaultUpdatedAt = examDescUpdatedAt.UpdateDefault.(func() time.Time)
	// examDescID is the schema descriptor for id field.
	examDescID := examFields[0].Descriptor()
	// exam.DefaultID holds the default value on creation for the id field.
	exam.DefaultID = examDescID.Default.(func() uuid.UUID)
	referencerangeFields := schema.ReferenceRange{}.Fields()
	_ = referencerangeFields
	// referencerangeDescBiomarkerName is the schema descriptor for biomarker_name field.
	referencerangeDescBiomarkerName := referencerangeFields[1].Descriptor()
	// referencerange.BiomarkerNameValidator is a validator for the "biomarker_name" field. It is called by the builders before save.
	referencerange.BiomarkerNameValidator = referencerangeDescBiomarkerName.Validators[0].(func(string) error)
	// referencerangeDescNormalizedName is the schema descriptor for normalized_name field.
	referencerangeDescNormalizedName := referencerangeFields[2].Descriptor()
	// referencerange.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	referencerange.NormalizedNameValidator = referencerangeDescNormalizedName.Validators[0].(func(string) error)
	// referencerangeDescUnit is the schema descriptor for unit field.
	referencerangeDescUnit := referencerangeFields[5].Descriptor()
	// referencerange.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	referencerange.UnitValidator = referencerangeDescUnit.Validators[0].(func(string) error)
	// referencerangeDescGender is the schema descriptor for gender field.
	referencerangeDescGender := referencerangeFields[6].Descriptor()
	// referencerange.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	referencerange.GenderValidator = referencerangeDescGender.Validators[0].(func(string) error)
	// referencerangeDescAgeMin is the schema descriptor for age_min field.
	referencerangeDescAgeMin := referencerangeFields[7].Descriptor()
	// referencerange.AgeMinValidator is a validator for the "age_min" field. It is called by the builders before save.
	referencerange.AgeMinValidator = referencerangeDescAgeMin.Validators[0].(func(int) error)
	// referencerangeDescAgeMax is the schema descriptor for age_max field.
	referencerangeDescAgeMax := referencerangeFields[8].Descriptor()
	// referencerange.AgeMaxValidator is a validator for the "age_max" field. It is called by the builders before save.
	referencerange.AgeMaxValidator = referencerangeDescAgeMax.Validators[0].(func(int) error)
	// referencerangeDescSource is the schema descriptor for source field.
	referencerangeDescSource := referencerangeFields[9].Descriptor()
	// referencerange.DefaultSource holds the default value on creation for the source field.
	referencerange.DefaultSource = referencerangeDescSource.Default.(string)
	// referencerangeDescIsActive is the schema descriptor for is_active field.
	referencerangeDescIsActive := referencerangeFields[10].Descriptor()
	// referencerange.DefaultIsActive holds the default value on creation for the is_active field.
	referencerange.DefaultIsActive = referencerangeDescIsActive.Default.(bool)
	// referencerangeDescID is the schema descriptor for id field.
	referencerangeDescID := referencerangeFields[0].Descriptor()
	// referencerange.DefaultID holds the default value on creation for the id field.
	referencerange.DefaultID = referencerangeDescID.Default.(func() uuid.UUID)
}
