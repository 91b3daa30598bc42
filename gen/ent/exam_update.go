// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/gen/ent/exam"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExamUpdate is the builder for updating Exam entities.
type ExamUpdate struct {
	config
	hooks    []Hook
	mutation *ExamMutation
}

// Where appends a list predicates to the ExamUpdate builder.
func (_u *ExamUpdate) Where(ps ...predicate.Exam) *ExamUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ExamUpdate) SetPatientID(v string) *ExamUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ExamUpdate) SetNillablePatientID(v *string) *ExamUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExamUpdate) SetUserID(v string) *ExamUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableUserID(v *string) *ExamUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *ExamUpdate) SetPatientGender(v string) *ExamUpdate {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *ExamUpdate) SetNillablePatientGender(v *string) *ExamUpdate {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// ClearPatientGender clears the value of the "patient_gender" field.
func (_u *ExamUpdate) ClearPatientGender() *ExamUpdate {
	_u.mutation.ClearPatientGender()
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *ExamUpdate) SetPatientAge(v int) *ExamUpdate {
	_u.mutation.ResetPatientAge()
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *ExamUpdate) SetNillablePatientAge(v *int) *ExamUpdate {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// AddPatientAge adds value to the "patient_age" field.
func (_u *ExamUpdate) AddPatientAge(v int) *ExamUpdate {
	_u.mutation.AddPatientAge(v)
	return _u
}

// ClearPatientAge clears the value of the "patient_age" field.
func (_u *ExamUpdate) ClearPatientAge() *ExamUpdate {
	_u.mutation.ClearPatientAge()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ExamUpdate) SetFileName(v string) *ExamUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableFileName(v *string) *ExamUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ExamUpdate) SetFilePath(v string) *ExamUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableFilePath(v *string) *ExamUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ExamUpdate) SetFileSize(v int) *ExamUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableFileSize(v *int) *ExamUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ExamUpdate) AddFileSize(v int) *ExamUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ExamUpdate) SetMimeType(v string) *ExamUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableMimeType(v *string) *ExamUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExamUpdate) SetFormat(v string) *ExamUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableFormat(v *string) *ExamUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ExamUpdate) SetContentHash(v []byte) *ExamUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExamUpdate) SetStatus(v string) *ExamUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableStatus(v *string) *ExamUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExamUpdate) SetOcrText(v string) *ExamUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableOcrText(v *string) *ExamUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExamUpdate) ClearOcrText() *ExamUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ExamUpdate) SetOcrConfidence(v float32) *ExamUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableOcrConfidence(v *float32) *ExamUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ExamUpdate) AddOcrConfidence(v float32) *ExamUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *ExamUpdate) ClearOcrConfidence() *ExamUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetBiomarkerSummary sets the "biomarker_summary" field.
func (_u *ExamUpdate) SetBiomarkerSummary(v string) *ExamUpdate {
	_u.mutation.SetBiomarkerSummary(v)
	return _u
}

// SetNillableBiomarkerSummary sets the "biomarker_summary" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableBiomarkerSummary(v *string) *ExamUpdate {
	if v != nil {
		_u.SetBiomarkerSummary(*v)
	}
	return _u
}

// ClearBiomarkerSummary clears the value of the "biomarker_summary" field.
func (_u *ExamUpdate) ClearBiomarkerSummary() *ExamUpdate {
	_u.mutation.ClearBiomarkerSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExamUpdate) SetErrorMessage(v string) *ExamUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableErrorMessage(v *string) *ExamUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExamUpdate) ClearErrorMessage() *ExamUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *ExamUpdate) SetProcessingStartedAt(v time.Time) *ExamUpdate {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableProcessingStartedAt(v *time.Time) *ExamUpdate {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *ExamUpdate) ClearProcessingStartedAt() *ExamUpdate {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_u *ExamUpdate) SetProcessingCompletedAt(v time.Time) *ExamUpdate {
	_u.mutation.SetProcessingCompletedAt(v)
	return _u
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableProcessingCompletedAt(v *time.Time) *ExamUpdate {
	if v != nil {
		_u.SetProcessingCompletedAt(*v)
	}
	return _u
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (_u *ExamUpdate) ClearProcessingCompletedAt() *ExamUpdate {
	_u.mutation.ClearProcessingCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExamUpdate) SetUpdatedAt(v time.Time) *ExamUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBiomarkerIDs adds the "biomarkers" edge to the Biomarker entity by IDs.
func (_u *ExamUpdate) AddBiomarkerIDs(ids ...uuid.UUID) *ExamUpdate {
	_u.mutation.AddBiomarkerIDs(ids...)
	return _u
}

// AddBiomarkers adds the "biomarkers" edges to the Biomarker entity.
func (_u *ExamUpdate) AddBiomarkers(v ...*Biomarker) *ExamUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBiomarkerIDs(ids...)
}

// Mutation returns the ExamMutation object of the builder.
func (_u *ExamUpdate) Mutation() *ExamMutation {
	return _u.mutation
}

// ClearBiomarkers clears all "biomarkers" edges to the Biomarker entity.
func (_u *ExamUpdate) ClearBiomarkers() *ExamUpdate {
	_u.mutation.ClearBiomarkers()
	return _u
}

// RemoveBiomarkerIDs removes the "biomarkers" edge to Biomarker entities by IDs.
func (_u *ExamUpdate) RemoveBiomarkerIDs(ids ...uuid.UUID) *ExamUpdate {
	_u.mutation.RemoveBiomarkerIDs(ids...)
	return _u
}

// RemoveBiomarkers removes "biomarkers" edges to Biomarker entities.
func (_u *ExamUpdate) RemoveBiomarkers(v ...*Biomarker) *ExamUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBiomarkerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExamUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exam.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamUpdate) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := exam.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := exam.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Exam.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientGender(); ok {
		if err := exam.PatientGenderValidator(v); err != nil {
			return &ValidationError{Name: "patient_gender", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientAge(); ok {
		if err := exam.PatientAgeValidator(v); err != nil {
			return &ValidationError{Name: "patient_age", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := exam.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Exam.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := exam.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Exam.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := exam.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Exam.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := exam.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Exam.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := exam.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Exam.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := exam.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Exam.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := exam.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Exam.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(exam.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(exam.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(exam.FieldPatientGender, field.TypeString, value)
	}
	if _u.mutation.PatientGenderCleared() {
		_spec.ClearField(exam.FieldPatientGender, field.TypeString)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(exam.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientAge(); ok {
		_spec.AddField(exam.FieldPatientAge, field.TypeInt, value)
	}
	if _u.mutation.PatientAgeCleared() {
		_spec.ClearField(exam.FieldPatientAge, field.TypeInt)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(exam.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(exam.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(exam.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(exam.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(exam.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(exam.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(exam.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exam.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(exam.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(exam.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(exam.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(exam.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(exam.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.BiomarkerSummary(); ok {
		_spec.SetField(exam.FieldBiomarkerSummary, field.TypeString, value)
	}
	if _u.mutation.BiomarkerSummaryCleared() {
		_spec.ClearField(exam.FieldBiomarkerSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(exam.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(exam.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(exam.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(exam.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(exam.FieldProcessingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingCompletedAtCleared() {
		_spec.ClearField(exam.FieldProcessingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exam.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BiomarkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.BiomarkersTable,
			Columns: []string{exam.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBiomarkersIDs(); len(nodes) > 0 && !_u.mutation.BiomarkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.BiomarkersTable,
			Columns: []string{exam.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BiomarkersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.BiomarkersTable,
			Columns: []string{exam.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamUpdateOne is the builder for updating a single Exam entity.
type ExamUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *ExamUpdateOne) SetPatientID(v string) *ExamUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillablePatientID(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExamUpdateOne) SetUserID(v string) *ExamUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableUserID(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *ExamUpdateOne) SetPatientGender(v string) *ExamUpdateOne {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillablePatientGender(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// ClearPatientGender clears the value of the "patient_gender" field.
func (_u *ExamUpdateOne) ClearPatientGender() *ExamUpdateOne {
	_u.mutation.ClearPatientGender()
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *ExamUpdateOne) SetPatientAge(v int) *ExamUpdateOne {
	_u.mutation.ResetPatientAge()
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillablePatientAge(v *int) *ExamUpdateOne {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// AddPatientAge adds value to the "patient_age" field.
func (_u *ExamUpdateOne) AddPatientAge(v int) *ExamUpdateOne {
	_u.mutation.AddPatientAge(v)
	return _u
}

// ClearPatientAge clears the value of the "patient_age" field.
func (_u *ExamUpdateOne) ClearPatientAge() *ExamUpdateOne {
	_u.mutation.ClearPatientAge()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ExamUpdateOne) SetFileName(v string) *ExamUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableFileName(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ExamUpdateOne) SetFilePath(v string) *ExamUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableFilePath(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ExamUpdateOne) SetFileSize(v int) *ExamUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableFileSize(v *int) *ExamUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ExamUpdateOne) AddFileSize(v int) *ExamUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ExamUpdateOne) SetMimeType(v string) *ExamUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableMimeType(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExamUpdateOne) SetFormat(v string) *ExamUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableFormat(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ExamUpdateOne) SetContentHash(v []byte) *ExamUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExamUpdateOne) SetStatus(v string) *ExamUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableStatus(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExamUpdateOne) SetOcrText(v string) *ExamUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableOcrText(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExamUpdateOne) ClearOcrText() *ExamUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ExamUpdateOne) SetOcrConfidence(v float32) *ExamUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableOcrConfidence(v *float32) *ExamUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ExamUpdateOne) AddOcrConfidence(v float32) *ExamUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *ExamUpdateOne) ClearOcrConfidence() *ExamUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetBiomarkerSummary sets the "biomarker_summary" field.
func (_u *ExamUpdateOne) SetBiomarkerSummary(v string) *ExamUpdateOne {
	_u.mutation.SetBiomarkerSummary(v)
	return _u
}

// SetNillableBiomarkerSummary sets the "biomarker_summary" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableBiomarkerSummary(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetBiomarkerSummary(*v)
	}
	return _u
}

// ClearBiomarkerSummary clears the value of the "biomarker_summary" field.
func (_u *ExamUpdateOne) ClearBiomarkerSummary() *ExamUpdateOne {
	_u.mutation.ClearBiomarkerSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExamUpdateOne) SetErrorMessage(v string) *ExamUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableErrorMessage(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExamUpdateOne) ClearErrorMessage() *ExamUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *ExamUpdateOne) SetProcessingStartedAt(v time.Time) *ExamUpdateOne {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableProcessingStartedAt(v *time.Time) *ExamUpdateOne {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *ExamUpdateOne) ClearProcessingStartedAt() *ExamUpdateOne {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_u *ExamUpdateOne) SetProcessingCompletedAt(v time.Time) *ExamUpdateOne {
	_u.mutation.SetProcessingCompletedAt(v)
	return _u
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableProcessingCompletedAt(v *time.Time) *ExamUpdateOne {
	if v != nil {
		_u.SetProcessingCompletedAt(*v)
	}
	return _u
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (_u *ExamUpdateOne) ClearProcessingCompletedAt() *ExamUpdateOne {
	_u.mutation.ClearProcessingCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExamUpdateOne) SetUpdatedAt(v time.Time) *ExamUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBiomarkerIDs adds the "biomarkers" edge to the Biomarker entity by IDs.
func (_u *ExamUpdateOne) AddBiomarkerIDs(ids ...uuid.UUID) *ExamUpdateOne {
	_u.mutation.AddBiomarkerIDs(ids...)
	return _u
}

// AddBiomarkers adds the "biomarkers" edges to the Biomarker entity.
func (_u *ExamUpdateOne) AddBiomarkers(v ...*Biomarker) *ExamUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBiomarkerIDs(ids...)
}

// Mutation returns the ExamMutation object of the builder.
func (_u *ExamUpdateOne) Mutation() *ExamMutation {
	return _u.mutation
}

// ClearBiomarkers clears all "biomarkers" edges to the Biomarker entity.
func (_u *ExamUpdateOne) ClearBiomarkers() *ExamUpdateOne {
	_u.mutation.ClearBiomarkers()
	return _u
}

// RemoveBiomarkerIDs removes the "biomarkers" edge to Biomarker entities by IDs.
func (_u *ExamUpdateOne) RemoveBiomarkerIDs(ids ...uuid.UUID) *ExamUpdateOne {
	_u.mutation.RemoveBiomarkerIDs(ids...)
	return _u
}

// RemoveBiomarkers removes "biomarkers" edges to Biomarker entities.
func (_u *ExamUpdateOne) RemoveBiomarkers(v ...*Biomarker) *ExamUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBiomarkerIDs(ids...)
}

// Where appends a list predicates to the ExamUpdate builder.
func (_u *ExamUpdateOne) Where(ps ...predicate.Exam) *ExamUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamUpdateOne) Select(field string, fields ...string) *ExamUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Exam entity.
func (_u *ExamUpdateOne) Save(ctx context.Context) (*Exam, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamUpdateOne) SaveX(ctx context.Context) *Exam {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExamUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exam.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamUpdateOne) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := exam.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := exam.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Exam.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientGender(); ok {
		if err := exam.PatientGenderValidator(v); err != nil {
			return &ValidationError{Name: "patient_gender", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientAge(); ok {
		if err := exam.PatientAgeValidator(v); err != nil {
			return &ValidationError{Name: "patient_age", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := exam.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Exam.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := exam.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Exam.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := exam.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Exam.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := exam.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Exam.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := exam.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Exam.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := exam.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Exam.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := exam.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Exam.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamUpdateOne) sqlSave(ctx context.Context) (_node *Exam, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Exam.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exam.FieldID)
		for _, f := range fields {
			if !exam.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exam.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(exam.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(exam.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(exam.FieldPatientGender, field.TypeString, value)
	}
	if _u.mutation.PatientGenderCleared() {
		_spec.ClearField(exam.FieldPatientGender, field.TypeString)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(exam.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientAge(); ok {
		_spec.AddField(exam.FieldPatientAge, field.TypeInt, value)
	}
	if _u.mutation.PatientAgeCleared() {
		_spec.ClearField(exam.FieldPatientAge, field.TypeInt)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(exam.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(exam.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(exam.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(exam.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(exam.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(exam.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(exam.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exam.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(exam.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(exam.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(exam.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(exam.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(exam.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.BiomarkerSummary(); ok {
		_spec.SetField(exam.FieldBiomarkerSummary, field.TypeString, value)
	}
	if _u.mutation.BiomarkerSummaryCleared() {
		_spec.ClearField(exam.FieldBiomarkerSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(exam.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(exam.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(exam.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(exam.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(exam.FieldProcessingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingCompletedAtCleared() {
		_spec.ClearField(exam.FieldProcessingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exam.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BiomarkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.BiomarkersTable,
			Columns: []string{exam.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBiomarkersIDs(); len(nodes) > 0 && !_u.mutation.BiomarkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.BiomarkersTable,
			Columns: []string{exam.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BiomarkersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.BiomarkersTable,
			Columns: []string{exam.BiomarkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Exam{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
