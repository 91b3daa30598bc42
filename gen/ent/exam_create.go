// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/gen/ent/exam"
	"github.com/google/uuid"
)

// ExamCreate is the builder for creating a Exam entity.
type ExamCreate struct {
	config
	mutation *ExamMutation
	hooks    []Hook
}

// SetPatientID sets the "patient_id" field.
func (_c *ExamCreate) SetPatientID(v string) *ExamCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExamCreate) SetUserID(v string) *ExamCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPatientGender sets the "patient_gender" field.
func (_c *ExamCreate) SetPatientGender(v string) *ExamCreate {
	_c.mutation.SetPatientGender(v)
	return _c
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_c *ExamCreate) SetNillablePatientGender(v *string) *ExamCreate {
	if v != nil {
		_c.SetPatientGender(*v)
	}
	return _c
}

// SetPatientAge sets the "patient_age" field.
func (_c *ExamCreate) SetPatientAge(v int) *ExamCreate {
	_c.mutation.SetPatientAge(v)
	return _c
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_c *ExamCreate) SetNillablePatientAge(v *int) *ExamCreate {
	if v != nil {
		_c.SetPatientAge(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ExamCreate) SetFileName(v string) *ExamCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ExamCreate) SetFilePath(v string) *ExamCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ExamCreate) SetFileSize(v int) *ExamCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *ExamCreate) SetMimeType(v string) *ExamCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ExamCreate) SetFormat(v string) *ExamCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ExamCreate) SetContentHash(v []byte) *ExamCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExamCreate) SetStatus(v string) *ExamCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExamCreate) SetNillableStatus(v *string) *ExamCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *ExamCreate) SetOcrText(v string) *ExamCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *ExamCreate) SetNillableOcrText(v *string) *ExamCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *ExamCreate) SetOcrConfidence(v float32) *ExamCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *ExamCreate) SetNillableOcrConfidence(v *float32) *ExamCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetBiomarkerSummary sets the "biomarker_summary" field.
func (_c *ExamCreate) SetBiomarkerSummary(v string) *ExamCreate {
	_c.mutation.SetBiomarkerSummary(v)
	return _c
}

// SetNillableBiomarkerSummary sets the "biomarker_summary" field if the given value is not nil.
func (_c *ExamCreate) SetNillableBiomarkerSummary(v *string) *ExamCreate {
	if v != nil {
		_c.SetBiomarkerSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExamCreate) SetErrorMessage(v string) *ExamCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExamCreate) SetNillableErrorMessage(v *string) *ExamCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_c *ExamCreate) SetProcessingStartedAt(v time.Time) *ExamCreate {
	_c.mutation.SetProcessingStartedAt(v)
	return _c
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_c *ExamCreate) SetNillableProcessingStartedAt(v *time.Time) *ExamCreate {
	if v != nil {
		_c.SetProcessingStartedAt(*v)
	}
	return _c
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_c *ExamCreate) SetProcessingCompletedAt(v time.Time) *ExamCreate {
	_c.mutation.SetProcessingCompletedAt(v)
	return _c
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_c *ExamCreate) SetNillableProcessingCompletedAt(v *time.Time) *ExamCreate {
	if v != nil {
		_c.SetProcessingCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExamCreate) SetCreatedAt(v time.Time) *ExamCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExamCreate) SetNillableCreatedAt(v *time.Time) *ExamCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExamCreate) SetUpdatedAt(v time.Time) *ExamCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExamCreate) SetNillableUpdatedAt(v *time.Time) *ExamCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExamCreate) SetID(v uuid.UUID) *ExamCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExamCreate) SetNillableID(v *uuid.UUID) *ExamCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBiomarkerIDs adds the "biomarkers" edge to the Biomarker entity by IDs.
func (_c *ExamCreate) AddBiomarkerIDs(ids ...uuid.UUID) *ExamCreate {
	_c.mutation.AddBiomarkerIDs(ids...)
	return _c
}

// AddBiomarkers adds the "biomarkers" edges to the Biomarker entity.
func (_c *ExamCreate) AddBiomarkers(v ...*Biomarker) *ExamCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBiomarkerIDs(ids...)
}

// Mutation returns the ExamMutation object of the builder.
func (_c *ExamCreate) Mutation() *ExamMutation {
	return _c.mutation
}

// Save creates the Exam in the database.
func (_c *ExamCreate) Save(ctx context.Context) (*Exam, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamCreate) SaveX(ctx context.Context) *Exam {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := exam.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exam.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := exam.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := exam.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "Exam.patient_id"`)}
	}
	if v, ok := _c.mutation.PatientID(); ok {
		if err := exam.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Exam.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := exam.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Exam.user_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PatientGender(); ok {
		if err := exam.PatientGenderValidator(v); err != nil {
			return &ValidationError{Name: "patient_gender", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_gender": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PatientAge(); ok {
		if err := exam.PatientAgeValidator(v); err != nil {
			return &ValidationError{Name: "patient_age", err: fmt.Errorf(`ent: validator failed for field "Exam.patient_age": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Exam.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := exam.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Exam.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Exam.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := exam.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Exam.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Exam.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := exam.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Exam.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "Exam.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := exam.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Exam.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Exam.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := exam.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Exam.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Exam.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := exam.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Exam.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Exam.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := exam.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Exam.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Exam.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Exam.updated_at"`)}
	}
	return nil
}

func (_c *ExamCreate) sqlSave(ctx context.Context) (*Exam, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExamCreate) createSpec() (*Exam, *sqlgraph.CreateSpec) {
	var (
		_node = &Exam{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exam.Table, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(exam.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(exam.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PatientGender(); ok {
		_spec.SetField(exam.FieldPatientGender, field.TypeString, value)
		_node.PatientGender = &value
	}
	if value, ok := _c.mutation.PatientAge(); ok {
		_spec.SetField(exam.FieldPatientAge, field.TypeInt, value)
		_node.PatientAge = &value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(exam.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(exam.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(exam.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(exam.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(exam.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(exam.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(exam.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(exam.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(exam.FieldOcrConfidence, field.TypeFloat32, value)
		_node.OcrConfidence = &value
	}
	if value, ok := _c.mutation.BiomarkerSummary(); ok {
		_spec.SetField(exam.FieldBiomarkerSummary, field.TypeString, value)
		_node.BiomarkerSummary = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(exam.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(exam.FieldProcessingStartedAt, field.TypeTime, value)
		_node.ProcessingStartedAt = &value
	}
	if value, ok := _c.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(exam.FieldProcessingCompletedAt, field.TypeTime, value)
		_node.ProcessingCompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exam.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(exam.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BiomarkersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExamCreateBulk is the builder for creating many Exam entities in bulk.
type ExamCreateBulk struct {
	config
	err      error
	builders []*ExamCreate
}

// Save creates the Exam entities in the database.
func (_c *ExamCreateBulk) Save(ctx context.Context) ([]*Exam, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exam, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExamCreateBulk) SaveX(ctx context.Context) []*Exam {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
