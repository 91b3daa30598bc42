// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/gen/ent/exam"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
	"github.com/google/uuid"
)

// BiomarkerUpdate is the builder for updating Biomarker entities.
type BiomarkerUpdate struct {
	config
	hooks    []Hook
	mutation *BiomarkerMutation
}

// Where appends a list predicates to the BiomarkerUpdate builder.
func (_u *BiomarkerUpdate) Where(ps ...predicate.Biomarker) *BiomarkerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *BiomarkerUpdate) SetExamID(v uuid.UUID) *BiomarkerUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableExamID(v *uuid.UUID) *BiomarkerUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BiomarkerUpdate) SetName(v string) *BiomarkerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableName(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *BiomarkerUpdate) SetNormalizedName(v string) *BiomarkerUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableNormalizedName(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *BiomarkerUpdate) SetValue(v float64) *BiomarkerUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableValue(v *float64) *BiomarkerUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *BiomarkerUpdate) AddValue(v float64) *BiomarkerUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *BiomarkerUpdate) SetUnit(v string) *BiomarkerUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableUnit(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BiomarkerUpdate) SetStatus(v string) *BiomarkerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableStatus(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *BiomarkerUpdate) SetSeverity(v string) *BiomarkerUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableSeverity(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *BiomarkerUpdate) SetInterpretation(v string) *BiomarkerUpdate {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableInterpretation(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// SetReferenceMin sets the "reference_min" field.
func (_u *BiomarkerUpdate) SetReferenceMin(v float64) *BiomarkerUpdate {
	_u.mutation.ResetReferenceMin()
	_u.mutation.SetReferenceMin(v)
	return _u
}

// SetNillableReferenceMin sets the "reference_min" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableReferenceMin(v *float64) *BiomarkerUpdate {
	if v != nil {
		_u.SetReferenceMin(*v)
	}
	return _u
}

// AddReferenceMin adds value to the "reference_min" field.
func (_u *BiomarkerUpdate) AddReferenceMin(v float64) *BiomarkerUpdate {
	_u.mutation.AddReferenceMin(v)
	return _u
}

// ClearReferenceMin clears the value of the "reference_min" field.
func (_u *BiomarkerUpdate) ClearReferenceMin() *BiomarkerUpdate {
	_u.mutation.ClearReferenceMin()
	return _u
}

// SetReferenceMax sets the "reference_max" field.
func (_u *BiomarkerUpdate) SetReferenceMax(v float64) *BiomarkerUpdate {
	_u.mutation.ResetReferenceMax()
	_u.mutation.SetReferenceMax(v)
	return _u
}

// SetNillableReferenceMax sets the "reference_max" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableReferenceMax(v *float64) *BiomarkerUpdate {
	if v != nil {
		_u.SetReferenceMax(*v)
	}
	return _u
}

// AddReferenceMax adds value to the "reference_max" field.
func (_u *BiomarkerUpdate) AddReferenceMax(v float64) *BiomarkerUpdate {
	_u.mutation.AddReferenceMax(v)
	return _u
}

// ClearReferenceMax clears the value of the "reference_max" field.
func (_u *BiomarkerUpdate) ClearReferenceMax() *BiomarkerUpdate {
	_u.mutation.ClearReferenceMax()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *BiomarkerUpdate) SetConfidenceScore(v float64) *BiomarkerUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableConfidenceScore(v *float64) *BiomarkerUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *BiomarkerUpdate) AddConfidenceScore(v float64) *BiomarkerUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *BiomarkerUpdate) SetRawText(v string) *BiomarkerUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *BiomarkerUpdate) SetNillableRawText(v *string) *BiomarkerUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *BiomarkerUpdate) ClearRawText() *BiomarkerUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetExam sets the "exam" edge to the Exam entity.
func (_u *BiomarkerUpdate) SetExam(v *Exam) *BiomarkerUpdate {
	return _u.SetExamID(v.ID)
}

// Mutation returns the BiomarkerMutation object of the builder.
func (_u *BiomarkerUpdate) Mutation() *BiomarkerMutation {
	return _u.mutation
}

// ClearExam clears the "exam" edge to the Exam entity.
func (_u *BiomarkerUpdate) ClearExam() *BiomarkerUpdate {
	_u.mutation.ClearExam()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BiomarkerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiomarkerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BiomarkerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiomarkerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiomarkerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := biomarker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Biomarker.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := biomarker.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Biomarker.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := biomarker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Biomarker.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := biomarker.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Biomarker.severity": %w`, err)}
		}
	}
	if _u.mutation.ExamCleared() && len(_u.mutation.ExamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Biomarker.exam"`)
	}
	return nil
}

func (_u *BiomarkerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biomarker.Table, biomarker.Columns, sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(biomarker.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(biomarker.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(biomarker.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(biomarker.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(biomarker.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(biomarker.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(biomarker.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(biomarker.FieldInterpretation, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceMin(); ok {
		_spec.SetField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMin(); ok {
		_spec.AddField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceMinCleared() {
		_spec.ClearField(biomarker.FieldReferenceMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReferenceMax(); ok {
		_spec.SetField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMax(); ok {
		_spec.AddField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceMaxCleared() {
		_spec.ClearField(biomarker.FieldReferenceMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(biomarker.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(biomarker.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(biomarker.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(biomarker.FieldRawText, field.TypeString)
	}
	if _u.mutation.ExamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biomarker.ExamTable,
			Columns: []string{biomarker.ExamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biomarker.ExamTable,
			Columns: []string{biomarker.ExamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biomarker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BiomarkerUpdateOne is the builder for updating a single Biomarker entity.
type BiomarkerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BiomarkerMutation
}

// SetExamID sets the "exam_id" field.
func (_u *BiomarkerUpdateOne) SetExamID(v uuid.UUID) *BiomarkerUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableExamID(v *uuid.UUID) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BiomarkerUpdateOne) SetName(v string) *BiomarkerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableName(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *BiomarkerUpdateOne) SetNormalizedName(v string) *BiomarkerUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableNormalizedName(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *BiomarkerUpdateOne) SetValue(v float64) *BiomarkerUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableValue(v *float64) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *BiomarkerUpdateOne) AddValue(v float64) *BiomarkerUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *BiomarkerUpdateOne) SetUnit(v string) *BiomarkerUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableUnit(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BiomarkerUpdateOne) SetStatus(v string) *BiomarkerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableStatus(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *BiomarkerUpdateOne) SetSeverity(v string) *BiomarkerUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableSeverity(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *BiomarkerUpdateOne) SetInterpretation(v string) *BiomarkerUpdateOne {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableInterpretation(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// SetReferenceMin sets the "reference_min" field.
func (_u *BiomarkerUpdateOne) SetReferenceMin(v float64) *BiomarkerUpdateOne {
	_u.mutation.ResetReferenceMin()
	_u.mutation.SetReferenceMin(v)
	return _u
}

// SetNillableReferenceMin sets the "reference_min" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableReferenceMin(v *float64) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetReferenceMin(*v)
	}
	return _u
}

// AddReferenceMin adds value to the "reference_min" field.
func (_u *BiomarkerUpdateOne) AddReferenceMin(v float64) *BiomarkerUpdateOne {
	_u.mutation.AddReferenceMin(v)
	return _u
}

// ClearReferenceMin clears the value of the "reference_min" field.
func (_u *BiomarkerUpdateOne) ClearReferenceMin() *BiomarkerUpdateOne {
	_u.mutation.ClearReferenceMin()
	return _u
}

// SetReferenceMax sets the "reference_max" field.
func (_u *BiomarkerUpdateOne) SetReferenceMax(v float64) *BiomarkerUpdateOne {
	_u.mutation.ResetReferenceMax()
	_u.mutation.SetReferenceMax(v)
	return _u
}

// SetNillableReferenceMax sets the "reference_max" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableReferenceMax(v *float64) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetReferenceMax(*v)
	}
	return _u
}

// AddReferenceMax adds value to the "reference_max" field.
func (_u *BiomarkerUpdateOne) AddReferenceMax(v float64) *BiomarkerUpdateOne {
	_u.mutation.AddReferenceMax(v)
	return _u
}

// ClearReferenceMax clears the value of the "reference_max" field.
func (_u *BiomarkerUpdateOne) ClearReferenceMax() *BiomarkerUpdateOne {
	_u.mutation.ClearReferenceMax()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *BiomarkerUpdateOne) SetConfidenceScore(v float64) *BiomarkerUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableConfidenceScore(v *float64) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *BiomarkerUpdateOne) AddConfidenceScore(v float64) *BiomarkerUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *BiomarkerUpdateOne) SetRawText(v string) *BiomarkerUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *BiomarkerUpdateOne) SetNillableRawText(v *string) *BiomarkerUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *BiomarkerUpdateOne) ClearRawText() *BiomarkerUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetExam sets the "exam" edge to the Exam entity.
func (_u *BiomarkerUpdateOne) SetExam(v *Exam) *BiomarkerUpdateOne {
	return _u.SetExamID(v.ID)
}

// Mutation returns the BiomarkerMutation object of the builder.
func (_u *BiomarkerUpdateOne) Mutation() *BiomarkerMutation {
	return _u.mutation
}

// ClearExam clears the "exam" edge to the Exam entity.
func (_u *BiomarkerUpdateOne) ClearExam() *BiomarkerUpdateOne {
	_u.mutation.ClearExam()
	return _u
}

// Where appends a list predicates to the BiomarkerUpdate builder.
func (_u *BiomarkerUpdateOne) Where(ps ...predicate.Biomarker) *BiomarkerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BiomarkerUpdateOne) Select(field string, fields ...string) *BiomarkerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Biomarker entity.
func (_u *BiomarkerUpdateOne) Save(ctx context.Context) (*Biomarker, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiomarkerUpdateOne) SaveX(ctx context.Context) *Biomarker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BiomarkerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiomarkerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiomarkerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := biomarker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Biomarker.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := biomarker.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Biomarker.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := biomarker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Biomarker.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := biomarker.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Biomarker.severity": %w`, err)}
		}
	}
	if _u.mutation.ExamCleared() && len(_u.mutation.ExamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Biomarker.exam"`)
	}
	return nil
}

func (_u *BiomarkerUpdateOne) sqlSave(ctx context.Context) (_node *Biomarker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biomarker.Table, biomarker.Columns, sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Biomarker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, biomarker.FieldID)
		for _, f := range fields {
			if !biomarker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != biomarker.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(biomarker.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(biomarker.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(biomarker.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(biomarker.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(biomarker.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(biomarker.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(biomarker.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(biomarker.FieldInterpretation, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceMin(); ok {
		_spec.SetField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMin(); ok {
		_spec.AddField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceMinCleared() {
		_spec.ClearField(biomarker.FieldReferenceMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReferenceMax(); ok {
		_spec.SetField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMax(); ok {
		_spec.AddField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceMaxCleared() {
		_spec.ClearField(biomarker.FieldReferenceMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(biomarker.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(biomarker.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(biomarker.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(biomarker.FieldRawText, field.TypeString)
	}
	if _u.mutation.ExamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biomarker.ExamTable,
			Columns: []string{biomarker.ExamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   biomarker.ExamTable,
			Columns: []string{biomarker.ExamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Biomarker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biomarker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
