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

// BiomarkerCreate is the builder for creating a Biomarker entity.
type BiomarkerCreate struct {
	config
	mutation *BiomarkerMutation
	hooks    []Hook
}

// SetExamID sets the "exam_id" field.
func (_c *BiomarkerCreate) SetExamID(v uuid.UUID) *BiomarkerCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BiomarkerCreate) SetName(v string) *BiomarkerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *BiomarkerCreate) SetNormalizedName(v string) *BiomarkerCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *BiomarkerCreate) SetValue(v float64) *BiomarkerCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *BiomarkerCreate) SetUnit(v string) *BiomarkerCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BiomarkerCreate) SetStatus(v string) *BiomarkerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *BiomarkerCreate) SetSeverity(v string) *BiomarkerCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetInterpretation sets the "interpretation" field.
func (_c *BiomarkerCreate) SetInterpretation(v string) *BiomarkerCreate {
	_c.mutation.SetInterpretation(v)
	return _c
}

// SetReferenceMin sets the "reference_min" field.
func (_c *BiomarkerCreate) SetReferenceMin(v float64) *BiomarkerCreate {
	_c.mutation.SetReferenceMin(v)
	return _c
}

// SetNillableReferenceMin sets the "reference_min" field if the given value is not nil.
func (_c *BiomarkerCreate) SetNillableReferenceMin(v *float64) *BiomarkerCreate {
	if v != nil {
		_c.SetReferenceMin(*v)
	}
	return _c
}

// SetReferenceMax sets the "reference_max" field.
func (_c *BiomarkerCreate) SetReferenceMax(v float64) *BiomarkerCreate {
	_c.mutation.SetReferenceMax(v)
	return _c
}

// SetNillableReferenceMax sets the "reference_max" field if the given value is not nil.
func (_c *BiomarkerCreate) SetNillableReferenceMax(v *float64) *BiomarkerCreate {
	if v != nil {
		_c.SetReferenceMax(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *BiomarkerCreate) SetConfidenceScore(v float64) *BiomarkerCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *BiomarkerCreate) SetRawText(v string) *BiomarkerCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *BiomarkerCreate) SetNillableRawText(v *string) *BiomarkerCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BiomarkerCreate) SetCreatedAt(v time.Time) *BiomarkerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BiomarkerCreate) SetNillableCreatedAt(v *time.Time) *BiomarkerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BiomarkerCreate) SetID(v uuid.UUID) *BiomarkerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BiomarkerCreate) SetNillableID(v *uuid.UUID) *BiomarkerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExam sets the "exam" edge to the Exam entity.
func (_c *BiomarkerCreate) SetExam(v *Exam) *BiomarkerCreate {
	return _c.SetExamID(v.ID)
}

// Mutation returns the BiomarkerMutation object of the builder.
func (_c *BiomarkerCreate) Mutation() *BiomarkerMutation {
	return _c.mutation
}

// Save creates the Biomarker in the database.
func (_c *BiomarkerCreate) Save(ctx context.Context) (*Biomarker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BiomarkerCreate) SaveX(ctx context.Context) *Biomarker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BiomarkerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BiomarkerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BiomarkerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := biomarker.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := biomarker.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BiomarkerCreate) check() error {
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "Biomarker.exam_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Biomarker.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := biomarker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Biomarker.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "Biomarker.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := biomarker.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Biomarker.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Biomarker.value"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "Biomarker.unit"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Biomarker.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := biomarker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Biomarker.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Biomarker.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := biomarker.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Biomarker.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Interpretation(); !ok {
		return &ValidationError{Name: "interpretation", err: errors.New(`ent: missing required field "Biomarker.interpretation"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "Biomarker.confidence_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Biomarker.created_at"`)}
	}
	if len(_c.mutation.ExamIDs()) == 0 {
		return &ValidationError{Name: "exam", err: errors.New(`ent: missing required edge "Biomarker.exam"`)}
	}
	return nil
}

func (_c *BiomarkerCreate) sqlSave(ctx context.Context) (*Biomarker, error) {
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

func (_c *BiomarkerCreate) createSpec() (*Biomarker, *sqlgraph.CreateSpec) {
	var (
		_node = &Biomarker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(biomarker.Table, sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(biomarker.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(biomarker.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(biomarker.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(biomarker.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(biomarker.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(biomarker.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Interpretation(); ok {
		_spec.SetField(biomarker.FieldInterpretation, field.TypeString, value)
		_node.Interpretation = value
	}
	if value, ok := _c.mutation.ReferenceMin(); ok {
		_spec.SetField(biomarker.FieldReferenceMin, field.TypeFloat64, value)
		_node.ReferenceMin = &value
	}
	if value, ok := _c.mutation.ReferenceMax(); ok {
		_spec.SetField(biomarker.FieldReferenceMax, field.TypeFloat64, value)
		_node.ReferenceMax = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(biomarker.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(biomarker.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(biomarker.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExamIDs(); len(nodes) > 0 {
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
		_node.ExamID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BiomarkerCreateBulk is the builder for creating many Biomarker entities in bulk.
type BiomarkerCreateBulk struct {
	config
	err      error
	builders []*BiomarkerCreate
}

// Save creates the Biomarker entities in the database.
func (_c *BiomarkerCreateBulk) Save(ctx context.Context) ([]*Biomarker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Biomarker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BiomarkerMutation)
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
func (_c *BiomarkerCreateBulk) SaveX(ctx context.Context) []*Biomarker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BiomarkerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BiomarkerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
