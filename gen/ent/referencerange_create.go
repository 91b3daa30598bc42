// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtrack/exam-analyzer/gen/ent/referencerange"
	"github.com/google/uuid"
)

// ReferenceRangeCreate is the builder for creating a ReferenceRange entity.
type ReferenceRangeCreate struct {
	config
	mutation *ReferenceRangeMutation
	hooks    []Hook
}

// SetBiomarkerName sets the "biomarker_name" field.
func (_c *ReferenceRangeCreate) SetBiomarkerName(v string) *ReferenceRangeCreate {
	_c.mutation.SetBiomarkerName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *ReferenceRangeCreate) SetNormalizedName(v string) *ReferenceRangeCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetMinValue sets the "min_value" field.
func (_c *ReferenceRangeCreate) SetMinValue(v float64) *ReferenceRangeCreate {
	_c.mutation.SetMinValue(v)
	return _c
}

// SetMaxValue sets the "max_value" field.
func (_c *ReferenceRangeCreate) SetMaxValue(v float64) *ReferenceRangeCreate {
	_c.mutation.SetMaxValue(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *ReferenceRangeCreate) SetUnit(v string) *ReferenceRangeCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *ReferenceRangeCreate) SetGender(v string) *ReferenceRangeCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *ReferenceRangeCreate) SetNillableGender(v *string) *ReferenceRangeCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetAgeMin sets the "age_min" field.
func (_c *ReferenceRangeCreate) SetAgeMin(v int) *ReferenceRangeCreate {
	_c.mutation.SetAgeMin(v)
	return _c
}

// SetNillableAgeMin sets the "age_min" field if the given value is not nil.
func (_c *ReferenceRangeCreate) SetNillableAgeMin(v *int) *ReferenceRangeCreate {
	if v != nil {
		_c.SetAgeMin(*v)
	}
	return _c
}

// SetAgeMax sets the "age_max" field.
func (_c *ReferenceRangeCreate) SetAgeMax(v int) *ReferenceRangeCreate {
	_c.mutation.SetAgeMax(v)
	return _c
}

// SetNillableAgeMax sets the "age_max" field if the given value is not nil.
func (_c *ReferenceRangeCreate) SetNillableAgeMax(v *int) *ReferenceRangeCreate {
	if v != nil {
		_c.SetAgeMax(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ReferenceRangeCreate) SetSource(v string) *ReferenceRangeCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ReferenceRangeCreate) SetNillableSource(v *string) *ReferenceRangeCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ReferenceRangeCreate) SetIsActive(v bool) *ReferenceRangeCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ReferenceRangeCreate) SetNillableIsActive(v *bool) *ReferenceRangeCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReferenceRangeCreate) SetID(v uuid.UUID) *ReferenceRangeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReferenceRangeCreate) SetNillableID(v *uuid.UUID) *ReferenceRangeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReferenceRangeMutation object of the builder.
func (_c *ReferenceRangeCreate) Mutation() *ReferenceRangeMutation {
	return _c.mutation
}

// Save creates the ReferenceRange in the database.
func (_c *ReferenceRangeCreate) Save(ctx context.Context) (*ReferenceRange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferenceRangeCreate) SaveX(ctx context.Context) *ReferenceRange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferenceRangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferenceRangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferenceRangeCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := referencerange.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := referencerange.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := referencerange.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferenceRangeCreate) check() error {
	if _, ok := _c.mutation.BiomarkerName(); !ok {
		return &ValidationError{Name: "biomarker_name", err: errors.New(`ent: missing required field "ReferenceRange.biomarker_name"`)}
	}
	if v, ok := _c.mutation.BiomarkerName(); ok {
		if err := referencerange.BiomarkerNameValidator(v); err != nil {
			return &ValidationError{Name: "biomarker_name", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.biomarker_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "ReferenceRange.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := referencerange.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinValue(); !ok {
		return &ValidationError{Name: "min_value", err: errors.New(`ent: missing required field "ReferenceRange.min_value"`)}
	}
	if _, ok := _c.mutation.MaxValue(); !ok {
		return &ValidationError{Name: "max_value", err: errors.New(`ent: missing required field "ReferenceRange.max_value"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "ReferenceRange.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := referencerange.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.unit": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := referencerange.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.gender": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AgeMin(); ok {
		if err := referencerange.AgeMinValidator(v); err != nil {
			return &ValidationError{Name: "age_min", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.age_min": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AgeMax(); ok {
		if err := referencerange.AgeMaxValidator(v); err != nil {
			return &ValidationError{Name: "age_max", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.age_max": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ReferenceRange.source"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ReferenceRange.is_active"`)}
	}
	return nil
}

func (_c *ReferenceRangeCreate) sqlSave(ctx context.Context) (*ReferenceRange, error) {
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

func (_c *ReferenceRangeCreate) createSpec() (*ReferenceRange, *sqlgraph.CreateSpec) {
	var (
		_node = &ReferenceRange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(referencerange.Table, sqlgraph.NewFieldSpec(referencerange.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BiomarkerName(); ok {
		_spec.SetField(referencerange.FieldBiomarkerName, field.TypeString, value)
		_node.BiomarkerName = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(referencerange.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.MinValue(); ok {
		_spec.SetField(referencerange.FieldMinValue, field.TypeFloat64, value)
		_node.MinValue = value
	}
	if value, ok := _c.mutation.MaxValue(); ok {
		_spec.SetField(referencerange.FieldMaxValue, field.TypeFloat64, value)
		_node.MaxValue = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(referencerange.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(referencerange.FieldGender, field.TypeString, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.AgeMin(); ok {
		_spec.SetField(referencerange.FieldAgeMin, field.TypeInt, value)
		_node.AgeMin = &value
	}
	if value, ok := _c.mutation.AgeMax(); ok {
		_spec.SetField(referencerange.FieldAgeMax, field.TypeInt, value)
		_node.AgeMax = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(referencerange.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(referencerange.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// ReferenceRangeCreateBulk is the builder for creating many ReferenceRange entities in bulk.
type ReferenceRangeCreateBulk struct {
	config
	err      error
	builders []*ReferenceRangeCreate
}

// Save creates the ReferenceRange entities in the database.
func (_c *ReferenceRangeCreateBulk) Save(ctx context.Context) ([]*ReferenceRange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReferenceRange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferenceRangeMutation)
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
func (_c *ReferenceRangeCreateBulk) SaveX(ctx context.Context) []*ReferenceRange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferenceRangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferenceRangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
