// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
	"github.com/examtrack/exam-analyzer/gen/ent/referencerange"
)

// ReferenceRangeUpdate is the builder for updating ReferenceRange entities.
type ReferenceRangeUpdate struct {
	config
	hooks    []Hook
	mutation *ReferenceRangeMutation
}

// Where appends a list predicates to the ReferenceRangeUpdate builder.
func (_u *ReferenceRangeUpdate) Where(ps ...predicate.ReferenceRange) *ReferenceRangeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBiomarkerName sets the "biomarker_name" field.
func (_u *ReferenceRangeUpdate) SetBiomarkerName(v string) *ReferenceRangeUpdate {
	_u.mutation.SetBiomarkerName(v)
	return _u
}

// SetNillableBiomarkerName sets the "biomarker_name" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableBiomarkerName(v *string) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetBiomarkerName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *ReferenceRangeUpdate) SetNormalizedName(v string) *ReferenceRangeUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableNormalizedName(v *string) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetMinValue sets the "min_value" field.
func (_u *ReferenceRangeUpdate) SetMinValue(v float64) *ReferenceRangeUpdate {
	_u.mutation.ResetMinValue()
	_u.mutation.SetMinValue(v)
	return _u
}

// SetNillableMinValue sets the "min_value" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableMinValue(v *float64) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetMinValue(*v)
	}
	return _u
}

// AddMinValue adds value to the "min_value" field.
func (_u *ReferenceRangeUpdate) AddMinValue(v float64) *ReferenceRangeUpdate {
	_u.mutation.AddMinValue(v)
	return _u
}

// SetMaxValue sets the "max_value" field.
func (_u *ReferenceRangeUpdate) SetMaxValue(v float64) *ReferenceRangeUpdate {
	_u.mutation.ResetMaxValue()
	_u.mutation.SetMaxValue(v)
	return _u
}

// SetNillableMaxValue sets the "max_value" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableMaxValue(v *float64) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetMaxValue(*v)
	}
	return _u
}

// AddMaxValue adds value to the "max_value" field.
func (_u *ReferenceRangeUpdate) AddMaxValue(v float64) *ReferenceRangeUpdate {
	_u.mutation.AddMaxValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ReferenceRangeUpdate) SetUnit(v string) *ReferenceRangeUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableUnit(v *string) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *ReferenceRangeUpdate) SetGender(v string) *ReferenceRangeUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableGender(v *string) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *ReferenceRangeUpdate) ClearGender() *ReferenceRangeUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetAgeMin sets the "age_min" field.
func (_u *ReferenceRangeUpdate) SetAgeMin(v int) *ReferenceRangeUpdate {
	_u.mutation.ResetAgeMin()
	_u.mutation.SetAgeMin(v)
	return _u
}

// SetNillableAgeMin sets the "age_min" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableAgeMin(v *int) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetAgeMin(*v)
	}
	return _u
}

// AddAgeMin adds value to the "age_min" field.
func (_u *ReferenceRangeUpdate) AddAgeMin(v int) *ReferenceRangeUpdate {
	_u.mutation.AddAgeMin(v)
	return _u
}

// ClearAgeMin clears the value of the "age_min" field.
func (_u *ReferenceRangeUpdate) ClearAgeMin() *ReferenceRangeUpdate {
	_u.mutation.ClearAgeMin()
	return _u
}

// SetAgeMax sets the "age_max" field.
func (_u *ReferenceRangeUpdate) SetAgeMax(v int) *ReferenceRangeUpdate {
	_u.mutation.ResetAgeMax()
	_u.mutation.SetAgeMax(v)
	return _u
}

// SetNillableAgeMax sets the "age_max" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableAgeMax(v *int) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetAgeMax(*v)
	}
	return _u
}

// AddAgeMax adds value to the "age_max" field.
func (_u *ReferenceRangeUpdate) AddAgeMax(v int) *ReferenceRangeUpdate {
	_u.mutation.AddAgeMax(v)
	return _u
}

// ClearAgeMax clears the value of the "age_max" field.
func (_u *ReferenceRangeUpdate) ClearAgeMax() *ReferenceRangeUpdate {
	_u.mutation.ClearAgeMax()
	return _u
}

// SetSource sets the "source" field.
func (_u *ReferenceRangeUpdate) SetSource(v string) *ReferenceRangeUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableSource(v *string) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ReferenceRangeUpdate) SetIsActive(v bool) *ReferenceRangeUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ReferenceRangeUpdate) SetNillableIsActive(v *bool) *ReferenceRangeUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ReferenceRangeMutation object of the builder.
func (_u *ReferenceRangeUpdate) Mutation() *ReferenceRangeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferenceRangeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferenceRangeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferenceRangeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferenceRangeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferenceRangeUpdate) check() error {
	if v, ok := _u.mutation.BiomarkerName(); ok {
		if err := referencerange.BiomarkerNameValidator(v); err != nil {
			return &ValidationError{Name: "biomarker_name", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.biomarker_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := referencerange.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := referencerange.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := referencerange.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgeMin(); ok {
		if err := referencerange.AgeMinValidator(v); err != nil {
			return &ValidationError{Name: "age_min", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.age_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgeMax(); ok {
		if err := referencerange.AgeMaxValidator(v); err != nil {
			return &ValidationError{Name: "age_max", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.age_max": %w`, err)}
		}
	}
	return nil
}

func (_u *ReferenceRangeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referencerange.Table, referencerange.Columns, sqlgraph.NewFieldSpec(referencerange.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BiomarkerName(); ok {
		_spec.SetField(referencerange.FieldBiomarkerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(referencerange.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinValue(); ok {
		_spec.SetField(referencerange.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinValue(); ok {
		_spec.AddField(referencerange.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxValue(); ok {
		_spec.SetField(referencerange.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxValue(); ok {
		_spec.AddField(referencerange.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(referencerange.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(referencerange.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(referencerange.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.AgeMin(); ok {
		_spec.SetField(referencerange.FieldAgeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeMin(); ok {
		_spec.AddField(referencerange.FieldAgeMin, field.TypeInt, value)
	}
	if _u.mutation.AgeMinCleared() {
		_spec.ClearField(referencerange.FieldAgeMin, field.TypeInt)
	}
	if value, ok := _u.mutation.AgeMax(); ok {
		_spec.SetField(referencerange.FieldAgeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeMax(); ok {
		_spec.AddField(referencerange.FieldAgeMax, field.TypeInt, value)
	}
	if _u.mutation.AgeMaxCleared() {
		_spec.ClearField(referencerange.FieldAgeMax, field.TypeInt)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(referencerange.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(referencerange.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referencerange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferenceRangeUpdateOne is the builder for updating a single ReferenceRange entity.
type ReferenceRangeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferenceRangeMutation
}

// SetBiomarkerName sets the "biomarker_name" field.
func (_u *ReferenceRangeUpdateOne) SetBiomarkerName(v string) *ReferenceRangeUpdateOne {
	_u.mutation.SetBiomarkerName(v)
	return _u
}

// SetNillableBiomarkerName sets the "biomarker_name" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableBiomarkerName(v *string) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetBiomarkerName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *ReferenceRangeUpdateOne) SetNormalizedName(v string) *ReferenceRangeUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableNormalizedName(v *string) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetMinValue sets the "min_value" field.
func (_u *ReferenceRangeUpdateOne) SetMinValue(v float64) *ReferenceRangeUpdateOne {
	_u.mutation.ResetMinValue()
	_u.mutation.SetMinValue(v)
	return _u
}

// SetNillableMinValue sets the "min_value" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableMinValue(v *float64) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetMinValue(*v)
	}
	return _u
}

// AddMinValue adds value to the "min_value" field.
func (_u *ReferenceRangeUpdateOne) AddMinValue(v float64) *ReferenceRangeUpdateOne {
	_u.mutation.AddMinValue(v)
	return _u
}

// SetMaxValue sets the "max_value" field.
func (_u *ReferenceRangeUpdateOne) SetMaxValue(v float64) *ReferenceRangeUpdateOne {
	_u.mutation.ResetMaxValue()
	_u.mutation.SetMaxValue(v)
	return _u
}

// SetNillableMaxValue sets the "max_value" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableMaxValue(v *float64) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetMaxValue(*v)
	}
	return _u
}

// AddMaxValue adds value to the "max_value" field.
func (_u *ReferenceRangeUpdateOne) AddMaxValue(v float64) *ReferenceRangeUpdateOne {
	_u.mutation.AddMaxValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ReferenceRangeUpdateOne) SetUnit(v string) *ReferenceRangeUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableUnit(v *string) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *ReferenceRangeUpdateOne) SetGender(v string) *ReferenceRangeUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableGender(v *string) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *ReferenceRangeUpdateOne) ClearGender() *ReferenceRangeUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetAgeMin sets the "age_min" field.
func (_u *ReferenceRangeUpdateOne) SetAgeMin(v int) *ReferenceRangeUpdateOne {
	_u.mutation.ResetAgeMin()
	_u.mutation.SetAgeMin(v)
	return _u
}

// SetNillableAgeMin sets the "age_min" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableAgeMin(v *int) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetAgeMin(*v)
	}
	return _u
}

// AddAgeMin adds value to the "age_min" field.
func (_u *ReferenceRangeUpdateOne) AddAgeMin(v int) *ReferenceRangeUpdateOne {
	_u.mutation.AddAgeMin(v)
	return _u
}

// ClearAgeMin clears the value of the "age_min" field.
func (_u *ReferenceRangeUpdateOne) ClearAgeMin() *ReferenceRangeUpdateOne {
	_u.mutation.ClearAgeMin()
	return _u
}

// SetAgeMax sets the "age_max" field.
func (_u *ReferenceRangeUpdateOne) SetAgeMax(v int) *ReferenceRangeUpdateOne {
	_u.mutation.ResetAgeMax()
	_u.mutation.SetAgeMax(v)
	return _u
}

// SetNillableAgeMax sets the "age_max" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableAgeMax(v *int) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetAgeMax(*v)
	}
	return _u
}

// AddAgeMax adds value to the "age_max" field.
func (_u *ReferenceRangeUpdateOne) AddAgeMax(v int) *ReferenceRangeUpdateOne {
	_u.mutation.AddAgeMax(v)
	return _u
}

// ClearAgeMax clears the value of the "age_max" field.
func (_u *ReferenceRangeUpdateOne) ClearAgeMax() *ReferenceRangeUpdateOne {
	_u.mutation.ClearAgeMax()
	return _u
}

// SetSource sets the "source" field.
func (_u *ReferenceRangeUpdateOne) SetSource(v string) *ReferenceRangeUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableSource(v *string) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ReferenceRangeUpdateOne) SetIsActive(v bool) *ReferenceRangeUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ReferenceRangeUpdateOne) SetNillableIsActive(v *bool) *ReferenceRangeUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ReferenceRangeMutation object of the builder.
func (_u *ReferenceRangeUpdateOne) Mutation() *ReferenceRangeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReferenceRangeUpdate builder.
func (_u *ReferenceRangeUpdateOne) Where(ps ...predicate.ReferenceRange) *ReferenceRangeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferenceRangeUpdateOne) Select(field string, fields ...string) *ReferenceRangeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReferenceRange entity.
func (_u *ReferenceRangeUpdateOne) Save(ctx context.Context) (*ReferenceRange, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferenceRangeUpdateOne) SaveX(ctx context.Context) *ReferenceRange {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferenceRangeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferenceRangeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferenceRangeUpdateOne) check() error {
	if v, ok := _u.mutation.BiomarkerName(); ok {
		if err := referencerange.BiomarkerNameValidator(v); err != nil {
			return &ValidationError{Name: "biomarker_name", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.biomarker_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := referencerange.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := referencerange.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := referencerange.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgeMin(); ok {
		if err := referencerange.AgeMinValidator(v); err != nil {
			return &ValidationError{Name: "age_min", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.age_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgeMax(); ok {
		if err := referencerange.AgeMaxValidator(v); err != nil {
			return &ValidationError{Name: "age_max", err: fmt.Errorf(`ent: validator failed for field "ReferenceRange.age_max": %w`, err)}
		}
	}
	return nil
}

func (_u *ReferenceRangeUpdateOne) sqlSave(ctx context.Context) (_node *ReferenceRange, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referencerange.Table, referencerange.Columns, sqlgraph.NewFieldSpec(referencerange.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReferenceRange.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referencerange.FieldID)
		for _, f := range fields {
			if !referencerange.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != referencerange.FieldID {
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
	if value, ok := _u.mutation.BiomarkerName(); ok {
		_spec.SetField(referencerange.FieldBiomarkerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(referencerange.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinValue(); ok {
		_spec.SetField(referencerange.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinValue(); ok {
		_spec.AddField(referencerange.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxValue(); ok {
		_spec.SetField(referencerange.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxValue(); ok {
		_spec.AddField(referencerange.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(referencerange.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(referencerange.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(referencerange.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.AgeMin(); ok {
		_spec.SetField(referencerange.FieldAgeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeMin(); ok {
		_spec.AddField(referencerange.FieldAgeMin, field.TypeInt, value)
	}
	if _u.mutation.AgeMinCleared() {
		_spec.ClearField(referencerange.FieldAgeMin, field.TypeInt)
	}
	if value, ok := _u.mutation.AgeMax(); ok {
		_spec.SetField(referencerange.FieldAgeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeMax(); ok {
		_spec.AddField(referencerange.FieldAgeMax, field.TypeInt, value)
	}
	if _u.mutation.AgeMaxCleared() {
		_spec.ClearField(referencerange.FieldAgeMax, field.TypeInt)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(referencerange.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(referencerange.FieldIsActive, field.TypeBool, value)
	}
	_node = &ReferenceRange{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referencerange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
