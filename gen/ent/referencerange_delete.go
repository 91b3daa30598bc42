// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
	"github.com/examtrack/exam-analyzer/gen/ent/referencerange"
)

// ReferenceRangeDelete is the builder for deleting a ReferenceRange entity.
type ReferenceRangeDelete struct {
	config
	hooks    []Hook
	mutation *ReferenceRangeMutation
}

// Where appends a list predicates to the ReferenceRangeDelete builder.
func (_d *ReferenceRangeDelete) Where(ps ...predicate.ReferenceRange) *ReferenceRangeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReferenceRangeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReferenceRangeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReferenceRangeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(referencerange.Table, sqlgraph.NewFieldSpec(referencerange.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ReferenceRangeDeleteOne is the builder for deleting a single ReferenceRange entity.
type ReferenceRangeDeleteOne struct {
	_d *ReferenceRangeDelete
}

// Where appends a list predicates to the ReferenceRangeDelete builder.
func (_d *ReferenceRangeDeleteOne) Where(ps ...predicate.ReferenceRange) *ReferenceRangeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReferenceRangeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{referencerange.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReferenceRangeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
