// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
)

// BiomarkerDelete is the builder for deleting a Biomarker entity.
type BiomarkerDelete struct {
	config
	hooks    []Hook
	mutation *BiomarkerMutation
}

// Where appends a list predicates to the BiomarkerDelete builder.
func (_d *BiomarkerDelete) Where(ps ...predicate.Biomarker) *BiomarkerDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BiomarkerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BiomarkerDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BiomarkerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(biomarker.Table, sqlgraph.NewFieldSpec(biomarker.FieldID, field.TypeUUID))
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

// BiomarkerDeleteOne is the builder for deleting a single Biomarker entity.
type BiomarkerDeleteOne struct {
	_d *BiomarkerDelete
}

// Where appends a list predicates to the BiomarkerDelete builder.
func (_d *BiomarkerDeleteOne) Where(ps ...predicate.Biomarker) *BiomarkerDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BiomarkerDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{biomarker.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BiomarkerDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
