// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claimevidence"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
)

// ClaimEvidenceDelete is the builder for deleting a ClaimEvidence entity.
type ClaimEvidenceDelete struct {
	config
	hooks    []Hook
	mutation *ClaimEvidenceMutation
}

// Where appends a list predicates to the ClaimEvidenceDelete builder.
func (_d *ClaimEvidenceDelete) Where(ps ...predicate.ClaimEvidence) *ClaimEvidenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClaimEvidenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClaimEvidenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClaimEvidenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(claimevidence.Table, sqlgraph.NewFieldSpec(claimevidence.FieldID, field.TypeUUID))
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

// ClaimEvidenceDeleteOne is the builder for deleting a single ClaimEvidence entity.
type ClaimEvidenceDeleteOne struct {
	_d *ClaimEvidenceDelete
}

// Where appends a list predicates to the ClaimEvidenceDelete builder.
func (_d *ClaimEvidenceDeleteOne) Where(ps ...predicate.ClaimEvidence) *ClaimEvidenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClaimEvidenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{claimevidence.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClaimEvidenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
