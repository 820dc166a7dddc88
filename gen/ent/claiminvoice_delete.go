// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
)

// ClaimInvoiceDelete is the builder for deleting a ClaimInvoice entity.
type ClaimInvoiceDelete struct {
	config
	hooks    []Hook
	mutation *ClaimInvoiceMutation
}

// Where appends a list predicates to the ClaimInvoiceDelete builder.
func (_d *ClaimInvoiceDelete) Where(ps ...predicate.ClaimInvoice) *ClaimInvoiceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClaimInvoiceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClaimInvoiceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClaimInvoiceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(claiminvoice.Table, sqlgraph.NewFieldSpec(claiminvoice.FieldID, field.TypeUUID))
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

// ClaimInvoiceDeleteOne is the builder for deleting a single ClaimInvoice entity.
type ClaimInvoiceDeleteOne struct {
	_d *ClaimInvoiceDelete
}

// Where appends a list predicates to the ClaimInvoiceDelete builder.
func (_d *ClaimInvoiceDeleteOne) Where(ps ...predicate.ClaimInvoice) *ClaimInvoiceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClaimInvoiceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{claiminvoice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClaimInvoiceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
