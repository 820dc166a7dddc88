// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claim"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claimevidence"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
)

// ClaimCreate is the builder for creating a Claim entity.
type ClaimCreate struct {
	config
	mutation *ClaimMutation
	hooks    []Hook
}

// SetClaimNumber sets the "claim_number" field.
func (_c *ClaimCreate) SetClaimNumber(v string) *ClaimCreate {
	_c.mutation.SetClaimNumber(v)
	return _c
}

// SetPolicyNumber sets the "policy_number" field.
func (_c *ClaimCreate) SetPolicyNumber(v string) *ClaimCreate {
	_c.mutation.SetPolicyNumber(v)
	return _c
}

// SetClaimantName sets the "claimant_name" field.
func (_c *ClaimCreate) SetClaimantName(v string) *ClaimCreate {
	_c.mutation.SetClaimantName(v)
	return _c
}

// SetPropertyAddress sets the "property_address" field.
func (_c *ClaimCreate) SetPropertyAddress(v string) *ClaimCreate {
	_c.mutation.SetPropertyAddress(v)
	return _c
}

// SetDateOfLoss sets the "date_of_loss" field.
func (_c *ClaimCreate) SetDateOfLoss(v time.Time) *ClaimCreate {
	_c.mutation.SetDateOfLoss(v)
	return _c
}

// SetCauseOfLoss sets the "cause_of_loss" field.
func (_c *ClaimCreate) SetCauseOfLoss(v string) *ClaimCreate {
	_c.mutation.SetCauseOfLoss(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClaimCreate) SetStatus(v string) *ClaimCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableStatus(v *string) *ClaimCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAnalysis sets the "analysis" field.
func (_c *ClaimCreate) SetAnalysis(v json.RawMessage) *ClaimCreate {
	_c.mutation.SetAnalysis(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimCreate) SetCreatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableCreatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimCreate) SetUpdatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableUpdatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimCreate) SetID(v uuid.UUID) *ClaimCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableID(v *uuid.UUID) *ClaimCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInvoiceIDs adds the "invoices" edge to the ClaimInvoice entity by IDs.
func (_c *ClaimCreate) AddInvoiceIDs(ids ...uuid.UUID) *ClaimCreate {
	_c.mutation.AddInvoiceIDs(ids...)
	return _c
}

// AddInvoices adds the "invoices" edges to the ClaimInvoice entity.
func (_c *ClaimCreate) AddInvoices(v ...*ClaimInvoice) *ClaimCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvoiceIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the ClaimEvidence entity by IDs.
func (_c *ClaimCreate) AddEvidenceIDs(ids ...uuid.UUID) *ClaimCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the ClaimEvidence entity.
func (_c *ClaimCreate) AddEvidence(v ...*ClaimEvidence) *ClaimCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_c *ClaimCreate) Mutation() *ClaimMutation {
	return _c.mutation
}

// Save creates the Claim in the database.
func (_c *ClaimCreate) Save(ctx context.Context) (*Claim, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimCreate) SaveX(ctx context.Context) *Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := claim.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claim.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claim.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := claim.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimCreate) check() error {
	if _, ok := _c.mutation.ClaimNumber(); !ok {
		return &ValidationError{Name: "claim_number", err: errors.New(`ent: missing required field "Claim.claim_number"`)}
	}
	if v, ok := _c.mutation.ClaimNumber(); ok {
		if err := claim.ClaimNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_number", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PolicyNumber(); !ok {
		return &ValidationError{Name: "policy_number", err: errors.New(`ent: missing required field "Claim.policy_number"`)}
	}
	if v, ok := _c.mutation.PolicyNumber(); ok {
		if err := claim.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Claim.policy_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaimantName(); !ok {
		return &ValidationError{Name: "claimant_name", err: errors.New(`ent: missing required field "Claim.claimant_name"`)}
	}
	if v, ok := _c.mutation.ClaimantName(); ok {
		if err := claim.ClaimantNameValidator(v); err != nil {
			return &ValidationError{Name: "claimant_name", err: fmt.Errorf(`ent: validator failed for field "Claim.claimant_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PropertyAddress(); !ok {
		return &ValidationError{Name: "property_address", err: errors.New(`ent: missing required field "Claim.property_address"`)}
	}
	if v, ok := _c.mutation.PropertyAddress(); ok {
		if err := claim.PropertyAddressValidator(v); err != nil {
			return &ValidationError{Name: "property_address", err: fmt.Errorf(`ent: validator failed for field "Claim.property_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DateOfLoss(); !ok {
		return &ValidationError{Name: "date_of_loss", err: errors.New(`ent: missing required field "Claim.date_of_loss"`)}
	}
	if _, ok := _c.mutation.CauseOfLoss(); !ok {
		return &ValidationError{Name: "cause_of_loss", err: errors.New(`ent: missing required field "Claim.cause_of_loss"`)}
	}
	if v, ok := _c.mutation.CauseOfLoss(); ok {
		if err := claim.CauseOfLossValidator(v); err != nil {
			return &ValidationError{Name: "cause_of_loss", err: fmt.Errorf(`ent: validator failed for field "Claim.cause_of_loss": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Claim.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := claim.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Claim.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Claim.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Claim.updated_at"`)}
	}
	return nil
}

func (_c *ClaimCreate) sqlSave(ctx context.Context) (*Claim, error) {
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

func (_c *ClaimCreate) createSpec() (*Claim, *sqlgraph.CreateSpec) {
	var (
		_node = &Claim{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claim.Table, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClaimNumber(); ok {
		_spec.SetField(claim.FieldClaimNumber, field.TypeString, value)
		_node.ClaimNumber = value
	}
	if value, ok := _c.mutation.PolicyNumber(); ok {
		_spec.SetField(claim.FieldPolicyNumber, field.TypeString, value)
		_node.PolicyNumber = value
	}
	if value, ok := _c.mutation.ClaimantName(); ok {
		_spec.SetField(claim.FieldClaimantName, field.TypeString, value)
		_node.ClaimantName = value
	}
	if value, ok := _c.mutation.PropertyAddress(); ok {
		_spec.SetField(claim.FieldPropertyAddress, field.TypeString, value)
		_node.PropertyAddress = value
	}
	if value, ok := _c.mutation.DateOfLoss(); ok {
		_spec.SetField(claim.FieldDateOfLoss, field.TypeTime, value)
		_node.DateOfLoss = value
	}
	if value, ok := _c.mutation.CauseOfLoss(); ok {
		_spec.SetField(claim.FieldCauseOfLoss, field.TypeString, value)
		_node.CauseOfLoss = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(claim.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Analysis(); ok {
		_spec.SetField(claim.FieldAnalysis, field.TypeJSON, value)
		_node.Analysis = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.InvoicesTable,
			Columns: []string{claim.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claiminvoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.EvidenceTable,
			Columns: []string{claim.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claimevidence.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClaimCreateBulk is the builder for creating many Claim entities in bulk.
type ClaimCreateBulk struct {
	config
	err      error
	builders []*ClaimCreate
}

// Save creates the Claim entities in the database.
func (_c *ClaimCreateBulk) Save(ctx context.Context) ([]*Claim, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Claim, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimMutation)
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
func (_c *ClaimCreateBulk) SaveX(ctx context.Context) []*Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
