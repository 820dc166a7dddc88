// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claim"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claimevidence"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
)

// ClaimUpdate is the builder for updating Claim entities.
type ClaimUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimMutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdate) Where(ps ...predicate.Claim) *ClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClaimNumber sets the "claim_number" field.
func (_u *ClaimUpdate) SetClaimNumber(v string) *ClaimUpdate {
	_u.mutation.SetClaimNumber(v)
	return _u
}

// SetNillableClaimNumber sets the "claim_number" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimNumber(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetClaimNumber(*v)
	}
	return _u
}

// SetPolicyNumber sets the "policy_number" field.
func (_u *ClaimUpdate) SetPolicyNumber(v string) *ClaimUpdate {
	_u.mutation.SetPolicyNumber(v)
	return _u
}

// SetNillablePolicyNumber sets the "policy_number" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillablePolicyNumber(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetPolicyNumber(*v)
	}
	return _u
}

// SetClaimantName sets the "claimant_name" field.
func (_u *ClaimUpdate) SetClaimantName(v string) *ClaimUpdate {
	_u.mutation.SetClaimantName(v)
	return _u
}

// SetNillableClaimantName sets the "claimant_name" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimantName(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetClaimantName(*v)
	}
	return _u
}

// SetPropertyAddress sets the "property_address" field.
func (_u *ClaimUpdate) SetPropertyAddress(v string) *ClaimUpdate {
	_u.mutation.SetPropertyAddress(v)
	return _u
}

// SetNillablePropertyAddress sets the "property_address" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillablePropertyAddress(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetPropertyAddress(*v)
	}
	return _u
}

// SetCauseOfLoss sets the "cause_of_loss" field.
func (_u *ClaimUpdate) SetCauseOfLoss(v string) *ClaimUpdate {
	_u.mutation.SetCauseOfLoss(v)
	return _u
}

// SetNillableCauseOfLoss sets the "cause_of_loss" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableCauseOfLoss(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetCauseOfLoss(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClaimUpdate) SetStatus(v string) *ClaimUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableStatus(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *ClaimUpdate) SetAnalysis(v json.RawMessage) *ClaimUpdate {
	_u.mutation.SetAnalysis(v)
	return _u
}

// AppendAnalysis appends value to the "analysis" field.
func (_u *ClaimUpdate) AppendAnalysis(v json.RawMessage) *ClaimUpdate {
	_u.mutation.AppendAnalysis(v)
	return _u
}

// ClearAnalysis clears the value of the "analysis" field.
func (_u *ClaimUpdate) ClearAnalysis() *ClaimUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimUpdate) SetCreatedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableCreatedAt(v *time.Time) *ClaimUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdate) SetUpdatedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the ClaimInvoice entity by IDs.
func (_u *ClaimUpdate) AddInvoiceIDs(ids ...uuid.UUID) *ClaimUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the ClaimInvoice entity.
func (_u *ClaimUpdate) AddInvoices(v ...*ClaimInvoice) *ClaimUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the ClaimEvidence entity by IDs.
func (_u *ClaimUpdate) AddEvidenceIDs(ids ...uuid.UUID) *ClaimUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the ClaimEvidence entity.
func (_u *ClaimUpdate) AddEvidence(v ...*ClaimEvidence) *ClaimUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdate) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the ClaimInvoice entity.
func (_u *ClaimUpdate) ClearInvoices() *ClaimUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to ClaimInvoice entities by IDs.
func (_u *ClaimUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *ClaimUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to ClaimInvoice entities.
func (_u *ClaimUpdate) RemoveInvoices(v ...*ClaimInvoice) *ClaimUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// ClearEvidence clears all "evidence" edges to the ClaimEvidence entity.
func (_u *ClaimUpdate) ClearEvidence() *ClaimUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to ClaimEvidence entities by IDs.
func (_u *ClaimUpdate) RemoveEvidenceIDs(ids ...uuid.UUID) *ClaimUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to ClaimEvidence entities.
func (_u *ClaimUpdate) RemoveEvidence(v ...*ClaimEvidence) *ClaimUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdate) check() error {
	if v, ok := _u.mutation.ClaimNumber(); ok {
		if err := claim.ClaimNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_number", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PolicyNumber(); ok {
		if err := claim.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Claim.policy_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimantName(); ok {
		if err := claim.ClaimantNameValidator(v); err != nil {
			return &ValidationError{Name: "claimant_name", err: fmt.Errorf(`ent: validator failed for field "Claim.claimant_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyAddress(); ok {
		if err := claim.PropertyAddressValidator(v); err != nil {
			return &ValidationError{Name: "property_address", err: fmt.Errorf(`ent: validator failed for field "Claim.property_address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CauseOfLoss(); ok {
		if err := claim.CauseOfLossValidator(v); err != nil {
			return &ValidationError{Name: "cause_of_loss", err: fmt.Errorf(`ent: validator failed for field "Claim.cause_of_loss": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := claim.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Claim.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClaimNumber(); ok {
		_spec.SetField(claim.FieldClaimNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PolicyNumber(); ok {
		_spec.SetField(claim.FieldPolicyNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimantName(); ok {
		_spec.SetField(claim.FieldClaimantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyAddress(); ok {
		_spec.SetField(claim.FieldPropertyAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.CauseOfLoss(); ok {
		_spec.SetField(claim.FieldCauseOfLoss, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(claim.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(claim.FieldAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claim.FieldAnalysis, value)
		})
	}
	if _u.mutation.AnalysisCleared() {
		_spec.ClearField(claim.FieldAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimUpdateOne is the builder for updating a single Claim entity.
type ClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimMutation
}

// SetClaimNumber sets the "claim_number" field.
func (_u *ClaimUpdateOne) SetClaimNumber(v string) *ClaimUpdateOne {
	_u.mutation.SetClaimNumber(v)
	return _u
}

// SetNillableClaimNumber sets the "claim_number" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimNumber(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimNumber(*v)
	}
	return _u
}

// SetPolicyNumber sets the "policy_number" field.
func (_u *ClaimUpdateOne) SetPolicyNumber(v string) *ClaimUpdateOne {
	_u.mutation.SetPolicyNumber(v)
	return _u
}

// SetNillablePolicyNumber sets the "policy_number" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillablePolicyNumber(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetPolicyNumber(*v)
	}
	return _u
}

// SetClaimantName sets the "claimant_name" field.
func (_u *ClaimUpdateOne) SetClaimantName(v string) *ClaimUpdateOne {
	_u.mutation.SetClaimantName(v)
	return _u
}

// SetNillableClaimantName sets the "claimant_name" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimantName(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimantName(*v)
	}
	return _u
}

// SetPropertyAddress sets the "property_address" field.
func (_u *ClaimUpdateOne) SetPropertyAddress(v string) *ClaimUpdateOne {
	_u.mutation.SetPropertyAddress(v)
	return _u
}

// SetNillablePropertyAddress sets the "property_address" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillablePropertyAddress(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetPropertyAddress(*v)
	}
	return _u
}

// SetCauseOfLoss sets the "cause_of_loss" field.
func (_u *ClaimUpdateOne) SetCauseOfLoss(v string) *ClaimUpdateOne {
	_u.mutation.SetCauseOfLoss(v)
	return _u
}

// SetNillableCauseOfLoss sets the "cause_of_loss" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableCauseOfLoss(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetCauseOfLoss(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClaimUpdateOne) SetStatus(v string) *ClaimUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableStatus(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *ClaimUpdateOne) SetAnalysis(v json.RawMessage) *ClaimUpdateOne {
	_u.mutation.SetAnalysis(v)
	return _u
}

// AppendAnalysis appends value to the "analysis" field.
func (_u *ClaimUpdateOne) AppendAnalysis(v json.RawMessage) *ClaimUpdateOne {
	_u.mutation.AppendAnalysis(v)
	return _u
}

// ClearAnalysis clears the value of the "analysis" field.
func (_u *ClaimUpdateOne) ClearAnalysis() *ClaimUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimUpdateOne) SetCreatedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableCreatedAt(v *time.Time) *ClaimUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdateOne) SetUpdatedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the ClaimInvoice entity by IDs.
func (_u *ClaimUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *ClaimUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the ClaimInvoice entity.
func (_u *ClaimUpdateOne) AddInvoices(v ...*ClaimInvoice) *ClaimUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the ClaimEvidence entity by IDs.
func (_u *ClaimUpdateOne) AddEvidenceIDs(ids ...uuid.UUID) *ClaimUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the ClaimEvidence entity.
func (_u *ClaimUpdateOne) AddEvidence(v ...*ClaimEvidence) *ClaimUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdateOne) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the ClaimInvoice entity.
func (_u *ClaimUpdateOne) ClearInvoices() *ClaimUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to ClaimInvoice entities by IDs.
func (_u *ClaimUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *ClaimUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to ClaimInvoice entities.
func (_u *ClaimUpdateOne) RemoveInvoices(v ...*ClaimInvoice) *ClaimUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// ClearEvidence clears all "evidence" edges to the ClaimEvidence entity.
func (_u *ClaimUpdateOne) ClearEvidence() *ClaimUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to ClaimEvidence entities by IDs.
func (_u *ClaimUpdateOne) RemoveEvidenceIDs(ids ...uuid.UUID) *ClaimUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to ClaimEvidence entities.
func (_u *ClaimUpdateOne) RemoveEvidence(v ...*ClaimEvidence) *ClaimUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdateOne) Where(ps ...predicate.Claim) *ClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimUpdateOne) Select(field string, fields ...string) *ClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Claim entity.
func (_u *ClaimUpdateOne) Save(ctx context.Context) (*Claim, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdateOne) SaveX(ctx context.Context) *Claim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdateOne) check() error {
	if v, ok := _u.mutation.ClaimNumber(); ok {
		if err := claim.ClaimNumberValidator(v); err != nil {
			return &ValidationError{Name: "claim_number", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PolicyNumber(); ok {
		if err := claim.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Claim.policy_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimantName(); ok {
		if err := claim.ClaimantNameValidator(v); err != nil {
			return &ValidationError{Name: "claimant_name", err: fmt.Errorf(`ent: validator failed for field "Claim.claimant_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyAddress(); ok {
		if err := claim.PropertyAddressValidator(v); err != nil {
			return &ValidationError{Name: "property_address", err: fmt.Errorf(`ent: validator failed for field "Claim.property_address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CauseOfLoss(); ok {
		if err := claim.CauseOfLossValidator(v); err != nil {
			return &ValidationError{Name: "cause_of_loss", err: fmt.Errorf(`ent: validator failed for field "Claim.cause_of_loss": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := claim.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Claim.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimUpdateOne) sqlSave(ctx context.Context) (_node *Claim, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Claim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claim.FieldID)
		for _, f := range fields {
			if !claim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claim.FieldID {
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
	if value, ok := _u.mutation.ClaimNumber(); ok {
		_spec.SetField(claim.FieldClaimNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PolicyNumber(); ok {
		_spec.SetField(claim.FieldPolicyNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimantName(); ok {
		_spec.SetField(claim.FieldClaimantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyAddress(); ok {
		_spec.SetField(claim.FieldPropertyAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.CauseOfLoss(); ok {
		_spec.SetField(claim.FieldCauseOfLoss, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(claim.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(claim.FieldAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claim.FieldAnalysis, value)
		})
	}
	if _u.mutation.AnalysisCleared() {
		_spec.ClearField(claim.FieldAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Claim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
