// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claim"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claimevidence"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClaim         = "Claim"
	TypeClaimEvidence = "ClaimEvidence"
	TypeClaimInvoice  = "ClaimInvoice"
)

// ClaimMutation represents an operation that mutates the Claim nodes in the graph.
type ClaimMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	claim_number     *string
	policy_number    *string
	claimant_name    *string
	property_address *string
	date_of_loss     *time.Time
	cause_of_loss    *string
	status           *string
	analysis         *json.RawMessage
	appendanalysis   json.RawMessage
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	invoices         map[uuid.UUID]struct{}
	removedinvoices  map[uuid.UUID]struct{}
	clearedinvoices  bool
	evidence         map[uuid.UUID]struct{}
	removedevidence  map[uuid.UUID]struct{}
	clearedevidence  bool
	done             bool
	oldValue         func(context.Context) (*Claim, error)
	predicates       []predicate.Claim
}

var _ ent.Mutation = (*ClaimMutation)(nil)

// claimOption allows management of the mutation configuration using functional options.
type claimOption func(*ClaimMutation)

// newClaimMutation creates new mutation for the Claim entity.
func newClaimMutation(c config, op Op, opts ...claimOption) *ClaimMutation {
	m := &ClaimMutation{
		config:        c,
		op:            op,
		typ:           TypeClaim,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimID sets the ID field of the mutation.
func withClaimID(id uuid.UUID) claimOption {
	return func(m *ClaimMutation) {
		var (
			err   error
			once  sync.Once
			value *Claim
		)
		m.oldValue = func(ctx context.Context) (*Claim, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Claim.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaim sets the old Claim of the mutation.
func withClaim(node *Claim) claimOption {
	return func(m *ClaimMutation) {
		m.oldValue = func(context.Context) (*Claim, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Claim entities.
func (m *ClaimMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Claim.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaimNumber sets the "claim_number" field.
func (m *ClaimMutation) SetClaimNumber(s string) {
	m.claim_number = &s
}

// ClaimNumber returns the value of the "claim_number" field in the mutation.
func (m *ClaimMutation) ClaimNumber() (r string, exists bool) {
	v := m.claim_number
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimNumber returns the old "claim_number" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimNumber: %w", err)
	}
	return oldValue.ClaimNumber, nil
}

// ResetClaimNumber resets all changes to the "claim_number" field.
func (m *ClaimMutation) ResetClaimNumber() {
	m.claim_number = nil
}

// SetPolicyNumber sets the "policy_number" field.
func (m *ClaimMutation) SetPolicyNumber(s string) {
	m.policy_number = &s
}

// PolicyNumber returns the value of the "policy_number" field in the mutation.
func (m *ClaimMutation) PolicyNumber() (r string, exists bool) {
	v := m.policy_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyNumber returns the old "policy_number" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldPolicyNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyNumber: %w", err)
	}
	return oldValue.PolicyNumber, nil
}

// ResetPolicyNumber resets all changes to the "policy_number" field.
func (m *ClaimMutation) ResetPolicyNumber() {
	m.policy_number = nil
}

// SetClaimantName sets the "claimant_name" field.
func (m *ClaimMutation) SetClaimantName(s string) {
	m.claimant_name = &s
}

// ClaimantName returns the value of the "claimant_name" field in the mutation.
func (m *ClaimMutation) ClaimantName() (r string, exists bool) {
	v := m.claimant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimantName returns the old "claimant_name" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimantName: %w", err)
	}
	return oldValue.ClaimantName, nil
}

// ResetClaimantName resets all changes to the "claimant_name" field.
func (m *ClaimMutation) ResetClaimantName() {
	m.claimant_name = nil
}

// SetPropertyAddress sets the "property_address" field.
func (m *ClaimMutation) SetPropertyAddress(s string) {
	m.property_address = &s
}

// PropertyAddress returns the value of the "property_address" field in the mutation.
func (m *ClaimMutation) PropertyAddress() (r string, exists bool) {
	v := m.property_address
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyAddress returns the old "property_address" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldPropertyAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyAddress: %w", err)
	}
	return oldValue.PropertyAddress, nil
}

// ResetPropertyAddress resets all changes to the "property_address" field.
func (m *ClaimMutation) ResetPropertyAddress() {
	m.property_address = nil
}

// SetDateOfLoss sets the "date_of_loss" field.
func (m *ClaimMutation) SetDateOfLoss(t time.Time) {
	m.date_of_loss = &t
}

// DateOfLoss returns the value of the "date_of_loss" field in the mutation.
func (m *ClaimMutation) DateOfLoss() (r time.Time, exists bool) {
	v := m.date_of_loss
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfLoss returns the old "date_of_loss" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldDateOfLoss(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfLoss is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfLoss requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfLoss: %w", err)
	}
	return oldValue.DateOfLoss, nil
}

// ResetDateOfLoss resets all changes to the "date_of_loss" field.
func (m *ClaimMutation) ResetDateOfLoss() {
	m.date_of_loss = nil
}

// SetCauseOfLoss sets the "cause_of_loss" field.
func (m *ClaimMutation) SetCauseOfLoss(s string) {
	m.cause_of_loss = &s
}

// CauseOfLoss returns the value of the "cause_of_loss" field in the mutation.
func (m *ClaimMutation) CauseOfLoss() (r string, exists bool) {
	v := m.cause_of_loss
	if v == nil {
		return
	}
	return *v, true
}

// OldCauseOfLoss returns the old "cause_of_loss" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldCauseOfLoss(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCauseOfLoss is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCauseOfLoss requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCauseOfLoss: %w", err)
	}
	return oldValue.CauseOfLoss, nil
}

// ResetCauseOfLoss resets all changes to the "cause_of_loss" field.
func (m *ClaimMutation) ResetCauseOfLoss() {
	m.cause_of_loss = nil
}

// SetStatus sets the "status" field.
func (m *ClaimMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ClaimMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ClaimMutation) ResetStatus() {
	m.status = nil
}

// SetAnalysis sets the "analysis" field.
func (m *ClaimMutation) SetAnalysis(jm json.RawMessage) {
	m.analysis = &jm
	m.appendanalysis = nil
}

// Analysis returns the value of the "analysis" field in the mutation.
func (m *ClaimMutation) Analysis() (r json.RawMessage, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysis returns the old "analysis" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldAnalysis(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysis: %w", err)
	}
	return oldValue.Analysis, nil
}

// AppendAnalysis adds jm to the "analysis" field.
func (m *ClaimMutation) AppendAnalysis(jm json.RawMessage) {
	m.appendanalysis = append(m.appendanalysis, jm...)
}

// AppendedAnalysis returns the list of values that were appended to the "analysis" field in this mutation.
func (m *ClaimMutation) AppendedAnalysis() (json.RawMessage, bool) {
	if len(m.appendanalysis) == 0 {
		return nil, false
	}
	return m.appendanalysis, true
}

// ClearAnalysis clears the value of the "analysis" field.
func (m *ClaimMutation) ClearAnalysis() {
	m.analysis = nil
	m.appendanalysis = nil
	m.clearedFields[claim.FieldAnalysis] = struct{}{}
}

// AnalysisCleared returns if the "analysis" field was cleared in this mutation.
func (m *ClaimMutation) AnalysisCleared() bool {
	_, ok := m.clearedFields[claim.FieldAnalysis]
	return ok
}

// ResetAnalysis resets all changes to the "analysis" field.
func (m *ClaimMutation) ResetAnalysis() {
	m.analysis = nil
	m.appendanalysis = nil
	delete(m.clearedFields, claim.FieldAnalysis)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddInvoiceIDs adds the "invoices" edge to the ClaimInvoice entity by ids.
func (m *ClaimMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the ClaimInvoice entity.
func (m *ClaimMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the ClaimInvoice entity was cleared.
func (m *ClaimMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the ClaimInvoice entity by IDs.
func (m *ClaimMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the ClaimInvoice entity.
func (m *ClaimMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *ClaimMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *ClaimMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// AddEvidenceIDs adds the "evidence" edge to the ClaimEvidence entity by ids.
func (m *ClaimMutation) AddEvidenceIDs(ids ...uuid.UUID) {
	if m.evidence == nil {
		m.evidence = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the ClaimEvidence entity.
func (m *ClaimMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the ClaimEvidence entity was cleared.
func (m *ClaimMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the ClaimEvidence entity by IDs.
func (m *ClaimMutation) RemoveEvidenceIDs(ids ...uuid.UUID) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the ClaimEvidence entity.
func (m *ClaimMutation) RemovedEvidenceIDs() (ids []uuid.UUID) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *ClaimMutation) EvidenceIDs() (ids []uuid.UUID) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *ClaimMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// Where appends a list predicates to the ClaimMutation builder.
func (m *ClaimMutation) Where(ps ...predicate.Claim) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Claim, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Claim).
func (m *ClaimMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.claim_number != nil {
		fields = append(fields, claim.FieldClaimNumber)
	}
	if m.policy_number != nil {
		fields = append(fields, claim.FieldPolicyNumber)
	}
	if m.claimant_name != nil {
		fields = append(fields, claim.FieldClaimantName)
	}
	if m.property_address != nil {
		fields = append(fields, claim.FieldPropertyAddress)
	}
	if m.date_of_loss != nil {
		fields = append(fields, claim.FieldDateOfLoss)
	}
	if m.cause_of_loss != nil {
		fields = append(fields, claim.FieldCauseOfLoss)
	}
	if m.status != nil {
		fields = append(fields, claim.FieldStatus)
	}
	if m.analysis != nil {
		fields = append(fields, claim.FieldAnalysis)
	}
	if m.created_at != nil {
		fields = append(fields, claim.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, claim.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldClaimNumber:
		return m.ClaimNumber()
	case claim.FieldPolicyNumber:
		return m.PolicyNumber()
	case claim.FieldClaimantName:
		return m.ClaimantName()
	case claim.FieldPropertyAddress:
		return m.PropertyAddress()
	case claim.FieldDateOfLoss:
		return m.DateOfLoss()
	case claim.FieldCauseOfLoss:
		return m.CauseOfLoss()
	case claim.FieldStatus:
		return m.Status()
	case claim.FieldAnalysis:
		return m.Analysis()
	case claim.FieldCreatedAt:
		return m.CreatedAt()
	case claim.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claim.FieldClaimNumber:
		return m.OldClaimNumber(ctx)
	case claim.FieldPolicyNumber:
		return m.OldPolicyNumber(ctx)
	case claim.FieldClaimantName:
		return m.OldClaimantName(ctx)
	case claim.FieldPropertyAddress:
		return m.OldPropertyAddress(ctx)
	case claim.FieldDateOfLoss:
		return m.OldDateOfLoss(ctx)
	case claim.FieldCauseOfLoss:
		return m.OldCauseOfLoss(ctx)
	case claim.FieldStatus:
		return m.OldStatus(ctx)
	case claim.FieldAnalysis:
		return m.OldAnalysis(ctx)
	case claim.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case claim.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Claim field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claim.FieldClaimNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimNumber(v)
		return nil
	case claim.FieldPolicyNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyNumber(v)
		return nil
	case claim.FieldClaimantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimantName(v)
		return nil
	case claim.FieldPropertyAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyAddress(v)
		return nil
	case claim.FieldDateOfLoss:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfLoss(v)
		return nil
	case claim.FieldCauseOfLoss:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCauseOfLoss(v)
		return nil
	case claim.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case claim.FieldAnalysis:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysis(v)
		return nil
	case claim.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case claim.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Claim numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claim.FieldAnalysis) {
		fields = append(fields, claim.FieldAnalysis)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimMutation) ClearField(name string) error {
	switch name {
	case claim.FieldAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown Claim nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimMutation) ResetField(name string) error {
	switch name {
	case claim.FieldClaimNumber:
		m.ResetClaimNumber()
		return nil
	case claim.FieldPolicyNumber:
		m.ResetPolicyNumber()
		return nil
	case claim.FieldClaimantName:
		m.ResetClaimantName()
		return nil
	case claim.FieldPropertyAddress:
		m.ResetPropertyAddress()
		return nil
	case claim.FieldDateOfLoss:
		m.ResetDateOfLoss()
		return nil
	case claim.FieldCauseOfLoss:
		m.ResetCauseOfLoss()
		return nil
	case claim.FieldStatus:
		m.ResetStatus()
		return nil
	case claim.FieldAnalysis:
		m.ResetAnalysis()
		return nil
	case claim.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case claim.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.invoices != nil {
		edges = append(edges, claim.EdgeInvoices)
	}
	if m.evidence != nil {
		edges = append(edges, claim.EdgeEvidence)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case claim.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedinvoices != nil {
		edges = append(edges, claim.EdgeInvoices)
	}
	if m.removedevidence != nil {
		edges = append(edges, claim.EdgeEvidence)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case claim.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinvoices {
		edges = append(edges, claim.EdgeInvoices)
	}
	if m.clearedevidence {
		edges = append(edges, claim.EdgeEvidence)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimMutation) EdgeCleared(name string) bool {
	switch name {
	case claim.EdgeInvoices:
		return m.clearedinvoices
	case claim.EdgeEvidence:
		return m.clearedevidence
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Claim unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimMutation) ResetEdge(name string) error {
	switch name {
	case claim.EdgeInvoices:
		m.ResetInvoices()
		return nil
	case claim.EdgeEvidence:
		m.ResetEvidence()
		return nil
	}
	return fmt.Errorf("unknown Claim edge %s", name)
}

// ClaimEvidenceMutation represents an operation that mutates the ClaimEvidence nodes in the graph.
type ClaimEvidenceMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	file_name     *string
	file_type     *string
	file_path     *string
	file_size     *int
	addfile_size  *int
	evidence_type *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	claim         *uuid.UUID
	clearedclaim  bool
	done          bool
	oldValue      func(context.Context) (*ClaimEvidence, error)
	predicates    []predicate.ClaimEvidence
}

var _ ent.Mutation = (*ClaimEvidenceMutation)(nil)

// claimevidenceOption allows management of the mutation configuration using functional options.
type claimevidenceOption func(*ClaimEvidenceMutation)

// newClaimEvidenceMutation creates new mutation for the ClaimEvidence entity.
func newClaimEvidenceMutation(c config, op Op, opts ...claimevidenceOption) *ClaimEvidenceMutation {
	m := &ClaimEvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeClaimEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimEvidenceID sets the ID field of the mutation.
func withClaimEvidenceID(id uuid.UUID) claimevidenceOption {
	return func(m *ClaimEvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *ClaimEvidence
		)
		m.oldValue = func(ctx context.Context) (*ClaimEvidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClaimEvidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaimEvidence sets the old ClaimEvidence of the mutation.
func withClaimEvidence(node *ClaimEvidence) claimevidenceOption {
	return func(m *ClaimEvidenceMutation) {
		m.oldValue = func(context.Context) (*ClaimEvidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimEvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimEvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClaimEvidence entities.
func (m *ClaimEvidenceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimEvidenceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimEvidenceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClaimEvidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaimID sets the "claim_id" field.
func (m *ClaimEvidenceMutation) SetClaimID(u uuid.UUID) {
	m.claim = &u
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *ClaimEvidenceMutation) ClaimID() (r uuid.UUID, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the ClaimEvidence entity.
// If the ClaimEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEvidenceMutation) OldClaimID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *ClaimEvidenceMutation) ResetClaimID() {
	m.claim = nil
}

// SetFileName sets the "file_name" field.
func (m *ClaimEvidenceMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ClaimEvidenceMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ClaimEvidence entity.
// If the ClaimEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEvidenceMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ClaimEvidenceMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileType sets the "file_type" field.
func (m *ClaimEvidenceMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *ClaimEvidenceMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the ClaimEvidence entity.
// If the ClaimEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEvidenceMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *ClaimEvidenceMutation) ResetFileType() {
	m.file_type = nil
}

// SetFilePath sets the "file_path" field.
func (m *ClaimEvidenceMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ClaimEvidenceMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the ClaimEvidence entity.
// If the ClaimEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEvidenceMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ClaimEvidenceMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileSize sets the "file_size" field.
func (m *ClaimEvidenceMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ClaimEvidenceMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ClaimEvidence entity.
// If the ClaimEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEvidenceMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ClaimEvidenceMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ClaimEvidenceMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ClaimEvidenceMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetEvidenceType sets the "evidence_type" field.
func (m *ClaimEvidenceMutation) SetEvidenceType(s string) {
	m.evidence_type = &s
}

// EvidenceType returns the value of the "evidence_type" field in the mutation.
func (m *ClaimEvidenceMutation) EvidenceType() (r string, exists bool) {
	v := m.evidence_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceType returns the old "evidence_type" field's value of the ClaimEvidence entity.
// If the ClaimEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEvidenceMutation) OldEvidenceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceType: %w", err)
	}
	return oldValue.EvidenceType, nil
}

// ResetEvidenceType resets all changes to the "evidence_type" field.
func (m *ClaimEvidenceMutation) ResetEvidenceType() {
	m.evidence_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimEvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimEvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClaimEvidence entity.
// If the ClaimEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimEvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimEvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (m *ClaimEvidenceMutation) ClearClaim() {
	m.clearedclaim = true
	m.clearedFields[claimevidence.FieldClaimID] = struct{}{}
}

// ClaimCleared reports if the "claim" edge to the Claim entity was cleared.
func (m *ClaimEvidenceMutation) ClaimCleared() bool {
	return m.clearedclaim
}

// ClaimIDs returns the "claim" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimID instead. It exists only for internal usage by the builders.
func (m *ClaimEvidenceMutation) ClaimIDs() (ids []uuid.UUID) {
	if id := m.claim; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaim resets all changes to the "claim" edge.
func (m *ClaimEvidenceMutation) ResetClaim() {
	m.claim = nil
	m.clearedclaim = false
}

// Where appends a list predicates to the ClaimEvidenceMutation builder.
func (m *ClaimEvidenceMutation) Where(ps ...predicate.ClaimEvidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimEvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimEvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClaimEvidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimEvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimEvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClaimEvidence).
func (m *ClaimEvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimEvidenceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.claim != nil {
		fields = append(fields, claimevidence.FieldClaimID)
	}
	if m.file_name != nil {
		fields = append(fields, claimevidence.FieldFileName)
	}
	if m.file_type != nil {
		fields = append(fields, claimevidence.FieldFileType)
	}
	if m.file_path != nil {
		fields = append(fields, claimevidence.FieldFilePath)
	}
	if m.file_size != nil {
		fields = append(fields, claimevidence.FieldFileSize)
	}
	if m.evidence_type != nil {
		fields = append(fields, claimevidence.FieldEvidenceType)
	}
	if m.created_at != nil {
		fields = append(fields, claimevidence.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimEvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claimevidence.FieldClaimID:
		return m.ClaimID()
	case claimevidence.FieldFileName:
		return m.FileName()
	case claimevidence.FieldFileType:
		return m.FileType()
	case claimevidence.FieldFilePath:
		return m.FilePath()
	case claimevidence.FieldFileSize:
		return m.FileSize()
	case claimevidence.FieldEvidenceType:
		return m.EvidenceType()
	case claimevidence.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimEvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claimevidence.FieldClaimID:
		return m.OldClaimID(ctx)
	case claimevidence.FieldFileName:
		return m.OldFileName(ctx)
	case claimevidence.FieldFileType:
		return m.OldFileType(ctx)
	case claimevidence.FieldFilePath:
		return m.OldFilePath(ctx)
	case claimevidence.FieldFileSize:
		return m.OldFileSize(ctx)
	case claimevidence.FieldEvidenceType:
		return m.OldEvidenceType(ctx)
	case claimevidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClaimEvidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimEvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claimevidence.FieldClaimID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case claimevidence.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case claimevidence.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case claimevidence.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case claimevidence.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case claimevidence.FieldEvidenceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceType(v)
		return nil
	case claimevidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimEvidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimEvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, claimevidence.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimEvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claimevidence.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimEvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claimevidence.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimEvidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimEvidenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimEvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimEvidenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClaimEvidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimEvidenceMutation) ResetField(name string) error {
	switch name {
	case claimevidence.FieldClaimID:
		m.ResetClaimID()
		return nil
	case claimevidence.FieldFileName:
		m.ResetFileName()
		return nil
	case claimevidence.FieldFileType:
		m.ResetFileType()
		return nil
	case claimevidence.FieldFilePath:
		m.ResetFilePath()
		return nil
	case claimevidence.FieldFileSize:
		m.ResetFileSize()
		return nil
	case claimevidence.FieldEvidenceType:
		m.ResetEvidenceType()
		return nil
	case claimevidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClaimEvidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimEvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.claim != nil {
		edges = append(edges, claimevidence.EdgeClaim)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimEvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case claimevidence.EdgeClaim:
		if id := m.claim; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimEvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimEvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimEvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclaim {
		edges = append(edges, claimevidence.EdgeClaim)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimEvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case claimevidence.EdgeClaim:
		return m.clearedclaim
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimEvidenceMutation) ClearEdge(name string) error {
	switch name {
	case claimevidence.EdgeClaim:
		m.ClearClaim()
		return nil
	}
	return fmt.Errorf("unknown ClaimEvidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimEvidenceMutation) ResetEdge(name string) error {
	switch name {
	case claimevidence.EdgeClaim:
		m.ResetClaim()
		return nil
	}
	return fmt.Errorf("unknown ClaimEvidence edge %s", name)
}

// ClaimInvoiceMutation represents an operation that mutates the ClaimInvoice nodes in the graph.
type ClaimInvoiceMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	file_name              *string
	file_type              *string
	file_size              *int
	addfile_size           *int
	vendor_name            *string
	vendor_address         *string
	vendor_phone           *string
	invoice_number         *string
	invoice_date           *time.Time
	due_date               *time.Time
	total_amount           *float64
	addtotal_amount        *float64
	currency               *string
	line_items             *json.RawMessage
	appendline_items       json.RawMessage
	ocr_raw_data           *json.RawMessage
	appendocr_raw_data     json.RawMessage
	ocr_confidence         *float32
	addocr_confidence      *float32
	processed_at           *time.Time
	validation_status      *string
	validation_flags       *[]entity.ValidationFlag
	appendvalidation_flags []entity.ValidationFlag
	covered_amount         *float64
	addcovered_amount      *float64
	non_covered_amount     *float64
	addnon_covered_amount  *float64
	depreciation           *float64
	adddepreciation        *float64
	deductible             *float64
	adddeductible          *float64
	recommended_payout     *float64
	addrecommended_payout  *float64
	adjudication_status    *string
	analysis               *json.RawMessage
	appendanalysis         json.RawMessage
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	claim                  *uuid.UUID
	clearedclaim           bool
	done                   bool
	oldValue               func(context.Context) (*ClaimInvoice, error)
	predicates             []predicate.ClaimInvoice
}

var _ ent.Mutation = (*ClaimInvoiceMutation)(nil)

// claiminvoiceOption allows management of the mutation configuration using functional options.
type claiminvoiceOption func(*ClaimInvoiceMutation)

// newClaimInvoiceMutation creates new mutation for the ClaimInvoice entity.
func newClaimInvoiceMutation(c config, op Op, opts ...claiminvoiceOption) *ClaimInvoiceMutation {
	m := &ClaimInvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeClaimInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimInvoiceID sets the ID field of the mutation.
func withClaimInvoiceID(id uuid.UUID) claiminvoiceOption {
	return func(m *ClaimInvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *ClaimInvoice
		)
		m.oldValue = func(ctx context.Context) (*ClaimInvoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClaimInvoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaimInvoice sets the old ClaimInvoice of the mutation.
func withClaimInvoice(node *ClaimInvoice) claiminvoiceOption {
	return func(m *ClaimInvoiceMutation) {
		m.oldValue = func(context.Context) (*ClaimInvoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimInvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimInvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClaimInvoice entities.
func (m *ClaimInvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimInvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimInvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClaimInvoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaimID sets the "claim_id" field.
func (m *ClaimInvoiceMutation) SetClaimID(u uuid.UUID) {
	m.claim = &u
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *ClaimInvoiceMutation) ClaimID() (r uuid.UUID, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldClaimID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *ClaimInvoiceMutation) ResetClaimID() {
	m.claim = nil
}

// SetFileName sets the "file_name" field.
func (m *ClaimInvoiceMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ClaimInvoiceMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ClaimInvoiceMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileType sets the "file_type" field.
func (m *ClaimInvoiceMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *ClaimInvoiceMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *ClaimInvoiceMutation) ResetFileType() {
	m.file_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *ClaimInvoiceMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ClaimInvoiceMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ClaimInvoiceMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ClaimInvoiceMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ClaimInvoiceMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetVendorName sets the "vendor_name" field.
func (m *ClaimInvoiceMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *ClaimInvoiceMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldVendorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ClearVendorName clears the value of the "vendor_name" field.
func (m *ClaimInvoiceMutation) ClearVendorName() {
	m.vendor_name = nil
	m.clearedFields[claiminvoice.FieldVendorName] = struct{}{}
}

// VendorNameCleared returns if the "vendor_name" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) VendorNameCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldVendorName]
	return ok
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *ClaimInvoiceMutation) ResetVendorName() {
	m.vendor_name = nil
	delete(m.clearedFields, claiminvoice.FieldVendorName)
}

// SetVendorAddress sets the "vendor_address" field.
func (m *ClaimInvoiceMutation) SetVendorAddress(s string) {
	m.vendor_address = &s
}

// VendorAddress returns the value of the "vendor_address" field in the mutation.
func (m *ClaimInvoiceMutation) VendorAddress() (r string, exists bool) {
	v := m.vendor_address
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorAddress returns the old "vendor_address" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldVendorAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorAddress: %w", err)
	}
	return oldValue.VendorAddress, nil
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (m *ClaimInvoiceMutation) ClearVendorAddress() {
	m.vendor_address = nil
	m.clearedFields[claiminvoice.FieldVendorAddress] = struct{}{}
}

// VendorAddressCleared returns if the "vendor_address" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) VendorAddressCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldVendorAddress]
	return ok
}

// ResetVendorAddress resets all changes to the "vendor_address" field.
func (m *ClaimInvoiceMutation) ResetVendorAddress() {
	m.vendor_address = nil
	delete(m.clearedFields, claiminvoice.FieldVendorAddress)
}

// SetVendorPhone sets the "vendor_phone" field.
func (m *ClaimInvoiceMutation) SetVendorPhone(s string) {
	m.vendor_phone = &s
}

// VendorPhone returns the value of the "vendor_phone" field in the mutation.
func (m *ClaimInvoiceMutation) VendorPhone() (r string, exists bool) {
	v := m.vendor_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorPhone returns the old "vendor_phone" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldVendorPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorPhone: %w", err)
	}
	return oldValue.VendorPhone, nil
}

// ClearVendorPhone clears the value of the "vendor_phone" field.
func (m *ClaimInvoiceMutation) ClearVendorPhone() {
	m.vendor_phone = nil
	m.clearedFields[claiminvoice.FieldVendorPhone] = struct{}{}
}

// VendorPhoneCleared returns if the "vendor_phone" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) VendorPhoneCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldVendorPhone]
	return ok
}

// ResetVendorPhone resets all changes to the "vendor_phone" field.
func (m *ClaimInvoiceMutation) ResetVendorPhone() {
	m.vendor_phone = nil
	delete(m.clearedFields, claiminvoice.FieldVendorPhone)
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *ClaimInvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *ClaimInvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *ClaimInvoiceMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[claiminvoice.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *ClaimInvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, claiminvoice.FieldInvoiceNumber)
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *ClaimInvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *ClaimInvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *ClaimInvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[claiminvoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *ClaimInvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, claiminvoice.FieldInvoiceDate)
}

// SetDueDate sets the "due_date" field.
func (m *ClaimInvoiceMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *ClaimInvoiceMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *ClaimInvoiceMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[claiminvoice.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *ClaimInvoiceMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, claiminvoice.FieldDueDate)
}

// SetTotalAmount sets the "total_amount" field.
func (m *ClaimInvoiceMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *ClaimInvoiceMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *ClaimInvoiceMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *ClaimInvoiceMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *ClaimInvoiceMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[claiminvoice.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *ClaimInvoiceMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, claiminvoice.FieldTotalAmount)
}

// SetCurrency sets the "currency" field.
func (m *ClaimInvoiceMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ClaimInvoiceMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ClaimInvoiceMutation) ResetCurrency() {
	m.currency = nil
}

// SetLineItems sets the "line_items" field.
func (m *ClaimInvoiceMutation) SetLineItems(jm json.RawMessage) {
	m.line_items = &jm
	m.appendline_items = nil
}

// LineItems returns the value of the "line_items" field in the mutation.
func (m *ClaimInvoiceMutation) LineItems() (r json.RawMessage, exists bool) {
	v := m.line_items
	if v == nil {
		return
	}
	return *v, true
}

// OldLineItems returns the old "line_items" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldLineItems(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineItems: %w", err)
	}
	return oldValue.LineItems, nil
}

// AppendLineItems adds jm to the "line_items" field.
func (m *ClaimInvoiceMutation) AppendLineItems(jm json.RawMessage) {
	m.appendline_items = append(m.appendline_items, jm...)
}

// AppendedLineItems returns the list of values that were appended to the "line_items" field in this mutation.
func (m *ClaimInvoiceMutation) AppendedLineItems() (json.RawMessage, bool) {
	if len(m.appendline_items) == 0 {
		return nil, false
	}
	return m.appendline_items, true
}

// ClearLineItems clears the value of the "line_items" field.
func (m *ClaimInvoiceMutation) ClearLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	m.clearedFields[claiminvoice.FieldLineItems] = struct{}{}
}

// LineItemsCleared returns if the "line_items" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) LineItemsCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldLineItems]
	return ok
}

// ResetLineItems resets all changes to the "line_items" field.
func (m *ClaimInvoiceMutation) ResetLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	delete(m.clearedFields, claiminvoice.FieldLineItems)
}

// SetOcrRawData sets the "ocr_raw_data" field.
func (m *ClaimInvoiceMutation) SetOcrRawData(jm json.RawMessage) {
	m.ocr_raw_data = &jm
	m.appendocr_raw_data = nil
}

// OcrRawData returns the value of the "ocr_raw_data" field in the mutation.
func (m *ClaimInvoiceMutation) OcrRawData() (r json.RawMessage, exists bool) {
	v := m.ocr_raw_data
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrRawData returns the old "ocr_raw_data" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldOcrRawData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrRawData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrRawData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrRawData: %w", err)
	}
	return oldValue.OcrRawData, nil
}

// AppendOcrRawData adds jm to the "ocr_raw_data" field.
func (m *ClaimInvoiceMutation) AppendOcrRawData(jm json.RawMessage) {
	m.appendocr_raw_data = append(m.appendocr_raw_data, jm...)
}

// AppendedOcrRawData returns the list of values that were appended to the "ocr_raw_data" field in this mutation.
func (m *ClaimInvoiceMutation) AppendedOcrRawData() (json.RawMessage, bool) {
	if len(m.appendocr_raw_data) == 0 {
		return nil, false
	}
	return m.appendocr_raw_data, true
}

// ClearOcrRawData clears the value of the "ocr_raw_data" field.
func (m *ClaimInvoiceMutation) ClearOcrRawData() {
	m.ocr_raw_data = nil
	m.appendocr_raw_data = nil
	m.clearedFields[claiminvoice.FieldOcrRawData] = struct{}{}
}

// OcrRawDataCleared returns if the "ocr_raw_data" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) OcrRawDataCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldOcrRawData]
	return ok
}

// ResetOcrRawData resets all changes to the "ocr_raw_data" field.
func (m *ClaimInvoiceMutation) ResetOcrRawData() {
	m.ocr_raw_data = nil
	m.appendocr_raw_data = nil
	delete(m.clearedFields, claiminvoice.FieldOcrRawData)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *ClaimInvoiceMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *ClaimInvoiceMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *ClaimInvoiceMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *ClaimInvoiceMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *ClaimInvoiceMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[claiminvoice.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *ClaimInvoiceMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, claiminvoice.FieldOcrConfidence)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ClaimInvoiceMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ClaimInvoiceMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ClaimInvoiceMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[claiminvoice.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ClaimInvoiceMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, claiminvoice.FieldProcessedAt)
}

// SetValidationStatus sets the "validation_status" field.
func (m *ClaimInvoiceMutation) SetValidationStatus(s string) {
	m.validation_status = &s
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *ClaimInvoiceMutation) ValidationStatus() (r string, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldValidationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *ClaimInvoiceMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetValidationFlags sets the "validation_flags" field.
func (m *ClaimInvoiceMutation) SetValidationFlags(ef []entity.ValidationFlag) {
	m.validation_flags = &ef
	m.appendvalidation_flags = nil
}

// ValidationFlags returns the value of the "validation_flags" field in the mutation.
func (m *ClaimInvoiceMutation) ValidationFlags() (r []entity.ValidationFlag, exists bool) {
	v := m.validation_flags
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationFlags returns the old "validation_flags" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldValidationFlags(ctx context.Context) (v []entity.ValidationFlag, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationFlags: %w", err)
	}
	return oldValue.ValidationFlags, nil
}

// AppendValidationFlags adds ef to the "validation_flags" field.
func (m *ClaimInvoiceMutation) AppendValidationFlags(ef []entity.ValidationFlag) {
	m.appendvalidation_flags = append(m.appendvalidation_flags, ef...)
}

// AppendedValidationFlags returns the list of values that were appended to the "validation_flags" field in this mutation.
func (m *ClaimInvoiceMutation) AppendedValidationFlags() ([]entity.ValidationFlag, bool) {
	if len(m.appendvalidation_flags) == 0 {
		return nil, false
	}
	return m.appendvalidation_flags, true
}

// ClearValidationFlags clears the value of the "validation_flags" field.
func (m *ClaimInvoiceMutation) ClearValidationFlags() {
	m.validation_flags = nil
	m.appendvalidation_flags = nil
	m.clearedFields[claiminvoice.FieldValidationFlags] = struct{}{}
}

// ValidationFlagsCleared returns if the "validation_flags" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) ValidationFlagsCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldValidationFlags]
	return ok
}

// ResetValidationFlags resets all changes to the "validation_flags" field.
func (m *ClaimInvoiceMutation) ResetValidationFlags() {
	m.validation_flags = nil
	m.appendvalidation_flags = nil
	delete(m.clearedFields, claiminvoice.FieldValidationFlags)
}

// SetCoveredAmount sets the "covered_amount" field.
func (m *ClaimInvoiceMutation) SetCoveredAmount(f float64) {
	m.covered_amount = &f
	m.addcovered_amount = nil
}

// CoveredAmount returns the value of the "covered_amount" field in the mutation.
func (m *ClaimInvoiceMutation) CoveredAmount() (r float64, exists bool) {
	v := m.covered_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCoveredAmount returns the old "covered_amount" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldCoveredAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoveredAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoveredAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoveredAmount: %w", err)
	}
	return oldValue.CoveredAmount, nil
}

// AddCoveredAmount adds f to the "covered_amount" field.
func (m *ClaimInvoiceMutation) AddCoveredAmount(f float64) {
	if m.addcovered_amount != nil {
		*m.addcovered_amount += f
	} else {
		m.addcovered_amount = &f
	}
}

// AddedCoveredAmount returns the value that was added to the "covered_amount" field in this mutation.
func (m *ClaimInvoiceMutation) AddedCoveredAmount() (r float64, exists bool) {
	v := m.addcovered_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearCoveredAmount clears the value of the "covered_amount" field.
func (m *ClaimInvoiceMutation) ClearCoveredAmount() {
	m.covered_amount = nil
	m.addcovered_amount = nil
	m.clearedFields[claiminvoice.FieldCoveredAmount] = struct{}{}
}

// CoveredAmountCleared returns if the "covered_amount" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) CoveredAmountCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldCoveredAmount]
	return ok
}

// ResetCoveredAmount resets all changes to the "covered_amount" field.
func (m *ClaimInvoiceMutation) ResetCoveredAmount() {
	m.covered_amount = nil
	m.addcovered_amount = nil
	delete(m.clearedFields, claiminvoice.FieldCoveredAmount)
}

// SetNonCoveredAmount sets the "non_covered_amount" field.
func (m *ClaimInvoiceMutation) SetNonCoveredAmount(f float64) {
	m.non_covered_amount = &f
	m.addnon_covered_amount = nil
}

// NonCoveredAmount returns the value of the "non_covered_amount" field in the mutation.
func (m *ClaimInvoiceMutation) NonCoveredAmount() (r float64, exists bool) {
	v := m.non_covered_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldNonCoveredAmount returns the old "non_covered_amount" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldNonCoveredAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNonCoveredAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNonCoveredAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNonCoveredAmount: %w", err)
	}
	return oldValue.NonCoveredAmount, nil
}

// AddNonCoveredAmount adds f to the "non_covered_amount" field.
func (m *ClaimInvoiceMutation) AddNonCoveredAmount(f float64) {
	if m.addnon_covered_amount != nil {
		*m.addnon_covered_amount += f
	} else {
		m.addnon_covered_amount = &f
	}
}

// AddedNonCoveredAmount returns the value that was added to the "non_covered_amount" field in this mutation.
func (m *ClaimInvoiceMutation) AddedNonCoveredAmount() (r float64, exists bool) {
	v := m.addnon_covered_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearNonCoveredAmount clears the value of the "non_covered_amount" field.
func (m *ClaimInvoiceMutation) ClearNonCoveredAmount() {
	m.non_covered_amount = nil
	m.addnon_covered_amount = nil
	m.clearedFields[claiminvoice.FieldNonCoveredAmount] = struct{}{}
}

// NonCoveredAmountCleared returns if the "non_covered_amount" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) NonCoveredAmountCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldNonCoveredAmount]
	return ok
}

// ResetNonCoveredAmount resets all changes to the "non_covered_amount" field.
func (m *ClaimInvoiceMutation) ResetNonCoveredAmount() {
	m.non_covered_amount = nil
	m.addnon_covered_amount = nil
	delete(m.clearedFields, claiminvoice.FieldNonCoveredAmount)
}

// SetDepreciation sets the "depreciation" field.
func (m *ClaimInvoiceMutation) SetDepreciation(f float64) {
	m.depreciation = &f
	m.adddepreciation = nil
}

// Depreciation returns the value of the "depreciation" field in the mutation.
func (m *ClaimInvoiceMutation) Depreciation() (r float64, exists bool) {
	v := m.depreciation
	if v == nil {
		return
	}
	return *v, true
}

// OldDepreciation returns the old "depreciation" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldDepreciation(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepreciation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepreciation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepreciation: %w", err)
	}
	return oldValue.Depreciation, nil
}

// AddDepreciation adds f to the "depreciation" field.
func (m *ClaimInvoiceMutation) AddDepreciation(f float64) {
	if m.adddepreciation != nil {
		*m.adddepreciation += f
	} else {
		m.adddepreciation = &f
	}
}

// AddedDepreciation returns the value that was added to the "depreciation" field in this mutation.
func (m *ClaimInvoiceMutation) AddedDepreciation() (r float64, exists bool) {
	v := m.adddepreciation
	if v == nil {
		return
	}
	return *v, true
}

// ClearDepreciation clears the value of the "depreciation" field.
func (m *ClaimInvoiceMutation) ClearDepreciation() {
	m.depreciation = nil
	m.adddepreciation = nil
	m.clearedFields[claiminvoice.FieldDepreciation] = struct{}{}
}

// DepreciationCleared returns if the "depreciation" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) DepreciationCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldDepreciation]
	return ok
}

// ResetDepreciation resets all changes to the "depreciation" field.
func (m *ClaimInvoiceMutation) ResetDepreciation() {
	m.depreciation = nil
	m.adddepreciation = nil
	delete(m.clearedFields, claiminvoice.FieldDepreciation)
}

// SetDeductible sets the "deductible" field.
func (m *ClaimInvoiceMutation) SetDeductible(f float64) {
	m.deductible = &f
	m.adddeductible = nil
}

// Deductible returns the value of the "deductible" field in the mutation.
func (m *ClaimInvoiceMutation) Deductible() (r float64, exists bool) {
	v := m.deductible
	if v == nil {
		return
	}
	return *v, true
}

// OldDeductible returns the old "deductible" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldDeductible(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeductible is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeductible requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeductible: %w", err)
	}
	return oldValue.Deductible, nil
}

// AddDeductible adds f to the "deductible" field.
func (m *ClaimInvoiceMutation) AddDeductible(f float64) {
	if m.adddeductible != nil {
		*m.adddeductible += f
	} else {
		m.adddeductible = &f
	}
}

// AddedDeductible returns the value that was added to the "deductible" field in this mutation.
func (m *ClaimInvoiceMutation) AddedDeductible() (r float64, exists bool) {
	v := m.adddeductible
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeductible clears the value of the "deductible" field.
func (m *ClaimInvoiceMutation) ClearDeductible() {
	m.deductible = nil
	m.adddeductible = nil
	m.clearedFields[claiminvoice.FieldDeductible] = struct{}{}
}

// DeductibleCleared returns if the "deductible" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) DeductibleCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldDeductible]
	return ok
}

// ResetDeductible resets all changes to the "deductible" field.
func (m *ClaimInvoiceMutation) ResetDeductible() {
	m.deductible = nil
	m.adddeductible = nil
	delete(m.clearedFields, claiminvoice.FieldDeductible)
}

// SetRecommendedPayout sets the "recommended_payout" field.
func (m *ClaimInvoiceMutation) SetRecommendedPayout(f float64) {
	m.recommended_payout = &f
	m.addrecommended_payout = nil
}

// RecommendedPayout returns the value of the "recommended_payout" field in the mutation.
func (m *ClaimInvoiceMutation) RecommendedPayout() (r float64, exists bool) {
	v := m.recommended_payout
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedPayout returns the old "recommended_payout" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldRecommendedPayout(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedPayout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedPayout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedPayout: %w", err)
	}
	return oldValue.RecommendedPayout, nil
}

// AddRecommendedPayout adds f to the "recommended_payout" field.
func (m *ClaimInvoiceMutation) AddRecommendedPayout(f float64) {
	if m.addrecommended_payout != nil {
		*m.addrecommended_payout += f
	} else {
		m.addrecommended_payout = &f
	}
}

// AddedRecommendedPayout returns the value that was added to the "recommended_payout" field in this mutation.
func (m *ClaimInvoiceMutation) AddedRecommendedPayout() (r float64, exists bool) {
	v := m.addrecommended_payout
	if v == nil {
		return
	}
	return *v, true
}

// ClearRecommendedPayout clears the value of the "recommended_payout" field.
func (m *ClaimInvoiceMutation) ClearRecommendedPayout() {
	m.recommended_payout = nil
	m.addrecommended_payout = nil
	m.clearedFields[claiminvoice.FieldRecommendedPayout] = struct{}{}
}

// RecommendedPayoutCleared returns if the "recommended_payout" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) RecommendedPayoutCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldRecommendedPayout]
	return ok
}

// ResetRecommendedPayout resets all changes to the "recommended_payout" field.
func (m *ClaimInvoiceMutation) ResetRecommendedPayout() {
	m.recommended_payout = nil
	m.addrecommended_payout = nil
	delete(m.clearedFields, claiminvoice.FieldRecommendedPayout)
}

// SetAdjudicationStatus sets the "adjudication_status" field.
func (m *ClaimInvoiceMutation) SetAdjudicationStatus(s string) {
	m.adjudication_status = &s
}

// AdjudicationStatus returns the value of the "adjudication_status" field in the mutation.
func (m *ClaimInvoiceMutation) AdjudicationStatus() (r string, exists bool) {
	v := m.adjudication_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAdjudicationStatus returns the old "adjudication_status" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldAdjudicationStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdjudicationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdjudicationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdjudicationStatus: %w", err)
	}
	return oldValue.AdjudicationStatus, nil
}

// ClearAdjudicationStatus clears the value of the "adjudication_status" field.
func (m *ClaimInvoiceMutation) ClearAdjudicationStatus() {
	m.adjudication_status = nil
	m.clearedFields[claiminvoice.FieldAdjudicationStatus] = struct{}{}
}

// AdjudicationStatusCleared returns if the "adjudication_status" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) AdjudicationStatusCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldAdjudicationStatus]
	return ok
}

// ResetAdjudicationStatus resets all changes to the "adjudication_status" field.
func (m *ClaimInvoiceMutation) ResetAdjudicationStatus() {
	m.adjudication_status = nil
	delete(m.clearedFields, claiminvoice.FieldAdjudicationStatus)
}

// SetAnalysis sets the "analysis" field.
func (m *ClaimInvoiceMutation) SetAnalysis(jm json.RawMessage) {
	m.analysis = &jm
	m.appendanalysis = nil
}

// Analysis returns the value of the "analysis" field in the mutation.
func (m *ClaimInvoiceMutation) Analysis() (r json.RawMessage, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysis returns the old "analysis" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldAnalysis(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysis: %w", err)
	}
	return oldValue.Analysis, nil
}

// AppendAnalysis adds jm to the "analysis" field.
func (m *ClaimInvoiceMutation) AppendAnalysis(jm json.RawMessage) {
	m.appendanalysis = append(m.appendanalysis, jm...)
}

// AppendedAnalysis returns the list of values that were appended to the "analysis" field in this mutation.
func (m *ClaimInvoiceMutation) AppendedAnalysis() (json.RawMessage, bool) {
	if len(m.appendanalysis) == 0 {
		return nil, false
	}
	return m.appendanalysis, true
}

// ClearAnalysis clears the value of the "analysis" field.
func (m *ClaimInvoiceMutation) ClearAnalysis() {
	m.analysis = nil
	m.appendanalysis = nil
	m.clearedFields[claiminvoice.FieldAnalysis] = struct{}{}
}

// AnalysisCleared returns if the "analysis" field was cleared in this mutation.
func (m *ClaimInvoiceMutation) AnalysisCleared() bool {
	_, ok := m.clearedFields[claiminvoice.FieldAnalysis]
	return ok
}

// ResetAnalysis resets all changes to the "analysis" field.
func (m *ClaimInvoiceMutation) ResetAnalysis() {
	m.analysis = nil
	m.appendanalysis = nil
	delete(m.clearedFields, claiminvoice.FieldAnalysis)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimInvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimInvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimInvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimInvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimInvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClaimInvoice entity.
// If the ClaimInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimInvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimInvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (m *ClaimInvoiceMutation) ClearClaim() {
	m.clearedclaim = true
	m.clearedFields[claiminvoice.FieldClaimID] = struct{}{}
}

// ClaimCleared reports if the "claim" edge to the Claim entity was cleared.
func (m *ClaimInvoiceMutation) ClaimCleared() bool {
	return m.clearedclaim
}

// ClaimIDs returns the "claim" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimID instead. It exists only for internal usage by the builders.
func (m *ClaimInvoiceMutation) ClaimIDs() (ids []uuid.UUID) {
	if id := m.claim; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaim resets all changes to the "claim" edge.
func (m *ClaimInvoiceMutation) ResetClaim() {
	m.claim = nil
	m.clearedclaim = false
}

// Where appends a list predicates to the ClaimInvoiceMutation builder.
func (m *ClaimInvoiceMutation) Where(ps ...predicate.ClaimInvoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimInvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimInvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClaimInvoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimInvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimInvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClaimInvoice).
func (m *ClaimInvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimInvoiceMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.claim != nil {
		fields = append(fields, claiminvoice.FieldClaimID)
	}
	if m.file_name != nil {
		fields = append(fields, claiminvoice.FieldFileName)
	}
	if m.file_type != nil {
		fields = append(fields, claiminvoice.FieldFileType)
	}
	if m.file_size != nil {
		fields = append(fields, claiminvoice.FieldFileSize)
	}
	if m.vendor_name != nil {
		fields = append(fields, claiminvoice.FieldVendorName)
	}
	if m.vendor_address != nil {
		fields = append(fields, claiminvoice.FieldVendorAddress)
	}
	if m.vendor_phone != nil {
		fields = append(fields, claiminvoice.FieldVendorPhone)
	}
	if m.invoice_number != nil {
		fields = append(fields, claiminvoice.FieldInvoiceNumber)
	}
	if m.invoice_date != nil {
		fields = append(fields, claiminvoice.FieldInvoiceDate)
	}
	if m.due_date != nil {
		fields = append(fields, claiminvoice.FieldDueDate)
	}
	if m.total_amount != nil {
		fields = append(fields, claiminvoice.FieldTotalAmount)
	}
	if m.currency != nil {
		fields = append(fields, claiminvoice.FieldCurrency)
	}
	if m.line_items != nil {
		fields = append(fields, claiminvoice.FieldLineItems)
	}
	if m.ocr_raw_data != nil {
		fields = append(fields, claiminvoice.FieldOcrRawData)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, claiminvoice.FieldOcrConfidence)
	}
	if m.processed_at != nil {
		fields = append(fields, claiminvoice.FieldProcessedAt)
	}
	if m.validation_status != nil {
		fields = append(fields, claiminvoice.FieldValidationStatus)
	}
	if m.validation_flags != nil {
		fields = append(fields, claiminvoice.FieldValidationFlags)
	}
	if m.covered_amount != nil {
		fields = append(fields, claiminvoice.FieldCoveredAmount)
	}
	if m.non_covered_amount != nil {
		fields = append(fields, claiminvoice.FieldNonCoveredAmount)
	}
	if m.depreciation != nil {
		fields = append(fields, claiminvoice.FieldDepreciation)
	}
	if m.deductible != nil {
		fields = append(fields, claiminvoice.FieldDeductible)
	}
	if m.recommended_payout != nil {
		fields = append(fields, claiminvoice.FieldRecommendedPayout)
	}
	if m.adjudication_status != nil {
		fields = append(fields, claiminvoice.FieldAdjudicationStatus)
	}
	if m.analysis != nil {
		fields = append(fields, claiminvoice.FieldAnalysis)
	}
	if m.created_at != nil {
		fields = append(fields, claiminvoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, claiminvoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimInvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claiminvoice.FieldClaimID:
		return m.ClaimID()
	case claiminvoice.FieldFileName:
		return m.FileName()
	case claiminvoice.FieldFileType:
		return m.FileType()
	case claiminvoice.FieldFileSize:
		return m.FileSize()
	case claiminvoice.FieldVendorName:
		return m.VendorName()
	case claiminvoice.FieldVendorAddress:
		return m.VendorAddress()
	case claiminvoice.FieldVendorPhone:
		return m.VendorPhone()
	case claiminvoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case claiminvoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case claiminvoice.FieldDueDate:
		return m.DueDate()
	case claiminvoice.FieldTotalAmount:
		return m.TotalAmount()
	case claiminvoice.FieldCurrency:
		return m.Currency()
	case claiminvoice.FieldLineItems:
		return m.LineItems()
	case claiminvoice.FieldOcrRawData:
		return m.OcrRawData()
	case claiminvoice.FieldOcrConfidence:
		return m.OcrConfidence()
	case claiminvoice.FieldProcessedAt:
		return m.ProcessedAt()
	case claiminvoice.FieldValidationStatus:
		return m.ValidationStatus()
	case claiminvoice.FieldValidationFlags:
		return m.ValidationFlags()
	case claiminvoice.FieldCoveredAmount:
		return m.CoveredAmount()
	case claiminvoice.FieldNonCoveredAmount:
		return m.NonCoveredAmount()
	case claiminvoice.FieldDepreciation:
		return m.Depreciation()
	case claiminvoice.FieldDeductible:
		return m.Deductible()
	case claiminvoice.FieldRecommendedPayout:
		return m.RecommendedPayout()
	case claiminvoice.FieldAdjudicationStatus:
		return m.AdjudicationStatus()
	case claiminvoice.FieldAnalysis:
		return m.Analysis()
	case claiminvoice.FieldCreatedAt:
		return m.CreatedAt()
	case claiminvoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimInvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claiminvoice.FieldClaimID:
		return m.OldClaimID(ctx)
	case claiminvoice.FieldFileName:
		return m.OldFileName(ctx)
	case claiminvoice.FieldFileType:
		return m.OldFileType(ctx)
	case claiminvoice.FieldFileSize:
		return m.OldFileSize(ctx)
	case claiminvoice.FieldVendorName:
		return m.OldVendorName(ctx)
	case claiminvoice.FieldVendorAddress:
		return m.OldVendorAddress(ctx)
	case claiminvoice.FieldVendorPhone:
		return m.OldVendorPhone(ctx)
	case claiminvoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case claiminvoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case claiminvoice.FieldDueDate:
		return m.OldDueDate(ctx)
	case claiminvoice.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case claiminvoice.FieldCurrency:
		return m.OldCurrency(ctx)
	case claiminvoice.FieldLineItems:
		return m.OldLineItems(ctx)
	case claiminvoice.FieldOcrRawData:
		return m.OldOcrRawData(ctx)
	case claiminvoice.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case claiminvoice.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case claiminvoice.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case claiminvoice.FieldValidationFlags:
		return m.OldValidationFlags(ctx)
	case claiminvoice.FieldCoveredAmount:
		return m.OldCoveredAmount(ctx)
	case claiminvoice.FieldNonCoveredAmount:
		return m.OldNonCoveredAmount(ctx)
	case claiminvoice.FieldDepreciation:
		return m.OldDepreciation(ctx)
	case claiminvoice.FieldDeductible:
		return m.OldDeductible(ctx)
	case claiminvoice.FieldRecommendedPayout:
		return m.OldRecommendedPayout(ctx)
	case claiminvoice.FieldAdjudicationStatus:
		return m.OldAdjudicationStatus(ctx)
	case claiminvoice.FieldAnalysis:
		return m.OldAnalysis(ctx)
	case claiminvoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case claiminvoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClaimInvoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimInvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claiminvoice.FieldClaimID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case claiminvoice.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case claiminvoice.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case claiminvoice.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case claiminvoice.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case claiminvoice.FieldVendorAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorAddress(v)
		return nil
	case claiminvoice.FieldVendorPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorPhone(v)
		return nil
	case claiminvoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case claiminvoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case claiminvoice.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case claiminvoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case claiminvoice.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case claiminvoice.FieldLineItems:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineItems(v)
		return nil
	case claiminvoice.FieldOcrRawData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrRawData(v)
		return nil
	case claiminvoice.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case claiminvoice.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case claiminvoice.FieldValidationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case claiminvoice.FieldValidationFlags:
		v, ok := value.([]entity.ValidationFlag)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationFlags(v)
		return nil
	case claiminvoice.FieldCoveredAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoveredAmount(v)
		return nil
	case claiminvoice.FieldNonCoveredAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNonCoveredAmount(v)
		return nil
	case claiminvoice.FieldDepreciation:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepreciation(v)
		return nil
	case claiminvoice.FieldDeductible:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeductible(v)
		return nil
	case claiminvoice.FieldRecommendedPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedPayout(v)
		return nil
	case claiminvoice.FieldAdjudicationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdjudicationStatus(v)
		return nil
	case claiminvoice.FieldAnalysis:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysis(v)
		return nil
	case claiminvoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case claiminvoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimInvoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimInvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, claiminvoice.FieldFileSize)
	}
	if m.addtotal_amount != nil {
		fields = append(fields, claiminvoice.FieldTotalAmount)
	}
	if m.addocr_confidence != nil {
		fields = append(fields, claiminvoice.FieldOcrConfidence)
	}
	if m.addcovered_amount != nil {
		fields = append(fields, claiminvoice.FieldCoveredAmount)
	}
	if m.addnon_covered_amount != nil {
		fields = append(fields, claiminvoice.FieldNonCoveredAmount)
	}
	if m.adddepreciation != nil {
		fields = append(fields, claiminvoice.FieldDepreciation)
	}
	if m.adddeductible != nil {
		fields = append(fields, claiminvoice.FieldDeductible)
	}
	if m.addrecommended_payout != nil {
		fields = append(fields, claiminvoice.FieldRecommendedPayout)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimInvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claiminvoice.FieldFileSize:
		return m.AddedFileSize()
	case claiminvoice.FieldTotalAmount:
		return m.AddedTotalAmount()
	case claiminvoice.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	case claiminvoice.FieldCoveredAmount:
		return m.AddedCoveredAmount()
	case claiminvoice.FieldNonCoveredAmount:
		return m.AddedNonCoveredAmount()
	case claiminvoice.FieldDepreciation:
		return m.AddedDepreciation()
	case claiminvoice.FieldDeductible:
		return m.AddedDeductible()
	case claiminvoice.FieldRecommendedPayout:
		return m.AddedRecommendedPayout()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimInvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claiminvoice.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case claiminvoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case claiminvoice.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	case claiminvoice.FieldCoveredAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoveredAmount(v)
		return nil
	case claiminvoice.FieldNonCoveredAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNonCoveredAmount(v)
		return nil
	case claiminvoice.FieldDepreciation:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepreciation(v)
		return nil
	case claiminvoice.FieldDeductible:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeductible(v)
		return nil
	case claiminvoice.FieldRecommendedPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendedPayout(v)
		return nil
	}
	return fmt.Errorf("unknown ClaimInvoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimInvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claiminvoice.FieldVendorName) {
		fields = append(fields, claiminvoice.FieldVendorName)
	}
	if m.FieldCleared(claiminvoice.FieldVendorAddress) {
		fields = append(fields, claiminvoice.FieldVendorAddress)
	}
	if m.FieldCleared(claiminvoice.FieldVendorPhone) {
		fields = append(fields, claiminvoice.FieldVendorPhone)
	}
	if m.FieldCleared(claiminvoice.FieldInvoiceNumber) {
		fields = append(fields, claiminvoice.FieldInvoiceNumber)
	}
	if m.FieldCleared(claiminvoice.FieldInvoiceDate) {
		fields = append(fields, claiminvoice.FieldInvoiceDate)
	}
	if m.FieldCleared(claiminvoice.FieldDueDate) {
		fields = append(fields, claiminvoice.FieldDueDate)
	}
	if m.FieldCleared(claiminvoice.FieldTotalAmount) {
		fields = append(fields, claiminvoice.FieldTotalAmount)
	}
	if m.FieldCleared(claiminvoice.FieldLineItems) {
		fields = append(fields, claiminvoice.FieldLineItems)
	}
	if m.FieldCleared(claiminvoice.FieldOcrRawData) {
		fields = append(fields, claiminvoice.FieldOcrRawData)
	}
	if m.FieldCleared(claiminvoice.FieldOcrConfidence) {
		fields = append(fields, claiminvoice.FieldOcrConfidence)
	}
	if m.FieldCleared(claiminvoice.FieldProcessedAt) {
		fields = append(fields, claiminvoice.FieldProcessedAt)
	}
	if m.FieldCleared(claiminvoice.FieldValidationFlags) {
		fields = append(fields, claiminvoice.FieldValidationFlags)
	}
	if m.FieldCleared(claiminvoice.FieldCoveredAmount) {
		fields = append(fields, claiminvoice.FieldCoveredAmount)
	}
	if m.FieldCleared(claiminvoice.FieldNonCoveredAmount) {
		fields = append(fields, claiminvoice.FieldNonCoveredAmount)
	}
	if m.FieldCleared(claiminvoice.FieldDepreciation) {
		fields = append(fields, claiminvoice.FieldDepreciation)
	}
	if m.FieldCleared(claiminvoice.FieldDeductible) {
		fields = append(fields, claiminvoice.FieldDeductible)
	}
	if m.FieldCleared(claiminvoice.FieldRecommendedPayout) {
		fields = append(fields, claiminvoice.FieldRecommendedPayout)
	}
	if m.FieldCleared(claiminvoice.FieldAdjudicationStatus) {
		fields = append(fields, claiminvoice.FieldAdjudicationStatus)
	}
	if m.FieldCleared(claiminvoice.FieldAnalysis) {
		fields = append(fields, claiminvoice.FieldAnalysis)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimInvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimInvoiceMutation) ClearField(name string) error {
	switch name {
	case claiminvoice.FieldVendorName:
		m.ClearVendorName()
		return nil
	case claiminvoice.FieldVendorAddress:
		m.ClearVendorAddress()
		return nil
	case claiminvoice.FieldVendorPhone:
		m.ClearVendorPhone()
		return nil
	case claiminvoice.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case claiminvoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case claiminvoice.FieldDueDate:
		m.ClearDueDate()
		return nil
	case claiminvoice.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case claiminvoice.FieldLineItems:
		m.ClearLineItems()
		return nil
	case claiminvoice.FieldOcrRawData:
		m.ClearOcrRawData()
		return nil
	case claiminvoice.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case claiminvoice.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case claiminvoice.FieldValidationFlags:
		m.ClearValidationFlags()
		return nil
	case claiminvoice.FieldCoveredAmount:
		m.ClearCoveredAmount()
		return nil
	case claiminvoice.FieldNonCoveredAmount:
		m.ClearNonCoveredAmount()
		return nil
	case claiminvoice.FieldDepreciation:
		m.ClearDepreciation()
		return nil
	case claiminvoice.FieldDeductible:
		m.ClearDeductible()
		return nil
	case claiminvoice.FieldRecommendedPayout:
		m.ClearRecommendedPayout()
		return nil
	case claiminvoice.FieldAdjudicationStatus:
		m.ClearAdjudicationStatus()
		return nil
	case claiminvoice.FieldAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown ClaimInvoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimInvoiceMutation) ResetField(name string) error {
	switch name {
	case claiminvoice.FieldClaimID:
		m.ResetClaimID()
		return nil
	case claiminvoice.FieldFileName:
		m.ResetFileName()
		return nil
	case claiminvoice.FieldFileType:
		m.ResetFileType()
		return nil
	case claiminvoice.FieldFileSize:
		m.ResetFileSize()
		return nil
	case claiminvoice.FieldVendorName:
		m.ResetVendorName()
		return nil
	case claiminvoice.FieldVendorAddress:
		m.ResetVendorAddress()
		return nil
	case claiminvoice.FieldVendorPhone:
		m.ResetVendorPhone()
		return nil
	case claiminvoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case claiminvoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case claiminvoice.FieldDueDate:
		m.ResetDueDate()
		return nil
	case claiminvoice.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case claiminvoice.FieldCurrency:
		m.ResetCurrency()
		return nil
	case claiminvoice.FieldLineItems:
		m.ResetLineItems()
		return nil
	case claiminvoice.FieldOcrRawData:
		m.ResetOcrRawData()
		return nil
	case claiminvoice.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case claiminvoice.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case claiminvoice.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case claiminvoice.FieldValidationFlags:
		m.ResetValidationFlags()
		return nil
	case claiminvoice.FieldCoveredAmount:
		m.ResetCoveredAmount()
		return nil
	case claiminvoice.FieldNonCoveredAmount:
		m.ResetNonCoveredAmount()
		return nil
	case claiminvoice.FieldDepreciation:
		m.ResetDepreciation()
		return nil
	case claiminvoice.FieldDeductible:
		m.ResetDeductible()
		return nil
	case claiminvoice.FieldRecommendedPayout:
		m.ResetRecommendedPayout()
		return nil
	case claiminvoice.FieldAdjudicationStatus:
		m.ResetAdjudicationStatus()
		return nil
	case claiminvoice.FieldAnalysis:
		m.ResetAnalysis()
		return nil
	case claiminvoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case claiminvoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClaimInvoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimInvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.claim != nil {
		edges = append(edges, claiminvoice.EdgeClaim)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimInvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case claiminvoice.EdgeClaim:
		if id := m.claim; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimInvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimInvoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimInvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclaim {
		edges = append(edges, claiminvoice.EdgeClaim)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimInvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case claiminvoice.EdgeClaim:
		return m.clearedclaim
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimInvoiceMutation) ClearEdge(name string) error {
	switch name {
	case claiminvoice.EdgeClaim:
		m.ClearClaim()
		return nil
	}
	return fmt.Errorf("unknown ClaimInvoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimInvoiceMutation) ResetEdge(name string) error {
	switch name {
	case claiminvoice.EdgeClaim:
		m.ResetClaim()
		return nil
	}
	return fmt.Errorf("unknown ClaimInvoice edge %s", name)
}
