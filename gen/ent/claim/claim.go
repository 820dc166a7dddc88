// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the claim type in the database.
	Label = "claim"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClaimNumber holds the string denoting the claim_number field in the database.
	FieldClaimNumber = "claim_number"
	// FieldPolicyNumber holds the string denoting the policy_number field in the database.
	FieldPolicyNumber = "policy_number"
	// FieldClaimantName holds the string denoting the claimant_name field in the database.
	FieldClaimantName = "claimant_name"
	// FieldPropertyAddress holds the string denoting the property_address field in the database.
	FieldPropertyAddress = "property_address"
	// FieldDateOfLoss holds the string denoting the date_of_loss field in the database.
	FieldDateOfLoss = "date_of_loss"
	// FieldCauseOfLoss holds the string denoting the cause_of_loss field in the database.
	FieldCauseOfLoss = "cause_of_loss"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAnalysis holds the string denoting the analysis field in the database.
	FieldAnalysis = "analysis"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInvoices holds the string denoting the invoices edge name in mutations.
	EdgeInvoices = "invoices"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// Table holds the table name of the claim in the database.
	Table = "claims"
	// InvoicesTable is the table that holds the invoices relation/edge.
	InvoicesTable = "claim_invoices"
	// InvoicesInverseTable is the table name for the ClaimInvoice entity.
	// It exists in this package in order to avoid circular dependency with the "claiminvoice" package.
	InvoicesInverseTable = "claim_invoices"
	// InvoicesColumn is the table column denoting the invoices relation/edge.
	InvoicesColumn = "claim_id"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "claim_evidence"
	// EvidenceInverseTable is the table name for the ClaimEvidence entity.
	// It exists in this package in order to avoid circular dependency with the "claimevidence" package.
	EvidenceInverseTable = "claim_evidence"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "claim_id"
)

// Columns holds all SQL columns for claim fields.
var Columns = []string{
	FieldID,
	FieldClaimNumber,
	FieldPolicyNumber,
	FieldClaimantName,
	FieldPropertyAddress,
	FieldDateOfLoss,
	FieldCauseOfLoss,
	FieldStatus,
	FieldAnalysis,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ClaimNumberValidator is a validator for the "claim_number" field. It is called by the builders before save.
	ClaimNumberValidator func(string) error
	// PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	PolicyNumberValidator func(string) error
	// ClaimantNameValidator is a validator for the "claimant_name" field. It is called by the builders before save.
	ClaimantNameValidator func(string) error
	// PropertyAddressValidator is a validator for the "property_address" field. It is called by the builders before save.
	PropertyAddressValidator func(string) error
	// CauseOfLossValidator is a validator for the "cause_of_loss" field. It is called by the builders before save.
	CauseOfLossValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Claim queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClaimNumber orders the results by the claim_number field.
func ByClaimNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimNumber, opts...).ToFunc()
}

// ByPolicyNumber orders the results by the policy_number field.
func ByPolicyNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyNumber, opts...).ToFunc()
}

// ByClaimantName orders the results by the claimant_name field.
func ByClaimantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimantName, opts...).ToFunc()
}

// ByPropertyAddress orders the results by the property_address field.
func ByPropertyAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyAddress, opts...).ToFunc()
}

// ByDateOfLoss orders the results by the date_of_loss field.
func ByDateOfLoss(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfLoss, opts...).ToFunc()
}

// ByCauseOfLoss orders the results by the cause_of_loss field.
func ByCauseOfLoss(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCauseOfLoss, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInvoicesCount orders the results by invoices count.
func ByInvoicesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInvoicesStep(), opts...)
	}
}

// ByInvoices orders the results by invoices terms.
func ByInvoices(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvoicesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvidenceCount orders the results by evidence count.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvidenceStep(), opts...)
	}
}

// ByEvidence orders the results by evidence terms.
func ByEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInvoicesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvoicesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InvoicesTable, InvoicesColumn),
	)
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
	)
}
