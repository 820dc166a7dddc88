// Code generated by ent, DO NOT EDIT.

package claimevidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the claimevidence type in the database.
	Label = "claim_evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClaimID holds the string denoting the claim_id field in the database.
	FieldClaimID = "claim_id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFileType holds the string denoting the file_type field in the database.
	FieldFileType = "file_type"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldEvidenceType holds the string denoting the evidence_type field in the database.
	FieldEvidenceType = "evidence_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeClaim holds the string denoting the claim edge name in mutations.
	EdgeClaim = "claim"
	// Table holds the table name of the claimevidence in the database.
	Table = "claim_evidence"
	// ClaimTable is the table that holds the claim relation/edge.
	ClaimTable = "claim_evidence"
	// ClaimInverseTable is the table name for the Claim entity.
	// It exists in this package in order to avoid circular dependency with the "claim" package.
	ClaimInverseTable = "claims"
	// ClaimColumn is the table column denoting the claim relation/edge.
	ClaimColumn = "claim_id"
)

// Columns holds all SQL columns for claimevidence fields.
var Columns = []string{
	FieldID,
	FieldClaimID,
	FieldFileName,
	FieldFileType,
	FieldFilePath,
	FieldFileSize,
	FieldEvidenceType,
	FieldCreatedAt,
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
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	FileTypeValidator func(string) error
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// DefaultEvidenceType holds the default value on creation for the "evidence_type" field.
	DefaultEvidenceType string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ClaimEvidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClaimID orders the results by the claim_id field.
func ByClaimID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimID, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFileType orders the results by the file_type field.
func ByFileType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileType, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByEvidenceType orders the results by the evidence_type field.
func ByEvidenceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClaimField orders the results by claim field.
func ByClaimField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimStep(), sql.OrderByField(field, opts...))
	}
}
func newClaimStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClaimTable, ClaimColumn),
	)
}
