// Code generated by ent, DO NOT EDIT.

package claiminvoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the claiminvoice type in the database.
	Label = "claim_invoice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClaimID holds the string denoting the claim_id field in the database.
	FieldClaimID = "claim_id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFileType holds the string denoting the file_type field in the database.
	FieldFileType = "file_type"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldVendorName holds the string denoting the vendor_name field in the database.
	FieldVendorName = "vendor_name"
	// FieldVendorAddress holds the string denoting the vendor_address field in the database.
	FieldVendorAddress = "vendor_address"
	// FieldVendorPhone holds the string denoting the vendor_phone field in the database.
	FieldVendorPhone = "vendor_phone"
	// FieldInvoiceNumber holds the string denoting the invoice_number field in the database.
	FieldInvoiceNumber = "invoice_number"
	// FieldInvoiceDate holds the string denoting the invoice_date field in the database.
	FieldInvoiceDate = "invoice_date"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldLineItems holds the string denoting the line_items field in the database.
	FieldLineItems = "line_items"
	// FieldOcrRawData holds the string denoting the ocr_raw_data field in the database.
	FieldOcrRawData = "ocr_raw_data"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldValidationFlags holds the string denoting the validation_flags field in the database.
	FieldValidationFlags = "validation_flags"
	// FieldCoveredAmount holds the string denoting the covered_amount field in the database.
	FieldCoveredAmount = "covered_amount"
	// FieldNonCoveredAmount holds the string denoting the non_covered_amount field in the database.
	FieldNonCoveredAmount = "non_covered_amount"
	// FieldDepreciation holds the string denoting the depreciation field in the database.
	FieldDepreciation = "depreciation"
	// FieldDeductible holds the string denoting the deductible field in the database.
	FieldDeductible = "deductible"
	// FieldRecommendedPayout holds the string denoting the recommended_payout field in the database.
	FieldRecommendedPayout = "recommended_payout"
	// FieldAdjudicationStatus holds the string denoting the adjudication_status field in the database.
	FieldAdjudicationStatus = "adjudication_status"
	// FieldAnalysis holds the string denoting the analysis field in the database.
	FieldAnalysis = "analysis"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeClaim holds the string denoting the claim edge name in mutations.
	EdgeClaim = "claim"
	// Table holds the table name of the claiminvoice in the database.
	Table = "claim_invoices"
	// ClaimTable is the table that holds the claim relation/edge.
	ClaimTable = "claim_invoices"
	// ClaimInverseTable is the table name for the Claim entity.
	// It exists in this package in order to avoid circular dependency with the "claim" package.
	ClaimInverseTable = "claims"
	// ClaimColumn is the table column denoting the claim relation/edge.
	ClaimColumn = "claim_id"
)

// Columns holds all SQL columns for claiminvoice fields.
var Columns = []string{
	FieldID,
	FieldClaimID,
	FieldFileName,
	FieldFileType,
	FieldFileSize,
	FieldVendorName,
	FieldVendorAddress,
	FieldVendorPhone,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldDueDate,
	FieldTotalAmount,
	FieldCurrency,
	FieldLineItems,
	FieldOcrRawData,
	FieldOcrConfidence,
	FieldProcessedAt,
	FieldValidationStatus,
	FieldValidationFlags,
	FieldCoveredAmount,
	FieldNonCoveredAmount,
	FieldDepreciation,
	FieldDeductible,
	FieldRecommendedPayout,
	FieldAdjudicationStatus,
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
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	FileTypeValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultValidationStatus holds the default value on creation for the "validation_status" field.
	DefaultValidationStatus string
	// ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	ValidationStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ClaimInvoice queries.
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

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByVendorName orders the results by the vendor_name field.
func ByVendorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorName, opts...).ToFunc()
}

// ByVendorAddress orders the results by the vendor_address field.
func ByVendorAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorAddress, opts...).ToFunc()
}

// ByVendorPhone orders the results by the vendor_phone field.
func ByVendorPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorPhone, opts...).ToFunc()
}

// ByInvoiceNumber orders the results by the invoice_number field.
func ByInvoiceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNumber, opts...).ToFunc()
}

// ByInvoiceDate orders the results by the invoice_date field.
func ByInvoiceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceDate, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// ByCoveredAmount orders the results by the covered_amount field.
func ByCoveredAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoveredAmount, opts...).ToFunc()
}

// ByNonCoveredAmount orders the results by the non_covered_amount field.
func ByNonCoveredAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNonCoveredAmount, opts...).ToFunc()
}

// ByDepreciation orders the results by the depreciation field.
func ByDepreciation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepreciation, opts...).ToFunc()
}

// ByDeductible orders the results by the deductible field.
func ByDeductible(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeductible, opts...).ToFunc()
}

// ByRecommendedPayout orders the results by the recommended_payout field.
func ByRecommendedPayout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedPayout, opts...).ToFunc()
}

// ByAdjudicationStatus orders the results by the adjudication_status field.
func ByAdjudicationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdjudicationStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
