// Code generated by ent, DO NOT EDIT.

package claiminvoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldID, id))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldClaimID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldFileName, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldFileType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldFileSize, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldVendorName, v))
}

// VendorAddress applies equality check predicate on the "vendor_address" field. It's identical to VendorAddressEQ.
func VendorAddress(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldVendorAddress, v))
}

// VendorPhone applies equality check predicate on the "vendor_phone" field. It's identical to VendorPhoneEQ.
func VendorPhone(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldVendorPhone, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldDueDate, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldTotalAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldCurrency, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldOcrConfidence, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldProcessedAt, v))
}

// ValidationStatus applies equality check predicate on the "validation_status" field. It's identical to ValidationStatusEQ.
func ValidationStatus(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldValidationStatus, v))
}

// CoveredAmount applies equality check predicate on the "covered_amount" field. It's identical to CoveredAmountEQ.
func CoveredAmount(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldCoveredAmount, v))
}

// NonCoveredAmount applies equality check predicate on the "non_covered_amount" field. It's identical to NonCoveredAmountEQ.
func NonCoveredAmount(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldNonCoveredAmount, v))
}

// Depreciation applies equality check predicate on the "depreciation" field. It's identical to DepreciationEQ.
func Depreciation(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldDepreciation, v))
}

// Deductible applies equality check predicate on the "deductible" field. It's identical to DeductibleEQ.
func Deductible(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldDeductible, v))
}

// RecommendedPayout applies equality check predicate on the "recommended_payout" field. It's identical to RecommendedPayoutEQ.
func RecommendedPayout(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldRecommendedPayout, v))
}

// AdjudicationStatus applies equality check predicate on the "adjudication_status" field. It's identical to AdjudicationStatusEQ.
func AdjudicationStatus(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldAdjudicationStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...uuid.UUID) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldClaimID, vs...))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldFileName, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldFileType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldFileSize, v))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameIsNil applies the IsNil predicate on the "vendor_name" field.
func VendorNameIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldVendorName))
}

// VendorNameNotNil applies the NotNil predicate on the "vendor_name" field.
func VendorNameNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldVendorName))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldVendorName, v))
}

// VendorAddressEQ applies the EQ predicate on the "vendor_address" field.
func VendorAddressEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldVendorAddress, v))
}

// VendorAddressNEQ applies the NEQ predicate on the "vendor_address" field.
func VendorAddressNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldVendorAddress, v))
}

// VendorAddressIn applies the In predicate on the "vendor_address" field.
func VendorAddressIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldVendorAddress, vs...))
}

// VendorAddressNotIn applies the NotIn predicate on the "vendor_address" field.
func VendorAddressNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldVendorAddress, vs...))
}

// VendorAddressGT applies the GT predicate on the "vendor_address" field.
func VendorAddressGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldVendorAddress, v))
}

// VendorAddressGTE applies the GTE predicate on the "vendor_address" field.
func VendorAddressGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldVendorAddress, v))
}

// VendorAddressLT applies the LT predicate on the "vendor_address" field.
func VendorAddressLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldVendorAddress, v))
}

// VendorAddressLTE applies the LTE predicate on the "vendor_address" field.
func VendorAddressLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldVendorAddress, v))
}

// VendorAddressContains applies the Contains predicate on the "vendor_address" field.
func VendorAddressContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldVendorAddress, v))
}

// VendorAddressHasPrefix applies the HasPrefix predicate on the "vendor_address" field.
func VendorAddressHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldVendorAddress, v))
}

// VendorAddressHasSuffix applies the HasSuffix predicate on the "vendor_address" field.
func VendorAddressHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldVendorAddress, v))
}

// VendorAddressIsNil applies the IsNil predicate on the "vendor_address" field.
func VendorAddressIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldVendorAddress))
}

// VendorAddressNotNil applies the NotNil predicate on the "vendor_address" field.
func VendorAddressNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldVendorAddress))
}

// VendorAddressEqualFold applies the EqualFold predicate on the "vendor_address" field.
func VendorAddressEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldVendorAddress, v))
}

// VendorAddressContainsFold applies the ContainsFold predicate on the "vendor_address" field.
func VendorAddressContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldVendorAddress, v))
}

// VendorPhoneEQ applies the EQ predicate on the "vendor_phone" field.
func VendorPhoneEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldVendorPhone, v))
}

// VendorPhoneNEQ applies the NEQ predicate on the "vendor_phone" field.
func VendorPhoneNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldVendorPhone, v))
}

// VendorPhoneIn applies the In predicate on the "vendor_phone" field.
func VendorPhoneIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldVendorPhone, vs...))
}

// VendorPhoneNotIn applies the NotIn predicate on the "vendor_phone" field.
func VendorPhoneNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldVendorPhone, vs...))
}

// VendorPhoneGT applies the GT predicate on the "vendor_phone" field.
func VendorPhoneGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldVendorPhone, v))
}

// VendorPhoneGTE applies the GTE predicate on the "vendor_phone" field.
func VendorPhoneGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldVendorPhone, v))
}

// VendorPhoneLT applies the LT predicate on the "vendor_phone" field.
func VendorPhoneLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldVendorPhone, v))
}

// VendorPhoneLTE applies the LTE predicate on the "vendor_phone" field.
func VendorPhoneLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldVendorPhone, v))
}

// VendorPhoneContains applies the Contains predicate on the "vendor_phone" field.
func VendorPhoneContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldVendorPhone, v))
}

// VendorPhoneHasPrefix applies the HasPrefix predicate on the "vendor_phone" field.
func VendorPhoneHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldVendorPhone, v))
}

// VendorPhoneHasSuffix applies the HasSuffix predicate on the "vendor_phone" field.
func VendorPhoneHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldVendorPhone, v))
}

// VendorPhoneIsNil applies the IsNil predicate on the "vendor_phone" field.
func VendorPhoneIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldVendorPhone))
}

// VendorPhoneNotNil applies the NotNil predicate on the "vendor_phone" field.
func VendorPhoneNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldVendorPhone))
}

// VendorPhoneEqualFold applies the EqualFold predicate on the "vendor_phone" field.
func VendorPhoneEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldVendorPhone, v))
}

// VendorPhoneContainsFold applies the ContainsFold predicate on the "vendor_phone" field.
func VendorPhoneContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldVendorPhone, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldInvoiceDate))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldDueDate))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldTotalAmount))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldCurrency, v))
}

// LineItemsIsNil applies the IsNil predicate on the "line_items" field.
func LineItemsIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldLineItems))
}

// LineItemsNotNil applies the NotNil predicate on the "line_items" field.
func LineItemsNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldLineItems))
}

// OcrRawDataIsNil applies the IsNil predicate on the "ocr_raw_data" field.
func OcrRawDataIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldOcrRawData))
}

// OcrRawDataNotNil applies the NotNil predicate on the "ocr_raw_data" field.
func OcrRawDataNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldOcrRawData))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float32) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldOcrConfidence, v))
}

// OcrConfidenceIsNil applies the IsNil predicate on the "ocr_confidence" field.
func OcrConfidenceIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldOcrConfidence))
}

// OcrConfidenceNotNil applies the NotNil predicate on the "ocr_confidence" field.
func OcrConfidenceNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldOcrConfidence))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldProcessedAt))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// ValidationStatusGT applies the GT predicate on the "validation_status" field.
func ValidationStatusGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldValidationStatus, v))
}

// ValidationStatusGTE applies the GTE predicate on the "validation_status" field.
func ValidationStatusGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldValidationStatus, v))
}

// ValidationStatusLT applies the LT predicate on the "validation_status" field.
func ValidationStatusLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldValidationStatus, v))
}

// ValidationStatusLTE applies the LTE predicate on the "validation_status" field.
func ValidationStatusLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldValidationStatus, v))
}

// ValidationStatusContains applies the Contains predicate on the "validation_status" field.
func ValidationStatusContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldValidationStatus, v))
}

// ValidationStatusHasPrefix applies the HasPrefix predicate on the "validation_status" field.
func ValidationStatusHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldValidationStatus, v))
}

// ValidationStatusHasSuffix applies the HasSuffix predicate on the "validation_status" field.
func ValidationStatusHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldValidationStatus, v))
}

// ValidationStatusEqualFold applies the EqualFold predicate on the "validation_status" field.
func ValidationStatusEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldValidationStatus, v))
}

// ValidationStatusContainsFold applies the ContainsFold predicate on the "validation_status" field.
func ValidationStatusContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldValidationStatus, v))
}

// ValidationFlagsIsNil applies the IsNil predicate on the "validation_flags" field.
func ValidationFlagsIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldValidationFlags))
}

// ValidationFlagsNotNil applies the NotNil predicate on the "validation_flags" field.
func ValidationFlagsNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldValidationFlags))
}

// CoveredAmountEQ applies the EQ predicate on the "covered_amount" field.
func CoveredAmountEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldCoveredAmount, v))
}

// CoveredAmountNEQ applies the NEQ predicate on the "covered_amount" field.
func CoveredAmountNEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldCoveredAmount, v))
}

// CoveredAmountIn applies the In predicate on the "covered_amount" field.
func CoveredAmountIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldCoveredAmount, vs...))
}

// CoveredAmountNotIn applies the NotIn predicate on the "covered_amount" field.
func CoveredAmountNotIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldCoveredAmount, vs...))
}

// CoveredAmountGT applies the GT predicate on the "covered_amount" field.
func CoveredAmountGT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldCoveredAmount, v))
}

// CoveredAmountGTE applies the GTE predicate on the "covered_amount" field.
func CoveredAmountGTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldCoveredAmount, v))
}

// CoveredAmountLT applies the LT predicate on the "covered_amount" field.
func CoveredAmountLT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldCoveredAmount, v))
}

// CoveredAmountLTE applies the LTE predicate on the "covered_amount" field.
func CoveredAmountLTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldCoveredAmount, v))
}

// CoveredAmountIsNil applies the IsNil predicate on the "covered_amount" field.
func CoveredAmountIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldCoveredAmount))
}

// CoveredAmountNotNil applies the NotNil predicate on the "covered_amount" field.
func CoveredAmountNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldCoveredAmount))
}

// NonCoveredAmountEQ applies the EQ predicate on the "non_covered_amount" field.
func NonCoveredAmountEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldNonCoveredAmount, v))
}

// NonCoveredAmountNEQ applies the NEQ predicate on the "non_covered_amount" field.
func NonCoveredAmountNEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldNonCoveredAmount, v))
}

// NonCoveredAmountIn applies the In predicate on the "non_covered_amount" field.
func NonCoveredAmountIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldNonCoveredAmount, vs...))
}

// NonCoveredAmountNotIn applies the NotIn predicate on the "non_covered_amount" field.
func NonCoveredAmountNotIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldNonCoveredAmount, vs...))
}

// NonCoveredAmountGT applies the GT predicate on the "non_covered_amount" field.
func NonCoveredAmountGT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldNonCoveredAmount, v))
}

// NonCoveredAmountGTE applies the GTE predicate on the "non_covered_amount" field.
func NonCoveredAmountGTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldNonCoveredAmount, v))
}

// NonCoveredAmountLT applies the LT predicate on the "non_covered_amount" field.
func NonCoveredAmountLT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldNonCoveredAmount, v))
}

// NonCoveredAmountLTE applies the LTE predicate on the "non_covered_amount" field.
func NonCoveredAmountLTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldNonCoveredAmount, v))
}

// NonCoveredAmountIsNil applies the IsNil predicate on the "non_covered_amount" field.
func NonCoveredAmountIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldNonCoveredAmount))
}

// NonCoveredAmountNotNil applies the NotNil predicate on the "non_covered_amount" field.
func NonCoveredAmountNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldNonCoveredAmount))
}

// DepreciationEQ applies the EQ predicate on the "depreciation" field.
func DepreciationEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldDepreciation, v))
}

// DepreciationNEQ applies the NEQ predicate on the "depreciation" field.
func DepreciationNEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldDepreciation, v))
}

// DepreciationIn applies the In predicate on the "depreciation" field.
func DepreciationIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldDepreciation, vs...))
}

// DepreciationNotIn applies the NotIn predicate on the "depreciation" field.
func DepreciationNotIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldDepreciation, vs...))
}

// DepreciationGT applies the GT predicate on the "depreciation" field.
func DepreciationGT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldDepreciation, v))
}

// DepreciationGTE applies the GTE predicate on the "depreciation" field.
func DepreciationGTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldDepreciation, v))
}

// DepreciationLT applies the LT predicate on the "depreciation" field.
func DepreciationLT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldDepreciation, v))
}

// DepreciationLTE applies the LTE predicate on the "depreciation" field.
func DepreciationLTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldDepreciation, v))
}

// DepreciationIsNil applies the IsNil predicate on the "depreciation" field.
func DepreciationIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldDepreciation))
}

// DepreciationNotNil applies the NotNil predicate on the "depreciation" field.
func DepreciationNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldDepreciation))
}

// DeductibleEQ applies the EQ predicate on the "deductible" field.
func DeductibleEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldDeductible, v))
}

// DeductibleNEQ applies the NEQ predicate on the "deductible" field.
func DeductibleNEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldDeductible, v))
}

// DeductibleIn applies the In predicate on the "deductible" field.
func DeductibleIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldDeductible, vs...))
}

// DeductibleNotIn applies the NotIn predicate on the "deductible" field.
func DeductibleNotIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldDeductible, vs...))
}

// DeductibleGT applies the GT predicate on the "deductible" field.
func DeductibleGT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldDeductible, v))
}

// DeductibleGTE applies the GTE predicate on the "deductible" field.
func DeductibleGTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldDeductible, v))
}

// DeductibleLT applies the LT predicate on the "deductible" field.
func DeductibleLT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldDeductible, v))
}

// DeductibleLTE applies the LTE predicate on the "deductible" field.
func DeductibleLTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldDeductible, v))
}

// DeductibleIsNil applies the IsNil predicate on the "deductible" field.
func DeductibleIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldDeductible))
}

// DeductibleNotNil applies the NotNil predicate on the "deductible" field.
func DeductibleNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldDeductible))
}

// RecommendedPayoutEQ applies the EQ predicate on the "recommended_payout" field.
func RecommendedPayoutEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldRecommendedPayout, v))
}

// RecommendedPayoutNEQ applies the NEQ predicate on the "recommended_payout" field.
func RecommendedPayoutNEQ(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldRecommendedPayout, v))
}

// RecommendedPayoutIn applies the In predicate on the "recommended_payout" field.
func RecommendedPayoutIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldRecommendedPayout, vs...))
}

// RecommendedPayoutNotIn applies the NotIn predicate on the "recommended_payout" field.
func RecommendedPayoutNotIn(vs ...float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldRecommendedPayout, vs...))
}

// RecommendedPayoutGT applies the GT predicate on the "recommended_payout" field.
func RecommendedPayoutGT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldRecommendedPayout, v))
}

// RecommendedPayoutGTE applies the GTE predicate on the "recommended_payout" field.
func RecommendedPayoutGTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldRecommendedPayout, v))
}

// RecommendedPayoutLT applies the LT predicate on the "recommended_payout" field.
func RecommendedPayoutLT(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldRecommendedPayout, v))
}

// RecommendedPayoutLTE applies the LTE predicate on the "recommended_payout" field.
func RecommendedPayoutLTE(v float64) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldRecommendedPayout, v))
}

// RecommendedPayoutIsNil applies the IsNil predicate on the "recommended_payout" field.
func RecommendedPayoutIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldRecommendedPayout))
}

// RecommendedPayoutNotNil applies the NotNil predicate on the "recommended_payout" field.
func RecommendedPayoutNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldRecommendedPayout))
}

// AdjudicationStatusEQ applies the EQ predicate on the "adjudication_status" field.
func AdjudicationStatusEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldAdjudicationStatus, v))
}

// AdjudicationStatusNEQ applies the NEQ predicate on the "adjudication_status" field.
func AdjudicationStatusNEQ(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldAdjudicationStatus, v))
}

// AdjudicationStatusIn applies the In predicate on the "adjudication_status" field.
func AdjudicationStatusIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldAdjudicationStatus, vs...))
}

// AdjudicationStatusNotIn applies the NotIn predicate on the "adjudication_status" field.
func AdjudicationStatusNotIn(vs ...string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldAdjudicationStatus, vs...))
}

// AdjudicationStatusGT applies the GT predicate on the "adjudication_status" field.
func AdjudicationStatusGT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldAdjudicationStatus, v))
}

// AdjudicationStatusGTE applies the GTE predicate on the "adjudication_status" field.
func AdjudicationStatusGTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldAdjudicationStatus, v))
}

// AdjudicationStatusLT applies the LT predicate on the "adjudication_status" field.
func AdjudicationStatusLT(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldAdjudicationStatus, v))
}

// AdjudicationStatusLTE applies the LTE predicate on the "adjudication_status" field.
func AdjudicationStatusLTE(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldAdjudicationStatus, v))
}

// AdjudicationStatusContains applies the Contains predicate on the "adjudication_status" field.
func AdjudicationStatusContains(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContains(FieldAdjudicationStatus, v))
}

// AdjudicationStatusHasPrefix applies the HasPrefix predicate on the "adjudication_status" field.
func AdjudicationStatusHasPrefix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasPrefix(FieldAdjudicationStatus, v))
}

// AdjudicationStatusHasSuffix applies the HasSuffix predicate on the "adjudication_status" field.
func AdjudicationStatusHasSuffix(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldHasSuffix(FieldAdjudicationStatus, v))
}

// AdjudicationStatusIsNil applies the IsNil predicate on the "adjudication_status" field.
func AdjudicationStatusIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldAdjudicationStatus))
}

// AdjudicationStatusNotNil applies the NotNil predicate on the "adjudication_status" field.
func AdjudicationStatusNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldAdjudicationStatus))
}

// AdjudicationStatusEqualFold applies the EqualFold predicate on the "adjudication_status" field.
func AdjudicationStatusEqualFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEqualFold(FieldAdjudicationStatus, v))
}

// AdjudicationStatusContainsFold applies the ContainsFold predicate on the "adjudication_status" field.
func AdjudicationStatusContainsFold(v string) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldContainsFold(FieldAdjudicationStatus, v))
}

// AnalysisIsNil applies the IsNil predicate on the "analysis" field.
func AnalysisIsNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIsNull(FieldAnalysis))
}

// AnalysisNotNil applies the NotNil predicate on the "analysis" field.
func AnalysisNotNil() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotNull(FieldAnalysis))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasClaim applies the HasEdge predicate on the "claim" edge.
func HasClaim() predicate.ClaimInvoice {
	return predicate.ClaimInvoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClaimTable, ClaimColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimWith applies the HasEdge predicate on the "claim" edge with a given conditions (other predicates).
func HasClaimWith(preds ...predicate.Claim) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(func(s *sql.Selector) {
		step := newClaimStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClaimInvoice) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClaimInvoice) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClaimInvoice) predicate.ClaimInvoice {
	return predicate.ClaimInvoice(sql.NotPredicates(p))
}
