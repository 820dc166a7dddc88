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
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

// ClaimInvoiceUpdate is the builder for updating ClaimInvoice entities.
type ClaimInvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimInvoiceMutation
}

// Where appends a list predicates to the ClaimInvoiceUpdate builder.
func (_u *ClaimInvoiceUpdate) Where(ps ...predicate.ClaimInvoice) *ClaimInvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *ClaimInvoiceUpdate) SetClaimID(v uuid.UUID) *ClaimInvoiceUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableClaimID(v *uuid.UUID) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ClaimInvoiceUpdate) SetFileName(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableFileName(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *ClaimInvoiceUpdate) SetFileType(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableFileType(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ClaimInvoiceUpdate) SetFileSize(v int) *ClaimInvoiceUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableFileSize(v *int) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ClaimInvoiceUpdate) AddFileSize(v int) *ClaimInvoiceUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ClaimInvoiceUpdate) SetVendorName(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableVendorName(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ClaimInvoiceUpdate) ClearVendorName() *ClaimInvoiceUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetVendorAddress sets the "vendor_address" field.
func (_u *ClaimInvoiceUpdate) SetVendorAddress(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetVendorAddress(v)
	return _u
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableVendorAddress(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetVendorAddress(*v)
	}
	return _u
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (_u *ClaimInvoiceUpdate) ClearVendorAddress() *ClaimInvoiceUpdate {
	_u.mutation.ClearVendorAddress()
	return _u
}

// SetVendorPhone sets the "vendor_phone" field.
func (_u *ClaimInvoiceUpdate) SetVendorPhone(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetVendorPhone(v)
	return _u
}

// SetNillableVendorPhone sets the "vendor_phone" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableVendorPhone(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetVendorPhone(*v)
	}
	return _u
}

// ClearVendorPhone clears the value of the "vendor_phone" field.
func (_u *ClaimInvoiceUpdate) ClearVendorPhone() *ClaimInvoiceUpdate {
	_u.mutation.ClearVendorPhone()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *ClaimInvoiceUpdate) SetInvoiceNumber(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableInvoiceNumber(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *ClaimInvoiceUpdate) ClearInvoiceNumber() *ClaimInvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *ClaimInvoiceUpdate) SetInvoiceDate(v time.Time) *ClaimInvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *ClaimInvoiceUpdate) ClearInvoiceDate() *ClaimInvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *ClaimInvoiceUpdate) SetDueDate(v time.Time) *ClaimInvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableDueDate(v *time.Time) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *ClaimInvoiceUpdate) ClearDueDate() *ClaimInvoiceUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ClaimInvoiceUpdate) SetTotalAmount(v float64) *ClaimInvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableTotalAmount(v *float64) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *ClaimInvoiceUpdate) AddTotalAmount(v float64) *ClaimInvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *ClaimInvoiceUpdate) ClearTotalAmount() *ClaimInvoiceUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ClaimInvoiceUpdate) SetCurrency(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableCurrency(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *ClaimInvoiceUpdate) SetLineItems(v json.RawMessage) *ClaimInvoiceUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *ClaimInvoiceUpdate) AppendLineItems(v json.RawMessage) *ClaimInvoiceUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *ClaimInvoiceUpdate) ClearLineItems() *ClaimInvoiceUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// SetOcrRawData sets the "ocr_raw_data" field.
func (_u *ClaimInvoiceUpdate) SetOcrRawData(v json.RawMessage) *ClaimInvoiceUpdate {
	_u.mutation.SetOcrRawData(v)
	return _u
}

// AppendOcrRawData appends value to the "ocr_raw_data" field.
func (_u *ClaimInvoiceUpdate) AppendOcrRawData(v json.RawMessage) *ClaimInvoiceUpdate {
	_u.mutation.AppendOcrRawData(v)
	return _u
}

// ClearOcrRawData clears the value of the "ocr_raw_data" field.
func (_u *ClaimInvoiceUpdate) ClearOcrRawData() *ClaimInvoiceUpdate {
	_u.mutation.ClearOcrRawData()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ClaimInvoiceUpdate) SetOcrConfidence(v float32) *ClaimInvoiceUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableOcrConfidence(v *float32) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ClaimInvoiceUpdate) AddOcrConfidence(v float32) *ClaimInvoiceUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *ClaimInvoiceUpdate) ClearOcrConfidence() *ClaimInvoiceUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ClaimInvoiceUpdate) SetProcessedAt(v time.Time) *ClaimInvoiceUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableProcessedAt(v *time.Time) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ClaimInvoiceUpdate) ClearProcessedAt() *ClaimInvoiceUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *ClaimInvoiceUpdate) SetValidationStatus(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableValidationStatus(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetValidationFlags sets the "validation_flags" field.
func (_u *ClaimInvoiceUpdate) SetValidationFlags(v []entity.ValidationFlag) *ClaimInvoiceUpdate {
	_u.mutation.SetValidationFlags(v)
	return _u
}

// AppendValidationFlags appends value to the "validation_flags" field.
func (_u *ClaimInvoiceUpdate) AppendValidationFlags(v []entity.ValidationFlag) *ClaimInvoiceUpdate {
	_u.mutation.AppendValidationFlags(v)
	return _u
}

// ClearValidationFlags clears the value of the "validation_flags" field.
func (_u *ClaimInvoiceUpdate) ClearValidationFlags() *ClaimInvoiceUpdate {
	_u.mutation.ClearValidationFlags()
	return _u
}

// SetCoveredAmount sets the "covered_amount" field.
func (_u *ClaimInvoiceUpdate) SetCoveredAmount(v float64) *ClaimInvoiceUpdate {
	_u.mutation.ResetCoveredAmount()
	_u.mutation.SetCoveredAmount(v)
	return _u
}

// SetNillableCoveredAmount sets the "covered_amount" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableCoveredAmount(v *float64) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetCoveredAmount(*v)
	}
	return _u
}

// AddCoveredAmount adds value to the "covered_amount" field.
func (_u *ClaimInvoiceUpdate) AddCoveredAmount(v float64) *ClaimInvoiceUpdate {
	_u.mutation.AddCoveredAmount(v)
	return _u
}

// ClearCoveredAmount clears the value of the "covered_amount" field.
func (_u *ClaimInvoiceUpdate) ClearCoveredAmount() *ClaimInvoiceUpdate {
	_u.mutation.ClearCoveredAmount()
	return _u
}

// SetNonCoveredAmount sets the "non_covered_amount" field.
func (_u *ClaimInvoiceUpdate) SetNonCoveredAmount(v float64) *ClaimInvoiceUpdate {
	_u.mutation.ResetNonCoveredAmount()
	_u.mutation.SetNonCoveredAmount(v)
	return _u
}

// SetNillableNonCoveredAmount sets the "non_covered_amount" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableNonCoveredAmount(v *float64) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetNonCoveredAmount(*v)
	}
	return _u
}

// AddNonCoveredAmount adds value to the "non_covered_amount" field.
func (_u *ClaimInvoiceUpdate) AddNonCoveredAmount(v float64) *ClaimInvoiceUpdate {
	_u.mutation.AddNonCoveredAmount(v)
	return _u
}

// ClearNonCoveredAmount clears the value of the "non_covered_amount" field.
func (_u *ClaimInvoiceUpdate) ClearNonCoveredAmount() *ClaimInvoiceUpdate {
	_u.mutation.ClearNonCoveredAmount()
	return _u
}

// SetDepreciation sets the "depreciation" field.
func (_u *ClaimInvoiceUpdate) SetDepreciation(v float64) *ClaimInvoiceUpdate {
	_u.mutation.ResetDepreciation()
	_u.mutation.SetDepreciation(v)
	return _u
}

// SetNillableDepreciation sets the "depreciation" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableDepreciation(v *float64) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetDepreciation(*v)
	}
	return _u
}

// AddDepreciation adds value to the "depreciation" field.
func (_u *ClaimInvoiceUpdate) AddDepreciation(v float64) *ClaimInvoiceUpdate {
	_u.mutation.AddDepreciation(v)
	return _u
}

// ClearDepreciation clears the value of the "depreciation" field.
func (_u *ClaimInvoiceUpdate) ClearDepreciation() *ClaimInvoiceUpdate {
	_u.mutation.ClearDepreciation()
	return _u
}

// SetDeductible sets the "deductible" field.
func (_u *ClaimInvoiceUpdate) SetDeductible(v float64) *ClaimInvoiceUpdate {
	_u.mutation.ResetDeductible()
	_u.mutation.SetDeductible(v)
	return _u
}

// SetNillableDeductible sets the "deductible" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableDeductible(v *float64) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetDeductible(*v)
	}
	return _u
}

// AddDeductible adds value to the "deductible" field.
func (_u *ClaimInvoiceUpdate) AddDeductible(v float64) *ClaimInvoiceUpdate {
	_u.mutation.AddDeductible(v)
	return _u
}

// ClearDeductible clears the value of the "deductible" field.
func (_u *ClaimInvoiceUpdate) ClearDeductible() *ClaimInvoiceUpdate {
	_u.mutation.ClearDeductible()
	return _u
}

// SetRecommendedPayout sets the "recommended_payout" field.
func (_u *ClaimInvoiceUpdate) SetRecommendedPayout(v float64) *ClaimInvoiceUpdate {
	_u.mutation.ResetRecommendedPayout()
	_u.mutation.SetRecommendedPayout(v)
	return _u
}

// SetNillableRecommendedPayout sets the "recommended_payout" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableRecommendedPayout(v *float64) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetRecommendedPayout(*v)
	}
	return _u
}

// AddRecommendedPayout adds value to the "recommended_payout" field.
func (_u *ClaimInvoiceUpdate) AddRecommendedPayout(v float64) *ClaimInvoiceUpdate {
	_u.mutation.AddRecommendedPayout(v)
	return _u
}

// ClearRecommendedPayout clears the value of the "recommended_payout" field.
func (_u *ClaimInvoiceUpdate) ClearRecommendedPayout() *ClaimInvoiceUpdate {
	_u.mutation.ClearRecommendedPayout()
	return _u
}

// SetAdjudicationStatus sets the "adjudication_status" field.
func (_u *ClaimInvoiceUpdate) SetAdjudicationStatus(v string) *ClaimInvoiceUpdate {
	_u.mutation.SetAdjudicationStatus(v)
	return _u
}

// SetNillableAdjudicationStatus sets the "adjudication_status" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableAdjudicationStatus(v *string) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetAdjudicationStatus(*v)
	}
	return _u
}

// ClearAdjudicationStatus clears the value of the "adjudication_status" field.
func (_u *ClaimInvoiceUpdate) ClearAdjudicationStatus() *ClaimInvoiceUpdate {
	_u.mutation.ClearAdjudicationStatus()
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *ClaimInvoiceUpdate) SetAnalysis(v json.RawMessage) *ClaimInvoiceUpdate {
	_u.mutation.SetAnalysis(v)
	return _u
}

// AppendAnalysis appends value to the "analysis" field.
func (_u *ClaimInvoiceUpdate) AppendAnalysis(v json.RawMessage) *ClaimInvoiceUpdate {
	_u.mutation.AppendAnalysis(v)
	return _u
}

// ClearAnalysis clears the value of the "analysis" field.
func (_u *ClaimInvoiceUpdate) ClearAnalysis() *ClaimInvoiceUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimInvoiceUpdate) SetCreatedAt(v time.Time) *ClaimInvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimInvoiceUpdate) SetNillableCreatedAt(v *time.Time) *ClaimInvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimInvoiceUpdate) SetUpdatedAt(v time.Time) *ClaimInvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *ClaimInvoiceUpdate) SetClaim(v *Claim) *ClaimInvoiceUpdate {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the ClaimInvoiceMutation object of the builder.
func (_u *ClaimInvoiceUpdate) Mutation() *ClaimInvoiceMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *ClaimInvoiceUpdate) ClearClaim() *ClaimInvoiceUpdate {
	_u.mutation.ClearClaim()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimInvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimInvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimInvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimInvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimInvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claiminvoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimInvoiceUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := claiminvoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := claiminvoice.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := claiminvoice.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := claiminvoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := claiminvoice.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.validation_status": %w`, err)}
		}
	}
	if _u.mutation.ClaimCleared() && len(_u.mutation.ClaimIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClaimInvoice.claim"`)
	}
	return nil
}

func (_u *ClaimInvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claiminvoice.Table, claiminvoice.Columns, sqlgraph.NewFieldSpec(claiminvoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(claiminvoice.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(claiminvoice.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(claiminvoice.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(claiminvoice.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(claiminvoice.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(claiminvoice.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.VendorAddress(); ok {
		_spec.SetField(claiminvoice.FieldVendorAddress, field.TypeString, value)
	}
	if _u.mutation.VendorAddressCleared() {
		_spec.ClearField(claiminvoice.FieldVendorAddress, field.TypeString)
	}
	if value, ok := _u.mutation.VendorPhone(); ok {
		_spec.SetField(claiminvoice.FieldVendorPhone, field.TypeString, value)
	}
	if _u.mutation.VendorPhoneCleared() {
		_spec.ClearField(claiminvoice.FieldVendorPhone, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(claiminvoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(claiminvoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(claiminvoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(claiminvoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(claiminvoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(claiminvoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(claiminvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(claiminvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(claiminvoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(claiminvoice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(claiminvoice.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claiminvoice.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(claiminvoice.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrRawData(); ok {
		_spec.SetField(claiminvoice.FieldOcrRawData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOcrRawData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claiminvoice.FieldOcrRawData, value)
		})
	}
	if _u.mutation.OcrRawDataCleared() {
		_spec.ClearField(claiminvoice.FieldOcrRawData, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(claiminvoice.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(claiminvoice.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(claiminvoice.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(claiminvoice.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(claiminvoice.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(claiminvoice.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationFlags(); ok {
		_spec.SetField(claiminvoice.FieldValidationFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claiminvoice.FieldValidationFlags, value)
		})
	}
	if _u.mutation.ValidationFlagsCleared() {
		_spec.ClearField(claiminvoice.FieldValidationFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.CoveredAmount(); ok {
		_spec.SetField(claiminvoice.FieldCoveredAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoveredAmount(); ok {
		_spec.AddField(claiminvoice.FieldCoveredAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CoveredAmountCleared() {
		_spec.ClearField(claiminvoice.FieldCoveredAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NonCoveredAmount(); ok {
		_spec.SetField(claiminvoice.FieldNonCoveredAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNonCoveredAmount(); ok {
		_spec.AddField(claiminvoice.FieldNonCoveredAmount, field.TypeFloat64, value)
	}
	if _u.mutation.NonCoveredAmountCleared() {
		_spec.ClearField(claiminvoice.FieldNonCoveredAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Depreciation(); ok {
		_spec.SetField(claiminvoice.FieldDepreciation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDepreciation(); ok {
		_spec.AddField(claiminvoice.FieldDepreciation, field.TypeFloat64, value)
	}
	if _u.mutation.DepreciationCleared() {
		_spec.ClearField(claiminvoice.FieldDepreciation, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Deductible(); ok {
		_spec.SetField(claiminvoice.FieldDeductible, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeductible(); ok {
		_spec.AddField(claiminvoice.FieldDeductible, field.TypeFloat64, value)
	}
	if _u.mutation.DeductibleCleared() {
		_spec.ClearField(claiminvoice.FieldDeductible, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecommendedPayout(); ok {
		_spec.SetField(claiminvoice.FieldRecommendedPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendedPayout(); ok {
		_spec.AddField(claiminvoice.FieldRecommendedPayout, field.TypeFloat64, value)
	}
	if _u.mutation.RecommendedPayoutCleared() {
		_spec.ClearField(claiminvoice.FieldRecommendedPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AdjudicationStatus(); ok {
		_spec.SetField(claiminvoice.FieldAdjudicationStatus, field.TypeString, value)
	}
	if _u.mutation.AdjudicationStatusCleared() {
		_spec.ClearField(claiminvoice.FieldAdjudicationStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(claiminvoice.FieldAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claiminvoice.FieldAnalysis, value)
		})
	}
	if _u.mutation.AnalysisCleared() {
		_spec.ClearField(claiminvoice.FieldAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claiminvoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claiminvoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claiminvoice.ClaimTable,
			Columns: []string{claiminvoice.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claiminvoice.ClaimTable,
			Columns: []string{claiminvoice.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claiminvoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimInvoiceUpdateOne is the builder for updating a single ClaimInvoice entity.
type ClaimInvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimInvoiceMutation
}

// SetClaimID sets the "claim_id" field.
func (_u *ClaimInvoiceUpdateOne) SetClaimID(v uuid.UUID) *ClaimInvoiceUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableClaimID(v *uuid.UUID) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ClaimInvoiceUpdateOne) SetFileName(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableFileName(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *ClaimInvoiceUpdateOne) SetFileType(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableFileType(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ClaimInvoiceUpdateOne) SetFileSize(v int) *ClaimInvoiceUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableFileSize(v *int) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ClaimInvoiceUpdateOne) AddFileSize(v int) *ClaimInvoiceUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ClaimInvoiceUpdateOne) SetVendorName(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableVendorName(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ClaimInvoiceUpdateOne) ClearVendorName() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetVendorAddress sets the "vendor_address" field.
func (_u *ClaimInvoiceUpdateOne) SetVendorAddress(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetVendorAddress(v)
	return _u
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableVendorAddress(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetVendorAddress(*v)
	}
	return _u
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (_u *ClaimInvoiceUpdateOne) ClearVendorAddress() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearVendorAddress()
	return _u
}

// SetVendorPhone sets the "vendor_phone" field.
func (_u *ClaimInvoiceUpdateOne) SetVendorPhone(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetVendorPhone(v)
	return _u
}

// SetNillableVendorPhone sets the "vendor_phone" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableVendorPhone(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetVendorPhone(*v)
	}
	return _u
}

// ClearVendorPhone clears the value of the "vendor_phone" field.
func (_u *ClaimInvoiceUpdateOne) ClearVendorPhone() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearVendorPhone()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *ClaimInvoiceUpdateOne) SetInvoiceNumber(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *ClaimInvoiceUpdateOne) ClearInvoiceNumber() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *ClaimInvoiceUpdateOne) SetInvoiceDate(v time.Time) *ClaimInvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *ClaimInvoiceUpdateOne) ClearInvoiceDate() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *ClaimInvoiceUpdateOne) SetDueDate(v time.Time) *ClaimInvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableDueDate(v *time.Time) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *ClaimInvoiceUpdateOne) ClearDueDate() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ClaimInvoiceUpdateOne) SetTotalAmount(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableTotalAmount(v *float64) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *ClaimInvoiceUpdateOne) AddTotalAmount(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *ClaimInvoiceUpdateOne) ClearTotalAmount() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ClaimInvoiceUpdateOne) SetCurrency(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableCurrency(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *ClaimInvoiceUpdateOne) SetLineItems(v json.RawMessage) *ClaimInvoiceUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *ClaimInvoiceUpdateOne) AppendLineItems(v json.RawMessage) *ClaimInvoiceUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *ClaimInvoiceUpdateOne) ClearLineItems() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// SetOcrRawData sets the "ocr_raw_data" field.
func (_u *ClaimInvoiceUpdateOne) SetOcrRawData(v json.RawMessage) *ClaimInvoiceUpdateOne {
	_u.mutation.SetOcrRawData(v)
	return _u
}

// AppendOcrRawData appends value to the "ocr_raw_data" field.
func (_u *ClaimInvoiceUpdateOne) AppendOcrRawData(v json.RawMessage) *ClaimInvoiceUpdateOne {
	_u.mutation.AppendOcrRawData(v)
	return _u
}

// ClearOcrRawData clears the value of the "ocr_raw_data" field.
func (_u *ClaimInvoiceUpdateOne) ClearOcrRawData() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearOcrRawData()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ClaimInvoiceUpdateOne) SetOcrConfidence(v float32) *ClaimInvoiceUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableOcrConfidence(v *float32) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ClaimInvoiceUpdateOne) AddOcrConfidence(v float32) *ClaimInvoiceUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *ClaimInvoiceUpdateOne) ClearOcrConfidence() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ClaimInvoiceUpdateOne) SetProcessedAt(v time.Time) *ClaimInvoiceUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableProcessedAt(v *time.Time) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ClaimInvoiceUpdateOne) ClearProcessedAt() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *ClaimInvoiceUpdateOne) SetValidationStatus(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableValidationStatus(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetValidationFlags sets the "validation_flags" field.
func (_u *ClaimInvoiceUpdateOne) SetValidationFlags(v []entity.ValidationFlag) *ClaimInvoiceUpdateOne {
	_u.mutation.SetValidationFlags(v)
	return _u
}

// AppendValidationFlags appends value to the "validation_flags" field.
func (_u *ClaimInvoiceUpdateOne) AppendValidationFlags(v []entity.ValidationFlag) *ClaimInvoiceUpdateOne {
	_u.mutation.AppendValidationFlags(v)
	return _u
}

// ClearValidationFlags clears the value of the "validation_flags" field.
func (_u *ClaimInvoiceUpdateOne) ClearValidationFlags() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearValidationFlags()
	return _u
}

// SetCoveredAmount sets the "covered_amount" field.
func (_u *ClaimInvoiceUpdateOne) SetCoveredAmount(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.ResetCoveredAmount()
	_u.mutation.SetCoveredAmount(v)
	return _u
}

// SetNillableCoveredAmount sets the "covered_amount" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableCoveredAmount(v *float64) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetCoveredAmount(*v)
	}
	return _u
}

// AddCoveredAmount adds value to the "covered_amount" field.
func (_u *ClaimInvoiceUpdateOne) AddCoveredAmount(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.AddCoveredAmount(v)
	return _u
}

// ClearCoveredAmount clears the value of the "covered_amount" field.
func (_u *ClaimInvoiceUpdateOne) ClearCoveredAmount() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearCoveredAmount()
	return _u
}

// SetNonCoveredAmount sets the "non_covered_amount" field.
func (_u *ClaimInvoiceUpdateOne) SetNonCoveredAmount(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.ResetNonCoveredAmount()
	_u.mutation.SetNonCoveredAmount(v)
	return _u
}

// SetNillableNonCoveredAmount sets the "non_covered_amount" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableNonCoveredAmount(v *float64) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetNonCoveredAmount(*v)
	}
	return _u
}

// AddNonCoveredAmount adds value to the "non_covered_amount" field.
func (_u *ClaimInvoiceUpdateOne) AddNonCoveredAmount(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.AddNonCoveredAmount(v)
	return _u
}

// ClearNonCoveredAmount clears the value of the "non_covered_amount" field.
func (_u *ClaimInvoiceUpdateOne) ClearNonCoveredAmount() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearNonCoveredAmount()
	return _u
}

// SetDepreciation sets the "depreciation" field.
func (_u *ClaimInvoiceUpdateOne) SetDepreciation(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.ResetDepreciation()
	_u.mutation.SetDepreciation(v)
	return _u
}

// SetNillableDepreciation sets the "depreciation" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableDepreciation(v *float64) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetDepreciation(*v)
	}
	return _u
}

// AddDepreciation adds value to the "depreciation" field.
func (_u *ClaimInvoiceUpdateOne) AddDepreciation(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.AddDepreciation(v)
	return _u
}

// ClearDepreciation clears the value of the "depreciation" field.
func (_u *ClaimInvoiceUpdateOne) ClearDepreciation() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearDepreciation()
	return _u
}

// SetDeductible sets the "deductible" field.
func (_u *ClaimInvoiceUpdateOne) SetDeductible(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.ResetDeductible()
	_u.mutation.SetDeductible(v)
	return _u
}

// SetNillableDeductible sets the "deductible" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableDeductible(v *float64) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetDeductible(*v)
	}
	return _u
}

// AddDeductible adds value to the "deductible" field.
func (_u *ClaimInvoiceUpdateOne) AddDeductible(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.AddDeductible(v)
	return _u
}

// ClearDeductible clears the value of the "deductible" field.
func (_u *ClaimInvoiceUpdateOne) ClearDeductible() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearDeductible()
	return _u
}

// SetRecommendedPayout sets the "recommended_payout" field.
func (_u *ClaimInvoiceUpdateOne) SetRecommendedPayout(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.ResetRecommendedPayout()
	_u.mutation.SetRecommendedPayout(v)
	return _u
}

// SetNillableRecommendedPayout sets the "recommended_payout" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableRecommendedPayout(v *float64) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetRecommendedPayout(*v)
	}
	return _u
}

// AddRecommendedPayout adds value to the "recommended_payout" field.
func (_u *ClaimInvoiceUpdateOne) AddRecommendedPayout(v float64) *ClaimInvoiceUpdateOne {
	_u.mutation.AddRecommendedPayout(v)
	return _u
}

// ClearRecommendedPayout clears the value of the "recommended_payout" field.
func (_u *ClaimInvoiceUpdateOne) ClearRecommendedPayout() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearRecommendedPayout()
	return _u
}

// SetAdjudicationStatus sets the "adjudication_status" field.
func (_u *ClaimInvoiceUpdateOne) SetAdjudicationStatus(v string) *ClaimInvoiceUpdateOne {
	_u.mutation.SetAdjudicationStatus(v)
	return _u
}

// SetNillableAdjudicationStatus sets the "adjudication_status" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableAdjudicationStatus(v *string) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetAdjudicationStatus(*v)
	}
	return _u
}

// ClearAdjudicationStatus clears the value of the "adjudication_status" field.
func (_u *ClaimInvoiceUpdateOne) ClearAdjudicationStatus() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearAdjudicationStatus()
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *ClaimInvoiceUpdateOne) SetAnalysis(v json.RawMessage) *ClaimInvoiceUpdateOne {
	_u.mutation.SetAnalysis(v)
	return _u
}

// AppendAnalysis appends value to the "analysis" field.
func (_u *ClaimInvoiceUpdateOne) AppendAnalysis(v json.RawMessage) *ClaimInvoiceUpdateOne {
	_u.mutation.AppendAnalysis(v)
	return _u
}

// ClearAnalysis clears the value of the "analysis" field.
func (_u *ClaimInvoiceUpdateOne) ClearAnalysis() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimInvoiceUpdateOne) SetCreatedAt(v time.Time) *ClaimInvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimInvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *ClaimInvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimInvoiceUpdateOne) SetUpdatedAt(v time.Time) *ClaimInvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *ClaimInvoiceUpdateOne) SetClaim(v *Claim) *ClaimInvoiceUpdateOne {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the ClaimInvoiceMutation object of the builder.
func (_u *ClaimInvoiceUpdateOne) Mutation() *ClaimInvoiceMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *ClaimInvoiceUpdateOne) ClearClaim() *ClaimInvoiceUpdateOne {
	_u.mutation.ClearClaim()
	return _u
}

// Where appends a list predicates to the ClaimInvoiceUpdate builder.
func (_u *ClaimInvoiceUpdateOne) Where(ps ...predicate.ClaimInvoice) *ClaimInvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimInvoiceUpdateOne) Select(field string, fields ...string) *ClaimInvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClaimInvoice entity.
func (_u *ClaimInvoiceUpdateOne) Save(ctx context.Context) (*ClaimInvoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimInvoiceUpdateOne) SaveX(ctx context.Context) *ClaimInvoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimInvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimInvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimInvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claiminvoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimInvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := claiminvoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := claiminvoice.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := claiminvoice.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := claiminvoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := claiminvoice.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.validation_status": %w`, err)}
		}
	}
	if _u.mutation.ClaimCleared() && len(_u.mutation.ClaimIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClaimInvoice.claim"`)
	}
	return nil
}

func (_u *ClaimInvoiceUpdateOne) sqlSave(ctx context.Context) (_node *ClaimInvoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claiminvoice.Table, claiminvoice.Columns, sqlgraph.NewFieldSpec(claiminvoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClaimInvoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claiminvoice.FieldID)
		for _, f := range fields {
			if !claiminvoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claiminvoice.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(claiminvoice.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(claiminvoice.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(claiminvoice.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(claiminvoice.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(claiminvoice.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(claiminvoice.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.VendorAddress(); ok {
		_spec.SetField(claiminvoice.FieldVendorAddress, field.TypeString, value)
	}
	if _u.mutation.VendorAddressCleared() {
		_spec.ClearField(claiminvoice.FieldVendorAddress, field.TypeString)
	}
	if value, ok := _u.mutation.VendorPhone(); ok {
		_spec.SetField(claiminvoice.FieldVendorPhone, field.TypeString, value)
	}
	if _u.mutation.VendorPhoneCleared() {
		_spec.ClearField(claiminvoice.FieldVendorPhone, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(claiminvoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(claiminvoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(claiminvoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(claiminvoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(claiminvoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(claiminvoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(claiminvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(claiminvoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(claiminvoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(claiminvoice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(claiminvoice.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claiminvoice.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(claiminvoice.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrRawData(); ok {
		_spec.SetField(claiminvoice.FieldOcrRawData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOcrRawData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claiminvoice.FieldOcrRawData, value)
		})
	}
	if _u.mutation.OcrRawDataCleared() {
		_spec.ClearField(claiminvoice.FieldOcrRawData, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(claiminvoice.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(claiminvoice.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(claiminvoice.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(claiminvoice.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(claiminvoice.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(claiminvoice.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationFlags(); ok {
		_spec.SetField(claiminvoice.FieldValidationFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claiminvoice.FieldValidationFlags, value)
		})
	}
	if _u.mutation.ValidationFlagsCleared() {
		_spec.ClearField(claiminvoice.FieldValidationFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.CoveredAmount(); ok {
		_spec.SetField(claiminvoice.FieldCoveredAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoveredAmount(); ok {
		_spec.AddField(claiminvoice.FieldCoveredAmount, field.TypeFloat64, value)
	}
	if _u.mutation.CoveredAmountCleared() {
		_spec.ClearField(claiminvoice.FieldCoveredAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NonCoveredAmount(); ok {
		_spec.SetField(claiminvoice.FieldNonCoveredAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNonCoveredAmount(); ok {
		_spec.AddField(claiminvoice.FieldNonCoveredAmount, field.TypeFloat64, value)
	}
	if _u.mutation.NonCoveredAmountCleared() {
		_spec.ClearField(claiminvoice.FieldNonCoveredAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Depreciation(); ok {
		_spec.SetField(claiminvoice.FieldDepreciation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDepreciation(); ok {
		_spec.AddField(claiminvoice.FieldDepreciation, field.TypeFloat64, value)
	}
	if _u.mutation.DepreciationCleared() {
		_spec.ClearField(claiminvoice.FieldDepreciation, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Deductible(); ok {
		_spec.SetField(claiminvoice.FieldDeductible, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeductible(); ok {
		_spec.AddField(claiminvoice.FieldDeductible, field.TypeFloat64, value)
	}
	if _u.mutation.DeductibleCleared() {
		_spec.ClearField(claiminvoice.FieldDeductible, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecommendedPayout(); ok {
		_spec.SetField(claiminvoice.FieldRecommendedPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendedPayout(); ok {
		_spec.AddField(claiminvoice.FieldRecommendedPayout, field.TypeFloat64, value)
	}
	if _u.mutation.RecommendedPayoutCleared() {
		_spec.ClearField(claiminvoice.FieldRecommendedPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AdjudicationStatus(); ok {
		_spec.SetField(claiminvoice.FieldAdjudicationStatus, field.TypeString, value)
	}
	if _u.mutation.AdjudicationStatusCleared() {
		_spec.ClearField(claiminvoice.FieldAdjudicationStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(claiminvoice.FieldAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claiminvoice.FieldAnalysis, value)
		})
	}
	if _u.mutation.AnalysisCleared() {
		_spec.ClearField(claiminvoice.FieldAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claiminvoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claiminvoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claiminvoice.ClaimTable,
			Columns: []string{claiminvoice.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claiminvoice.ClaimTable,
			Columns: []string{claiminvoice.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClaimInvoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claiminvoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
