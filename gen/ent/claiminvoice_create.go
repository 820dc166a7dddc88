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
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

// ClaimInvoiceCreate is the builder for creating a ClaimInvoice entity.
type ClaimInvoiceCreate struct {
	config
	mutation *ClaimInvoiceMutation
	hooks    []Hook
}

// SetClaimID sets the "claim_id" field.
func (_c *ClaimInvoiceCreate) SetClaimID(v uuid.UUID) *ClaimInvoiceCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ClaimInvoiceCreate) SetFileName(v string) *ClaimInvoiceCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *ClaimInvoiceCreate) SetFileType(v string) *ClaimInvoiceCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ClaimInvoiceCreate) SetFileSize(v int) *ClaimInvoiceCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *ClaimInvoiceCreate) SetVendorName(v string) *ClaimInvoiceCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableVendorName(v *string) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetVendorAddress sets the "vendor_address" field.
func (_c *ClaimInvoiceCreate) SetVendorAddress(v string) *ClaimInvoiceCreate {
	_c.mutation.SetVendorAddress(v)
	return _c
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableVendorAddress(v *string) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetVendorAddress(*v)
	}
	return _c
}

// SetVendorPhone sets the "vendor_phone" field.
func (_c *ClaimInvoiceCreate) SetVendorPhone(v string) *ClaimInvoiceCreate {
	_c.mutation.SetVendorPhone(v)
	return _c
}

// SetNillableVendorPhone sets the "vendor_phone" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableVendorPhone(v *string) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetVendorPhone(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *ClaimInvoiceCreate) SetInvoiceNumber(v string) *ClaimInvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableInvoiceNumber(v *string) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *ClaimInvoiceCreate) SetInvoiceDate(v time.Time) *ClaimInvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableInvoiceDate(v *time.Time) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *ClaimInvoiceCreate) SetDueDate(v time.Time) *ClaimInvoiceCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableDueDate(v *time.Time) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *ClaimInvoiceCreate) SetTotalAmount(v float64) *ClaimInvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableTotalAmount(v *float64) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ClaimInvoiceCreate) SetCurrency(v string) *ClaimInvoiceCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableCurrency(v *string) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetLineItems sets the "line_items" field.
func (_c *ClaimInvoiceCreate) SetLineItems(v json.RawMessage) *ClaimInvoiceCreate {
	_c.mutation.SetLineItems(v)
	return _c
}

// SetOcrRawData sets the "ocr_raw_data" field.
func (_c *ClaimInvoiceCreate) SetOcrRawData(v json.RawMessage) *ClaimInvoiceCreate {
	_c.mutation.SetOcrRawData(v)
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *ClaimInvoiceCreate) SetOcrConfidence(v float32) *ClaimInvoiceCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableOcrConfidence(v *float32) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ClaimInvoiceCreate) SetProcessedAt(v time.Time) *ClaimInvoiceCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableProcessedAt(v *time.Time) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *ClaimInvoiceCreate) SetValidationStatus(v string) *ClaimInvoiceCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableValidationStatus(v *string) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetValidationFlags sets the "validation_flags" field.
func (_c *ClaimInvoiceCreate) SetValidationFlags(v []entity.ValidationFlag) *ClaimInvoiceCreate {
	_c.mutation.SetValidationFlags(v)
	return _c
}

// SetCoveredAmount sets the "covered_amount" field.
func (_c *ClaimInvoiceCreate) SetCoveredAmount(v float64) *ClaimInvoiceCreate {
	_c.mutation.SetCoveredAmount(v)
	return _c
}

// SetNillableCoveredAmount sets the "covered_amount" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableCoveredAmount(v *float64) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetCoveredAmount(*v)
	}
	return _c
}

// SetNonCoveredAmount sets the "non_covered_amount" field.
func (_c *ClaimInvoiceCreate) SetNonCoveredAmount(v float64) *ClaimInvoiceCreate {
	_c.mutation.SetNonCoveredAmount(v)
	return _c
}

// SetNillableNonCoveredAmount sets the "non_covered_amount" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableNonCoveredAmount(v *float64) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetNonCoveredAmount(*v)
	}
	return _c
}

// SetDepreciation sets the "depreciation" field.
func (_c *ClaimInvoiceCreate) SetDepreciation(v float64) *ClaimInvoiceCreate {
	_c.mutation.SetDepreciation(v)
	return _c
}

// SetNillableDepreciation sets the "depreciation" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableDepreciation(v *float64) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetDepreciation(*v)
	}
	return _c
}

// SetDeductible sets the "deductible" field.
func (_c *ClaimInvoiceCreate) SetDeductible(v float64) *ClaimInvoiceCreate {
	_c.mutation.SetDeductible(v)
	return _c
}

// SetNillableDeductible sets the "deductible" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableDeductible(v *float64) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetDeductible(*v)
	}
	return _c
}

// SetRecommendedPayout sets the "recommended_payout" field.
func (_c *ClaimInvoiceCreate) SetRecommendedPayout(v float64) *ClaimInvoiceCreate {
	_c.mutation.SetRecommendedPayout(v)
	return _c
}

// SetNillableRecommendedPayout sets the "recommended_payout" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableRecommendedPayout(v *float64) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetRecommendedPayout(*v)
	}
	return _c
}

// SetAdjudicationStatus sets the "adjudication_status" field.
func (_c *ClaimInvoiceCreate) SetAdjudicationStatus(v string) *ClaimInvoiceCreate {
	_c.mutation.SetAdjudicationStatus(v)
	return _c
}

// SetNillableAdjudicationStatus sets the "adjudication_status" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableAdjudicationStatus(v *string) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetAdjudicationStatus(*v)
	}
	return _c
}

// SetAnalysis sets the "analysis" field.
func (_c *ClaimInvoiceCreate) SetAnalysis(v json.RawMessage) *ClaimInvoiceCreate {
	_c.mutation.SetAnalysis(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimInvoiceCreate) SetCreatedAt(v time.Time) *ClaimInvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableCreatedAt(v *time.Time) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimInvoiceCreate) SetUpdatedAt(v time.Time) *ClaimInvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableUpdatedAt(v *time.Time) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimInvoiceCreate) SetID(v uuid.UUID) *ClaimInvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClaimInvoiceCreate) SetNillableID(v *uuid.UUID) *ClaimInvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_c *ClaimInvoiceCreate) SetClaim(v *Claim) *ClaimInvoiceCreate {
	return _c.SetClaimID(v.ID)
}

// Mutation returns the ClaimInvoiceMutation object of the builder.
func (_c *ClaimInvoiceCreate) Mutation() *ClaimInvoiceMutation {
	return _c.mutation
}

// Save creates the ClaimInvoice in the database.
func (_c *ClaimInvoiceCreate) Save(ctx context.Context) (*ClaimInvoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimInvoiceCreate) SaveX(ctx context.Context) *ClaimInvoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimInvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimInvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimInvoiceCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := claiminvoice.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := claiminvoice.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claiminvoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claiminvoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := claiminvoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimInvoiceCreate) check() error {
	if _, ok := _c.mutation.ClaimID(); !ok {
		return &ValidationError{Name: "claim_id", err: errors.New(`ent: missing required field "ClaimInvoice.claim_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ClaimInvoice.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := claiminvoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "ClaimInvoice.file_type"`)}
	}
	if v, ok := _c.mutation.FileType(); ok {
		if err := claiminvoice.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "ClaimInvoice.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := claiminvoice.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "ClaimInvoice.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := claiminvoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "ClaimInvoice.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := claiminvoice.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ClaimInvoice.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClaimInvoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClaimInvoice.updated_at"`)}
	}
	if len(_c.mutation.ClaimIDs()) == 0 {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required edge "ClaimInvoice.claim"`)}
	}
	return nil
}

func (_c *ClaimInvoiceCreate) sqlSave(ctx context.Context) (*ClaimInvoice, error) {
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

func (_c *ClaimInvoiceCreate) createSpec() (*ClaimInvoice, *sqlgraph.CreateSpec) {
	var (
		_node = &ClaimInvoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claiminvoice.Table, sqlgraph.NewFieldSpec(claiminvoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(claiminvoice.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(claiminvoice.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(claiminvoice.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(claiminvoice.FieldVendorName, field.TypeString, value)
		_node.VendorName = &value
	}
	if value, ok := _c.mutation.VendorAddress(); ok {
		_spec.SetField(claiminvoice.FieldVendorAddress, field.TypeString, value)
		_node.VendorAddress = &value
	}
	if value, ok := _c.mutation.VendorPhone(); ok {
		_spec.SetField(claiminvoice.FieldVendorPhone, field.TypeString, value)
		_node.VendorPhone = &value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(claiminvoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(claiminvoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(claiminvoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(claiminvoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(claiminvoice.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.LineItems(); ok {
		_spec.SetField(claiminvoice.FieldLineItems, field.TypeJSON, value)
		_node.LineItems = value
	}
	if value, ok := _c.mutation.OcrRawData(); ok {
		_spec.SetField(claiminvoice.FieldOcrRawData, field.TypeJSON, value)
		_node.OcrRawData = value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(claiminvoice.FieldOcrConfidence, field.TypeFloat32, value)
		_node.OcrConfidence = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(claiminvoice.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(claiminvoice.FieldValidationStatus, field.TypeString, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.ValidationFlags(); ok {
		_spec.SetField(claiminvoice.FieldValidationFlags, field.TypeJSON, value)
		_node.ValidationFlags = value
	}
	if value, ok := _c.mutation.CoveredAmount(); ok {
		_spec.SetField(claiminvoice.FieldCoveredAmount, field.TypeFloat64, value)
		_node.CoveredAmount = &value
	}
	if value, ok := _c.mutation.NonCoveredAmount(); ok {
		_spec.SetField(claiminvoice.FieldNonCoveredAmount, field.TypeFloat64, value)
		_node.NonCoveredAmount = &value
	}
	if value, ok := _c.mutation.Depreciation(); ok {
		_spec.SetField(claiminvoice.FieldDepreciation, field.TypeFloat64, value)
		_node.Depreciation = &value
	}
	if value, ok := _c.mutation.Deductible(); ok {
		_spec.SetField(claiminvoice.FieldDeductible, field.TypeFloat64, value)
		_node.Deductible = &value
	}
	if value, ok := _c.mutation.RecommendedPayout(); ok {
		_spec.SetField(claiminvoice.FieldRecommendedPayout, field.TypeFloat64, value)
		_node.RecommendedPayout = &value
	}
	if value, ok := _c.mutation.AdjudicationStatus(); ok {
		_spec.SetField(claiminvoice.FieldAdjudicationStatus, field.TypeString, value)
		_node.AdjudicationStatus = &value
	}
	if value, ok := _c.mutation.Analysis(); ok {
		_spec.SetField(claiminvoice.FieldAnalysis, field.TypeJSON, value)
		_node.Analysis = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claiminvoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claiminvoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_node.ClaimID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClaimInvoiceCreateBulk is the builder for creating many ClaimInvoice entities in bulk.
type ClaimInvoiceCreateBulk struct {
	config
	err      error
	builders []*ClaimInvoiceCreate
}

// Save creates the ClaimInvoice entities in the database.
func (_c *ClaimInvoiceCreateBulk) Save(ctx context.Context) ([]*ClaimInvoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClaimInvoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimInvoiceMutation)
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
func (_c *ClaimInvoiceCreateBulk) SaveX(ctx context.Context) []*ClaimInvoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimInvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimInvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
