// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claim"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

// ClaimInvoice is the model entity for the ClaimInvoice schema.
type ClaimInvoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ClaimID holds the value of the "claim_id" field.
	ClaimID uuid.UUID `json:"claim_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType string `json:"file_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName *string `json:"vendor_name,omitempty"`
	// VendorAddress holds the value of the "vendor_address" field.
	VendorAddress *string `json:"vendor_address,omitempty"`
	// VendorPhone holds the value of the "vendor_phone" field.
	VendorPhone *string `json:"vendor_phone,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *float64 `json:"total_amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// LineItems holds the value of the "line_items" field.
	LineItems json.RawMessage `json:"line_items,omitempty"`
	// OcrRawData holds the value of the "ocr_raw_data" field.
	OcrRawData json.RawMessage `json:"ocr_raw_data,omitempty"`
	// OcrConfidence holds the value of the "ocr_confidence" field.
	OcrConfidence *float32 `json:"ocr_confidence,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus string `json:"validation_status,omitempty"`
	// ValidationFlags holds the value of the "validation_flags" field.
	ValidationFlags []entity.ValidationFlag `json:"validation_flags,omitempty"`
	// CoveredAmount holds the value of the "covered_amount" field.
	CoveredAmount *float64 `json:"covered_amount,omitempty"`
	// NonCoveredAmount holds the value of the "non_covered_amount" field.
	NonCoveredAmount *float64 `json:"non_covered_amount,omitempty"`
	// Depreciation holds the value of the "depreciation" field.
	Depreciation *float64 `json:"depreciation,omitempty"`
	// Deductible holds the value of the "deductible" field.
	Deductible *float64 `json:"deductible,omitempty"`
	// RecommendedPayout holds the value of the "recommended_payout" field.
	RecommendedPayout *float64 `json:"recommended_payout,omitempty"`
	// AdjudicationStatus holds the value of the "adjudication_status" field.
	AdjudicationStatus *string `json:"adjudication_status,omitempty"`
	// Analysis holds the value of the "analysis" field.
	Analysis json.RawMessage `json:"analysis,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClaimInvoiceQuery when eager-loading is set.
	Edges        ClaimInvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClaimInvoiceEdges holds the relations/edges for other nodes in the graph.
type ClaimInvoiceEdges struct {
	// Claim holds the value of the claim edge.
	Claim *Claim `json:"claim,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClaimOrErr returns the Claim value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClaimInvoiceEdges) ClaimOrErr() (*Claim, error) {
	if e.Claim != nil {
		return e.Claim, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: claim.Label}
	}
	return nil, &NotLoadedError{edge: "claim"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClaimInvoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claiminvoice.FieldLineItems, claiminvoice.FieldOcrRawData, claiminvoice.FieldValidationFlags, claiminvoice.FieldAnalysis:
			values[i] = new([]byte)
		case claiminvoice.FieldTotalAmount, claiminvoice.FieldOcrConfidence, claiminvoice.FieldCoveredAmount, claiminvoice.FieldNonCoveredAmount, claiminvoice.FieldDepreciation, claiminvoice.FieldDeductible, claiminvoice.FieldRecommendedPayout:
			values[i] = new(sql.NullFloat64)
		case claiminvoice.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case claiminvoice.FieldFileName, claiminvoice.FieldFileType, claiminvoice.FieldVendorName, claiminvoice.FieldVendorAddress, claiminvoice.FieldVendorPhone, claiminvoice.FieldInvoiceNumber, claiminvoice.FieldCurrency, claiminvoice.FieldValidationStatus, claiminvoice.FieldAdjudicationStatus:
			values[i] = new(sql.NullString)
		case claiminvoice.FieldInvoiceDate, claiminvoice.FieldDueDate, claiminvoice.FieldProcessedAt, claiminvoice.FieldCreatedAt, claiminvoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case claiminvoice.FieldID, claiminvoice.FieldClaimID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClaimInvoice fields.
func (_m *ClaimInvoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claiminvoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case claiminvoice.FieldClaimID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field claim_id", values[i])
			} else if value != nil {
				_m.ClaimID = *value
			}
		case claiminvoice.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case claiminvoice.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = value.String
			}
		case claiminvoice.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case claiminvoice.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = new(string)
				*_m.VendorName = value.String
			}
		case claiminvoice.FieldVendorAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_address", values[i])
			} else if value.Valid {
				_m.VendorAddress = new(string)
				*_m.VendorAddress = value.String
			}
		case claiminvoice.FieldVendorPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_phone", values[i])
			} else if value.Valid {
				_m.VendorPhone = new(string)
				*_m.VendorPhone = value.String
			}
		case claiminvoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case claiminvoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case claiminvoice.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case claiminvoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case claiminvoice.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case claiminvoice.FieldLineItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field line_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LineItems); err != nil {
					return fmt.Errorf("unmarshal field line_items: %w", err)
				}
			}
		case claiminvoice.FieldOcrRawData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_raw_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OcrRawData); err != nil {
					return fmt.Errorf("unmarshal field ocr_raw_data: %w", err)
				}
			}
		case claiminvoice.FieldOcrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_confidence", values[i])
			} else if value.Valid {
				_m.OcrConfidence = new(float32)
				*_m.OcrConfidence = float32(value.Float64)
			}
		case claiminvoice.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case claiminvoice.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = value.String
			}
		case claiminvoice.FieldValidationFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationFlags); err != nil {
					return fmt.Errorf("unmarshal field validation_flags: %w", err)
				}
			}
		case claiminvoice.FieldCoveredAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field covered_amount", values[i])
			} else if value.Valid {
				_m.CoveredAmount = new(float64)
				*_m.CoveredAmount = value.Float64
			}
		case claiminvoice.FieldNonCoveredAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field non_covered_amount", values[i])
			} else if value.Valid {
				_m.NonCoveredAmount = new(float64)
				*_m.NonCoveredAmount = value.Float64
			}
		case claiminvoice.FieldDepreciation:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field depreciation", values[i])
			} else if value.Valid {
				_m.Depreciation = new(float64)
				*_m.Depreciation = value.Float64
			}
		case claiminvoice.FieldDeductible:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field deductible", values[i])
			} else if value.Valid {
				_m.Deductible = new(float64)
				*_m.Deductible = value.Float64
			}
		case claiminvoice.FieldRecommendedPayout:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_payout", values[i])
			} else if value.Valid {
				_m.RecommendedPayout = new(float64)
				*_m.RecommendedPayout = value.Float64
			}
		case claiminvoice.FieldAdjudicationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field adjudication_status", values[i])
			} else if value.Valid {
				_m.AdjudicationStatus = new(string)
				*_m.AdjudicationStatus = value.String
			}
		case claiminvoice.FieldAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Analysis); err != nil {
					return fmt.Errorf("unmarshal field analysis: %w", err)
				}
			}
		case claiminvoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case claiminvoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClaimInvoice.
// This includes values selected through modifiers, order, etc.
func (_m *ClaimInvoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClaim queries the "claim" edge of the ClaimInvoice entity.
func (_m *ClaimInvoice) QueryClaim() *ClaimQuery {
	return NewClaimInvoiceClient(_m.config).QueryClaim(_m)
}

// Update returns a builder for updating this ClaimInvoice.
// Note that you need to call ClaimInvoice.Unwrap() before calling this method if this ClaimInvoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClaimInvoice) Update() *ClaimInvoiceUpdateOne {
	return NewClaimInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClaimInvoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClaimInvoice) Unwrap() *ClaimInvoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClaimInvoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClaimInvoice) String() string {
	var builder strings.Builder
	builder.WriteString("ClaimInvoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("claim_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClaimID))
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(_m.FileType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	if v := _m.VendorName; v != nil {
		builder.WriteString("vendor_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VendorAddress; v != nil {
		builder.WriteString("vendor_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VendorPhone; v != nil {
		builder.WriteString("vendor_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("line_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineItems))
	builder.WriteString(", ")
	builder.WriteString("ocr_raw_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrRawData))
	builder.WriteString(", ")
	if v := _m.OcrConfidence; v != nil {
		builder.WriteString("ocr_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(_m.ValidationStatus)
	builder.WriteString(", ")
	builder.WriteString("validation_flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationFlags))
	builder.WriteString(", ")
	if v := _m.CoveredAmount; v != nil {
		builder.WriteString("covered_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NonCoveredAmount; v != nil {
		builder.WriteString("non_covered_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Depreciation; v != nil {
		builder.WriteString("depreciation=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Deductible; v != nil {
		builder.WriteString("deductible=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RecommendedPayout; v != nil {
		builder.WriteString("recommended_payout=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AdjudicationStatus; v != nil {
		builder.WriteString("adjudication_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.Analysis))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClaimInvoices is a parsable slice of ClaimInvoice.
type ClaimInvoices []*ClaimInvoice
