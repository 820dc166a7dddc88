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
)

// Claim is the model entity for the Claim schema.
type Claim struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ClaimNumber holds the value of the "claim_number" field.
	ClaimNumber string `json:"claim_number,omitempty"`
	// PolicyNumber holds the value of the "policy_number" field.
	PolicyNumber string `json:"policy_number,omitempty"`
	// ClaimantName holds the value of the "claimant_name" field.
	ClaimantName string `json:"claimant_name,omitempty"`
	// PropertyAddress holds the value of the "property_address" field.
	PropertyAddress string `json:"property_address,omitempty"`
	// DateOfLoss holds the value of the "date_of_loss" field.
	DateOfLoss time.Time `json:"date_of_loss,omitempty"`
	// CauseOfLoss holds the value of the "cause_of_loss" field.
	CauseOfLoss string `json:"cause_of_loss,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Analysis holds the value of the "analysis" field.
	Analysis json.RawMessage `json:"analysis,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClaimQuery when eager-loading is set.
	Edges        ClaimEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClaimEdges holds the relations/edges for other nodes in the graph.
type ClaimEdges struct {
	// Invoices holds the value of the invoices edge.
	Invoices []*ClaimInvoice `json:"invoices,omitempty"`
	// Evidence holds the value of the evidence edge.
	Evidence []*ClaimEvidence `json:"evidence,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// InvoicesOrErr returns the Invoices value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) InvoicesOrErr() ([]*ClaimInvoice, error) {
	if e.loadedTypes[0] {
		return e.Invoices, nil
	}
	return nil, &NotLoadedError{edge: "invoices"}
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) EvidenceOrErr() ([]*ClaimEvidence, error) {
	if e.loadedTypes[1] {
		return e.Evidence, nil
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Claim) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claim.FieldAnalysis:
			values[i] = new([]byte)
		case claim.FieldClaimNumber, claim.FieldPolicyNumber, claim.FieldClaimantName, claim.FieldPropertyAddress, claim.FieldCauseOfLoss, claim.FieldStatus:
			values[i] = new(sql.NullString)
		case claim.FieldDateOfLoss, claim.FieldCreatedAt, claim.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case claim.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Claim fields.
func (_m *Claim) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claim.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case claim.FieldClaimNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_number", values[i])
			} else if value.Valid {
				_m.ClaimNumber = value.String
			}
		case claim.FieldPolicyNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_number", values[i])
			} else if value.Valid {
				_m.PolicyNumber = value.String
			}
		case claim.FieldClaimantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimant_name", values[i])
			} else if value.Valid {
				_m.ClaimantName = value.String
			}
		case claim.FieldPropertyAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_address", values[i])
			} else if value.Valid {
				_m.PropertyAddress = value.String
			}
		case claim.FieldDateOfLoss:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_loss", values[i])
			} else if value.Valid {
				_m.DateOfLoss = value.Time
			}
		case claim.FieldCauseOfLoss:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cause_of_loss", values[i])
			} else if value.Valid {
				_m.CauseOfLoss = value.String
			}
		case claim.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case claim.FieldAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Analysis); err != nil {
					return fmt.Errorf("unmarshal field analysis: %w", err)
				}
			}
		case claim.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case claim.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Claim.
// This includes values selected through modifiers, order, etc.
func (_m *Claim) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvoices queries the "invoices" edge of the Claim entity.
func (_m *Claim) QueryInvoices() *ClaimInvoiceQuery {
	return NewClaimClient(_m.config).QueryInvoices(_m)
}

// QueryEvidence queries the "evidence" edge of the Claim entity.
func (_m *Claim) QueryEvidence() *ClaimEvidenceQuery {
	return NewClaimClient(_m.config).QueryEvidence(_m)
}

// Update returns a builder for updating this Claim.
// Note that you need to call Claim.Unwrap() before calling this method if this Claim
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Claim) Update() *ClaimUpdateOne {
	return NewClaimClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Claim entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Claim) Unwrap() *Claim {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Claim is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Claim) String() string {
	var builder strings.Builder
	builder.WriteString("Claim(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("claim_number=")
	builder.WriteString(_m.ClaimNumber)
	builder.WriteString(", ")
	builder.WriteString("policy_number=")
	builder.WriteString(_m.PolicyNumber)
	builder.WriteString(", ")
	builder.WriteString("claimant_name=")
	builder.WriteString(_m.ClaimantName)
	builder.WriteString(", ")
	builder.WriteString("property_address=")
	builder.WriteString(_m.PropertyAddress)
	builder.WriteString(", ")
	builder.WriteString("date_of_loss=")
	builder.WriteString(_m.DateOfLoss.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("cause_of_loss=")
	builder.WriteString(_m.CauseOfLoss)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
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

// Claims is a parsable slice of Claim.
type Claims []*Claim
