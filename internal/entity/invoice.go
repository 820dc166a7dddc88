package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/insurtech-labs/claims-adjudicator/constants"
)

// ValidationFlag is one rule annotation attached to an invoice. Flags are
// stored and returned in the order the rules were evaluated.
type ValidationFlag struct {
	Code     string `json:"code"`
	Severity string `json:"severity"` // error | warning | info
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
}

// LineItem is one extracted invoice line.
type LineItem struct {
	Description string   `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
}

// ClaimInvoice represents one contractor invoice attached to a claim.
type ClaimInvoice struct {
	ID      uuid.UUID `json:"id"`
	ClaimID uuid.UUID `json:"claim_id"`

	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int    `json:"file_size"`

	// Extracted fields; nil means the OCR provider did not return the field.
	VendorName    *string    `json:"vendor_name,omitempty"`
	VendorAddress *string    `json:"vendor_address,omitempty"`
	VendorPhone   *string    `json:"vendor_phone,omitempty"`
	InvoiceNumber *string    `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time `json:"invoice_date,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	TotalAmount   *float64   `json:"total_amount,omitempty"`
	Currency      string     `json:"currency"`
	// LineItems is the serialized extracted line-item list; nil when none
	// were extracted.
	LineItems json.RawMessage `json:"line_items,omitempty"`

	// OCRRawData is the provider response retained verbatim for audit.
	OCRRawData    json.RawMessage `json:"ocr_raw_data,omitempty"`
	OCRConfidence *float32        `json:"ocr_confidence,omitempty"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`

	ValidationStatus constants.ValidationStatus `json:"validation_status"`
	ValidationFlags  []ValidationFlag           `json:"validation_flags,omitempty"`

	CoveredAmount      *float64                      `json:"covered_amount,omitempty"`
	NonCoveredAmount   *float64                      `json:"non_covered_amount,omitempty"`
	Depreciation       *float64                      `json:"depreciation,omitempty"`
	Deductible         *float64                      `json:"deductible,omitempty"`
	RecommendedPayout  *float64                      `json:"recommended_payout,omitempty"`
	AdjudicationStatus *constants.AdjudicationStatus `json:"adjudication_status,omitempty"`

	// Analysis is the adjuster-model analysis broadcast to every invoice in
	// the processing batch.
	Analysis json.RawMessage `json:"analysis,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DecodeLineItems unmarshals the stored line-item JSON. A nil slice with a
// nil error means no line items were extracted.
func (i *ClaimInvoice) DecodeLineItems() ([]LineItem, error) {
	if len(i.LineItems) == 0 {
		return nil, nil
	}
	var items []LineItem
	if err := json.Unmarshal(i.LineItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}
