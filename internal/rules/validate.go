package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

// InvoiceFacts is the subset of invoice fields the rule set inspects.
// Nil means the field was not extracted.
type InvoiceFacts struct {
	VendorName  *string
	InvoiceDate *time.Time
	TotalAmount *float64
	// LineItems is the serialized line-item list as persisted on the invoice.
	LineItems json.RawMessage
}

// Validate applies the fixed rule set to an invoice in the context of the
// claim's date of loss. Flags are appended in rule-evaluation order; callers
// and tests may rely on the exact sequence. Validate is pure: same inputs,
// same flags.
func Validate(inv InvoiceFacts, dateOfLoss time.Time) []entity.ValidationFlag {
	var flags []entity.ValidationFlag

	if inv.VendorName == nil || *inv.VendorName == "" {
		flags = append(flags, entity.ValidationFlag{
			Code:     "MISSING_VENDOR",
			Severity: constants.SeverityError,
			Message:  "Vendor name is required",
			Field:    "vendorName",
		})
	}

	if inv.InvoiceDate == nil {
		flags = append(flags, entity.ValidationFlag{
			Code:     "MISSING_DATE",
			Severity: constants.SeverityError,
			Message:  "Invoice date is required",
			Field:    "invoiceDate",
		})
	}

	if inv.TotalAmount == nil {
		flags = append(flags, entity.ValidationFlag{
			Code:     "MISSING_AMOUNT",
			Severity: constants.SeverityError,
			Message:  "Total amount is required",
			Field:    "totalAmount",
		})
	}

	if inv.InvoiceDate != nil {
		daysDiff := int(math.Floor(inv.InvoiceDate.Sub(dateOfLoss).Hours() / 24))

		if daysDiff < constants.MinInvoiceDateDaysAfterLoss {
			flags = append(flags, entity.ValidationFlag{
				Code:     "INVOICE_BEFORE_LOSS",
				Severity: constants.SeverityError,
				Message:  "Invoice date is before date of loss",
				Field:    "invoiceDate",
			})
		}

		if daysDiff > constants.MaxInvoiceDateDaysAfterLoss {
			flags = append(flags, entity.ValidationFlag{
				Code:     "INVOICE_TOO_OLD",
				Severity: constants.SeverityWarning,
				Message:  fmt.Sprintf("Invoice date is more than %d days after loss", constants.MaxInvoiceDateDaysAfterLoss),
				Field:    "invoiceDate",
			})
		}
	}

	if inv.TotalAmount != nil {
		amount := *inv.TotalAmount

		if amount > constants.MaxInvoiceAmount {
			flags = append(flags, entity.ValidationFlag{
				Code:     "AMOUNT_EXCEEDS_THRESHOLD",
				Severity: constants.SeverityWarning,
				Message:  "Total amount exceeds $100,000 threshold",
				Field:    "totalAmount",
			})
		}

		if amount >= constants.SuspiciousRoundAmountThreshold && math.Mod(amount, 1000) == 0 {
			flags = append(flags, entity.ValidationFlag{
				Code:     "SUSPICIOUS_ROUND_AMOUNT",
				Severity: constants.SeverityInfo,
				Message:  "Total amount is a round number, may require additional verification",
				Field:    "totalAmount",
			})
		}
	}

	// Malformed line-item JSON is ignored on purpose: extraction quality is
	// already reflected in the OCR confidence, and a decode failure here must
	// not fail an otherwise processable invoice.
	if len(inv.LineItems) > 0 {
		var items []entity.LineItem
		if err := json.Unmarshal(inv.LineItems, &items); err == nil {
			for _, item := range items {
				if item.Amount != nil && *item.Amount > constants.MaxLineItemAmount {
					flags = append(flags, entity.ValidationFlag{
						Code:     "LINE_ITEM_EXCEEDS_THRESHOLD",
						Severity: constants.SeverityWarning,
						Message:  "Line item exceeds $25,000 threshold",
						Field:    "lineItems",
					})
					break
				}
			}
		}
	}

	return flags
}

// DeriveStatus computes the validation status from a flag list. It is the
// only way a validation status is produced, so the status is always
// recomputable from the flags alone.
func DeriveStatus(flags []entity.ValidationFlag) constants.ValidationStatus {
	hasErrors := false
	hasWarnings := false
	for _, f := range flags {
		switch f.Severity {
		case constants.SeverityError:
			hasErrors = true
		case constants.SeverityWarning:
			hasWarnings = true
		}
	}
	switch {
	case hasErrors:
		return constants.ValidationFailed
	case hasWarnings:
		return constants.ValidationFlagged
	default:
		return constants.ValidationPassed
	}
}
