package rules

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func codes(flags []entity.ValidationFlag) []string {
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = f.Code
	}
	return out
}

func TestValidateCleanInvoice(t *testing.T) {
	flags := Validate(InvoiceFacts{
		VendorName:  strPtr("ABC Roofing LLC"),
		InvoiceDate: datePtr("2024-03-20"),
		TotalAmount: f64Ptr(8450.75),
	}, *datePtr("2024-03-15"))

	assert.Empty(t, flags)
	assert.Equal(t, constants.ValidationPassed, DeriveStatus(flags))
}

func TestValidateMissingFieldsOrder(t *testing.T) {
	flags := Validate(InvoiceFacts{}, *datePtr("2024-03-15"))

	require.Equal(t, []string{"MISSING_VENDOR", "MISSING_DATE", "MISSING_AMOUNT"}, codes(flags))
	for _, f := range flags {
		assert.Equal(t, constants.SeverityError, f.Severity)
	}
	assert.Equal(t, "Vendor name is required", flags[0].Message)
	assert.Equal(t, "vendorName", flags[0].Field)
	assert.Equal(t, constants.ValidationFailed, DeriveStatus(flags))
}

func TestValidateInvoiceBeforeLoss(t *testing.T) {
	flags := Validate(InvoiceFacts{
		VendorName:  strPtr("ABC Roofing LLC"),
		InvoiceDate: datePtr("2024-03-10"),
		TotalAmount: f64Ptr(500),
	}, *datePtr("2024-03-15"))

	require.Equal(t, []string{"INVOICE_BEFORE_LOSS"}, codes(flags))
	assert.Equal(t, constants.SeverityError, flags[0].Severity)
	assert.Equal(t, "Invoice date is before date of loss", flags[0].Message)
}

func TestValidateInvoiceAgeBoundary(t *testing.T) {
	dateOfLoss := *datePtr("2023-01-01")

	// exactly 365 days after loss is still acceptable
	flags := Validate(InvoiceFacts{
		VendorName:  strPtr("ABC Roofing LLC"),
		InvoiceDate: datePtr("2024-01-01"),
		TotalAmount: f64Ptr(500),
	}, dateOfLoss)
	assert.Empty(t, flags)

	// 366 days is too old, but only a warning
	flags = Validate(InvoiceFacts{
		VendorName:  strPtr("ABC Roofing LLC"),
		InvoiceDate: datePtr("2024-01-02"),
		TotalAmount: f64Ptr(500),
	}, dateOfLoss)
	require.Equal(t, []string{"INVOICE_TOO_OLD"}, codes(flags))
	assert.Equal(t, constants.SeverityWarning, flags[0].Severity)
	assert.Equal(t, "Invoice date is more than 365 days after loss", flags[0].Message)
	assert.Equal(t, constants.ValidationFlagged, DeriveStatus(flags))
}

func TestValidateAmountThresholds(t *testing.T) {
	dateOfLoss := *datePtr("2024-03-15")
	base := InvoiceFacts{
		VendorName:  strPtr("ABC Roofing LLC"),
		InvoiceDate: datePtr("2024-03-20"),
	}

	t.Run("exceeds max amount", func(t *testing.T) {
		inv := base
		inv.TotalAmount = f64Ptr(100_001)
		flags := Validate(inv, dateOfLoss)
		require.Equal(t, []string{"AMOUNT_EXCEEDS_THRESHOLD"}, codes(flags))
		assert.Equal(t, "Total amount exceeds $100,000 threshold", flags[0].Message)
	})

	t.Run("round amount", func(t *testing.T) {
		inv := base
		inv.TotalAmount = f64Ptr(5000)
		flags := Validate(inv, dateOfLoss)
		require.Equal(t, []string{"SUSPICIOUS_ROUND_AMOUNT"}, codes(flags))
		assert.Equal(t, constants.SeverityInfo, flags[0].Severity)
		// info alone never downgrades the status
		assert.Equal(t, constants.ValidationPassed, DeriveStatus(flags))
	})

	t.Run("non-round amount near threshold", func(t *testing.T) {
		inv := base
		inv.TotalAmount = f64Ptr(5050)
		assert.Empty(t, Validate(inv, dateOfLoss))
	})

	t.Run("round below threshold", func(t *testing.T) {
		inv := base
		inv.TotalAmount = f64Ptr(500)
		assert.Empty(t, Validate(inv, dateOfLoss))
	})

	t.Run("both amount flags stack in order", func(t *testing.T) {
		inv := base
		inv.TotalAmount = f64Ptr(200_000)
		flags := Validate(inv, dateOfLoss)
		require.Equal(t, []string{"AMOUNT_EXCEEDS_THRESHOLD", "SUSPICIOUS_ROUND_AMOUNT"}, codes(flags))
	})
}

func TestValidateLineItems(t *testing.T) {
	dateOfLoss := *datePtr("2024-03-15")
	base := InvoiceFacts{
		VendorName:  strPtr("ABC Roofing LLC"),
		InvoiceDate: datePtr("2024-03-20"),
		TotalAmount: f64Ptr(60_500.50),
	}

	t.Run("one flag even when several items exceed", func(t *testing.T) {
		inv := base
		inv.LineItems = json.RawMessage(`[
			{"description":"Roof replacement","amount":30000},
			{"description":"Structural repair","amount":28000},
			{"description":"Cleanup","amount":2500.50}
		]`)
		flags := Validate(inv, dateOfLoss)
		require.Equal(t, []string{"LINE_ITEM_EXCEEDS_THRESHOLD"}, codes(flags))
		assert.Equal(t, "Line item exceeds $25,000 threshold", flags[0].Message)
	})

	t.Run("malformed json is ignored", func(t *testing.T) {
		inv := base
		inv.TotalAmount = f64Ptr(900.25)
		inv.LineItems = json.RawMessage(`{"not":"a list"`)
		assert.Empty(t, Validate(inv, dateOfLoss))
	})

	t.Run("items without amounts are ignored", func(t *testing.T) {
		inv := base
		inv.TotalAmount = f64Ptr(900.25)
		inv.LineItems = json.RawMessage(`[{"description":"labor"}]`)
		assert.Empty(t, Validate(inv, dateOfLoss))
	})
}

func TestValidateIsDeterministic(t *testing.T) {
	inv := InvoiceFacts{
		InvoiceDate: datePtr("2024-03-10"),
		TotalAmount: f64Ptr(101_000),
		LineItems:   json.RawMessage(`[{"amount":26000}]`),
	}
	dateOfLoss := *datePtr("2024-03-15")

	first := Validate(inv, dateOfLoss)
	second := Validate(inv, dateOfLoss)
	assert.Equal(t, first, second)
	require.Equal(t, []string{
		"MISSING_VENDOR",
		"INVOICE_BEFORE_LOSS",
		"AMOUNT_EXCEEDS_THRESHOLD",
		"SUSPICIOUS_ROUND_AMOUNT",
		"LINE_ITEM_EXCEEDS_THRESHOLD",
	}, codes(first))
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, constants.ValidationPassed, DeriveStatus(nil))
	assert.Equal(t, constants.ValidationFlagged, DeriveStatus([]entity.ValidationFlag{
		{Severity: constants.SeverityWarning},
		{Severity: constants.SeverityInfo},
	}))
	assert.Equal(t, constants.ValidationFailed, DeriveStatus([]entity.ValidationFlag{
		{Severity: constants.SeverityWarning},
		{Severity: constants.SeverityError},
	}))
}
