// Package extract normalizes the document-intelligence field bag into a flat
// invoice record. It is a pure transform: no state, no I/O.
package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
	"github.com/insurtech-labs/claims-adjudicator/internal/ocr"
)

// ParsedInvoiceData is the flat invoice record produced from one analyzed
// document. Every field is optional: the provider may omit any of them, and
// absence is a nil pointer, never a sentinel value. LineItems is nil (not an
// empty slice) when no line items were extracted; validation treats the two
// differently.
type ParsedInvoiceData struct {
	VendorName    *string
	VendorAddress *string
	VendorPhone   *string
	InvoiceNumber *string
	InvoiceDate   *time.Time
	DueDate       *time.Time
	TotalAmount   *float64
	Currency      string
	LineItems     []entity.LineItem
	// Confidence is the provider's confidence in the total-amount field,
	// used as the overall extraction confidence.
	Confidence *float32
}

// ParseInvoiceFields flattens the first analyzed document of res. A result
// with no documents yields an empty record with the default currency.
func ParseInvoiceFields(res *ocr.AnalyzeResult) ParsedInvoiceData {
	out := ParsedInvoiceData{Currency: "USD"}

	fields := documentFields(res)
	if fields == nil {
		return out
	}

	out.VendorName = stringValue(fields, "VendorName")
	out.VendorAddress = stringValue(fields, "VendorAddress")
	out.VendorPhone = phoneValue(fields, "VendorPhone")
	out.InvoiceNumber = stringValue(fields, "InvoiceId")
	out.InvoiceDate = dateValue(fields, "InvoiceDate")
	out.DueDate = dateValue(fields, "DueDate")

	if total, ok := fields["InvoiceTotal"]; ok {
		out.TotalAmount = amountOf(total)
		out.Confidence = total.Confidence
		if total.ValueCurrency != nil && total.ValueCurrency.CurrencyCode != "" {
			out.Currency = total.ValueCurrency.CurrencyCode
		}
	}

	if items, ok := fields["Items"]; ok {
		out.LineItems = lineItems(items)
	}

	return out
}

func documentFields(res *ocr.AnalyzeResult) map[string]ocr.Field {
	if res == nil || res.AnalyzeResult == nil || len(res.AnalyzeResult.Documents) == 0 {
		return nil
	}
	return res.AnalyzeResult.Documents[0].Fields
}

// lineItems maps the Items array field. Rows that carry no usable values are
// skipped; a fully empty array yields nil.
func lineItems(items ocr.Field) []entity.LineItem {
	var out []entity.LineItem
	for _, row := range items.ValueArray {
		if row.ValueObject == nil {
			continue
		}
		item := entity.LineItem{
			Quantity:  numberOf(row.ValueObject, "Quantity"),
			UnitPrice: currencyOf(row.ValueObject, "UnitPrice"),
			Amount:    currencyOf(row.ValueObject, "Amount"),
		}
		if desc := stringValue(row.ValueObject, "Description"); desc != nil {
			item.Description = *desc
		}
		if item.Description == "" && item.Quantity == nil && item.UnitPrice == nil && item.Amount == nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

func stringValue(fields map[string]ocr.Field, name string) *string {
	f, ok := fields[name]
	if !ok {
		return nil
	}
	if f.ValueString != nil && *f.ValueString != "" {
		return f.ValueString
	}
	if s := strings.TrimSpace(f.Content); s != "" {
		return &s
	}
	return nil
}

func phoneValue(fields map[string]ocr.Field, name string) *string {
	f, ok := fields[name]
	if !ok {
		return nil
	}
	if f.ValuePhone != nil && *f.ValuePhone != "" {
		return f.ValuePhone
	}
	if s := strings.TrimSpace(f.Content); s != "" {
		return &s
	}
	return nil
}

func dateValue(fields map[string]ocr.Field, name string) *time.Time {
	f, ok := fields[name]
	if !ok {
		return nil
	}
	if f.ValueDate != nil {
		if t, err := time.Parse("2006-01-02", *f.ValueDate); err == nil {
			return &t
		}
	}
	return parseLooseDate(f.Content)
}

// parseLooseDate tries the date formats invoices commonly print when the
// provider returned content without a typed value.
func parseLooseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "01/02/2006", "1/2/2006", "January 2, 2006", "Jan 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func amountOf(f ocr.Field) *float64 {
	if f.ValueCurrency != nil {
		v := f.ValueCurrency.Amount
		return &v
	}
	if f.ValueNumber != nil {
		return f.ValueNumber
	}
	return parseMoney(f.Content)
}

func currencyOf(fields map[string]ocr.Field, name string) *float64 {
	f, ok := fields[name]
	if !ok {
		return nil
	}
	return amountOf(f)
}

func numberOf(fields map[string]ocr.Field, name string) *float64 {
	f, ok := fields[name]
	if !ok {
		return nil
	}
	if f.ValueNumber != nil {
		return f.ValueNumber
	}
	return parseMoney(f.Content)
}

// parseMoney strips currency symbols and thousands separators.
func parseMoney(s string) *float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}
