package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-labs/claims-adjudicator/internal/ocr"
)

func sp(s string) *string   { return &s }
func fp(v float64) *float64 { return &v }

func resultWithFields(fields map[string]ocr.Field) *ocr.AnalyzeResult {
	return &ocr.AnalyzeResult{
		Status: "succeeded",
		AnalyzeResult: &ocr.AnalyzeBody{
			Documents: []ocr.Document{{Fields: fields}},
		},
	}
}

func TestParseInvoiceFieldsFull(t *testing.T) {
	conf := float32(0.97)
	res := resultWithFields(map[string]ocr.Field{
		"VendorName":    {ValueString: sp("ABC Roofing LLC")},
		"VendorAddress": {Content: "12 Main St, Springfield"},
		"VendorPhone":   {ValuePhone: sp("+15551234567")},
		"InvoiceId":     {ValueString: sp("INV-1042")},
		"InvoiceDate":   {ValueDate: sp("2024-03-20")},
		"DueDate":       {Content: "04/19/2024"},
		"InvoiceTotal": {
			Confidence:    &conf,
			ValueCurrency: &ocr.Currency{Amount: 8450.75, CurrencyCode: "USD"},
		},
		"Items": {
			ValueArray: []ocr.Field{
				{ValueObject: map[string]ocr.Field{
					"Description": {ValueString: sp("Shingle replacement")},
					"Quantity":    {ValueNumber: fp(20)},
					"UnitPrice":   {ValueCurrency: &ocr.Currency{Amount: 300}},
					"Amount":      {ValueCurrency: &ocr.Currency{Amount: 6000}},
				}},
				{ValueObject: map[string]ocr.Field{
					"Description": {Content: "Debris removal"},
					"Amount":      {Content: "$2,450.75"},
				}},
			},
		},
	})

	got := ParseInvoiceFields(res)

	require.NotNil(t, got.VendorName)
	assert.Equal(t, "ABC Roofing LLC", *got.VendorName)
	require.NotNil(t, got.VendorAddress)
	assert.Equal(t, "12 Main St, Springfield", *got.VendorAddress)
	require.NotNil(t, got.VendorPhone)
	assert.Equal(t, "+15551234567", *got.VendorPhone)
	require.NotNil(t, got.InvoiceNumber)
	assert.Equal(t, "INV-1042", *got.InvoiceNumber)

	require.NotNil(t, got.InvoiceDate)
	assert.Equal(t, "2024-03-20", got.InvoiceDate.Format("2006-01-02"))
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2024-04-19", got.DueDate.Format("2006-01-02"))

	require.NotNil(t, got.TotalAmount)
	assert.InDelta(t, 8450.75, *got.TotalAmount, 0.001)
	assert.Equal(t, "USD", got.Currency)
	require.NotNil(t, got.Confidence)
	assert.InDelta(t, 0.97, float64(*got.Confidence), 0.001)

	require.Len(t, got.LineItems, 2)
	assert.Equal(t, "Shingle replacement", got.LineItems[0].Description)
	require.NotNil(t, got.LineItems[0].Quantity)
	assert.InDelta(t, 20, *got.LineItems[0].Quantity, 0.001)
	require.NotNil(t, got.LineItems[1].Amount)
	assert.InDelta(t, 2450.75, *got.LineItems[1].Amount, 0.001)
}

func TestParseInvoiceFieldsEmptyResult(t *testing.T) {
	for _, res := range []*ocr.AnalyzeResult{
		nil,
		{Status: "succeeded"},
		{Status: "succeeded", AnalyzeResult: &ocr.AnalyzeBody{}},
	} {
		got := ParseInvoiceFields(res)
		assert.Nil(t, got.VendorName)
		assert.Nil(t, got.TotalAmount)
		assert.Nil(t, got.LineItems)
		assert.Equal(t, "USD", got.Currency)
	}
}

func TestParseInvoiceFieldsCurrencyFallbacks(t *testing.T) {
	// typed number when no currency value is present
	got := ParseInvoiceFields(resultWithFields(map[string]ocr.Field{
		"InvoiceTotal": {ValueNumber: fp(1200.50)},
	}))
	require.NotNil(t, got.TotalAmount)
	assert.InDelta(t, 1200.50, *got.TotalAmount, 0.001)
	assert.Equal(t, "USD", got.Currency)

	// raw content as a last resort
	got = ParseInvoiceFields(resultWithFields(map[string]ocr.Field{
		"InvoiceTotal": {Content: "$3,000.00"},
	}))
	require.NotNil(t, got.TotalAmount)
	assert.InDelta(t, 3000, *got.TotalAmount, 0.001)

	// unparseable content stays nil
	got = ParseInvoiceFields(resultWithFields(map[string]ocr.Field{
		"InvoiceTotal": {Content: "n/a"},
	}))
	assert.Nil(t, got.TotalAmount)
}

func TestParseInvoiceFieldsSkipsEmptyLineItems(t *testing.T) {
	got := ParseInvoiceFields(resultWithFields(map[string]ocr.Field{
		"Items": {
			ValueArray: []ocr.Field{
				{}, // no valueObject at all
				{ValueObject: map[string]ocr.Field{}},
				{ValueObject: map[string]ocr.Field{
					"Description": {ValueString: sp("Labor")},
				}},
			},
		},
	}))

	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Labor", got.LineItems[0].Description)

	got = ParseInvoiceFields(resultWithFields(map[string]ocr.Field{
		"Items": {ValueArray: []ocr.Field{}},
	}))
	assert.Nil(t, got.LineItems)
}

func TestParseLooseDateLayouts(t *testing.T) {
	for _, s := range []string{"2024-03-20", "03/20/2024", "3/20/2024", "March 20, 2024", "Mar 20, 2024"} {
		got := parseLooseDate(s)
		require.NotNil(t, got, "layout %q", s)
		assert.Equal(t, "2024-03-20", got.Format("2006-01-02"))
	}
	assert.Nil(t, parseLooseDate(""))
	assert.Nil(t, parseLooseDate("sometime in March"))
}
