package ocr

// AnalyzeResult is the document-intelligence response for one analyzed
// document. Only the fields this service reads are modeled; the full payload
// is retained verbatim on the invoice for audit.
type AnalyzeResult struct {
	Status        string       `json:"status"`
	AnalyzeResult *AnalyzeBody `json:"analyzeResult,omitempty"`
}

type AnalyzeBody struct {
	Documents []Document `json:"documents,omitempty"`
}

type Document struct {
	Fields map[string]Field `json:"fields,omitempty"`
}

// Field is one extracted field wrapper: a typed value plus the provider's
// confidence in it. Which value slot is populated depends on the field type.
type Field struct {
	Type          string           `json:"type,omitempty"`
	Content       string           `json:"content,omitempty"`
	Confidence    *float32         `json:"confidence,omitempty"`
	ValueString   *string          `json:"valueString,omitempty"`
	ValueDate     *string          `json:"valueDate,omitempty"`
	ValueNumber   *float64         `json:"valueNumber,omitempty"`
	ValuePhone    *string          `json:"valuePhoneNumber,omitempty"`
	ValueCurrency *Currency        `json:"valueCurrency,omitempty"`
	ValueArray    []Field          `json:"valueArray,omitempty"`
	ValueObject   map[string]Field `json:"valueObject,omitempty"`
}

type Currency struct {
	Amount         float64 `json:"amount"`
	CurrencyCode   string  `json:"currencyCode,omitempty"`
	CurrencySymbol string  `json:"currencySymbol,omitempty"`
}
