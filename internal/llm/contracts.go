package llm

import "context"

// ClaimContext identifies the claim for the adjuster model.
type ClaimContext struct {
	ClaimNumber     string
	PolicyNumber    string
	ClaimantName    string
	PropertyAddress string
	DateOfLoss      string // YYYY-MM-DD
	CauseOfLoss     string
}

// InvoiceData is the extracted invoice view passed to the adjuster model.
// Nil means the field was never extracted.
type InvoiceData struct {
	VendorName    *string
	VendorAddress *string
	InvoiceNumber *string
	InvoiceDate   *string // YYYY-MM-DD
	TotalAmount   *float64
	LineItems     []InvoiceLineItem
}

type InvoiceLineItem struct {
	Description string
	Quantity    *float64
	UnitPrice   *float64
	Amount      *float64
}

// EvidenceImage is one damage photo attached inline to the model request.
// Images arrive already size-checked; this package only forwards them.
type EvidenceImage struct {
	Base64   string
	MimeType string
	FileName string
}

// ChatRequest is one round trip to the model provider.
type ChatRequest struct {
	System      string
	Text        string
	Images      []EvidenceImage
	MaxTokens   int
	Temperature float32
}

// ChatCompleter is the model provider interface the adapter depends on.
// The response is free text expected to be a single JSON object, possibly
// wrapped in code fences.
type ChatCompleter interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}
