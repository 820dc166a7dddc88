package constants

// Validation rule thresholds. These mirror the adjuster desk rules and are
// referenced by the validation engine; tune here, not in the rule logic.
const (
	// MaxInvoiceAmount is the total above which an invoice is flagged for review.
	MaxInvoiceAmount = 100_000.0
	// MaxLineItemAmount is the single-line-item total above which a warning fires.
	MaxLineItemAmount = 25_000.0
	// MinInvoiceDateDaysAfterLoss is the earliest acceptable invoice date,
	// in whole days relative to the date of loss.
	MinInvoiceDateDaysAfterLoss = 0
	// MaxInvoiceDateDaysAfterLoss is the latest invoice date before an
	// age warning, in whole days after the date of loss.
	MaxInvoiceDateDaysAfterLoss = 365
	// SuspiciousRoundAmountThreshold is the minimum total at which exact
	// multiples of $1000 are annotated for verification.
	SuspiciousRoundAmountThreshold = 1_000.0
)

// Simplified coverage constants, used when no adjuster-model analysis ran
// and by the deterministic fallback.
const (
	// CoverageRate is the share of the invoice total assumed covered.
	CoverageRate = 0.85
	// DepreciationRate is the flat ACV depreciation applied to the covered amount.
	DepreciationRate = 0.10
	// PolicyDeductible is the fixed per-claim deductible.
	PolicyDeductible = 1_000.0
)
