package constants

// ClaimStatus is the canonical lifecycle status for rows in claims.
type ClaimStatus string

// Stable values (store these exact strings in DB).
const (
	ClaimStatusPending    ClaimStatus = "PENDING"     // created, nothing processed yet
	ClaimStatusInProgress ClaimStatus = "IN_PROGRESS" // set when the first document upload begins
	ClaimStatusApproved   ClaimStatus = "APPROVED"    // terminal, set by review
	ClaimStatusDenied     ClaimStatus = "DENIED"      // terminal, set by review
	ClaimStatusReview     ClaimStatus = "UNDER_REVIEW"
	ClaimStatusClosed     ClaimStatus = "CLOSED"
)

// ClaimStatuses lists every accepted claim status for enum validation.
var ClaimStatuses = []string{
	string(ClaimStatusPending),
	string(ClaimStatusInProgress),
	string(ClaimStatusApproved),
	string(ClaimStatusDenied),
	string(ClaimStatusReview),
	string(ClaimStatusClosed),
}

// ValidationStatus summarizes the flags attached to an invoice.
// FAILED if any error flag, else FLAGGED if any warning flag, else PASSED.
type ValidationStatus string

const (
	ValidationPending ValidationStatus = "PENDING"
	ValidationPassed  ValidationStatus = "PASSED"
	ValidationFlagged ValidationStatus = "FLAGGED"
	ValidationFailed  ValidationStatus = "FAILED"
)

// ValidationStatuses lists every accepted validation status for enum validation.
var ValidationStatuses = []string{
	string(ValidationPending),
	string(ValidationPassed),
	string(ValidationFlagged),
	string(ValidationFailed),
}

// AdjudicationStatus is the payout recommendation derived from coverage numbers.
type AdjudicationStatus string

const (
	RecommendedApprove AdjudicationStatus = "RECOMMENDED_APPROVE"
	RecommendedDeny    AdjudicationStatus = "RECOMMENDED_DENY"
	RecommendedReview  AdjudicationStatus = "RECOMMENDED_REVIEW"
)

// Severity levels for validation flags.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)
