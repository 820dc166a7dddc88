package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/insurtech-labs/claims-adjudicator/constants"
)

// Claim represents an insurance claim for data transfer between layers.
type Claim struct {
	ID              uuid.UUID             `json:"id"`
	ClaimNumber     string                `json:"claim_number"`
	PolicyNumber    string                `json:"policy_number"`
	ClaimantName    string                `json:"claimant_name"`
	PropertyAddress string                `json:"property_address"`
	DateOfLoss      time.Time             `json:"date_of_loss"`
	CauseOfLoss     constants.CauseOfLoss `json:"cause_of_loss"`
	Status          constants.ClaimStatus `json:"status"`
	// Analysis holds the latest adjuster-model analysis for the claim as a
	// whole, serialized verbatim for audit.
	Analysis  json.RawMessage `json:"analysis,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
