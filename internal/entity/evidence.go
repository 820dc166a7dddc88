package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClaimEvidence represents one damage photo attached to a claim.
type ClaimEvidence struct {
	ID           uuid.UUID `json:"id"`
	ClaimID      uuid.UUID `json:"claim_id"`
	FileName     string    `json:"file_name"`
	FileType     string    `json:"file_type"`
	FilePath     string    `json:"file_path"`
	FileSize     int       `json:"file_size"`
	EvidenceType string    `json:"evidence_type"`
	CreatedAt    time.Time `json:"created_at"`
}
