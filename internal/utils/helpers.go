package utils

import (
	"fmt"
	"time"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent"
	claimspb "github.com/insurtech-labs/claims-adjudicator/gen/proto/claims/v1"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func moneyOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToClaim(e *ent.Claim) *entity.Claim {
	return &entity.Claim{
		ID:              e.ID,
		ClaimNumber:     e.ClaimNumber,
		PolicyNumber:    e.PolicyNumber,
		ClaimantName:    e.ClaimantName,
		PropertyAddress: e.PropertyAddress,
		DateOfLoss:      e.DateOfLoss,
		CauseOfLoss:     constants.CauseOfLoss(e.CauseOfLoss),
		Status:          constants.ClaimStatus(e.Status),
		Analysis:        e.Analysis,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToInvoice(e *ent.ClaimInvoice) *entity.ClaimInvoice {
	inv := &entity.ClaimInvoice{
		ID:                e.ID,
		ClaimID:           e.ClaimID,
		FileName:          e.FileName,
		FileType:          e.FileType,
		FileSize:          e.FileSize,
		VendorName:        e.VendorName,
		VendorAddress:     e.VendorAddress,
		VendorPhone:       e.VendorPhone,
		InvoiceNumber:     e.InvoiceNumber,
		InvoiceDate:       e.InvoiceDate,
		DueDate:           e.DueDate,
		TotalAmount:       e.TotalAmount,
		Currency:          e.Currency,
		LineItems:         e.LineItems,
		OCRRawData:        e.OcrRawData,
		OCRConfidence:     e.OcrConfidence,
		ProcessedAt:       e.ProcessedAt,
		ValidationStatus:  constants.ValidationStatus(e.ValidationStatus),
		ValidationFlags:   e.ValidationFlags,
		CoveredAmount:     e.CoveredAmount,
		NonCoveredAmount:  e.NonCoveredAmount,
		Depreciation:      e.Depreciation,
		Deductible:        e.Deductible,
		RecommendedPayout: e.RecommendedPayout,
		Analysis:          e.Analysis,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if e.AdjudicationStatus != nil {
		s := constants.AdjudicationStatus(*e.AdjudicationStatus)
		inv.AdjudicationStatus = &s
	}
	return inv
}

func ToEvidence(e *ent.ClaimEvidence) *entity.ClaimEvidence {
	return &entity.ClaimEvidence{
		ID:           e.ID,
		ClaimID:      e.ClaimID,
		FileName:     e.FileName,
		FileType:     e.FileType,
		FilePath:     e.FilePath,
		FileSize:     e.FileSize,
		EvidenceType: e.EvidenceType,
		CreatedAt:    e.CreatedAt,
	}
}

func ToPBClaim(c *entity.Claim) *claimspb.Claim {
	return &claimspb.Claim{
		Id:              c.ID.String(),
		ClaimNumber:     c.ClaimNumber,
		PolicyNumber:    c.PolicyNumber,
		ClaimantName:    c.ClaimantName,
		PropertyAddress: c.PropertyAddress,
		DateOfLoss:      c.DateOfLoss.Format("2006-01-02"),
		CauseOfLoss:     string(c.CauseOfLoss),
		Status:          string(c.Status),
		AnalysisJson:    string(c.Analysis),
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBInvoice(i *entity.ClaimInvoice) *claimspb.Invoice {
	flags := make([]*claimspb.ValidationFlag, 0, len(i.ValidationFlags))
	for _, f := range i.ValidationFlags {
		flags = append(flags, &claimspb.ValidationFlag{
			Code:     f.Code,
			Severity: f.Severity,
			Message:  f.Message,
			Field:    f.Field,
		})
	}

	out := &claimspb.Invoice{
		Id:                 i.ID.String(),
		ClaimId:            i.ClaimID.String(),
		FileName:           i.FileName,
		FileType:           i.FileType,
		FileSize:           int32(i.FileSize),
		VendorName:         strOrEmpty(i.VendorName),
		VendorAddress:      strOrEmpty(i.VendorAddress),
		VendorPhone:        strOrEmpty(i.VendorPhone),
		InvoiceNumber:      strOrEmpty(i.InvoiceNumber),
		InvoiceDate:        dateOrEmpty(i.InvoiceDate),
		DueDate:            dateOrEmpty(i.DueDate),
		TotalAmount:        moneyOrEmpty(i.TotalAmount),
		Currency:           i.Currency,
		LineItemsJson:      string(i.LineItems),
		ProcessedAt:        timeOrEmpty(i.ProcessedAt),
		ValidationStatus:   string(i.ValidationStatus),
		ValidationFlags:    flags,
		CoveredAmount:      moneyOrEmpty(i.CoveredAmount),
		NonCoveredAmount:   moneyOrEmpty(i.NonCoveredAmount),
		Depreciation:       moneyOrEmpty(i.Depreciation),
		Deductible:         moneyOrEmpty(i.Deductible),
		RecommendedPayout:  moneyOrEmpty(i.RecommendedPayout),
		AnalysisJson:       string(i.Analysis),
		CreatedAt:          i.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          i.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if i.OCRConfidence != nil {
		out.OcrConfidence = *i.OCRConfidence
	}
	if i.AdjudicationStatus != nil {
		out.AdjudicationStatus = string(*i.AdjudicationStatus)
	}
	return out
}
