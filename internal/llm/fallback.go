package llm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/internal/coverage"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

// fallbackConfidence is the fixed confidence score of a deterministic
// fallback analysis.
const fallbackConfidence = 30

// fallbackAnalysis builds a fully deterministic analysis from the invoice
// data alone, for when the adjuster model is unreachable or keeps returning
// unparseable output. Coverage numbers come from the simplified calculator
// applied to the summed invoice totals; the recommendation is always a
// manual review.
func fallbackAnalysis(invoices []InvoiceData) entity.LLMClaimAnalysis {
	var total float64
	for _, inv := range invoices {
		if inv.TotalAmount != nil {
			total += *inv.TotalAmount
		}
	}
	b := coverage.Simplified(total)

	var assessments []entity.LineItemAssessment
	for _, inv := range invoices {
		for _, item := range inv.LineItems {
			desc := item.Description
			if desc == "" {
				desc = "Unknown item"
			}
			amount := 0.0
			if item.Amount != nil {
				amount = *item.Amount
			}
			assessments = append(assessments, entity.LineItemAssessment{
				Description:    desc,
				InvoicedAmount: amount,
				AssessedAmount: amount,
				Category:       "other",
				IsCovered:      true,
				Reasoning:      "Assessed using simplified rules (AI analysis unavailable)",
			})
		}
	}

	return entity.LLMClaimAnalysis{
		CoverageAnalysis: entity.CoverageAnalysis{
			CoveredAmount:    b.CoveredAmount,
			NonCoveredAmount: b.NonCoveredAmount,
			Depreciation:     b.Depreciation,
			Deductible:       b.Deductible,
			NetPayable:       b.RecommendedPayout,
			CoverageNotes:    []string{"AI analysis unavailable - using simplified 85% coverage estimate"},
		},
		LineItemAssessments: assessments,
		ValidationFlags: []entity.ValidationFlag{{
			Code:     "LLM_UNAVAILABLE",
			Severity: constants.SeverityWarning,
			Message:  "AI claims adjuster analysis was unavailable. Using simplified assessment rules.",
		}},
		DamageAssessment: entity.DamageAssessment{
			ObservedDamageTypes:    []string{"Unable to assess - AI unavailable"},
			SeverityLevel:          "moderate",
			ConsistentWithCause:    true,
			ConsistencyNotes:       "Unable to verify cause-of-loss consistency without AI analysis",
			AdditionalObservations: []string{},
		},
		RecommendedAction: "manual_review",
		DepreciationAnalysis: entity.DepreciationAnalysis{
			Rate:      constants.DepreciationRate,
			Method:    "flat-rate",
			Reasoning: "Default 10% depreciation applied (AI analysis unavailable)",
		},
		AdjusterNarrative: fmt.Sprintf(
			"This claim requires manual review. The automated AI analysis was unavailable, and a simplified assessment has been generated using default coverage rules. Total invoiced amount: $%s. Estimated net payable: $%s.",
			formatAmount(total), formatAmount(b.RecommendedPayout)),
		ConfidenceScore: fallbackConfidence,
	}
}

// formatAmount renders a dollar amount with thousands separators, dropping
// a trailing ".00" the way the narrative copy expects.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")

	dot := strings.IndexByte(s, '.')
	intPart := s
	fracPart := ""
	if dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups[0:]...)
	out := strings.Join(groups, ",") + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
