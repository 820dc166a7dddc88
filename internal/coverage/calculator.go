// Package coverage computes the financial breakdown of a claim invoice and
// derives the adjudication recommendation from it.
package coverage

import (
	"math"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

// Breakdown holds the coverage numbers persisted onto an invoice.
type Breakdown struct {
	CoveredAmount     float64
	NonCoveredAmount  float64
	Depreciation      float64
	Deductible        float64
	RecommendedPayout float64
}

// Simplified computes a coverage breakdown from the invoice total alone,
// using the flat desk rules. Used when no adjuster-model analysis ran, and
// by the deterministic fallback.
func Simplified(total float64) Breakdown {
	covered := total * constants.CoverageRate
	depreciation := covered * constants.DepreciationRate
	return Breakdown{
		CoveredAmount:     covered,
		NonCoveredAmount:  total - covered,
		Depreciation:      depreciation,
		Deductible:        constants.PolicyDeductible,
		RecommendedPayout: payout(covered, depreciation, constants.PolicyDeductible),
	}
}

// FromAnalysis converts an adjuster-model coverage block into a breakdown.
// The payout is recomputed from the components rather than trusting the
// model's netPayable, so the never-negative contract holds regardless of
// what the model returned.
func FromAnalysis(a entity.CoverageAnalysis) Breakdown {
	return Breakdown{
		CoveredAmount:     a.CoveredAmount,
		NonCoveredAmount:  a.NonCoveredAmount,
		Depreciation:      a.Depreciation,
		Deductible:        a.Deductible,
		RecommendedPayout: payout(a.CoveredAmount, a.Depreciation, a.Deductible),
	}
}

// Adjudicate derives the recommendation from a breakdown: approve when
// anything is payable, deny when the non-covered share dominates, otherwise
// send to review.
func Adjudicate(b Breakdown) constants.AdjudicationStatus {
	switch {
	case b.RecommendedPayout > 0:
		return constants.RecommendedApprove
	case b.NonCoveredAmount > b.CoveredAmount:
		return constants.RecommendedDeny
	default:
		return constants.RecommendedReview
	}
}

func payout(covered, depreciation, deductible float64) float64 {
	return math.Max(0, covered-depreciation-deductible)
}
