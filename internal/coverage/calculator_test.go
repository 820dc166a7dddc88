package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

func TestSimplified(t *testing.T) {
	b := Simplified(10_000)

	assert.InDelta(t, 8500, b.CoveredAmount, 0.001)
	assert.InDelta(t, 1500, b.NonCoveredAmount, 0.001)
	assert.InDelta(t, 850, b.Depreciation, 0.001)
	assert.InDelta(t, 1000, b.Deductible, 0.001)
	assert.InDelta(t, 6650, b.RecommendedPayout, 0.001)
}

func TestSimplifiedPayoutNeverNegative(t *testing.T) {
	// 85% of $500 minus depreciation is well under the deductible
	b := Simplified(500)
	assert.Zero(t, b.RecommendedPayout)

	b = Simplified(0)
	assert.Zero(t, b.RecommendedPayout)
	assert.Zero(t, b.CoveredAmount)
}

func TestSimplifiedComponentsSum(t *testing.T) {
	for _, total := range []float64{1, 999.99, 12_345.67, 100_000} {
		b := Simplified(total)
		assert.InDelta(t, total, b.CoveredAmount+b.NonCoveredAmount, 0.001)
	}
}

func TestFromAnalysisRecomputesPayout(t *testing.T) {
	// the model's netPayable is ignored in favor of the components
	b := FromAnalysis(entity.CoverageAnalysis{
		CoveredAmount:    9000,
		NonCoveredAmount: 1000,
		Depreciation:     500,
		Deductible:       1000,
		NetPayable:       -125,
	})
	assert.InDelta(t, 7500, b.RecommendedPayout, 0.001)

	// components that net below zero clamp to zero
	b = FromAnalysis(entity.CoverageAnalysis{
		CoveredAmount: 800,
		Depreciation:  80,
		Deductible:    1000,
		NetPayable:    5000,
	})
	assert.Zero(t, b.RecommendedPayout)
}

func TestAdjudicate(t *testing.T) {
	assert.Equal(t, constants.RecommendedApprove, Adjudicate(Simplified(10_000)))

	// nothing payable and non-covered dominates
	assert.Equal(t, constants.RecommendedDeny, Adjudicate(Breakdown{
		CoveredAmount:    400,
		NonCoveredAmount: 600,
	}))

	// nothing payable but mostly covered goes to review
	assert.Equal(t, constants.RecommendedReview, Adjudicate(Breakdown{
		CoveredAmount:    600,
		NonCoveredAmount: 400,
	}))
}
