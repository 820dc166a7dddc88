package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysisJSON = `{
	"coverageAnalysis": {
		"coveredAmount": 8500,
		"nonCoveredAmount": 1500,
		"depreciation": 850,
		"deductible": 1000,
		"netPayable": 6650,
		"coverageNotes": ["Roof repair covered under dwelling coverage"]
	},
	"lineItemAssessments": [
		{
			"description": "Shingle replacement",
			"invoicedAmount": 6000,
			"assessedAmount": 5800,
			"category": "roofing",
			"isCovered": true,
			"reasoning": "Consistent with wind damage"
		}
	],
	"validationFlags": [],
	"damageAssessment": {
		"observedDamageTypes": ["wind damage to roof"],
		"severityLevel": "moderate",
		"consistentWithCause": true,
		"consistencyNotes": "Damage pattern matches reported windstorm",
		"additionalObservations": []
	},
	"recommendedAction": "approve_with_adjustment",
	"depreciationAnalysis": {
		"rate": 0.1,
		"method": "age-based",
		"reasoning": "Roof is roughly ten years old"
	},
	"adjusterNarrative": "The claim is consistent with the reported loss.",
	"confidenceScore": 88
}`

// scriptedCompleter returns queued responses in order, then errors.
type scriptedCompleter struct {
	responses []string
	errs      []error
	requests  []ChatRequest
}

func (c *scriptedCompleter) Complete(_ context.Context, req ChatRequest) (string, error) {
	c.requests = append(c.requests, req)
	i := len(c.requests) - 1
	if i >= len(c.responses) {
		return "", errors.New("no more scripted responses")
	}
	var err error
	if i < len(c.errs) {
		err = c.errs[i]
	}
	return c.responses[i], err
}

func testClaim() ClaimContext {
	return ClaimContext{
		ClaimNumber:     "CLM-2024-0001",
		PolicyNumber:    "HO-556677",
		ClaimantName:    "Jordan Velasquez",
		PropertyAddress: "12 Main St, Springfield",
		DateOfLoss:      "2024-03-15",
		CauseOfLoss:     "wind",
	}
}

func testInvoices() []InvoiceData {
	total := 10_000.0
	amount := 6000.0
	vendor := "ABC Roofing LLC"
	return []InvoiceData{{
		VendorName:  &vendor,
		TotalAmount: &total,
		LineItems: []InvoiceLineItem{{
			Description: "Shingle replacement",
			Amount:      &amount,
		}},
	}}
}

func TestAnalyzeValidFirstAttempt(t *testing.T) {
	client := &scriptedCompleter{responses: []string{validAnalysisJSON}}
	adjuster := NewAdjuster(client, nil)

	got := adjuster.Analyze(context.Background(), testClaim(), testInvoices(), nil)

	require.Len(t, client.requests, 1)
	assert.Equal(t, systemPrompt, client.requests[0].System)
	assert.InDelta(t, defaultTemperature, client.requests[0].Temperature, 0.001)

	assert.Equal(t, "approve_with_adjustment", got.RecommendedAction)
	assert.InDelta(t, 88, got.ConfidenceScore, 0.001)
	assert.InDelta(t, 8500, got.CoverageAnalysis.CoveredAmount, 0.001)
	assert.Empty(t, got.ValidationFlags)
}

func TestAnalyzeStripsCodeFences(t *testing.T) {
	client := &scriptedCompleter{responses: []string{"```json\n" + validAnalysisJSON + "\n```"}}
	adjuster := NewAdjuster(client, nil)

	got := adjuster.Analyze(context.Background(), testClaim(), testInvoices(), nil)

	require.Len(t, client.requests, 1)
	assert.Equal(t, "approve_with_adjustment", got.RecommendedAction)
}

func TestAnalyzeRetriesOnceOnParseFailure(t *testing.T) {
	client := &scriptedCompleter{responses: []string{
		"Sure! Here is my assessment of the claim.",
		validAnalysisJSON,
	}}
	adjuster := NewAdjuster(client, nil)

	got := adjuster.Analyze(context.Background(), testClaim(), testInvoices(), nil)

	require.Len(t, client.requests, 2)
	retry := client.requests[1]
	assert.Equal(t, systemPrompt+strictSuffix, retry.System)
	assert.InDelta(t, retryTemperature, retry.Temperature, 0.001)

	assert.Equal(t, "approve_with_adjustment", got.RecommendedAction)
	assert.InDelta(t, 88, got.ConfidenceScore, 0.001)
}

func TestAnalyzeFallsBackAfterTwoParseFailures(t *testing.T) {
	client := &scriptedCompleter{responses: []string{
		`{"coverageAnalysis": {}}`, // missing required fields
		"still not json",
	}}
	adjuster := NewAdjuster(client, nil)

	got := adjuster.Analyze(context.Background(), testClaim(), testInvoices(), nil)

	require.Len(t, client.requests, 2)
	assert.Equal(t, "manual_review", got.RecommendedAction)
	assert.InDelta(t, float64(fallbackConfidence), got.ConfidenceScore, 0.001)
	require.Len(t, got.ValidationFlags, 1)
	assert.Equal(t, "LLM_UNAVAILABLE", got.ValidationFlags[0].Code)
	assert.Equal(t, "warning", got.ValidationFlags[0].Severity)

	// simplified coverage math over the $10,000 invoice total
	assert.InDelta(t, 8500, got.CoverageAnalysis.CoveredAmount, 0.001)
	assert.InDelta(t, 6650, got.CoverageAnalysis.NetPayable, 0.001)
}

func TestAnalyzeFallsBackImmediatelyOnProviderError(t *testing.T) {
	client := &scriptedCompleter{
		responses: []string{""},
		errs:      []error{errors.New("dial tcp: connection refused")},
	}
	adjuster := NewAdjuster(client, nil)

	got := adjuster.Analyze(context.Background(), testClaim(), testInvoices(), nil)

	// provider failures get no retry
	require.Len(t, client.requests, 1)
	assert.Equal(t, "manual_review", got.RecommendedAction)
	require.Len(t, got.LineItemAssessments, 1)
	assert.Equal(t, "Shingle replacement", got.LineItemAssessments[0].Description)
	assert.Equal(t, "other", got.LineItemAssessments[0].Category)
	assert.True(t, got.LineItemAssessments[0].IsCovered)
}

func TestFallbackNarrativeAmounts(t *testing.T) {
	got := fallbackAnalysis(testInvoices())

	assert.Contains(t, got.AdjusterNarrative, "Total invoiced amount: $10,000.")
	assert.Contains(t, got.AdjusterNarrative, "Estimated net payable: $6,650.")
	assert.InDelta(t, 0.1, got.DepreciationAnalysis.Rate, 0.001)
	assert.Equal(t, "flat-rate", got.DepreciationAnalysis.Method)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "950.50", formatAmount(950.5))
	assert.Equal(t, "1,000", formatAmount(1000))
	assert.Equal(t, "1,234,567.89", formatAmount(1234567.89))
	assert.Equal(t, "-12,500", formatAmount(-12500))
}

func TestBuildUserPromptMentionsEvidence(t *testing.T) {
	withImages := buildUserPrompt(testClaim(), testInvoices(), true)
	without := buildUserPrompt(testClaim(), testInvoices(), false)

	assert.Contains(t, withImages, "CLM-2024-0001")
	assert.Contains(t, withImages, "ABC Roofing LLC")
	assert.NotEqual(t, withImages, without)
}
