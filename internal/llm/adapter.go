package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

const (
	defaultMaxTokens   = 4096
	defaultTemperature = 0.3
	retryTemperature   = 0.1
)

// Adjuster turns claim documentation into an adjuster analysis. Every
// invocation terminates in a valid analysis: the model's own when it returns
// conforming JSON (on the first attempt or the single strict retry), the
// deterministic fallback otherwise. Adjuster never returns an error and
// never mutates persisted state; failure shows up as the LLM_UNAVAILABLE
// flag and a lowered confidence score in the result.
type Adjuster struct {
	client ChatCompleter
	logger *slog.Logger
}

func NewAdjuster(client ChatCompleter, logger *slog.Logger) *Adjuster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adjuster{client: client, logger: logger}
}

// Analyze runs one adjuster-model round trip for the whole claim: all
// invoices plus all evidence images in a single request.
func (a *Adjuster) Analyze(ctx context.Context, claim ClaimContext, invoices []InvoiceData, images []EvidenceImage) entity.LLMClaimAnalysis {
	start := time.Now()

	req := ChatRequest{
		System:      systemPrompt,
		Text:        buildUserPrompt(claim, invoices, len(images) > 0),
		Images:      images,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	}

	content, err := a.client.Complete(ctx, req)
	if err != nil || content == "" {
		a.logger.Warn("llm.analyze.unavailable",
			"claim_number", claim.ClaimNumber,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fallbackAnalysis(invoices)
	}

	analysis, parseErr := parseAnalysis(content)
	if parseErr == nil {
		a.logger.Info("llm.analyze.ok",
			"claim_number", claim.ClaimNumber,
			"recommended_action", analysis.RecommendedAction,
			"confidence", analysis.ConfidenceScore,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return analysis
	}

	// Parse failures get exactly one retry with a stricter instruction and a
	// lower temperature. Provider failures do not: the model is reachable,
	// it just rambled.
	a.logger.Warn("llm.analyze.parse_failed",
		"claim_number", claim.ClaimNumber,
		"error", parseErr,
	)

	retry := req
	retry.System = systemPrompt + strictSuffix
	retry.Temperature = retryTemperature

	content, err = a.client.Complete(ctx, retry)
	if err == nil && content != "" {
		if analysis, parseErr = parseAnalysis(content); parseErr == nil {
			a.logger.Info("llm.analyze.retry_ok",
				"claim_number", claim.ClaimNumber,
				"recommended_action", analysis.RecommendedAction,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return analysis
		}
	}

	a.logger.Warn("llm.analyze.fallback",
		"claim_number", claim.ClaimNumber,
		"complete_error", err,
		"parse_error", parseErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fallbackAnalysis(invoices)
}
