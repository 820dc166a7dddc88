// Package ocr is the client for the external document-intelligence service.
// Analysis is asynchronous on the provider side: submit the document, then
// poll the returned operation handle until it settles.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	apiVersion = "2023-07-31"
	modelID    = "prebuilt-invoice"
)

// Analyzer is the interface the pipeline depends on.
type Analyzer interface {
	// AnalyzeInvoice submits document bytes and blocks until the provider
	// settles. It returns the decoded result and the raw response payload
	// for audit storage.
	AnalyzeInvoice(ctx context.Context, doc []byte, mimeType string) (*AnalyzeResult, json.RawMessage, error)
}

// Config for the document-intelligence client.
type Config struct {
	Endpoint string // e.g. https://<resource>.cognitiveservices.azure.com
	APIKey   string
	Timeout  time.Duration // per-HTTP-request timeout

	// PollInterval and MaxPollAttempts bound the result poll loop.
	// Defaults: 2s and 30 attempts (about 60 seconds total).
	PollInterval    time.Duration
	MaxPollAttempts int

	// BreakerDisabled turns off the circuit breaker around the analyze call.
	BreakerDisabled bool
}

type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*AnalyzeResult]
	logger  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxPollAttempts <= 0 {
		cfg.MaxPollAttempts = 30
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
	if !cfg.BreakerDisabled {
		c.breaker = gobreaker.NewCircuitBreaker[*AnalyzeResult](gobreaker.Settings{
			Name:    "document-intelligence",
			Timeout: 60 * time.Second,
		})
	}
	return c
}

func (c *Client) AnalyzeInvoice(ctx context.Context, doc []byte, mimeType string) (*AnalyzeResult, json.RawMessage, error) {
	start := time.Now()
	var raw json.RawMessage

	analyze := func() (*AnalyzeResult, error) {
		opURL, err := c.submit(ctx, doc, mimeType)
		if err != nil {
			return nil, err
		}
		res, rawBody, err := c.poll(ctx, opURL)
		if err != nil {
			return nil, err
		}
		raw = rawBody
		return res, nil
	}

	var res *AnalyzeResult
	var err error
	if c.breaker != nil {
		res, err = c.breaker.Execute(analyze)
	} else {
		res, err = analyze()
	}
	if err != nil {
		c.logger.Error("ocr.analyze.failed",
			"mime_type", mimeType,
			"doc_bytes", len(doc),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, err
	}

	c.logger.Info("ocr.analyze.ok",
		"mime_type", mimeType,
		"doc_bytes", len(doc),
		"status", res.Status,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, raw, nil
}

// submit posts the document and returns the operation handle URL from the
// Operation-Location header.
func (c *Client) submit(ctx context.Context, doc []byte, mimeType string) (string, error) {
	u := fmt.Sprintf("%s/formrecognizer/documentModels/%s:analyze?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), modelID, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(doc))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("document analysis submit: %w", err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("document analysis submit: status %d: %s", resp.StatusCode, string(body))
	}

	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("document analysis submit: no operation location in response")
	}
	return opURL, nil
}

// poll fetches the operation handle on a fixed interval until the provider
// reports a settled status, the attempt cap is reached, or ctx is done.
// Exhausting the cap is a timeout, reported distinctly from a provider
// failure status.
func (c *Client) poll(ctx context.Context, opURL string) (*AnalyzeResult, json.RawMessage, error) {
	var result *AnalyzeResult
	var raw json.RawMessage

	for attempt := 0; attempt < c.cfg.MaxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
		if err != nil {
			return nil, nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, nil, fmt.Errorf("document analysis poll: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		c.closeBody(resp.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("document analysis poll: read: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, nil, fmt.Errorf("document analysis poll: status %d: %s", resp.StatusCode, string(body))
		}

		var res AnalyzeResult
		if err := json.Unmarshal(body, &res); err != nil {
			return nil, nil, fmt.Errorf("document analysis poll: decode: %w", err)
		}
		result = &res
		raw = body

		if res.Status != "running" && res.Status != "notStarted" {
			break
		}
		c.logger.Debug("ocr.analyze.polling", "attempt", attempt+1, "status", res.Status)
	}

	if result == nil || result.Status == "running" || result.Status == "notStarted" {
		return nil, nil, fmt.Errorf("document analysis timed out after %d attempts", c.cfg.MaxPollAttempts)
	}
	if result.Status == "failed" {
		return nil, nil, fmt.Errorf("document analysis failed")
	}
	return result, raw, nil
}

func (c *Client) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.logger.Warn("ocr response body close error", "error", err)
	}
}
