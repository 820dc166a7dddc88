package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(endpoint string, maxAttempts int) *Client {
	return NewClient(Config{
		Endpoint:        endpoint,
		APIKey:          "test-key",
		Timeout:         5 * time.Second,
		PollInterval:    time.Millisecond,
		MaxPollAttempts: maxAttempts,
		BreakerDisabled: true,
	}, nil)
}

// analyzeServer simulates the provider: a submit endpoint handing out an
// operation URL, and a poll endpoint scripted per attempt.
func analyzeServer(t *testing.T, pollResponses []string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var polls atomic.Int32

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("POST /formrecognizer/documentModels/prebuilt-invoice:analyze", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
		assert.Equal(t, "2023-07-31", r.URL.Query().Get("api-version"))
		w.Header().Set("Operation-Location", srv.URL+"/operations/op-1")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /operations/op-1", func(w http.ResponseWriter, r *http.Request) {
		n := int(polls.Add(1)) - 1
		if n >= len(pollResponses) {
			n = len(pollResponses) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, pollResponses[n])
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &polls
}

func TestAnalyzeInvoiceSucceedsAfterPolling(t *testing.T) {
	succeeded := `{
		"status": "succeeded",
		"analyzeResult": {
			"documents": [{"fields": {"VendorName": {"valueString": "ABC Roofing LLC"}}}]
		}
	}`
	srv, polls := analyzeServer(t, []string{
		`{"status": "notStarted"}`,
		`{"status": "running"}`,
		succeeded,
	})

	c := testClient(srv.URL, 10)
	res, raw, err := c.AnalyzeInvoice(context.Background(), []byte("%PDF-1.7"), "application/pdf")
	require.NoError(t, err)
	assert.EqualValues(t, 3, polls.Load())

	assert.Equal(t, "succeeded", res.Status)
	require.NotNil(t, res.AnalyzeResult)
	require.Len(t, res.AnalyzeResult.Documents, 1)

	// raw payload is the final poll body, verbatim
	var decoded AnalyzeResult
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "succeeded", decoded.Status)
}

func TestAnalyzeInvoiceProviderFailure(t *testing.T) {
	srv, _ := analyzeServer(t, []string{`{"status": "failed"}`})

	c := testClient(srv.URL, 10)
	_, _, err := c.AnalyzeInvoice(context.Background(), []byte("doc"), "application/pdf")
	require.Error(t, err)
	assert.EqualError(t, err, "document analysis failed")
}

func TestAnalyzeInvoicePollTimeout(t *testing.T) {
	srv, polls := analyzeServer(t, []string{`{"status": "running"}`})

	c := testClient(srv.URL, 3)
	_, _, err := c.AnalyzeInvoice(context.Background(), []byte("doc"), "application/pdf")
	require.Error(t, err)
	assert.EqualError(t, err, "document analysis timed out after 3 attempts")
	assert.EqualValues(t, 3, polls.Load())
}

func TestAnalyzeInvoiceSubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": "InvalidRequest"}}`, http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	c := testClient(srv.URL, 3)
	_, _, err := c.AnalyzeInvoice(context.Background(), []byte("doc"), "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestAnalyzeInvoiceMissingOperationLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	c := testClient(srv.URL, 3)
	_, _, err := c.AnalyzeInvoice(context.Background(), []byte("doc"), "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operation location")
}

func TestAnalyzeInvoiceContextCancel(t *testing.T) {
	srv, _ := analyzeServer(t, []string{`{"status": "running"}`})

	c := NewClient(Config{
		Endpoint:        srv.URL,
		APIKey:          "test-key",
		PollInterval:    time.Hour,
		MaxPollAttempts: 3,
		BreakerDisabled: true,
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := c.AnalyzeInvoice(ctx, []byte("doc"), "application/pdf")
	require.ErrorIs(t, err, context.Canceled)
}
