package azopenai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-labs/claims-adjudicator/internal/llm"
)

func TestCompleteRequestShape(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/deployments/gpt-4o/chat/completions", r.URL.Path)
		assert.Equal(t, "2024-08-01-preview", r.URL.Query().Get("api-version"))
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, `{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "secret"}, nil)
	got, err := c.Complete(context.Background(), llm.ChatRequest{
		System:      "You are a claims adjuster.",
		Text:        "Review this claim.",
		Images:      []llm.EvidenceImage{{Base64: "aGVsbG8=", MimeType: "image/jpeg"}},
		MaxTokens:   4096,
		Temperature: 0.3,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, got)

	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You are a claims adjuster.", system["content"])

	user := messages[1].(map[string]any)
	parts := user["content"].([]any)
	require.Len(t, parts, 2)
	text := parts[0].(map[string]any)
	assert.Equal(t, "text", text["type"])
	image := parts[1].(map[string]any)
	assert.Equal(t, "image_url", image["type"])
	url := image["image_url"].(map[string]any)["url"].(string)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", url)
	assert.Equal(t, "high", image["image_url"].(map[string]any)["detail"])

	assert.EqualValues(t, 4096, captured["max_tokens"])
}

func TestCompleteErrors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":"429"}}`, http.StatusTooManyRequests)
		}))
		t.Cleanup(srv.Close)

		c := NewClient(Config{Endpoint: srv.URL, APIKey: "secret"}, nil)
		_, err := c.Complete(context.Background(), llm.ChatRequest{Text: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"choices":[]}`)
		}))
		t.Cleanup(srv.Close)

		c := NewClient(Config{Endpoint: srv.URL, APIKey: "secret"}, nil)
		_, err := c.Complete(context.Background(), llm.ChatRequest{Text: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})

	t.Run("empty content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"choices":[{"message":{"content":"  "}}]}`)
		}))
		t.Cleanup(srv.Close)

		c := NewClient(Config{Endpoint: srv.URL, APIKey: "secret"}, nil)
		_, err := c.Complete(context.Background(), llm.ChatRequest{Text: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty response")
	})
}
