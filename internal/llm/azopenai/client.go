// Package azopenai implements llm.ChatCompleter against the Azure OpenAI
// chat-completions endpoint.
package azopenai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/insurtech-labs/claims-adjudicator/internal/llm"
)

// Complete sends one chat-completion request: a system instruction plus a
// user message of one text part and zero or more inline base64 image parts.
func (c *Client) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	start := time.Now()

	parts := []map[string]any{
		{"type": "text", "text": req.Text},
	}
	for _, img := range req.Images {
		parts = append(parts, map[string]any{
			"type": "image_url",
			"image_url": map[string]any{
				"url":    fmt.Sprintf("data:%s;base64,%s", img.MimeType, img.Base64),
				"detail": "high",
			},
		})
	}

	body := map[string]any{
		"messages": []map[string]any{
			{"role": "system", "content": req.System},
			{"role": "user", "content": parts},
		},
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
	}

	endpoint := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Deployment, c.cfg.APIVersion)

	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("azopenai.complete.http_error",
			"error", err,
			"images", len(req.Images),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode azure openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in azure openai response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from azure openai")
	}

	c.logger.Info("azopenai.complete.ok",
		"content_len", len(content),
		"images", len(req.Images),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azure openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("azure openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read azure openai response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("azure openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
