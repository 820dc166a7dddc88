package azopenai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Azure OpenAI client.
type Config struct {
	Endpoint   string // e.g. https://<resource>.openai.azure.com
	APIKey     string // if empty, falls back to env AZURE_OPENAI_KEY
	Deployment string // e.g. "gpt-4o"
	APIVersion string
	Timeout    time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("AZURE_OPENAI_KEY")
	}
	if cfg.Deployment == "" {
		cfg.Deployment = "gpt-4o"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-08-01-preview"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
