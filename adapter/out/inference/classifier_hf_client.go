// Package inference contains the outbound adapters for the model backends:
// Hugging Face Inference API (sentiment, zero-shot) and a generic trained
// pipeline endpoint. Every adapter maps transport and decoding failures onto
// the domain failure sentinels so the fallback chain stays backend-agnostic.
package inference

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"classifier_server/core/domain"
	"classifier_server/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the hosted Hugging Face Inference API. A self-hosted
// inference server can be used by pointing the base URL at it.
const DefaultBaseURL = "https://api-inference.huggingface.co"

// HFConfig holds Hugging Face client configuration.
type HFConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// HFClient is the shared HTTP client for the Hugging Face adapters, protected
// by a circuit breaker so a degraded inference service fails fast instead of
// stalling every request.
type HFClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cb         *gobreaker.CircuitBreaker
}

// NewHFClient creates the shared client. Returns an error when the API token
// is missing; the caller treats that as the backend being unavailable rather
// than crashing startup.
func NewHFClient(cfg HFConfig) (*HFClient, error) {
	if cfg.Token == "" {
		return nil, domain.ErrBackendNotConfigured
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "hf-inference",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &HFClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      cfg.Token,
		cb:         cb,
	}, nil
}

// post sends a JSON payload to a model path and returns the raw response
// body. All failures, including an open breaker, surface as
// ErrBackendUnavailable.
func (c *HFClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := c.cb.Execute(func() (any, error) {
		return c.doPost(ctx, path, payload)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return body.([]byte), nil
}

func (c *HFClient) doPost(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, truncateForLog(body))
	}

	return body, nil
}

func truncateForLog(body []byte) string {
	const maxLen = 200
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
