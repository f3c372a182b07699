package inference

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"classifier_server/core/domain"

	"github.com/goccy/go-json"
)

// defaultPipelineConfidence is used when the endpoint predicts a label but
// omits the probability.
const defaultPipelineConfidence = 0.75

// PipelineAdapter implements out.TrainedPipeline against a generic HTTP
// prediction endpoint: POST {endpoint} {"text": ...} -> {"label": ...,
// "confidence": ...}.
type PipelineAdapter struct {
	httpClient *http.Client
	endpoint   string
}

// NewPipelineAdapter creates the adapter for the given endpoint URL.
func NewPipelineAdapter(endpoint string, timeout time.Duration) (*PipelineAdapter, error) {
	if endpoint == "" {
		return nil, domain.ErrBackendNotConfigured
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &PipelineAdapter{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}, nil
}

type pipelinePrediction struct {
	Label      string   `json:"label"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Predict returns the endpoint's label and probability for the text.
func (a *PipelineAdapter) Predict(ctx context.Context, text string) (domain.Label, float64, error) {
	encoded, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("%w: pipeline endpoint returned status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	var prediction pipelinePrediction
	if err := json.Unmarshal(body, &prediction); err != nil {
		return "", 0, fmt.Errorf("%w: unexpected pipeline payload", domain.ErrMalformedResponse)
	}

	label := domain.Label(prediction.Label)
	if !label.IsValid() {
		return "", 0, fmt.Errorf("%w: unknown label %q", domain.ErrMalformedResponse, prediction.Label)
	}

	confidence := defaultPipelineConfidence
	if prediction.Confidence != nil {
		confidence = *prediction.Confidence
	}

	return label, confidence, nil
}
