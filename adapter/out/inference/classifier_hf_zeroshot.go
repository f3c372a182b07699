package inference

import (
	"context"
	"fmt"

	"classifier_server/core/domain"

	"github.com/goccy/go-json"
)

// DefaultZeroShotModel is the standard NLI model for zero-shot
// classification.
const DefaultZeroShotModel = "facebook/bart-large-mnli"

// ZeroShotAdapter implements out.ZeroShotClassifier over the Hugging Face
// zero-shot-classification task.
type ZeroShotAdapter struct {
	client *HFClient
	model  string
}

// NewZeroShotAdapter creates the adapter. An empty model selects the
// default.
func NewZeroShotAdapter(client *HFClient, model string) *ZeroShotAdapter {
	if model == "" {
		model = DefaultZeroShotModel
	}
	return &ZeroShotAdapter{client: client, model: model}
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify scores the text against each candidate label description.
func (a *ZeroShotAdapter) Classify(ctx context.Context, text string, candidateLabels []string, hypothesisTemplate string) (domain.ZeroShotScores, error) {
	payload := map[string]any{
		"inputs": text,
		"parameters": map[string]any{
			"candidate_labels":    candidateLabels,
			"hypothesis_template": hypothesisTemplate,
		},
	}

	body, err := a.client.post(ctx, "/models/"+a.model, payload)
	if err != nil {
		return nil, err
	}

	var resp zeroShotResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: unexpected zero-shot payload", domain.ErrMalformedResponse)
	}
	if len(resp.Labels) == 0 || len(resp.Labels) != len(resp.Scores) {
		return nil, fmt.Errorf("%w: zero-shot labels/scores mismatch", domain.ErrMalformedResponse)
	}

	scores := make(domain.ZeroShotScores, len(resp.Labels))
	for i, label := range resp.Labels {
		scores[label] = resp.Scores[i]
	}

	return scores, nil
}
