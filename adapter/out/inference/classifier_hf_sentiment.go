package inference

import (
	"context"
	"fmt"
	"strings"

	"classifier_server/core/domain"

	"github.com/goccy/go-json"
)

// DefaultSentimentModel is a multilingual-friendly sentiment model with
// positive/negative/neutral labels.
const DefaultSentimentModel = "cardiffnlp/twitter-roberta-base-sentiment-latest"

// SentimentAdapter implements out.SentimentAnalyzer over the Hugging Face
// text-classification task.
type SentimentAdapter struct {
	client *HFClient
	model  string
}

// NewSentimentAdapter creates the adapter. An empty model selects the
// default.
func NewSentimentAdapter(client *HFClient, model string) *SentimentAdapter {
	if model == "" {
		model = DefaultSentimentModel
	}
	return &SentimentAdapter{client: client, model: model}
}

type sentimentEntry struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analyze returns the top-scoring sentiment for the text.
func (a *SentimentAdapter) Analyze(ctx context.Context, text string) (*domain.Sentiment, error) {
	body, err := a.client.post(ctx, "/models/"+a.model, map[string]any{"inputs": text})
	if err != nil {
		return nil, err
	}

	// The text-classification task nests one entry list per input.
	var results [][]sentimentEntry
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 || len(results[0]) == 0 {
		return nil, fmt.Errorf("%w: unexpected sentiment payload", domain.ErrMalformedResponse)
	}

	best := results[0][0]
	for _, entry := range results[0][1:] {
		if entry.Score > best.Score {
			best = entry
		}
	}

	label, err := parseSentimentLabel(best.Label)
	if err != nil {
		return nil, err
	}

	return &domain.Sentiment{Label: label, Score: best.Score}, nil
}

func parseSentimentLabel(raw string) (domain.SentimentLabel, error) {
	switch strings.ToLower(raw) {
	case "positive", "label_2":
		return domain.SentimentPositive, nil
	case "negative", "label_0":
		return domain.SentimentNegative, nil
	case "neutral", "label_1":
		return domain.SentimentNeutral, nil
	default:
		return "", fmt.Errorf("%w: unknown sentiment label %q", domain.ErrMalformedResponse, raw)
	}
}
