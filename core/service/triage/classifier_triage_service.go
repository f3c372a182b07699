// Package triage orchestrates one classification request: text cleanup,
// fallback-chain classification and reply suggestion.
package triage

import (
	"context"
	"time"

	"classifier_server/core/port/in"
	"classifier_server/core/service/classification"
	"classifier_server/core/service/response"
	"classifier_server/pkg/logger"
	"classifier_server/pkg/textutil"
)

// Service implements in.ClassifyService. It owns no mutable state: the chain
// and generator handles are constructed once at bootstrap and are safe for
// concurrent use, so concurrent classifications need no coordination.
type Service struct {
	chain   *classification.Chain
	replies *response.Generator
}

// NewService creates the triage service.
func NewService(chain *classification.Chain, replies *response.Generator) *Service {
	return &Service{
		chain:   chain,
		replies: replies,
	}
}

// Classify cleans the raw text, classifies it through the fallback chain and
// attaches a suggested reply. It always returns a well-formed result; quality
// degrades silently when backends are unavailable.
func (s *Service) Classify(ctx context.Context, rawText string) *in.TriageResult {
	start := time.Now()

	cleaned := textutil.Normalize(rawText)
	result := s.chain.Classify(ctx, cleaned)
	reply := s.replies.SuggestReply(ctx, result.Label, cleaned, result.Confidence)

	logger.WithFields(map[string]any{
		"label":       string(result.Label),
		"confidence":  result.Confidence,
		"stage":       result.Stage,
		"backend":     string(s.chain.Backend()),
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	}).Info("Email classified")

	return &in.TriageResult{
		Classification: result.Label,
		Confidence:     result.Confidence,
		Reasoning:      result.Reasoning,
		Response:       reply,
		Scores:         result.Scores,
	}
}
