package in

import (
	"context"

	"classifier_server/core/domain"
)

// TriageResult is the full outcome returned to the HTTP layer: the
// classification plus the suggested reply.
type TriageResult struct {
	Classification domain.Label          `json:"classification"`
	Confidence     float64               `json:"confidence"`
	Reasoning      string                `json:"reasoning"`
	Response       string                `json:"response"`
	Scores         domain.ZeroShotScores `json:"scores,omitempty"`
}

// ClassifyService classifies raw email text and suggests a reply.
// Classify never fails: backend errors degrade the result, they do not
// propagate to the caller.
type ClassifyService interface {
	Classify(ctx context.Context, rawText string) *TriageResult
}
