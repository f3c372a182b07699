package domain

import "errors"

// Label represents the binary productivity classification of an email.
type Label string

const (
	// LabelProductive marks emails that require action or have operational impact.
	LabelProductive Label = "produtivo"
	// LabelUnproductive marks courtesy/social emails that require no action.
	LabelUnproductive Label = "improdutivo"
)

// IsValid reports whether the label is one of the two allowed values.
func (l Label) IsValid() bool {
	return l == LabelProductive || l == LabelUnproductive
}

// SentimentLabel is the label returned by a sentiment analysis backend.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Sentiment is the output of a sentiment analysis backend for one text.
type Sentiment struct {
	Label SentimentLabel
	Score float64 // 0.0 - 1.0
}

// ZeroShotScores maps each candidate label description to its model score.
type ZeroShotScores map[string]float64

// SignalBundle collects the signals available at decision time for one text.
// It is constructed per classification call and consumed once by the decision
// policy; lexical counts are always present, model signals are optional.
type SignalBundle struct {
	ProductiveCount   int
	UnproductiveCount int

	// Zero-shot variant (nil when not used)
	ProductiveScore   *float64
	UnproductiveScore *float64

	// Sentiment variant (nil when not used)
	Sentiment *Sentiment
}

// ClassificationResult is the outcome of one classification call.
// Created fresh per call, immutable once returned, never persisted.
type ClassificationResult struct {
	Label      Label   `json:"classification"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`

	// Diagnostic fields, populated when the corresponding path was used.
	Scores         ZeroShotScores `json:"scores,omitempty"`
	Sentiment      *Sentiment     `json:"-"`
	TranslatedText string         `json:"-"`
	Stage          string         `json:"-"` // chain stage that produced the result
}

// Classification failure conditions. Every backend adapter maps its transport
// and decoding failures onto these so the fallback chain can treat all
// backends uniformly.
var (
	// ErrBackendUnavailable signals that the external model/service call failed
	// (network error, timeout, circuit open, non-2xx status).
	ErrBackendUnavailable = errors.New("classification backend unavailable")

	// ErrMalformedResponse signals that the backend answered but the expected
	// labels/scores were missing from its output.
	ErrMalformedResponse = errors.New("malformed backend response")

	// ErrBackendNotConfigured signals that the backend was selected but its
	// construction-time configuration (e.g. API token) is missing.
	ErrBackendNotConfigured = errors.New("classification backend not configured")

	// ErrTextTooShort is the defined terminal condition for inputs below the
	// minimum analyzable length. It is not a failure.
	ErrTextTooShort = errors.New("text too short to analyze")
)
