package out

import (
	"context"

	"classifier_server/core/domain"
)

// SentimentAnalyzer analyzes the overall sentiment of a text.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (*domain.Sentiment, error)
}

// ZeroShotClassifier scores a text against natural-language label descriptions
// without task-specific training. The returned map contains one score per
// candidate label description.
type ZeroShotClassifier interface {
	Classify(ctx context.Context, text string, candidateLabels []string, hypothesisTemplate string) (domain.ZeroShotScores, error)
}

// TrainedPipeline is a pre-trained classification endpoint that returns the
// productivity label directly, optionally with a probability.
type TrainedPipeline interface {
	Predict(ctx context.Context, text string) (domain.Label, float64, error)
}

// Translator translates text to a target language. Translation failures must
// not abort classification; callers substitute the original text.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// TextGenerator produces free-form text from a prompt. Used for suggested
// replies; failures fall back to static templates.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
