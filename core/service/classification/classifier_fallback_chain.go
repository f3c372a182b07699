package classification

import (
	"context"
	"errors"
	"fmt"

	"classifier_server/core/domain"
	"classifier_server/core/port/out"
	"classifier_server/pkg/logger"
)

// Backend identifies which classification backend variant is active.
type Backend string

const (
	BackendKeyword   Backend = "keyword"
	BackendSentiment Backend = "sentiment"
	BackendZeroShot  Backend = "zeroshot"
	BackendPipeline  Backend = "pipeline"
)

// Chain stage names recorded on results.
const (
	StageShortText = "short-text"
	StageModel     = "model"
	StageKeyword   = "keyword"
	StageFallback  = "fallback"
)

// ChainDeps holds the optional backend handles for a Chain. Handles are
// constructed once at bootstrap and reused; a nil handle means that backend
// is unavailable and the chain degrades to the keyword stage.
type ChainDeps struct {
	Sentiment  out.SentimentAnalyzer
	ZeroShot   out.ZeroShotClassifier
	Pipeline   out.TrainedPipeline
	Translator out.Translator
}

// Chain is the fallback chain controller. Stages are attempted in strict
// order (short-text gate, configured model backend, keyword policy, fixed
// terminal result) and each stage boundary catches failures so Classify
// never fails.
type Chain struct {
	backend         Backend
	translateTarget string

	sentiment  out.SentimentAnalyzer
	zeroShot   out.ZeroShotClassifier
	pipeline   out.TrainedPipeline
	translator out.Translator
}

// NewChain creates a fallback chain for the given backend variant.
// translateTarget enables pre-translation of the model input when non-empty;
// it only applies to the sentiment backend.
func NewChain(backend Backend, translateTarget string, deps ChainDeps) *Chain {
	return &Chain{
		backend:         backend,
		translateTarget: translateTarget,
		sentiment:       deps.Sentiment,
		zeroShot:        deps.ZeroShot,
		pipeline:        deps.Pipeline,
		translator:      deps.Translator,
	}
}

// Backend returns the configured backend variant.
func (c *Chain) Backend() Backend {
	return c.backend
}

// Classify runs the cleaned text through the chain and always returns a
// well-formed result. Transitions are one-directional: once a stage has
// produced a result no earlier stage is retried.
func (c *Chain) Classify(ctx context.Context, text string) (result *domain.ClassificationResult) {
	// Stage 4: ultimate fallback. The keyword stage is pure arithmetic and
	// should never panic, but a classification call must not crash the request.
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", fmt.Sprintf("%v", r)).
				Error("Classification panicked, returning fallback result")
			result = &domain.ClassificationResult{
				Label:      domain.LabelProductive,
				Confidence: 0.5,
				Reasoning:  ReasonFallbackError,
				Stage:      StageFallback,
			}
		}
	}()

	// Stage 1: short-text gate. Terminal, bypasses all backends.
	if tooShort(text) {
		return shortTextResult()
	}

	// Stage 2: configured model backend.
	if modelResult, err := c.classifyWithBackend(ctx, text); err == nil {
		return modelResult
	} else if !errors.Is(err, domain.ErrBackendNotConfigured) {
		logger.WithError(err).
			WithField("backend", string(c.backend)).
			Warn("Model backend failed, falling back to keyword policy")
	}

	// Stage 3: keyword policy. Cannot fail.
	return DecideByKeywords(ExtractSignals(text))
}

// classifyWithBackend invokes the configured backend and applies the matching
// fusion policy. All failures are signalled upward; the chain decides what
// happens next.
func (c *Chain) classifyWithBackend(ctx context.Context, text string) (*domain.ClassificationResult, error) {
	switch c.backend {
	case BackendSentiment:
		if c.sentiment == nil {
			return nil, domain.ErrBackendNotConfigured
		}
		modelInput, translated := c.translateForModel(ctx, text)
		sentiment, err := c.sentiment.Analyze(ctx, modelInput)
		if err != nil {
			return nil, err
		}
		// The fusion policy reads lexical signals from the original text; only
		// the model sees the translation.
		result := DecideSentiment(text, sentiment)
		result.TranslatedText = translated
		return result, nil

	case BackendZeroShot:
		if c.zeroShot == nil {
			return nil, domain.ErrBackendNotConfigured
		}
		candidates := []string{LabelDescProductive, LabelDescUnproductive}
		scores, err := c.zeroShot.Classify(ctx, text, candidates, HypothesisTemplate)
		if err != nil {
			return nil, err
		}
		productiveScore, okP := scores[LabelDescProductive]
		unproductiveScore, okU := scores[LabelDescUnproductive]
		if !okP || !okU {
			return nil, domain.ErrMalformedResponse
		}
		return DecideZeroShot(text, productiveScore, unproductiveScore), nil

	case BackendPipeline:
		if c.pipeline == nil {
			return nil, domain.ErrBackendNotConfigured
		}
		label, confidence, err := c.pipeline.Predict(ctx, text)
		if err != nil {
			return nil, err
		}
		if !label.IsValid() {
			return nil, domain.ErrMalformedResponse
		}
		return &domain.ClassificationResult{
			Label:      label,
			Confidence: confidence,
			Reasoning:  fmt.Sprintf("Classificado pelo modelo treinado com pontuação %.2f", confidence),
			Stage:      StageModel,
		}, nil

	default:
		return nil, domain.ErrBackendNotConfigured
	}
}

// translateForModel translates the model input when a translator is
// configured. Translation failure never aborts classification: the original
// text is substituted.
func (c *Chain) translateForModel(ctx context.Context, text string) (modelInput, translated string) {
	if c.translator == nil || c.translateTarget == "" {
		return text, ""
	}

	out, err := c.translator.Translate(ctx, text, c.translateTarget)
	if err != nil || out == "" {
		logger.WithError(err).Debug("Translation failed, using original text")
		return text, ""
	}
	return out, out
}
