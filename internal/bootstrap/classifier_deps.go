package bootstrap

import (
	"time"

	"classifier_server/adapter/out/inference"
	"classifier_server/config"
	"classifier_server/core/agent/llm"
	"classifier_server/core/port/in"
	"classifier_server/core/port/out"
	"classifier_server/core/service/classification"
	"classifier_server/core/service/response"
	"classifier_server/core/service/triage"
	"classifier_server/pkg/logger"
)

// Dependencies holds the wired service graph.
type Dependencies struct {
	ClassifyService in.ClassifyService
}

// NewDependencies constructs every long-lived handle once. A backend whose
// configuration is missing is disabled with a warning instead of failing
// startup: the fallback chain degrades to the keyword policy.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	var textGen out.TextGenerator
	var translator out.Translator
	if cfg.OpenAIAPIKey != "" {
		client := llm.NewClientWithConfig(llm.ClientConfig{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.LLMModel,
			MaxTokens:   cfg.LLMMaxTokens,
			Temperature: cfg.LLMTemperature,
		})
		textGen = client
		translator = client
	} else {
		logger.Info("OPENAI_API_KEY not set, using static reply templates only")
	}

	chainDeps := classification.ChainDeps{Translator: translator}

	switch cfg.Backend {
	case config.BackendSentiment, config.BackendZeroShot:
		hfClient, err := inference.NewHFClient(inference.HFConfig{
			BaseURL: cfg.HFBaseURL,
			Token:   cfg.HFToken,
			Timeout: time.Duration(cfg.HFTimeoutSec) * time.Second,
		})
		if err != nil {
			logger.WithError(err).
				WithField("backend", cfg.Backend).
				Warn("Inference backend disabled, chain degrades to keyword policy")
			break
		}
		if cfg.Backend == config.BackendSentiment {
			chainDeps.Sentiment = inference.NewSentimentAdapter(hfClient, cfg.SentimentModel)
		} else {
			chainDeps.ZeroShot = inference.NewZeroShotAdapter(hfClient, cfg.ZeroShotModel)
		}

	case config.BackendPipeline:
		adapter, err := inference.NewPipelineAdapter(cfg.PipelineURL, time.Duration(cfg.PipelineTimeoutSec)*time.Second)
		if err != nil {
			logger.WithError(err).
				Warn("Pipeline backend disabled, chain degrades to keyword policy")
			break
		}
		chainDeps.Pipeline = adapter
	}

	chain := classification.NewChain(classification.Backend(cfg.Backend), cfg.TranslateTarget, chainDeps)
	replies := response.NewGenerator(textGen)

	return &Dependencies{
		ClassifyService: triage.NewService(chain, replies),
	}, nil
}
