package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all environment-driven settings.
type Config struct {
	Port        string
	Environment string

	// Classification backend: keyword, sentiment, zeroshot, pipeline
	Backend string

	// Hugging Face inference
	HFToken        string
	HFBaseURL      string
	SentimentModel string
	ZeroShotModel  string
	HFTimeoutSec   int

	// Trained pipeline endpoint
	PipelineURL        string
	PipelineTimeoutSec int

	// Translation before the sentiment backend ("" disables)
	TranslateTarget string

	// OpenAI (reply generation, translation)
	OpenAIAPIKey   string
	LLMModel       string
	LLMMaxTokens   int
	LLMTemperature float64

	// Rate limiting
	RateLimit          int
	RateLimitWindowSec int

	// CORS
	AllowedOrigins []string
}

// Valid backend values.
const (
	BackendKeyword   = "keyword"
	BackendSentiment = "sentiment"
	BackendZeroShot  = "zeroshot"
	BackendPipeline  = "pipeline"
)

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		Backend: getEnv("CLASSIFIER_BACKEND", BackendKeyword),

		HFToken:        getEnv("HF_API_TOKEN", ""),
		HFBaseURL:      getEnv("HF_BASE_URL", ""),
		SentimentModel: getEnv("SENTIMENT_MODEL", ""),
		ZeroShotModel:  getEnv("ZEROSHOT_MODEL", ""),
		HFTimeoutSec:   getEnvInt("HF_TIMEOUT_SEC", 30),

		PipelineURL:        getEnv("PIPELINE_URL", ""),
		PipelineTimeoutSec: getEnvInt("PIPELINE_TIMEOUT_SEC", 30),

		TranslateTarget: getEnv("TRANSLATE_TARGET", ""),

		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		LLMModel:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1024),
		LLMTemperature: getEnvFloat("LLM_TEMPERATURE", 0.7),

		RateLimit:          getEnvInt("RATE_LIMIT", 60),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}

	switch cfg.Backend {
	case BackendKeyword, BackendSentiment, BackendZeroShot, BackendPipeline:
	default:
		return nil, fmt.Errorf("invalid CLASSIFIER_BACKEND: %q", cfg.Backend)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
