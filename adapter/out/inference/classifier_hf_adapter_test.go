package inference

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"classifier_server/core/domain"

	"github.com/goccy/go-json"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HFClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewHFClient(HFConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

// TestNewHFClientRequiresToken verifies the missing-token sentinel.
func TestNewHFClientRequiresToken(t *testing.T) {
	_, err := NewHFClient(HFConfig{})
	if !errors.Is(err, domain.ErrBackendNotConfigured) {
		t.Errorf("err = %v, want ErrBackendNotConfigured", err)
	}
}

// TestSentimentAdapter tests response decoding for the text-classification
// task.
func TestSentimentAdapter(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		status    int
		wantLabel domain.SentimentLabel
		wantScore float64
		wantErr   error
	}{
		{
			name:      "best entry wins",
			response:  `[[{"label":"negative","score":0.81},{"label":"neutral","score":0.12},{"label":"positive","score":0.07}]]`,
			status:    200,
			wantLabel: domain.SentimentNegative,
			wantScore: 0.81,
		},
		{
			name:      "entries are not assumed sorted",
			response:  `[[{"label":"neutral","score":0.10},{"label":"positive","score":0.85}]]`,
			status:    200,
			wantLabel: domain.SentimentPositive,
			wantScore: 0.85,
		},
		{
			name:      "numeric label aliases are mapped",
			response:  `[[{"label":"LABEL_0","score":0.9}]]`,
			status:    200,
			wantLabel: domain.SentimentNegative,
			wantScore: 0.9,
		},
		{
			name:     "unknown label is malformed",
			response: `[[{"label":"angry","score":0.9}]]`,
			status:   200,
			wantErr:  domain.ErrMalformedResponse,
		},
		{
			name:     "empty result list is malformed",
			response: `[]`,
			status:   200,
			wantErr:  domain.ErrMalformedResponse,
		},
		{
			name:     "model loading error is unavailable",
			response: `{"error":"Model is currently loading"}`,
			status:   503,
			wantErr:  domain.ErrBackendUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
					t.Errorf("authorization header = %q", got)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			})
			adapter := NewSentimentAdapter(client, "")

			sentiment, err := adapter.Analyze(context.Background(), "isso está péssimo")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sentiment.Label != tt.wantLabel {
				t.Errorf("label = %v, want %v", sentiment.Label, tt.wantLabel)
			}
			if sentiment.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", sentiment.Score, tt.wantScore)
			}
		})
	}
}

// TestZeroShotAdapter tests request shape and response decoding for the
// zero-shot-classification task.
func TestZeroShotAdapter(t *testing.T) {
	candidates := []string{"email produtivo", "email improdutivo"}

	t.Run("scores are zipped by label", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var payload struct {
				Inputs     string `json:"inputs"`
				Parameters struct {
					CandidateLabels    []string `json:"candidate_labels"`
					HypothesisTemplate string   `json:"hypothesis_template"`
				} `json:"parameters"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
			if len(payload.Parameters.CandidateLabels) != 2 {
				t.Errorf("candidate labels = %v", payload.Parameters.CandidateLabels)
			}
			if payload.Parameters.HypothesisTemplate != "Este email é {}." {
				t.Errorf("hypothesis template = %q", payload.Parameters.HypothesisTemplate)
			}

			w.Write([]byte(`{"labels":["email produtivo","email improdutivo"],"scores":[0.82,0.18]}`))
		})
		adapter := NewZeroShotAdapter(client, "")

		scores, err := adapter.Classify(context.Background(), "preciso de ajuda", candidates, "Este email é {}.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if scores["email produtivo"] != 0.82 {
			t.Errorf("productive score = %v", scores["email produtivo"])
		}
		if scores["email improdutivo"] != 0.18 {
			t.Errorf("unproductive score = %v", scores["email improdutivo"])
		}
	})

	t.Run("label/score length mismatch is malformed", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"labels":["a","b"],"scores":[0.5]}`))
		})
		adapter := NewZeroShotAdapter(client, "")

		_, err := adapter.Classify(context.Background(), "texto", candidates, "Este email é {}.")
		if !errors.Is(err, domain.ErrMalformedResponse) {
			t.Errorf("err = %v, want ErrMalformedResponse", err)
		}
	})
}

// TestHFClientCircuitBreaker verifies consecutive failures open the breaker
// and short-circuit subsequent calls.
func TestHFClientCircuitBreaker(t *testing.T) {
	var hits int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	})
	adapter := NewSentimentAdapter(client, "")

	for i := 0; i < 10; i++ {
		if _, err := adapter.Analyze(context.Background(), "texto de teste"); err == nil {
			t.Fatal("expected failure")
		}
	}

	// 6 consecutive failures trip the breaker; later calls never hit the server.
	if hits >= 10 {
		t.Errorf("server hits = %d, breaker never opened", hits)
	}
}

// TestPipelineAdapter tests the generic prediction endpoint adapter.
func TestPipelineAdapter(t *testing.T) {
	t.Run("endpoint is required", func(t *testing.T) {
		_, err := NewPipelineAdapter("", 0)
		if !errors.Is(err, domain.ErrBackendNotConfigured) {
			t.Errorf("err = %v, want ErrBackendNotConfigured", err)
		}
	})

	t.Run("label and confidence pass through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"label":"improdutivo","confidence":0.91}`))
		}))
		defer server.Close()

		adapter, err := NewPipelineAdapter(server.URL, 5*time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		label, confidence, err := adapter.Predict(context.Background(), "feliz natal")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if label != domain.LabelUnproductive {
			t.Errorf("label = %v, want %v", label, domain.LabelUnproductive)
		}
		if confidence != 0.91 {
			t.Errorf("confidence = %v, want 0.91", confidence)
		}
	})

	t.Run("missing confidence uses the default", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"label":"produtivo"}`))
		}))
		defer server.Close()

		adapter, _ := NewPipelineAdapter(server.URL, 5*time.Second)

		label, confidence, err := adapter.Predict(context.Background(), "preciso de suporte")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if label != domain.LabelProductive {
			t.Errorf("label = %v", label)
		}
		if confidence != defaultPipelineConfidence {
			t.Errorf("confidence = %v, want %v", confidence, defaultPipelineConfidence)
		}
	})

	t.Run("unknown label is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"label":"spam","confidence":0.99}`))
		}))
		defer server.Close()

		adapter, _ := NewPipelineAdapter(server.URL, 5*time.Second)

		_, _, err := adapter.Predict(context.Background(), "qualquer texto")
		if !errors.Is(err, domain.ErrMalformedResponse) {
			t.Errorf("err = %v, want ErrMalformedResponse", err)
		}
	})

	t.Run("non-200 status is unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		adapter, _ := NewPipelineAdapter(server.URL, 5*time.Second)

		_, _, err := adapter.Predict(context.Background(), "qualquer texto")
		if !errors.Is(err, domain.ErrBackendUnavailable) {
			t.Errorf("err = %v, want ErrBackendUnavailable", err)
		}
	})
}
