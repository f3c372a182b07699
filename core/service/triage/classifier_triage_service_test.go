package triage

import (
	"context"
	"strings"
	"testing"

	"classifier_server/core/domain"
	"classifier_server/core/service/classification"
	"classifier_server/core/service/response"
)

func newKeywordService() *Service {
	chain := classification.NewChain(classification.BackendKeyword, "", classification.ChainDeps{})
	return NewService(chain, response.NewGenerator(nil))
}

// TestServiceClassify runs the full triage path with the keyword backend.
func TestServiceClassify(t *testing.T) {
	service := newKeywordService()

	tests := []struct {
		name           string
		text           string
		wantLabel      domain.Label
		wantConfidence float64
		wantReasonPart string
		wantReplyPart  string
	}{
		{
			name:           "support request",
			text:           "Preciso de suporte urgente, há um erro no sistema",
			wantLabel:      domain.LabelProductive,
			wantConfidence: 0.85, // 3 productive keywords, capped
			wantReasonPart: "palavras-chave produtivas",
			wantReplyPart:  "priorizando sua demanda",
		},
		{
			name:           "holiday greeting",
			text:           "Feliz Natal, muito obrigado pela parceria!",
			wantLabel:      domain.LabelUnproductive,
			wantConfidence: 0.8, // 2 unproductive keywords
			wantReasonPart: "palavras-chave improdutivas",
			wantReplyPart:  "gratos pelo seu agradecimento",
		},
		{
			name:           "short text",
			text:           "ok",
			wantLabel:      domain.LabelUnproductive,
			wantConfidence: 0.5,
			wantReasonPart: "Texto muito curto",
		},
		{
			name:           "neutral business text defaults productive",
			text:           "Segue em anexo o documento para apreciação",
			wantLabel:      domain.LabelProductive,
			wantConfidence: 0.6,
			wantReasonPart: "Classificação padrão",
			wantReplyPart:  "Confirmamos o recebimento",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Classify(context.Background(), tt.text)

			if result.Classification != tt.wantLabel {
				t.Errorf("classification = %v, want %v", result.Classification, tt.wantLabel)
			}
			if result.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", result.Confidence, tt.wantConfidence)
			}
			if !strings.Contains(result.Reasoning, tt.wantReasonPart) {
				t.Errorf("reasoning = %q, want it to contain %q", result.Reasoning, tt.wantReasonPart)
			}
			if result.Response == "" {
				t.Error("response reply is empty")
			}
			if tt.wantReplyPart != "" && !strings.Contains(result.Response, tt.wantReplyPart) {
				t.Errorf("response = %q, want it to contain %q", result.Response, tt.wantReplyPart)
			}
		})
	}
}

// TestServiceClassifyNormalizesInput verifies messy whitespace and oversized
// input are normalized before classification.
func TestServiceClassifyNormalizesInput(t *testing.T) {
	service := newKeywordService()

	messy := "  Preciso\n\nde   suporte\turgente  " + strings.Repeat(" x", 600)
	result := service.Classify(context.Background(), messy)

	if result.Classification != domain.LabelProductive {
		t.Errorf("classification = %v, want %v", result.Classification, domain.LabelProductive)
	}
	if !strings.Contains(result.Reasoning, "produtivas") {
		t.Errorf("reasoning = %q", result.Reasoning)
	}
}

// TestServiceClassifyNeverFails hammers the service with adversarial inputs.
func TestServiceClassifyNeverFails(t *testing.T) {
	service := newKeywordService()

	inputs := []string{
		"",
		" ",
		"\x00\x01\x02",
		strings.Repeat("a", 100_000),
		"🎉🎊✨",
		"<script>alert(1)</script>",
	}

	for _, text := range inputs {
		result := service.Classify(context.Background(), text)
		if result == nil {
			t.Fatalf("nil result for %q", text)
		}
		if !result.Classification.IsValid() {
			t.Errorf("invalid label %q for input %q", result.Classification, text)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("confidence out of range: %v", result.Confidence)
		}
		if result.Response == "" {
			t.Errorf("empty reply for input %q", text)
		}
	}
}
