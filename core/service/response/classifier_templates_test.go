package response

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"classifier_server/core/domain"
)

// TestSelectTemplate tests the priority-ordered template lookup.
func TestSelectTemplate(t *testing.T) {
	tests := []struct {
		name       string
		label      domain.Label
		text       string
		confidence float64
		wantPart   string
	}{
		{
			name:       "urgent request gets the priority template",
			label:      domain.LabelProductive,
			text:       "Situação urgente: o sistema caiu com um erro grave",
			confidence: 0.9,
			wantPart:   "priorizando sua demanda",
		},
		{
			name:       "error report without urgency gets the incident template",
			label:      domain.LabelProductive,
			text:       "Encontrei um erro ao gerar o relatório",
			confidence: 0.8,
			wantPart:   "Obrigado por reportar este problema",
		},
		{
			name:       "support question gets the support template",
			label:      domain.LabelProductive,
			text:       "Tenho uma dúvida sobre a fatura",
			confidence: 0.7,
			wantPart:   "solicitação de suporte",
		},
		{
			name:       "status request gets the status template",
			label:      domain.LabelProductive,
			text:       "Qual o andamento do meu pedido?",
			confidence: 0.7,
			wantPart:   "Verificaremos o status atual",
		},
		{
			name:       "meeting request gets the scheduling template",
			label:      domain.LabelProductive,
			text:       "Podemos marcar uma reunião na quinta?",
			confidence: 0.7,
			wantPart:   "propostas de horários",
		},
		{
			name:       "congratulations get the congratulations template",
			label:      domain.LabelUnproductive,
			text:       "Parabéns pelo lançamento do produto!",
			confidence: 0.8,
			wantPart:   "agradecemos o reconhecimento",
		},
		{
			name:       "thanks get the gratitude template",
			label:      domain.LabelUnproductive,
			text:       "Muito obrigado pela atenção de sempre",
			confidence: 0.8,
			wantPart:   "gratos pelo seu agradecimento",
		},
		{
			name:       "holiday greeting gets the seasonal template",
			label:      domain.LabelUnproductive,
			text:       "Feliz Natal para toda a equipe",
			confidence: 0.8,
			wantPart:   "Feliz feriado",
		},
		{
			name:       "birthday greeting gets the birthday template",
			label:      domain.LabelUnproductive,
			text:       "Feliz aniversário! Tudo de bom",
			confidence: 0.8,
			wantPart:   "felicitações de aniversário",
		},
		{
			name:       "productive without triggers and high confidence",
			label:      domain.LabelProductive,
			text:       "Segue em anexo o documento para apreciação",
			confidence: 0.85,
			wantPart:   "nossa equipe está analisando",
		},
		{
			name:       "productive without triggers and mid confidence",
			label:      domain.LabelProductive,
			text:       "Segue em anexo o documento para apreciação",
			confidence: 0.7,
			wantPart:   "em até 24 horas",
		},
		{
			name:       "productive without triggers and low confidence",
			label:      domain.LabelProductive,
			text:       "Segue em anexo o documento para apreciação",
			confidence: 0.5,
			wantPart:   "Confirmamos o recebimento",
		},
		{
			name:       "unproductive without triggers and low confidence",
			label:      domain.LabelUnproductive,
			text:       "Passando para deixar um abraço",
			confidence: 0.5,
			wantPart:   "gratos pela atenção",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := SelectTemplate(tt.label, tt.text, tt.confidence)

			if !strings.Contains(reply, tt.wantPart) {
				t.Errorf("reply = %q, want it to contain %q", reply, tt.wantPart)
			}
		})
	}
}

// TestSelectTemplateGroupPriority verifies the first matching group wins when
// a text triggers several groups.
func TestSelectTemplateGroupPriority(t *testing.T) {
	// "urgente" (group 1) and "erro" (group 2) both present.
	reply := SelectTemplate(domain.LabelProductive, "erro urgente na produção", 0.9)

	if !strings.Contains(reply, "priorizando sua demanda") {
		t.Errorf("expected the urgency template to win, got %q", reply)
	}
}

// TestConfidenceBandBoundaries pins the band cut points.
func TestConfidenceBandBoundaries(t *testing.T) {
	tests := []struct {
		confidence float64
		wantBand   int
	}{
		{0.95, 0},
		{0.81, 0},
		{0.80, 1},
		{0.61, 1},
		{0.60, 2},
		{0.10, 2},
	}

	for _, tt := range tests {
		if got := confidenceBand(tt.confidence); got != tt.wantBand {
			t.Errorf("confidenceBand(%v) = %d, want %d", tt.confidence, got, tt.wantBand)
		}
	}
}

// TestBuildReplyPromptValidUTF8 verifies long accented emails are truncated
// at a rune boundary before entering the prompt.
func TestBuildReplyPromptValidUTF8(t *testing.T) {
	// One ASCII byte followed by 2-byte runes puts the prompt cap offset in
	// the middle of a rune.
	text := "x" + strings.Repeat("ã", 1200)

	for _, label := range []domain.Label{domain.LabelProductive, domain.LabelUnproductive} {
		prompt := buildReplyPrompt(label, text)

		if !utf8.ValidString(prompt) {
			t.Errorf("label %v: prompt contains invalid UTF-8", label)
		}
		if !strings.Contains(prompt, "...") {
			t.Errorf("label %v: missing truncation marker", label)
		}
	}
}

type fakeTextGen struct {
	reply string
	err   error
}

func (f *fakeTextGen) Generate(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

// TestGeneratorSuggestReply tests the generated-or-static reply selection.
func TestGeneratorSuggestReply(t *testing.T) {
	text := "Tenho uma dúvida sobre a fatura"

	t.Run("nil backend uses static templates", func(t *testing.T) {
		g := NewGenerator(nil)

		reply := g.SuggestReply(context.Background(), domain.LabelProductive, text, 0.7)

		if !strings.Contains(reply, "solicitação de suporte") {
			t.Errorf("reply = %q, want static support template", reply)
		}
	})

	t.Run("backend reply is trimmed and returned", func(t *testing.T) {
		g := NewGenerator(&fakeTextGen{reply: "  Recebemos sua mensagem.  \n"})

		reply := g.SuggestReply(context.Background(), domain.LabelProductive, text, 0.7)

		if reply != "Recebemos sua mensagem." {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("backend error falls back to static templates", func(t *testing.T) {
		g := NewGenerator(&fakeTextGen{err: errors.New("rate limited")})

		reply := g.SuggestReply(context.Background(), domain.LabelUnproductive, "Feliz Natal!", 0.8)

		if !strings.Contains(reply, "Feliz feriado") {
			t.Errorf("reply = %q, want static seasonal template", reply)
		}
	})

	t.Run("blank backend reply falls back to static templates", func(t *testing.T) {
		g := NewGenerator(&fakeTextGen{reply: "   "})

		reply := g.SuggestReply(context.Background(), domain.LabelProductive, text, 0.7)

		if !strings.Contains(reply, "solicitação de suporte") {
			t.Errorf("reply = %q, want static support template", reply)
		}
	})
}
