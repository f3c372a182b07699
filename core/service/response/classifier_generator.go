package response

import (
	"context"
	"fmt"
	"strings"

	"classifier_server/core/domain"
	"classifier_server/core/port/out"
	"classifier_server/pkg/logger"
	"classifier_server/pkg/textutil"
)

const maxPromptEmailLen = 1500

// Generator produces the suggested reply for a classified email. When a
// text-generation backend is configured it writes the reply from a fixed
// prompt per label; any failure falls back to the static template catalog so
// a reply is always returned.
type Generator struct {
	textGen out.TextGenerator
}

// NewGenerator creates a reply generator. textGen may be nil, in which case
// only the static templates are used.
func NewGenerator(textGen out.TextGenerator) *Generator {
	return &Generator{textGen: textGen}
}

// SuggestReply returns the reply for the given classification. Never fails.
func (g *Generator) SuggestReply(ctx context.Context, label domain.Label, text string, confidence float64) string {
	if g.textGen != nil {
		reply, err := g.textGen.Generate(ctx, buildReplyPrompt(label, text))
		if err == nil && strings.TrimSpace(reply) != "" {
			return strings.TrimSpace(reply)
		}
		logger.WithError(err).Warn("Reply generation failed, using static template")
	}

	return SelectTemplate(label, text, confidence)
}

// buildReplyPrompt builds the fixed generation prompt for each label.
func buildReplyPrompt(label domain.Label, text string) string {
	truncated := textutil.Truncate(text, maxPromptEmailLen)

	if label == domain.LabelUnproductive {
		return fmt.Sprintf(`Você é um assistente de atendimento por email de uma empresa.
O email abaixo é uma mensagem de cortesia (agradecimento, felicitação ou convite social).
Escreva uma resposta curta, calorosa e profissional em português, agradecendo a mensagem.
Não inclua assunto nem assinatura, apenas o corpo da resposta.

Email recebido:
%s`, truncated)
	}

	return fmt.Sprintf(`Você é um assistente de atendimento por email de uma empresa.
O email abaixo requer ação da equipe (suporte, problema, solicitação ou prazo).
Escreva uma resposta curta e profissional em português confirmando o recebimento
e informando que a equipe responsável está tratando a demanda.
Não inclua assunto nem assinatura, apenas o corpo da resposta.

Email recebido:
%s`, truncated)
}
