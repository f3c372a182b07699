// Package classification implements the multi-signal email productivity
// classifier: lexical signal extraction, the keyword decision policy, the
// signal-fusion decision policy and the fallback chain that ties them
// together.
package classification

import (
	"strings"
)

// MinAnalyzableLen is the minimum cleaned-text length (in characters) required
// for analysis. Shorter inputs are classified unproductive with low confidence
// before any backend is consulted.
const MinAnalyzableLen = 10

// =============================================================================
// Lexical Vocabularies
// =============================================================================

// productiveKeywords are Portuguese cues for emails that require action:
// support requests, incidents, deadlines, approvals.
var productiveKeywords = []string{
	"suporte", "problema", "erro", "bug", "falha", "ajuda", "dúvida",
	"solicitação", "pedido", "urgente", "prazo", "atualização", "status",
	"pendente", "bloqueado", "reunião", "projeto", "revisão", "análise",
	"aprovação", "confirmar", "verificar", "resolver", "corrigir",
}

// unproductiveKeywords are cues for courtesy/social emails with no action
// required.
var unproductiveKeywords = []string{
	"parabéns", "felicitações", "obrigado", "agradecimento", "natal",
	"aniversário", "feriado", "férias", "convite", "social",
}

// =============================================================================
// Lexical Signal Extractor
// =============================================================================

// ExtractSignals scans the text for both vocabularies and returns how many
// entries of each occur as a substring. Each vocabulary entry counts at most
// once regardless of how many times it appears. Matching is case-insensitive.
// Empty text yields (0, 0).
func ExtractSignals(text string) (productiveCount, unproductiveCount int) {
	if text == "" {
		return 0, 0
	}

	textLower := strings.ToLower(text)

	for _, keyword := range productiveKeywords {
		if strings.Contains(textLower, keyword) {
			productiveCount++
		}
	}
	for _, keyword := range unproductiveKeywords {
		if strings.Contains(textLower, keyword) {
			unproductiveCount++
		}
	}

	return productiveCount, unproductiveCount
}
