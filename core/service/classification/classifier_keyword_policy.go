package classification

import (
	"fmt"

	"classifier_server/core/domain"
)

// Reasoning strings surfaced to the caller. Kept in Portuguese to match the
// language of the emails this service handles.
const (
	ReasonDefaultBusiness = "Classificação padrão para emails empresariais"
	ReasonTooShort        = "Texto muito curto para análise"
	ReasonFallbackError   = "Classificação de fallback devido a erro"
)

// DecideByKeywords converts the two lexical counts into a classification.
// The comparison is deliberately strict: a non-zero tie falls through to the
// unproductive check, and only a fully silent text gets the default-productive
// business bias.
//
// This is the terminal decision policy of the fallback chain. It is pure
// arithmetic over non-negative counts and must never fail.
func DecideByKeywords(productiveCount, unproductiveCount int) *domain.ClassificationResult {
	switch {
	case productiveCount > unproductiveCount:
		return &domain.ClassificationResult{
			Label:      domain.LabelProductive,
			Confidence: min(0.85, 0.6+0.1*float64(productiveCount)),
			Reasoning:  fmt.Sprintf("Contém %d palavras-chave produtivas", productiveCount),
			Stage:      StageKeyword,
		}

	case unproductiveCount > 0:
		return &domain.ClassificationResult{
			Label:      domain.LabelUnproductive,
			Confidence: min(0.80, 0.6+0.1*float64(unproductiveCount)),
			Reasoning:  fmt.Sprintf("Contém %d palavras-chave improdutivas", unproductiveCount),
			Stage:      StageKeyword,
		}

	default:
		return &domain.ClassificationResult{
			Label:      domain.LabelProductive,
			Confidence: 0.60,
			Reasoning:  ReasonDefaultBusiness,
			Stage:      StageKeyword,
		}
	}
}
