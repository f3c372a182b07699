package classification

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"classifier_server/core/domain"
)

// Zero-shot candidate label descriptions and hypothesis template. The model
// scores the text against each description; the descriptions double as the
// keys of the returned score map.
const (
	LabelDescProductive   = "email produtivo que requer ação ou resposta"
	LabelDescUnproductive = "email improdutivo de cortesia ou felicitação"
	HypothesisTemplate    = "Este email é {}."
)

// Zero-shot threshold bands.
const (
	zeroShotConfident = 0.70 // above: trust the model score directly
	zeroShotAmbiguous = 0.50 // (ambiguous, confident]: delegate to keywords
)

// tooShort reports whether the cleaned text is below the analyzable minimum.
// Length is counted in characters, not bytes, so accented text is measured
// the same as plain ASCII.
func tooShort(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < MinAnalyzableLen
}

// shortTextResult is the terminal classification for texts below the minimum
// length. It overrides every other rule.
func shortTextResult() *domain.ClassificationResult {
	return &domain.ClassificationResult{
		Label:      domain.LabelUnproductive,
		Confidence: 0.5,
		Reasoning:  ReasonTooShort,
		Stage:      StageShortText,
	}
}

// DecideZeroShot fuses a zero-shot score pair with the lexical signals of the
// same text.
//
// Band layout: a score above 0.70 is trusted directly; when the best score
// lands in (0.50, 0.70] the label comes from the keyword policy while the
// confidence keeps the model's best score (the mismatch is intentional: the
// confidence reflects how sure the model was, the label reflects the
// tie-break); at 0.50 or below the default-productive business bias applies.
func DecideZeroShot(text string, productiveScore, unproductiveScore float64) *domain.ClassificationResult {
	if tooShort(text) {
		return shortTextResult()
	}

	scores := domain.ZeroShotScores{
		LabelDescProductive:   productiveScore,
		LabelDescUnproductive: unproductiveScore,
	}
	best := max(productiveScore, unproductiveScore)

	switch {
	case productiveScore > zeroShotConfident && productiveScore > unproductiveScore:
		return &domain.ClassificationResult{
			Label:      domain.LabelProductive,
			Confidence: productiveScore,
			Reasoning:  fmt.Sprintf("Modelo indicou email produtivo com pontuação %.2f", productiveScore),
			Scores:     scores,
			Stage:      StageModel,
		}

	case unproductiveScore > zeroShotConfident:
		return &domain.ClassificationResult{
			Label:      domain.LabelUnproductive,
			Confidence: unproductiveScore,
			Reasoning:  fmt.Sprintf("Modelo indicou email improdutivo com pontuação %.2f", unproductiveScore),
			Scores:     scores,
			Stage:      StageModel,
		}

	case best > zeroShotAmbiguous:
		// Ambiguous band: the keyword policy decides the label, the model's
		// best score stays as the confidence.
		keyword := DecideByKeywords(ExtractSignals(text))
		return &domain.ClassificationResult{
			Label:      keyword.Label,
			Confidence: best,
			Reasoning:  fmt.Sprintf("Pontuação ambígua (%.2f), decidido por palavras-chave: %s", best, keyword.Reasoning),
			Scores:     scores,
			Stage:      StageModel,
		}

	default:
		return &domain.ClassificationResult{
			Label:      domain.LabelProductive,
			Confidence: best,
			Reasoning:  fmt.Sprintf("Pontuação baixa (%.2f), classificação padrão produtiva", best),
			Scores:     scores,
			Stage:      StageModel,
		}
	}
}

// DecideSentiment fuses a sentiment label+score with the lexical counts of the
// same text. Keyword counts dominate; sentiment only decides when the text
// carries no lexical signal, where negative sentiment suggests a problem that
// needs action.
//
// Every branch produces a confidence in [0, 1] by construction: the formulas
// are products and minima of values already in range.
func DecideSentiment(text string, sentiment *domain.Sentiment) *domain.ClassificationResult {
	if tooShort(text) {
		return shortTextResult()
	}

	productiveCount, unproductiveCount := ExtractSignals(text)

	var result *domain.ClassificationResult
	switch {
	case productiveCount > unproductiveCount && productiveCount > 0:
		result = &domain.ClassificationResult{
			Label:      domain.LabelProductive,
			Confidence: min(0.95, sentiment.Score*0.8+float64(productiveCount)*0.1),
			Reasoning:  fmt.Sprintf("Contém %d palavras-chave produtivas", productiveCount),
		}

	case unproductiveCount > 0:
		result = &domain.ClassificationResult{
			Label:      domain.LabelUnproductive,
			Confidence: min(0.90, sentiment.Score*0.7+float64(unproductiveCount)*0.1),
			Reasoning:  fmt.Sprintf("Contém %d palavras-chave improdutivas", unproductiveCount),
		}

	case sentiment.Label == domain.SentimentNegative:
		result = &domain.ClassificationResult{
			Label:      domain.LabelProductive,
			Confidence: sentiment.Score * 0.8,
			Reasoning:  "Sentimento negativo indica possível problema",
		}

	default:
		result = &domain.ClassificationResult{
			Label:      domain.LabelUnproductive,
			Confidence: sentiment.Score * 0.6,
			Reasoning:  "Sem indicadores claros de produtividade",
		}
	}

	result.Sentiment = sentiment
	result.Stage = StageModel
	return result
}
