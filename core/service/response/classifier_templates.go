// Package response selects or generates the suggested reply for a classified
// email. Selection is a pure lookup over the input text and the
// classification; an optional text-generation backend can replace the static
// catalog and falls back to it on any failure.
package response

import (
	"strings"

	"classifier_server/core/domain"
)

// FallbackReply is returned when even template selection fails upstream.
const FallbackReply = "Obrigado pelo seu contato. Retornaremos em breve."

// templateGroup pairs trigger keywords with a canned reply. Groups are
// scanned in priority order; the first match wins.
type templateGroup struct {
	triggers []string
	reply    string
}

var productiveGroups = []templateGroup{
	{
		triggers: []string{"urgente", "crítico", "emergência"},
		reply: "Recebemos sua solicitação urgente e nossa equipe técnica está " +
			"priorizando sua demanda. Você receberá uma atualização em no máximo 2 horas.",
	},
	{
		triggers: []string{"erro", "problema", "falha", "bug"},
		reply: "Obrigado por reportar este problema. Nossa equipe técnica está " +
			"investigando e trabalharemos para resolver o mais rápido possível. " +
			"Você receberá atualizações sobre o progresso da correção.",
	},
	{
		triggers: []string{"suporte", "ajuda", "dúvida"},
		reply: "Recebemos sua solicitação de suporte. Nossa equipe especializada " +
			"analisará sua questão e retornará com uma solução detalhada em até 24 horas.",
	},
	{
		triggers: []string{"status", "atualização", "andamento"},
		reply: "Obrigado por solicitar uma atualização. Verificaremos o status atual " +
			"de sua demanda e enviaremos um relatório detalhado em breve.",
	},
	{
		triggers: []string{"reunião", "meeting", "encontro"},
		reply: "Recebemos sua solicitação de reunião. Verificaremos a disponibilidade " +
			"da equipe e retornaremos com propostas de horários adequados.",
	},
}

var unproductiveGroups = []templateGroup{
	{
		triggers: []string{"parabéns", "felicitações"},
		reply: "Muito obrigado pelas felicitações! Ficamos muito felizes " +
			"em receber sua mensagem e agradecemos o reconhecimento.",
	},
	{
		triggers: []string{"obrigado", "agradecimento"},
		reply: "Ficamos muito gratos pelo seu agradecimento! É sempre um prazer " +
			"poder ajudar e contribuir para o seu sucesso.",
	},
	{
		triggers: []string{"natal", "ano novo", "feriado"},
		reply: "Muito obrigado pelas felicitações! Desejamos a você e sua família " +
			"momentos especiais e muita alegria. Feliz feriado!",
	},
	{
		triggers: []string{"aniversário", "nascimento"},
		reply: "Obrigado pelas felicitações de aniversário! Ficamos muito felizes " +
			"em receber sua mensagem carinhosa.",
	},
}

// Generic replies indexed by confidence band: >0.8, >0.6, else.
var genericProductive = [3]string{
	"Recebemos sua mensagem e nossa equipe está analisando. " +
		"Retornaremos com uma resposta detalhada em breve.",
	"Obrigado por entrar em contato. Sua demanda foi direcionada para " +
		"o setor responsável e você receberá um retorno em até 24 horas.",
	"Confirmamos o recebimento de sua solicitação. Nossa equipe está " +
		"trabalhando na análise e entrará em contato assim que possível.",
}

var genericUnproductive = [3]string{
	"Muito obrigado pela mensagem! Ficamos felizes em receber seu contato " +
		"e agradecemos por pensar em nós.",
	"Agradecemos sua mensagem. É sempre um prazer ouvir de você! " +
		"Tenha um excelente dia.",
	"Obrigado pelo contato! Sua mensagem é muito importante para nós " +
		"e ficamos gratos pela atenção.",
}

// SelectTemplate picks the reply template for the classification. Specific
// keyword groups are checked in priority order; without a match the generic
// template for the confidence band is used. Pure and side-effect free.
func SelectTemplate(label domain.Label, text string, confidence float64) string {
	textLower := strings.ToLower(text)

	groups := productiveGroups
	generic := genericProductive
	if label == domain.LabelUnproductive {
		groups = unproductiveGroups
		generic = genericUnproductive
	}

	for _, group := range groups {
		for _, trigger := range group.triggers {
			if strings.Contains(textLower, trigger) {
				return group.reply
			}
		}
	}

	return generic[confidenceBand(confidence)]
}

// confidenceBand maps a confidence to a generic-template index.
func confidenceBand(confidence float64) int {
	switch {
	case confidence > 0.8:
		return 0
	case confidence > 0.6:
		return 1
	default:
		return 2
	}
}
