package ai

import (
	"strings"

	"github.com/msriffel/clientrech/internal/entity"
)

// Motor de sugestão de status: heurística determinística por palavras-chave,
// não é um modelo estatístico. Mantém o mesmo contrato de entrada/saída de um
// serviço de inferência real, então pode ser trocado sem mexer nos usecases.
//
// As quatro listas são fixas. Conta presença (0 ou >0 por palavra), nunca
// frequência.
var (
	positiveWords = []string{"satisfeito", "interessado", "positivo", "bom", "ótimo", "excelente", "recomendo"}
	negativeWords = []string{"problema", "insatisfeito", "negativo", "ruim", "péssimo", "cancelar"}
	activeWords   = []string{"contrato", "fechado", "assinado", "pago", "ativo"}
	coldWords     = []string{"não responde", "sem retorno", "silêncio", "inativo"}
)

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Suggest avalia o histórico concatenado de interações e devolve exatamente
// uma sugestão. Função total: qualquer string entra, inclusive vazia.
//
// Ordem de decisão (a primeira regra que casar vence):
//  1. histórico em branco       -> Prospect Frio
//  2. sinal comercial (ativo)   -> Cliente Ativo
//  3. frio, ou negativo > positivo -> Cliente Inativo
//  4. positivo >= 3             -> Prospect Quente
//  5. positivo >= 1             -> Prospect Morno
//  6. nada                      -> Prospect Frio
func (e *Engine) Suggest(historyText string) entity.AISuggestion {
	if strings.TrimSpace(historyText) == "" {
		return entity.AISuggestion{
			SuggestedStatus: entity.StatusProspectFrio,
			Reason:          "Cliente sem histórico de interações",
		}
	}

	logs := strings.ToLower(historyText)

	positiveCount := countPresent(logs, positiveWords)
	negativeCount := countPresent(logs, negativeWords)
	activeCount := countPresent(logs, activeWords)
	coldCount := countPresent(logs, coldWords)

	if activeCount > 0 {
		return entity.AISuggestion{
			SuggestedStatus: entity.StatusClienteAtivo,
			Reason:          "Baseado nas interações, o cliente demonstra atividade comercial com contratos ou pagamentos.",
		}
	}

	if coldCount > 0 || negativeCount > positiveCount {
		return entity.AISuggestion{
			SuggestedStatus: entity.StatusClienteInativo,
			Reason:          "O histórico indica baixo engajamento ou problemas na comunicação.",
		}
	}

	if positiveCount >= 3 {
		return entity.AISuggestion{
			SuggestedStatus: entity.StatusProspectQuente,
			Reason:          "Múltiplas indicações positivas sugerem alto interesse e probabilidade de conversão.",
		}
	}

	if positiveCount >= 1 {
		return entity.AISuggestion{
			SuggestedStatus: entity.StatusProspectMorno,
			Reason:          "Algumas indicações positivas, mas ainda precisa de mais engajamento.",
		}
	}

	return entity.AISuggestion{
		SuggestedStatus: entity.StatusProspectFrio,
		Reason:          "Poucas interações ou indicadores de engajamento. Recomenda-se mais follow-up.",
	}
}

func countPresent(logs string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(logs, word) {
			count++
		}
	}
	return count
}
