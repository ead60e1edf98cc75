package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msriffel/clientrech/internal/entity"
)

type SuggestStatusUseCase struct {
	ClientRepo      ClientRepositoryInterface
	InteractionRepo InteractionRepositoryInterface
	Suggester       StatusSuggester
}

func NewSuggestStatusUseCase(
	clientRepo ClientRepositoryInterface,
	interactionRepo InteractionRepositoryInterface,
	suggester StatusSuggester,
) *SuggestStatusUseCase {
	return &SuggestStatusUseCase{
		ClientRepo:      clientRepo,
		InteractionRepo: interactionRepo,
		Suggester:       suggester,
	}
}

// Execute monta o texto do histórico e pede a sugestão ao motor. O motor é
// quem trata histórico vazio, então aqui não tem caso especial.
func (uc *SuggestStatusUseCase) Execute(ctx context.Context, clientID string) (*entity.AISuggestion, error) {
	if _, err := uc.ClientRepo.FindByID(ctx, clientID); err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "cliente não encontrado: " + clientID,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load client: " + err.Error(),
		}
	}

	interactions, err := uc.InteractionRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load interactions: " + err.Error(),
		}
	}

	suggestion := uc.Suggester.Suggest(RenderHistory(interactions))
	return &suggestion, nil
}

// RenderHistory concatena as interações no formato que o motor espera:
// "<tipo> em <dd/mm/aaaa>: <notas>", uma por linha, mais recentes primeiro.
func RenderHistory(interactions []entity.Interaction) string {
	lines := make([]string, 0, len(interactions))
	for _, interaction := range interactions {
		lines = append(lines, fmt.Sprintf("%s em %s: %s",
			interaction.Type,
			interaction.Date.Format("02/01/2006"),
			interaction.Notes,
		))
	}
	return strings.Join(lines, "\n")
}
