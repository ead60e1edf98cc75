package usecase

import (
	"context"
	"errors"

	"github.com/msriffel/clientrech/internal/entity"
)

// AcceptSuggestionUseCase aplica uma sugestão previamente calculada: muda só
// o status. As datas de contato não são tocadas aqui.
type AcceptSuggestionUseCase struct {
	ClientRepo ClientRepositoryInterface
}

func NewAcceptSuggestionUseCase(clientRepo ClientRepositoryInterface) *AcceptSuggestionUseCase {
	return &AcceptSuggestionUseCase{ClientRepo: clientRepo}
}

func (uc *AcceptSuggestionUseCase) Execute(ctx context.Context, input AcceptSuggestionInput) error {
	status := entity.ClientStatus(input.SuggestedStatus)
	if !status.IsValid() {
		return &DomainError{
			Code:    CodeInvalidStatus,
			Message: "status sugerido inválido: " + input.SuggestedStatus,
		}
	}

	if err := uc.ClientRepo.UpdateStatus(ctx, input.ClientID, status); err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return &DomainError{
				Code:    CodeNotFound,
				Message: "cliente não encontrado: " + input.ClientID,
			}
		}
		return &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to update status: " + err.Error(),
		}
	}

	return nil
}
