package usecase

import (
	"context"
	"errors"

	"github.com/msriffel/clientrech/internal/entity"
)

// InteractionUseCase cobre edição e remoção de interações já registradas.
// O registro em si (que avança a agenda do cliente) fica no
// RecordInteractionUseCase.
type InteractionUseCase struct {
	InteractionRepo InteractionRepositoryInterface
}

func NewInteractionUseCase(interactionRepo InteractionRepositoryInterface) *InteractionUseCase {
	return &InteractionUseCase{InteractionRepo: interactionRepo}
}

func (uc *InteractionUseCase) List(ctx context.Context, clientID string) ([]entity.Interaction, error) {
	interactions, err := uc.InteractionRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to list interactions: " + err.Error(),
		}
	}
	return interactions, nil
}

func (uc *InteractionUseCase) Update(ctx context.Context, interactionID string, input UpdateInteractionInput) (*entity.Interaction, error) {
	interaction, err := uc.InteractionRepo.FindByID(ctx, interactionID)
	if err != nil {
		if errors.Is(err, entity.ErrInteractionNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "interação não encontrada: " + interactionID,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load interaction: " + err.Error(),
		}
	}

	if input.Type != "" {
		interactionType := entity.InteractionType(input.Type)
		if !interactionType.IsValid() {
			return nil, &DomainError{
				Code:    CodeValidationError,
				Message: "tipo de interação inválido: " + input.Type,
			}
		}
		interaction.Type = interactionType
	}
	if input.Notes != "" {
		interaction.Notes = input.Notes
	}
	if input.Date != "" {
		date, err := ParseLocalDate(input.Date)
		if err != nil {
			return nil, &DomainError{
				Code:    CodeValidationError,
				Message: "data inválida: " + input.Date,
			}
		}
		interaction.Date = date
	}

	if err := uc.InteractionRepo.Update(ctx, interaction); err != nil {
		if errors.Is(err, entity.ErrInteractionNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "interação não encontrada: " + interactionID,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to update interaction: " + err.Error(),
		}
	}

	return interaction, nil
}

func (uc *InteractionUseCase) Delete(ctx context.Context, interactionID string) error {
	if err := uc.InteractionRepo.Delete(ctx, interactionID); err != nil {
		if errors.Is(err, entity.ErrInteractionNotFound) {
			return &DomainError{
				Code:    CodeNotFound,
				Message: "interação não encontrada: " + interactionID,
			}
		}
		return &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to delete interaction: " + err.Error(),
		}
	}
	return nil
}
