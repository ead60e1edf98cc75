package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
)

// UpdateClientUseCase faz update parcial: campo vazio no input fica como
// está. Colocar status = Cliente Inativo aqui é o caminho de desativação.
// Não existe transição especial, a agenda só passa a ignorar o cliente.
type UpdateClientUseCase struct {
	ClientRepo ClientRepositoryInterface
}

func NewUpdateClientUseCase(clientRepo ClientRepositoryInterface) *UpdateClientUseCase {
	return &UpdateClientUseCase{ClientRepo: clientRepo}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, clientID string, input UpdateClientInput) (*entity.Client, error) {
	client, err := uc.ClientRepo.FindByID(ctx, clientID)
	if err != nil {
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

	if input.CompanyName != "" {
		client.CompanyName = input.CompanyName
	}
	if input.Website != "" {
		client.Website = input.Website
	}
	if input.Phone != "" {
		client.Phone = input.Phone
	}
	if input.LogoURL != "" {
		client.LogoURL = input.LogoURL
	}

	if input.Status != "" {
		status := entity.ClientStatus(input.Status)
		if !status.IsValid() {
			return nil, &DomainError{
				Code:    CodeInvalidStatus,
				Message: "status inválido: " + input.Status,
			}
		}
		client.Status = status
	}

	if input.NextContactDate != "" {
		nextContact, err := ParseLocalDate(input.NextContactDate)
		if err != nil {
			return nil, &DomainError{
				Code:    CodeValidationError,
				Message: "next_contact_date inválida: " + input.NextContactDate,
			}
		}
		client.NextContactDate = nextContact
	}

	client.UpdatedAt = time.Now()

	if err := uc.ClientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "cliente não encontrado: " + clientID,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to update client: " + err.Error(),
		}
	}

	return client, nil
}
