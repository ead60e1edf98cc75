package usecase

import (
	"context"
	"errors"

	"github.com/msriffel/clientrech/internal/entity"
)

// DeleteClientUseCase remove o cliente em cascata: interações, depois
// contatos, depois o cliente. As linhas dependentes saem primeiro; se algo
// falhar no meio, o erro sobe como falha parcial em vez de sumir.
type DeleteClientUseCase struct {
	ClientRepo      ClientRepositoryInterface
	ContactRepo     ContactRepositoryInterface
	InteractionRepo InteractionRepositoryInterface
}

func NewDeleteClientUseCase(
	clientRepo ClientRepositoryInterface,
	contactRepo ContactRepositoryInterface,
	interactionRepo InteractionRepositoryInterface,
) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		ClientRepo:      clientRepo,
		ContactRepo:     contactRepo,
		InteractionRepo: interactionRepo,
	}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, clientID string) error {
	if _, err := uc.ClientRepo.FindByID(ctx, clientID); err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return &DomainError{
				Code:    CodeNotFound,
				Message: "cliente não encontrado: " + clientID,
			}
		}
		return &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load client: " + err.Error(),
		}
	}

	txn := NewTransaction()

	txn.AddOperation("delete_interactions", func(ctx context.Context) error {
		return uc.InteractionRepo.DeleteByClientID(ctx, clientID)
	})

	txn.AddOperation("delete_contacts", func(ctx context.Context) error {
		return uc.ContactRepo.DeleteByClientID(ctx, clientID)
	})

	txn.AddOperation("delete_client", func(ctx context.Context) error {
		return uc.ClientRepo.Delete(ctx, clientID)
	})

	if err := txn.Execute(ctx); err != nil {
		return &TechnicalError{
			Code:    CodePartialFailure,
			Message: "cascade delete did not complete: " + err.Error(),
		}
	}

	return nil
}
