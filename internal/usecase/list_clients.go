package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
	"github.com/msriffel/clientrech/internal/scheduling"
)

// ListClientsUseCase alimenta o dashboard: filtro, ordenação e estatísticas
// saem todos do avaliador de agenda, com a mesma janela injetada.
type ListClientsUseCase struct {
	ClientRepo  ClientRepositoryInterface
	ContactRepo ContactRepositoryInterface
}

func NewListClientsUseCase(
	clientRepo ClientRepositoryInterface,
	contactRepo ContactRepositoryInterface,
) *ListClientsUseCase {
	return &ListClientsUseCase{
		ClientRepo:  clientRepo,
		ContactRepo: contactRepo,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, input ListClientsInput) ([]entity.Client, error) {
	now, windowDays := normalizeWindow(input.Now, input.WindowDays)

	clients, err := uc.ClientRepo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to list clients: " + err.Error(),
		}
	}

	filtered := scheduling.Filter(clients, scheduling.Filters{
		Search:  input.Search,
		Status:  entity.ClientStatus(input.Status),
		Contact: scheduling.ContactFilter(input.ContactFilter),
	}, now, windowDays)

	scheduling.Sort(filtered)

	return filtered, nil
}

// Stats agrega a coleção inteira, sem filtros: é o número dos cards.
func (uc *ListClientsUseCase) Stats(ctx context.Context, input ListClientsInput) (*entity.ClientStats, error) {
	now, windowDays := normalizeWindow(input.Now, input.WindowDays)

	clients, err := uc.ClientRepo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to list clients: " + err.Error(),
		}
	}

	stats := scheduling.Stats(clients, now, windowDays)
	return &stats, nil
}

// Get devolve o cliente com os contatos já embutidos.
func (uc *ListClientsUseCase) Get(ctx context.Context, clientID string) (*entity.Client, error) {
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

	contacts, err := uc.ContactRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load contacts: " + err.Error(),
		}
	}
	client.Contacts = contacts

	return client, nil
}

func normalizeWindow(now time.Time, windowDays int) (time.Time, int) {
	if now.IsZero() {
		now = time.Now()
	}
	if windowDays <= 0 {
		windowDays = scheduling.DefaultWindowDays
	}
	return now, windowDays
}
