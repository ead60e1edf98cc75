package usecase

import (
	"context"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
	"github.com/msriffel/clientrech/internal/infra/queue"
)

type ClientRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Client) error
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	FindAll(ctx context.Context) ([]entity.Client, error)
	Update(ctx context.Context, c *entity.Client) error
	UpdateStatus(ctx context.Context, id string, status entity.ClientStatus) error
	UpdateContactDates(ctx context.Context, id string, lastContact, nextContact time.Time) error
	Delete(ctx context.Context, id string) error
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Contact) error
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	FindByClientID(ctx context.Context, clientID string) ([]entity.Contact, error)
	Update(ctx context.Context, c *entity.Contact) error
	Delete(ctx context.Context, id string) error
	DeleteByClientID(ctx context.Context, clientID string) error
}

type InteractionRepositoryInterface interface {
	Create(ctx context.Context, i *entity.Interaction) error
	FindByID(ctx context.Context, id string) (*entity.Interaction, error)
	// FindByClientID devolve as interações mais recentes primeiro.
	FindByClientID(ctx context.Context, clientID string) ([]entity.Interaction, error)
	Update(ctx context.Context, i *entity.Interaction) error
	Delete(ctx context.Context, id string) error
	DeleteByClientID(ctx context.Context, clientID string) error
}

// StatusSuggester é o contrato do motor de sugestão. A implementação padrão é
// o motor de regras em internal/ai; um serviço de inferência real entra aqui
// sem tocar nos usecases.
type StatusSuggester interface {
	Suggest(historyText string) entity.AISuggestion
}

type ReminderPublisherInterface interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}
