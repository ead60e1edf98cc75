package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
	"github.com/msriffel/clientrech/internal/infra/queue"
)

// RecordInteractionUseCase é a única operação que mexe nas duas datas do
// cliente: grava a interação datada de agora e avança lastContactDate/
// nextContactDate como uma unidade lógica.
type RecordInteractionUseCase struct {
	ClientRepo      ClientRepositoryInterface
	ContactRepo     ContactRepositoryInterface
	InteractionRepo InteractionRepositoryInterface
	Queue           ReminderPublisherInterface
}

func NewRecordInteractionUseCase(
	clientRepo ClientRepositoryInterface,
	contactRepo ContactRepositoryInterface,
	interactionRepo InteractionRepositoryInterface,
	queue ReminderPublisherInterface,
) *RecordInteractionUseCase {
	return &RecordInteractionUseCase{
		ClientRepo:      clientRepo,
		ContactRepo:     contactRepo,
		InteractionRepo: interactionRepo,
		Queue:           queue,
	}
}

func (uc *RecordInteractionUseCase) Execute(ctx context.Context, input RecordInteractionInput) (*RecordInteractionOutput, error) {
	validationErrors := ValidateRecordInteractionInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: errMsg,
		}
	}

	client, err := uc.ClientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "cliente não encontrado: " + input.ClientID,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load client: " + err.Error(),
		}
	}

	// O instante escolhido pelo usuário chega como relógio de parede e sai
	// igual: nada de conversão implícita de fuso.
	nextContact, _ := ParseLocalDate(input.NextContactDate)
	now := time.Now()

	interaction, err := entity.NewInteraction(client.ID, entity.InteractionType(input.Type), input.Notes, now)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: err.Error(),
		}
	}

	txn := NewTransaction()

	txn.AddOperation("create_interaction", func(ctx context.Context) error {
		return uc.InteractionRepo.Create(ctx, interaction)
	})

	// Interação gravada sem a agenda avançar é o estado inconsistente que a
	// compensação existe para evitar.
	txn.AddCompensation("delete_interaction", func(ctx context.Context) error {
		return uc.InteractionRepo.Delete(ctx, interaction.ID)
	})

	txn.AddOperation("advance_contact_dates", func(ctx context.Context) error {
		return uc.ClientRepo.UpdateContactDates(ctx, client.ID, now, nextContact)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    CodePartialFailure,
			Message: "failed to record interaction and advance schedule: " + err.Error(),
		}
	}

	uc.publishReminder(client, interaction, nextContact)

	return &RecordInteractionOutput{
		InteractionID:   interaction.ID,
		LastContactDate: now,
		NextContactDate: nextContact,
	}, nil
}

// publishReminder avisa o worker de lembretes em background. Falha aqui não
// desfaz nada: a interação já está gravada e o banco é a fonte da verdade.
func (uc *RecordInteractionUseCase) publishReminder(client *entity.Client, interaction *entity.Interaction, nextContact time.Time) {
	if uc.Queue == nil {
		return
	}

	go func() {
		contacts, err := uc.ContactRepo.FindByClientID(context.Background(), client.ID)
		if err != nil || len(contacts) == 0 {
			return
		}

		payload := queue.ReminderPayload{
			ClientID:        client.ID,
			CompanyName:     client.CompanyName,
			ContactName:     contacts[0].Name,
			ContactEmail:    contacts[0].Email,
			InteractionType: string(interaction.Type),
			NextContactDate: nextContact.Format("02/01/2006 15:04"),
		}

		if err := uc.Queue.PublishReminder(context.Background(), payload); err != nil {
			log.Printf("⚠️ Interação gravada, mas falha ao publicar lembrete: %v", err)
		}
	}()
}
