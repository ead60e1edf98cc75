package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
)

type CreateClientUseCase struct {
	ClientRepo  ClientRepositoryInterface
	ContactRepo ContactRepositoryInterface
}

func NewCreateClientUseCase(
	clientRepo ClientRepositoryInterface,
	contactRepo ContactRepositoryInterface,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		ClientRepo:  clientRepo,
		ContactRepo: contactRepo,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	validationErrors := ValidateCreateClientInput(input)
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

	nextContact, _ := ParseLocalDate(input.NextContactDate)
	now := time.Now()

	logoURL := input.LogoURL
	if logoURL == "" {
		logoURL = fmt.Sprintf("https://picsum.photos/seed/%d/100/100", now.UnixMilli())
	}

	// lastContactDate nasce igual à criação; nextContactDate é a escolhida
	// pelo usuário e nunca fica vazia daqui em diante.
	client, err := entity.NewClient(input.CompanyName, input.Website, input.Phone, logoURL,
		entity.ClientStatus(input.Status), nextContact)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: err.Error(),
		}
	}

	contact, err := entity.NewContact(client.ID, input.ContactName, input.ContactEmail,
		input.ContactPhone, input.ContactRole)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: err.Error(),
		}
	}

	txn := NewTransaction()

	txn.AddOperation("create_client", func(ctx context.Context) error {
		return uc.ClientRepo.Create(ctx, client)
	})

	// Se o contato falhar depois do cliente, desfaz o cliente: ninguém fica
	// órfão de contato sem o chamador ficar sabendo.
	txn.AddCompensation("delete_client", func(ctx context.Context) error {
		return uc.ClientRepo.Delete(ctx, client.ID)
	})

	txn.AddOperation("create_initial_contact", func(ctx context.Context) error {
		return uc.ContactRepo.Create(ctx, contact)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to persist client and initial contact: " + err.Error(),
		}
	}

	return &CreateClientOutput{
		ID:  client.ID,
		Msg: "Cliente cadastrado com sucesso!",
	}, nil
}
