package usecase

import (
	"context"
	"errors"

	"github.com/msriffel/clientrech/internal/entity"
)

// ContactUseCase cobre o CRUD de contatos, sempre escopado ao cliente dono.
type ContactUseCase struct {
	ClientRepo  ClientRepositoryInterface
	ContactRepo ContactRepositoryInterface
}

func NewContactUseCase(
	clientRepo ClientRepositoryInterface,
	contactRepo ContactRepositoryInterface,
) *ContactUseCase {
	return &ContactUseCase{
		ClientRepo:  clientRepo,
		ContactRepo: contactRepo,
	}
}

func (uc *ContactUseCase) Add(ctx context.Context, input AddContactInput) (*entity.Contact, error) {
	validationErrors := ValidateAddContactInput(input)
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

	if _, err := uc.ClientRepo.FindByID(ctx, input.ClientID); err != nil {
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

	contact, err := entity.NewContact(input.ClientID, input.Name, input.Email, input.Phone, input.Role)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: err.Error(),
		}
	}

	if err := uc.ContactRepo.Create(ctx, contact); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to create contact: " + err.Error(),
		}
	}

	return contact, nil
}

func (uc *ContactUseCase) List(ctx context.Context, clientID string) ([]entity.Contact, error) {
	contacts, err := uc.ContactRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to list contacts: " + err.Error(),
		}
	}
	return contacts, nil
}

func (uc *ContactUseCase) Update(ctx context.Context, contactID string, input UpdateContactInput) (*entity.Contact, error) {
	contact, err := uc.ContactRepo.FindByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "contato não encontrado: " + contactID,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load contact: " + err.Error(),
		}
	}

	if input.Name != "" {
		contact.Name = input.Name
	}
	if input.Email != "" {
		contact.Email = input.Email
	}
	if input.Phone != "" {
		contact.Phone = input.Phone
	}
	if input.Role != "" {
		contact.Role = input.Role
	}

	if err := uc.ContactRepo.Update(ctx, contact); err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "contato não encontrado: " + contactID,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to update contact: " + err.Error(),
		}
	}

	return contact, nil
}

// Delete de id inexistente responde NotFound explícito, nunca no-op
// silencioso.
func (uc *ContactUseCase) Delete(ctx context.Context, contactID string) error {
	if err := uc.ContactRepo.Delete(ctx, contactID); err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return &DomainError{
				Code:    CodeNotFound,
				Message: "contato não encontrado: " + contactID,
			}
		}
		return &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to delete contact: " + err.Error(),
		}
	}
	return nil
}
