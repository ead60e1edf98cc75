package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/msriffel/clientrech/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteClientCascata(t *testing.T) {
	ctx := context.Background()

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)
	mockInteractionRepo := new(MockInteractionRepository)

	// Cliente com 2 contatos e 3 interações: depois do delete, nada pode
	// continuar apontando pro id dele.
	remainingContacts := 2
	remainingInteractions := 3

	mockClientRepo.On("FindByID", ctx, "client-1").Return(&entity.Client{ID: "client-1"}, nil)
	mockInteractionRepo.On("DeleteByClientID", ctx, "client-1").Run(func(mock.Arguments) {
		remainingInteractions = 0
	}).Return(nil)
	mockContactRepo.On("DeleteByClientID", ctx, "client-1").Run(func(mock.Arguments) {
		remainingContacts = 0
	}).Return(nil)
	mockClientRepo.On("Delete", ctx, "client-1").Return(nil)

	uc := NewDeleteClientUseCase(mockClientRepo, mockContactRepo, mockInteractionRepo)

	err := uc.Execute(ctx, "client-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, remainingContacts)
	assert.Equal(t, 0, remainingInteractions)
	mockClientRepo.AssertCalled(t, "Delete", ctx, "client-1")
}

func TestDeleteClientInexistente(t *testing.T) {
	ctx := context.Background()

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)
	mockInteractionRepo := new(MockInteractionRepository)

	mockClientRepo.On("FindByID", ctx, "ghost").Return(nil, entity.ErrClientNotFound)

	uc := NewDeleteClientUseCase(mockClientRepo, mockContactRepo, mockInteractionRepo)

	err := uc.Execute(ctx, "ghost")

	assert.Error(t, err)
	assert.Equal(t, CodeNotFound, err.(*DomainError).Code)
	mockInteractionRepo.AssertNotCalled(t, "DeleteByClientID", mock.Anything, mock.Anything)
}

func TestDeleteClientCascataInterrompidaViraErro(t *testing.T) {
	ctx := context.Background()

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)
	mockInteractionRepo := new(MockInteractionRepository)

	mockClientRepo.On("FindByID", ctx, "client-1").Return(&entity.Client{ID: "client-1"}, nil)
	mockInteractionRepo.On("DeleteByClientID", ctx, "client-1").Return(nil)
	mockContactRepo.On("DeleteByClientID", ctx, "client-1").Return(errors.New("deadlock"))

	uc := NewDeleteClientUseCase(mockClientRepo, mockContactRepo, mockInteractionRepo)

	err := uc.Execute(ctx, "client-1")

	// Cascata parcial nunca é silenciosa
	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodePartialFailure, err.(*TechnicalError).Code)
	mockClientRepo.AssertNotCalled(t, "Delete", mock.Anything, "client-1")
}
