package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func storedInteraction() *entity.Interaction {
	return &entity.Interaction{
		ID:       "interaction-1",
		ClientID: "client-1",
		Type:     entity.InteractionChamada,
		Date:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local),
		Notes:    "primeiro contato",
	}
}

func TestUpdateInteractionParcial(t *testing.T) {
	ctx := context.Background()

	mockInteractionRepo := new(MockInteractionRepository)

	mockInteractionRepo.On("FindByID", ctx, "interaction-1").Return(storedInteraction(), nil)
	mockInteractionRepo.On("Update", ctx, mock.Anything).Return(nil)

	uc := NewInteractionUseCase(mockInteractionRepo)

	interaction, err := uc.Update(ctx, "interaction-1", UpdateInteractionInput{
		Notes: "primeiro contato, pediu proposta por email",
	})

	assert.NoError(t, err)
	assert.Equal(t, "primeiro contato, pediu proposta por email", interaction.Notes)

	// Tipo e data ficam como estavam
	assert.Equal(t, entity.InteractionChamada, interaction.Type)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local), interaction.Date)
}

func TestUpdateInteractionTipoInvalido(t *testing.T) {
	ctx := context.Background()

	mockInteractionRepo := new(MockInteractionRepository)

	mockInteractionRepo.On("FindByID", ctx, "interaction-1").Return(storedInteraction(), nil)

	uc := NewInteractionUseCase(mockInteractionRepo)

	_, err := uc.Update(ctx, "interaction-1", UpdateInteractionInput{Type: "Telegrama"})

	assert.Error(t, err)
	assert.Equal(t, CodeValidationError, err.(*DomainError).Code)
	mockInteractionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateInteractionDataPreservaHoraDeParede(t *testing.T) {
	ctx := context.Background()

	mockInteractionRepo := new(MockInteractionRepository)

	mockInteractionRepo.On("FindByID", ctx, "interaction-1").Return(storedInteraction(), nil)
	mockInteractionRepo.On("Update", ctx, mock.Anything).Return(nil)

	uc := NewInteractionUseCase(mockInteractionRepo)

	interaction, err := uc.Update(ctx, "interaction-1", UpdateInteractionInput{
		Date: "2024-01-16T14:30",
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 16, 14, 30, 0, 0, time.Local), interaction.Date)
}

func TestUpdateInteractionInexistente(t *testing.T) {
	ctx := context.Background()

	mockInteractionRepo := new(MockInteractionRepository)

	mockInteractionRepo.On("FindByID", ctx, "ghost").Return(nil, entity.ErrInteractionNotFound)

	uc := NewInteractionUseCase(mockInteractionRepo)

	_, err := uc.Update(ctx, "ghost", UpdateInteractionInput{Notes: "nada"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeNotFound, err.(*DomainError).Code)
}

func TestDeleteInteractionInexistente(t *testing.T) {
	ctx := context.Background()

	mockInteractionRepo := new(MockInteractionRepository)

	mockInteractionRepo.On("Delete", ctx, "ghost").Return(entity.ErrInteractionNotFound)

	uc := NewInteractionUseCase(mockInteractionRepo)

	err := uc.Delete(ctx, "ghost")

	// Mesmo sinal do resto do CRUD: NotFound explícito, nunca no-op
	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeNotFound, err.(*DomainError).Code)
}

func TestDeleteInteractionSucesso(t *testing.T) {
	ctx := context.Background()

	mockInteractionRepo := new(MockInteractionRepository)

	mockInteractionRepo.On("Delete", ctx, "interaction-1").Return(nil)

	uc := NewInteractionUseCase(mockInteractionRepo)

	err := uc.Delete(ctx, "interaction-1")

	assert.NoError(t, err)
}

func TestListInteractionsRepassaOrdemDoRepositorio(t *testing.T) {
	ctx := context.Background()

	mockInteractionRepo := new(MockInteractionRepository)

	mockInteractionRepo.On("FindByClientID", ctx, "client-1").Return([]entity.Interaction{
		{ID: "i-2", ClientID: "client-1", Type: entity.InteractionEmail, Date: time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)},
		{ID: "i-1", ClientID: "client-1", Type: entity.InteractionChamada, Date: time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)},
	}, nil)

	uc := NewInteractionUseCase(mockInteractionRepo)

	interactions, err := uc.List(ctx, "client-1")

	assert.NoError(t, err)
	assert.Len(t, interactions, 2)
	assert.Equal(t, "i-2", interactions[0].ID)
}
