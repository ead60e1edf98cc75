package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
	"github.com/msriffel/clientrech/internal/scheduling"
	"github.com/stretchr/testify/assert"
)

func dashboardFixture(now time.Time) []entity.Client {
	return []entity.Client{
		{
			ID:              "c-atrasado",
			CompanyName:     "Padaria Central",
			Status:          entity.StatusProspectQuente,
			NextContactDate: now.AddDate(0, 0, -3),
		},
		{
			ID:              "c-proximo",
			CompanyName:     "Auto Peças Silva",
			Status:          entity.StatusClienteAtivo,
			NextContactDate: now.AddDate(0, 0, 2),
		},
		{
			ID:              "c-inativo",
			CompanyName:     "Gráfica Paulista",
			Status:          entity.StatusClienteInativo,
			NextContactDate: now.AddDate(0, 0, -30),
		},
		{
			ID:              "c-tranquilo",
			CompanyName:     "Mercado do Bairro",
			Status:          entity.StatusProspectMorno,
			NextContactDate: now.AddDate(0, 0, 20),
		},
	}
}

func TestListClientsOrdenacao(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)

	mockClientRepo.On("FindAll", ctx).Return(dashboardFixture(now), nil)

	uc := NewListClientsUseCase(mockClientRepo, mockContactRepo)

	clients, err := uc.Execute(ctx, ListClientsInput{Now: now})

	assert.NoError(t, err)
	assert.Len(t, clients, 4)
	// Atrasado primeiro, inativo sempre por último
	assert.Equal(t, "c-atrasado", clients[0].ID)
	assert.Equal(t, "c-proximo", clients[1].ID)
	assert.Equal(t, "c-tranquilo", clients[2].ID)
	assert.Equal(t, "c-inativo", clients[3].ID)
}

func TestListClientsFiltroAtrasados(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)

	mockClientRepo.On("FindAll", ctx).Return(dashboardFixture(now), nil)

	uc := NewListClientsUseCase(mockClientRepo, mockContactRepo)

	clients, err := uc.Execute(ctx, ListClientsInput{
		Now:           now,
		ContactFilter: string(scheduling.FilterOverdue),
	})

	assert.NoError(t, err)
	// O inativo tem data vencida mas nunca conta como atrasado
	assert.Len(t, clients, 1)
	assert.Equal(t, "c-atrasado", clients[0].ID)
}

func TestListClientsBuscaPorNome(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)

	mockClientRepo.On("FindAll", ctx).Return(dashboardFixture(now), nil)

	uc := NewListClientsUseCase(mockClientRepo, mockContactRepo)

	clients, err := uc.Execute(ctx, ListClientsInput{Now: now, Search: "padaria"})

	assert.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Equal(t, "c-atrasado", clients[0].ID)
}

func TestListClientsStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)

	mockClientRepo.On("FindAll", ctx).Return(dashboardFixture(now), nil)

	uc := NewListClientsUseCase(mockClientRepo, mockContactRepo)

	stats, err := uc.Stats(ctx, ListClientsInput{Now: now})

	assert.NoError(t, err)
	assert.Equal(t, 4, stats.TotalClients)
	assert.Equal(t, 1, stats.OverdueContacts)
	assert.Equal(t, 1, stats.UpcomingContacts)
}

func TestListClientsErroDeBanco(t *testing.T) {
	ctx := context.Background()

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)

	mockClientRepo.On("FindAll", ctx).Return(nil, errors.New("connection reset"))

	uc := NewListClientsUseCase(mockClientRepo, mockContactRepo)

	_, err := uc.Execute(ctx, ListClientsInput{})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
}

func TestGetClientEmbuteContatos(t *testing.T) {
	ctx := context.Background()

	mockClientRepo := new(MockClientRepository)
	mockContactRepo := new(MockContactRepository)

	mockClientRepo.On("FindByID", ctx, "client-1").Return(&entity.Client{
		ID:          "client-1",
		CompanyName: "Padaria Central",
	}, nil)
	mockContactRepo.On("FindByClientID", ctx, "client-1").Return([]entity.Contact{
		{ID: "contact-1", ClientID: "client-1", Name: "João", Role: "Comprador"},
	}, nil)

	uc := NewListClientsUseCase(mockClientRepo, mockContactRepo)

	client, err := uc.Get(ctx, "client-1")

	assert.NoError(t, err)
	assert.Len(t, client.Contacts, 1)
	assert.Equal(t, "João", client.Contacts[0].Name)
}
