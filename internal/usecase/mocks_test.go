package usecase

import (
	"context"
	"time"

	"github.com/msriffel/clientrech/internal/entity"
	"github.com/msriffel/clientrech/internal/infra/queue"
	"github.com/stretchr/testify/mock"
)

// MockClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *entity.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, c *entity.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateStatus(ctx context.Context, id string, status entity.ClientStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateContactDates(ctx context.Context, id string, lastContact, nextContact time.Time) error {
	args := m.Called(ctx, id, lastContact, nextContact)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByClientID(ctx context.Context, clientID string) ([]entity.Contact, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// MockInteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Create(ctx context.Context, i *entity.Interaction) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInteractionRepository) FindByID(ctx context.Context, id string) (*entity.Interaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) FindByClientID(ctx context.Context, clientID string) ([]entity.Interaction, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) Update(ctx context.Context, i *entity.Interaction) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInteractionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInteractionRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// MockReminderPublisher
type MockReminderPublisher struct {
	mock.Mock
}

func (m *MockReminderPublisher) PublishReminder(ctx context.Context, payload queue.ReminderPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
