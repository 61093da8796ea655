package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fittrack/internal/model"
	"fittrack/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockFitnessRecordRepository is a mock implementation of
// repository.FitnessRecordRepository.
type MockFitnessRecordRepository struct {
	mock.Mock
}

func (m *MockFitnessRecordRepository) Create(ctx context.Context, record *model.FitnessRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFitnessRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FitnessRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FitnessRecord), args.Error(1)
}

func (m *MockFitnessRecordRepository) List(ctx context.Context, userID uuid.UUID, filter repository.FitnessRecordFilter) ([]model.FitnessRecord, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FitnessRecord), args.Error(1)
}

func (m *MockFitnessRecordRepository) Update(ctx context.Context, record *model.FitnessRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFitnessRecordRepository) Delete(ctx context.Context, record *model.FitnessRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockHealthMetricRepository is a mock implementation of
// repository.HealthMetricRepository.
type MockHealthMetricRepository struct {
	mock.Mock
}

func (m *MockHealthMetricRepository) Create(ctx context.Context, metric *model.HealthMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *MockHealthMetricRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.HealthMetric, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthMetric), args.Error(1)
}

func (m *MockHealthMetricRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date model.Date) (*model.HealthMetric, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthMetric), args.Error(1)
}

func (m *MockHealthMetricRepository) List(ctx context.Context, userID uuid.UUID, filter repository.HealthMetricFilter) ([]model.HealthMetric, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HealthMetric), args.Error(1)
}

func (m *MockHealthMetricRepository) Update(ctx context.Context, metric *model.HealthMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *MockHealthMetricRepository) Delete(ctx context.Context, metric *model.HealthMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}
