package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/service"
)

// MockFitnessService is a mock implementation of service.FitnessService.
type MockFitnessService struct {
	mock.Mock
}

func (m *MockFitnessService) List(ctx context.Context, userID uuid.UUID, filter repository.FitnessRecordFilter) ([]model.FitnessRecord, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FitnessRecord), args.Error(1)
}

func (m *MockFitnessService) Create(ctx context.Context, userID uuid.UUID, input service.CreateFitnessRecordInput) (*model.FitnessRecord, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FitnessRecord), args.Error(1)
}

func (m *MockFitnessService) Get(ctx context.Context, userID, recordID uuid.UUID) (*model.FitnessRecord, error) {
	args := m.Called(ctx, userID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FitnessRecord), args.Error(1)
}

func (m *MockFitnessService) Update(ctx context.Context, userID, recordID uuid.UUID, patch service.FitnessRecordPatch) (*model.FitnessRecord, error) {
	args := m.Called(ctx, userID, recordID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FitnessRecord), args.Error(1)
}

func (m *MockFitnessService) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	args := m.Called(ctx, userID, recordID)
	return args.Error(0)
}

// MockHealthService is a mock implementation of service.HealthService.
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) List(ctx context.Context, userID uuid.UUID, filter repository.HealthMetricFilter) ([]model.HealthMetric, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HealthMetric), args.Error(1)
}

func (m *MockHealthService) Create(ctx context.Context, userID uuid.UUID, input service.CreateHealthMetricInput) (*model.HealthMetric, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthMetric), args.Error(1)
}

func (m *MockHealthService) Get(ctx context.Context, userID, metricID uuid.UUID) (*model.HealthMetric, error) {
	args := m.Called(ctx, userID, metricID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthMetric), args.Error(1)
}

func (m *MockHealthService) Update(ctx context.Context, userID, metricID uuid.UUID, patch service.HealthMetricPatch) (*model.HealthMetric, error) {
	args := m.Called(ctx, userID, metricID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthMetric), args.Error(1)
}

func (m *MockHealthService) Delete(ctx context.Context, userID, metricID uuid.UUID) error {
	args := m.Called(ctx, userID, metricID)
	return args.Error(0)
}
