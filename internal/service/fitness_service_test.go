package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

func TestFitnessService_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("valid record", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FitnessRecord")).Return(nil)

		service := NewFitnessService(mockRepo)
		record, err := service.Create(context.Background(), userID, CreateFitnessRecordInput{
			Date:            model.Today(),
			WorkoutType:     "running",
			DurationMinutes: 30,
			CaloriesBurned:  300,
		})

		assert.NoError(t, err)
		assert.Equal(t, userID, record.UserID)
		assert.Equal(t, "running", record.WorkoutType)
		assert.Equal(t, model.DefaultIntensity, record.IntensityLevel)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit intensity preserved", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FitnessRecord")).Return(nil)

		service := NewFitnessService(mockRepo)
		record, err := service.Create(context.Background(), userID, CreateFitnessRecordInput{
			Date:            model.Today(),
			WorkoutType:     "cycling",
			DurationMinutes: 60,
			CaloriesBurned:  500,
			IntensityLevel:  "high",
		})

		assert.NoError(t, err)
		assert.Equal(t, "high", record.IntensityLevel)
	})

	t.Run("future date rejected before persistence", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)

		tomorrow := model.Today()
		tomorrow.Time = tomorrow.AddDate(0, 0, 1)

		service := NewFitnessService(mockRepo)
		record, err := service.Create(context.Background(), userID, CreateFitnessRecordInput{
			Date:            tomorrow,
			WorkoutType:     "running",
			DurationMinutes: 30,
			CaloriesBurned:  300,
		})

		assert.ErrorIs(t, err, apperrors.ErrDateInFuture)
		assert.Nil(t, record)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFitnessService_Get(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	recordID := uuid.New()

	tests := []struct {
		name          string
		callerID      uuid.UUID
		setupMock     func(*MockFitnessRecordRepository)
		expectedError error
	}{
		{
			name:     "owner can read",
			callerID: ownerID,
			setupMock: func(m *MockFitnessRecordRepository) {
				m.On("FindByID", mock.Anything, recordID).Return(&model.FitnessRecord{
					ID:     recordID,
					UserID: ownerID,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "missing record is not found",
			callerID: ownerID,
			setupMock: func(m *MockFitnessRecordRepository) {
				m.On("FindByID", mock.Anything, recordID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			// existence is checked before ownership, so a non-owner
			// probing a real id gets 403, not 404
			name:     "non-owner gets access denied",
			callerID: otherID,
			setupMock: func(m *MockFitnessRecordRepository) {
				m.On("FindByID", mock.Anything, recordID).Return(&model.FitnessRecord{
					ID:     recordID,
					UserID: ownerID,
				}, nil)
			},
			expectedError: apperrors.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFitnessRecordRepository)
			tt.setupMock(mockRepo)

			service := NewFitnessService(mockRepo)
			record, err := service.Get(context.Background(), tt.callerID, recordID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, record)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, recordID, record.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestFitnessService_Update(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()
	distance := 5.2
	notes := "easy pace"

	existing := func() *model.FitnessRecord {
		return &model.FitnessRecord{
			ID:              recordID,
			UserID:          userID,
			Date:            model.NewDate(2026, time.August, 20),
			WorkoutType:     "running",
			DurationMinutes: 30,
			CaloriesBurned:  300,
			DistanceKm:      &distance,
			IntensityLevel:  "medium",
			Notes:           &notes,
		}
	}

	t.Run("patched fields change, the rest keep prior values", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("FindByID", mock.Anything, recordID).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.FitnessRecord")).Return(nil)

		newDuration := 45
		service := NewFitnessService(mockRepo)
		record, err := service.Update(context.Background(), userID, recordID, FitnessRecordPatch{
			DurationMinutes: &newDuration,
		})

		assert.NoError(t, err)
		assert.Equal(t, 45, record.DurationMinutes)
		assert.Equal(t, "running", record.WorkoutType)
		assert.Equal(t, 300, record.CaloriesBurned)
		assert.Equal(t, &distance, record.DistanceKm)
		assert.Equal(t, "medium", record.IntensityLevel)
		assert.Equal(t, &notes, record.Notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("FindByID", mock.Anything, recordID).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.FitnessRecord")).Return(nil)

		service := NewFitnessService(mockRepo)
		record, err := service.Update(context.Background(), userID, recordID, FitnessRecordPatch{})

		assert.NoError(t, err)
		assert.Equal(t, existing().WorkoutType, record.WorkoutType)
		assert.Equal(t, existing().DurationMinutes, record.DurationMinutes)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("FindByID", mock.Anything, recordID).Return(existing(), nil)

		newDuration := 45
		service := NewFitnessService(mockRepo)
		_, err := service.Update(context.Background(), uuid.New(), recordID, FitnessRecordPatch{
			DurationMinutes: &newDuration,
		})

		assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestFitnessService_Delete(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()
	record := &model.FitnessRecord{ID: recordID, UserID: userID}

	t.Run("owner can delete", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("FindByID", mock.Anything, recordID).Return(record, nil)
		mockRepo.On("Delete", mock.Anything, record).Return(nil)

		service := NewFitnessService(mockRepo)
		assert.NoError(t, service.Delete(context.Background(), userID, recordID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("FindByID", mock.Anything, recordID).Return(record, nil)

		service := NewFitnessService(mockRepo)
		err := service.Delete(context.Background(), uuid.New(), recordID)

		assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestFitnessService_List(t *testing.T) {
	userID := uuid.New()
	start := model.NewDate(2026, time.August, 1)

	t.Run("filter is passed through", func(t *testing.T) {
		filter := repository.FitnessRecordFilter{
			StartDate:   &start,
			WorkoutType: "running",
			Limit:       100,
		}

		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("List", mock.Anything, userID, filter).Return([]model.FitnessRecord{
			{UserID: userID, WorkoutType: "running"},
		}, nil)

		service := NewFitnessService(mockRepo)
		records, err := service.List(context.Background(), userID, filter)

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		mockRepo := new(MockFitnessRecordRepository)
		mockRepo.On("List", mock.Anything, userID, mock.Anything).Return([]model.FitnessRecord{}, nil)

		service := NewFitnessService(mockRepo)
		records, err := service.List(context.Background(), userID, repository.FitnessRecordFilter{Limit: 100})

		assert.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}
