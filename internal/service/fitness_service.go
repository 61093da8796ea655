package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

// CreateFitnessRecordInput carries a new workout record.
type CreateFitnessRecordInput struct {
	Date            model.Date `json:"date" validate:"required"`
	WorkoutType     string     `json:"workout_type" validate:"required,max=50"`
	DurationMinutes int        `json:"duration_minutes" validate:"required,gt=0,lte=1440"`
	CaloriesBurned  int        `json:"calories_burned" validate:"gte=0,lte=10000"`
	DistanceKm      *float64   `json:"distance_km" validate:"omitempty,gte=0,lte=1000"`
	IntensityLevel  string     `json:"intensity_level" validate:"omitempty,max=20"`
	Notes           *string    `json:"notes" validate:"omitempty,max=1000"`
}

// FitnessRecordPatch lists the fields a partial update may change. Nil
// fields are left untouched.
type FitnessRecordPatch struct {
	Date            *model.Date `json:"date"`
	WorkoutType     *string     `json:"workout_type" validate:"omitempty,max=50"`
	DurationMinutes *int        `json:"duration_minutes" validate:"omitempty,gt=0,lte=1440"`
	CaloriesBurned  *int        `json:"calories_burned" validate:"omitempty,gte=0,lte=10000"`
	DistanceKm      *float64    `json:"distance_km" validate:"omitempty,gte=0,lte=1000"`
	IntensityLevel  *string     `json:"intensity_level" validate:"omitempty,max=20"`
	Notes           *string     `json:"notes" validate:"omitempty,max=1000"`
}

// FitnessService implements owner-scoped workout record operations.
type FitnessService interface {
	List(ctx context.Context, userID uuid.UUID, filter repository.FitnessRecordFilter) ([]model.FitnessRecord, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateFitnessRecordInput) (*model.FitnessRecord, error)
	Get(ctx context.Context, userID, recordID uuid.UUID) (*model.FitnessRecord, error)
	Update(ctx context.Context, userID, recordID uuid.UUID, patch FitnessRecordPatch) (*model.FitnessRecord, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
}

type fitnessService struct {
	recordRepo repository.FitnessRecordRepository
}

// NewFitnessService creates a new fitness record service.
func NewFitnessService(recordRepo repository.FitnessRecordRepository) FitnessService {
	return &fitnessService{recordRepo: recordRepo}
}

// List returns the user's records matching the filter, newest date first.
// No matches is an empty slice, not an error.
func (s *fitnessService) List(ctx context.Context, userID uuid.UUID, filter repository.FitnessRecordFilter) ([]model.FitnessRecord, error) {
	records, err := s.recordRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list fitness records: %w", err)
	}
	return records, nil
}

// Create validates and persists a new workout record. The date must not
// be after the current date; nothing is persisted when it is.
func (s *fitnessService) Create(ctx context.Context, userID uuid.UUID, input CreateFitnessRecordInput) (*model.FitnessRecord, error) {
	if input.Date.After(model.Today()) {
		return nil, apperrors.ErrDateInFuture
	}

	intensity := input.IntensityLevel
	if intensity == "" {
		intensity = model.DefaultIntensity
	}

	record := &model.FitnessRecord{
		UserID:          userID,
		Date:            input.Date,
		WorkoutType:     input.WorkoutType,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		DistanceKm:      input.DistanceKm,
		IntensityLevel:  intensity,
		Notes:           input.Notes,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create fitness record: %w", err)
	}
	return record, nil
}

// Get returns a record by ID after the existence and ownership checks.
func (s *fitnessService) Get(ctx context.Context, userID, recordID uuid.UUID) (*model.FitnessRecord, error) {
	return s.findOwned(ctx, userID, recordID)
}

// Update applies a partial update; fields absent from the patch keep
// their prior values.
func (s *fitnessService) Update(ctx context.Context, userID, recordID uuid.UUID, patch FitnessRecordPatch) (*model.FitnessRecord, error) {
	record, err := s.findOwned(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		record.Date = *patch.Date
	}
	if patch.WorkoutType != nil {
		record.WorkoutType = *patch.WorkoutType
	}
	if patch.DurationMinutes != nil {
		record.DurationMinutes = *patch.DurationMinutes
	}
	if patch.CaloriesBurned != nil {
		record.CaloriesBurned = *patch.CaloriesBurned
	}
	if patch.DistanceKm != nil {
		record.DistanceKm = patch.DistanceKm
	}
	if patch.IntensityLevel != nil {
		record.IntensityLevel = *patch.IntensityLevel
	}
	if patch.Notes != nil {
		record.Notes = patch.Notes
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("update fitness record: %w", err)
	}
	return record, nil
}

// Delete hard-deletes a record after the same checks as Get.
func (s *fitnessService) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	record, err := s.findOwned(ctx, userID, recordID)
	if err != nil {
		return err
	}
	if err := s.recordRepo.Delete(ctx, record); err != nil {
		return fmt.Errorf("delete fitness record: %w", err)
	}
	return nil
}

// findOwned checks existence before ownership: a non-owner probing an
// existing ID gets ErrAccessDenied, not ErrNotFound.
func (s *fitnessService) findOwned(ctx context.Context, userID, recordID uuid.UUID) (*model.FitnessRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find fitness record: %w", err)
	}
	if record.UserID != userID {
		return nil, apperrors.ErrAccessDenied
	}
	return record, nil
}
