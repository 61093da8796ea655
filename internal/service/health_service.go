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

// CreateHealthMetricInput carries a new daily metric. All measurement
// fields are optional.
type CreateHealthMetricInput struct {
	Date              model.Date `json:"date" validate:"required"`
	WeightKg          *float64   `json:"weight_kg" validate:"omitempty,gt=0,lte=500"`
	Steps             *int       `json:"steps" validate:"omitempty,gte=0,lte=200000"`
	WaterIntakeLiters *float64   `json:"water_intake_liters" validate:"omitempty,gte=0,lte=20"`
	SleepHours        *float64   `json:"sleep_hours" validate:"omitempty,gte=0,lte=24"`
	HeartRateBpm      *int       `json:"heart_rate_bpm" validate:"omitempty,gt=0,lte=300"`
}

// HealthMetricPatch lists the fields a partial update may change. The
// date is fixed at creation and cannot be patched.
type HealthMetricPatch struct {
	WeightKg          *float64 `json:"weight_kg" validate:"omitempty,gt=0,lte=500"`
	Steps             *int     `json:"steps" validate:"omitempty,gte=0,lte=200000"`
	WaterIntakeLiters *float64 `json:"water_intake_liters" validate:"omitempty,gte=0,lte=20"`
	SleepHours        *float64 `json:"sleep_hours" validate:"omitempty,gte=0,lte=24"`
	HeartRateBpm      *int     `json:"heart_rate_bpm" validate:"omitempty,gt=0,lte=300"`
}

// HealthService implements owner-scoped health metric operations.
type HealthService interface {
	List(ctx context.Context, userID uuid.UUID, filter repository.HealthMetricFilter) ([]model.HealthMetric, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateHealthMetricInput) (*model.HealthMetric, error)
	Get(ctx context.Context, userID, metricID uuid.UUID) (*model.HealthMetric, error)
	Update(ctx context.Context, userID, metricID uuid.UUID, patch HealthMetricPatch) (*model.HealthMetric, error)
	Delete(ctx context.Context, userID, metricID uuid.UUID) error
}

type healthService struct {
	metricRepo repository.HealthMetricRepository
}

// NewHealthService creates a new health metric service.
func NewHealthService(metricRepo repository.HealthMetricRepository) HealthService {
	return &healthService{metricRepo: metricRepo}
}

// List returns the user's metrics matching the filter, newest date first.
func (s *healthService) List(ctx context.Context, userID uuid.UUID, filter repository.HealthMetricFilter) ([]model.HealthMetric, error) {
	metrics, err := s.metricRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list health metrics: %w", err)
	}
	return metrics, nil
}

// Create persists a new metric, enforcing at most one per (user, date).
// The lookup is a fast path for a friendly conflict error; the unique
// index remains the authority, so a concurrent insert racing past the
// check still comes back as the same conflict.
func (s *healthService) Create(ctx context.Context, userID uuid.UUID, input CreateHealthMetricInput) (*model.HealthMetric, error) {
	_, err := s.metricRepo.FindByUserAndDate(ctx, userID, input.Date)
	if err == nil {
		return nil, apperrors.ErrDuplicateDate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing metric: %w", err)
	}

	metric := &model.HealthMetric{
		UserID:            userID,
		Date:              input.Date,
		WeightKg:          input.WeightKg,
		Steps:             input.Steps,
		WaterIntakeLiters: input.WaterIntakeLiters,
		SleepHours:        input.SleepHours,
		HeartRateBpm:      input.HeartRateBpm,
	}

	if err := s.metricRepo.Create(ctx, metric); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateDate
		}
		return nil, fmt.Errorf("create health metric: %w", err)
	}
	return metric, nil
}

// Get returns a metric by ID after the existence and ownership checks.
func (s *healthService) Get(ctx context.Context, userID, metricID uuid.UUID) (*model.HealthMetric, error) {
	return s.findOwned(ctx, userID, metricID)
}

// Update applies a partial update; fields absent from the patch keep
// their prior values.
func (s *healthService) Update(ctx context.Context, userID, metricID uuid.UUID, patch HealthMetricPatch) (*model.HealthMetric, error) {
	metric, err := s.findOwned(ctx, userID, metricID)
	if err != nil {
		return nil, err
	}

	if patch.WeightKg != nil {
		metric.WeightKg = patch.WeightKg
	}
	if patch.Steps != nil {
		metric.Steps = patch.Steps
	}
	if patch.WaterIntakeLiters != nil {
		metric.WaterIntakeLiters = patch.WaterIntakeLiters
	}
	if patch.SleepHours != nil {
		metric.SleepHours = patch.SleepHours
	}
	if patch.HeartRateBpm != nil {
		metric.HeartRateBpm = patch.HeartRateBpm
	}

	if err := s.metricRepo.Update(ctx, metric); err != nil {
		return nil, fmt.Errorf("update health metric: %w", err)
	}
	return metric, nil
}

// Delete hard-deletes a metric after the same checks as Get.
func (s *healthService) Delete(ctx context.Context, userID, metricID uuid.UUID) error {
	metric, err := s.findOwned(ctx, userID, metricID)
	if err != nil {
		return err
	}
	if err := s.metricRepo.Delete(ctx, metric); err != nil {
		return fmt.Errorf("delete health metric: %w", err)
	}
	return nil
}

// findOwned checks existence before ownership, same ordering as the
// fitness records.
func (s *healthService) findOwned(ctx context.Context, userID, metricID uuid.UUID) (*model.HealthMetric, error) {
	metric, err := s.metricRepo.FindByID(ctx, metricID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find health metric: %w", err)
	}
	if metric.UserID != userID {
		return nil, apperrors.ErrAccessDenied
	}
	return metric, nil
}
