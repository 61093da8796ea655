package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/model"
)

// HealthMetricFilter narrows an owner-scoped listing.
type HealthMetricFilter struct {
	StartDate *model.Date
	EndDate   *model.Date
	Limit     int
	Offset    int
}

// HealthMetricRepository defines health metric persistence operations.
type HealthMetricRepository interface {
	Create(ctx context.Context, metric *model.HealthMetric) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.HealthMetric, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date model.Date) (*model.HealthMetric, error)
	List(ctx context.Context, userID uuid.UUID, filter HealthMetricFilter) ([]model.HealthMetric, error)
	Update(ctx context.Context, metric *model.HealthMetric) error
	Delete(ctx context.Context, metric *model.HealthMetric) error
}

type healthMetricRepository struct {
	db *gorm.DB
}

// NewHealthMetricRepository builds a GORM-backed repository.
func NewHealthMetricRepository(db *gorm.DB) HealthMetricRepository {
	return &healthMetricRepository{db: db}
}

func (r *healthMetricRepository) Create(ctx context.Context, metric *model.HealthMetric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

func (r *healthMetricRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.HealthMetric, error) {
	var metric model.HealthMetric
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&metric).Error; err != nil {
		return nil, err
	}
	return &metric, nil
}

func (r *healthMetricRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date model.Date) (*model.HealthMetric, error) {
	var metric model.HealthMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&metric).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

func (r *healthMetricRepository) List(ctx context.Context, userID uuid.UUID, filter HealthMetricFilter) ([]model.HealthMetric, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	metrics := []model.HealthMetric{}
	err := query.Order("date DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&metrics).Error
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *healthMetricRepository) Update(ctx context.Context, metric *model.HealthMetric) error {
	return r.db.WithContext(ctx).Save(metric).Error
}

func (r *healthMetricRepository) Delete(ctx context.Context, metric *model.HealthMetric) error {
	return r.db.WithContext(ctx).Delete(metric).Error
}
