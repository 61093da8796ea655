package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/model"
)

// FitnessRecordFilter narrows an owner-scoped listing. Nil date bounds and
// an empty workout type mean "no filter".
type FitnessRecordFilter struct {
	StartDate   *model.Date
	EndDate     *model.Date
	WorkoutType string
	Limit       int
	Offset      int
}

// FitnessRecordRepository defines workout record persistence operations.
// List is owner-scoped; FindByID is not, so callers can tell a missing
// record apart from one owned by somebody else.
type FitnessRecordRepository interface {
	Create(ctx context.Context, record *model.FitnessRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FitnessRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter FitnessRecordFilter) ([]model.FitnessRecord, error)
	Update(ctx context.Context, record *model.FitnessRecord) error
	Delete(ctx context.Context, record *model.FitnessRecord) error
}

type fitnessRecordRepository struct {
	db *gorm.DB
}

// NewFitnessRecordRepository builds a GORM-backed repository.
func NewFitnessRecordRepository(db *gorm.DB) FitnessRecordRepository {
	return &fitnessRecordRepository{db: db}
}

func (r *fitnessRecordRepository) Create(ctx context.Context, record *model.FitnessRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *fitnessRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FitnessRecord, error) {
	var record model.FitnessRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *fitnessRecordRepository) List(ctx context.Context, userID uuid.UUID, filter FitnessRecordFilter) ([]model.FitnessRecord, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.WorkoutType != "" {
		query = query.Where("workout_type = ?", filter.WorkoutType)
	}

	records := []model.FitnessRecord{}
	err := query.Order("date DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *fitnessRecordRepository) Update(ctx context.Context, record *model.FitnessRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *fitnessRecordRepository) Delete(ctx context.Context, record *model.FitnessRecord) error {
	return r.db.WithContext(ctx).Delete(record).Error
}
