package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultIntensity is applied when a record is created without an
// intensity level.
const DefaultIntensity = "medium"

// FitnessRecord represents a single workout entry. Many records may share
// a date; there is no uniqueness constraint beyond the ID.
type FitnessRecord struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index:idx_fitness_user_date"`
	Date            Date      `json:"date" gorm:"not null;index:idx_fitness_user_date"`
	WorkoutType     string    `json:"workout_type" gorm:"size:50;not null;index"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	CaloriesBurned  int       `json:"calories_burned" gorm:"not null"`
	DistanceKm      *float64  `json:"distance_km"`
	IntensityLevel  string    `json:"intensity_level" gorm:"size:20;not null;default:'medium'"`
	Notes           *string   `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *FitnessRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
