package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthMetric represents the daily wellness entry for a user. At most one
// metric may exist per (user, date); the composite unique index is the
// authoritative guard.
type HealthMetric struct {
	ID                uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID            uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_health_user_date"`
	Date              Date      `json:"date" gorm:"not null;uniqueIndex:idx_health_user_date"`
	WeightKg          *float64  `json:"weight_kg"`
	Steps             *int      `json:"steps"`
	WaterIntakeLiters *float64  `json:"water_intake_liters"`
	SleepHours        *float64  `json:"sleep_hours"`
	HeartRateBpm      *int      `json:"heart_rate_bpm"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (m *HealthMetric) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
