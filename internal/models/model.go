package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultModel is the base model for all models in gastos.
type DefaultModel struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time // Set once on creation
	UpdatedAt time.Time
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}
