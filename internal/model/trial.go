package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trial scopes one board: its tasks share the trial's columns and timeline.
type Trial struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Trial) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
