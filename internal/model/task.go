package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Task struct {
	ID           string         `gorm:"primaryKey"`
	TrialID      string         `gorm:"type:uuid;not null;index"`
	ColumnID     string         `gorm:"not null;index"`
	ParentID     *string
	Title        string         `gorm:"not null"`
	StartDate    time.Time      `gorm:"type:date;not null"`
	EndDate      time.Time      `gorm:"type:date;not null"`
	Dependencies pq.StringArray `gorm:"type:text[]"`
	Progress     float64        `gorm:"not null"`
	Position     int            `gorm:"not null"`

	// Display metadata, carried through untouched by the board and timeline.
	Owner        string
	Priority     string
	Site         string
	CommentCount int
	FileCount    int
}

func (t *Task) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// IsChildOf reports whether the task's parent is the given id.
func (t *Task) IsChildOf(id string) bool {
	return t.ParentID != nil && *t.ParentID == id
}

// Days returns the inclusive day count from StartDate to EndDate.
func (t *Task) Days() int {
	return DaysBetween(t.StartDate, t.EndDate) + 1
}

// DaysBetween returns the number of whole calendar days from a to b.
// Both are truncated to their calendar date first, so wall-clock time and
// DST shifts never change the result. Counting in Unix seconds keeps spans
// longer than time.Duration's range exact.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((db.Unix() - da.Unix()) / 86400)
}

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
