package timeline

import (
	"time"

	"trialboard/internal/model"
)

const (
	DefaultDayWidth    = 32.0
	DefaultMinBarWidth = 8.0
)

// Emphasis is the visual weight of a bar, derived from its depth.
type Emphasis string

const (
	EmphasisFull    Emphasis = "full"
	EmphasisMedium  Emphasis = "medium"
	EmphasisOutline Emphasis = "outline"
)

func EmphasisFor(level int) Emphasis {
	switch level {
	case 0:
		return EmphasisFull
	case 1:
		return EmphasisMedium
	default:
		return EmphasisOutline
	}
}

// Geometry converts days to pixels.
type Geometry struct {
	DayWidth    float64
	MinBarWidth float64
}

func DefaultGeometry() Geometry {
	return Geometry{DayWidth: DefaultDayWidth, MinBarWidth: DefaultMinBarWidth}
}

// Bar is the drawn rectangle of one task.
type Bar struct {
	Left          float64  `json:"left"`
	Width         float64  `json:"width"`
	ProgressWidth float64  `json:"progress_width"`
	Emphasis      Emphasis `json:"emphasis"`
}

// Bar places a task in the window. The width never drops below
// MinBarWidth, so single-day and inverted ranges stay visible.
func (g Geometry) Bar(t model.Task, level int, w Window) Bar {
	left := float64(w.Offset(t.StartDate)) * g.DayWidth
	width := max(float64(model.DaysBetween(t.StartDate, t.EndDate)+1)*g.DayWidth, g.MinBarWidth)
	progress := min(max(t.Progress, 0), 1)
	return Bar{
		Left:          left,
		Width:         width,
		ProgressWidth: width * progress,
		Emphasis:      EmphasisFor(level),
	}
}

// TodayMarker returns the offset of the vertical today line, or false when
// today is outside the window.
func (g Geometry) TodayMarker(w Window, today time.Time) (float64, bool) {
	if !w.Contains(today) {
		return 0, false
	}
	return float64(w.Offset(today)) * g.DayWidth, true
}

// Width is the full pixel width of the day grid.
func (g Geometry) Width(w Window) float64 {
	return float64(w.Days()) * g.DayWidth
}
