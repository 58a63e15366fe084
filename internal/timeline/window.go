package timeline

import (
	"encoding/json"
	"time"

	"trialboard/internal/model"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// MaxWindowDays bounds the day grid a single layout will build.
const MaxWindowDays = 366 * 20

// Window is the inclusive range of calendar days the timeline shows.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow truncates both ends to calendar days.
func NewWindow(start, end time.Time) Window {
	return Window{Start: model.Date(start), End: model.Date(end)}
}

// Days returns the number of days in the window, both ends included.
func (w Window) Days() int {
	return model.DaysBetween(w.Start, w.End) + 1
}

// Clamp shortens the window to at most n days, keeping its start.
func (w Window) Clamp(n int) Window {
	if w.Days() <= n {
		return w
	}
	return Window{Start: w.Start, End: w.Start.AddDate(0, 0, n-1)}
}

func (w Window) Contains(d time.Time) bool {
	d = model.Date(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Offset returns the whole days from the window start to d.
func (w Window) Offset(d time.Time) int {
	return model.DaysBetween(w.Start, d)
}

func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start string `json:"start"`
		End   string `json:"end"`
		Days  int    `json:"days"`
	}{w.Start.Format(DateLayout), w.End.Format(DateLayout), w.Days()})
}

// ResolveWindow spans the earliest start to the latest end of the tasks. An
// empty task list resolves to the calendar month containing now.
func ResolveWindow(tasks []model.Task, now time.Time) Window {
	if len(tasks) == 0 {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: first, End: first.AddDate(0, 1, -1)}
	}

	start, end := model.Date(tasks[0].StartDate), model.Date(tasks[0].EndDate)
	for _, t := range tasks[1:] {
		if s := model.Date(t.StartDate); s.Before(start) {
			start = s
		}
		if e := model.Date(t.EndDate); e.After(end) {
			end = e
		}
	}
	return Window{Start: start, End: end}
}

// Days lists every calendar day of the window in order.
func Days(w Window) []time.Time {
	n := w.Days()
	if n <= 0 {
		return nil
	}
	days := make([]time.Time, n)
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}
