package timeline

import (
	"time"

	"trialboard/internal/model"
)

// Options tune one layout pass. A zero Window is resolved from the tasks; a
// zero Today means no marker.
type Options struct {
	Window   Window
	Today    time.Time
	Geometry Geometry
	Expand   *ExpandState
}

// Row is one visible line of the timeline: the task tree column on the left
// and its bar on the right.
type Row struct {
	TaskID      string  `json:"task_id"`
	ParentID    *string `json:"parent_id,omitempty"`
	Title       string  `json:"title"`
	Number      string  `json:"number"`
	Level       int     `json:"level"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Progress    float64 `json:"progress"`
	HasChildren bool    `json:"has_children"`
	Open        bool    `json:"open"`
	Bar         Bar     `json:"bar"`
}

// Link is a dependency arrow between two visible rows.
type Link struct {
	From    string `json:"from"`
	To      string `json:"to"`
	FromRow int    `json:"from_row"`
	ToRow   int    `json:"to_row"`
}

type Exclusion struct {
	TaskID string `json:"task_id"`
	Reason string `json:"reason"`
}

// Result is everything a client needs to draw the timeline.
type Result struct {
	Window   Window      `json:"window"`
	Width    float64     `json:"width"`
	DayWidth float64     `json:"day_width"`
	Months   []Month     `json:"months"`
	Rows     []Row       `json:"rows"`
	Links    []Link      `json:"links"`
	Today    *float64    `json:"today,omitempty"`
	Excluded []Exclusion `json:"excluded,omitempty"`
}

const (
	ReasonInvalidDates = "invalid dates"
	ReasonCycle        = "cyclic parent reference"
)

// HasValidDates reports whether a task can be drawn: both dates set and the
// end not before the start.
func HasValidDates(t model.Task) bool {
	return !t.StartDate.IsZero() && !t.EndDate.IsZero() && !model.Date(t.EndDate).Before(model.Date(t.StartDate))
}

// Schedulable returns the tasks that HasValidDates accepts, in order.
func Schedulable(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if HasValidDates(t) {
			out = append(out, t)
		}
	}
	return out
}

// Layout computes the day grid, header bands, visible rows with bar
// geometry, dependency links and today marker for a task list.
func Layout(tasks []model.Task, opts Options) Result {
	if opts.Geometry == (Geometry{}) {
		opts.Geometry = DefaultGeometry()
	}

	var res Result
	valid := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !HasValidDates(t) {
			res.Excluded = append(res.Excluded, Exclusion{TaskID: t.ID, Reason: ReasonInvalidDates})
			continue
		}
		valid = append(valid, t)
	}

	w := opts.Window
	if w.Start.IsZero() || w.End.IsZero() {
		now := opts.Today
		if now.IsZero() {
			now = time.Now()
		}
		w = ResolveWindow(valid, now)
	}
	res.Window = w
	res.DayWidth = opts.Geometry.DayWidth
	res.Width = opts.Geometry.Width(w)
	res.Months = Headers(Days(w))

	tree := BuildTree(valid)
	for _, id := range tree.Excluded {
		res.Excluded = append(res.Excluded, Exclusion{TaskID: id, Reason: ReasonCycle})
	}

	rowOf := make(map[string]int)
	for i, n := range VisibleNodes(tree.Roots, opts.Expand) {
		rowOf[n.Task.ID] = i
		res.Rows = append(res.Rows, Row{
			TaskID:      n.Task.ID,
			ParentID:    n.Task.ParentID,
			Title:       n.Task.Title,
			Number:      n.Number,
			Level:       n.Level,
			StartDate:   n.Task.StartDate.Format(DateLayout),
			EndDate:     n.Task.EndDate.Format(DateLayout),
			Progress:    n.Task.Progress,
			HasChildren: len(n.Children) > 0,
			Open:        opts.Expand == nil || opts.Expand.IsOpen(n.Task.ID),
			Bar:         opts.Geometry.Bar(n.Task, n.Level, w),
		})
	}

	byID := make(map[string]model.Task, len(valid))
	for _, t := range valid {
		byID[t.ID] = t
	}
	for _, row := range res.Rows {
		for _, dep := range byID[row.TaskID].Dependencies {
			from, ok := rowOf[dep]
			if !ok {
				continue
			}
			res.Links = append(res.Links, Link{From: dep, To: row.TaskID, FromRow: from, ToRow: rowOf[row.TaskID]})
		}
	}

	if !opts.Today.IsZero() {
		if x, ok := opts.Geometry.TodayMarker(w, opts.Today); ok {
			res.Today = &x
		}
	}
	return res
}
