package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"trialboard/internal/repository"
	"trialboard/internal/timeline"

	"github.com/gin-gonic/gin"
)

type TimelineHandler struct {
	tasks    TaskRepository
	trials   TrialRepository
	views    *timeline.Views
	geometry timeline.Geometry
	now      func() time.Time
}

func NewTimelineHandler(tasks TaskRepository, trials TrialRepository, views *timeline.Views, geometry timeline.Geometry) *TimelineHandler {
	return &TimelineHandler{tasks: tasks, trials: trials, views: views, geometry: geometry, now: time.Now}
}

// WithClock replaces the source of "today".
func (h *TimelineHandler) WithClock(now func() time.Time) *TimelineHandler {
	h.now = now
	return h
}

// GetTimeline lays out a trial's tasks. The optional from, to and today
// query parameters (YYYY-MM-DD) override the window and the marker date.
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	today := h.now()
	if s := c.Query("today"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid today date"})
			return
		}
		today = d
	}

	tasks, err := h.tasks.ListByTrial(c.Request.Context(), trial.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	window := timeline.ResolveWindow(timeline.Schedulable(tasks), today)
	if window.Days() > timeline.MaxWindowDays {
		slog.Warn("timeline window clamped", "trial", trial.ID, "start", window.Start, "end", window.End)
		window = window.Clamp(timeline.MaxWindowDays)
	}
	overridden := false
	if s := c.Query("from"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
		window.Start = d
		overridden = true
	}
	if s := c.Query("to"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}
		window.End = d
		overridden = true
	}
	if window.End.Before(window.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to is before from"})
		return
	}
	if overridden && window.Days() > timeline.MaxWindowDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("window longer than %d days", timeline.MaxWindowDays)})
		return
	}

	res := timeline.Layout(tasks, timeline.Options{
		Window:   timeline.NewWindow(window.Start, window.End),
		Today:    today,
		Geometry: h.geometry,
		Expand:   h.views.For(trial.ID),
	})
	c.JSON(http.StatusOK, res)
}

// ToggleNode flips the expanded state of a task's subtree.
func (h *TimelineHandler) ToggleNode(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	taskID := c.Param("taskId")
	task, err := h.tasks.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}
	if task.TrialID != trial.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	open := h.views.For(trial.ID).Toggle(taskID)
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "open": open})
}
