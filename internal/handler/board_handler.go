package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"trialboard/internal/board"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	trials TrialRepository
	boards BoardService
}

func NewBoardHandler(trials TrialRepository, boards BoardService) *BoardHandler {
	return &BoardHandler{trials: trials, boards: boards}
}

// BeginDragRequest carries the pointer travel since press. Travel within the
// activation distance is a click, not a drag.
type BeginDragRequest struct {
	TaskID string  `json:"task_id" binding:"required"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
}

// DragTargetRequest names what the pointer is over: a column id, a task id,
// the placeholder id, or nothing.
type DragTargetRequest struct {
	TargetID string `json:"target_id"`
}

type LaneResponse struct {
	ColumnID string         `json:"column_id"`
	Name     string         `json:"name"`
	Color    string         `json:"color,omitempty"`
	Count    int            `json:"count"`
	Tasks    []TaskResponse `json:"tasks"`
}

type BoardResponse struct {
	TrialID string         `json:"trial_id"`
	Lanes   []LaneResponse `json:"lanes"`
}

// GetBoard returns the committed board with per-column counts.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	lanes, err := h.boards.Lanes(c.Request.Context(), trial.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board"})
		return
	}

	resp := BoardResponse{TrialID: trial.ID, Lanes: make([]LaneResponse, 0, len(lanes))}
	for _, l := range lanes {
		resp.Lanes = append(resp.Lanes, LaneResponse{
			ColumnID: l.Column.ID,
			Name:     l.Column.Name,
			Color:    l.Column.Color,
			Count:    l.Count,
			Tasks:    newTaskResponses(l.Tasks),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Reload rebuilds the board from the persisted task list.
func (h *BoardHandler) Reload(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}
	if err := h.boards.Reload(c.Request.Context(), trial.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload board"})
		return
	}
	h.GetBoard(c)
}

func (h *BoardHandler) BeginDrag(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	var req BeginDragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	started, err := h.boards.BeginDrag(c.Request.Context(), trial.ID, req.TaskID, req.DX, req.DY)
	if err != nil {
		switch {
		case errors.Is(err, board.ErrDragInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "A drag is already in progress"})
		case errors.Is(err, board.ErrUnknownTask):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not on board"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to begin drag"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"started": started, "task_id": req.TaskID})
}

func (h *BoardHandler) DragOver(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	var req DragTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	preview, err := h.boards.UpdateDragTarget(c.Request.Context(), trial.ID, req.TargetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update drag target"})
		return
	}
	c.JSON(http.StatusOK, preview)
}

// EndDrag drops the dragged card. A failed write of a cross-column move
// leaves the board as it was before the drag.
func (h *BoardHandler) EndDrag(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	var req DragTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	res, err := h.boards.EndDrag(c.Request.Context(), trial.ID, req.TargetID)
	if err != nil {
		slog.Error("drop failed", "trial", trial.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save move", "result": res})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BoardHandler) CancelDrag(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}
	if err := h.boards.CancelDrag(c.Request.Context(), trial.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel drag"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drag cancelled"})
}
