package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"trialboard/internal/model"
	"trialboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type TaskHandler struct {
	tasks   TaskRepository
	columns ColumnRepository
	trials  TrialRepository
	boards  BoardService
}

func NewTaskHandler(tasks TaskRepository, columns ColumnRepository, trials TrialRepository, boards BoardService) *TaskHandler {
	return &TaskHandler{tasks: tasks, columns: columns, trials: trials, boards: boards}
}

// TaskFields are the editable fields of a task. Dates are calendar days.
type TaskFields struct {
	Title        string   `json:"title" binding:"required"`
	ParentID     *string  `json:"parent_id"`
	StartDate    string   `json:"start_date" binding:"required,isodate"`
	EndDate      string   `json:"end_date" binding:"required,isodate"`
	Dependencies []string `json:"dependencies"`
	Progress     float64  `json:"progress" binding:"min=0,max=1"`
	Owner        string   `json:"owner"`
	Priority     string   `json:"priority"`
	Site         string   `json:"site"`
	CommentCount int      `json:"comment_count" binding:"min=0"`
	FileCount    int      `json:"file_count" binding:"min=0"`
}

// CreateTaskRequest is the body of a task creation. The column is fixed at
// creation; afterwards only a board drag moves a task.
type CreateTaskRequest struct {
	ColumnID string `json:"column_id" binding:"required"`
	TaskFields
}

type UpdateTaskRequest struct {
	TaskFields
}

// apply copies the fields onto t. It writes the response and returns false
// when the fields are inconsistent.
func (f TaskFields) apply(c *gin.Context, t *model.Task) bool {
	start, err := parseDate(f.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
		return false
	}
	end, err := parseDate(f.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
		return false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date is before start_date"})
		return false
	}
	if f.ParentID != nil && *f.ParentID == t.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task cannot be its own parent"})
		return false
	}

	t.Title = f.Title
	t.ParentID = f.ParentID
	t.StartDate = start
	t.EndDate = end
	t.Dependencies = pq.StringArray(f.Dependencies)
	t.Progress = f.Progress
	t.Owner = f.Owner
	t.Priority = f.Priority
	t.Site = f.Site
	t.CommentCount = f.CommentCount
	t.FileCount = f.FileCount
	return true
}

// Create adds a task at the end of a trial's task list.
func (h *TaskHandler) Create(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	column, err := h.columns.GetByID(ctx, req.ColumnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	if !h.checkParent(c, trial.ID, req.ParentID) {
		return
	}

	count, err := h.tasks.CountByTrial(ctx, trial.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count tasks"})
		return
	}

	task := &model.Task{TrialID: trial.ID, ColumnID: column.ID, Position: int(count)}
	if !req.apply(c, task) {
		return
	}

	if err := h.tasks.Create(ctx, task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	h.reload(ctx, trial.ID)

	c.JSON(http.StatusCreated, newTaskResponse(*task))
}

// GetByTrialID returns the flat task list of a trial in list order.
func (h *TaskHandler) GetByTrialID(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByTrial(c.Request.Context(), trial.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, newTaskResponses(tasks))
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(*task))
}

// Update rewrites the dates, progress, hierarchy and metadata of a task.
// The column is left alone.
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !h.checkParent(c, task.TrialID, req.ParentID) {
		return
	}
	if !req.apply(c, task) {
		return
	}

	ctx := c.Request.Context()
	if err := h.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	h.reload(ctx, task.TrialID)

	c.JSON(http.StatusOK, newTaskResponse(*task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.tasks.Delete(ctx, task.ID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	h.reload(ctx, task.TrialID)

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (h *TaskHandler) loadTask(c *gin.Context) (*model.Task, bool) {
	task, err := h.tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return nil, false
	}
	return task, true
}

// checkParent rejects parents that do not exist in the same trial.
func (h *TaskHandler) checkParent(c *gin.Context, trialID string, parentID *string) bool {
	if parentID == nil {
		return true
	}
	parent, err := h.tasks.GetByID(c.Request.Context(), *parentID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent task not found"})
			return false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve parent task"})
		return false
	}
	if parent.TrialID != trialID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parent task belongs to another trial"})
		return false
	}
	return true
}

// reload rebuilds the trial's board after a task list change. The change is
// already committed, so a failure here is only logged.
func (h *TaskHandler) reload(ctx context.Context, trialID string) {
	if err := h.boards.Reload(ctx, trialID); err != nil {
		slog.Warn("board reload failed", "trial", trialID, "error", err)
	}
}
