package handler

import (
	"context"
	"time"

	"trialboard/internal/board"
	"trialboard/internal/model"
)

// TrialRepository is the trial persistence used by the handlers.
type TrialRepository interface {
	Create(ctx context.Context, trial *model.Trial) error
	List(ctx context.Context) ([]model.Trial, error)
	GetByID(ctx context.Context, id string) (*model.Trial, error)
}

// ColumnRepository is the read side of the configured workflow columns.
type ColumnRepository interface {
	GetByID(ctx context.Context, id string) (*model.Column, error)
	List(ctx context.Context) ([]model.Column, error)
}

// TaskRepository is the task persistence used by the handlers.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id string) (*model.Task, error)
	ListByTrial(ctx context.Context, trialID string) ([]model.Task, error)
	CountByTrial(ctx context.Context, trialID string) (int64, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) error
}

// BoardService runs the drag gestures of every trial board.
type BoardService interface {
	Lanes(ctx context.Context, trialID string) ([]board.Lane, error)
	BeginDrag(ctx context.Context, trialID, taskID string, dx, dy float64) (bool, error)
	UpdateDragTarget(ctx context.Context, trialID, targetID string) (board.Preview, error)
	EndDrag(ctx context.Context, trialID, targetID string) (board.Result, error)
	CancelDrag(ctx context.Context, trialID string) error
	Reload(ctx context.Context, trialID string) error
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID           string   `json:"id"`
	TrialID      string   `json:"trial_id"`
	ColumnID     string   `json:"column_id"`
	ParentID     *string  `json:"parent_id,omitempty"`
	Title        string   `json:"title"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Dependencies []string `json:"dependencies"`
	Progress     float64  `json:"progress"`
	Position     int      `json:"position"`
	Owner        string   `json:"owner,omitempty"`
	Priority     string   `json:"priority,omitempty"`
	Site         string   `json:"site,omitempty"`
	CommentCount int      `json:"comment_count"`
	FileCount    int      `json:"file_count"`
}

func newTaskResponse(t model.Task) TaskResponse {
	deps := []string(t.Dependencies)
	if deps == nil {
		deps = []string{}
	}
	return TaskResponse{
		ID:           t.ID,
		TrialID:      t.TrialID,
		ColumnID:     t.ColumnID,
		ParentID:     t.ParentID,
		Title:        t.Title,
		StartDate:    t.StartDate.Format(time.DateOnly),
		EndDate:      t.EndDate.Format(time.DateOnly),
		Dependencies: deps,
		Progress:     t.Progress,
		Position:     t.Position,
		Owner:        t.Owner,
		Priority:     t.Priority,
		Site:         t.Site,
		CommentCount: t.CommentCount,
		FileCount:    t.FileCount,
	}
}

func newTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResponse(t))
	}
	return out
}
