package board

import (
	"context"

	"trialboard/internal/model"
)

// Store is the persistence collaborator of a board. ReplaceTasks is a full,
// idempotent write of the trial's task list.
type Store interface {
	ListTasks(ctx context.Context, trialID string) ([]model.Task, error)
	ReplaceTasks(ctx context.Context, trialID string, tasks []model.Task) error
	ListColumns(ctx context.Context) ([]model.Column, error)
}
