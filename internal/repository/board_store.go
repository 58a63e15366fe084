package repository

import (
	"context"

	"trialboard/internal/board"
	"trialboard/internal/model"
)

// BoardStore is the persistence collaborator of the board model.
type BoardStore struct {
	tasks   *TaskRepository
	columns *ColumnRepository
}

var _ board.Store = (*BoardStore)(nil)

func NewBoardStore(tasks *TaskRepository, columns *ColumnRepository) *BoardStore {
	return &BoardStore{tasks: tasks, columns: columns}
}

func (s *BoardStore) ListTasks(ctx context.Context, trialID string) ([]model.Task, error) {
	return s.tasks.ListByTrial(ctx, trialID)
}

func (s *BoardStore) ReplaceTasks(ctx context.Context, trialID string, tasks []model.Task) error {
	return s.tasks.ReplaceAll(ctx, trialID, tasks)
}

func (s *BoardStore) ListColumns(ctx context.Context) ([]model.Column, error) {
	return s.columns.List(ctx)
}
