package handler_test

import (
	"context"

	"trialboard/internal/board"
	"trialboard/internal/events"
	"trialboard/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockTrialRepository struct {
	mock.Mock
}

func (m *MockTrialRepository) Create(ctx context.Context, trial *model.Trial) error {
	args := m.Called(ctx, trial)
	return args.Error(0)
}

func (m *MockTrialRepository) List(ctx context.Context) ([]model.Trial, error) {
	args := m.Called(ctx)
	trials := args.Get(0)
	if trials == nil {
		return nil, args.Error(1)
	}
	return trials.([]model.Trial), args.Error(1)
}

func (m *MockTrialRepository) GetByID(ctx context.Context, id string) (*model.Trial, error) {
	args := m.Called(ctx, id)
	trial := args.Get(0)
	if trial == nil {
		return nil, args.Error(1)
	}
	return trial.(*model.Trial), args.Error(1)
}

type MockColumnRepository struct {
	mock.Mock
}

func (m *MockColumnRepository) GetByID(ctx context.Context, id string) (*model.Column, error) {
	args := m.Called(ctx, id)
	col := args.Get(0)
	if col == nil {
		return nil, args.Error(1)
	}
	return col.(*model.Column), args.Error(1)
}

func (m *MockColumnRepository) List(ctx context.Context) ([]model.Column, error) {
	args := m.Called(ctx)
	cols := args.Get(0)
	if cols == nil {
		return nil, args.Error(1)
	}
	return cols.([]model.Column), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByTrial(ctx context.Context, trialID string) ([]model.Task, error) {
	args := m.Called(ctx, trialID)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) CountByTrial(ctx context.Context, trialID string) (int64, error) {
	args := m.Called(ctx, trialID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) Lanes(ctx context.Context, trialID string) ([]board.Lane, error) {
	args := m.Called(ctx, trialID)
	lanes := args.Get(0)
	if lanes == nil {
		return nil, args.Error(1)
	}
	return lanes.([]board.Lane), args.Error(1)
}

func (m *MockBoardService) BeginDrag(ctx context.Context, trialID, taskID string, dx, dy float64) (bool, error) {
	args := m.Called(ctx, trialID, taskID, dx, dy)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoardService) UpdateDragTarget(ctx context.Context, trialID, targetID string) (board.Preview, error) {
	args := m.Called(ctx, trialID, targetID)
	return args.Get(0).(board.Preview), args.Error(1)
}

func (m *MockBoardService) EndDrag(ctx context.Context, trialID, targetID string) (board.Result, error) {
	args := m.Called(ctx, trialID, targetID)
	return args.Get(0).(board.Result), args.Error(1)
}

func (m *MockBoardService) CancelDrag(ctx context.Context, trialID string) error {
	args := m.Called(ctx, trialID)
	return args.Error(0)
}

func (m *MockBoardService) Reload(ctx context.Context, trialID string) error {
	args := m.Called(ctx, trialID)
	return args.Error(0)
}

// MockStore backs a real board.Manager in end-to-end tests.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListTasks(ctx context.Context, trialID string) ([]model.Task, error) {
	args := m.Called(ctx, trialID)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockStore) ReplaceTasks(ctx context.Context, trialID string, tasks []model.Task) error {
	args := m.Called(ctx, trialID, tasks)
	return args.Error(0)
}

func (m *MockStore) ListColumns(ctx context.Context) ([]model.Column, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Column), args.Error(1)
}

// recorder collects published events.
type recorder struct {
	events []events.Event
}

func (r *recorder) Publish(e events.Event) {
	r.events = append(r.events, e)
}
