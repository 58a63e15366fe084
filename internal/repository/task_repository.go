package repository

import (
	"context"
	"errors"
	"slices"

	"gorm.io/gorm"

	"trialboard/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListByTrial retrieves the flat task list of a trial in list order
func (r *TaskRepository) ListByTrial(ctx context.Context, trialID string) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("trial_id = ?", trialID).Order("position").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// CountByTrial returns the number of tasks of a trial
func (r *TaskRepository) CountByTrial(ctx context.Context, trialID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Where("trial_id = ?", trialID).Count(&count).Error
	return count, err
}

// Update updates an existing task
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// ReplaceAll writes the full task list of a trial, replacing whatever was
// stored. Positions follow the order of the given list.
func (r *TaskRepository) ReplaceAll(ctx context.Context, trialID string, tasks []model.Task) error {
	rows := slices.Clone(tasks)
	for i := range rows {
		rows[i].TrialID = trialID
		rows[i].Position = i
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trial_id = ?", trialID).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
