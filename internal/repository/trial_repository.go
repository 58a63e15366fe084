package repository

import (
	"context"
	"errors"

	"trialboard/internal/model"

	"gorm.io/gorm"
)

type TrialRepository struct {
	db *gorm.DB
}

func NewTrialRepository(db *gorm.DB) *TrialRepository {
	return &TrialRepository{db: db}
}

func (r *TrialRepository) Create(ctx context.Context, trial *model.Trial) error {
	return r.db.WithContext(ctx).Create(trial).Error
}

func (r *TrialRepository) List(ctx context.Context) ([]model.Trial, error) {
	var trials []model.Trial
	err := r.db.WithContext(ctx).Order("created_at").Find(&trials).Error
	return trials, err
}

func (r *TrialRepository) GetByID(ctx context.Context, id string) (*model.Trial, error) {
	var trial model.Trial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&trial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrialNotFound
		}
		return nil, err
	}
	return &trial, nil
}
