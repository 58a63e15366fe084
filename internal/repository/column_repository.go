package repository

import (
	"context"
	"errors"

	"trialboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) GetByID(ctx context.Context, id string) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ? AND configured = ?", id, true).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

// List returns the configured columns in board order.
func (r *ColumnRepository) List(ctx context.Context) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Where("configured = ?", true).Order("position").Find(&columns).Error
	return columns, err
}

// Sync makes the given list the configured columns, assigning positions in
// the order given. Columns no longer listed are marked unconfigured rather
// than deleted, so tasks referencing them are kept and show up as orphans.
func (r *ColumnRepository) Sync(ctx context.Context, columns []model.Column) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Column{}).Where("configured = ?", true).Update("configured", false).Error; err != nil {
			return err
		}
		for i, column := range columns {
			column.Position = i
			column.Configured = true
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "color", "position", "configured"}),
			}).Create(&column).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
