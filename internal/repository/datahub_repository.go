package repository

import (
	"context"

	"gorm.io/gorm"

	"hubsite/internal/model"
)

// DataHubRepository defines datahub record persistence operations.
type DataHubRepository interface {
	Create(ctx context.Context, record *model.DataHubRecord) error
	List(ctx context.Context) ([]model.DataHubRecord, error)
	Delete(ctx context.Context, id uint) error
}

type dataHubRepository struct {
	db *gorm.DB
}

// NewDataHubRepository builds a GORM-backed repository.
func NewDataHubRepository(db *gorm.DB) DataHubRepository {
	return &dataHubRepository{db: db}
}

func (r *dataHubRepository) Create(ctx context.Context, record *model.DataHubRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// List returns records most-recent-first.
func (r *dataHubRepository) List(ctx context.Context) ([]model.DataHubRecord, error) {
	var records []model.DataHubRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes a record by id, gorm.ErrRecordNotFound if no row matched.
func (r *dataHubRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.DataHubRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
