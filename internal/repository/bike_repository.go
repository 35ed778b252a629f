package repository

import (
	"context"

	"gorm.io/gorm"

	"hubsite/internal/model"
)

// BikeRepository defines bike catalog persistence operations.
type BikeRepository interface {
	List(ctx context.Context) ([]model.Bike, error)
	FindByID(ctx context.Context, id uint) (*model.Bike, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, bikes []model.Bike) error
}

type bikeRepository struct {
	db *gorm.DB
}

// NewBikeRepository builds a GORM-backed repository.
func NewBikeRepository(db *gorm.DB) BikeRepository {
	return &bikeRepository{db: db}
}

func (r *bikeRepository) List(ctx context.Context) ([]model.Bike, error) {
	var bikes []model.Bike
	if err := r.db.WithContext(ctx).Find(&bikes).Error; err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *bikeRepository) FindByID(ctx context.Context, id uint) (*model.Bike, error) {
	var bike model.Bike
	if err := r.db.WithContext(ctx).First(&bike, id).Error; err != nil {
		return nil, err
	}
	return &bike, nil
}

func (r *bikeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Bike{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bikeRepository) CreateBatch(ctx context.Context, bikes []model.Bike) error {
	if len(bikes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(bikes, 100).Error
}
