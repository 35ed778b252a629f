package repository

import (
	"context"

	"gorm.io/gorm"

	"hubsite/internal/model"
)

// ProductRepository defines pet product catalog persistence operations.
type ProductRepository interface {
	List(ctx context.Context) ([]model.PetProduct, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.PetProduct, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, products []model.PetProduct) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context) ([]model.PetProduct, error) {
	var products []model.PetProduct
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByIDs returns the products matching ids. An empty id set returns an
// empty slice without touching the database.
func (r *productRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.PetProduct, error) {
	if len(ids) == 0 {
		return []model.PetProduct{}, nil
	}
	var products []model.PetProduct
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.PetProduct{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *productRepository) CreateBatch(ctx context.Context, products []model.PetProduct) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(products, 100).Error
}
