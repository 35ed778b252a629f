package repository

import (
	"context"

	"gorm.io/gorm"

	"hubsite/internal/model"
)

// OrderRepository defines pet order persistence operations.
type OrderRepository interface {
	// CreateWithItems persists the order and its line items in a single
	// transaction. Either every row lands or none do.
	CreateWithItems(ctx context.Context, order *model.PetOrder) error
	FindByID(ctx context.Context, id uint) (*model.PetOrder, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order *model.PetOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.PetOrder, error) {
	var order model.PetOrder
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
