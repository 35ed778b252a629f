package repository

import (
	"context"

	"gorm.io/gorm"

	"hubsite/internal/model"
)

// BookingRepository defines bike booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.BikeBooking) error
	FindByID(ctx context.Context, id uint) (*model.BikeBooking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository builds a GORM-backed repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.BikeBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*model.BikeBooking, error) {
	var booking model.BikeBooking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}
