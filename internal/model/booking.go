package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BikeBooking is a persisted rental for an inclusive date range.
// TotalPrice is derived at creation time and never recomputed.
type BikeBooking struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Reference    string          `json:"reference" gorm:"size:36;uniqueIndex;not null"`
	BikeID       uint            `json:"bike_id" gorm:"not null;index"`
	CustomerName string          `json:"customer_name" gorm:"size:255;not null"`
	Email        string          `json:"email" gorm:"size:255;not null"`
	Phone        string          `json:"phone" gorm:"size:50;not null"`
	StartDate    time.Time       `json:"start_date" gorm:"type:date;not null"`
	EndDate      time.Time       `json:"end_date" gorm:"type:date;not null"`
	TotalPrice   decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`

	// Relations
	Bike Bike `json:"-" gorm:"foreignKey:BikeID"`
}

// TableName keeps the historical table name.
func (BikeBooking) TableName() string {
	return "bike_bookings"
}

// BeforeCreate assigns a reference code used on receipts.
func (b *BikeBooking) BeforeCreate(tx *gorm.DB) error {
	if b.Reference == "" {
		b.Reference = uuid.New().String()
	}
	return nil
}
