package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PetOrder is a purchase created from the session cart at checkout.
// Invariant: TotalAmount equals the sum of Quantity times PriceEach over Items.
type PetOrder struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Reference    string          `json:"reference" gorm:"size:36;uniqueIndex;not null"`
	CustomerName string          `json:"customer_name" gorm:"size:255;not null"`
	Email        string          `json:"email" gorm:"size:255;not null"`
	Phone        string          `json:"phone" gorm:"size:50;not null"`
	TotalAmount  decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`

	// Relations
	Items []PetOrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// TableName keeps the historical table name.
func (PetOrder) TableName() string {
	return "pet_orders"
}

// BeforeCreate assigns a reference code used on receipts.
func (o *PetOrder) BeforeCreate(tx *gorm.DB) error {
	if o.Reference == "" {
		o.Reference = uuid.New().String()
	}
	return nil
}

// PetOrderItem is one line of a PetOrder. PriceEach snapshots the catalog
// price at purchase time; later catalog edits do not rewrite history.
type PetOrderItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     uint            `json:"order_id" gorm:"not null;index"`
	ProductName string          `json:"product_name" gorm:"size:255;not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	PriceEach   decimal.Decimal `json:"price_each" gorm:"type:decimal(10,2);not null"`
}

// TableName keeps the historical table name.
func (PetOrderItem) TableName() string {
	return "pet_order_items"
}
