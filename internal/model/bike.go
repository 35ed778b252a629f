package model

import "github.com/shopspring/decimal"

// Bike is a rentable catalog item priced per day.
type Bike struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Type        string          `json:"type" gorm:"size:100;not null;index"`
	PricePerDay decimal.Decimal `json:"price_per_day" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	ImageURL    string          `json:"image_url" gorm:"size:512"`
}
