package model

import "github.com/shopspring/decimal"

// PetProduct is a sellable catalog item priced per unit.
type PetProduct struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Category    string          `json:"category" gorm:"size:100;not null;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	ImageURL    string          `json:"image_url" gorm:"size:512"`
}
