package model

import "time"

// User represents a registered site account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"` // Stored lowercase
	PasswordHash string    `json:"-" gorm:"size:255;not null"`                 // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}
