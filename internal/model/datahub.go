package model

import "time"

// DataHubRecord is a free-form log entry visible to every signed-in user.
// Records carry no owner; any authenticated user may delete any record.
type DataHubRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName keeps the historical table name.
func (DataHubRecord) TableName() string {
	return "datahub_records"
}
