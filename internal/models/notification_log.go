package models

import "time"

// NotificationLog is one delivered notification, kept when the postgres
// store driver is in use.
type NotificationLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title         string `gorm:"size:120;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	Variant       string `gorm:"size:20;not null" json:"variant"`
	CorrelationID string `gorm:"size:64;index" json:"correlation_id"`

	CreatedAt time.Time `json:"created_at"`
}
