package models

import "time"

// Notification is a persisted user-visible message, independent of whether
// the matching email ever gets delivered. Only the Read flag mutates.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	RecipientID uint      `gorm:"index;not null" json:"recipient_id" example:"1"`
	SenderID    *uint     `json:"sender_id,omitempty" example:"2"`
	Message     string    `gorm:"type:text;not null" json:"message" example:"chef_jane commented on your recipe Shakshuka"`
	Read        bool      `gorm:"default:false" json:"read" example:"false"`
}
