package models

import "time"

// Profile holds the public bio of a user. It is created lazily the first
// time the profile is accessed, so a missing row is not an error.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id" example:"1"`
	Bio       string    `gorm:"type:text" json:"bio" example:"Home cook from Lisbon"`
}
