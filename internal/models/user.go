package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Username  string         `gorm:"size:150;uniqueIndex" json:"username" example:"chef_jane"`
	Email     string         `gorm:"uniqueIndex" json:"email" example:"jane@example.com"`
	Password  string         `json:"-"`
	IsStaff   bool           `gorm:"default:false" json:"is_staff" example:"false"`
}
