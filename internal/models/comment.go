package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Text      string    `gorm:"type:text;not null" json:"text" example:"Tried this last night, fantastic."`
	RecipeID  uint      `gorm:"index;not null" json:"recipe_id" example:"1"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id" example:"2"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}
