package models

import "time"

// RecipeCollection is a user-owned named set of recipes. Membership is a
// many-to-many relation with set semantics: re-adding a recipe is a no-op.
type RecipeCollection struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Name      string    `gorm:"size:100;not null" json:"name" example:"Weeknight dinners"`
	UserID    uint      `gorm:"index;not null" json:"user_id" example:"1"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Recipes   []Recipe  `gorm:"many2many:collection_recipes" json:"recipes,omitempty"`
}
