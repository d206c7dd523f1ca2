package models

import "time"

const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
)

type Recipe struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Title        string    `gorm:"size:100;index" json:"title" example:"Shakshuka"`
	Ingredients  string    `gorm:"type:text" json:"ingredients" example:"4 eggs, 2 cups tomato sauce"`
	Instructions string    `gorm:"type:text" json:"instructions" example:"Simmer the sauce, crack in the eggs."`
	Category     string    `gorm:"size:20;index" json:"category" example:"breakfast"`
	CookingTime  int       `json:"cooking_time" example:"25"` // minutes
	ImageURL     string    `json:"image_url" example:"https://cdn.example.com/recipes/shakshuka.jpg"`
	// AuthorID is set at creation time and never changes afterwards.
	AuthorID uint      `gorm:"index;not null" json:"author_id" example:"1"`
	Author   *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:RecipeID" json:"comments,omitempty"`
	Ratings  []Rating  `gorm:"foreignKey:RecipeID" json:"ratings,omitempty"`
}
