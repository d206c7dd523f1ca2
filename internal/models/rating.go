package models

import "time"

// Rating is one user's 1-5 score for a recipe. The composite unique index
// makes the one-rating-per-(author, recipe) rule a storage constraint, so
// concurrent submissions collapse into an upsert instead of duplicating.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_recipe_author" json:"recipe_id" example:"1"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_recipe_author" json:"author_id" example:"2"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5" json:"score" example:"4"`
}
