package models

// RecipePopularity is one row of the staff popularity report: a recipe and
// the number of distinct collections it has been saved into.
type RecipePopularity struct {
	RecipeID  uint   `json:"recipe_id" example:"1"`
	Title     string `json:"title" example:"Shakshuka"`
	Category  string `json:"category" example:"breakfast"`
	AuthorID  uint   `json:"author_id" example:"1"`
	SaveCount int64  `json:"save_count" example:"3"`
}

// UserActivity is one row of the staff activity report: a user and the
// number of collections they own.
type UserActivity struct {
	UserID          uint   `json:"user_id" example:"1"`
	Username        string `json:"username" example:"chef_jane"`
	CollectionCount int64  `json:"collection_count" example:"5"`
}
