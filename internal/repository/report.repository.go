package repository

import (
	"recipehub/internal/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	TopRecipesBySaves(limit int) ([]models.RecipePopularity, error)
	TopUsersByActivity(limit int) ([]models.UserActivity, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db}
}

// TopRecipesBySaves ranks recipes by how many collections contain them.
// Ties break on recipe id ascending so pagination stays reproducible.
func (r *reportRepository) TopRecipesBySaves(limit int) ([]models.RecipePopularity, error) {
	var rows []models.RecipePopularity
	err := r.db.Model(&models.Recipe{}).
		Select("recipes.id AS recipe_id, recipes.title, recipes.category, recipes.author_id, COUNT(collection_recipes.recipe_collection_id) AS save_count").
		Joins("LEFT JOIN collection_recipes ON collection_recipes.recipe_id = recipes.id").
		Group("recipes.id").
		Order("save_count DESC, recipes.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// TopUsersByActivity ranks users by the number of collections they own.
func (r *reportRepository) TopUsersByActivity(limit int) ([]models.UserActivity, error) {
	var rows []models.UserActivity
	err := r.db.Model(&models.User{}).
		Select("users.id AS user_id, users.username, COUNT(recipe_collections.id) AS collection_count").
		Joins("LEFT JOIN recipe_collections ON recipe_collections.user_id = users.id").
		Group("users.id").
		Order("collection_count DESC, users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
