package repository

import (
	"recipehub/internal/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	FindByID(id uint) (*models.Recipe, error)
	FindByIDWithDetails(id uint) (*models.Recipe, error)
	Search(query string, page, limit int) ([]models.Recipe, int64, error)
	FindAllByAuthorID(authorID uint) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db}
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Author").First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindByIDWithDetails(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Ratings").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Search filters recipes by a substring match on title or ingredients and
// pages through the result ordered by title for stable pagination.
func (r *recipeRepository) Search(query string, page, limit int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	tx := r.db.Model(&models.Recipe{})
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("title ILIKE ? OR ingredients ILIKE ?", pattern, pattern)
	}

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := tx.Preload("Author").Order("title ASC").Limit(limit).Offset(offset).Find(&recipes).Error
	return recipes, total, err
}

func (r *recipeRepository) FindAllByAuthorID(authorID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

func (r *recipeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Recipe{}, id).Error
}
