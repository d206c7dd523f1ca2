package repository

import (
	"recipehub/internal/models"

	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(collection *models.RecipeCollection) error
	FindByID(id uint) (*models.RecipeCollection, error)
	FindAllByUserID(userID uint) ([]models.RecipeCollection, error)
	AddRecipe(collection *models.RecipeCollection, recipe *models.Recipe) error
	RemoveRecipe(collection *models.RecipeCollection, recipe *models.Recipe) error
	Delete(collection *models.RecipeCollection) error
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db}
}

func (r *collectionRepository) Create(collection *models.RecipeCollection) error {
	return r.db.Create(collection).Error
}

func (r *collectionRepository) FindByID(id uint) (*models.RecipeCollection, error) {
	var collection models.RecipeCollection
	err := r.db.Preload("Recipes").Preload("Recipes.Author").First(&collection, id).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) FindAllByUserID(userID uint) ([]models.RecipeCollection, error) {
	var collections []models.RecipeCollection
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&collections).Error
	return collections, err
}

// AddRecipe appends to the membership join table. gorm upserts the join
// row, so re-adding an existing member is a no-op.
func (r *collectionRepository) AddRecipe(collection *models.RecipeCollection, recipe *models.Recipe) error {
	return r.db.Model(collection).Association("Recipes").Append(recipe)
}

// RemoveRecipe deletes only the join row; removing an absent member is a
// no-op.
func (r *collectionRepository) RemoveRecipe(collection *models.RecipeCollection, recipe *models.Recipe) error {
	return r.db.Model(collection).Association("Recipes").Delete(recipe)
}

func (r *collectionRepository) Delete(collection *models.RecipeCollection) error {
	if err := r.db.Model(collection).Association("Recipes").Clear(); err != nil {
		return err
	}
	return r.db.Delete(collection).Error
}
