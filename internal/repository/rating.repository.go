package repository

import (
	"database/sql"
	"recipehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(rating *models.Rating) error
	FindByRecipeAndAuthor(recipeID, authorID uint) (*models.Rating, error)
	FindByID(id uint) (*models.Rating, error)
	Delete(id uint) error
	AverageForRecipe(recipeID uint) (*float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db}
}

// Upsert writes the score through the unique (recipe_id, author_id) index,
// so two concurrent submissions for the same pair end up as one row.
func (r *ratingRepository) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "author_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) FindByRecipeAndAuthor(recipeID, authorID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("recipe_id = ? AND author_id = ?", recipeID, authorID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindByID(id uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.First(&rating, id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Rating{}, id).Error
}

// AverageForRecipe returns nil when the recipe has no ratings yet; callers
// must branch on that instead of treating the average as zero.
func (r *ratingRepository) AverageForRecipe(recipeID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&models.Rating{}).
		Where("recipe_id = ?", recipeID).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	value := avg.Float64
	return &value, nil
}
