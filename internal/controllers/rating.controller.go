package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RatingController struct {
	ratingRepo repository.RatingRepository
	recipeRepo repository.RecipeRepository
	userRepo   repository.UserRepository
	notifier   services.Notifier
}

func NewRatingController(
	ratingRepo repository.RatingRepository,
	recipeRepo repository.RecipeRepository,
	userRepo repository.UserRepository,
	notifier services.Notifier,
) *RatingController {
	return &RatingController{
		ratingRepo: ratingRepo,
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

type RatingRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// UpsertRating godoc
// @Summary Rate a recipe
// @Description Creates the caller's rating for the recipe or updates it in place; the author is notified only on the first rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param rating body RatingRequest true "Score between 1 and 5"
// @Success 200 {object} map[string]interface{} "Rating saved successfully"
// @Failure 400 {object} map[string]interface{} "Score out of range"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id}/rating [put]
func (rc *RatingController) UpsertRating(c *gin.Context) {
	userID := c.GetUint("user_id")

	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipe, err := rc.recipeRepo.FindByID(uint(recipeID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	_, err = rc.ratingRepo.FindByRecipeAndAuthor(recipe.ID, userID)
	isNewRating := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNewRating {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load rating",
			"error":   "Database query failed",
		})
		return
	}

	rating := models.Rating{
		RecipeID: recipe.ID,
		AuthorID: userID,
		Score:    req.Score,
	}

	if err := rc.ratingRepo.Upsert(&rating); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save rating",
			"error":   "Database write failed",
		})
		return
	}

	if isNewRating {
		if rater, err := rc.userRepo.FindByID(userID); err == nil {
			senderID := userID
			message := fmt.Sprintf("%s rated on your recipe %s", rater.Username, recipe.Title)
			if err := rc.notifier.Notify(recipe.AuthorID, &senderID, message); err != nil {
				log.Printf("Failed to notify user %d about rating on recipe %d: %v", recipe.AuthorID, recipe.ID, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Rating saved successfully",
		"data":    rating,
	})
}

func (rc *RatingController) DeleteRating(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid rating ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	rating, err := rc.ratingRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Rating not found",
			"error":   "No rating exists with the provided ID",
		})
		return
	}

	if rating.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the rating author",
			"error":   "Only the author can delete this rating",
		})
		return
	}

	if err := rc.ratingRepo.Delete(rating.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete rating",
			"error":   "Database deletion failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Rating deleted successfully",
		"data":    nil,
	})
}
