package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"recipehub/internal/models"
	"recipehub/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecipeController struct {
	recipeRepo repository.RecipeRepository
	ratingRepo repository.RatingRepository
}

func NewRecipeController(recipeRepo repository.RecipeRepository, ratingRepo repository.RatingRepository) *RecipeController {
	return &RecipeController{recipeRepo: recipeRepo, ratingRepo: ratingRepo}
}

type RecipeRequest struct {
	Title        string `json:"title" binding:"required,max=100"`
	Ingredients  string `json:"ingredients" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
	Category     string `json:"category" binding:"required,oneof=breakfast lunch dinner"`
	CookingTime  int    `json:"cooking_time" binding:"required,min=1"`
	ImageURL     string `json:"image_url"`
}

// ListRecipes godoc
// @Summary List recipes
// @Description Lists recipes ordered by title, optionally filtered by a search query on title or ingredients
// @Tags recipes
// @Produce json
// @Param search_query query string false "Substring to match against title or ingredients"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Router /recipes [get]
func (rc *RecipeController) ListRecipes(c *gin.Context) {
	searchQuery := c.Query("search_query")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	recipes, total, err := rc.recipeRepo.Search(searchQuery, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load recipes",
			"error":   "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    recipes,
		"meta": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipe := models.Recipe{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     req.Category,
		CookingTime:  req.CookingTime,
		ImageURL:     req.ImageURL,
		AuthorID:     userID,
	}

	if err := rc.recipeRepo.Create(&recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create recipe",
			"error":   "Database insert failed",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

// GetRecipeDetail godoc
// @Summary Recipe detail
// @Description Returns the recipe with its comments, ratings, the average rating (null when unrated) and the caller's own rating
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [get]
func (rc *RecipeController) GetRecipeDetail(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, err := rc.recipeRepo.FindByIDWithDetails(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	// average is nil when the recipe has no ratings yet; the response
	// carries null so clients can branch on "No ratings yet".
	average, err := rc.ratingRepo.AverageForRecipe(recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute average rating",
			"error":   "Database query failed",
		})
		return
	}

	var userRating *models.Rating
	rating, err := rc.ratingRepo.FindByRecipeAndAuthor(recipe.ID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load rating",
			"error":   "Database query failed",
		})
		return
	}
	if err == nil {
		userRating = rating
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data": gin.H{
			"recipe":         recipe,
			"average_rating": average,
			"user_rating":    userRating,
		},
	})
}

func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, err := rc.recipeRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	if recipe.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the recipe author",
			"error":   "Only the author can update this recipe",
		})
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// The author never changes; only content fields are writable.
	recipe.Title = req.Title
	recipe.Ingredients = req.Ingredients
	recipe.Instructions = req.Instructions
	recipe.Category = req.Category
	recipe.CookingTime = req.CookingTime
	recipe.ImageURL = req.ImageURL

	if err := rc.recipeRepo.Update(recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update recipe",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, err := rc.recipeRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	if recipe.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the recipe author",
			"error":   "Only the author can delete this recipe",
		})
		return
	}

	if err := rc.recipeRepo.Delete(recipe.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete recipe",
			"error":   "Database deletion failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
		"data":    nil,
	})
}
