package controllers

import (
	"net/http"
	"strconv"

	"recipehub/internal/models"
	"recipehub/internal/repository"

	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	collectionRepo repository.CollectionRepository
	recipeRepo     repository.RecipeRepository
}

func NewCollectionController(collectionRepo repository.CollectionRepository, recipeRepo repository.RecipeRepository) *CollectionController {
	return &CollectionController{collectionRepo: collectionRepo, recipeRepo: recipeRepo}
}

type CollectionRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (cc *CollectionController) CreateCollection(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	collection := models.RecipeCollection{
		Name:   req.Name,
		UserID: userID,
	}

	if err := cc.collectionRepo.Create(&collection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create collection",
			"error":   "Database insert failed",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Collection created successfully",
		"data":    collection,
	})
}

func (cc *CollectionController) ListMyCollections(c *gin.Context) {
	userID := c.GetUint("user_id")

	collections, err := cc.collectionRepo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load collections",
			"error":   "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Collections retrieved successfully",
		"data":    collections,
	})
}

func (cc *CollectionController) GetCollection(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid collection ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	collection, err := cc.collectionRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Collection not found",
			"error":   "No collection exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Collection retrieved successfully",
		"data":    collection,
	})
}

func (cc *CollectionController) DeleteCollection(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid collection ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	collection, err := cc.collectionRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Collection not found",
			"error":   "No collection exists with the provided ID",
		})
		return
	}

	if collection.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the collection owner",
			"error":   "Only the owner can delete this collection",
		})
		return
	}

	if err := cc.collectionRepo.Delete(collection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete collection",
			"error":   "Database deletion failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Collection deleted successfully",
		"data":    nil,
	})
}

// AddRecipe puts a recipe into the caller's collection. Membership has set
// semantics, so re-adding an existing member succeeds without duplicating.
func (cc *CollectionController) AddRecipe(c *gin.Context) {
	userID := c.GetUint("user_id")

	collection, recipe, ok := cc.loadMembershipPair(c, userID)
	if !ok {
		return
	}

	if err := cc.collectionRepo.AddRecipe(collection, recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to add recipe to collection",
			"error":   "Database write failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe added to collection",
		"data":    nil,
	})
}

// RemoveRecipe takes a recipe out of the caller's collection; removing an
// absent member is a no-op.
func (cc *CollectionController) RemoveRecipe(c *gin.Context) {
	userID := c.GetUint("user_id")

	collection, recipe, ok := cc.loadMembershipPair(c, userID)
	if !ok {
		return
	}

	if err := cc.collectionRepo.RemoveRecipe(collection, recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to remove recipe from collection",
			"error":   "Database write failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe removed from collection",
		"data":    nil,
	})
}

// loadMembershipPair resolves the collection and recipe path params for a
// membership mutation and enforces ownership of the collection. It writes
// the error response itself when returning ok=false.
func (cc *CollectionController) loadMembershipPair(c *gin.Context, userID uint) (*models.RecipeCollection, *models.Recipe, bool) {
	collectionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid collection ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, nil, false
	}

	recipeID, err := strconv.ParseUint(c.Param("recipeID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, nil, false
	}

	collection, err := cc.collectionRepo.FindByID(uint(collectionID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Collection not found",
			"error":   "No collection exists with the provided ID",
		})
		return nil, nil, false
	}

	if collection.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the collection owner",
			"error":   "Only the owner can change collection membership",
		})
		return nil, nil, false
	}

	recipe, err := cc.recipeRepo.FindByID(uint(recipeID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return nil, nil, false
	}

	return collection, recipe, true
}
