package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	commentRepo repository.CommentRepository
	recipeRepo  repository.RecipeRepository
	userRepo    repository.UserRepository
	notifier    services.Notifier
}

func NewCommentController(
	commentRepo repository.CommentRepository,
	recipeRepo repository.RecipeRepository,
	userRepo repository.UserRepository,
	notifier services.Notifier,
) *CommentController {
	return &CommentController{
		commentRepo: commentRepo,
		recipeRepo:  recipeRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateComment adds a comment to a recipe and notifies the recipe author.
func (cc *CommentController) CreateComment(c *gin.Context) {
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

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipe, err := cc.recipeRepo.FindByID(uint(recipeID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	comment := models.Comment{
		Text:     req.Text,
		RecipeID: recipe.ID,
		AuthorID: userID,
	}

	if err := cc.commentRepo.Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create comment",
			"error":   "Database insert failed",
		})
		return
	}

	if commenter, err := cc.userRepo.FindByID(userID); err == nil {
		senderID := userID
		message := fmt.Sprintf("%s commented on your recipe %s", commenter.Username, recipe.Title)
		if err := cc.notifier.Notify(recipe.AuthorID, &senderID, message); err != nil {
			log.Printf("Failed to notify user %d about comment on recipe %d: %v", recipe.AuthorID, recipe.ID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment created successfully",
		"data":    comment,
	})
}

func (cc *CommentController) UpdateComment(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid comment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	comment, err := cc.commentRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	if comment.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the comment author",
			"error":   "Only the author can edit this comment",
		})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	comment.Text = req.Text
	if err := cc.commentRepo.Update(comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update comment",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment updated successfully",
		"data":    comment,
	})
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid comment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	comment, err := cc.commentRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	if comment.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the comment author",
			"error":   "Only the author can delete this comment",
		})
		return
	}

	if err := cc.commentRepo.Delete(comment.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete comment",
			"error":   "Database deletion failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment deleted successfully",
		"data":    nil,
	})
}
