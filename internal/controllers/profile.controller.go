package controllers

import (
	"net/http"
	"strconv"

	"recipehub/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	recipeRepo  repository.RecipeRepository
	followRepo  repository.FollowRepository
}

func NewProfileController(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
	followRepo repository.FollowRepository,
) *ProfileController {
	return &ProfileController{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		recipeRepo:  recipeRepo,
		followRepo:  followRepo,
	}
}

type ProfileRequest struct {
	Bio string `json:"bio" binding:"max=2000"`
}

func (pc *ProfileController) GetMyProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	profile, err := pc.profileRepo.GetOrCreateByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load profile",
			"error":   "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

func (pc *ProfileController) UpdateMyProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile, err := pc.profileRepo.GetOrCreateByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load profile",
			"error":   "Database query failed",
		})
		return
	}

	profile.Bio = req.Bio
	if err := pc.profileRepo.Update(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

func (pc *ProfileController) GetMyRecipes(c *gin.Context) {
	userID := c.GetUint("user_id")

	recipes, err := pc.recipeRepo.FindAllByAuthorID(userID)
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
	})
}

// GetUserProfile godoc
// @Summary Public profile of a user
// @Description Returns the user's bio, recipes, follower/following counts and whether the caller follows them
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [get]
func (pc *ProfileController) GetUserProfile(c *gin.Context) {
	viewerID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	user, err := pc.userRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	profile, err := pc.profileRepo.GetOrCreateByUserID(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load profile",
			"error":   "Database query failed",
		})
		return
	}

	recipes, err := pc.recipeRepo.FindAllByAuthorID(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load recipes",
			"error":   "Database query failed",
		})
		return
	}

	followerCount, err := pc.followRepo.CountFollowers(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load follower count",
			"error":   "Database query failed",
		})
		return
	}

	followingCount, err := pc.followRepo.CountFollowing(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load following count",
			"error":   "Database query failed",
		})
		return
	}

	isFollowing, err := pc.followRepo.IsFollowing(viewerID, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load follow state",
			"error":   "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data": gin.H{
			"user":            user,
			"bio":             profile.Bio,
			"recipes":         recipes,
			"follower_count":  followerCount,
			"following_count": followingCount,
			"is_following":    isFollowing,
		},
	})
}
