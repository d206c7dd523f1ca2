package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"recipehub/internal/repository"
	"recipehub/internal/services"

	"github.com/gin-gonic/gin"
)

type FollowController struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	notifier   services.Notifier
}

func NewFollowController(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	notifier services.Notifier,
) *FollowController {
	return &FollowController{
		followRepo: followRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// FollowUser godoc
// @Summary Follow a user
// @Description Creates the follow edge if absent; following an already-followed user is a no-op and sends no second notification
// @Tags follows
// @Produce json
// @Param id path int true "User ID to follow"
// @Success 200 {object} map[string]interface{} "Now following user"
// @Failure 400 {object} map[string]interface{} "Cannot follow yourself"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id}/follow [post]
func (fc *FollowController) FollowUser(c *gin.Context) {
	followerID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}
	followedID := uint(id)

	if followedID == followerID {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Cannot follow yourself",
			"error":   "A user cannot follow themselves",
		})
		return
	}

	followed, err := fc.userRepo.FindByID(followedID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	created, err := fc.followRepo.Follow(followerID, followedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to follow user",
			"error":   "Database write failed",
		})
		return
	}

	if created {
		if follower, err := fc.userRepo.FindByID(followerID); err == nil {
			senderID := followerID
			message := fmt.Sprintf("Hello %s,\n\n%s has started following you.", followed.Username, follower.Username)
			if err := fc.notifier.Notify(followed.ID, &senderID, message); err != nil {
				log.Printf("Failed to notify user %d about new follower %d: %v", followed.ID, followerID, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Now following user",
		"data": gin.H{
			"following": true,
			"created":   created,
		},
	})
}

// UnfollowUser deletes the edge if present; unfollowing someone not
// followed is a no-op.
func (fc *FollowController) UnfollowUser(c *gin.Context) {
	followerID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := fc.userRepo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	if err := fc.followRepo.Unfollow(followerID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to unfollow user",
			"error":   "Database write failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Unfollowed user",
		"data": gin.H{
			"following": false,
		},
	})
}

func (fc *FollowController) ListFollowers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := fc.userRepo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	followers, err := fc.followRepo.Followers(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load followers",
			"error":   "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Followers retrieved successfully",
		"data":    followers,
		"meta": gin.H{
			"count": len(followers),
		},
	})
}

func (fc *FollowController) ListFollowing(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := fc.userRepo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	following, err := fc.followRepo.Following(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load following",
			"error":   "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Following retrieved successfully",
		"data":    following,
		"meta": gin.H{
			"count": len(following),
		},
	})
}
