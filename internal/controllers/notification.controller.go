package controllers

import (
	"net/http"
	"strconv"

	"recipehub/internal/repository"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationController(notificationRepo repository.NotificationRepository) *NotificationController {
	return &NotificationController{notificationRepo: notificationRepo}
}

func (nc *NotificationController) ListNotifications(c *gin.Context) {
	userID := c.GetUint("user_id")

	notifications, err := nc.notificationRepo.FindAllByRecipientID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load notifications",
			"error":   "Database query failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notifications retrieved successfully",
		"data":    notifications,
	})
}

// MarkNotificationRead flips the read flag to true. Marking an
// already-read notification again is a no-op.
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid notification ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	notification, err := nc.notificationRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Notification not found",
			"error":   "No notification exists with the provided ID",
		})
		return
	}

	if notification.RecipientID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not the notification recipient",
			"error":   "Only the recipient can mark this notification read",
		})
		return
	}

	if err := nc.notificationRepo.MarkRead(notification.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark notification read",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notification marked as read",
		"data":    nil,
	})
}
