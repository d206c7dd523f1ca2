package routes

import (
	"recipehub/internal/controllers"
	"recipehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(router *gin.Engine, notificationController *controllers.NotificationController) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware())
	{
		notificationRoutes.GET("", notificationController.ListNotifications)
		notificationRoutes.PATCH("/:id/read", notificationController.MarkNotificationRead)
	}
}
