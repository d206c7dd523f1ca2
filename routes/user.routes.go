package routes

import (
	"recipehub/internal/controllers"
	"recipehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, profileController *controllers.ProfileController, followController *controllers.FollowController) {
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.GET("/:id", profileController.GetUserProfile)
		userRoutes.POST("/:id/follow", followController.FollowUser)
		userRoutes.DELETE("/:id/follow", followController.UnfollowUser)
		userRoutes.GET("/:id/followers", followController.ListFollowers)
		userRoutes.GET("/:id/following", followController.ListFollowing)
	}
}
