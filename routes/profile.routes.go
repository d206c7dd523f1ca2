package routes

import (
	"recipehub/internal/controllers"
	"recipehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("/me", profileController.GetMyProfile)
		profileRoutes.PUT("/me", profileController.UpdateMyProfile)
		profileRoutes.GET("/me/recipes", profileController.GetMyRecipes)
	}
}
