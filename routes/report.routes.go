package routes

import (
	"recipehub/internal/controllers"
	"recipehub/internal/middleware"
	"recipehub/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(
	router *gin.Engine,
	reportController *controllers.ReportController,
	emailController *controllers.EmailController,
	userRepo repository.UserRepository,
) {
	reportRoutes := router.Group("/reports")
	reportRoutes.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware(userRepo))
	{
		reportRoutes.GET("/popular-recipes", reportController.PopularRecipes)
		reportRoutes.GET("/user-activity", reportController.UserActivity)
	}

	emailRoutes := router.Group("/email")
	emailRoutes.Use(middleware.AuthMiddleware())
	{
		emailRoutes.POST("/test", emailController.SendTestEmail)
	}
}
