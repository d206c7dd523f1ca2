package routes

import (
	"recipehub/internal/controllers"
	"recipehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCollectionRoutes(router *gin.Engine, collectionController *controllers.CollectionController) {
	collectionRoutes := router.Group("/collections")
	collectionRoutes.Use(middleware.AuthMiddleware())
	{
		collectionRoutes.POST("", collectionController.CreateCollection)
		collectionRoutes.GET("", collectionController.ListMyCollections)
		collectionRoutes.GET("/:id", collectionController.GetCollection)
		collectionRoutes.DELETE("/:id", collectionController.DeleteCollection)
		collectionRoutes.POST("/:id/recipes/:recipeID", collectionController.AddRecipe)
		collectionRoutes.DELETE("/:id/recipes/:recipeID", collectionController.RemoveRecipe)
	}
}
