package routes

import (
	"recipehub/internal/controllers"
	"recipehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(
	router *gin.Engine,
	recipeController *controllers.RecipeController,
	commentController *controllers.CommentController,
	ratingController *controllers.RatingController,
) {
	recipeRoutesPublic := router.Group("/recipes")
	{
		recipeRoutesPublic.GET("", recipeController.ListRecipes)
	}

	recipeRoutesPrivate := router.Group("/recipes")
	recipeRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		recipeRoutesPrivate.POST("", recipeController.CreateRecipe)
		recipeRoutesPrivate.GET("/:id", recipeController.GetRecipeDetail)
		recipeRoutesPrivate.PUT("/:id", recipeController.UpdateRecipe)
		recipeRoutesPrivate.DELETE("/:id", recipeController.DeleteRecipe)
		recipeRoutesPrivate.POST("/:id/comments", commentController.CreateComment)
		recipeRoutesPrivate.PUT("/:id/rating", ratingController.UpsertRating)
	}

	commentRoutes := router.Group("/comments")
	commentRoutes.Use(middleware.AuthMiddleware())
	{
		commentRoutes.PUT("/:id", commentController.UpdateComment)
		commentRoutes.DELETE("/:id", commentController.DeleteComment)
	}

	ratingRoutes := router.Group("/ratings")
	ratingRoutes.Use(middleware.AuthMiddleware())
	{
		ratingRoutes.DELETE("/:id", ratingController.DeleteRating)
	}
}
