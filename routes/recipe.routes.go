package routes

import (
	"fitnutri/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/recipes")
	{
		recipeRoutes.GET("/", recipeController.ListRecipes)
		recipeRoutes.POST("/", recipeController.SubmitRecipe)
		recipeRoutes.GET("/:id", recipeController.GetRecipe)
		recipeRoutes.POST("/:id/comments", recipeController.AddComment)
		recipeRoutes.POST("/:id/ratings", recipeController.AddRating)
		recipeRoutes.POST("/:id/reports", recipeController.ReportRecipe)
	}
}
