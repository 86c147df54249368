package routes

import (
	"fitnutri/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterShoppingRoutes(router *gin.Engine, shoppingController *controllers.ShoppingController) {
	shoppingRoutes := router.Group("/shopping")
	{
		shoppingRoutes.GET("/", shoppingController.GetShoppingList)
		shoppingRoutes.POST("/", shoppingController.AddToShoppingList)
		shoppingRoutes.DELETE("/", shoppingController.ClearShoppingList)
		shoppingRoutes.DELETE("/recipe/:recipe_id", shoppingController.RemoveRecipeItems)
		shoppingRoutes.PATCH("/:index", shoppingController.ToggleItem)
	}
}
