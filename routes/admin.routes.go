package routes

import (
	"fitnutri/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(router *gin.Engine, adminController *controllers.AdminController) {
	adminRoutes := router.Group("/admin")
	{
		adminRoutes.GET("/recipes/pending", adminController.ListPendingRecipes)
		adminRoutes.PATCH("/recipes/:id/status", adminController.UpdateRecipeStatus)
		adminRoutes.GET("/reports", adminController.ListReports)
		adminRoutes.PATCH("/reports/:id", adminController.ReviewReport)
	}
}
