package routes

import (
	"fitnutri/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController) {
	profileRoutes := router.Group("/profile")
	{
		profileRoutes.GET("/", profileController.GetProfile)
		profileRoutes.POST("/", profileController.CreateProfile)
		profileRoutes.PUT("/", profileController.UpdateProfile)
		profileRoutes.DELETE("/", profileController.DeleteProfile)
	}
}
