package routes

import (
	"fitnutri/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDailyLogRoutes(router *gin.Engine, dailyLogController *controllers.DailyLogController) {
	logRoutes := router.Group("/log")
	{
		logRoutes.GET("/", dailyLogController.GetDailyLog)
		logRoutes.DELETE("/", dailyLogController.ResetDailyLog)
		logRoutes.POST("/meals", dailyLogController.MarkMealConsumed)
		logRoutes.GET("/remaining", dailyLogController.GetRemaining)
	}
}
