package controllers

import (
	"net/http"

	"fitnutri/internal/models"
	"fitnutri/internal/nutrition"
	"fitnutri/internal/store"

	"github.com/gin-gonic/gin"
)

type DailyLogController struct {
	store *store.Store
}

func NewDailyLogController(s *store.Store) *DailyLogController {
	return &DailyLogController{store: s}
}

// GetDailyLog godoc
// @Summary Get today's log
// @Description Retrieve the current day's consumed meals and running totals. Returns an empty log when no profile exists.
// @Tags log
// @Produce json
// @Success 200 {object} map[string]interface{} "Daily log retrieved successfully"
// @Router /log [get]
func (dc *DailyLogController) GetDailyLog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily log retrieved successfully",
		"data":    dc.store.DailyLog(),
	})
}

// MarkMealConsumed godoc
// @Summary Log a consumed meal
// @Description Append a consumption record with pre-scaled macro values to today's log
// @Tags log
// @Accept json
// @Produce json
// @Param meal body store.ConsumedMealInput true "Consumed meal data"
// @Success 201 {object} map[string]interface{} "Meal logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /log/meals [post]
func (dc *DailyLogController) MarkMealConsumed(c *gin.Context) {
	var input store.ConsumedMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if input.Status != models.MealCooked && input.Status != models.MealEaten {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Status must be cooked or eaten",
		})
		return
	}

	if dc.store.User() == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Onboarding has not been completed",
		})
		return
	}

	dc.store.MarkMealConsumed(input)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal logged successfully",
		"data":    dc.store.DailyLog(),
	})
}

// GetRemaining godoc
// @Summary Get remaining daily budget
// @Description Return calories and macro grams left for today, clamped at zero. Includes Zone block equivalents of the remaining macros.
// @Tags log
// @Produce json
// @Success 200 {object} map[string]interface{} "Remaining budget retrieved successfully"
// @Router /log/remaining [get]
func (dc *DailyLogController) GetRemaining(c *gin.Context) {
	macros := dc.store.RemainingMacros()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Remaining budget retrieved successfully",
		"data": gin.H{
			"calories":    dc.store.RemainingCalories(),
			"macros":      macros,
			"zone_blocks": nutrition.CalculateZoneBlocks(macros),
		},
	})
}

// ResetDailyLog godoc
// @Summary Reset today's log
// @Description Discard all meals logged today and start over with zero totals. Irreversible.
// @Tags log
// @Produce json
// @Success 200 {object} map[string]interface{} "Daily log reset successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /log [delete]
func (dc *DailyLogController) ResetDailyLog(c *gin.Context) {
	if dc.store.User() == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Onboarding has not been completed",
		})
		return
	}

	dc.store.ResetDailyLog()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily log reset successfully",
		"data":    dc.store.DailyLog(),
	})
}
