package controllers

import (
	"log"
	"net/http"

	"fitnutri/internal/cache"
	"fitnutri/internal/models"
	"fitnutri/internal/store"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	store *store.Store
	cache *cache.RedisClient
}

func NewAdminController(s *store.Store, redisClient *cache.RedisClient) *AdminController {
	return &AdminController{store: s, cache: redisClient}
}

// ListPendingRecipes godoc
// @Summary List recipes awaiting moderation
// @Description Retrieve all recipes with pending status
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Pending recipes retrieved successfully"
// @Router /admin/recipes/pending [get]
func (ac *AdminController) ListPendingRecipes(c *gin.Context) {
	recipes := ac.store.Recipes(store.RecipeFilter{Status: models.StatusPending})

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Pending recipes retrieved successfully",
		"data":    recipes,
	})
}

type statusRequest struct {
	Status models.ModerationStatus `json:"status" binding:"required"`
}

// UpdateRecipeStatus godoc
// @Summary Moderate a recipe
// @Description Set a recipe's moderation status to approved or rejected. The transition is unguarded: a later call overwrites an earlier decision.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param status body statusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Recipe status updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /admin/recipes/{id}/status [patch]
func (ac *AdminController) UpdateRecipeStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Status != models.StatusApproved && req.Status != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Status must be approved or rejected",
		})
		return
	}

	if !ac.store.UpdateRecipeStatus(c.Param("id"), req.Status) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with this ID",
		})
		return
	}

	if ac.cache != nil {
		if err := ac.cache.InvalidateRecipeList(); err != nil {
			log.Printf("Warning: failed to invalidate recipe list cache: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe status updated successfully",
	})
}

// ListReports godoc
// @Summary List recipe reports
// @Description Retrieve all filed recipe reports
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Reports retrieved successfully"
// @Router /admin/reports [get]
func (ac *AdminController) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reports retrieved successfully",
		"data":    ac.store.Reports(),
	})
}

// ReviewReport godoc
// @Summary Mark a report reviewed
// @Description Transition a report from pending to reviewed
// @Tags admin
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]interface{} "Report marked reviewed"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /admin/reports/{id} [patch]
func (ac *AdminController) ReviewReport(c *gin.Context) {
	if !ac.store.ReviewReport(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Report not found",
			"error":   "No report exists with this ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report marked reviewed",
	})
}
