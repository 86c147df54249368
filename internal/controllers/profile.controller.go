package controllers

import (
	"net/http"
	"time"

	"fitnutri/internal/models"
	"fitnutri/internal/nutrition"
	"fitnutri/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileController struct {
	store *store.Store
}

func NewProfileController(s *store.Store) *ProfileController {
	return &ProfileController{store: s}
}

type profileRequest struct {
	Gender        nutrition.Gender        `json:"gender" binding:"required"`
	Age           int                     `json:"age" binding:"required"`
	Weight        float64                 `json:"weight" binding:"required"`
	Height        float64                 `json:"height" binding:"required"`
	ActivityLevel nutrition.ActivityLevel `json:"activity_level" binding:"required"`
	Goal          nutrition.Goal          `json:"goal" binding:"required"`
	DietTypes     []nutrition.DietType    `json:"diet_types" binding:"required"`
}

// CreateProfile godoc
// @Summary Complete onboarding
// @Description Create the active user profile, deriving BMR and TDEE from the biometric inputs
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body profileRequest true "Profile data"
// @Success 201 {object} map[string]interface{} "Profile created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /profile [post]
func (pc *ProfileController) CreateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if len(req.DietTypes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "At least one diet type must be selected",
		})
		return
	}

	bmr := nutrition.CalculateBMR(req.Gender, req.Weight, req.Height, req.Age)
	tdee := nutrition.CalculateTDEE(bmr, req.ActivityLevel)

	profile := &models.UserProfile{
		ID:                 uuid.NewString(),
		CreatedAt:          time.Now(),
		Gender:             req.Gender,
		Age:                req.Age,
		Weight:             req.Weight,
		Height:             req.Height,
		ActivityLevel:      req.ActivityLevel,
		Goal:               req.Goal,
		DietTypes:          req.DietTypes,
		BMR:                bmr,
		TDEE:               tdee,
		OnboardingComplete: true,
	}

	pc.store.SetUser(profile)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Profile created successfully",
		"data":    profile,
	})
}

// GetProfile godoc
// @Summary Get the active profile
// @Description Retrieve the active user's profile with derived energy targets
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile := pc.store.User()
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Onboarding has not been completed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// UpdateProfile godoc
// @Summary Update the active profile
// @Description Update profile fields. BMR and TDEE are derived at creation and are not recomputed here.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body profileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	profile := pc.store.User()
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Onboarding has not been completed",
		})
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// The last diet type cannot be removed.
	if len(req.DietTypes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "At least one diet type must be selected",
		})
		return
	}

	profile.Gender = req.Gender
	profile.Age = req.Age
	profile.Weight = req.Weight
	profile.Height = req.Height
	profile.ActivityLevel = req.ActivityLevel
	profile.Goal = req.Goal
	profile.DietTypes = req.DietTypes
	profile.UpdatedAt = time.Now()

	pc.store.SetUser(profile)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// DeleteProfile godoc
// @Summary Delete the active profile
// @Description Remove the active profile and its daily log
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [delete]
func (pc *ProfileController) DeleteProfile(c *gin.Context) {
	if pc.store.User() == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Onboarding has not been completed",
		})
		return
	}

	pc.store.DeleteUser()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
	})
}
