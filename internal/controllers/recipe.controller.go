package controllers

import (
	"log"
	"net/http"
	"time"

	"fitnutri/internal/cache"
	"fitnutri/internal/models"
	"fitnutri/internal/nutrition"
	"fitnutri/internal/store"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	store *store.Store
	cache *cache.RedisClient
}

// NewRecipeController wires the recipe endpoints. The cache may be nil; the
// controller then serves every listing from the store.
func NewRecipeController(s *store.Store, redisClient *cache.RedisClient) *RecipeController {
	return &RecipeController{store: s, cache: redisClient}
}

const recipeListCacheTTL = 5 * time.Minute

// ListRecipes godoc
// @Summary Browse recipes
// @Description List approved recipes, optionally filtered by category, tag, diet type, or a title search query
// @Tags recipes
// @Produce json
// @Param category query string false "Meal category (breakfast, lunch, dinner, snack)"
// @Param tag query string false "Recipe tag (sweet, savory, pastry, soup)"
// @Param diet query string false "Diet type"
// @Param q query string false "Title search query"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Router /recipes [get]
func (rc *RecipeController) ListRecipes(c *gin.Context) {
	filter := store.RecipeFilter{
		Category: models.Category(c.Query("category")),
		Tag:      models.Tag(c.Query("tag")),
		Diet:     nutrition.DietType(c.Query("diet")),
		Query:    c.Query("q"),
		Status:   models.StatusApproved,
	}

	unfiltered := filter.Category == "" && filter.Tag == "" && filter.Diet == "" && filter.Query == ""
	if unfiltered && rc.cache != nil {
		if recipes, hit, err := rc.cache.GetRecipeList(); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Recipes retrieved successfully",
				"data":    recipes,
			})
			return
		}
	}

	recipes := rc.store.Recipes(filter)

	if unfiltered && rc.cache != nil {
		if err := rc.cache.StoreRecipeList(recipes, recipeListCacheTTL); err != nil {
			log.Printf("Warning: failed to cache recipe list: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    recipes,
	})
}

// GetRecipe godoc
// @Summary Get a recipe
// @Description Retrieve a single recipe with its ratings and comments
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [get]
func (rc *RecipeController) GetRecipe(c *gin.Context) {
	recipe, ok := rc.store.RecipeByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with this ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    recipe,
	})
}

type recipeSubmission struct {
	Title        string               `json:"title"`
	Image        string               `json:"image"`
	Category     models.Category      `json:"category" binding:"required"`
	Tags         []models.Tag         `json:"tags"`
	DietTypes    []nutrition.DietType `json:"diet_types"`
	Ingredients  []models.Ingredient  `json:"ingredients"`
	Instructions []string             `json:"instructions"`
	Macros       models.MacroSet      `json:"macros"`
	PrepTime     int                  `json:"prep_time"`
	CookTime     int                  `json:"cook_time"`
	Servings     int                  `json:"servings"`
	AuthorID     string               `json:"author_id"`
}

// validate enforces the submission rules the store itself does not check:
// non-empty title, at least one named ingredient, at least one instruction.
func (r *recipeSubmission) validate() string {
	if r.Title == "" {
		return "Title must not be empty"
	}
	valid := false
	for _, ing := range r.Ingredients {
		if ing.Name != "" {
			valid = true
			break
		}
	}
	if !valid {
		return "At least one ingredient with a name is required"
	}
	if len(r.Instructions) == 0 {
		return "At least one instruction is required"
	}
	return ""
}

// SubmitRecipe godoc
// @Summary Submit a recipe
// @Description Submit a recipe for moderation; it enters the queue with pending status
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body recipeSubmission true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe submitted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /recipes [post]
func (rc *RecipeController) SubmitRecipe(c *gin.Context) {
	var req recipeSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   msg,
		})
		return
	}

	authorID := req.AuthorID
	if authorID == "" {
		if user := rc.store.User(); user != nil {
			authorID = user.ID
		}
	}

	recipe := rc.store.AddRecipe(models.Recipe{
		Title:        req.Title,
		Image:        req.Image,
		Category:     req.Category,
		Tags:         req.Tags,
		DietTypes:    req.DietTypes,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Macros:       req.Macros,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		AuthorID:     authorID,
	})
	rc.invalidateCache()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe submitted successfully",
		"data":    recipe,
	})
}

type commentRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// AddComment godoc
// @Summary Comment on a recipe
// @Description Append a comment to the recipe's comment sequence
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param comment body commentRequest true "Comment data"
// @Success 201 {object} map[string]interface{} "Comment added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id}/comments [post]
func (rc *RecipeController) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID := req.UserID
	if userID == "" {
		if user := rc.store.User(); user != nil {
			userID = user.ID
		}
	}

	if !rc.store.AddComment(c.Param("id"), userID, req.UserName, req.Text) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with this ID",
		})
		return
	}
	rc.invalidateCache()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment added successfully",
	})
}

type ratingRequest struct {
	UserID string  `json:"user_id"`
	Rating float64 `json:"rating" binding:"required"`
}

// AddRating godoc
// @Summary Rate a recipe
// @Description Record the user's rating, replacing any prior rating by the same user, and recompute the average
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param rating body ratingRequest true "Rating data"
// @Success 200 {object} map[string]interface{} "Rating recorded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id}/ratings [post]
func (rc *RecipeController) AddRating(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID := req.UserID
	if userID == "" {
		if user := rc.store.User(); user != nil {
			userID = user.ID
		}
	}

	if !rc.store.AddRating(c.Param("id"), userID, req.Rating) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with this ID",
		})
		return
	}
	rc.invalidateCache()

	recipe, _ := rc.store.RecipeByID(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Rating recorded successfully",
		"data": gin.H{
			"average_rating": recipe.AverageRating,
		},
	})
}

type reportRequest struct {
	UserID  string `json:"user_id"`
	Reason  string `json:"reason" binding:"required"`
	Details string `json:"details"`
}

// ReportRecipe godoc
// @Summary Report a recipe
// @Description File a complaint about a recipe for admin review
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param report body reportRequest true "Report data"
// @Success 201 {object} map[string]interface{} "Report filed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id}/reports [post]
func (rc *RecipeController) ReportRecipe(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID := req.UserID
	if userID == "" {
		if user := rc.store.User(); user != nil {
			userID = user.ID
		}
	}

	report, ok := rc.store.AddReport(c.Param("id"), userID, req.Reason, req.Details)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with this ID",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Report filed successfully",
		"data":    report,
	})
}

func (rc *RecipeController) invalidateCache() {
	if rc.cache == nil {
		return
	}
	if err := rc.cache.InvalidateRecipeList(); err != nil {
		log.Printf("Warning: failed to invalidate recipe list cache: %v", err)
	}
}
