package controllers

import (
	"net/http"
	"strconv"

	"fitnutri/internal/models"
	"fitnutri/internal/store"

	"github.com/gin-gonic/gin"
)

type ShoppingController struct {
	store *store.Store
}

func NewShoppingController(s *store.Store) *ShoppingController {
	return &ShoppingController{store: s}
}

// GetShoppingList godoc
// @Summary Get the shopping list
// @Description Retrieve all shopping items in insertion order
// @Tags shopping
// @Produce json
// @Success 200 {object} map[string]interface{} "Shopping list retrieved successfully"
// @Router /shopping [get]
func (sc *ShoppingController) GetShoppingList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Shopping list retrieved successfully",
		"data":    sc.store.ShoppingList(),
	})
}

type addItemsRequest struct {
	RecipeID    string              `json:"recipe_id" binding:"required"`
	RecipeName  string              `json:"recipe_name" binding:"required"`
	Ingredients []models.Ingredient `json:"ingredients" binding:"required"`
}

// AddToShoppingList godoc
// @Summary Add a recipe's ingredients
// @Description Append the recipe's ingredients as unchecked shopping items. Identical ingredients from other recipes are kept as separate entries.
// @Tags shopping
// @Accept json
// @Produce json
// @Param items body addItemsRequest true "Recipe ingredients"
// @Success 201 {object} map[string]interface{} "Items added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /shopping [post]
func (sc *ShoppingController) AddToShoppingList(c *gin.Context) {
	var req addItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	items := make([]models.ShoppingItem, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		items = append(items, models.ShoppingItem{
			Name:       ing.Name,
			Amount:     ing.Amount,
			Unit:       ing.Unit,
			Category:   ing.Category,
			RecipeID:   req.RecipeID,
			RecipeName: req.RecipeName,
		})
	}
	sc.store.AddToShoppingList(items)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Items added successfully",
		"data":    sc.store.ShoppingList(),
	})
}

// RemoveRecipeItems godoc
// @Summary Remove a recipe's items
// @Description Drop every shopping item that originated from the given recipe
// @Tags shopping
// @Produce json
// @Param recipe_id path string true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Items removed successfully"
// @Router /shopping/recipe/{recipe_id} [delete]
func (sc *ShoppingController) RemoveRecipeItems(c *gin.Context) {
	sc.store.RemoveFromShoppingList(c.Param("recipe_id"))

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Items removed successfully",
		"data":    sc.store.ShoppingList(),
	})
}

// ToggleItem godoc
// @Summary Toggle an item's checked flag
// @Description Flip the checked state of the item at the given position in insertion order
// @Tags shopping
// @Produce json
// @Param index path int true "Item position"
// @Success 200 {object} map[string]interface{} "Item toggled successfully"
// @Failure 400 {object} map[string]interface{} "Invalid index"
// @Failure 404 {object} map[string]interface{} "Item not found"
// @Router /shopping/{index} [patch]
func (sc *ShoppingController) ToggleItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid index",
			"error":   "Index must be an integer",
		})
		return
	}

	if !sc.store.ToggleShoppingItem(index) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Item not found",
			"error":   "Index is out of range",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Item toggled successfully",
		"data":    sc.store.ShoppingList(),
	})
}

// ClearShoppingList godoc
// @Summary Clear the shopping list
// @Description Remove every item unconditionally
// @Tags shopping
// @Produce json
// @Success 200 {object} map[string]interface{} "Shopping list cleared successfully"
// @Router /shopping [delete]
func (sc *ShoppingController) ClearShoppingList(c *gin.Context) {
	sc.store.ClearShoppingList()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Shopping list cleared successfully",
	})
}
