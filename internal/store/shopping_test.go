package store

import (
	"testing"

	"fitnutri/internal/models"

	"github.com/stretchr/testify/assert"
)

func shoppingItem(name, recipeID string) models.ShoppingItem {
	return models.ShoppingItem{
		Name:       name,
		Amount:     1,
		Unit:       "pc",
		Category:   models.IngredientVegetables,
		RecipeID:   recipeID,
		RecipeName: "Recipe " + recipeID,
	}
}

func TestAddToShoppingListKeepsDuplicatesSeparate(t *testing.T) {
	s := newTestStore()

	// Two recipes sharing an ingredient produce two entries, never a merge.
	s.AddToShoppingList([]models.ShoppingItem{shoppingItem("onion", "r1")})
	s.AddToShoppingList([]models.ShoppingItem{shoppingItem("onion", "r2")})

	items := s.ShoppingList()
	assert.Len(t, items, 2)
	assert.Equal(t, "r1", items[0].RecipeID)
	assert.Equal(t, "r2", items[1].RecipeID)
}

func TestShoppingListPreservesInsertionOrder(t *testing.T) {
	s := newTestStore()

	s.AddToShoppingList([]models.ShoppingItem{
		shoppingItem("tomato", "r1"),
		shoppingItem("cucumber", "r1"),
	})
	s.AddToShoppingList([]models.ShoppingItem{shoppingItem("lentils", "r2")})

	items := s.ShoppingList()
	assert.Equal(t, []string{"tomato", "cucumber", "lentils"}, []string{
		items[0].Name, items[1].Name, items[2].Name,
	})
}

func TestRemoveFromShoppingListDropsAllRecipeItems(t *testing.T) {
	s := newTestStore()
	s.AddToShoppingList([]models.ShoppingItem{
		shoppingItem("tomato", "r1"),
		shoppingItem("lentils", "r2"),
		shoppingItem("cucumber", "r1"),
	})

	s.RemoveFromShoppingList("r1")

	items := s.ShoppingList()
	assert.Len(t, items, 1)
	assert.Equal(t, "lentils", items[0].Name)
}

func TestToggleShoppingItemFlipsCheckedFlag(t *testing.T) {
	s := newTestStore()
	s.AddToShoppingList([]models.ShoppingItem{
		shoppingItem("tomato", "r1"),
		shoppingItem("cucumber", "r1"),
	})

	assert.True(t, s.ToggleShoppingItem(1))
	assert.True(t, s.ShoppingList()[1].Checked)
	assert.False(t, s.ShoppingList()[0].Checked)

	assert.True(t, s.ToggleShoppingItem(1))
	assert.False(t, s.ShoppingList()[1].Checked)
}

func TestToggleShoppingItemOutOfRange(t *testing.T) {
	s := newTestStore()
	s.AddToShoppingList([]models.ShoppingItem{shoppingItem("tomato", "r1")})

	assert.False(t, s.ToggleShoppingItem(-1))
	assert.False(t, s.ToggleShoppingItem(1))
}

func TestClearShoppingList(t *testing.T) {
	s := newTestStore()
	s.AddToShoppingList([]models.ShoppingItem{
		shoppingItem("tomato", "r1"),
		shoppingItem("lentils", "r2"),
	})

	s.ClearShoppingList()

	assert.Empty(t, s.ShoppingList())
}
