package models

// ShoppingItem is an ingredient on the shopping list together with the recipe
// it came from. Items are never merged: two recipes sharing an ingredient
// produce two entries. Identity for toggling is the item's position in the
// list's insertion order, not a synthetic id.
type ShoppingItem struct {
	ID         uint               `gorm:"primaryKey" json:"-"`
	Name       string             `json:"name" example:"onion"`
	Amount     float64            `json:"amount" example:"1"`
	Unit       string             `json:"unit" example:"pc"`
	Category   IngredientCategory `json:"category" example:"vegetables"`
	RecipeID   string             `json:"recipe_id" example:"d3f1c2b4"`
	RecipeName string             `json:"recipe_name" example:"Shopska Salad"`
	Checked    bool               `json:"checked" example:"false"`
	Position   int                `json:"-"`
}
