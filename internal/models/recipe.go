package models

import (
	"time"

	"fitnutri/internal/nutrition"
)

type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnack     Category = "snack"
)

type Tag string

const (
	TagSweet  Tag = "sweet"
	TagSavory Tag = "savory"
	TagPastry Tag = "pastry"
	TagSoup   Tag = "soup"
)

type IngredientCategory string

const (
	IngredientDairy      IngredientCategory = "dairy"
	IngredientVegetables IngredientCategory = "vegetables"
	IngredientMeat       IngredientCategory = "meat"
	IngredientGrains     IngredientCategory = "grains"
	IngredientSpices     IngredientCategory = "spices"
	IngredientOther      IngredientCategory = "other"
)

type Ingredient struct {
	Name     string             `json:"name" example:"tomato"`
	Amount   float64            `json:"amount" example:"2"`
	Unit     string             `json:"unit" example:"pc"`
	Category IngredientCategory `json:"category" example:"vegetables"`
}

// ModerationStatus is the lifecycle state of a submitted recipe. Pending
// recipes transition to approved or rejected; the store records no history
// and places no guard on overwrites.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// Rating is one user's 1-5 score for a recipe. A user has at most one active
// rating per recipe; re-rating replaces the prior entry.
type Rating struct {
	UserID    string    `json:"user_id" example:"a1b2c3d4"`
	Rating    float64   `json:"rating" example:"4"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

type Comment struct {
	ID        string    `json:"id" example:"e5f6a7b8"`
	UserID    string    `json:"user_id" example:"a1b2c3d4"`
	UserName  string    `json:"user_name" example:"Maria"`
	Text      string    `json:"text" example:"Great with extra feta."`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

// MacroSet is the per-serving nutritional profile of a recipe.
type MacroSet struct {
	Protein  int `json:"protein" example:"25"`
	Carbs    int `json:"carbs" example:"30"`
	Fat      int `json:"fat" example:"18"`
	Calories int `json:"calories" example:"380"`
}

type Recipe struct {
	ID            string               `gorm:"primaryKey" json:"id" example:"d3f1c2b4"`
	CreatedAt     time.Time            `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time            `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Title         string               `json:"title" example:"Shopska Salad"`
	Image         string               `json:"image" example:"/images/shopska.jpg"`
	Category      Category             `json:"category" example:"lunch"`
	Tags          []Tag                `gorm:"serializer:json" json:"tags"`
	DietTypes     []nutrition.DietType `gorm:"serializer:json" json:"diet_types"`
	Ingredients   []Ingredient         `gorm:"serializer:json" json:"ingredients"`
	Instructions  []string             `gorm:"serializer:json" json:"instructions"`
	Macros        MacroSet             `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	PrepTime      int                  `json:"prep_time" example:"15"`
	CookTime      int                  `json:"cook_time" example:"0"`
	Servings      int                  `json:"servings" example:"4"`
	AuthorID      string               `json:"author_id" example:"a1b2c3d4"`
	Status        ModerationStatus     `json:"status" example:"pending"`
	Ratings       []Rating             `gorm:"serializer:json" json:"ratings"`
	Comments      []Comment            `gorm:"serializer:json" json:"comments"`
	AverageRating float64              `json:"average_rating" example:"4.3"`
}
