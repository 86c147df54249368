package models

import (
	"time"

	"fitnutri/internal/nutrition"
)

// MealStatus records how a logged meal was handled by the user.
type MealStatus string

const (
	MealCooked MealStatus = "cooked"
	MealEaten  MealStatus = "eaten"
)

// ConsumedMeal is an immutable record of a single consumption event. Macro
// values arrive pre-scaled by the caller (servings consumed over recipe
// servings, rounded) and are never recalculated here.
type ConsumedMeal struct {
	RecipeID   string     `json:"recipe_id" example:"d3f1c2b4"`
	RecipeName string     `json:"recipe_name" example:"Shopska Salad"`
	Servings   float64    `json:"servings" example:"1.5"`
	Calories   int        `json:"calories" example:"420"`
	Protein    int        `json:"protein" example:"25"`
	Carbs      int        `json:"carbs" example:"30"`
	Fat        int        `json:"fat" example:"18"`
	ConsumedAt time.Time  `json:"consumed_at" example:"2023-01-01T12:30:00Z"`
	Status     MealStatus `json:"status" example:"eaten"`
}

// DailyLog accumulates one day's consumed meals. The four totals are always
// the exact sum of the meal entries; they are only ever changed by appending
// a meal or replacing the whole log.
type DailyLog struct {
	Date          string         `json:"date" example:"2023-01-01"`
	ConsumedMeals []ConsumedMeal `json:"consumed_meals"`
	TotalCalories int            `json:"total_calories" example:"1540"`
	TotalProtein  int            `json:"total_protein" example:"92"`
	TotalCarbs    int            `json:"total_carbs" example:"140"`
	TotalFat      int            `json:"total_fat" example:"55"`
}

type UserProfile struct {
	ID                 string                  `gorm:"primaryKey" json:"id" example:"a1b2c3d4"`
	CreatedAt          time.Time               `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time               `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Gender             nutrition.Gender        `json:"gender" example:"male"`
	Age                int                     `json:"age" example:"25"`
	Weight             float64                 `json:"weight" example:"70"`
	Height             float64                 `json:"height" example:"170"`
	ActivityLevel      nutrition.ActivityLevel `json:"activity_level" example:"sedentary"`
	Goal               nutrition.Goal          `json:"goal" example:"lose"`
	DietTypes          []nutrition.DietType    `gorm:"serializer:json" json:"diet_types"`
	BMR                int                     `json:"bmr" example:"1648"`
	TDEE               int                     `json:"tdee" example:"1978"`
	OnboardingComplete bool                    `json:"onboarding_complete" example:"true"`
	DailyLog           DailyLog                `gorm:"serializer:json" json:"daily_log"`
}

// PrimaryDiet returns the first selected diet type, which drives macro
// targets. Falls back to balanced when the list is somehow empty.
func (p *UserProfile) PrimaryDiet() nutrition.DietType {
	if len(p.DietTypes) == 0 {
		return nutrition.DietBalanced
	}
	return p.DietTypes[0]
}

// TargetCalories is the goal-adjusted daily calorie budget.
func (p *UserProfile) TargetCalories() int {
	return nutrition.CalculateTargetCalories(p.TDEE, p.Goal)
}
