package utils

import (
	"log"
	"time"

	"fitnutri/internal/models"
	"fitnutri/internal/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// starterRecipes is the catalog a fresh installation ships with. Everything
// here is pre-approved so the browse screen is not empty before the first
// community submission clears moderation.
func starterRecipes() []models.Recipe {
	now := time.Now()
	return []models.Recipe{
		{
			ID:       uuid.NewString(),
			Title:    "Shopska Salad",
			Image:    "/images/shopska-salad.jpg",
			Category: models.CategoryLunch,
			Tags:     []models.Tag{models.TagSavory},
			DietTypes: []nutrition.DietType{
				nutrition.DietBalanced, nutrition.DietVegan, nutrition.DietGlutenFree,
			},
			Ingredients: []models.Ingredient{
				{Name: "tomato", Amount: 3, Unit: "pc", Category: models.IngredientVegetables},
				{Name: "cucumber", Amount: 1, Unit: "pc", Category: models.IngredientVegetables},
				{Name: "white cheese", Amount: 150, Unit: "g", Category: models.IngredientDairy},
				{Name: "onion", Amount: 1, Unit: "pc", Category: models.IngredientVegetables},
			},
			Instructions: []string{
				"Dice the tomatoes, cucumber and onion.",
				"Toss with oil and a pinch of salt.",
				"Grate the cheese generously on top.",
			},
			Macros:    models.MacroSet{Protein: 9, Carbs: 12, Fat: 14, Calories: 210},
			PrepTime:  15,
			CookTime:  0,
			Servings:  2,
			AuthorID:  "seed",
			Status:    models.StatusApproved,
			CreatedAt: now,
			Ratings:   []models.Rating{},
			Comments:  []models.Comment{},
		},
		{
			ID:       uuid.NewString(),
			Title:    "Keto Omelette with Spinach",
			Image:    "/images/keto-omelette.jpg",
			Category: models.CategoryBreakfast,
			Tags:     []models.Tag{models.TagSavory},
			DietTypes: []nutrition.DietType{
				nutrition.DietKeto, nutrition.DietHighProtein, nutrition.DietGlutenFree,
			},
			Ingredients: []models.Ingredient{
				{Name: "eggs", Amount: 3, Unit: "pc", Category: models.IngredientOther},
				{Name: "spinach", Amount: 100, Unit: "g", Category: models.IngredientVegetables},
				{Name: "butter", Amount: 15, Unit: "g", Category: models.IngredientDairy},
			},
			Instructions: []string{
				"Whisk the eggs with a pinch of salt.",
				"Wilt the spinach in butter, pour the eggs over.",
				"Cook on low heat until just set, then fold.",
			},
			Macros:    models.MacroSet{Protein: 22, Carbs: 3, Fat: 28, Calories: 350},
			PrepTime:  5,
			CookTime:  10,
			Servings:  1,
			AuthorID:  "seed",
			Status:    models.StatusApproved,
			CreatedAt: now,
			Ratings:   []models.Rating{},
			Comments:  []models.Comment{},
		},
		{
			ID:       uuid.NewString(),
			Title:    "Lentil Soup",
			Image:    "/images/lentil-soup.jpg",
			Category: models.CategoryDinner,
			Tags:     []models.Tag{models.TagSoup, models.TagSavory},
			DietTypes: []nutrition.DietType{
				nutrition.DietBalanced, nutrition.DietVegan,
			},
			Ingredients: []models.Ingredient{
				{Name: "lentils", Amount: 250, Unit: "g", Category: models.IngredientGrains},
				{Name: "carrot", Amount: 2, Unit: "pc", Category: models.IngredientVegetables},
				{Name: "onion", Amount: 1, Unit: "pc", Category: models.IngredientVegetables},
				{Name: "paprika", Amount: 1, Unit: "tsp", Category: models.IngredientSpices},
			},
			Instructions: []string{
				"Rinse the lentils and cover with cold water.",
				"Add the chopped vegetables and simmer for 40 minutes.",
				"Season with paprika and salt near the end.",
			},
			Macros:    models.MacroSet{Protein: 14, Carbs: 34, Fat: 2, Calories: 220},
			PrepTime:  10,
			CookTime:  45,
			Servings:  4,
			AuthorID:  "seed",
			Status:    models.StatusApproved,
			CreatedAt: now,
			Ratings:   []models.Rating{},
			Comments:  []models.Comment{},
		},
		{
			ID:       uuid.NewString(),
			Title:    "Banitsa",
			Image:    "/images/banitsa.jpg",
			Category: models.CategorySnack,
			Tags:     []models.Tag{models.TagPastry},
			DietTypes: []nutrition.DietType{
				nutrition.DietBalanced,
			},
			Ingredients: []models.Ingredient{
				{Name: "filo pastry", Amount: 500, Unit: "g", Category: models.IngredientGrains},
				{Name: "white cheese", Amount: 300, Unit: "g", Category: models.IngredientDairy},
				{Name: "eggs", Amount: 4, Unit: "pc", Category: models.IngredientOther},
				{Name: "yogurt", Amount: 200, Unit: "g", Category: models.IngredientDairy},
			},
			Instructions: []string{
				"Beat the eggs with the crumbled cheese and yogurt.",
				"Layer the filo sheets, spreading filling between them.",
				"Bake at 180C until golden, about 35 minutes.",
			},
			Macros:    models.MacroSet{Protein: 13, Carbs: 38, Fat: 18, Calories: 370},
			PrepTime:  25,
			CookTime:  35,
			Servings:  8,
			AuthorID:  "seed",
			Status:    models.StatusApproved,
			CreatedAt: now,
			Ratings:   []models.Rating{},
			Comments:  []models.Comment{},
		},
	}
}

// SeedRecipes inserts the starter catalog, skipping titles already present so
// the command is safe to re-run.
func SeedRecipes(db *gorm.DB) error {
	seeded := 0
	for _, recipe := range starterRecipes() {
		var count int64
		if err := db.Model(&models.Recipe{}).Where("title = ?", recipe.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&recipe).Error; err != nil {
			return err
		}
		seeded++
	}
	log.Printf("Seeded %d starter recipes", seeded)
	return nil
}

// ClearRecipes removes every recipe. Intended for development databases only.
func ClearRecipes(db *gorm.DB) error {
	return db.Unscoped().Where("1 = 1").Delete(&models.Recipe{}).Error
}
