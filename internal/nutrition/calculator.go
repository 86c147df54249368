package nutrition

import "math"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// activityMultipliers is the single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// Fixed daily calorie adjustment per goal.
var goalAdjustments = map[Goal]int{
	GoalLose:     -500,
	GoalMaintain: 0,
	GoalGain:     500,
}

type DietType string

const (
	DietBalanced    DietType = "balanced"
	DietZone        DietType = "zone"
	DietKeto        DietType = "keto"
	DietVegan       DietType = "vegan"
	DietHighProtein DietType = "highProtein"
	DietGlutenFree  DietType = "glutenFree"
)

// Macros holds gram targets for the three macronutrients.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

type macroRatio struct {
	protein float64
	carbs   float64
	fat     float64
}

// CalculateBMR estimates resting energy expenditure using the Mifflin-St Jeor
// formula, rounded to the nearest kcal. Inputs are not bounds-checked: the
// formula is total over the reals, so zero or negative values simply yield
// physiologically meaningless numbers.
func CalculateBMR(gender Gender, weightKg, heightCm float64, age int) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels fall
// back to the sedentary multiplier so partially-migrated profiles keep working.
func CalculateTDEE(bmr int, level ActivityLevel) int {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		multiplier = 1.2
	}
	return int(math.Round(float64(bmr) * multiplier))
}

// CalculateTargetCalories applies the fixed per-goal adjustment to TDEE.
// Unknown goals adjust by 0.
func CalculateTargetCalories(tdee int, goal Goal) int {
	return tdee + goalAdjustments[goal]
}

// CalculateMacros converts target calories into gram targets using the diet
// type's percentage split (4 kcal/g for protein and carbs, 9 kcal/g for fat).
// Each gram value is rounded independently, so the grams may not add back up
// to the calorie target exactly.
func CalculateMacros(targetCalories int, diet DietType) Macros {
	// Balanced split is the default for unknown diet types and for diets
	// without a dedicated ratio (glutenFree).
	ratio := macroRatio{protein: 0.3, carbs: 0.4, fat: 0.3}

	switch diet {
	case DietKeto:
		ratio = macroRatio{protein: 0.25, carbs: 0.05, fat: 0.7}
	case DietHighProtein:
		ratio = macroRatio{protein: 0.4, carbs: 0.35, fat: 0.25}
	case DietZone:
		ratio = macroRatio{protein: 0.3, carbs: 0.4, fat: 0.3}
	case DietVegan:
		ratio = macroRatio{protein: 0.2, carbs: 0.55, fat: 0.25}
	}

	target := float64(targetCalories)
	return Macros{
		Protein: int(math.Round(target * ratio.protein / 4)),
		Carbs:   int(math.Round(target * ratio.carbs / 4)),
		Fat:     int(math.Round(target * ratio.fat / 9)),
	}
}
