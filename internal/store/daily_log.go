package store

import (
	"math"
	"time"

	"fitnutri/internal/events"
	"fitnutri/internal/models"
	"fitnutri/internal/nutrition"
)

// ConsumedMealInput is what the caller supplies when logging a meal. Macro
// values are pre-scaled by servings consumed over recipe servings and
// rounded; the aggregator adds them verbatim.
type ConsumedMealInput struct {
	RecipeID   string            `json:"recipe_id" binding:"required"`
	RecipeName string            `json:"recipe_name" binding:"required"`
	Servings   float64           `json:"servings" binding:"required"`
	Calories   int               `json:"calories"`
	Protein    int               `json:"protein"`
	Carbs      int               `json:"carbs"`
	Fat        int               `json:"fat"`
	Status     models.MealStatus `json:"status" binding:"required"`
}

// rollDailyLogLocked discards the log when its date no longer matches today.
// The check is lazy: it fires on access, never on a timer, so a log can stay
// stale indefinitely if the profile is never touched. The prior log is
// discarded, not archived.
func (s *Store) rollDailyLogLocked() {
	if s.user == nil {
		return
	}
	if s.user.DailyLog.Date != todayDateString() {
		s.user.DailyLog = emptyDailyLog()
		s.persistUserLocked()
	}
}

// MarkMealConsumed appends a consumption record stamped with the current time
// and bumps the four running totals. No dedup is applied: logging the same
// recipe twice appends twice. No-op when no profile exists.
func (s *Store) MarkMealConsumed(input ConsumedMealInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.rollDailyLogLocked()

	meal := models.ConsumedMeal{
		RecipeID:   input.RecipeID,
		RecipeName: input.RecipeName,
		Servings:   input.Servings,
		Calories:   input.Calories,
		Protein:    input.Protein,
		Carbs:      input.Carbs,
		Fat:        input.Fat,
		ConsumedAt: time.Now(),
		Status:     input.Status,
	}

	logEntry := &s.user.DailyLog
	logEntry.ConsumedMeals = append(logEntry.ConsumedMeals, meal)
	logEntry.TotalCalories += meal.Calories
	logEntry.TotalProtein += meal.Protein
	logEntry.TotalCarbs += meal.Carbs
	logEntry.TotalFat += meal.Fat

	s.persistUserLocked()
	s.publisher.Publish(events.EventMealConsumed, meal)
}

// DailyLog returns the current day's log. Without a profile it returns a
// fresh empty log for today rather than failing.
func (s *Store) DailyLog() models.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollDailyLogLocked()
	if s.user == nil {
		return emptyDailyLog()
	}
	return s.user.DailyLog
}

// RemainingCalories is the goal-adjusted budget minus consumed calories,
// clamped at zero.
func (s *Store) RemainingCalories() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollDailyLogLocked()
	if s.user == nil {
		return 0
	}
	remaining := s.user.TargetCalories() - s.user.DailyLog.TotalCalories
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingMacros returns per-macro gram budgets left for today, clamped at
// zero, keyed by the profile's primary diet type.
func (s *Store) RemainingMacros() nutrition.Macros {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollDailyLogLocked()
	if s.user == nil {
		return nutrition.Macros{}
	}

	target := dailyTargetMacros(s.user.TargetCalories(), s.user.PrimaryDiet())
	return nutrition.Macros{
		Protein: clampZero(target.Protein - s.user.DailyLog.TotalProtein),
		Carbs:   clampZero(target.Carbs - s.user.DailyLog.TotalCarbs),
		Fat:     clampZero(target.Fat - s.user.DailyLog.TotalFat),
	}
}

// ResetDailyLog replaces the log with a fresh empty one for today, discarding
// all meals logged so far. Irreversible; the caller confirms with the user.
func (s *Store) ResetDailyLog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.user.DailyLog = emptyDailyLog()
	s.persistUserLocked()
	s.publisher.Publish(events.EventDailyLogReset, map[string]string{"date": s.user.DailyLog.Date})
}

// dailyTargetMacros computes the gram targets the remaining-macros query
// works against. Its ratio table intentionally differs from
// nutrition.CalculateMacros for the vegan split (25/50/25 here versus
// 20/55/25 there); both call sites keep their historical tables pending
// product clarification, so changing either would shift displayed values.
func dailyTargetMacros(targetCalories int, diet nutrition.DietType) nutrition.Macros {
	proteinRatio, carbsRatio, fatRatio := 0.30, 0.40, 0.30

	switch diet {
	case nutrition.DietKeto:
		proteinRatio, carbsRatio, fatRatio = 0.25, 0.05, 0.70
	case nutrition.DietHighProtein:
		proteinRatio, carbsRatio, fatRatio = 0.40, 0.35, 0.25
	case nutrition.DietZone:
		proteinRatio, carbsRatio, fatRatio = 0.30, 0.40, 0.30
	case nutrition.DietVegan:
		proteinRatio, carbsRatio, fatRatio = 0.25, 0.50, 0.25
	}

	target := float64(targetCalories)
	return nutrition.Macros{
		Protein: int(math.Round(target * proteinRatio / 4)),
		Carbs:   int(math.Round(target * carbsRatio / 4)),
		Fat:     int(math.Round(target * fatRatio / 9)),
	}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
