package store

import (
	"math"
	"strings"
	"time"

	"fitnutri/internal/events"
	"fitnutri/internal/models"
	"fitnutri/internal/nutrition"

	"github.com/google/uuid"
)

// RecipeFilter narrows recipe listings. Zero values mean "no constraint";
// Status defaults to approved so browsing surfaces only moderated content.
type RecipeFilter struct {
	Category models.Category
	Tag      models.Tag
	Diet     nutrition.DietType
	Query    string
	Status   models.ModerationStatus
}

// AddRecipe appends a submission with pending moderation status. The store
// performs no validation; callers guarantee a non-empty title, at least one
// ingredient and at least one instruction.
func (s *Store) AddRecipe(recipe models.Recipe) models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	recipe.Status = models.StatusPending
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now()
	}
	if recipe.Ratings == nil {
		recipe.Ratings = []models.Rating{}
	}
	if recipe.Comments == nil {
		recipe.Comments = []models.Comment{}
	}

	s.recipes = append(s.recipes, recipe)
	s.persistRecipeLocked(&recipe)
	s.publisher.Publish(events.EventRecipeSubmitted, recipe)
	return recipe
}

// Recipes returns recipes matching the filter, in insertion order.
func (s *Store) Recipes(filter RecipeFilter) []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matched := make([]models.Recipe, 0, len(s.recipes))
	for _, recipe := range s.recipes {
		if filter.Status != "" && recipe.Status != filter.Status {
			continue
		}
		if filter.Category != "" && recipe.Category != filter.Category {
			continue
		}
		if filter.Tag != "" && !containsTag(recipe.Tags, filter.Tag) {
			continue
		}
		if filter.Diet != "" && !containsDiet(recipe.DietTypes, filter.Diet) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(recipe.Title), query) {
			continue
		}
		matched = append(matched, recipe)
	}
	return matched
}

// RecipeByID returns a snapshot of the recipe, or false when unknown.
func (s *Store) RecipeByID(id string) (models.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := s.findRecipeLocked(id)
	if recipe == nil {
		return models.Recipe{}, false
	}
	return *recipe, true
}

// UpdateRecipeStatus sets the moderation status unconditionally: there is no
// transition guard and no history, so an already-rejected recipe can be
// re-approved and vice versa. Returns false when the recipe id is unknown.
func (s *Store) UpdateRecipeStatus(id string, status models.ModerationStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := s.findRecipeLocked(id)
	if recipe == nil {
		return false
	}
	recipe.Status = status
	s.persistRecipeLocked(recipe)
	s.publisher.Publish(events.EventRecipeModerated, map[string]string{
		"recipe_id": id,
		"status":    string(status),
	})
	return true
}

// AddComment appends a comment with a generated id and the current timestamp.
// Unknown recipe ids are a silent no-op: no other recipe is touched and false
// is returned for callers that want to surface NotFound.
func (s *Store) AddComment(recipeID, userID, userName, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := s.findRecipeLocked(recipeID)
	if recipe == nil {
		return false
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: time.Now(),
	}
	recipe.Comments = append(recipe.Comments, comment)
	s.persistRecipeLocked(recipe)
	s.publisher.Publish(events.EventRecipeCommented, comment)
	return true
}

// AddRating records a user's rating. A prior rating by the same user is
// replaced, timestamp included, rather than appended; the average is then
// recomputed over all ratings and rounded to one decimal. Rating values are
// not range-checked: out-of-range input is accepted and skews the average.
func (s *Store) AddRating(recipeID, userID string, rating float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := s.findRecipeLocked(recipeID)
	if recipe == nil {
		return false
	}

	replaced := false
	for i := range recipe.Ratings {
		if recipe.Ratings[i].UserID == userID {
			recipe.Ratings[i] = models.Rating{
				UserID:    userID,
				Rating:    rating,
				CreatedAt: time.Now(),
			}
			replaced = true
			break
		}
	}
	if !replaced {
		recipe.Ratings = append(recipe.Ratings, models.Rating{
			UserID:    userID,
			Rating:    rating,
			CreatedAt: time.Now(),
		})
	}

	var sum float64
	for _, r := range recipe.Ratings {
		sum += r.Rating
	}
	recipe.AverageRating = math.Round(sum/float64(len(recipe.Ratings))*10) / 10

	s.persistRecipeLocked(recipe)
	s.publisher.Publish(events.EventRecipeRated, map[string]interface{}{
		"recipe_id": recipeID,
		"user_id":   userID,
		"rating":    rating,
		"average":   recipe.AverageRating,
	})
	return true
}

// AddReport queues a complaint about a recipe for admin review. Unknown
// recipe ids are rejected the same silent way as comments.
func (s *Store) AddReport(recipeID, userID, reason, details string) (models.RecipeReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findRecipeLocked(recipeID) == nil {
		return models.RecipeReport{}, false
	}

	report := models.RecipeReport{
		ID:        uuid.NewString(),
		RecipeID:  recipeID,
		UserID:    userID,
		Reason:    reason,
		Details:   details,
		CreatedAt: time.Now(),
		Status:    models.ReportPending,
	}
	s.reports = append(s.reports, report)
	s.persistReportLocked(&report)
	s.publisher.Publish(events.EventRecipeReported, report)
	return report, true
}

// Reports returns all recipe reports in insertion order.
func (s *Store) Reports() []models.RecipeReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports := make([]models.RecipeReport, len(s.reports))
	copy(reports, s.reports)
	return reports
}

// ReviewReport marks a report reviewed. Returns false for unknown ids.
func (s *Store) ReviewReport(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports[i].Status = models.ReportReviewed
			s.persistReportLocked(&s.reports[i])
			return true
		}
	}
	return false
}

func (s *Store) findRecipeLocked(id string) *models.Recipe {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return &s.recipes[i]
		}
	}
	return nil
}

func containsTag(tags []models.Tag, tag models.Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func containsDiet(diets []nutrition.DietType, diet nutrition.DietType) bool {
	for _, d := range diets {
		if d == diet {
			return true
		}
	}
	return false
}
