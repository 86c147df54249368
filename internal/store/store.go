// Package store owns the process-wide application state for one active
// session: the user profile with its embedded daily log, the recipe
// collection, and the shopping list. All mutations run synchronously under a
// single lock; persistence and event publication happen after each state
// transition as fire-and-forget side effects, so the in-memory state stays
// authoritative even when a collaborator is down.
package store

import (
	"log"
	"time"

	"fitnutri/internal/events"
	"fitnutri/internal/models"
	"fitnutri/internal/repository"

	"sync"
)

type Store struct {
	mu sync.Mutex

	user     *models.UserProfile
	recipes  []models.Recipe
	shopping []models.ShoppingItem
	reports  []models.RecipeReport

	profileRepo  repository.UserProfileRepository
	recipeRepo   repository.RecipeRepository
	shoppingRepo repository.ShoppingListRepository
	reportRepo   repository.ReportRepository

	publisher events.Publisher
}

// New creates an empty store. Repositories may be nil, in which case the
// matching persistence side effects are skipped; a nil publisher falls back
// to events.Discard.
func New(
	profileRepo repository.UserProfileRepository,
	recipeRepo repository.RecipeRepository,
	shoppingRepo repository.ShoppingListRepository,
	reportRepo repository.ReportRepository,
	publisher events.Publisher,
) *Store {
	if publisher == nil {
		publisher = events.Discard
	}
	return &Store{
		profileRepo:  profileRepo,
		recipeRepo:   recipeRepo,
		shoppingRepo: shoppingRepo,
		reportRepo:   reportRepo,
		publisher:    publisher,
	}
}

// Load hydrates the store from the persistence collaborator. A missing
// profile is not an error: the session simply starts without a user.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profileRepo != nil {
		user, err := s.profileRepo.Load()
		if err != nil {
			return err
		}
		s.user = user
	}
	if s.recipeRepo != nil {
		recipes, err := s.recipeRepo.LoadAll()
		if err != nil {
			return err
		}
		s.recipes = recipes
	}
	if s.shoppingRepo != nil {
		items, err := s.shoppingRepo.Load()
		if err != nil {
			return err
		}
		s.shopping = items
	}
	if s.reportRepo != nil {
		reports, err := s.reportRepo.LoadAll()
		if err != nil {
			return err
		}
		s.reports = reports
	}

	// A profile stored on a previous day carries a stale log; discard it
	// before the session starts reading totals.
	s.rollDailyLogLocked()
	return nil
}

// SetUser installs the active profile, creating an empty daily log for today
// when the profile has none or the stored one is stale.
func (s *Store) SetUser(user *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user != nil && user.DailyLog.Date == "" {
		user.DailyLog = emptyDailyLog()
	}
	s.user = user
	s.rollDailyLogLocked()
	s.persistUserLocked()
	s.publisher.Publish(events.EventProfileSaved, user)
}

// User returns a snapshot of the active profile, or nil when onboarding has
// not completed. Reading the profile triggers the lazy day-rollover check.
func (s *Store) User() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollDailyLogLocked()
	if s.user == nil {
		return nil
	}
	snapshot := *s.user
	return &snapshot
}

// DeleteUser removes the active profile and its persisted copy.
func (s *Store) DeleteUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	id := s.user.ID
	s.user = nil
	if s.profileRepo != nil {
		if err := s.profileRepo.Delete(id); err != nil {
			log.Printf("Warning: failed to delete persisted profile: %v", err)
		}
	}
	s.publisher.Publish(events.EventProfileDeleted, map[string]string{"id": id})
}

func todayDateString() string {
	return time.Now().Format("2006-01-02")
}

func emptyDailyLog() models.DailyLog {
	return models.DailyLog{
		Date:          todayDateString(),
		ConsumedMeals: []models.ConsumedMeal{},
	}
}

// persistUserLocked saves the profile as a fire-and-forget side effect.
// Failures are logged and never rolled back; the in-memory state remains
// authoritative for the session.
func (s *Store) persistUserLocked() {
	if s.profileRepo == nil || s.user == nil {
		return
	}
	if err := s.profileRepo.Save(s.user); err != nil {
		log.Printf("Warning: failed to persist user profile: %v", err)
	}
}

func (s *Store) persistRecipeLocked(recipe *models.Recipe) {
	if s.recipeRepo == nil {
		return
	}
	if err := s.recipeRepo.Save(recipe); err != nil {
		log.Printf("Warning: failed to persist recipe %s: %v", recipe.ID, err)
	}
}

func (s *Store) persistShoppingLocked() {
	if s.shoppingRepo == nil {
		return
	}
	if err := s.shoppingRepo.Replace(s.shopping); err != nil {
		log.Printf("Warning: failed to persist shopping list: %v", err)
	}
}

func (s *Store) persistReportLocked(report *models.RecipeReport) {
	if s.reportRepo == nil {
		return
	}
	if err := s.reportRepo.Save(report); err != nil {
		log.Printf("Warning: failed to persist report %s: %v", report.ID, err)
	}
}
