package store

import (
	"errors"
	"testing"

	"fitnutri/internal/mocks"
	"fitnutri/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLoadHydratesFromRepositories(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	recipeRepo := new(mocks.MockRecipeRepository)
	shoppingRepo := new(mocks.MockShoppingListRepository)
	reportRepo := new(mocks.MockReportRepository)

	profile := testProfile()
	profile.DailyLog = models.DailyLog{Date: todayDateString(), ConsumedMeals: []models.ConsumedMeal{}}
	profileRepo.On("Load").Return(profile, nil)
	recipeRepo.On("LoadAll").Return([]models.Recipe{{ID: "r1", Title: "Shopska Salad"}}, nil)
	shoppingRepo.On("Load").Return([]models.ShoppingItem{{Name: "onion", RecipeID: "r1"}}, nil)
	reportRepo.On("LoadAll").Return([]models.RecipeReport{}, nil)

	s := New(profileRepo, recipeRepo, shoppingRepo, reportRepo, nil)
	assert.NoError(t, s.Load())

	assert.NotNil(t, s.User())
	recipe, ok := s.RecipeByID("r1")
	assert.True(t, ok)
	assert.Equal(t, "Shopska Salad", recipe.Title)
	assert.Len(t, s.ShoppingList(), 1)

	profileRepo.AssertExpectations(t)
	recipeRepo.AssertExpectations(t)
	shoppingRepo.AssertExpectations(t)
	reportRepo.AssertExpectations(t)
}

func TestLoadWithoutStoredProfile(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	profileRepo.On("Load").Return(nil, nil)

	s := New(profileRepo, nil, nil, nil, nil)
	assert.NoError(t, s.Load())
	assert.Nil(t, s.User())
}

func TestLoadDiscardsStaleStoredLog(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	profile := testProfile()
	profile.DailyLog = models.DailyLog{
		Date:          "2020-01-01",
		ConsumedMeals: []models.ConsumedMeal{{RecipeID: "r1", Calories: 500}},
		TotalCalories: 500,
	}
	profileRepo.On("Load").Return(profile, nil)
	profileRepo.On("Save", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	s := New(profileRepo, nil, nil, nil, nil)
	assert.NoError(t, s.Load())

	logEntry := s.DailyLog()
	assert.Equal(t, todayDateString(), logEntry.Date)
	assert.Zero(t, logEntry.TotalCalories)
	assert.Empty(t, logEntry.ConsumedMeals)
}

func TestLoadPropagatesRepositoryErrors(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	profileRepo.On("Load").Return(nil, errors.New("connection refused"))

	s := New(profileRepo, nil, nil, nil, nil)
	assert.Error(t, s.Load())
}

func TestMutationsPersistAsSideEffects(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	profileRepo.On("Save", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	s := New(profileRepo, nil, nil, nil, nil)
	s.SetUser(testProfile())
	s.MarkMealConsumed(mealInput("r1", 400, 25, 30, 15))

	profileRepo.AssertNumberOfCalls(t, "Save", 2)
}

func TestPersistenceFailureDoesNotRollBackState(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	profileRepo.On("Save", mock.AnythingOfType("*models.UserProfile")).Return(errors.New("disk full"))

	s := New(profileRepo, nil, nil, nil, nil)
	s.SetUser(testProfile())
	s.MarkMealConsumed(mealInput("r1", 400, 25, 30, 15))

	// The in-memory state stays authoritative for the session.
	assert.Len(t, s.DailyLog().ConsumedMeals, 1)
	assert.Equal(t, 400, s.DailyLog().TotalCalories)
}

func TestDeleteUserRemovesPersistedProfile(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	profileRepo.On("Save", mock.AnythingOfType("*models.UserProfile")).Return(nil)
	profileRepo.On("Delete", "user-1").Return(nil)

	s := New(profileRepo, nil, nil, nil, nil)
	s.SetUser(testProfile())
	s.DeleteUser()

	assert.Nil(t, s.User())
	profileRepo.AssertCalled(t, "Delete", "user-1")
}
