package mocks

import (
	"fitnutri/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Load() (*models.UserProfile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Save(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) LoadAll() ([]models.Recipe, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Save(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockShoppingListRepository
type MockShoppingListRepository struct {
	mock.Mock
}

func (m *MockShoppingListRepository) Load() ([]models.ShoppingItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShoppingItem), args.Error(1)
}

func (m *MockShoppingListRepository) Replace(items []models.ShoppingItem) error {
	args := m.Called(items)
	return args.Error(0)
}

// Shared MockReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) LoadAll() ([]models.RecipeReport, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeReport), args.Error(1)
}

func (m *MockReportRepository) Save(report *models.RecipeReport) error {
	args := m.Called(report)
	return args.Error(0)
}
