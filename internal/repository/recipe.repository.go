package repository

import (
	"fitnutri/internal/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	LoadAll() ([]models.Recipe, error)
	Save(recipe *models.Recipe) error
	Delete(id string) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) LoadAll() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Order("created_at").Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Save(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

func (r *recipeRepository) Delete(id string) error {
	return r.db.Unscoped().Delete(&models.Recipe{}, "id = ?", id).Error
}
