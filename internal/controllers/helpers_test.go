package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"fitnutri/internal/models"
	"fitnutri/internal/nutrition"
	"fitnutri/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestStore() *store.Store {
	return store.New(nil, nil, nil, nil, nil)
}

func seedProfile(s *store.Store) *models.UserProfile {
	profile := &models.UserProfile{
		ID:            "user-1",
		Gender:        nutrition.GenderMale,
		Age:           25,
		Weight:        70,
		Height:        170,
		ActivityLevel: nutrition.ActivitySedentary,
		Goal:          nutrition.GoalLose,
		DietTypes:     []nutrition.DietType{nutrition.DietBalanced},
		BMR:           1648,
		TDEE:          1978,
	}
	s.SetUser(profile)
	return profile
}

func seedApprovedRecipe(s *store.Store, title string) models.Recipe {
	recipe := s.AddRecipe(models.Recipe{
		Title:        title,
		Category:     models.CategoryLunch,
		Ingredients:  []models.Ingredient{{Name: "tomato", Amount: 2, Unit: "pcs"}},
		Instructions: []string{"Chop and serve."},
	})
	s.UpdateRecipeStatus(recipe.ID, models.StatusApproved)
	updated, _ := s.RecipeByID(recipe.ID)
	return updated
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
