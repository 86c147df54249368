package controllers_test

import (
	"net/http"
	"testing"

	"fitnutri/internal/controllers"
	"fitnutri/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestListRecipesReturnsOnlyApproved(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewRecipeController(s, nil)
	router := setupTestRouter()
	router.GET("/recipes", controller.ListRecipes)

	seedApprovedRecipe(s, "Shopska Salad")
	s.AddRecipe(models.Recipe{
		Title:        "Pending Banitsa",
		Category:     models.CategoryBreakfast,
		Ingredients:  []models.Ingredient{{Name: "filo"}},
		Instructions: []string{"Bake."},
	})

	w := performRequest(router, "GET", "/recipes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Shopska Salad", first["title"])
}

func TestListRecipesFiltersByQuery(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewRecipeController(s, nil)
	router := setupTestRouter()
	router.GET("/recipes", controller.ListRecipes)

	seedApprovedRecipe(s, "Shopska Salad")
	seedApprovedRecipe(s, "Lentil Soup")

	w := performRequest(router, "GET", "/recipes?q=lentil", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Lentil Soup", first["title"])
}

func TestGetRecipe(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewRecipeController(s, nil)
	router := setupTestRouter()
	router.GET("/recipes/:id", controller.GetRecipe)

	recipe := seedApprovedRecipe(s, "Shopska Salad")

	w := performRequest(router, "GET", "/recipes/"+recipe.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/recipes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitRecipe(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
	}{
		{
			name: "valid submission",
			requestBody: map[string]interface{}{
				"title":        "Tarator",
				"category":     "lunch",
				"ingredients":  []map[string]interface{}{{"name": "cucumber", "amount": 1, "unit": "pcs"}},
				"instructions": []string{"Mix everything cold."},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			requestBody: map[string]interface{}{
				"category":     "lunch",
				"ingredients":  []map[string]interface{}{{"name": "cucumber"}},
				"instructions": []string{"Mix."},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no named ingredients",
			requestBody: map[string]interface{}{
				"title":        "Tarator",
				"category":     "lunch",
				"ingredients":  []map[string]interface{}{{"amount": 1}},
				"instructions": []string{"Mix."},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no instructions",
			requestBody: map[string]interface{}{
				"title":       "Tarator",
				"category":    "lunch",
				"ingredients": []map[string]interface{}{{"name": "cucumber"}},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			controller := controllers.NewRecipeController(s, nil)
			router := setupTestRouter()
			router.POST("/recipes", controller.SubmitRecipe)

			w := performRequest(router, "POST", "/recipes", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSubmitRecipeEntersModerationQueue(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewRecipeController(s, nil)
	router := setupTestRouter()
	router.POST("/recipes", controller.SubmitRecipe)

	w := performRequest(router, "POST", "/recipes", map[string]interface{}{
		"title":        "Tarator",
		"category":     "lunch",
		"ingredients":  []map[string]interface{}{{"name": "cucumber"}},
		"instructions": []string{"Mix everything cold."},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.NotEmpty(t, data["id"])
}

func TestSubmitRecipeDefaultsAuthorToActiveUser(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewRecipeController(s, nil)
	router := setupTestRouter()
	router.POST("/recipes", controller.SubmitRecipe)

	seedProfile(s)

	w := performRequest(router, "POST", "/recipes", map[string]interface{}{
		"title":        "Tarator",
		"category":     "lunch",
		"ingredients":  []map[string]interface{}{{"name": "cucumber"}},
		"instructions": []string{"Mix everything cold."},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "user-1", data["author_id"])
}

func TestAddComment(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewRecipeController(s, nil)
	router := setupTestRouter()
	router.POST("/recipes/:id/comments", controller.AddComment)

	recipe := seedApprovedRecipe(s, "Shopska Salad")

	w := performRequest(router, "POST", "/recipes/"+recipe.ID+"/comments", map[string]interface{}{
		"user_id":   "user-2",
		"user_name": "Maria",
		"text":      "Lovely with extra sirene.",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	updated, _ := s.RecipeByID(recipe.ID)
	assert.Len(t, updated.Comments, 1)
	assert.Equal(t, "Maria", updated.Comments[0].UserName)

	w = performRequest(router, "POST", "/recipes/missing/comments", map[string]interface{}{
		"user_name": "Maria",
		"text":      "Lovely.",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddRatingReturnsRecomputedAverage(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewRecipeController(s, nil)
	router := setupTestRouter()
	router.POST("/recipes/:id/ratings", controller.AddRating)

	recipe := seedApprovedRecipe(s, "Shopska Salad")

	w := performRequest(router, "POST", "/recipes/"+recipe.ID+"/ratings", map[string]interface{}{
		"user_id": "user-2",
		"rating":  5,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "POST", "/recipes/"+recipe.ID+"/ratings", map[string]interface{}{
		"user_id": "user-3",
		"rating":  4,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 4.5, data["average_rating"])

	w = performRequest(router, "POST", "/recipes/missing/ratings", map[string]interface{}{
		"user_id": "user-2",
		"rating":  5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportRecipe(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewRecipeController(s, nil)
	router := setupTestRouter()
	router.POST("/recipes/:id/reports", controller.ReportRecipe)

	recipe := seedApprovedRecipe(s, "Shopska Salad")

	w := performRequest(router, "POST", "/recipes/"+recipe.ID+"/reports", map[string]interface{}{
		"user_id": "user-2",
		"reason":  "inaccurate",
		"details": "Macros look wrong for the stated servings.",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])

	assert.Len(t, s.Reports(), 1)

	w = performRequest(router, "POST", "/recipes/missing/reports", map[string]interface{}{
		"reason": "spam",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
