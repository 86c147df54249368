package controllers_test

import (
	"net/http"
	"testing"

	"fitnutri/internal/controllers"

	"github.com/stretchr/testify/assert"
)

func mealBody(calories, protein, carbs, fat int) map[string]interface{} {
	return map[string]interface{}{
		"recipe_id":   "r1",
		"recipe_name": "Shopska Salad",
		"servings":    1,
		"calories":    calories,
		"protein":     protein,
		"carbs":       carbs,
		"fat":         fat,
		"status":      "eaten",
	}
}

func TestGetDailyLogWithoutProfile(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewDailyLogController(s)
	router := setupTestRouter()
	router.GET("/log", controller.GetDailyLog)

	w := performRequest(router, "GET", "/log", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["date"])
	assert.Equal(t, float64(0), data["total_calories"])
}

func TestMarkMealConsumed(t *testing.T) {
	tests := []struct {
		name           string
		withProfile    bool
		requestBody    map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "successful logging",
			withProfile:    true,
			requestBody:    mealBody(400, 25, 30, 15),
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "invalid status value",
			withProfile: true,
			requestBody: map[string]interface{}{
				"recipe_id":   "r1",
				"recipe_name": "Shopska Salad",
				"servings":    1,
				"status":      "planned",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "missing required fields",
			withProfile: true,
			requestBody: map[string]interface{}{
				"calories": 400,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no profile",
			withProfile:    false,
			requestBody:    mealBody(400, 25, 30, 15),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			if tt.withProfile {
				seedProfile(s)
			}
			controller := controllers.NewDailyLogController(s)
			router := setupTestRouter()
			router.POST("/log/meals", controller.MarkMealConsumed)

			w := performRequest(router, "POST", "/log/meals", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMarkMealConsumedAccumulatesTotals(t *testing.T) {
	s := newTestStore()
	seedProfile(s)
	controller := controllers.NewDailyLogController(s)
	router := setupTestRouter()
	router.POST("/log/meals", controller.MarkMealConsumed)

	performRequest(router, "POST", "/log/meals", mealBody(400, 25, 30, 15))
	w := performRequest(router, "POST", "/log/meals", mealBody(300, 20, 25, 10))

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(700), data["total_calories"])
	assert.Equal(t, float64(45), data["total_protein"])
	assert.Len(t, data["consumed_meals"].([]interface{}), 2)
}

func TestGetRemaining(t *testing.T) {
	s := newTestStore()
	seedProfile(s)
	controller := controllers.NewDailyLogController(s)
	router := setupTestRouter()
	router.GET("/log/remaining", controller.GetRemaining)
	router.POST("/log/meals", controller.MarkMealConsumed)

	performRequest(router, "POST", "/log/meals", mealBody(1000, 50, 60, 20))

	w := performRequest(router, "GET", "/log/remaining", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	// Target is TDEE 1978 minus the lose adjustment: 1478.
	assert.Equal(t, float64(478), data["calories"])

	macros := data["macros"].(map[string]interface{})
	assert.Equal(t, float64(61), macros["protein"])

	blocks := data["zone_blocks"].(map[string]interface{})
	assert.NotNil(t, blocks["protein_blocks"])
}

func TestGetRemainingWithoutProfile(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewDailyLogController(s)
	router := setupTestRouter()
	router.GET("/log/remaining", controller.GetRemaining)

	w := performRequest(router, "GET", "/log/remaining", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["calories"])
}

func TestResetDailyLog(t *testing.T) {
	s := newTestStore()
	seedProfile(s)
	controller := controllers.NewDailyLogController(s)
	router := setupTestRouter()
	router.POST("/log/meals", controller.MarkMealConsumed)
	router.DELETE("/log", controller.ResetDailyLog)

	performRequest(router, "POST", "/log/meals", mealBody(400, 25, 30, 15))

	w := performRequest(router, "DELETE", "/log", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_calories"])
	assert.Empty(t, data["consumed_meals"])
}

func TestResetDailyLogWithoutProfile(t *testing.T) {
	s := newTestStore()
	controller := controllers.NewDailyLogController(s)
	router := setupTestRouter()
	router.DELETE("/log", controller.ResetDailyLog)

	w := performRequest(router, "DELETE", "/log", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
