package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/controllers"
	"github.com/yeremiapane/gourmet-pos/models"
)

func setupIngredientRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	ingredientCtrl := controllers.NewIngredientController(db)
	router.GET("/ingredients", ingredientCtrl.GetAllIngredients)
	router.POST("/ingredients", ingredientCtrl.CreateIngredient)
	router.PATCH("/ingredients/:ingredient_id", ingredientCtrl.UpdateIngredient)
	router.DELETE("/ingredients/:ingredient_id", ingredientCtrl.DeleteIngredient)
	return router
}

func TestCreateAndListIngredients(t *testing.T) {
	db := setupTestDB("ctrl_ingredients")
	router := setupIngredientRouter(db)

	payload := map[string]interface{}{
		"name":              "Tepung",
		"current_stock":     100,
		"unit":              "gram",
		"reorder_threshold": 20,
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/ingredients", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("GET", "/ingredients", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Tepung", first["name"])
	assert.Equal(t, 100.0, first["current_stock"])
}

func TestCreateIngredientRejectsNegativeStock(t *testing.T) {
	db := setupTestDB("ctrl_ingredients_negative")
	router := setupIngredientRouter(db)

	payload := map[string]interface{}{
		"name":          "Tepung",
		"current_stock": -5,
		"unit":          "gram",
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/ingredients", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteIngredientInRecipeRejected(t *testing.T) {
	db := setupTestDB("ctrl_ingredients_delete")
	router := setupIngredientRouter(db)

	now := time.Now()
	flour := models.Ingredient{Name: "Tepung", CurrentStock: 10, Unit: "gram", CreatedAt: now, UpdatedAt: now}
	db.Create(&flour)
	donut := models.Product{Name: "Donat", SellPrice: 8000, CreatedAt: now, UpdatedAt: now}
	db.Create(&donut)
	db.Create(&models.RecipeItem{ProductID: donut.ID, IngredientID: flour.ID, QuantityPerUnit: 2, CreatedAt: now, UpdatedAt: now})

	req, _ := http.NewRequest("DELETE", "/ingredients/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Ingredient{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
