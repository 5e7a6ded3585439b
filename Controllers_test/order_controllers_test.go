package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/controllers"
	"github.com/yeremiapane/gourmet-pos/models"
	"github.com/yeremiapane/gourmet-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Ingredient{},
		&models.Product{},
		&models.RecipeItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Supplier{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.Notification{},
		&models.DBChange{},
	)
	if err != nil {
		panic(err)
	}
	return db
}

func setupTestDBForOrders(name string) *gorm.DB {
	db := setupTestDB(name)

	// Seed: satu bahan, satu produk dengan resep 2 unit bahan per porsi
	flour := models.Ingredient{
		Name:         "Tepung",
		CurrentStock: 100,
		Unit:         "gram",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	db.Create(&flour)

	donut := models.Product{
		Name:      "Donat",
		Category:  "Makanan",
		SellPrice: 10000,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	db.Create(&donut)

	db.Create(&models.RecipeItem{
		ProductID:       donut.ID,
		IngredientID:    flour.ID,
		QuantityPerUnit: 2,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	})
	return db
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(db)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.PATCH("/orders/:order_id/kitchen-status", orderCtrl.UpdateKitchenStatus)
	return router
}

func TestCreateAndGetOrder(t *testing.T) {
	db := setupTestDBForOrders("ctrl_orders")
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"product_id": 1,
				"quantity":   2,
			},
		},
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/orders", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var createResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &createResp)
	assert.NoError(t, err)
	assert.Equal(t, "Order created", createResp["message"])
	data := createResp["data"].(map[string]interface{})
	orderIDFloat, ok := data["id"].(float64)
	assert.True(t, ok)
	orderID := int(orderIDFloat)
	assert.Equal(t, 20000.0, data["total_amount"])

	// Stok terpotong: 100 - 2x2 = 96
	var flour models.Ingredient
	assert.NoError(t, db.First(&flour, 1).Error)
	assert.Equal(t, 96.0, flour.CurrentStock)

	// Uji GET order by ID
	url := "/orders/" + strconv.Itoa(orderID)
	req, err = http.NewRequest("GET", url, nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var getResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &getResp)
	assert.NoError(t, err)
	assert.Equal(t, "Order detail", getResp["message"])
	getData := getResp["data"].(map[string]interface{})
	assert.Equal(t, float64(orderID), getData["id"].(float64))
	assert.Equal(t, "BARU", getData["kitchen_status"])
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	db := setupTestDBForOrders("ctrl_orders_insufficient")
	router := setupOrderRouter(db)

	// 60 porsi x 2 gram = 120 > stok 100
	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"product_id": 1,
				"quantity":   60,
			},
		},
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/orders", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Tepung")

	// Tidak ada order yang tersimpan dan stok tidak berubah
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)

	var flour models.Ingredient
	assert.NoError(t, db.First(&flour, 1).Error)
	assert.Equal(t, 100.0, flour.CurrentStock)
}

func TestUpdateKitchenStatusTransitions(t *testing.T) {
	db := setupTestDBForOrders("ctrl_orders_kitchen")
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 1},
		},
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/orders", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	patch := func(status string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"kitchen_status": status})
		req, _ := http.NewRequest("PATCH", "/orders/1/kitchen-status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// BARU -> SIAP dilarang, harus lewat SEDANG_DIMASAK
	assert.Equal(t, http.StatusBadRequest, patch("SIAP").Code)
	assert.Equal(t, http.StatusOK, patch("SEDANG_DIMASAK").Code)
	assert.Equal(t, http.StatusOK, patch("SIAP").Code)
	// SIAP adalah status terminal dapur
	assert.Equal(t, http.StatusBadRequest, patch("SEDANG_DIMASAK").Code)
}
