package Controllers_test

import (
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

func setupReportRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	reportCtrl := controllers.NewReportController(db)
	router.GET("/reports/profitability", reportCtrl.GetProfitability)
	router.GET("/reports/sales-daily", reportCtrl.GetSalesDaily)
	return router
}

func TestProfitabilityReport(t *testing.T) {
	db := setupTestDB("ctrl_report_profit")
	router := setupReportRouter(db)

	now := time.Now()
	flour := models.Ingredient{Name: "Tepung", CurrentStock: 100, Unit: "gram", CreatedAt: now, UpdatedAt: now}
	db.Create(&flour)
	bread := models.Product{Name: "Roti", SellPrice: 12000, CreatedAt: now, UpdatedAt: now}
	db.Create(&bread)
	db.Create(&models.RecipeItem{ProductID: bread.ID, IngredientID: flour.ID, QuantityPerUnit: 2, CreatedAt: now, UpdatedAt: now})

	supplier := models.Supplier{Name: "CV Sumber Pangan", CreatedAt: now, UpdatedAt: now}
	db.Create(&supplier)
	po := models.PurchaseOrder{SupplierID: supplier.ID, OrderDate: now, TotalCost: 800, Status: models.POStatusDiterima, CreatedAt: now, UpdatedAt: now}
	db.Create(&po)
	db.Create(&models.PurchaseOrderItem{POID: po.ID, IngredientID: flour.ID, Quantity: 1, UnitCost: 800, Subtotal: 800, CreatedAt: now, UpdatedAt: now})

	req, _ := http.NewRequest("GET", "/reports/profitability", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	rows := resp["data"].([]interface{})
	assert.Len(t, rows, 1)

	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Roti", row["product_name"])
	assert.Equal(t, 1600.0, row["hpp"])
	assert.Equal(t, 10400.0, row["profit"])
}

func TestSalesDailyReportZeroFilled(t *testing.T) {
	db := setupTestDB("ctrl_report_sales")
	router := setupReportRouter(db)

	req, _ := http.NewRequest("GET", "/reports/sales-daily?days=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	buckets := resp["data"].([]interface{})
	assert.Len(t, buckets, 7)

	today := time.Now().Format("2006-01-02")
	last := buckets[6].(map[string]interface{})
	assert.Equal(t, today, last["date"])
	for _, raw := range buckets {
		bucket := raw.(map[string]interface{})
		assert.Equal(t, 0.0, bucket["total"])
	}
}

func TestSalesDailyRejectsInvalidDays(t *testing.T) {
	db := setupTestDB("ctrl_report_sales_invalid")
	router := setupReportRouter(db)

	req, _ := http.NewRequest("GET", "/reports/sales-daily?days=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
