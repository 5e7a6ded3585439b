package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/models"
)

// seedPurchaseHistory membuat satu PO berisi satu baris dengan created_at
// tertentu, untuk menguji pemilihan harga beli paling baru.
func seedPurchaseHistory(t *testing.T, db *gorm.DB, supplierID, ingredientID uint, unitCost float64, at time.Time) {
	t.Helper()

	po := models.PurchaseOrder{
		SupplierID: supplierID,
		OrderDate:  at,
		TotalCost:  unitCost,
		Status:     models.POStatusDiterima,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
	if err := db.Create(&po).Error; err != nil {
		t.Fatalf("failed to seed purchase order: %v", err)
	}

	item := models.PurchaseOrderItem{
		POID:         po.ID,
		IngredientID: ingredientID,
		Quantity:     1,
		UnitCost:     unitCost,
		Subtotal:     unitCost,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed purchase order item: %v", err)
	}
}

func findRow(t *testing.T, rows []ProfitabilityRow, productID uint) ProfitabilityRow {
	t.Helper()

	for _, row := range rows {
		if row.ProductID == productID {
			return row
		}
	}
	t.Fatalf("profitability row for product %d not found", productID)
	return ProfitabilityRow{}
}

func TestComputeProfitabilityUsesLatestPurchasePrice(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "CV Sumber Pangan")
	flour := seedIngredient(t, db, "Tepung", 100, 0)

	bread := seedProduct(t, db, "Roti", 12000)
	seedRecipeItem(t, db, bread.ID, flour.ID, 2)

	// Harga lama 500, harga terbaru 800 -> basis biaya harus 800
	seedPurchaseHistory(t, db, supplier.ID, flour.ID, 500, time.Now().Add(-48*time.Hour))
	seedPurchaseHistory(t, db, supplier.ID, flour.ID, 800, time.Now().Add(-1*time.Hour))

	svc := NewCostingService(db)
	rows, err := svc.ComputeProfitability()
	assert.NoError(t, err)

	row := findRow(t, rows, bread.ID)
	assert.Equal(t, 1600.0, row.HPP)
	assert.Equal(t, 10400.0, row.Profit)
	assert.InDelta(t, 10400.0/12000.0*100, row.Margin, 0.0001)
}

func TestComputeProfitabilityNoPurchaseHistory(t *testing.T) {
	db := newTestDB(t)
	flour := seedIngredient(t, db, "Tepung", 100, 0)
	bread := seedProduct(t, db, "Roti", 12000)
	seedRecipeItem(t, db, bread.ID, flour.ID, 2)

	svc := NewCostingService(db)
	rows, err := svc.ComputeProfitability()
	assert.NoError(t, err)

	// Belum pernah dibeli -> basis biaya 0, bukan error
	row := findRow(t, rows, bread.ID)
	assert.Equal(t, 0.0, row.HPP)
	assert.Equal(t, 12000.0, row.Profit)
	assert.Equal(t, 100.0, row.Margin)
}

func TestComputeProfitabilityZeroSellPrice(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "CV Sumber Pangan")
	flour := seedIngredient(t, db, "Tepung", 100, 0)

	sample := seedProduct(t, db, "Tester Gratis", 0)
	seedRecipeItem(t, db, sample.ID, flour.ID, 1)
	seedPurchaseHistory(t, db, supplier.ID, flour.ID, 800, time.Now())

	svc := NewCostingService(db)
	rows, err := svc.ComputeProfitability()
	assert.NoError(t, err)

	// Harga jual 0 -> margin 0, bukan pembagian nol
	row := findRow(t, rows, sample.ID)
	assert.Equal(t, 800.0, row.HPP)
	assert.Equal(t, -800.0, row.Profit)
	assert.Equal(t, 0.0, row.Margin)
}

func TestComputeProfitabilityProductWithoutRecipe(t *testing.T) {
	db := newTestDB(t)
	water := seedProduct(t, db, "Air Mineral", 5000)

	svc := NewCostingService(db)
	rows, err := svc.ComputeProfitability()
	assert.NoError(t, err)

	row := findRow(t, rows, water.ID)
	assert.Equal(t, 0.0, row.HPP)
	assert.Equal(t, 5000.0, row.Profit)
	assert.Equal(t, 100.0, row.Margin)
}
