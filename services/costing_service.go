package services

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/models"
)

// ProfitabilityRow adalah satu baris laporan HPP per produk.
type ProfitabilityRow struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	SellPrice   float64 `json:"sell_price"`
	HPP         float64 `json:"hpp"`
	Profit      float64 `json:"profit"`
	Margin      float64 `json:"margin"`
}

// CostingService menghitung HPP dan margin dari harga beli historis.
type CostingService struct {
	DB *gorm.DB
}

func NewCostingService(db *gorm.DB) *CostingService {
	return &CostingService{DB: db}
}

// ComputeProfitability menghitung laporan untuk semua produk.
// Basis biaya tiap bahan adalah harga beli per unit dari baris PO paling
// baru; bahan yang belum pernah dibeli dihitung 0, bukan error. Harga beli
// dimuat sekali lalu dipetakan per bahan, tidak satu query per baris resep.
//
// Margin = profit / harga jual x 100; produk dengan harga jual 0 bermargin
// 0 (bukan pembagian nol). Produk tanpa resep ber-HPP 0.
func (cs *CostingService) ComputeProfitability() ([]ProfitabilityRow, error) {
	var products []models.Product
	if err := cs.DB.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}

	var recipeItems []models.RecipeItem
	if err := cs.DB.Find(&recipeItems).Error; err != nil {
		return nil, err
	}
	recipeByProduct := make(map[uint][]models.RecipeItem)
	for _, item := range recipeItems {
		recipeByProduct[item.ProductID] = append(recipeByProduct[item.ProductID], item)
	}

	costBasis, err := cs.latestUnitCosts()
	if err != nil {
		return nil, err
	}

	rows := make([]ProfitabilityRow, 0, len(products))
	for _, product := range products {
		var hpp float64
		for _, item := range recipeByProduct[product.ID] {
			hpp += item.QuantityPerUnit * costBasis[item.IngredientID]
		}

		profit := product.SellPrice - hpp
		margin := 0.0
		if product.SellPrice > 0 {
			margin = profit / product.SellPrice * 100
		}

		rows = append(rows, ProfitabilityRow{
			ProductID:   product.ID,
			ProductName: product.Name,
			SellPrice:   product.SellPrice,
			HPP:         hpp,
			Profit:      profit,
			Margin:      margin,
		})
	}
	return rows, nil
}

// latestUnitCosts memetakan ingredient_id ke harga beli per unit dari baris
// purchase order yang paling baru.
func (cs *CostingService) latestUnitCosts() (map[uint]float64, error) {
	var poItems []models.PurchaseOrderItem
	if err := cs.DB.Order("created_at DESC, id DESC").Find(&poItems).Error; err != nil {
		return nil, err
	}

	costs := make(map[uint]float64)
	for _, item := range poItems {
		if _, ok := costs[item.IngredientID]; ok {
			continue
		}
		costs[item.IngredientID] = item.UnitCost
	}
	return costs, nil
}
