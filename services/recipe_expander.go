package services

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/models"
)

// CartLine adalah satu baris keranjang dari POS. Keranjang dikirim utuh
// sebagai value object; engine tidak menyimpan state keranjang sendiri.
type CartLine struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// ExpandCart menjabarkan keranjang menjadi total kebutuhan bahan:
// map ingredient_id -> jumlah. Resep semua produk diambil dalam satu query,
// lalu kebutuhan diagregasi lintas produk yang berbagi bahan. Produk tanpa
// resep tidak menyumbang apa-apa dan bukan error. Fungsi ini murni membaca,
// tidak menyentuh stok.
func ExpandCart(db *gorm.DB, lines []CartLine) (map[uint]float64, error) {
	qtyByProduct := make(map[uint]int, len(lines))
	productIDs := make([]uint, 0, len(lines))
	for _, line := range lines {
		if _, seen := qtyByProduct[line.ProductID]; !seen {
			productIDs = append(productIDs, line.ProductID)
		}
		qtyByProduct[line.ProductID] += line.Quantity
	}

	if len(productIDs) == 0 {
		return map[uint]float64{}, nil
	}

	var recipeItems []models.RecipeItem
	if err := db.Where("product_id IN ?", productIDs).Find(&recipeItems).Error; err != nil {
		return nil, err
	}

	demand := make(map[uint]float64)
	for _, item := range recipeItems {
		demand[item.IngredientID] += item.QuantityPerUnit * float64(qtyByProduct[item.ProductID])
	}
	return demand, nil
}
