package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/models"
)

// StockAdjuster adalah satu-satunya pintu mutasi Ingredient.CurrentStock.
// Reserve dan Receive masing-masing satu statement UPDATE per bahan, jadi
// serialisasinya diserahkan ke row lock database: dua caller yang menarget
// bahan yang sama tidak mungkin sama-sama lolos dengan stok yang sama.
// Tidak ada lock global; bahan yang berbeda tidak saling menunggu.
type StockAdjuster struct {
	DB *gorm.DB
}

// NewStockAdjuster membungkus handle database (boleh transaksi aktif)
// sehingga orchestrator bisa menjalankan reservasi di dalam tx miliknya.
func NewStockAdjuster(db *gorm.DB) *StockAdjuster {
	return &StockAdjuster{DB: db}
}

// Reserve mengurangi stok hanya jika mencukupi:
//
//	UPDATE ingredients SET current_stock = current_stock - ?
//	WHERE id = ? AND current_stock >= ?
//
// RowsAffected == 0 berarti bahan tidak ada atau stok kurang; keduanya
// dibedakan dengan satu read lanjutan.
func (sa *StockAdjuster) Reserve(ingredientID uint, amount float64) error {
	if amount < 0 {
		return ErrInvalidQuantity
	}
	if amount == 0 {
		return nil
	}

	res := sa.DB.Model(&models.Ingredient{}).
		Where("id = ? AND current_stock >= ?", ingredientID, amount).
		Update("current_stock", gorm.Expr("current_stock - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var ing models.Ingredient
	if err := sa.DB.First(&ing, ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIngredientNotFound
		}
		return err
	}
	return &InsufficientStockError{
		IngredientID:   ing.ID,
		IngredientName: ing.Name,
		Requested:      amount,
		Available:      ing.CurrentStock,
	}
}

// Receive menambah stok tanpa syarat kecukupan. Jumlah negatif ditolak;
// nol diperbolehkan dan tidak menulis apa-apa.
func (sa *StockAdjuster) Receive(ingredientID uint, amount float64) error {
	if amount < 0 {
		return ErrInvalidQuantity
	}
	if amount == 0 {
		return nil
	}

	res := sa.DB.Model(&models.Ingredient{}).
		Where("id = ?", ingredientID).
		Update("current_stock", gorm.Expr("current_stock + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrIngredientNotFound
	}
	return nil
}
