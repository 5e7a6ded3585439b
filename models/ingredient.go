package models

import "time"

// Ingredient adalah bahan baku yang stoknya dijaga oleh StockAdjuster.
// CurrentStock tidak pernah negatif; semua mutasi lewat conditional update,
// tidak pernah read-modify-write dari kode lain.
type Ingredient struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	CurrentStock     float64   `gorm:"type:decimal(12,3);not null;default:0" json:"current_stock"`
	Unit             string    `gorm:"type:varchar(20);not null" json:"unit"`
	ReorderThreshold float64   `gorm:"type:decimal(12,3);not null;default:0" json:"reorder_threshold"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

// NeedsReorder -> true jika stok sudah menyentuh ambang reorder
func (i *Ingredient) NeedsReorder() bool {
	return i.CurrentStock <= i.ReorderThreshold
}
