package models

import "time"

type PurchaseOrderItem struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	POID         uint          `gorm:"not null;index" json:"po_id"`
	PO           PurchaseOrder `gorm:"foreignKey:POID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	IngredientID uint          `gorm:"not null;index" json:"ingredient_id"`
	Ingredient   Ingredient    `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"ingredient"`
	Quantity     float64       `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitCost     float64       `gorm:"type:decimal(10,2);not null" json:"unit_cost"`
	Subtotal     float64       `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	CreatedAt    time.Time     `gorm:"not null;index" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updated_at"`
}
