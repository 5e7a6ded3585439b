package models

import (
	"time"
)

// Notification menampung peringatan untuk staff, saat ini dipakai untuk
// alert stok rendah setelah reservasi menembus ambang reorder.
type Notification struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	IngredientID *uint       `json:"ingredient_id,omitempty"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"ingredient,omitempty"`
	Title        *string     `gorm:"type:varchar(100)" json:"title,omitempty"`
	Message      string      `gorm:"type:text;not null" json:"message"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
}
