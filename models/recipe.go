package models

import "time"

// RecipeItem -> satu baris resep: berapa banyak bahan baku yang dipakai
// setiap satu unit produk terjual. Pasangan (product_id, ingredient_id)
// unik per produk.
type RecipeItem struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	ProductID       uint       `gorm:"not null;uniqueIndex:idx_recipe_product_ingredient" json:"product_id"`
	Product         Product    `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	IngredientID    uint       `gorm:"not null;uniqueIndex:idx_recipe_product_ingredient" json:"ingredient_id"`
	Ingredient      Ingredient `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"ingredient"`
	QuantityPerUnit float64    `gorm:"type:decimal(12,3);not null" json:"quantity_per_unit"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}
