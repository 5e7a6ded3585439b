package models

import "time"

type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	SellPrice float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"sell_price"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	RecipeItems []RecipeItem `gorm:"foreignKey:ProductID" json:"recipe_items,omitempty"`
}
