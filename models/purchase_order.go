package models

import "time"

// Status purchase order. DITERIMA adalah status terminal: PO yang sudah
// diterima tidak boleh menambah stok dua kali.
const (
	POStatusDipesan  = "DIPESAN"
	POStatusDikirim  = "DIKIRIM"
	POStatusDiterima = "DITERIMA"
)

type PurchaseOrder struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	SupplierID uint                `gorm:"not null" json:"supplier_id"`
	Supplier   Supplier            `gorm:"foreignKey:SupplierID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"supplier"`
	OrderDate  time.Time           `gorm:"not null" json:"order_date"`
	TotalCost  float64             `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_cost"`
	Status     string              `gorm:"type:varchar(20);not null;default:'DIPESAN'" json:"status"`
	CreatedAt  time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time           `gorm:"not null" json:"updated_at"`
	Items      []PurchaseOrderItem `gorm:"foreignKey:POID" json:"items"`
}
