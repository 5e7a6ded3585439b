package models

import (
	"fmt"
	"time"
)

// Status pembayaran order
const (
	OrderStatusPaid = "PAID"
)

// Status dapur (KDS) -> berjalan terpisah dari status pembayaran
const (
	KitchenStatusBaru    = "BARU"
	KitchenStatusDimasak = "SEDANG_DIMASAK"
	KitchenStatusSiap    = "SIAP"
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderNumber   string      `gorm:"type:varchar(40);unique;not null" json:"order_number"`
	Status        string      `gorm:"type:varchar(20);not null;default:'PAID'" json:"status"`
	KitchenStatus string      `gorm:"type:varchar(20);not null;default:'BARU'" json:"kitchen_status"`
	TotalAmount   float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	CreatedAt     time.Time   `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

// NextKitchenStatus -> transisi dapur yang diizinkan dari status saat ini,
// atau "" jika sudah di status terminal.
func NextKitchenStatus(current string) string {
	switch current {
	case KitchenStatusBaru:
		return KitchenStatusDimasak
	case KitchenStatusDimasak:
		return KitchenStatusSiap
	default:
		return ""
	}
}

// GenerateOrderNumber menghasilkan nomor pesanan unik berbasis waktu.
// seq dipakai sebagai suffix saat terjadi tabrakan di milidetik yang sama.
func GenerateOrderNumber(now time.Time, seq int) string {
	if seq == 0 {
		return fmt.Sprintf("GOURMET-%d", now.UnixMilli())
	}
	return fmt.Sprintf("GOURMET-%d-%d", now.UnixMilli(), seq)
}
