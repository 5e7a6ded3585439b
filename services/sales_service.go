package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/models"
)

const dateLayout = "2006-01-02"

// DailySales adalah satu bucket hari kalender untuk grafik penjualan.
type DailySales struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// SalesService mengagregasi total order ke bucket harian.
type SalesService struct {
	DB *gorm.DB
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{DB: db}
}

// SalesByDay mengembalikan `days` hari kalender berurutan yang berakhir
// hari ini (batas hari 00:00 waktu lokal), terlama duluan. Hari tanpa
// penjualan tetap muncul dengan total 0 supaya grafik tidak bolong.
func (ss *SalesService) SalesByDay(days int) ([]DailySales, error) {
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -(days - 1))

	buckets := make([]DailySales, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		buckets[i] = DailySales{Date: key}
		index[key] = i
	}

	var orders []models.Order
	if err := ss.DB.
		Where("created_at >= ? AND status = ?", start, models.OrderStatusPaid).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	for _, order := range orders {
		key := order.CreatedAt.In(now.Location()).Format(dateLayout)
		if i, ok := index[key]; ok {
			buckets[i].Total += order.TotalAmount
		}
	}
	return buckets, nil
}
