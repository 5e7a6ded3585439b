package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/kds"
	"github.com/yeremiapane/gourmet-pos/models"
	"github.com/yeremiapane/gourmet-pos/utils"
)

// OrderService mengoordinasikan satu penjualan: validasi keranjang,
// persist order + item, ekspansi resep, dan reservasi stok. Semuanya
// berjalan dalam satu transaksi database supaya kontraknya all-or-nothing:
// kalau satu bahan saja kurang, tidak ada order, item, maupun potongan
// stok yang tersisa.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// PlaceOrder memproses keranjang menjadi order PAID dengan stok terpotong.
// Reservasi dijalankan per bahan terurut naik berdasarkan ID supaya urutan
// lock deterministik saat dua penjualan menyentuh bahan yang sama.
// Service tidak pernah retry sendiri: store error diteruskan ke caller
// supaya tidak ada risiko potong stok dobel.
func (svc *OrderService) PlaceOrder(lines []CartLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	var order models.Order
	var debited []uint

	err := svc.DB.Transaction(func(tx *gorm.DB) error {
		products, err := loadProducts(tx, lines)
		if err != nil {
			return err
		}

		var total float64
		for _, line := range lines {
			total += products[line.ProductID].SellPrice * float64(line.Quantity)
		}

		now := time.Now()
		order = models.Order{
			Status:        models.OrderStatusPaid,
			KitchenStatus: models.KitchenStatusBaru,
			TotalAmount:   total,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := createWithFreshNumber(tx, &order, now); err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			product := products[line.ProductID]
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.SellPrice,
				Subtotal:  product.SellPrice * float64(line.Quantity),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.OrderItems = items

		demand, err := ExpandCart(tx, lines)
		if err != nil {
			return err
		}

		ingredientIDs := make([]uint, 0, len(demand))
		for id := range demand {
			ingredientIDs = append(ingredientIDs, id)
		}
		sort.Slice(ingredientIDs, func(i, j int) bool { return ingredientIDs[i] < ingredientIDs[j] })

		adjuster := NewStockAdjuster(tx)
		for _, id := range ingredientIDs {
			if err := adjuster.Reserve(id, demand[id]); err != nil {
				return err
			}
		}
		debited = ingredientIDs
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Order sudah durable; baru sekarang observer boleh diberi tahu.
	RecordChange(svc.DB, "orders", int64(order.ID), "INSERT")
	kds.BroadcastOrderUpdate(order)
	svc.raiseLowStockAlerts(debited)

	return &order, nil
}

// loadProducts mengambil semua produk keranjang dalam satu query dan
// menolak keranjang yang menunjuk produk tak dikenal.
func loadProducts(tx *gorm.DB, lines []CartLine) (map[uint]models.Product, error) {
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	var products []models.Product
	if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, line := range lines {
		if _, ok := byID[line.ProductID]; !ok {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}
	}
	return byID, nil
}

// createWithFreshNumber mencoba insert dengan nomor pesanan berbasis waktu;
// tabrakan unique (dua order di milidetik yang sama) diulang dengan suffix.
func createWithFreshNumber(tx *gorm.DB, order *models.Order, now time.Time) error {
	for seq := 0; ; seq++ {
		order.OrderNumber = models.GenerateOrderNumber(now, seq)
		err := tx.Create(order).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || seq >= 5 {
			return err
		}
		order.ID = 0
	}
}

// raiseLowStockAlerts membuat notifikasi untuk bahan yang stoknya jatuh ke
// ambang reorder setelah penjualan ini. Kegagalan di sini hanya dicatat,
// tidak membatalkan penjualan yang sudah commit.
func (svc *OrderService) raiseLowStockAlerts(ingredientIDs []uint) {
	if len(ingredientIDs) == 0 {
		return
	}

	var lowStock []models.Ingredient
	if err := svc.DB.
		Where("id IN ? AND current_stock <= reorder_threshold", ingredientIDs).
		Find(&lowStock).Error; err != nil {
		utils.ErrorLogger.Printf("Error checking reorder thresholds: %v", err)
		return
	}

	for _, ing := range lowStock {
		title := "Stok menipis"
		message := fmt.Sprintf("Stok %s tersisa %.3f %s (ambang reorder %.3f)",
			ing.Name, ing.CurrentStock, ing.Unit, ing.ReorderThreshold)

		notif := models.Notification{
			IngredientID: &ing.ID,
			Title:        &title,
			Message:      message,
			CreatedAt:    time.Now(),
		}
		if err := svc.DB.Create(&notif).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating low stock notification: %v", err)
			continue
		}
		kds.BroadcastStaffNotification(message)
	}
}
