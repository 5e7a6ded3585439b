package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/kds"
	"github.com/yeremiapane/gourmet-pos/models"
)

// ProcurementService menangani siklus purchase order:
// DIPESAN -> DIKIRIM -> DITERIMA. Penerimaan (DITERIMA) adalah transisi
// terminal dan satu-satunya yang menambah stok.
type ProcurementService struct {
	DB *gorm.DB
}

func NewProcurementService(db *gorm.DB) *ProcurementService {
	return &ProcurementService{DB: db}
}

// POItemInput adalah satu baris pembelian dari form procurement.
type POItemInput struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required"`
	UnitCost     float64 `json:"unit_cost"`
}

// CreatePurchaseOrder membuat PO baru berstatus DIPESAN beserta barisnya.
// TotalCost dihitung di sini dan selalu sama dengan jumlah subtotal baris.
func (ps *ProcurementService) CreatePurchaseOrder(supplierID uint, orderDate time.Time, items []POItemInput) (*models.PurchaseOrder, error) {
	if supplierID == 0 || len(items) == 0 {
		return nil, ErrIncompletePO
	}
	for _, item := range items {
		if item.Quantity <= 0 || item.UnitCost < 0 {
			return nil, ErrInvalidQuantity
		}
	}

	var po models.PurchaseOrder
	err := ps.DB.Transaction(func(tx *gorm.DB) error {
		var supplier models.Supplier
		if err := tx.First(&supplier, supplierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSupplierNotFound
			}
			return err
		}

		var ingredientIDs []uint
		for _, item := range items {
			ingredientIDs = append(ingredientIDs, item.IngredientID)
		}
		var count int64
		if err := tx.Model(&models.Ingredient{}).Where("id IN ?", ingredientIDs).Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(uniqueIDs(ingredientIDs)) {
			return ErrIngredientNotFound
		}

		var total float64
		for _, item := range items {
			total += item.Quantity * item.UnitCost
		}

		now := time.Now()
		po = models.PurchaseOrder{
			SupplierID: supplierID,
			OrderDate:  orderDate,
			TotalCost:  total,
			Status:     models.POStatusDipesan,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.Create(&po).Error; err != nil {
			return err
		}

		poItems := make([]models.PurchaseOrderItem, 0, len(items))
		for _, item := range items {
			poItems = append(poItems, models.PurchaseOrderItem{
				POID:         po.ID,
				IngredientID: item.IngredientID,
				Quantity:     item.Quantity,
				UnitCost:     item.UnitCost,
				Subtotal:     item.Quantity * item.UnitCost,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		}
		if err := tx.Create(&poItems).Error; err != nil {
			return err
		}
		po.Items = poItems
		return nil
	})
	if err != nil {
		return nil, err
	}

	RecordChange(ps.DB, "purchase_orders", int64(po.ID), "INSERT")
	return &po, nil
}

// MarkShipped memajukan PO dari DIPESAN ke DIKIRIM lewat update terjaga.
func (ps *ProcurementService) MarkShipped(poID uint) (*models.PurchaseOrder, error) {
	res := ps.DB.Model(&models.PurchaseOrder{}).
		Where("id = ? AND status = ?", poID, models.POStatusDipesan).
		Update("status", models.POStatusDikirim)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var po models.PurchaseOrder
		if err := ps.DB.First(&po, poID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPONotFound
			}
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	var po models.PurchaseOrder
	if err := ps.DB.Preload("Items").First(&po, poID).Error; err != nil {
		return nil, err
	}
	RecordChange(ps.DB, "purchase_orders", int64(po.ID), "UPDATE")
	kds.BroadcastPurchaseOrderUpdate(po)
	return &po, nil
}

// ReceivePurchaseOrder mengkredit stok semua baris PO lalu menutup PO ke
// DITERIMA, semuanya dalam satu transaksi. Status dikunci duluan lewat
// update bersyarat:
//
//	UPDATE purchase_orders SET status = 'DITERIMA'
//	WHERE id = ? AND status <> 'DITERIMA'
//
// sehingga dua penerimaan bersamaan tidak mungkin sama-sama mengkredit;
// yang kalah melihat RowsAffected 0 dan gagal dengan ErrAlreadyReceived.
// Kalau satu Receive gagal, seluruh transaksi batal: status tidak maju dan
// tidak ada kredit parsial yang tersisa.
func (ps *ProcurementService) ReceivePurchaseOrder(poID uint) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := ps.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PurchaseOrder{}).
			Where("id = ? AND status <> ?", poID, models.POStatusDiterima).
			Update("status", models.POStatusDiterima)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.First(&po, poID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPONotFound
				}
				return err
			}
			return ErrAlreadyReceived
		}

		var items []models.PurchaseOrderItem
		if err := tx.Where("po_id = ?", poID).Find(&items).Error; err != nil {
			return err
		}

		adjuster := NewStockAdjuster(tx)
		var credited []uint
		for _, item := range items {
			if err := adjuster.Receive(item.IngredientID, item.Quantity); err != nil {
				return &PartialReceiptError{
					POID:             poID,
					CreditedLines:    credited,
					FailedIngredient: item.IngredientID,
					Err:              err,
				}
			}
			credited = append(credited, item.IngredientID)
		}

		return tx.Preload("Items").First(&po, poID).Error
	})
	if err != nil {
		return nil, err
	}

	RecordChange(ps.DB, "purchase_orders", int64(po.ID), "UPDATE")
	kds.BroadcastPurchaseOrderUpdate(po)
	return &po, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
