package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/kds"
	"github.com/yeremiapane/gourmet-pos/models"
)

// ChangeMonitor mem-poll tabel db_changes dan menyiarkan hint "data
// berubah, refetch" ke hub websocket. Engine hanya menulis baris change
// setelah datanya durable; pengiriman notifikasi sepenuhnya urusan monitor.
type ChangeMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewChangeMonitor(db *gorm.DB) *ChangeMonitor {
	return &ChangeMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

// RecordChange menulis satu baris change feed. Dipanggil service setelah
// commit; kegagalan hanya dicatat karena data utamanya sudah tersimpan.
func RecordChange(db *gorm.DB, tableName string, recordID int64, action string) {
	change := models.DBChange{
		TableName:  tableName,
		RecordID:   recordID,
		ActionType: action,
		ChangedAt:  time.Now(),
	}
	if err := db.Create(&change).Error; err != nil {
		log.Printf("Error recording change for %s#%d: %v", tableName, recordID, err)
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.checkChanges()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	close(cm.StopChan)
}

func (cm *ChangeMonitor) checkChanges() {
	var changes []models.DBChange

	tx := cm.DB.Begin()

	if err := tx.Where("processed = ?", false).
		Order("changed_at ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		tx.Rollback()
		log.Printf("Error fetching changes: %v", err)
		return
	}

	for _, change := range changes {
		switch change.TableName {
		case "orders":
			cm.processOrderChange(change)
		case "ingredients":
			cm.processIngredientChange(change)
		case "purchase_orders":
			cm.processPurchaseOrderChange(change)
		}

		if err := tx.Model(&models.DBChange{}).
			Where("id = ?", change.ID).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			log.Printf("Error marking change as processed: %v", err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing change batch: %v", err)
		tx.Rollback()
		return
	}

	if len(changes) > 0 {
		log.Printf("Processed %d change notifications", len(changes))
	}
}

func (cm *ChangeMonitor) processOrderChange(change models.DBChange) {
	var order models.Order
	if err := cm.DB.Preload("OrderItems").First(&order, change.RecordID).Error; err != nil {
		log.Printf("Error fetching order %d: %v", change.RecordID, err)
		return
	}
	kds.BroadcastOrderUpdate(order)
	kds.BroadcastDashboardUpdate(map[string]interface{}{
		"event":    "order_changed",
		"order_id": order.ID,
	})
}

func (cm *ChangeMonitor) processIngredientChange(change models.DBChange) {
	var ingredient models.Ingredient
	if err := cm.DB.First(&ingredient, change.RecordID).Error; err != nil {
		log.Printf("Error fetching ingredient %d: %v", change.RecordID, err)
		return
	}
	kds.BroadcastStockUpdate(ingredient)
}

func (cm *ChangeMonitor) processPurchaseOrderChange(change models.DBChange) {
	var po models.PurchaseOrder
	if err := cm.DB.Preload("Items").First(&po, change.RecordID).Error; err != nil {
		log.Printf("Error fetching purchase order %d: %v", change.RecordID, err)
		return
	}
	kds.BroadcastPurchaseOrderUpdate(po)
}
