package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/models"
	"github.com/yeremiapane/gourmet-pos/services"
	"github.com/yeremiapane/gourmet-pos/utils"
)

type PurchaseOrderController struct {
	DB          *gorm.DB
	Procurement *services.ProcurementService
}

func NewPurchaseOrderController(db *gorm.DB) *PurchaseOrderController {
	return &PurchaseOrderController{
		DB:          db,
		Procurement: services.NewProcurementService(db),
	}
}

// CreatePurchaseOrder -> buat PO baru berstatus DIPESAN
func (poc *PurchaseOrderController) CreatePurchaseOrder(c *gin.Context) {
	type ReqBody struct {
		SupplierID uint                   `json:"supplier_id" binding:"required"`
		OrderDate  string                 `json:"order_date" binding:"required"`
		Items      []services.POItemInput `json:"items" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orderDate, err := time.ParseInLocation("2006-01-02", body.OrderDate, time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	po, err := poc.Procurement.CreatePurchaseOrder(body.SupplierID, orderDate, body.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Purchase order %d created, total Rp %s",
		po.ID, utils.FormatCurrency(po.TotalCost))
	utils.RespondJSON(c, http.StatusCreated, "Purchase order created", po)
}

// GetAllPurchaseOrders
func (poc *PurchaseOrderController) GetAllPurchaseOrders(c *gin.Context) {
	query := poc.DB.Preload("Supplier").Order("order_date DESC, id DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.PurchaseOrder
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of purchase orders", orders)
}

// GetPurchaseOrderByID
func (poc *PurchaseOrderController) GetPurchaseOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("po_id"))

	var po models.PurchaseOrder
	if err := poc.DB.Preload("Supplier").Preload("Items.Ingredient").First(&po, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrPONotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Purchase order detail", po)
}

// ShipPurchaseOrder -> DIPESAN -> DIKIRIM
func (poc *PurchaseOrderController) ShipPurchaseOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("po_id"))

	po, err := poc.Procurement.MarkShipped(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Purchase order shipped", po)
}

// ReceivePurchaseOrder -> kredit stok semua baris lalu tutup PO ke DITERIMA.
// Idempotent: penerimaan kedua ditolak 409 tanpa menambah stok lagi.
func (poc *PurchaseOrderController) ReceivePurchaseOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("po_id"))

	po, err := poc.Procurement.ReceivePurchaseOrder(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Purchase order received", po)
}
