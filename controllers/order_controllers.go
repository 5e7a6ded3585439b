package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/kds"
	"github.com/yeremiapane/gourmet-pos/models"
	"github.com/yeremiapane/gourmet-pos/services"
	"github.com/yeremiapane/gourmet-pos/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		Orders: services.NewOrderService(db),
	}
}

// CreateOrder -> proses keranjang POS menjadi order PAID dengan stok
// terpotong. Gagal utuh: kalau satu bahan kurang, tidak ada order yang
// tersimpan dan stok tidak berubah.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ReqBody struct {
		Items []services.CartLine `json:"items" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.PlaceOrder(body.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created, total Rp %s",
		order.OrderNumber, utils.FormatCurrency(order.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> list orders beserta items, terbaru duluan
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("OrderItems").Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail 1 order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.Preload("OrderItems").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateKitchenStatus -> transisi status dapur BARU -> SEDANG_DIMASAK -> SIAP.
// Transisi lain ditolak; SIAP adalah status terminal dapur.
func (oc *OrderController) UpdateKitchenStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		KitchenStatus string `json:"kitchen_status" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	next := models.NextKitchenStatus(order.KitchenStatus)
	if next == "" || body.KitchenStatus != next {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("transisi %s -> %s tidak diizinkan", order.KitchenStatus, body.KitchenStatus))
		return
	}

	order.KitchenStatus = body.KitchenStatus
	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordChange(oc.DB, "orders", int64(order.ID), "UPDATE")
	kds.BroadcastKitchenUpdate(order)

	utils.RespondJSON(c, http.StatusOK, "Kitchen status updated", order)
}
