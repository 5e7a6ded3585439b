package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/kds"
	"github.com/yeremiapane/gourmet-pos/models"
	"github.com/yeremiapane/gourmet-pos/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

// KDSHandler -> endpoint WebSocket untuk KDS dapur dan dashboard
func KDSHandler(c *gin.Context) {
	role := c.DefaultQuery("role", "staff")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	kds.RegisterClient(ws, role)

	// Baca pesan (jika perlu)
	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			break
		}
	}

	kds.UnregisterClient(ws)
}

type KDSController struct {
	DB *gorm.DB
}

func NewKDSController(db *gorm.DB) *KDSController {
	return &KDSController{DB: db}
}

// GetKitchenQueue -> antrean dapur: order yang belum SIAP, terlama duluan
func (kc *KDSController) GetKitchenQueue(c *gin.Context) {
	var orders []models.Order
	if err := kc.DB.Preload("OrderItems.Product").
		Where("kitchen_status <> ?", models.KitchenStatusSiap).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", orders)
}
