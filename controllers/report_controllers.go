package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/services"
	"github.com/yeremiapane/gourmet-pos/utils"
)

type ReportController struct {
	Costing *services.CostingService
	Sales   *services.SalesService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		Costing: services.NewCostingService(db),
		Sales:   services.NewSalesService(db),
	}
}

// GetProfitability -> HPP, profit, dan margin semua produk
func (rc *ReportController) GetProfitability(c *gin.Context) {
	rows, err := rc.Costing.ComputeProfitability()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profitability report", rows)
}

// GetSalesDaily -> total penjualan per hari, default 7 hari terakhir.
// ?days=n dibatasi 1..90 supaya query tetap ringan.
func (rc *ReportController) GetSalesDaily(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidQuantity)
			return
		}
		days = parsed
	}
	if days > 90 {
		days = 90
	}

	buckets, err := rc.Sales.SalesByDay(days)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily sales report", buckets)
}
