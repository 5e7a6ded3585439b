package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/models"
	"github.com/yeremiapane/gourmet-pos/utils"
)

type SupplierController struct {
	DB *gorm.DB
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

// GetAllSuppliers
func (sc *SupplierController) GetAllSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := sc.DB.Order("name ASC").Find(&suppliers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of suppliers", suppliers)
}

// CreateSupplier
func (sc *SupplierController) CreateSupplier(c *gin.Context) {
	type ReqBody struct {
		Name    string `json:"name" binding:"required"`
		Contact string `json:"contact"`
		Address string `json:"address"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	supplier := models.Supplier{
		Name:      body.Name,
		Contact:   body.Contact,
		Address:   body.Address,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := sc.DB.Create(&supplier).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Supplier created", supplier)
}

// UpdateSupplier
func (sc *SupplierController) UpdateSupplier(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("supplier_id"))

	var supplier models.Supplier
	if err := sc.DB.First(&supplier, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		Name    *string `json:"name"`
		Contact *string `json:"contact"`
		Address *string `json:"address"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		supplier.Name = *body.Name
	}
	if body.Contact != nil {
		supplier.Contact = *body.Contact
	}
	if body.Address != nil {
		supplier.Address = *body.Address
	}
	supplier.UpdatedAt = time.Now()

	if err := sc.DB.Save(&supplier).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Supplier updated", supplier)
}

// DeleteSupplier -> tolak kalau masih punya purchase order
func (sc *SupplierController) DeleteSupplier(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("supplier_id"))

	var supplier models.Supplier
	if err := sc.DB.First(&supplier, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var poCount int64
	if err := sc.DB.Model(&models.PurchaseOrder{}).Where("supplier_id = ?", id).Count(&poCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if poCount > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("supplier masih punya purchase order"))
		return
	}

	if err := sc.DB.Delete(&supplier).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Supplier deleted", nil)
}
