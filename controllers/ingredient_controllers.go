package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/models"
	"github.com/yeremiapane/gourmet-pos/services"
	"github.com/yeremiapane/gourmet-pos/utils"
)

type IngredientController struct {
	DB *gorm.DB
}

func NewIngredientController(db *gorm.DB) *IngredientController {
	return &IngredientController{DB: db}
}

// GetAllIngredients -> list bahan baku terurut nama.
// ?low_stock=true menyaring bahan yang sudah menyentuh ambang reorder.
func (ic *IngredientController) GetAllIngredients(c *gin.Context) {
	query := ic.DB.Order("name ASC")
	if c.Query("low_stock") == "true" {
		query = query.Where("current_stock <= reorder_threshold")
	}

	var ingredients []models.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of ingredients", ingredients)
}

// CreateIngredient
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	type ReqBody struct {
		Name             string  `json:"name" binding:"required"`
		CurrentStock     float64 `json:"current_stock"`
		Unit             string  `json:"unit" binding:"required"`
		ReorderThreshold float64 `json:"reorder_threshold"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.CurrentStock < 0 || body.ReorderThreshold < 0 {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidQuantity)
		return
	}

	ingredient := models.Ingredient{
		Name:             body.Name,
		CurrentStock:     body.CurrentStock,
		Unit:             body.Unit,
		ReorderThreshold: body.ReorderThreshold,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := ic.DB.Create(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusConflict, errors.New("nama bahan baku sudah terdaftar"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordChange(ic.DB, "ingredients", int64(ingredient.ID), "INSERT")
	utils.RespondJSON(c, http.StatusCreated, "Ingredient created", ingredient)
}

// UpdateIngredient -> ubah metadata bahan (nama, unit, ambang reorder).
// CurrentStock sengaja tidak bisa diubah lewat endpoint ini; mutasi stok
// hanya lewat penjualan dan penerimaan PO.
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("ingredient_id"))

	var ingredient models.Ingredient
	if err := ic.DB.First(&ingredient, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrIngredientNotFound)
		return
	}

	type ReqBody struct {
		Name             *string  `json:"name"`
		Unit             *string  `json:"unit"`
		ReorderThreshold *float64 `json:"reorder_threshold"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		ingredient.Name = *body.Name
	}
	if body.Unit != nil {
		ingredient.Unit = *body.Unit
	}
	if body.ReorderThreshold != nil {
		if *body.ReorderThreshold < 0 {
			utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidQuantity)
			return
		}
		ingredient.ReorderThreshold = *body.ReorderThreshold
	}
	ingredient.UpdatedAt = time.Now()

	if err := ic.DB.Save(&ingredient).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordChange(ic.DB, "ingredients", int64(ingredient.ID), "UPDATE")
	utils.RespondJSON(c, http.StatusOK, "Ingredient updated", ingredient)
}

// DeleteIngredient -> tolak kalau bahan masih dipakai resep
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("ingredient_id"))

	var ingredient models.Ingredient
	if err := ic.DB.First(&ingredient, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrIngredientNotFound)
		return
	}

	var recipeCount int64
	if err := ic.DB.Model(&models.RecipeItem{}).Where("ingredient_id = ?", id).Count(&recipeCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if recipeCount > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("bahan baku masih dipakai resep"))
		return
	}

	if err := ic.DB.Delete(&ingredient).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordChange(ic.DB, "ingredients", int64(ingredient.ID), "DELETE")
	utils.RespondJSON(c, http.StatusOK, "Ingredient deleted", nil)
}
