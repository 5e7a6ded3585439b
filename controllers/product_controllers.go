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

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetAllProducts
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Order("name ASC").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// CreateProduct
func (pc *ProductController) CreateProduct(c *gin.Context) {
	type ReqBody struct {
		Name      string  `json:"name" binding:"required"`
		Category  string  `json:"category"`
		SellPrice float64 `json:"sell_price"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.SellPrice < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("harga jual tidak boleh negatif"))
		return
	}

	product := models.Product{
		Name:      body.Name,
		Category:  body.Category,
		SellPrice: body.SellPrice,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		Name      *string  `json:"name"`
		Category  *string  `json:"category"`
		SellPrice *float64 `json:"sell_price"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		product.Name = *body.Name
	}
	if body.Category != nil {
		product.Category = *body.Category
	}
	if body.SellPrice != nil {
		if *body.SellPrice < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("harga jual tidak boleh negatif"))
			return
		}
		product.SellPrice = *body.SellPrice
	}
	product.UpdatedAt = time.Now()

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct -> resep ikut terhapus lewat cascade
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := pc.DB.Where("product_id = ?", id).Delete(&models.RecipeItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := pc.DB.Delete(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product deleted", nil)
}

// GetRecipe -> semua baris resep satu produk beserta bahan
func (pc *ProductController) GetRecipe(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var items []models.RecipeItem
	if err := pc.DB.Preload("Ingredient").Where("product_id = ?", id).Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recipe detail", items)
}

// AddRecipeItem -> tambah satu bahan ke resep produk. Pasangan
// produk+bahan harus unik dan kuantitas per unit harus positif.
func (pc *ProductController) AddRecipeItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type ReqBody struct {
		IngredientID    uint    `json:"ingredient_id" binding:"required"`
		QuantityPerUnit float64 `json:"quantity_per_unit" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.QuantityPerUnit <= 0 {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidQuantity)
		return
	}

	var ingredient models.Ingredient
	if err := pc.DB.First(&ingredient, body.IngredientID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrIngredientNotFound)
		return
	}

	item := models.RecipeItem{
		ProductID:       product.ID,
		IngredientID:    body.IngredientID,
		QuantityPerUnit: body.QuantityPerUnit,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := pc.DB.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusConflict, errors.New("bahan sudah ada di resep produk ini"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	item.Ingredient = ingredient

	utils.RespondJSON(c, http.StatusCreated, "Recipe item added", item)
}

// DeleteRecipeItem
func (pc *ProductController) DeleteRecipeItem(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	var item models.RecipeItem
	if err := pc.DB.First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := pc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recipe item deleted", nil)
}
