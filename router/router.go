package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/gourmet-pos/controllers"
	"github.com/yeremiapane/gourmet-pos/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	orderCtrl := controllers.NewOrderController(db)
	ingredientCtrl := controllers.NewIngredientController(db)
	productCtrl := controllers.NewProductController(db)
	supplierCtrl := controllers.NewSupplierController(db)
	poCtrl := controllers.NewPurchaseOrderController(db)
	reportCtrl := controllers.NewReportController(db)
	kdsCtrl := controllers.NewKDSController(db)
	notifCtrl := controllers.NewNotificationController(db)

	// POS
	orders := r.Group("/orders")
	{
		orders.POST("", middlewares.NewOrderRateLimiter(), orderCtrl.CreateOrder)
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.PATCH("/:order_id/kitchen-status", orderCtrl.UpdateKitchenStatus)
	}

	// Inventory
	ingredients := r.Group("/ingredients")
	{
		ingredients.GET("", ingredientCtrl.GetAllIngredients)
		ingredients.POST("", ingredientCtrl.CreateIngredient)
		ingredients.PATCH("/:ingredient_id", ingredientCtrl.UpdateIngredient)
		ingredients.DELETE("/:ingredient_id", ingredientCtrl.DeleteIngredient)
	}

	// Menu + resep
	products := r.Group("/products")
	{
		products.GET("", productCtrl.GetAllProducts)
		products.POST("", productCtrl.CreateProduct)
		products.PATCH("/:product_id", productCtrl.UpdateProduct)
		products.DELETE("/:product_id", productCtrl.DeleteProduct)
		products.GET("/:product_id/recipe", productCtrl.GetRecipe)
		products.POST("/:product_id/recipe", productCtrl.AddRecipeItem)
	}
	r.DELETE("/recipe-items/:item_id", productCtrl.DeleteRecipeItem)

	// Procurement
	suppliers := r.Group("/suppliers")
	{
		suppliers.GET("", supplierCtrl.GetAllSuppliers)
		suppliers.POST("", supplierCtrl.CreateSupplier)
		suppliers.PATCH("/:supplier_id", supplierCtrl.UpdateSupplier)
		suppliers.DELETE("/:supplier_id", supplierCtrl.DeleteSupplier)
	}

	purchaseOrders := r.Group("/purchase-orders")
	{
		purchaseOrders.POST("", poCtrl.CreatePurchaseOrder)
		purchaseOrders.GET("", poCtrl.GetAllPurchaseOrders)
		purchaseOrders.GET("/:po_id", poCtrl.GetPurchaseOrderByID)
		purchaseOrders.PATCH("/:po_id/ship", poCtrl.ShipPurchaseOrder)
		purchaseOrders.POST("/:po_id/receive", poCtrl.ReceivePurchaseOrder)
	}

	// Laporan
	reports := r.Group("/reports")
	{
		reports.GET("/profitability", reportCtrl.GetProfitability)
		reports.GET("/sales-daily", reportCtrl.GetSalesDaily)
	}

	// KDS
	r.GET("/kitchen/queue", kdsCtrl.GetKitchenQueue)
	r.GET("/ws", controllers.KDSHandler)

	r.GET("/notifications", notifCtrl.GetAllNotifications)

	return r
}
