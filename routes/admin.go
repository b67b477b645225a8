package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/leonhardc/storefront-api/controllers/checkout"
	productcontroller "github.com/leonhardc/storefront-api/controllers/product"
	userControllers "github.com/leonhardc/storefront-api/controllers/user"
	"github.com/leonhardc/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/:id/variations", productcontroller.CreateVariation(db))
			productAdmin.GET("/export-excel", productcontroller.ExportVariationsToExcel(db))
		}

		// ─────────── Variation Management ───────────
		variationAdmin := adminGroup.Group("/variations")
		{
			variationAdmin.PUT("/:id", productcontroller.UpdateVariation(db))
			variationAdmin.DELETE("/:id", productcontroller.DeleteVariation(db))
		}

		// ─────────── Orders ───────────
		adminGroup.GET("/orders", checkoutControllers.GetAllOrders(db))

		// websocket endpoint for real-time order updates
		adminGroup.GET("/orders/ws", checkoutControllers.OrderEventsHandler)
	}
}
