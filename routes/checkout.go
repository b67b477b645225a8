package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/leonhardc/storefront-api/controllers/checkout"
	"github.com/leonhardc/storefront-api/middleware"
	"github.com/leonhardc/storefront-api/session"
)

// SetupCheckoutRoutes registers the gated checkout flow. Requires JWT
// middleware; the cart still comes from the browsing session.
func SetupCheckoutRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateToken)
	{
		// Purchase summary, gated on profile + non-empty cart
		checkoutGroup.GET("/summary", checkoutControllers.Summary(db, sessions))

		// Turn the cart into an order
		checkoutGroup.POST("/place", checkoutControllers.PlaceOrderHandler(db, sessions))

		// The user's order history
		checkoutGroup.GET("/orders", checkoutControllers.GetUserOrders(db))
	}
}
