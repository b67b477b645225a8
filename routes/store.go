package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/leonhardc/storefront-api/controllers/cart"
	productcontroller "github.com/leonhardc/storefront-api/controllers/product"
	"github.com/leonhardc/storefront-api/session"
)

// SetupStoreRoutes registers the public storefront: catalog browsing, the
// session cart and the flash-message feed.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(db))            // GET /products
	r.GET("/products/:slug", productcontroller.GetProductBySlug(db)) // GET /products/:slug

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(sessions))                      // GET /cart
		cartGroup.POST("/add", cartControllers.AddToCart(db, sessions))           // POST /cart/add?vid=
		cartGroup.POST("/buy", cartControllers.BuyNow(db, sessions))              // POST /cart/buy?vid=
		cartGroup.DELETE("/remove", cartControllers.RemoveFromCart(db, sessions)) // DELETE /cart/remove?vid=
	}

	// ──────────────── Flash Messages ────────────────
	r.GET("/messages", cartControllers.Messages(sessions)) // GET /messages
}
