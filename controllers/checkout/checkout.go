package checkoutControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/leonhardc/storefront-api/cart"
	"github.com/leonhardc/storefront-api/checkout"
	"github.com/leonhardc/storefront-api/models"
	"github.com/leonhardc/storefront-api/session"
	"github.com/leonhardc/storefront-api/utils"
)

// hasProfile reports whether the user finished their purchase registration.
func hasProfile(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Profile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// gate loads the session cart and runs the checkout gate for the
// authenticated user. On denial it writes the response itself and reports
// ok=false.
func gate(c *gin.Context, db *gorm.DB, sessions *session.Store) (cart.Cart, bool) {
	sessionID := c.GetString("session_id")
	userID := c.GetString("user_id")

	profiled, err := hasProfile(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check profile"})
		return nil, false
	}

	userCart, err := sessions.GetCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}

	switch decision := checkout.MayCheckout(profiled, userCart); decision {
	case checkout.DeniedNoProfile:
		_ = sessions.AddMessage(sessionID, session.SeverityError, decision.Reason())
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason(), "next": "/user/profile"})
		return nil, false
	case checkout.DeniedEmptyCart:
		_ = sessions.AddMessage(sessionID, session.SeverityError, decision.Reason())
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason(), "next": "/products"})
		return nil, false
	default:
		return userCart, true
	}
}

// GET /checkout/summary
func Summary(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := gate(c, db, sessions)
		if !ok {
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, "id = ?", c.GetString("user_id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		total := cart.TotalAmount(userCart)
		c.JSON(http.StatusOK, gin.H{
			"user":                 user,
			"items":                userCart,
			"total_quantity":       cart.TotalQuantity(userCart),
			"total_amount":         total,
			"total_amount_display": utils.FormatPrice(total),
		})
	}
}

// PlaceOrder turns the session cart into an order: re-checks stock under a
// row lock, deducts it, snapshots the lines and clears the cart.
func PlaceOrder(db *gorm.DB, sessions *session.Store, sessionID, userID string, userCart cart.Cart) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem

		for _, line := range userCart {
			var variation models.Variation
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&variation, "id = ?", line.VariationID).Error; err != nil {
				return err
			}

			if variation.Stock < line.Quantity {
				return errors.New("insufficient stock for product: " + line.ProductName)
			}

			variation.Stock -= line.Quantity
			if err := tx.Save(&variation).Error; err != nil {
				return err
			}

			items = append(items, models.OrderItem{
				VariationID:          variation.ID,
				ProductID:            line.ProductID,
				ProductName:          line.ProductName,
				VariationName:        line.VariationName,
				UnitPrice:            line.UnitPrice,
				UnitPricePromotional: line.UnitPricePromotional,
				Quantity:             line.Quantity,
				Slug:                 line.Slug,
				Image:                line.Image,
			})
		}

		order = models.Order{
			UserID:        userID,
			Items:         items,
			TotalQuantity: cart.TotalQuantity(userCart),
			TotalAmount:   cart.TotalAmount(userCart),
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			OrderRef:      generateOrderRef(),
			CreatedAt:     time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	if err := sessions.SetCart(sessionID, cart.Cart{}); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// POST /checkout/place
func PlaceOrderHandler(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := gate(c, db, sessions)
		if !ok {
			return
		}

		sessionID := c.GetString("session_id")
		order, err := PlaceOrder(db, sessions, sessionID, c.GetString("user_id"), userCart)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		broadcastOrderPlaced(order)
		_ = sessions.AddMessage(sessionID, session.SeveritySuccess, "Order "+order.OrderRef+" placed successfully.")
		c.JSON(http.StatusCreated, order)
	}
}

// GET /checkout/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Where("user_id = ?", c.GetString("user_id")).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
