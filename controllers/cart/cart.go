package cartControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/cart"
	"github.com/leonhardc/storefront-api/models"
	"github.com/leonhardc/storefront-api/session"
	"github.com/leonhardc/storefront-api/utils"
)

// lookupEntry resolves a variation ID into the catalog snapshot the cart
// aggregation works on.
func lookupEntry(db *gorm.DB, variationID string) (cart.CatalogEntry, error) {
	var variation models.Variation
	if err := db.First(&variation, "id = ?", variationID).Error; err != nil {
		return cart.CatalogEntry{}, err
	}
	var product models.Product
	if err := db.First(&product, "id = ?", variation.ProductID).Error; err != nil {
		return cart.CatalogEntry{}, err
	}

	return cart.CatalogEntry{
		ProductID:            product.ID,
		ProductName:          product.Name,
		VariationName:        variation.Name,
		UnitPrice:            variation.Price,
		UnitPricePromotional: variation.PricePromotional,
		Stock:                variation.Stock,
		Slug:                 product.Slug,
		Image:                product.Image,
	}, nil
}

// addToCart runs the lookup + aggregation + save pipeline shared by AddToCart
// and BuyNow, pushing the outcome onto the session's flash messages.
func addToCart(c *gin.Context, db *gorm.DB, sessions *session.Store) (cart.Line, bool) {
	sessionID := c.GetString("session_id")

	variationID := c.Query("vid")
	if variationID == "" {
		_ = sessions.AddMessage(sessionID, session.SeverityError, "Product does not exist.")
		c.JSON(http.StatusBadRequest, gin.H{"error": "vid is required"})
		return cart.Line{}, false
	}

	entry, err := lookupEntry(db, variationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = sessions.AddMessage(sessionID, session.SeverityError, "Product does not exist.")
			c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up variation"})
		}
		return cart.Line{}, false
	}

	userCart, err := sessions.GetCart(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return cart.Line{}, false
	}

	line, warn, err := cart.AddOrIncrement(userCart, variationID, entry)
	if err != nil {
		if errors.Is(err, cart.ErrOutOfStock) {
			_ = sessions.AddMessage(sessionID, session.SeverityError, "Insufficient stock.")
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		}
		return cart.Line{}, false
	}

	if warn != nil {
		_ = sessions.AddMessage(sessionID, session.SeverityWarning, fmt.Sprintf(
			"Insufficient stock for %dx of product %s. Added %dx to your cart.",
			warn.Requested, entry.ProductName, warn.Granted,
		))
	}

	if err := sessions.SetCart(sessionID, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return cart.Line{}, false
	}

	_ = sessions.AddMessage(sessionID, session.SeveritySuccess, fmt.Sprintf(
		"Product %s added to your cart %dx.", entry.ProductName, line.Quantity,
	))
	return line, true
}

// POST /cart/add?vid=
func AddToCart(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		line, ok := addToCart(c, db, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// POST /cart/buy?vid=
// Same aggregation as AddToCart; the response points the client at the
// purchase summary instead of back to the product page.
func BuyNow(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		line, ok := addToCart(c, db, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": line, "next": "/checkout/summary"})
	}
}

// DELETE /cart/remove?vid=
func RemoveFromCart(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		variationID := c.Query("vid")
		if variationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "vid is required"})
			return
		}

		userCart, err := sessions.GetCart(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		line, ok := cart.Remove(userCart, variationID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if err := sessions.SetCart(sessionID, userCart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		_ = sessions.AddMessage(sessionID, session.SeveritySuccess, fmt.Sprintf(
			"Product %s removed from your cart.", line.ProductName,
		))
		c.JSON(http.StatusOK, line)
	}
}

// GET /cart
func GetCart(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		userCart, err := sessions.GetCart(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		total := cart.TotalAmount(userCart)
		c.JSON(http.StatusOK, gin.H{
			"items":                userCart,
			"total_quantity":       cart.TotalQuantity(userCart),
			"total_amount":         total,
			"total_amount_display": utils.FormatPrice(total),
		})
	}
}

// GET /messages
// Drains the session's flash messages for display on the next rendered page.
func Messages(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		messages, err := sessions.PopMessages(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
			return
		}
		if messages == nil {
			messages = []session.Message{}
		}
		c.JSON(http.StatusOK, gin.H{"messages": messages})
	}
}
