package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/models"
)

type UpdateProductInput struct {
	Name                      *string          `json:"name"`
	ShortDescription          *string          `json:"short_description"`
	LongDescription           *string          `json:"long_description"`
	Image                     *string          `json:"image"`
	Slug                      *string          `json:"slug"`
	MarketingPrice            *decimal.Decimal `json:"marketing_price"`
	MarketingPricePromotional *decimal.Decimal `json:"marketing_price_promotional"`
}

type UpdateVariationInput struct {
	Name             *string          `json:"name"`
	Price            *decimal.Decimal `json:"price"`
	PricePromotional *decimal.Decimal `json:"price_promotional"`
	Stock            *int             `json:"stock"`
}

// UpdateProduct updates an existing product by ID. Only the provided fields
// change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.ShortDescription != nil {
			updates["short_description"] = *input.ShortDescription
		}
		if input.LongDescription != nil {
			updates["long_description"] = *input.LongDescription
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Slug != nil {
			updates["slug"] = *input.Slug
		}
		if input.MarketingPrice != nil {
			updates["marketing_price"] = *input.MarketingPrice
		}
		if input.MarketingPricePromotional != nil {
			updates["marketing_price_promotional"] = *input.MarketingPricePromotional
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}

// UpdateVariation updates price, promotional price or stock of a variation.
// URL param: /variations/:id
func UpdateVariation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var variation models.Variation
		if err := db.First(&variation, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found"})
			return
		}

		var input UpdateVariationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.PricePromotional != nil {
			updates["price_promotional"] = *input.PricePromotional
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}

		if len(updates) > 0 {
			if err := db.Model(&variation).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update variation"})
				return
			}
		}

		c.JSON(http.StatusOK, variation)
	}
}
