package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/models"
)

type VariationInput struct {
	Name             string           `json:"name"`
	Price            *decimal.Decimal `json:"price" binding:"required"`
	PricePromotional *decimal.Decimal `json:"price_promotional"`
	Stock            int              `json:"stock"`
}

type CreateProductInput struct {
	Name                      string           `json:"name" binding:"required"`
	ShortDescription          string           `json:"short_description"`
	LongDescription           string           `json:"long_description"`
	Image                     string           `json:"image"`
	Slug                      string           `json:"slug"`
	MarketingPrice            *decimal.Decimal `json:"marketing_price" binding:"required"`
	MarketingPricePromotional *decimal.Decimal `json:"marketing_price_promotional"`
	Variations                []VariationInput `json:"variations"`
}

// CreateProduct creates a new product together with its variations.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		slug := input.Slug
		if slug == "" {
			slug = slugify(input.Name)
		}

		product := models.Product{
			Name:             input.Name,
			ShortDescription: input.ShortDescription,
			LongDescription:  input.LongDescription,
			Image:            input.Image,
			Slug:             slug,
			MarketingPrice:   *input.MarketingPrice,
		}
		if input.MarketingPricePromotional != nil {
			product.MarketingPricePromotional = *input.MarketingPricePromotional
		}
		for _, v := range input.Variations {
			variation := models.Variation{
				Name:  v.Name,
				Price: *v.Price,
				Stock: v.Stock,
			}
			if v.PricePromotional != nil {
				variation.PricePromotional = *v.PricePromotional
			}
			product.Variations = append(product.Variations, variation)
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// CreateVariation adds a variation to an existing product.
// URL param: /products/:id/variations
func CreateVariation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input VariationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		variation := models.Variation{
			ProductID: product.ID,
			Name:      input.Name,
			Price:     *input.Price,
			Stock:     input.Stock,
		}
		if input.PricePromotional != nil {
			variation.PricePromotional = *input.PricePromotional
		}

		if err := db.Create(&variation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create variation"})
			return
		}

		c.JSON(http.StatusCreated, variation)
	}
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
