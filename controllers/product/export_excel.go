package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/models"
	"github.com/leonhardc/storefront-api/utils"
)

// ExportVariationsToExcel downloads the full catalog as a spreadsheet, one
// row per variation.
func ExportVariationsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Variations").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Variations")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ProductID", "ProductName", "Slug", "VariationID", "VariationName",
			"Price", "PricePromotional", "Stock", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			for _, v := range p.Variations {
				row := sheet.AddRow()

				row.AddCell().SetValue(p.ID)
				row.AddCell().SetValue(p.Name)
				row.AddCell().SetValue(p.Slug)
				row.AddCell().SetValue(v.ID)
				row.AddCell().SetValue(v.Name)
				row.AddCell().SetValue(utils.FormatPrice(v.Price))
				row.AddCell().SetValue(utils.FormatPrice(v.PricePromotional))
				row.AddCell().SetValue(v.Stock)
				row.AddCell().SetValue(v.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=variations.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
