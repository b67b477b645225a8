package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrOutOfStock is returned when a variation cannot be added because its
// stock is below one. The cart is left unchanged.
var ErrOutOfStock = errors.New("insufficient stock")

// Line is one variation held in a cart, with a snapshot of the catalog
// attributes taken at the time it was added or last incremented.
type Line struct {
	VariationID          string          `json:"variation_id"`
	ProductID            uint            `json:"product_id"`
	ProductName          string          `json:"product_name"`
	VariationName        string          `json:"variation_name"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	UnitPricePromotional decimal.Decimal `json:"unit_price_promotional"`
	LineTotal            decimal.Decimal `json:"line_total"`
	LineTotalPromotional decimal.Decimal `json:"line_total_promotional"`
	Quantity             int             `json:"quantity"`
	Slug                 string          `json:"slug"`
	Image                string          `json:"image"`
}

// Cart maps a variation ID to its line. It is owned by one session and
// passed explicitly through the functions below; nothing here touches
// storage.
type Cart map[string]Line

// CatalogEntry is what a catalog lookup returns for a variation.
type CatalogEntry struct {
	ProductID            uint
	ProductName          string
	VariationName        string
	UnitPrice            decimal.Decimal
	UnitPricePromotional decimal.Decimal
	Stock                int
	Slug                 string
	Image                string
}

// ClampWarning signals that an increment was granted only partially because
// the requested quantity exceeded the current stock. The operation still
// succeeds with the clamped quantity.
type ClampWarning struct {
	Requested int
	Granted   int
}

// AddOrIncrement puts one more unit of the variation into the cart.
// A variation not yet in the cart starts at quantity 1; an existing line is
// incremented and clamped to the entry's stock, in which case a ClampWarning
// is returned alongside the updated line. Each call adds one unit, so calling
// twice yields quantity 2.
func AddOrIncrement(c Cart, variationID string, entry CatalogEntry) (Line, *ClampWarning, error) {
	if entry.Stock < 1 {
		return Line{}, nil, ErrOutOfStock
	}

	line, ok := c[variationID]
	if !ok {
		line = Line{
			VariationID:          variationID,
			ProductID:            entry.ProductID,
			ProductName:          entry.ProductName,
			VariationName:        entry.VariationName,
			UnitPrice:            entry.UnitPrice,
			UnitPricePromotional: entry.UnitPricePromotional,
			LineTotal:            entry.UnitPrice,
			LineTotalPromotional: entry.UnitPricePromotional,
			Quantity:             1,
			Slug:                 entry.Slug,
			Image:                entry.Image,
		}
		c[variationID] = line
		return line, nil, nil
	}

	var warn *ClampWarning
	quantity := line.Quantity + 1
	if quantity > entry.Stock {
		warn = &ClampWarning{Requested: quantity, Granted: entry.Stock}
		quantity = entry.Stock
	}

	line.Quantity = quantity
	line.UnitPrice = entry.UnitPrice
	line.UnitPricePromotional = entry.UnitPricePromotional
	line.LineTotal = entry.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	line.LineTotalPromotional = entry.UnitPricePromotional.Mul(decimal.NewFromInt(int64(quantity)))
	c[variationID] = line

	return line, warn, nil
}

// Remove deletes the variation's line from the cart. A missing key is a
// no-op and reports ok=false; the removed line is returned for confirmation
// messaging.
func Remove(c Cart, variationID string) (Line, bool) {
	line, ok := c[variationID]
	if !ok {
		return Line{}, false
	}
	delete(c, variationID)
	return line, true
}

// TotalQuantity sums the quantities of all lines. An empty cart totals 0.
func TotalQuantity(c Cart) int {
	total := 0
	for _, line := range c {
		total += line.Quantity
	}
	return total
}

// TotalAmount sums the line totals, preferring the promotional total of a
// line whenever it is non-zero. An empty cart totals 0.
func TotalAmount(c Cart) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		if !line.LineTotalPromotional.IsZero() {
			total = total.Add(line.LineTotalPromotional)
			continue
		}
		total = total.Add(line.LineTotal)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
