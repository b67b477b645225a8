package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string          `gorm:"not null" json:"name"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	Image            string          `json:"image"`
	Slug             string          `gorm:"uniqueIndex;not null" json:"slug"`
	// Marketing prices are what the listing page shows; the price actually
	// charged lives on the variation.
	MarketingPrice            decimal.Decimal `gorm:"type:numeric(10,2)" json:"marketing_price"`
	MarketingPricePromotional decimal.Decimal `gorm:"type:numeric(10,2)" json:"marketing_price_promotional"`
	Variations                []Variation     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variations"`
	CreatedAt                 time.Time       `json:"created_at"`
	UpdatedAt                 time.Time       `json:"updated_at"`
	DeletedAt                 gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Variation is the purchasable SKU of a product (size, color, ...) carrying
// its own price and stock.
type Variation struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID        uint            `gorm:"index;not null" json:"product_id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	PricePromotional decimal.Decimal `gorm:"type:numeric(10,2)" json:"price_promotional"`
	Stock            int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
