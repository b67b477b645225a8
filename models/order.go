package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the store
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        string          `gorm:"not null" json:"user_id"`
	User          User            `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_amount"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	OrderRef      string          `gorm:"uniqueIndex" json:"order_ref"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderItem snapshots a cart line at placement time.
type OrderItem struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	OrderID              uint            `gorm:"index" json:"order_id"`
	VariationID          uint            `json:"variation_id"`
	ProductID            uint            `json:"product_id"`
	ProductName          string          `json:"product_name"`
	VariationName        string          `json:"variation_name"`
	UnitPrice            decimal.Decimal `gorm:"type:numeric(10,2)" json:"unit_price"`
	UnitPricePromotional decimal.Decimal `gorm:"type:numeric(10,2)" json:"unit_price_promotional"`
	Quantity             int             `json:"quantity"`
	Slug                 string          `json:"slug"`
	Image                string          `json:"image"`
}
