package models

import "time"

type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusCompleted CheckoutStatus = "completed"
)

// CheckoutSession is the priced cart snapshot frozen when a gateway
// order is created. Payment verification builds the final order from
// this record, never from a second read of the live cart.
type CheckoutSession struct {
	GatewayOrderID string         `gorm:"primaryKey" json:"gateway_order_id"`
	UserID         string         `gorm:"index;not null" json:"user_id"`
	Amount         float64        `json:"amount"`
	Currency       string         `json:"currency"`
	Status         CheckoutStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items          []CheckoutItem `gorm:"foreignKey:GatewayOrderID;references:GatewayOrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time      `json:"created_at"`
}

type CheckoutItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	GatewayOrderID string  `gorm:"index" json:"gateway_order_id"`
	ProductID      uint    `json:"product_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
}
