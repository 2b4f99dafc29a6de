package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusCreated   OrderStatus = "created"   // placed, payment pending (COD)
	OrderStatusPaid      OrderStatus = "paid"      // payment verified
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        string        `gorm:"not null;index" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Address       Address       `gorm:"embedded;embeddedPrefix:ship_" json:"address"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'created'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"` // "razorpay" or "cod"
	// Gateway payment id; unique so a replayed callback can never
	// insert a second order for the same payment.
	PaymentID string    `gorm:"uniqueIndex:idx_orders_payment_id,where:payment_id <> ''" json:"payment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItem freezes the product name and price at order time so later
// catalog changes never rewrite order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
