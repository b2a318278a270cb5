package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a persisted order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Payment methods accepted at the counter
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// Order types
const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeaway = "takeaway"
	OrderTypeQR       = "qr-order"
)

// Order is immutable once created except for status transitions.
type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OrderNumber   string          `json:"order_number" gorm:"uniqueIndex;not null"`
	TableNumber   *int            `json:"table_number"`
	CustomerName  string          `json:"customer_name"`
	Subtotal      decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	TaxAmount     decimal.Decimal `json:"tax_amount" gorm:"type:decimal(10,2);not null"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `json:"payment_method"`
	OrderType     string          `json:"order_type" gorm:"not null"`
	Status        OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	CreatedBy     uint            `json:"created_by"`
	Creator       *User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Items         []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderItem is a persisted line of a completed order. Unit price and name are
// snapshots taken at order time; later menu edits do not affect them.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem       `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
}
