package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an append-only back-office cost entry (rent, gas, salary, ...).
type Expense struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Description      string          `json:"description" gorm:"not null"`
	DescriptionTamil string          `json:"description_tamil"`
	Category         string          `json:"category" gorm:"not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod    string          `json:"payment_method" gorm:"not null"`
	Date             time.Time       `json:"date" gorm:"not null"`
	CreatedBy        uint            `json:"created_by"`
	Creator          *User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt        time.Time       `json:"created_at"`
}
