package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a raw-material stock entry, tracked independently of menu
// items. Stock supports fractional units (kg, liters).
type InventoryItem struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"not null"`
	NameTamil     string          `json:"name_tamil"`
	Category      string          `json:"category" gorm:"not null"`
	CurrentStock  decimal.Decimal `json:"current_stock" gorm:"type:decimal(10,2);not null"`
	Unit          string          `json:"unit" gorm:"not null"`
	MinLevel      decimal.Decimal `json:"min_level" gorm:"type:decimal(10,2);not null"`
	UnitPrice     decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	LastRestocked *time.Time      `json:"last_restocked"`
	CreatedAt     time.Time       `json:"created_at"`
}
