package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuCategory struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	NameTamil    string     `json:"name_tamil"`
	DisplayOrder int        `json:"display_order" gorm:"default:0"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MenuItem is a sellable dish with a price and a tracked stock count.
// Items are never hard-deleted, only deactivated.
type MenuItem struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Name             string          `json:"name" gorm:"not null"`
	NameTamil        string          `json:"name_tamil"`
	Description      string          `json:"description"`
	DescriptionTamil string          `json:"description_tamil"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID       *uint           `json:"category_id"`
	Category         *MenuCategory   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CurrentStock     int             `json:"current_stock" gorm:"default:0"`
	MinStockLevel    int             `json:"min_stock_level" gorm:"default:5"`
	IsActive         bool            `json:"is_active" gorm:"default:true"`
	Emoji            string          `json:"emoji"`
	CreatedAt        time.Time       `json:"created_at"`
}
