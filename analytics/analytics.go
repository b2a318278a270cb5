// Package analytics summarizes persisted orders over a date range.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"restaurant-pos-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const topItemsLimit = 10

// TopItem is one entry of the top-selling list: summed quantity and revenue
// for a menu item across the range.
type TopItem struct {
	MenuItemID uint            `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type SalesReport struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalOrders     int             `json:"total_orders"`
	AvgOrderValue   decimal.Decimal `json:"avg_order_value"`
	TopSellingItems []TopItem       `json:"top_selling_items"`
}

// ComputeSales aggregates orders created in [start, end] inclusive. An empty
// range yields zeros and an empty top list, never an error. Top items are
// sorted by quantity descending, ties broken by menu item id for a
// deterministic order. Sums are done in Go so decimal amounts never pass
// through float arithmetic.
func ComputeSales(db *gorm.DB, start, end time.Time) (*SalesReport, error) {
	var orders []models.Order
	if err := db.Where("created_at BETWEEN ? AND ?", start, end).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	report := &SalesReport{
		TotalSales:      decimal.Zero,
		AvgOrderValue:   decimal.Zero,
		TopSellingItems: []TopItem{},
	}
	for _, o := range orders {
		report.TotalSales = report.TotalSales.Add(o.TotalAmount)
	}
	report.TotalOrders = len(orders)
	if report.TotalOrders > 0 {
		report.AvgOrderValue = report.TotalSales.Div(decimal.NewFromInt(int64(report.TotalOrders)))
	}

	var items []models.OrderItem
	err := db.
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at BETWEEN ? AND ?", start, end).
		Preload("MenuItem").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	byItem := map[uint]*TopItem{}
	for _, it := range items {
		entry, ok := byItem[it.MenuItemID]
		if !ok {
			name := "Unknown Item"
			if it.MenuItem != nil {
				name = it.MenuItem.Name
			}
			entry = &TopItem{MenuItemID: it.MenuItemID, Name: name, Revenue: decimal.Zero}
			byItem[it.MenuItemID] = entry
		}
		entry.Quantity += it.Quantity
		entry.Revenue = entry.Revenue.Add(it.TotalPrice)
	}

	top := make([]TopItem, 0, len(byItem))
	for _, entry := range byItem {
		top = append(top, *entry)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].MenuItemID < top[j].MenuItemID
	})
	if len(top) > topItemsLimit {
		top = top[:topItemsLimit]
	}
	report.TopSellingItems = top

	return report, nil
}
