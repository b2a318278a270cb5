package pos

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos-api/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrEmptyOrder is returned when a submission carries no lines. Nothing
	// is persisted in that case.
	ErrEmptyOrder = errors.New("order has no line items")

	// ErrMenuItemNotFound is returned when a line references a menu item id
	// that does not exist; the whole submission is rolled back.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// SubmitRequest carries everything needed to persist an in-progress order.
// TaxRate is applied as given — a zero rate bills zero tax. Callers resolve
// the configured default before submitting.
type SubmitRequest struct {
	Lines         []Line
	TableNumber   *int
	CustomerName  string
	PaymentMethod string
	OrderType     string
	CreatedBy     uint
	TaxRate       decimal.Decimal
}

// OrderNumber builds a human-readable order number: the current year plus a
// six-character UUID-derived suffix. A raw time-derived suffix collides under
// rapid submissions, so the suffix comes from a UUID instead.
func OrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%d-%s", now.Year(), suffix)
}

// Submit persists an order with its line items and decrements menu stock per
// line, all inside one transaction. On any failure the transaction rolls
// back and the caller's cart must be left untouched so the user can retry.
// Orders are billed on the spot, so they land in completed status.
func Submit(db *gorm.DB, req SubmitRequest) (*models.Order, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	bill := ComputeBill(req.Lines, req.TaxRate)

	orderType := req.OrderType
	if orderType == "" {
		orderType = models.OrderTypeDineIn
	}

	order := models.Order{
		OrderNumber:   OrderNumber(time.Now()),
		TableNumber:   req.TableNumber,
		CustomerName:  req.CustomerName,
		Subtotal:      bill.Subtotal,
		TaxAmount:     bill.Tax,
		TotalAmount:   bill.Total,
		PaymentMethod: req.PaymentMethod,
		OrderType:     orderType,
		Status:        models.StatusCompleted,
		CreatedBy:     req.CreatedBy,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("persist order: %w", err)
		}

		for _, l := range req.Lines {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				TotalPrice: l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))),
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("persist order item: %w", err)
			}

			res := tx.Model(&models.MenuItem{}).
				Where("id = ?", l.MenuItemID).
				UpdateColumn("current_stock", gorm.Expr("current_stock - ?", l.Quantity))
			if res.Error != nil {
				return fmt.Errorf("decrement stock: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: id %d", ErrMenuItemNotFound, l.MenuItemID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
