package analytics

import (
	"testing"
	"time"

	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, number, total string, createdAt time.Time) models.Order {
	t.Helper()
	amount := decimal.RequireFromString(total)
	order := models.Order{
		OrderNumber: number,
		Subtotal:    amount,
		TaxAmount:   decimal.Zero,
		TotalAmount: amount,
		OrderType:   models.OrderTypeDineIn,
		Status:      models.StatusCompleted,
		CreatedAt:   createdAt,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func seedOrderItem(t *testing.T, db *gorm.DB, orderID, menuItemID uint, qty int, unitPrice string) {
	t.Helper()
	price := decimal.RequireFromString(unitPrice)
	item := models.OrderItem{
		OrderID:    orderID,
		MenuItemID: menuItemID,
		Quantity:   qty,
		UnitPrice:  price,
		TotalPrice: price.Mul(decimal.NewFromInt(int64(qty))),
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}
}

func TestComputeSalesTotals(t *testing.T) {
	db := testDB(t)
	day := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	seedOrder(t, db, "ORD-2026-AAAAA1", "100", day)
	seedOrder(t, db, "ORD-2026-AAAAA2", "200", day.Add(time.Hour))
	seedOrder(t, db, "ORD-2026-AAAAA3", "300", day.Add(2*time.Hour))
	// Outside the range, must not count.
	seedOrder(t, db, "ORD-2026-AAAAA4", "999", day.AddDate(0, 1, 0))

	report, err := ComputeSales(db, day.Add(-time.Hour), day.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("ComputeSales: %v", err)
	}

	if !report.TotalSales.Equal(decimal.RequireFromString("600")) {
		t.Errorf("total sales = %s, want 600", report.TotalSales)
	}
	if report.TotalOrders != 3 {
		t.Errorf("total orders = %d, want 3", report.TotalOrders)
	}
	if !report.AvgOrderValue.Equal(decimal.RequireFromString("200")) {
		t.Errorf("avg order value = %s, want 200", report.AvgOrderValue)
	}
}

func TestComputeSalesEmptyRange(t *testing.T) {
	db := testDB(t)

	report, err := ComputeSales(db, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ComputeSales: %v", err)
	}

	if report.TotalOrders != 0 {
		t.Errorf("total orders = %d, want 0", report.TotalOrders)
	}
	if !report.AvgOrderValue.IsZero() {
		t.Errorf("avg order value = %s, want 0 (no division by zero)", report.AvgOrderValue)
	}
	if len(report.TopSellingItems) != 0 {
		t.Errorf("top selling items = %v, want empty", report.TopSellingItems)
	}
}

func TestComputeSalesTopItems(t *testing.T) {
	db := testDB(t)
	day := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	dosa := models.MenuItem{Name: "Masala Dosa", Price: decimal.RequireFromString("60"), IsActive: true}
	idli := models.MenuItem{Name: "Idli", Price: decimal.RequireFromString("30"), IsActive: true}
	tea := models.MenuItem{Name: "Tea", Price: decimal.RequireFromString("15"), IsActive: true}
	for _, m := range []*models.MenuItem{&dosa, &idli, &tea} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed menu item: %v", err)
		}
	}

	o1 := seedOrder(t, db, "ORD-2026-BBBBB1", "100", day)
	o2 := seedOrder(t, db, "ORD-2026-BBBBB2", "100", day.Add(time.Hour))

	// Dosa 5 total, idli 3, tea 3 — idli wins the tie by lower id.
	seedOrderItem(t, db, o1.ID, dosa.ID, 2, "60")
	seedOrderItem(t, db, o2.ID, dosa.ID, 3, "60")
	seedOrderItem(t, db, o1.ID, idli.ID, 3, "30")
	seedOrderItem(t, db, o2.ID, tea.ID, 3, "15")

	report, err := ComputeSales(db, day.Add(-time.Hour), day.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("ComputeSales: %v", err)
	}

	if len(report.TopSellingItems) != 3 {
		t.Fatalf("expected 3 top items, got %d", len(report.TopSellingItems))
	}
	top := report.TopSellingItems
	if top[0].Name != "Masala Dosa" || top[0].Quantity != 5 {
		t.Errorf("top[0] = %+v, want Masala Dosa ×5", top[0])
	}
	if !top[0].Revenue.Equal(decimal.RequireFromString("300")) {
		t.Errorf("top[0] revenue = %s, want 300", top[0].Revenue)
	}
	if top[1].Name != "Idli" {
		t.Errorf("tie should break by menu item id: got %q before %q", top[1].Name, top[2].Name)
	}
	if top[2].Name != "Tea" {
		t.Errorf("top[2] = %+v, want Tea", top[2])
	}
}
