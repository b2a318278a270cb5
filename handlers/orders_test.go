package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db

	r := gin.New()
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/orders", PlaceOrder)
		auth.GET("/orders/today", GetTodaysOrders)
		auth.GET("/analytics/sales", GetSalesAnalytics)
		auth.POST("/staff/attendance", MarkAttendance)
		auth.POST("/assistant/chat", AssistantChat)
	}
	return r
}

func staffToken(t *testing.T) string {
	t.Helper()
	user := models.User{ID: 1, Email: "cashier@test.local", Role: models.RoleStaff}
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderRequiresAuth(t *testing.T) {
	r := setupTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/orders", "", gin.H{})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestPlaceOrderFlow(t *testing.T) {
	r := setupTestRouter(t)
	token := staffToken(t)

	paneer := models.MenuItem{Name: "Paneer Butter Masala", Price: decimal.RequireFromString("100.00"), CurrentStock: 10, MinStockLevel: 5, IsActive: true}
	lassi := models.MenuItem{Name: "Sweet Lassi", Price: decimal.RequireFromString("50.00"), CurrentStock: 5, MinStockLevel: 2, IsActive: true}
	for _, m := range []*models.MenuItem{&paneer, &lassi} {
		if err := config.DB.Create(m).Error; err != nil {
			t.Fatalf("seed menu item: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{
		"payment_method": "cash",
		"order_type":     "dine-in",
		"items": []gin.H{
			{"menu_item_id": paneer.ID, "quantity": 2},
			{"menu_item_id": lassi.ID, "quantity": 1},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Order models.Order `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Order.Subtotal.Equal(decimal.RequireFromString("250")) {
		t.Errorf("subtotal = %s, want 250", resp.Order.Subtotal)
	}
	if !resp.Order.TaxAmount.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("tax = %s, want 12.5", resp.Order.TaxAmount)
	}
	if !resp.Order.TotalAmount.Equal(decimal.RequireFromString("262.5")) {
		t.Errorf("total = %s, want 262.5", resp.Order.TotalAmount)
	}
	if resp.Order.Status != models.StatusCompleted {
		t.Errorf("status = %s, want completed", resp.Order.Status)
	}
	if len(resp.Order.Items) != 2 {
		t.Errorf("expected 2 order items, got %d", len(resp.Order.Items))
	}

	// Stock decremented per line.
	var reloaded models.MenuItem
	config.DB.First(&reloaded, paneer.ID)
	if reloaded.CurrentStock != 8 {
		t.Errorf("paneer stock = %d, want 8", reloaded.CurrentStock)
	}
	var reloadedLassi models.MenuItem
	config.DB.First(&reloadedLassi, lassi.ID)
	if reloadedLassi.CurrentStock != 4 {
		t.Errorf("lassi stock = %d, want 4", reloadedLassi.CurrentStock)
	}

	// The order shows up in today's listing.
	w = doJSON(t, r, http.MethodGet, "/api/orders/today", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("today status = %d, want 200", w.Code)
	}
	var today struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &today); err != nil {
		t.Fatalf("decode today response: %v", err)
	}
	if today.Count != 1 {
		t.Errorf("today count = %d, want 1", today.Count)
	}

	// And in the analytics for today.
	w = doJSON(t, r, http.MethodGet, "/api/analytics/sales", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("analytics status = %d, want 200", w.Code)
	}
	var report struct {
		TotalOrders int             `json:"total_orders"`
		TotalSales  decimal.Decimal `json:"total_sales"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode analytics response: %v", err)
	}
	if report.TotalOrders != 1 {
		t.Errorf("analytics total orders = %d, want 1", report.TotalOrders)
	}
	if !report.TotalSales.Equal(decimal.RequireFromString("262.5")) {
		t.Errorf("analytics total sales = %s, want 262.5", report.TotalSales)
	}
}

func TestPlaceOrderEmptyRejected(t *testing.T) {
	r := setupTestRouter(t)
	token := staffToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{
		"payment_method": "cash",
		"items":          []gin.H{},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("empty order must not persist anything, found %d orders", count)
	}
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	r := setupTestRouter(t)
	token := staffToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{
		"items": []gin.H{{"menu_item_id": 42, "quantity": 1}},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
