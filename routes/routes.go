package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu (the QR digital menu reads these without auth)
		public.GET("/menu/categories", handlers.ListMenuCategories)
		public.GET("/menu/items", handlers.ListMenuItems)
		public.GET("/qr-tables", handlers.ListQRTables)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Menu management
		auth.POST("/menu/categories", handlers.CreateMenuCategory)
		auth.POST("/menu/items", handlers.CreateMenuItem)
		auth.PUT("/menu/items/:id/stock", handlers.UpdateMenuItemStock)

		// Inventory
		auth.GET("/inventory", handlers.ListInventory)
		auth.GET("/inventory/low-stock", handlers.ListLowStockInventory)
		auth.POST("/inventory", handlers.CreateInventoryItem)
		auth.POST("/inventory/:id/restock", handlers.RestockInventoryItem)

		// Orders
		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/today", handlers.GetTodaysOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
		auth.POST("/orders", handlers.PlaceOrder)
		auth.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		// Expenses
		auth.GET("/expenses", handlers.ListExpenses)
		auth.GET("/expenses/today", handlers.GetTodaysExpenses)
		auth.GET("/expenses/monthly/:year/:month", handlers.GetMonthlyExpenses)
		auth.POST("/expenses", handlers.CreateExpense)

		// Staff & attendance
		auth.GET("/staff", handlers.ListStaff)
		auth.POST("/staff", handlers.CreateStaff)
		auth.GET("/staff/attendance/today", handlers.GetTodaysAttendance)
		auth.POST("/staff/attendance", handlers.MarkAttendance)

		// Analytics & assistant
		auth.GET("/analytics/sales", handlers.GetSalesAnalytics)
		auth.POST("/assistant/chat", handlers.AssistantChat)
	}

	// ── Owner-only routes ──────────────────────────────────────────
	owner := r.Group("/api")
	owner.Use(middleware.AuthRequired(), middleware.OwnerRequired())
	{
		owner.PUT("/staff/:id", handlers.UpdateStaff)
		owner.POST("/qr-tables", handlers.CreateQRTable)
	}
}
