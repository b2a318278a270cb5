package handlers

import (
	"errors"
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/logger"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/pos"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlaceOrderRequest struct {
	TableNumber   *int   `json:"table_number"`
	CustomerName  string `json:"customer_name"`
	PaymentMethod string `json:"payment_method"`
	OrderType     string `json:"order_type"`
	Items         []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required"`
}

// PlaceOrder bills an in-person order: persists it with its line items and
// decrements menu stock in one transaction. On failure nothing is written,
// so the client keeps its cart and can retry.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Build the cart, snapshotting each item's name and price and merging
	// duplicate ids into one line.
	cart := pos.NewCart()
	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
			return
		}
		if !menuItem.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Menu item '" + menuItem.Name + "' is not available"})
			return
		}
		cart.AddItem(menuItem)
		if reqItem.Quantity > 1 {
			cart.ChangeQuantity(menuItem.ID, reqItem.Quantity-1)
		}
	}

	order, err := pos.Submit(config.DB, pos.SubmitRequest{
		Lines:         cart.Lines(),
		TableNumber:   req.TableNumber,
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
		OrderType:     req.OrderType,
		CreatedBy:     userID,
		TaxRate:       config.TaxRate(),
	})
	if err != nil {
		switch {
		case errors.Is(err, pos.ErrEmptyOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Order has no items"})
		case errors.Is(err, pos.ErrMenuItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		default:
			logger.Get().Error("Failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
		}
		return
	}

	config.DB.Preload("Items.MenuItem").First(order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// ListOrders returns recent orders, newest first
func ListOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Items").Order("created_at desc").Limit(50).Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetTodaysOrders returns orders created since local midnight
func GetTodaysOrders(c *gin.Context) {
	start, end := todayRange()
	var orders []models.Order
	config.DB.Preload("Items").
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order with its items
func GetOrderDetail(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").Preload("Creator").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus transitions a pending order to completed or cancelled
func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":           "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", req.Status)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}
