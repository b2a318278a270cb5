package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/logger"
	"restaurant-pos-api/models"
	"restaurant-pos-api/stock"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ListInventory returns all raw-material items with their stock status
func ListInventory(c *gin.Context) {
	var items []models.InventoryItem
	query := config.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Find(&items)

	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, gin.H{
			"item":         item,
			"stock_status": stock.Classify(item.CurrentStock, item.MinLevel).String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": out})
}

// ListLowStockInventory returns items at or below their minimum level,
// including those fully out of stock
func ListLowStockInventory(c *gin.Context) {
	var items []models.InventoryItem
	config.DB.Find(&items)

	low := []models.InventoryItem{}
	for _, item := range items {
		if stock.Classify(item.CurrentStock, item.MinLevel) != stock.InStock {
			low = append(low, item)
		}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(low), "items": low})
}

type CreateInventoryItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	NameTamil    string          `json:"name_tamil"`
	Category     string          `json:"category" binding:"required"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Unit         string          `json:"unit" binding:"required"`
	MinLevel     decimal.Decimal `json:"min_level" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateInventoryItem registers a new raw-material item
func CreateInventoryItem(c *gin.Context) {
	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.CurrentStock.Sign() < 0 || req.MinLevel.Sign() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Stock levels cannot be negative"})
		return
	}

	item := models.InventoryItem{
		Name:         req.Name,
		NameTamil:    req.NameTamil,
		Category:     req.Category,
		CurrentStock: req.CurrentStock,
		Unit:         req.Unit,
		MinLevel:     req.MinLevel,
		UnitPrice:    req.UnitPrice,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		logger.Get().Error("Failed to create inventory item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create inventory item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Inventory item added", "item": item})
}

type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// RestockInventoryItem adds the given quantity to an item's current stock and
// stamps the restock time
func RestockInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Inventory item not found"})
		return
	}

	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Quantity.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Restock quantity must be positive"})
		return
	}

	now := time.Now()
	newStock := item.CurrentStock.Add(req.Quantity)
	if err := config.DB.Model(&item).Updates(map[string]interface{}{
		"current_stock":  newStock,
		"last_restocked": now,
	}).Error; err != nil {
		logger.Get().Error("Failed to restock inventory item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to restock inventory item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Item restocked",
		"item_id":      item.ID,
		"new_stock":    newStock,
		"stock_status": stock.Classify(newStock, item.MinLevel).String(),
	})
}
