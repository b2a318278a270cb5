package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/logger"
	"restaurant-pos-api/models"
	"restaurant-pos-api/stock"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ── Categories ──────────────────────────────────────────────────────────────

// ListMenuCategories returns all active categories ordered for display (public)
func ListMenuCategories(c *gin.Context) {
	var categories []models.MenuCategory
	config.DB.Where("is_active = ?", true).Order("display_order").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

type CreateMenuCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	NameTamil    string `json:"name_tamil"`
	DisplayOrder int    `json:"display_order"`
}

// CreateMenuCategory adds a new menu category
func CreateMenuCategory(c *gin.Context) {
	var req CreateMenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	category := models.MenuCategory{
		Name:         req.Name,
		NameTamil:    req.NameTamil,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		logger.Get().Error("Failed to create menu category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create menu category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// ── Menu items ──────────────────────────────────────────────────────────────

// ListMenuItems returns active menu items with their stock status (public)
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Preload("Category").Where("is_active = ?", true)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	query.Find(&items)

	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, gin.H{
			"item":         item,
			"stock_status": stock.ClassifyInt(item.CurrentStock, item.MinStockLevel).String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": out})
}

type CreateMenuItemRequest struct {
	Name             string          `json:"name" binding:"required"`
	NameTamil        string          `json:"name_tamil"`
	Description      string          `json:"description"`
	DescriptionTamil string          `json:"description_tamil"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	CategoryID       *uint           `json:"category_id"`
	CurrentStock     int             `json:"current_stock"`
	MinStockLevel    int             `json:"min_stock_level"`
	Emoji            string          `json:"emoji"`
}

// CreateMenuItem adds a new dish to the menu
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Price.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be greater than zero"})
		return
	}

	if req.CategoryID != nil {
		var category models.MenuCategory
		if err := config.DB.First(&category, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
	}

	minLevel := req.MinStockLevel
	if minLevel == 0 {
		minLevel = 5
	}

	item := models.MenuItem{
		Name:             req.Name,
		NameTamil:        req.NameTamil,
		Description:      req.Description,
		DescriptionTamil: req.DescriptionTamil,
		Price:            req.Price,
		CategoryID:       req.CategoryID,
		CurrentStock:     req.CurrentStock,
		MinStockLevel:    minLevel,
		Emoji:            req.Emoji,
		IsActive:         true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		logger.Get().Error("Failed to create menu item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

type UpdateMenuItemStockRequest struct {
	CurrentStock *int `json:"current_stock" binding:"required"`
}

// UpdateMenuItemStock sets a menu item's stock count (restock / correction)
func UpdateMenuItemStock(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}

	var req UpdateMenuItemStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if *req.CurrentStock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Stock cannot be negative"})
		return
	}

	config.DB.Model(&item).Update("current_stock", *req.CurrentStock)
	c.JSON(http.StatusOK, gin.H{
		"message":      "Stock updated",
		"item_id":      item.ID,
		"stock_status": stock.ClassifyInt(*req.CurrentStock, item.MinStockLevel).String(),
	})
}
