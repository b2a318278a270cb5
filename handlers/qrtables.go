package handlers

import (
	"fmt"
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/logger"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListQRTables returns all active QR tables (public, the digital menu reads it)
func ListQRTables(c *gin.Context) {
	var tables []models.QRTable
	config.DB.Where("is_active = ?", true).Order("table_number").Find(&tables)
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

type CreateQRTableRequest struct {
	TableNumber int `json:"table_number" binding:"required,min=1"`
}

// CreateQRTable registers a table and derives its QR payload: the menu URL
// with the table number. The image itself is rendered client-side.
func CreateQRTable(c *gin.Context) {
	var req CreateQRTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.QRTable
	if result := config.DB.Where("table_number = ?", req.TableNumber).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Table number already registered"})
		return
	}

	table := models.QRTable{
		TableNumber: req.TableNumber,
		QRCode:      fmt.Sprintf("%s/menu?table=%d", config.QRBaseURL(), req.TableNumber),
		IsActive:    true,
	}
	if err := config.DB.Create(&table).Error; err != nil {
		logger.Get().Error("Failed to create QR table", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create QR table"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "QR table created", "table": table})
}
