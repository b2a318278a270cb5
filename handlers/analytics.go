package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/analytics"
	"restaurant-pos-api/config"
	"restaurant-pos-api/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetSalesAnalytics summarizes orders over ?startDate&endDate (YYYY-MM-DD,
// inclusive). Missing bounds default to today.
func GetSalesAnalytics(c *gin.Context) {
	start, end := todayRange()
	end = end.Add(-time.Nanosecond)

	if raw := c.Query("startDate"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid startDate, expected YYYY-MM-DD"})
			return
		}
		start = parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid endDate, expected YYYY-MM-DD"})
			return
		}
		// Inclusive through the end of that day.
		end = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	report, err := analytics.ComputeSales(config.DB, start, end)
	if err != nil {
		logger.Get().Error("Failed to compute sales analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch sales analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_sales":       report.TotalSales,
		"total_orders":      report.TotalOrders,
		"avg_order_value":   report.AvgOrderValue,
		"top_selling_items": report.TopSellingItems,
	})
}
