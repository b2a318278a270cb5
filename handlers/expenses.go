package handlers

import (
	"net/http"
	"strconv"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/logger"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ListExpenses returns recent expenses, newest first
func ListExpenses(c *gin.Context) {
	var expenses []models.Expense
	query := config.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Order("date desc").Limit(50).Find(&expenses)
	c.JSON(http.StatusOK, gin.H{"count": len(expenses), "expenses": expenses})
}

// GetTodaysExpenses returns expenses dated today
func GetTodaysExpenses(c *gin.Context) {
	start, end := todayRange()
	var expenses []models.Expense
	config.DB.Where("date >= ? AND date < ?", start, end).Find(&expenses)
	c.JSON(http.StatusOK, gin.H{"count": len(expenses), "expenses": expenses})
}

// GetMonthlyExpenses returns all expenses within the given calendar month
func GetMonthlyExpenses(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month"})
		return
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var expenses []models.Expense
	config.DB.Where("date >= ? AND date < ?", start, end).Order("date").Find(&expenses)

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(expenses),
		"total":    total,
		"expenses": expenses,
	})
}

type CreateExpenseRequest struct {
	Description      string          `json:"description" binding:"required"`
	DescriptionTamil string          `json:"description_tamil"`
	Category         string          `json:"category" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod    string          `json:"payment_method" binding:"required"`
	Date             time.Time       `json:"date" binding:"required"`
}

// CreateExpense records a new expense for the logged-in user
func CreateExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Amount.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Amount must be greater than zero"})
		return
	}

	expense := models.Expense{
		Description:      req.Description,
		DescriptionTamil: req.DescriptionTamil,
		Category:         req.Category,
		Amount:           req.Amount,
		PaymentMethod:    req.PaymentMethod,
		Date:             req.Date,
		CreatedBy:        userID,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		logger.Get().Error("Failed to create expense", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create expense"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Expense recorded", "expense": expense})
}
