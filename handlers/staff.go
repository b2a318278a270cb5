package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/logger"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ListStaff returns all active staff members
func ListStaff(c *gin.Context) {
	var staff []models.Staff
	config.DB.Where("is_active = ?", true).Find(&staff)
	c.JSON(http.StatusOK, gin.H{"count": len(staff), "staff": staff})
}

type CreateStaffRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Role       string          `json:"role" binding:"required"`
	Phone      string          `json:"phone"`
	Salary     decimal.Decimal `json:"salary" binding:"required"`
	Shift      string          `json:"shift"`
}

// CreateStaff registers a new staff member
func CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.Staff
	if result := config.DB.Where("employee_id = ?", req.EmployeeID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Employee ID already registered"})
		return
	}

	staff := models.Staff{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Role:       req.Role,
		Phone:      req.Phone,
		Salary:     req.Salary,
		Shift:      req.Shift,
		IsActive:   true,
		JoinDate:   time.Now(),
	}
	if err := config.DB.Create(&staff).Error; err != nil {
		logger.Get().Error("Failed to create staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create staff"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Staff member added", "staff": staff})
}

// UpdateStaff updates staff details (owner only)
func UpdateStaff(c *gin.Context) {
	var staff models.Staff
	if err := config.DB.First(&staff, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Staff member not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{"name": true, "role": true, "phone": true, "salary": true, "shift": true, "is_active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&staff).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Staff member updated", "staff": staff})
}

// GetTodaysAttendance returns today's attendance records with staff details
func GetTodaysAttendance(c *gin.Context) {
	start, end := todayRange()
	var records []models.StaffAttendance
	config.DB.Preload("Staff").
		Where("date >= ? AND date < ?", start, end).
		Find(&records)
	c.JSON(http.StatusOK, gin.H{"count": len(records), "attendance": records})
}

type MarkAttendanceRequest struct {
	StaffID      uint       `json:"staff_id" binding:"required"`
	Status       string     `json:"status" binding:"required"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
}

// MarkAttendance records today's attendance for a staff member. Re-marking
// the same day replaces the earlier record, so there is at most one per
// staff member per day.
func MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Status != models.AttendancePresent && req.Status != models.AttendanceAbsent && req.Status != models.AttendanceHalfDay {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be: present, absent, or half-day"})
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, req.StaffID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Staff member not found"})
		return
	}

	start, end := todayRange()
	var record models.StaffAttendance
	err := config.DB.
		Where("staff_id = ? AND date >= ? AND date < ?", req.StaffID, start, end).
		First(&record).Error
	if err == nil {
		update := map[string]interface{}{
			"status":         req.Status,
			"check_in_time":  req.CheckInTime,
			"check_out_time": req.CheckOutTime,
		}
		config.DB.Model(&record).Updates(update)
		c.JSON(http.StatusOK, gin.H{"message": "Attendance updated", "attendance": record})
		return
	}

	record = models.StaffAttendance{
		StaffID:      req.StaffID,
		Date:         time.Now(),
		Status:       req.Status,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		logger.Get().Error("Failed to mark attendance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to mark attendance"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Attendance marked", "attendance": record})
}
