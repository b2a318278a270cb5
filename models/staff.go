package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceHalfDay = "half-day"
)

type Staff struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	EmployeeID string          `json:"employee_id" gorm:"uniqueIndex;not null"`
	Name       string          `json:"name" gorm:"not null"`
	Role       string          `json:"role" gorm:"not null"`
	Phone      string          `json:"phone"`
	Salary     decimal.Decimal `json:"salary" gorm:"type:decimal(10,2);not null"`
	Shift      string          `json:"shift"`
	IsActive   bool            `json:"is_active" gorm:"default:true"`
	JoinDate   time.Time       `json:"join_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

// StaffAttendance holds at most one record per staff member per day;
// re-marking the same day replaces the earlier record.
type StaffAttendance struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	StaffID      uint       `json:"staff_id" gorm:"not null;index"`
	Staff        *Staff     `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Date         time.Time  `json:"date" gorm:"not null"`
	Status       string     `json:"status" gorm:"not null"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	CreatedAt    time.Time  `json:"created_at"`
}
