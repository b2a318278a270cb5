package models

import "time"

// QRTable maps a physical table to the QR payload printed on it. The payload
// is the digital-menu URL with the table number baked in; rendering the
// actual QR image is the client's job.
type QRTable struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TableNumber int       `json:"table_number" gorm:"uniqueIndex;not null"`
	QRCode      string    `json:"qr_code" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}
