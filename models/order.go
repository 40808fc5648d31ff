package models

import (
	"time"
)

// Order status values. "pending" is the only legal value at creation;
// the rest are set through the admin moderation API.
const (
	OrderStatusPending    = "pending"
	OrderStatusApproved   = "approved"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatuses lists every status an admin may set on an order
var ValidOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Order represents a client's service request submitted through the
// public order form
type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClientName   string    `gorm:"not null" json:"client_name"`
	Email        string    `gorm:"not null;index" json:"email"` // soft link to users.email
	Phone        string    `gorm:"not null" json:"phone"`
	Company      string    `json:"company"`
	Service      string    `gorm:"not null" json:"service"`
	Budget       string    `gorm:"not null" json:"budget"`
	Timeline     string    `gorm:"not null" json:"timeline"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	Status       string    `gorm:"not null;default:'pending'" json:"status"`
	Progress     int       `gorm:"not null;default:0" json:"progress"` // 0-100
	AdminNote    string    `gorm:"type:text" json:"admin_note"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// IsValidOrderStatus reports whether s is one of the five legal order statuses
func IsValidOrderStatus(s string) bool {
	for _, valid := range ValidOrderStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
