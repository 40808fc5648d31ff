package models

import (
	"time"
)

// Demo request status values
const (
	DemoStatusPending   = "pending"
	DemoStatusContacted = "contacted"
	DemoStatusCompleted = "completed"
	DemoStatusCancelled = "cancelled"
)

// ValidDemoStatuses lists every status an admin may set on a demo request
var ValidDemoStatuses = []string{
	DemoStatusPending,
	DemoStatusContacted,
	DemoStatusCompleted,
	DemoStatusCancelled,
}

// DemoRequest represents a request to see a product demo
type DemoRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Company   string    `gorm:"not null" json:"company"`
	Service   string    `gorm:"not null" json:"service"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the DemoRequest model
func (DemoRequest) TableName() string {
	return "demo_requests"
}

// IsValidDemoStatus reports whether s is one of the four legal demo statuses
func IsValidDemoStatus(s string) bool {
	for _, valid := range ValidDemoStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
