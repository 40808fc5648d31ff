package models

import (
	"time"
)

// User represents an authenticated end customer
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"not null" json:"name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Mobile         string     `json:"mobile"`            // optional, 10 digits, unique when set
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	ZipCode        string     `json:"zip_code"`
	Country        string     `json:"country"`
	Company        string     `json:"company"`
	Website        string     `json:"website"`
	ProfilePicture string     `json:"profile_picture"`
	GoogleID       string     `json:"-"` // external id for social sign-in
	IsVerified     bool       `gorm:"not null;default:false" json:"is_verified"`
	OTP            string     `json:"-"`
	OTPExpiry      *time.Time `json:"-"`
	ResetToken     string     `json:"-"`
	ResetExpiry    *time.Time `json:"-"`
	LastLogin      *time.Time `json:"last_login"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
