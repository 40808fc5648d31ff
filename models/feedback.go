package models

import (
	"time"
)

// Rating bounds for feedback submissions, inclusive
const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

// Feedback represents a client testimonial candidate. Submissions
// start unapproved and become publicly visible only after an explicit
// admin approval.
type Feedback struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"not null" json:"email"`
	Company    string    `json:"company"`
	Rating     int       `gorm:"not null" json:"rating"` // 1-5
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsApproved bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedback"
}

// IsValidRating reports whether r falls inside the accepted 1-5 range
func IsValidRating(r int) bool {
	return r >= MinFeedbackRating && r <= MaxFeedbackRating
}
