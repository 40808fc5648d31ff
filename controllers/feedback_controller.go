package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/models"
	"github.com/nkr-tech/nkr-tech-api/services"
)

// FeedbackController handles public testimonial submissions, the
// public approved list, and admin moderation
type FeedbackController struct {
	db       *gorm.DB
	notifier *services.Notifier
}

// NewFeedbackController creates a FeedbackController with its dependencies
func NewFeedbackController(db *gorm.DB, notifier *services.Notifier) *FeedbackController {
	return &FeedbackController{db: db, notifier: notifier}
}

// SubmitFeedbackPayload represents the public feedback form body.
// Rating is a pointer so a missing rating is distinguishable from 0.
type SubmitFeedbackPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Rating  *int   `json:"rating"`
	Message string `json:"message"`
}

// SubmitFeedback handles POST /api/feedback - public form submission.
// New feedback always starts unapproved.
func (ctrl *FeedbackController) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Name == "" || req.Email == "" || req.Rating == nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Name, email, rating, and message are required",
		})
		return
	}

	if !isValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid email format",
		})
		return
	}

	if !models.IsValidRating(*req.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Rating must be between 1 and 5",
		})
		return
	}

	feedback := models.Feedback{
		Name:       req.Name,
		Email:      req.Email,
		Company:    req.Company,
		Rating:     *req.Rating,
		Message:    req.Message,
		IsApproved: false,
	}

	if err := ctrl.db.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to submit feedback",
		})
		return
	}

	// Send emails (don't wait)
	go ctrl.notifier.FeedbackReceived(feedback)

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Feedback submitted successfully",
		"feedbackId": feedback.ID,
	})
}

// ListApprovedFeedback handles GET /api/feedback - approved
// testimonials for public display
func (ctrl *FeedbackController) ListApprovedFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := ctrl.db.Where("is_approved = ?", true).Order("created_at DESC").Find(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch feedback",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"feedback": feedback,
	})
}

// ListFeedback handles GET /api/admin/feedback - all feedback,
// approved or not
func (ctrl *FeedbackController) ListFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := ctrl.db.Order("created_at DESC").Find(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch feedback",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"feedback": feedback,
	})
}

// ApproveFeedback handles PUT /api/admin/feedback/:id/approve.
// Approving an already-approved entry succeeds with no state change.
func (ctrl *FeedbackController) ApproveFeedback(c *gin.Context) {
	var feedback models.Feedback
	if err := ctrl.db.First(&feedback, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Feedback not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to approve feedback",
		})
		return
	}

	if !feedback.IsApproved {
		if err := ctrl.db.Model(&feedback).Update("is_approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to approve feedback",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Feedback approved successfully",
	})
}

// DeleteFeedback handles DELETE /api/admin/feedback/:id
func (ctrl *FeedbackController) DeleteFeedback(c *gin.Context) {
	result := ctrl.db.Delete(&models.Feedback{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete feedback",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Feedback not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Feedback deleted successfully",
	})
}
