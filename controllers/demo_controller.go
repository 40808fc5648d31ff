package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/models"
	"github.com/nkr-tech/nkr-tech-api/services"
)

// DemoController handles public demo request submissions and their
// admin moderation
type DemoController struct {
	db       *gorm.DB
	notifier *services.Notifier
}

// NewDemoController creates a DemoController with its dependencies
func NewDemoController(db *gorm.DB, notifier *services.Notifier) *DemoController {
	return &DemoController{db: db, notifier: notifier}
}

// CreateDemoRequestPayload represents the public demo form body
type CreateDemoRequestPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// CreateDemoRequest handles POST /api/demo - public form submission
func (ctrl *DemoController) CreateDemoRequest(c *gin.Context) {
	var req CreateDemoRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Company == "" || req.Service == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All required fields must be filled",
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

	demo := models.DemoRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Service: req.Service,
		Message: req.Message,
		Status:  models.DemoStatusPending,
	}

	if err := ctrl.db.Create(&demo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to submit demo request",
		})
		return
	}

	// Send emails (don't wait)
	go ctrl.notifier.DemoRequested(demo)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Demo request submitted successfully",
		"id":      demo.ID,
	})
}

// ListDemoRequests handles GET /api/admin/demo - newest first
func (ctrl *DemoController) ListDemoRequests(c *gin.Context) {
	var demos []models.DemoRequest
	if err := ctrl.db.Order("created_at DESC").Find(&demos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch demo requests",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    demos,
	})
}

// UpdateDemoRequestPayload carries the single mutable demo field
type UpdateDemoRequestPayload struct {
	Status string `json:"status"`
}

// UpdateDemoRequest handles PUT /api/admin/demo/:id - status only
func (ctrl *DemoController) UpdateDemoRequest(c *gin.Context) {
	var req UpdateDemoRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if !models.IsValidDemoStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid status. Valid statuses are: pending, contacted, completed, cancelled",
		})
		return
	}

	var demo models.DemoRequest
	if err := ctrl.db.First(&demo, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Demo request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update demo request",
		})
		return
	}

	if err := ctrl.db.Model(&demo).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update demo request",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Demo request updated successfully",
	})
}

// DeleteDemoRequest handles DELETE /api/admin/demo/:id
// Deleting an id that does not exist reports 404, never a silent success.
func (ctrl *DemoController) DeleteDemoRequest(c *gin.Context) {
	result := ctrl.db.Delete(&models.DemoRequest{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete demo request",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Demo request not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Demo request deleted successfully",
	})
}
