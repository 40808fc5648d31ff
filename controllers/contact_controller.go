package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/models"
	"github.com/nkr-tech/nkr-tech-api/services"
)

// ContactController handles public contact form submissions and their
// admin moderation. Contacts carry no status, so moderation is list
// and delete only.
type ContactController struct {
	db       *gorm.DB
	notifier *services.Notifier
}

// NewContactController creates a ContactController with its dependencies
func NewContactController(db *gorm.DB, notifier *services.Notifier) *ContactController {
	return &ContactController{db: db, notifier: notifier}
}

// CreateContactPayload represents the public contact form body
type CreateContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateContact handles POST /api/contact - public form submission
func (ctrl *ContactController) CreateContact(c *gin.Context) {
	var req CreateContactPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All fields are required",
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

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := ctrl.db.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send message",
		})
		return
	}

	// Send emails (don't wait)
	go ctrl.notifier.ContactReceived(contact)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully",
		"id":      contact.ID,
	})
}

// ListContacts handles GET /api/admin/contacts - newest first
func (ctrl *ContactController) ListContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := ctrl.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch contacts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contacts,
	})
}

// DeleteContact handles DELETE /api/admin/contacts/:id
func (ctrl *ContactController) DeleteContact(c *gin.Context) {
	result := ctrl.db.Delete(&models.Contact{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete contact",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Contact not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact deleted successfully",
	})
}
