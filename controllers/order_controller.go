package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/middleware"
	"github.com/nkr-tech/nkr-tech-api/models"
	"github.com/nkr-tech/nkr-tech-api/services"
)

// OrderController handles public order submissions, the customer's own
// order listing, and admin moderation of orders
type OrderController struct {
	db       *gorm.DB
	notifier *services.Notifier
}

// NewOrderController creates an OrderController with its dependencies
func NewOrderController(db *gorm.DB, notifier *services.Notifier) *OrderController {
	return &OrderController{db: db, notifier: notifier}
}

// CreateOrderPayload represents the public order form body
type CreateOrderPayload struct {
	ClientName   string `json:"client_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Service      string `json:"service"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	Requirements string `json:"requirements"`
}

// CreateOrder handles POST /api/orders - public form submission
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req CreateOrderPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.ClientName == "" || req.Email == "" || req.Phone == "" || req.Service == "" || req.Budget == "" || req.Timeline == "" {
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

	order := models.Order{
		ClientName:   req.ClientName,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Service:      req.Service,
		Budget:       req.Budget,
		Timeline:     req.Timeline,
		Requirements: req.Requirements,
		Status:       models.OrderStatusPending,
		Progress:     0,
	}

	if err := ctrl.db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to place order",
		})
		return
	}

	// Send emails (don't wait)
	go ctrl.notifier.OrderSubmitted(order)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"id":      order.ID,
	})
}

// ListOrders handles GET /api/admin/orders - newest first
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := ctrl.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// ListMyOrders handles GET /api/user/my-orders - orders associated to the
// authenticated user by matching email (soft link, no foreign key)
func (ctrl *OrderController) ListMyOrders(c *gin.Context) {
	userID, err := middleware.GetPrincipalID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Could not extract user information",
		})
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	var orders []models.Order
	if err := ctrl.db.Where("email = ?", user.Email).Order("created_at DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}

// UpdateOrderPayload carries the optional moderation fields. Pointers
// distinguish "omitted" from zero values so partial updates leave
// untouched fields alone.
type UpdateOrderPayload struct {
	Status    *string `json:"status"`
	Progress  *int    `json:"progress"`
	AdminNote *string `json:"admin_note"`
}

// UpdateOrder handles PUT /api/admin/orders/:id - partial update of
// status, progress, and admin note. At least one field is required.
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	var req UpdateOrderPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	updates := make(map[string]interface{})

	if req.Status != nil && *req.Status != "" {
		if !models.IsValidOrderStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid status: \"" + *req.Status + "\". Valid statuses are: " + strings.Join(models.ValidOrderStatuses, ", "),
			})
			return
		}
		updates["status"] = *req.Status
	}

	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Progress must be between 0 and 100",
			})
			return
		}
		updates["progress"] = *req.Progress
	}

	if req.AdminNote != nil {
		updates["admin_note"] = *req.AdminNote
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No fields to update. Please provide status, progress, or admin_note",
		})
		return
	}

	var order models.Order
	if err := ctrl.db.First(&order, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update order",
		})
		return
	}

	if err := ctrl.db.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order updated successfully",
	})
}

// DeleteOrder handles DELETE /api/admin/orders/:id
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	result := ctrl.db.Delete(&models.Order{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete order",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted successfully",
	})
}
