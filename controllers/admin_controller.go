package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/models"
)

// AdminController handles the dashboard statistics, user management,
// and the capability map for features that are not yet implemented
type AdminController struct {
	db *gorm.DB
}

// NewAdminController creates an AdminController with its dependencies
func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

// GetStats handles GET /api/admin/stats - aggregate dashboard counts
func (ctrl *AdminController) GetStats(c *gin.Context) {
	type countQuery struct {
		dest  *int64
		model interface{}
		where []interface{}
	}

	var (
		totalOrders       int64
		totalDemoRequests int64
		totalContacts     int64
		totalUsers        int64
		pendingOrders     int64
		pendingDemos      int64
	)

	queries := []countQuery{
		{&totalOrders, &models.Order{}, nil},
		{&totalDemoRequests, &models.DemoRequest{}, nil},
		{&totalContacts, &models.Contact{}, nil},
		{&totalUsers, &models.User{}, nil},
		{&pendingOrders, &models.Order{}, []interface{}{"status = ?", models.OrderStatusPending}},
		{&pendingDemos, &models.DemoRequest{}, []interface{}{"status = ?", models.DemoStatusPending}},
	}

	for _, q := range queries {
		query := ctrl.db.Model(q.model)
		if q.where != nil {
			query = query.Where(q.where[0], q.where[1:]...)
		}
		if err := query.Count(q.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to fetch statistics",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalOrders":       totalOrders,
			"totalDemoRequests": totalDemoRequests,
			"totalContacts":     totalContacts,
			"totalUsers":        totalUsers,
			"pendingOrders":     pendingOrders,
			"pendingDemos":      pendingDemos,
		},
	})
}

// ListUsers handles GET /api/admin/users - newest first. Password and
// token fields never serialize (see models.User json tags).
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := ctrl.db.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// UpdateUserPayload carries the admin-editable profile fields
type UpdateUserPayload struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
	Website *string `json:"website"`
}

// UpdateUser handles PUT /api/admin/users/:id - partial profile update
func (ctrl *AdminController) UpdateUser(c *gin.Context) {
	var req UpdateUserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		if !isValidEmail(*req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid email format",
			})
			return
		}
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.ZipCode != nil {
		updates["zip_code"] = *req.ZipCode
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No fields to update",
		})
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update user",
		})
		return
	}

	if err := ctrl.db.Model(&user).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "A user with this email already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
	})
}

// DeleteUser handles DELETE /api/admin/users/:id
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	result := ctrl.db.Delete(&models.User{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete user",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}

// GetCapabilities handles GET /api/admin/capabilities. The dashboard
// reads this map instead of probing endpoints that silently return
// empty arrays for features without backing tables.
func (ctrl *AdminController) GetCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"capabilities": gin.H{
			"notifications":     false,
			"payments":          false,
			"developerMessages": false,
		},
	})
}

// NotImplemented answers the routes whose backing tables do not exist
// yet (notifications, payments, developer messages)
func (ctrl *AdminController) NotImplemented(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"success": false,
		"message": "This capability is not implemented. Check /api/admin/capabilities",
	})
}

// isUniqueViolation detects duplicate-key errors from both PostgreSQL
// and SQLite without driver-specific error types
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
