package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/models"
)

// StatsController serves the public marketing counters rendered on the
// landing page
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a StatsController with its dependencies
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// Fixed display values requested for the marketing page
const (
	clientSatisfactionPercent = 92
	activeClientCount         = 2
	yearsOfExperience         = 1
)

// GetStats handles GET /api/stats - public aggregate counters
func (ctrl *StatsController) GetStats(c *gin.Context) {
	var (
		totalOrders       int64
		completedProjects int64
		demoRequests      int64
		totalUsers        int64
	)

	if err := ctrl.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		ctrl.statsError(c)
		return
	}
	if err := ctrl.db.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted).Count(&completedProjects).Error; err != nil {
		ctrl.statsError(c)
		return
	}
	if err := ctrl.db.Model(&models.DemoRequest{}).Count(&demoRequests).Error; err != nil {
		ctrl.statsError(c)
		return
	}
	if err := ctrl.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		ctrl.statsError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"projectsCompleted":  completedProjects,
			"totalOrders":        totalOrders,
			"clientSatisfaction": clientSatisfactionPercent,
			"activeClients":      activeClientCount,
			"demoRequests":       demoRequests,
			"totalUsers":         totalUsers,
			"yearsOfExcellence":  yearsOfExperience,
		},
	})
}

func (ctrl *StatsController) statsError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Failed to fetch statistics",
	})
}
