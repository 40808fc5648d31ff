package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkr-tech/nkr-tech-api/models"
)

func TestPublicStats(t *testing.T) {
	db := setupTestDB(t)
	ctrl := NewStatsController(db)

	db.Create(&models.Order{ClientName: "A", Email: "a@example.com", Phone: "1111111111", Service: "Web", Budget: "10000", Timeline: "1 month", Status: models.OrderStatusCompleted})
	db.Create(&models.Order{ClientName: "B", Email: "b@example.com", Phone: "2222222222", Service: "App", Budget: "20000", Timeline: "2 months", Status: models.OrderStatusPending})
	db.Create(&models.DemoRequest{Name: "C", Email: "c@example.com", Phone: "3333333333", Company: "C Co", Service: "Web", Status: models.DemoStatusPending})
	db.Create(&models.User{Name: "D", Email: "d@example.com", Password: "hash"})

	router := setupTestRouter()
	router.GET("/api/stats", ctrl.GetStats)

	w := performJSONRequest(router, http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	stats := response["stats"].(map[string]interface{})

	// Live counts
	assert.Equal(t, float64(1), stats["projectsCompleted"])
	assert.Equal(t, float64(2), stats["totalOrders"])
	assert.Equal(t, float64(1), stats["demoRequests"])
	assert.Equal(t, float64(1), stats["totalUsers"])

	// Fixed marketing values
	assert.Equal(t, float64(92), stats["clientSatisfaction"])
	assert.Equal(t, float64(2), stats["activeClients"])
	assert.Equal(t, float64(1), stats["yearsOfExcellence"])
}

func TestPublicStatsEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	ctrl := NewStatsController(db)

	router := setupTestRouter()
	router.GET("/api/stats", ctrl.GetStats)

	w := performJSONRequest(router, http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	stats := response["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["projectsCompleted"])
	assert.Equal(t, float64(92), stats["clientSatisfaction"])
}
