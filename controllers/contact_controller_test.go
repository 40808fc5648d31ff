package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nkr-tech/nkr-tech-api/models"
)

func TestCreateContact(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     map[string]interface{}
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "Successfully send message",
			requestBody: map[string]interface{}{
				"name":    "Priya Sharma",
				"email":   "priya@example.com",
				"message": "Do you build mobile apps?",
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "Message sent successfully",
		},
		{
			name: "Fail with missing message",
			requestBody: map[string]interface{}{
				"name":  "Priya Sharma",
				"email": "priya@example.com",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "All fields are required",
		},
		{
			name: "Fail with missing name",
			requestBody: map[string]interface{}{
				"email":   "priya@example.com",
				"message": "Hello",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "All fields are required",
		},
		{
			name: "Fail with invalid email",
			requestBody: map[string]interface{}{
				"name":    "Priya Sharma",
				"email":   "priya@",
				"message": "Hello",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			notifier, _ := newTestNotifier()
			ctrl := NewContactController(db, notifier)

			router := setupTestRouter()
			router.POST("/api/contact", ctrl.CreateContact)

			w := performJSONRequest(router, http.MethodPost, "/api/contact", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := parseResponse(t, w)
			assert.Equal(t, tt.expectedMessage, response["message"])

			var count int64
			db.Model(&models.Contact{}).Count(&count)
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, int64(1), count)
			} else {
				assert.Equal(t, int64(0), count)
			}
		})
	}
}

func TestListContacts(t *testing.T) {
	db := setupTestDB(t)
	notifier, _ := newTestNotifier()
	ctrl := NewContactController(db, notifier)

	old := models.Contact{Name: "Old", Email: "old@example.com", Message: "first"}
	db.Create(&old)
	db.Model(&old).Update("created_at", time.Now().Add(-time.Hour))
	recent := models.Contact{Name: "Recent", Email: "recent@example.com", Message: "second"}
	db.Create(&recent)

	router := setupTestRouter()
	router.GET("/api/admin/contacts", ctrl.ListContacts)

	w := performJSONRequest(router, http.MethodGet, "/api/admin/contacts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	assert.Equal(t, "Recent", data[0].(map[string]interface{})["name"])
}

func TestDeleteContact(t *testing.T) {
	db := setupTestDB(t)
	notifier, _ := newTestNotifier()
	ctrl := NewContactController(db, notifier)

	contact := models.Contact{Name: "Priya", Email: "priya@example.com", Message: "Hello"}
	db.Create(&contact)

	router := setupTestRouter()
	router.DELETE("/api/admin/contacts/:id", ctrl.DeleteContact)

	w := performJSONRequest(router, http.MethodDelete, "/api/admin/contacts/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSONRequest(router, http.MethodDelete, "/api/admin/contacts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	response := parseResponse(t, w)
	assert.Equal(t, "Contact not found", response["message"])
}
