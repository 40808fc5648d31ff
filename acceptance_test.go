package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestServerStartup verifies the full application router assembles
func TestServerStartup(t *testing.T) {
	router := buildTestRouter(t)
	assert.NotNil(t, router, "Router should be initialized")
}

// TestVisitorJourneyAcceptance simulates a realistic visitor session
// against a live server: browse stats, request a demo, leave feedback
func TestVisitorJourneyAcceptance(t *testing.T) {
	router := buildTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()
	client := server.Client()

	post := func(path string, body map[string]interface{}) (int, map[string]interface{}) {
		raw, _ := json.Marshal(body)
		resp, err := client.Post(server.URL+path, "application/json", bytes.NewReader(raw))
		assert.NoError(t, err)
		defer resp.Body.Close()
		var decoded map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		return resp.StatusCode, decoded
	}

	// Landing page stats load
	resp, err := client.Get(server.URL + "/api/stats")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Demo request goes through
	status, response := post("/api/demo", map[string]interface{}{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"phone":   "9876543210",
		"company": "Kumar Traders",
		"service": "Web Development",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Demo request submitted successfully", response["message"])

	// Feedback lands but is not yet public
	status, _ = post("/api/feedback", map[string]interface{}{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"rating":  5,
		"message": "Smooth demo process",
	})
	assert.Equal(t, http.StatusCreated, status)

	resp, err = client.Get(server.URL + "/api/feedback")
	assert.NoError(t, err)
	var listing map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	resp.Body.Close()
	assert.Empty(t, listing["feedback"], "Unapproved feedback must stay private")
}
