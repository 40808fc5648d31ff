package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nkr-tech/nkr-tech-api/middleware"
)

// TestJWTSecret is the signing secret used across the test suites
const TestJWTSecret = "test_secret_key"

// IssueAdminToken signs a valid admin bearer token for tests
func IssueAdminToken(t *testing.T, id uint, email string) string {
	t.Helper()

	token, err := middleware.GenerateToken(TestJWTSecret, middleware.AudienceAdmin, id, email, middleware.AdminTokenTTL)
	if err != nil {
		t.Fatalf("Failed to issue admin token: %v", err)
	}
	return token
}

// IssueUserToken signs a valid user bearer token for tests
func IssueUserToken(t *testing.T, id uint, email string) string {
	t.Helper()

	token, err := middleware.GenerateToken(TestJWTSecret, middleware.AudienceUser, id, email, middleware.UserTokenTTL)
	if err != nil {
		t.Fatalf("Failed to issue user token: %v", err)
	}
	return token
}

// SetMockAuthContext attaches a principal to a Gin context, bypassing
// the token middleware for handler-level tests
func SetMockAuthContext(c *gin.Context, id uint, email string) {
	c.Set("principal_id", id)
	c.Set("principal_email", email)
}

// CreateTestContext creates a test Gin context backed by a recorder
func CreateTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}
