package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret_key"

func protectedRouter(secret, audience string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(secret, audience), func(c *gin.Context) {
		id, err := GetPrincipalID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		email, err := GetPrincipalEmail(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "email": email})
	})
	return router
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, AudienceUser, 42, "user@example.com", UserTokenTTL)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, AudienceUser, token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, AudienceUser, 42, "user@example.com", UserTokenTTL)
	assert.NoError(t, err)

	_, err = ParseToken("other_secret", AudienceUser, token)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongAudience(t *testing.T) {
	adminToken, err := GenerateToken(testSecret, AudienceAdmin, 1, "admin@nkrtech.com", AdminTokenTTL)
	assert.NoError(t, err)

	_, err = ParseToken(testSecret, AudienceUser, adminToken)
	assert.Error(t, err, "Admin tokens must not validate as user tokens")

	userToken, err := GenerateToken(testSecret, AudienceUser, 2, "user@example.com", UserTokenTTL)
	assert.NoError(t, err)

	_, err = ParseToken(testSecret, AudienceAdmin, userToken)
	assert.Error(t, err, "User tokens must not validate as admin tokens")
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, AudienceUser, 42, "user@example.com", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(testSecret, AudienceUser, token)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	validToken, _ := GenerateToken(testSecret, AudienceUser, 42, "user@example.com", UserTokenTTL)
	expiredToken, _ := GenerateToken(testSecret, AudienceUser, 42, "user@example.com", -time.Minute)
	adminToken, _ := GenerateToken(testSecret, AudienceAdmin, 1, "admin@nkrtech.com", AdminTokenTTL)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{
			name:           "Valid token passes",
			token:          validToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing token is rejected",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage token is rejected",
			token:          "not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired token is rejected",
			token:          expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token of the other audience is rejected",
			token:          adminToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	router := protectedRouter(testSecret, AudienceUser)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := requestWithToken(router, tt.token)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequireAuthRejectsNonBearerHeader(t *testing.T) {
	router := protectedRouter(testSecret, AudienceUser)

	token, _ := GenerateToken(testSecret, AudienceUser, 42, "user@example.com", UserTokenTTL)
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token) // no "Bearer " prefix
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthExposesPrincipal(t *testing.T) {
	router := protectedRouter(testSecret, AudienceUser)

	token, _ := GenerateToken(testSecret, AudienceUser, 42, "user@example.com", UserTokenTTL)
	w := requestWithToken(router, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
	assert.Contains(t, w.Body.String(), `"email":"user@example.com"`)
}
