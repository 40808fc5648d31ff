package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Principal audiences. Admin and user tokens are signed with the same
// secret but are not interchangeable: the middleware checks the
// audience before any handler runs.
const (
	AudienceAdmin = "admin"
	AudienceUser  = "user"
)

// Token lifetimes per principal type
const (
	AdminTokenTTL = 24 * time.Hour
	UserTokenTTL  = 7 * 24 * time.Hour
)

// Claims is the payload embedded in every bearer token
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 bearer token for the given
// principal id and email, scoped to one audience
func GenerateToken(secret, audience string, id uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id), 10),
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a signed token against the secret and expected
// audience, returning its claims
func ParseToken(secret, audience, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &AuthError{Code: "INVALID_TOKEN", Message: "Unexpected signing method"}
		}
		return []byte(secret), nil
	}, jwt.WithAudience(audience))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, &AuthError{Code: "INVALID_TOKEN", Message: "Token is not valid"}
	}
	return claims, nil
}

// RequireAuth is a middleware that checks the Authorization header for
// a valid bearer token of the given audience. On success the principal
// id and email are attached to the request context.
func RequireAuth(secret, audience string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. No token provided.",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := ParseToken(secret, audience, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		subject, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("principal_id", uint(subject))
		c.Set("principal_email", claims.Email)
		c.Next()
	}
}

// GetPrincipalID extracts the authenticated principal id from the Gin context
func GetPrincipalID(c *gin.Context) (uint, error) {
	value, exists := c.Get("principal_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_PRINCIPAL", Message: "Principal ID not found in context"}
	}

	id, ok := value.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_PRINCIPAL", Message: "Principal ID is not a uint"}
	}

	return id, nil
}

// GetPrincipalEmail extracts the authenticated principal's email from the Gin context
func GetPrincipalEmail(c *gin.Context) (string, error) {
	value, exists := c.Get("principal_email")
	if !exists {
		return "", &AuthError{Code: "MISSING_PRINCIPAL", Message: "Principal email not found in context"}
	}

	email, ok := value.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_PRINCIPAL", Message: "Principal email is not a string"}
	}

	return email, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
