package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/middleware"
	"github.com/nkr-tech/nkr-tech-api/models"
	"github.com/nkr-tech/nkr-tech-api/services"
)

// Minimum accepted password length for signup, change, and reset
const minPasswordLength = 6

// UserAuthController handles customer signup, login, social sign-in,
// the password lifecycle, and the profile endpoints
type UserAuthController struct {
	db           *gorm.DB
	jwtSecret    string
	notifier     *services.Notifier
	resetBaseURL string
}

// NewUserAuthController creates a UserAuthController with its dependencies
func NewUserAuthController(db *gorm.DB, jwtSecret string, notifier *services.Notifier, resetBaseURL string) *UserAuthController {
	return &UserAuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		notifier:     notifier,
		resetBaseURL: resetBaseURL,
	}
}

// SignupPayload represents the signup body
type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/user/signup
func (ctrl *UserAuthController) Signup(c *gin.Context) {
	var req SignupPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
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

	if len(req.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Password must be at least 6 characters",
		})
		return
	}

	// Check if user already exists
	var existing models.User
	if err := ctrl.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email already registered",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create account",
		})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	}

	if err := ctrl.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create account",
		})
		return
	}

	token, err := middleware.GenerateToken(ctrl.jwtSecret, middleware.AudienceUser, user.ID, user.Email, middleware.UserTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create account",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// LoginPayload represents the login body
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/user/login. Failures use one generic message
// so the endpoint cannot be used to enumerate accounts.
func (ctrl *UserAuthController) Login(c *gin.Context) {
	var req LoginPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password are required",
		})
		return
	}

	var user models.User
	if err := ctrl.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid email or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid email or password",
		})
		return
	}

	now := time.Now()
	if err := ctrl.db.Model(&user).Update("last_login", &now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Login failed",
		})
		return
	}

	token, err := middleware.GenerateToken(ctrl.jwtSecret, middleware.AudienceUser, user.ID, user.Email, middleware.UserTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Login failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"profile_picture": user.ProfilePicture,
		},
	})
}

// GoogleSignInPayload represents the social sign-in body. The mobile
// number is mandatory for accounts created through this flow.
type GoogleSignInPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	GoogleID       string `json:"googleId"`
	ProfilePicture string `json:"profilePicture"`
}

// GoogleSignIn handles POST /api/user/google-signin. An existing user
// matching email or Google id is logged in; otherwise a pre-verified
// account is created with a random internal password.
func (ctrl *UserAuthController) GoogleSignIn(c *gin.Context) {
	var req GoogleSignInPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Email == "" || req.GoogleID == "" || req.Mobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email, mobile number, and Google ID are required",
		})
		return
	}

	if !isValidMobile(req.Mobile) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid mobile number. Please enter 10 digits.",
		})
		return
	}

	// Existing account by email or Google id logs straight in
	var user models.User
	err := ctrl.db.Where("email = ? OR google_id = ?", req.Email, req.GoogleID).First(&user).Error
	if err == nil {
		now := time.Now()
		if err := ctrl.db.Model(&user).Update("last_login", &now).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Google sign-in failed",
			})
			return
		}

		token, err := middleware.GenerateToken(ctrl.jwtSecret, middleware.AudienceUser, user.ID, user.Email, middleware.UserTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Google sign-in failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"token":   token,
			"user": gin.H{
				"id":              user.ID,
				"name":            user.Name,
				"email":           user.Email,
				"mobile":          user.Mobile,
				"profile_picture": user.ProfilePicture,
			},
		})
		return
	}

	// New account: mobile must not be claimed by someone else
	var existingMobile models.User
	if err := ctrl.db.Where("mobile = ?", req.Mobile).First(&existingMobile).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Mobile number already registered",
		})
		return
	}

	// Random internal password, never disclosed
	internalPassword, err := services.GenerateInternalPassword()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Google sign-in failed",
		})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(internalPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Google sign-in failed",
		})
		return
	}

	user = models.User{
		Name:           req.Name,
		Email:          req.Email,
		Mobile:         req.Mobile,
		GoogleID:       req.GoogleID,
		ProfilePicture: req.ProfilePicture,
		Password:       string(hash),
		IsVerified:     true,
	}

	if err := ctrl.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Google sign-in failed",
		})
		return
	}

	token, err := middleware.GenerateToken(ctrl.jwtSecret, middleware.AudienceUser, user.ID, user.Email, middleware.UserTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Google sign-in failed",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"mobile":          user.Mobile,
			"profile_picture": user.ProfilePicture,
		},
	})
}

// ChangePasswordPayload represents the authenticated password change body
type ChangePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles POST /api/user/change-password. The current
// password must verify before the new one is accepted.
func (ctrl *UserAuthController) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetPrincipalID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Could not extract user information",
		})
		return
	}

	var req ChangePasswordPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All fields are required",
		})
		return
	}

	if len(req.NewPassword) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Password must be at least 6 characters",
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

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Current password is incorrect",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to change password",
		})
		return
	}

	if err := ctrl.db.Model(&user).Update("password", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to change password",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}

// ForgotPasswordPayload represents the forgot-password body
type ForgotPasswordPayload struct {
	Email string `json:"email"`
}

// ForgotPassword handles POST /api/user/forgot-password. The response
// is identical whether or not the email exists, so the endpoint cannot
// be used to enumerate accounts.
func (ctrl *UserAuthController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email is required",
		})
		return
	}

	var user models.User
	if err := ctrl.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "If the email exists, a reset link has been sent",
		})
		return
	}

	resetToken, err := services.GenerateResetToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to process request",
		})
		return
	}

	expiry := time.Now().Add(services.ResetTokenTTL)
	updates := map[string]interface{}{
		"reset_token":  resetToken,
		"reset_expiry": &expiry,
	}
	if err := ctrl.db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to process request",
		})
		return
	}

	// Send the reset link (don't wait)
	resetLink := ctrl.resetBaseURL + "/" + resetToken
	go ctrl.notifier.PasswordReset(user.Email, user.Name, resetLink)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If the email exists, a reset link has been sent",
	})
}

// ResetPasswordPayload represents the reset-password body
type ResetPasswordPayload struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword handles POST /api/user/reset-password. The token is
// single use: it is cleared as soon as the password is overwritten.
func (ctrl *UserAuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Token == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Token and new password are required",
		})
		return
	}

	if len(req.NewPassword) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Password must be at least 6 characters",
		})
		return
	}

	var user models.User
	if err := ctrl.db.Where("reset_token = ?", req.Token).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid or expired reset token",
		})
		return
	}

	if user.ResetExpiry == nil || time.Now().After(*user.ResetExpiry) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Reset token has expired",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to reset password",
		})
		return
	}

	updates := map[string]interface{}{
		"password":     string(hash),
		"reset_token":  "",
		"reset_expiry": nil,
	}
	if err := ctrl.db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to reset password",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successfully",
	})
}

// GetProfile handles GET /api/user/profile
func (ctrl *UserAuthController) GetProfile(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// UpdateProfilePayload carries the self-service profile fields
type UpdateProfilePayload struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
	Company *string `json:"company"`
	Website *string `json:"website"`
}

// UpdateProfile handles PUT /api/user/profile - partial update
func (ctrl *UserAuthController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetPrincipalID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Could not extract user information",
		})
		return
	}

	var req UpdateProfilePayload
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
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	if len(updates) > 0 {
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
				"message": "Failed to update profile",
			})
			return
		}
	}

	// Fetch updated profile to return
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch updated profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// VerifyToken handles GET /api/user/verify-token. Reaching the handler
// means the middleware already accepted the token; this just echoes
// the account it belongs to.
func (ctrl *UserAuthController) VerifyToken(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"profile_picture": user.ProfilePicture,
		},
	})
}

// GetCapabilities handles GET /api/user/capabilities. The account pages
// read this map instead of probing endpoints that have no backing
// tables yet.
func (ctrl *UserAuthController) GetCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"capabilities": gin.H{
			"notifications":    false,
			"payments":         false,
			"paymentMethods":   false,
			"contactDeveloper": false,
		},
	})
}

// NotImplemented answers the account routes whose backing tables do not
// exist yet (notifications, payments, payment methods, developer contact)
func (ctrl *UserAuthController) NotImplemented(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"success": false,
		"message": "This capability is not implemented. Check /api/user/capabilities",
	})
}
