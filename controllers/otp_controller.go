package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/middleware"
	"github.com/nkr-tech/nkr-tech-api/models"
	"github.com/nkr-tech/nkr-tech-api/services"
)

// OTPController handles mobile verification for logged-in users
type OTPController struct {
	db        *gorm.DB
	jwtSecret string
	sms       services.SMSSender
}

// NewOTPController creates an OTPController with its dependencies
func NewOTPController(db *gorm.DB, jwtSecret string, sms services.SMSSender) *OTPController {
	return &OTPController{db: db, jwtSecret: jwtSecret, sms: sms}
}

// SendOTPPayload represents the send-otp body
type SendOTPPayload struct {
	Mobile string `json:"mobile"`
}

// SendOTP handles POST /api/user/send-otp. Generates a fresh code,
// stores it on the user with its expiry, and dispatches it over SMS.
func (ctrl *OTPController) SendOTP(c *gin.Context) {
	userID, err := middleware.GetPrincipalID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Could not extract user information",
		})
		return
	}

	var req SendOTPPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
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

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	var existingMobile models.User
	if err := ctrl.db.Where("mobile = ? AND id <> ?", req.Mobile, user.ID).First(&existingMobile).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Mobile number already registered",
		})
		return
	}

	otp, err := services.GenerateOTP()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send OTP",
		})
		return
	}

	expiry := time.Now().Add(services.OTPTTL)
	updates := map[string]interface{}{
		"mobile":     req.Mobile,
		"otp":        otp,
		"otp_expiry": &expiry,
	}
	if err := ctrl.db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send OTP",
		})
		return
	}

	// Dispatch the code (don't wait). A gateway failure falls back to
	// the server log so the code stays operator-visible.
	go func() {
		if err := ctrl.sms.SendOTP(req.Mobile, otp, user.Name); err != nil {
			log.Printf("Failed to send OTP over SMS gateway: %v", err)
			log.Printf("SMS OTP for %s: Hi %s! Your OTP: %s (valid for 10 minutes)", req.Mobile, user.Name, otp)
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent successfully",
	})
}

// VerifyOTPPayload represents the verify-otp body
type VerifyOTPPayload struct {
	OTP string `json:"otp"`
}

// VerifyOTP handles POST /api/user/verify-otp. A wrong or expired code
// gets the same message, so a caller learns nothing about which check
// failed. A successful match marks the user verified, clears the code,
// and issues a fresh token.
func (ctrl *OTPController) VerifyOTP(c *gin.Context) {
	userID, err := middleware.GetPrincipalID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Could not extract user information",
		})
		return
	}

	var req VerifyOTPPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "OTP is required",
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

	if user.OTP == "" || user.OTP != req.OTP || user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid or expired OTP",
		})
		return
	}

	updates := map[string]interface{}{
		"is_verified": true,
		"otp":         "",
		"otp_expiry":  nil,
	}
	if err := ctrl.db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to verify OTP",
		})
		return
	}

	token, err := middleware.GenerateToken(ctrl.jwtSecret, middleware.AudienceUser, user.ID, user.Email, middleware.UserTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to verify OTP",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Mobile number verified successfully",
		"token":   token,
		"user": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"mobile":      user.Mobile,
			"is_verified": true,
		},
	})
}
