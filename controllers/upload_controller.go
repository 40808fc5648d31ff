package controllers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/middleware"
	"github.com/nkr-tech/nkr-tech-api/models"
	"github.com/nkr-tech/nkr-tech-api/services"
	"github.com/nkr-tech/nkr-tech-api/utils"
)

// UploadController handles profile picture upload and serving
type UploadController struct {
	db     *gorm.DB
	images services.ImageService
}

// NewUploadController creates an UploadController with its dependencies
func NewUploadController(db *gorm.DB, images services.ImageService) *UploadController {
	return &UploadController{db: db, images: images}
}

// UploadProfilePicture handles POST /api/user/profile-picture. Accepts
// a multipart "picture" field, stores it, and records the key on the
// user. The previous picture, if any, is removed from storage.
func (ctrl *UploadController) UploadProfilePicture(c *gin.Context) {
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

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Picture file is required",
		})
		return
	}

	imageKey, err := ctrl.images.UploadImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": uploadErr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to upload picture",
		})
		return
	}

	previousKey := user.ProfilePicture
	if err := ctrl.db.Model(&user).Update("profile_picture", imageKey).Error; err != nil {
		// Roll back the stored file so nothing is orphaned
		if cleanupErr := ctrl.images.DeleteImage(imageKey); cleanupErr != nil {
			log.Printf("Failed to remove picture %s after database error: %v", imageKey, cleanupErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to upload picture",
		})
		return
	}

	if previousKey != "" && previousKey != imageKey {
		if err := ctrl.images.DeleteImage(previousKey); err != nil {
			log.Printf("Failed to remove previous picture %s: %v", previousKey, err)
		}
	}

	url, err := ctrl.images.GetImageURL(imageKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to generate picture URL",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile picture uploaded successfully",
		"url":     url,
	})
}

// GetUploadedImage handles GET /api/uploads/:filename, serving pictures
// stored on local disk. Base-name the parameter so the route cannot be
// used to walk outside the upload directory.
func (ctrl *UploadController) GetUploadedImage(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid filename",
		})
		return
	}

	path := filepath.Join(utils.UploadDir, filename)
	c.File(path)
}
