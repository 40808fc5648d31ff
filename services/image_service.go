package services

import (
	"fmt"
	"mime/multipart"

	appConfig "github.com/nkr-tech/nkr-tech-api/config"
	"github.com/nkr-tech/nkr-tech-api/utils"
)

// ImageService handles profile picture upload, retrieval, and deletion
type ImageService interface {
	// UploadImage validates and stores a picture file, returns the storage key
	UploadImage(fileHeader *multipart.FileHeader) (string, error)

	// GetImageURL generates a URL for accessing a stored picture
	GetImageURL(imageKey string) (string, error)

	// DeleteImage removes a picture from storage
	DeleteImage(imageKey string) error
}

// NewImageService picks S3-backed storage when AWS credentials are
// configured and local disk storage otherwise
func NewImageService(cfg *appConfig.Config) (ImageService, error) {
	if cfg.S3Configured() {
		s3Service, err := NewS3Service(cfg)
		if err != nil {
			return nil, err
		}
		return &S3ImageService{s3Service: s3Service}, nil
	}
	return &LocalImageService{}, nil
}

// S3ImageService implements ImageService using AWS S3 for storage
type S3ImageService struct {
	s3Service S3Interface
}

// NewS3ImageService wraps an S3 backend in the ImageService interface
func NewS3ImageService(s3Service S3Interface) *S3ImageService {
	return &S3ImageService{s3Service: s3Service}
}

// UploadImage validates and uploads a picture file to S3
func (s *S3ImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidatePictureFile(fileHeader); err != nil {
		return "", err
	}

	s3Key, err := s.s3Service.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s3Key, nil
}

// GetImageURL generates a presigned URL for accessing a picture
func (s *S3ImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}

	return url, nil
}

// DeleteImage deletes a picture from S3
func (s *S3ImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

// LocalImageService implements ImageService on the local filesystem.
// Keys are bare filenames served back through /api/uploads/:filename.
type LocalImageService struct{}

// UploadImage validates and writes the picture under the upload directory
func (l *LocalImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidatePictureFile(fileHeader); err != nil {
		return "", err
	}

	filename, err := utils.SavePictureFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return filename, nil
}

// GetImageURL returns the serving path for a locally stored picture
func (l *LocalImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}
	return "/api/uploads/" + imageKey, nil
}

// DeleteImage removes a locally stored picture
func (l *LocalImageService) DeleteImage(imageKey string) error {
	return utils.DeletePictureFile(imageKey)
}
