package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// MaxPictureSize is 10MB in bytes
	MaxPictureSize = 10 * 1024 * 1024
)

// AllowedPictureFormats are the accepted profile picture extensions
var AllowedPictureFormats = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

var (
	// UploadDir is the directory where profile pictures are stored when
	// S3 is not configured. Can be overridden for testing.
	UploadDir = "./uploads"
)

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidatePictureFile validates the uploaded profile picture format and size
func ValidatePictureFile(fileHeader *multipart.FileHeader) error {
	// Check file size
	if fileHeader.Size > MaxPictureSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxPictureSize/(1024*1024)),
		}
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !AllowedPictureFormats[ext] {
		return &FileUploadError{
			Code:    "INVALID_FILE_TYPE",
			Message: "Only PNG and JPEG files are supported",
		}
	}

	return nil
}

// SavePictureFile writes the uploaded picture into UploadDir under a
// unique name and returns the stored filename
func SavePictureFile(fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Format: {timestamp}_{original filename}
	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(fileHeader.Filename))
	dstPath := filepath.Join(UploadDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return filename, nil
}

// DeletePictureFile removes a stored picture from UploadDir. Missing
// files are not an error.
func DeletePictureFile(filename string) error {
	if filename == "" {
		return nil
	}
	path := filepath.Join(UploadDir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete picture file: %w", err)
	}
	return nil
}
