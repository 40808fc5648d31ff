package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildFileHeader creates a real multipart.FileHeader by round-tripping
// a form through the http parser
func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("picture", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write content: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}

	return req.MultipartForm.File["picture"][0]
}

func TestValidatePictureFile(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		expectedCode string
	}{
		{name: "PNG is accepted", filename: "avatar.png"},
		{name: "JPG is accepted", filename: "avatar.jpg"},
		{name: "JPEG is accepted", filename: "avatar.jpeg"},
		{name: "Uppercase extension is accepted", filename: "AVATAR.PNG"},
		{name: "GIF is rejected", filename: "avatar.gif", expectedCode: "INVALID_FILE_TYPE"},
		{name: "PDF is rejected", filename: "document.pdf", expectedCode: "INVALID_FILE_TYPE"},
		{name: "No extension is rejected", filename: "avatar", expectedCode: "INVALID_FILE_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := buildFileHeader(t, tt.filename, []byte("content"))
			err := ValidatePictureFile(header)

			if tt.expectedCode == "" {
				assert.NoError(t, err)
			} else {
				var uploadErr *FileUploadError
				assert.ErrorAs(t, err, &uploadErr)
				assert.Equal(t, tt.expectedCode, uploadErr.Code)
			}
		})
	}
}

func TestValidatePictureFileTooLarge(t *testing.T) {
	header := buildFileHeader(t, "avatar.png", []byte("content"))
	header.Size = MaxPictureSize + 1

	err := ValidatePictureFile(header)
	var uploadErr *FileUploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "FILE_TOO_LARGE", uploadErr.Code)
}

func TestSaveAndDeletePictureFile(t *testing.T) {
	originalDir := UploadDir
	UploadDir = t.TempDir()
	defer func() { UploadDir = originalDir }()

	header := buildFileHeader(t, "avatar.png", []byte("png-bytes"))

	filename, err := SavePictureFile(header)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, "_avatar.png"))

	stored, err := os.ReadFile(filepath.Join(UploadDir, filename))
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)

	assert.NoError(t, DeletePictureFile(filename))
	_, err = os.Stat(filepath.Join(UploadDir, filename))
	assert.True(t, os.IsNotExist(err))

	// Deleting an already-missing file is not an error
	assert.NoError(t, DeletePictureFile(filename))
	assert.NoError(t, DeletePictureFile(""))
}
