package controllers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/models"
	"github.com/nkr-tech/nkr-tech-api/services"
)

// TestMain runs before all tests in the controllers package
func TestMain(m *testing.M) {
	if err := os.Setenv("GO_ENV", "test"); err != nil {
		os.Exit(1)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestDB creates an in-memory database with every model migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Order{},
		&models.DemoRequest{},
		&models.Contact{},
		&models.Feedback{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupTestRouter creates a bare Gin engine for handler testing
func setupTestRouter() *gin.Engine {
	return gin.New()
}

// mockAuthMiddleware injects a principal into the context, standing in
// for the real bearer-token middleware
func mockAuthMiddleware(id uint, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal_id", id)
		c.Set("principal_email", email)
		c.Next()
	}
}

// logCapture collects standard-logger output so tests can assert on
// swallowed-error log lines written from handler goroutines
type logCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *logCapture) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

func (l *logCapture) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

// captureLog redirects the standard logger for the duration of the test
func captureLog(t *testing.T) *logCapture {
	t.Helper()

	capture := &logCapture{}
	log.SetOutput(capture)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return capture
}

// captureEmailSender records sent emails for assertions
type captureEmailSender struct {
	mu   sync.Mutex
	Sent []capturedEmail
}

type capturedEmail struct {
	Recipient string
	Subject   string
	Body      string
}

func (s *captureEmailSender) SendEmail(recipient, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, capturedEmail{Recipient: recipient, Subject: subject, Body: body})
	return nil
}

// newTestNotifier builds a Notifier backed by a capturing sender
func newTestNotifier() (*services.Notifier, *captureEmailSender) {
	sender := &captureEmailSender{}
	return services.NewNotifier(sender, "admin@nkrtech.com"), sender
}

// performJSONRequest marshals the body, runs the request through the
// router, and returns the recorder
func performJSONRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseResponse unmarshals a recorded JSON body
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response should be valid JSON: %v", err)
	}
	return response
}
