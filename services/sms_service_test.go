package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwilioSendOTP(t *testing.T) {
	var captured struct {
		path     string
		username string
		form     map[string]string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.username, _, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("Failed to parse form: %v", err)
		}
		captured.form = map[string]string{
			"From": r.PostFormValue("From"),
			"To":   r.PostFormValue("To"),
			"Body": r.PostFormValue("Body"),
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123"}`))
	}))
	defer server.Close()

	sender := NewTwilioSMSSender("AC_test_sid", "test_token", "+15005550006")
	sender.SetBaseURL(server.URL)

	err := sender.SendOTP("9876543210", "042531", "Anita")
	assert.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC_test_sid/Messages.json", captured.path)
	assert.Equal(t, "AC_test_sid", captured.username)
	assert.Equal(t, "+15005550006", captured.form["From"])
	assert.Equal(t, "+919876543210", captured.form["To"], "Indian country code is prefixed")
	assert.Contains(t, captured.form["Body"], "042531")
	assert.Contains(t, captured.form["Body"], "Anita")
	assert.Contains(t, captured.form["Body"], "10 minutes")
}

func TestTwilioSendOTPGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":20003,"message":"Authenticate"}`))
	}))
	defer server.Close()

	sender := NewTwilioSMSSender("AC_test_sid", "bad_token", "+15005550006")
	sender.SetBaseURL(server.URL)

	err := sender.SendOTP("9876543210", "042531", "Anita")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestLogSMSSenderAlwaysSucceeds(t *testing.T) {
	sender := &logSMSSender{}
	assert.NoError(t, sender.SendOTP("9876543210", "042531", "Anita"))
}
