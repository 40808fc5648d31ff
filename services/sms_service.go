package services

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nkr-tech/nkr-tech-api/config"
)

// SMSSender delivers a one-time code to a mobile number
type SMSSender interface {
	SendOTP(mobile, otp, name string) error
}

// NewSMSSender picks the Twilio gateway when credentials are present
// and falls back to logging the code otherwise. The log fallback is
// for development only and is not a security-safe delivery channel.
func NewSMSSender(cfg *config.Config) SMSSender {
	if cfg.SMSConfigured() {
		return NewTwilioSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	}
	log.Println("SMS gateway not configured, OTPs will be logged to console only")
	return &logSMSSender{}
}

// TwilioSMSSender sends SMS messages through the Twilio REST API
type TwilioSMSSender struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioSMSSender creates a Twilio-backed sender
func NewTwilioSMSSender(accountSID, authToken, fromNumber string) *TwilioSMSSender {
	return &TwilioSMSSender{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    "https://api.twilio.com",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetBaseURL overrides the Twilio API endpoint (primarily for testing)
func (s *TwilioSMSSender) SetBaseURL(baseURL string) {
	s.baseURL = strings.TrimRight(baseURL, "/")
}

// SendOTP posts a verification message to the Twilio Messages endpoint
func (s *TwilioSMSSender) SendOTP(mobile, otp, name string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)

	form := url.Values{}
	form.Set("From", s.fromNumber)
	form.Set("To", "+91"+mobile)
	form.Set("Body", fmt.Sprintf(
		"Hi %s! Your NKR Tech Solutions verification OTP is: %s. Valid for 10 minutes. Do not share this code.",
		name, otp,
	))

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call SMS gateway: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close response body: %v", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("SMS gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// logSMSSender writes the code to the server log. Development fallback
// only; it always reports success.
type logSMSSender struct{}

func (l *logSMSSender) SendOTP(mobile, otp, name string) error {
	log.Printf("SMS OTP for %s: Hi %s! Your OTP: %s (valid for 10 minutes)", mobile, name, otp)
	return nil
}
