package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// OTPTTL is how long a one-time code remains valid after issuance
const OTPTTL = 10 * time.Minute

// ResetTokenTTL is how long a password-reset token remains valid
const ResetTokenTTL = time.Hour

// GenerateOTP returns a uniformly random six-digit code, zero-padded,
// in the range 000000-999999
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// GenerateResetToken returns a random 64-character hex token for the
// password-reset flow
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateInternalPassword returns a random hex password for accounts
// created through social sign-in. It is never disclosed to the user.
func GenerateInternalPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate internal password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
