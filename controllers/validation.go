package controllers

import (
	"regexp"
)

// emailPattern accepts the usual local@domain.tld shape. Matches the
// validation the public forms apply client-side.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// mobilePattern requires exactly ten digits
var mobilePattern = regexp.MustCompile(`^\d{10}$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func isValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}
