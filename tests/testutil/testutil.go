package testutil

import (
	"os"
	"testing"
)

// MustTestEnvironment forces GO_ENV=test for the current process.
// Call it from suite setup so configuration loading never picks up a
// development .env file mid-run.
func MustTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
}

// RequireTestEnvironment fails the test when GO_ENV is anything other
// than "test". Use it in tests that touch a real database connection.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("Tests must run with GO_ENV=test, got %q", env)
	}
}
