package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain forces the test environment for the config package so Load
// never picks up a developer's .env file or database URL.
func TestMain(m *testing.M) {
	if err := os.Setenv("GO_ENV", "test"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set GO_ENV=test: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}
