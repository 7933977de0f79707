package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the soil_results binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "soil_results"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	// Tests run the binary from temp working directories, so the path must
	// not depend on the process cwd
	absPath, err := filepath.Abs(binaryPath)
	if err != nil {
		t.Fatalf("failed to resolve binary path: %v", err)
	}

	return absPath
}
