// Package integration_test provides end-to-end tests for sushitest CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated SUSHITEST_HOME and a fake compiler toolchain.
package integration_test

import (
	"log"
	"os"
	"testing"

	"sushitest/test/integration/harness"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sushitest-integration-*")
	if err != nil {
		log.Fatalf("Failed to create build directory: %v", err)
	}

	if err := harness.BuildBinary(dir); err != nil {
		_ = os.RemoveAll(dir)
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	if err := os.RemoveAll(dir); err != nil {
		log.Printf("Warning: failed to remove %s: %v", dir, err)
	}
	os.Exit(code)
}
