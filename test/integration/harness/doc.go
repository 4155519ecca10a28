// Package harness provides utilities for integration testing the sushitest CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - SUSHITEST_HOME: Isolated per test (temp directory)
//   - SUSHITEST_DEBUG: Disabled to reduce noise
//   - SUSHITEST_COMPILER, SUSHITEST_TOOLCHAIN, SUSHITEST_HARNESS: Point at a fake toolchain
package harness
