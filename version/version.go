package version

import "fmt"

// Tagline is the application's tagline used in help text and documentation
const Tagline = "End-to-end test runner for the sushi compiler"

// Build information injected at build time via ldflags
// Example: -ldflags="-X sushitest/version.Version=v1.0.0 -X sushitest/version.Commit=abc123 ..."
var (
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
	Version   = "dev"     // Semantic version or "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("sushitest %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
