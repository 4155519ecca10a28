package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Case status colors
const (
	ColorError Color = "196" // Bright red - a stage failed
	ColorFail  Color = "214" // Orange - output mismatch
	ColorPass  Color = "2"   // Green
)

// Text colors
const (
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - durations, paths
	ColorSubtle    Color = "245" // Light gray - labels
)
