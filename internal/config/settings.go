package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sushitest/internal/domain"
)

// Defaults applied when neither flags, env vars nor settings.json provide a value
const (
	DefaultMaxLogFiles  = 1000
	DefaultParallelism  = 4
	DefaultStageTimeout = 0 // no timeout
)

// Settings represents the structure of $SUSHITEST_HOME/settings.json
type Settings struct {
	ArtifactName        string      `json:"artifact_name,omitempty"`
	Compiler            string      `json:"compiler,omitempty"`
	Debug               *bool       `json:"debug,omitempty"`
	ExecutableName      string      `json:"executable_name,omitempty"`
	Harness             string      `json:"harness,omitempty"`
	History             *bool       `json:"history,omitempty"`
	MaxLogFiles         *int        `json:"max_log_files,omitempty"`
	Parallelism         *int        `json:"parallelism,omitempty"`
	StageTimeoutSeconds *int        `json:"stage_timeout_seconds,omitempty"`
	SuitePaths          StringArray `json:"suite_paths,omitempty"`
	Toolchain           string      `json:"toolchain,omitempty"`
	WorkspaceRoot       string      `json:"workspace_root,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ResolveToolchain builds the toolchain description from settings.
// Paths are expanded and made absolute; bare executable names are kept for
// PATH lookup. Unset fields fall back to the documented defaults.
func (s *Settings) ResolveToolchain() domain.Toolchain {
	tc := domain.Toolchain{
		ArtifactName:   s.ArtifactName,
		CompilerPath:   ResolveExecutable(s.Compiler),
		ExecutableName: s.ExecutableName,
		HarnessPath:    ResolveFile(s.Harness),
		ToolchainPath:  ResolveExecutable(s.Toolchain),
	}
	return tc.WithDefaults()
}

// StageTimeout returns the configured per-stage timeout (0 = none)
func (s *Settings) StageTimeout() time.Duration {
	if s.StageTimeoutSeconds == nil || *s.StageTimeoutSeconds <= 0 {
		return DefaultStageTimeout
	}
	return time.Duration(*s.StageTimeoutSeconds) * time.Second
}

// HistoryEnabled reports whether case results should be recorded (default true)
func (s *Settings) HistoryEnabled() bool {
	return s.History == nil || *s.History
}

// LoadSettings loads settings from $SUSHITEST_HOME/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from a specific file
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SUSHITEST_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
