package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sushitest/internal/config"
	"sushitest/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestEffectiveParallelism(t *testing.T) {
	tests := []struct {
		name     string
		flag     int
		settings *config.Settings
		want     int
	}{
		{"flag wins", 8, &config.Settings{Parallelism: intPtr(2)}, 8},
		{"settings used when flag unset", 0, &config.Settings{Parallelism: intPtr(2)}, 2},
		{"default", 0, &config.Settings{}, config.DefaultParallelism},
		{"non-positive setting ignored", 0, &config.Settings{Parallelism: intPtr(0)}, config.DefaultParallelism},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, effectiveParallelism(tt.flag, tt.settings))
		})
	}
}

func TestResolveToolchain_FlagsOverrideSettings(t *testing.T) {
	cli := &CLI{
		Compiler: "/opt/sushi/bin/sushi",
		Harness:  "harness.cpp",
		settings: &config.Settings{
			Compiler:  "/usr/local/bin/sushi",
			Harness:   "/settings/harness.cpp",
			Toolchain: "g++",
		},
	}

	tc := cli.resolveToolchain()

	abs, err := filepath.Abs("harness.cpp")
	require.NoError(t, err)
	assert.Equal(t, "/opt/sushi/bin/sushi", tc.CompilerPath)
	assert.Equal(t, abs, tc.HarnessPath)
	assert.Equal(t, "g++", tc.ToolchainPath)
	assert.Equal(t, domain.DefaultArtifactName, tc.ArtifactName)
	assert.Equal(t, domain.DefaultExecutableName, tc.ExecutableName)
}

func TestResolveToolchain_Defaults(t *testing.T) {
	cli := &CLI{settings: &config.Settings{}}

	tc := cli.resolveToolchain()

	assert.Equal(t, domain.DefaultCompilerPath, tc.CompilerPath)
	assert.Equal(t, domain.DefaultToolchainPath, tc.ToolchainPath)
	assert.Empty(t, tc.HarnessPath)
	assert.Error(t, tc.Validate())
}

func TestResolveToolchain_RelativeExecutablesMadeAbsolute(t *testing.T) {
	cli := &CLI{
		Compiler:  "./build/sushi",
		Toolchain: "bin/clang++",
		settings:  &config.Settings{Harness: "/settings/harness.cpp"},
	}

	tc := cli.resolveToolchain()

	compiler, err := filepath.Abs("build/sushi")
	require.NoError(t, err)
	toolchain, err := filepath.Abs("bin/clang++")
	require.NoError(t, err)
	assert.Equal(t, compiler, tc.CompilerPath)
	assert.Equal(t, toolchain, tc.ToolchainPath)
	assert.Equal(t, "/settings/harness.cpp", tc.HarnessPath)
}

func TestResolveStageTimeout(t *testing.T) {
	thirty := 30
	durationPtr := func(d time.Duration) *time.Duration { return &d }

	tests := []struct {
		name     string
		flag     *time.Duration
		settings *config.Settings
		want     time.Duration
	}{
		{"settings used when flag unset", nil, &config.Settings{StageTimeoutSeconds: &thirty}, 30 * time.Second},
		{"flag wins", durationPtr(5 * time.Second), &config.Settings{StageTimeoutSeconds: &thirty}, 5 * time.Second},
		{"explicit zero disables settings timeout", durationPtr(0), &config.Settings{StageTimeoutSeconds: &thirty}, 0},
		{"negative flag means no limit", durationPtr(-time.Second), &config.Settings{}, 0},
		{"default", nil, &config.Settings{}, config.DefaultStageTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &CLI{StageTimeout: tt.flag, settings: tt.settings}
			assert.Equal(t, tt.want, cli.resolveStageTimeout())
		})
	}
}

func sampleReports() []*domain.SuiteReport {
	return []*domain.SuiteReport{{
		Suite: "Assignments",
		Results: []domain.CaseResult{
			{
				Case:     domain.TestCase{Name: "+=", Expected: domain.ExpectOutput("5")},
				Duration: 12 * time.Millisecond,
				Output:   "5",
				Status:   domain.CasePass,
			},
			{
				Case:   domain.TestCase{Name: "-=", Expected: domain.ExpectOutput("5")},
				Output: "4",
				Status: domain.CaseFail,
			},
			{
				Case:        domain.TestCase{Name: "let"},
				Diagnostics: "error: expected ';'",
				Err:         domain.NewInvocationError(domain.StageCompile, "error: expected ';'", errors.New("exit status 1")),
				Stage:       domain.StageCompile,
				Status:      domain.CaseError,
			},
		},
	}}
}

func TestWriteSuiteText(t *testing.T) {
	var buf bytes.Buffer

	writeSuiteText(&buf, sampleReports())

	out := buf.String()
	assert.Contains(t, out, "Assignments")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, `expected: "5"`)
	assert.Contains(t, out, `got:      "4"`)
	assert.Contains(t, out, "compile stage failed")
	assert.Contains(t, out, "1 passed, 2 failed")
}

func TestWriteSuiteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeSuiteJSON(&buf, sampleReports()))

	var out []suiteJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Passed)
	assert.Equal(t, 2, out[0].Failed)
	require.Len(t, out[0].Cases, 3)
	assert.Equal(t, "pass", out[0].Cases[0].Status)
	assert.Equal(t, "4", out[0].Cases[1].Output)
	assert.Equal(t, "compile", out[0].Cases[2].Stage)
	assert.Contains(t, out[0].Cases[2].Error, "exit status 1")
}
