package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sushitest/internal/testutil"
)

// TestEnvironment provides an isolated test environment with its own SUSHITEST_HOME.
type TestEnvironment struct {
	Home      string
	Toolchain *testutil.FakeToolchain
	WorkDir   string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp SUSHITEST_HOME
// and a fake compiler, linker and harness wired in through the environment.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	home := tb.TempDir()
	workDir := tb.TempDir()

	return &TestEnvironment{
		Home:      home,
		Toolchain: testutil.NewFakeToolchain(tb),
		WorkDir:   workDir,
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out SUSHITEST_* variables and sets:
//   - SUSHITEST_HOME to the temp directory
//   - SUSHITEST_DEBUG to empty string (disables debug logging)
//   - SUSHITEST_COMPILER, SUSHITEST_TOOLCHAIN and SUSHITEST_HARNESS to the fakes
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+5+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "SUSHITEST_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SUSHITEST_HOME="+e.Home,
		"SUSHITEST_DEBUG=",
		"SUSHITEST_COMPILER="+e.Toolchain.CompilerPath,
		"SUSHITEST_TOOLCHAIN="+e.Toolchain.LinkerPath,
		"SUSHITEST_HARNESS="+e.Toolchain.HarnessPath,
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "history.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
// Setting a SUSHITEST_* key replaces the isolated default.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteSource writes a source file under the working directory and returns its path.
// With the fake toolchain the body is a shell snippet run by the test executable.
func (e *TestEnvironment) WriteSource(rel, body string) string {
	e.tb.Helper()
	return e.Toolchain.Source(e.tb, e.WorkDir, rel, body)
}

// WriteFile writes a file under the working directory and returns its path.
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.WorkDir, rel)
	testutil.WriteFile(e.tb, path, content)
	return path
}
