package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// commandTimeout bounds a single CLI invocation; suites run several
// compile/link/run cycles against the fake toolchain
const commandTimeout = 30 * time.Second

var binaryPath string

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd into dir and remembers the result for RunCommand.
// TestMain owns dir and removes it once the package's tests finish.
func BuildBinary(dir string) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}

	out := filepath.Join(dir, "sushitest")
	cmd := exec.Command("go", "build", "-o", out, "./cmd")
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("go build failed: %w\n%s", err, output)
	}

	binaryPath = out
	return nil
}

// RunCommand runs the sushitest binary inside env.WorkDir with env's isolated
// environment. A timeout or a failure to start is reported as exit code -1.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	if binaryPath == "" {
		tb.Fatal("sushitest binary not built; call BuildBinary from TestMain")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Dir = env.WorkDir
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	var result CommandResult
	var exitErr *exec.ExitError
	switch err := cmd.Run(); {
	case ctx.Err() != nil:
		tb.Logf("sushitest %v timed out after %v", args, commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("sushitest %v could not start: %v", args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot walks up from this file to the directory holding go.mod
func moduleRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot locate harness source file")
	}
	for dir := filepath.Dir(file); ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		if parent := filepath.Dir(dir); parent == dir {
			return "", errors.New("go.mod not found above " + file)
		}
	}
}
