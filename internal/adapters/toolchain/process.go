package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"sushitest/internal/logging"
)

// waitDelay bounds how long Wait blocks on output pipes after the process is killed
const waitDelay = 2 * time.Second

// processResult holds the captured output of one external process
type processResult struct {
	Combined string
	Duration time.Duration
	ExitCode int
	Stderr   string
	Stdout   string
}

// lockedBuffer serializes writes from the stdout and stderr copiers
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// runProcess runs name with args inside dir and waits for it to finish.
// The returned result is always non-nil; err is set when the process could not
// be started, exited non-zero or was cancelled through ctx.
func runProcess(ctx context.Context, dir, name string, args ...string) (*processResult, error) {
	return runCommand(ctx, exec.CommandContext(ctx, name, args...), dir)
}

func runCommand(ctx context.Context, cmd *exec.Cmd, dir string) (*processResult, error) {
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	configureProcessGroup(cmd)

	var stdout, stderr bytes.Buffer
	var combined lockedBuffer
	cmd.Stdout = io.MultiWriter(&stdout, &combined)
	cmd.Stderr = io.MultiWriter(&stderr, &combined)

	logging.Logger.Debug("Starting process", "command", cmd.Path, "args", strings.Join(cmd.Args[1:], " "), "dir", dir)

	start := time.Now()
	err := cmd.Run()

	result := &processResult{
		Combined: combined.String(),
		Duration: time.Since(start),
		Stderr:   stderr.String(),
		Stdout:   stdout.String(),
	}

	if err == nil {
		logging.Logger.Debug("Process finished", "command", cmd.Path, "duration", result.Duration)
		return result, nil
	}

	result.ExitCode = -1
	if ctxErr := ctx.Err(); ctxErr != nil {
		logging.Logger.Warn("Process cancelled", "command", cmd.Path, "error", ctxErr, "duration", result.Duration)
		return result, fmt.Errorf("%s cancelled after %s: %w", cmd.Path, result.Duration.Round(time.Millisecond), ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		logging.Logger.Debug("Process exited with error", "command", cmd.Path, "exit_code", result.ExitCode)
		return result, fmt.Errorf("%s exited with code %d: %w", cmd.Path, result.ExitCode, err)
	}

	logging.Logger.Debug("Process failed to start", "command", cmd.Path, "error", err)
	return result, fmt.Errorf("failed to run %s: %w", cmd.Path, err)
}
