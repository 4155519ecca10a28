package toolchain

import (
	"context"
	"os/exec"
	"path/filepath"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

// Executor runs the linked test executable
type Executor struct{}

// Compile-time interface verification
var _ ports.Executor = (*Executor)(nil)

// NewExecutor creates a new Executor
func NewExecutor() *Executor {
	return &Executor{}
}

// Run executes ./<exe> with no arguments inside workDir and returns its
// standard output exactly as written
func (e *Executor) Run(ctx context.Context, exe domain.ExecutableRef, workDir string) (domain.InvocationResult, error) {
	name := string(exe)
	cmd := exec.CommandContext(ctx, filepath.Join(workDir, name))
	cmd.Args[0] = "./" + name

	logging.Logger.Info("Running executable", "executable", name, "workdir", workDir)

	result, err := runCommand(ctx, cmd, workDir)
	if err != nil {
		logging.Logger.Error("Executable failed", "executable", name, "error", err, "stderr", result.Stderr)
		return "", domain.NewInvocationError(domain.StageRun, result.Stderr, err)
	}

	return domain.InvocationResult(result.Stdout), nil
}
