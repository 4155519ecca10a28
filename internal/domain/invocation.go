package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Default names agreed with the external collaborators
const (
	DefaultArtifactName   = "output.o"
	DefaultCompilerPath   = "sushi"
	DefaultExecutableName = "test"
	DefaultToolchainPath  = "clang++"
)

// TestInvocation is one end-to-end run of the pipeline for one test case
type TestInvocation struct {
	ID               string
	SourcePath       string
	WorkingDirectory string
}

// NewTestInvocation builds an invocation with an absolute source path and a fresh ID
func NewTestInvocation(sourcePath, workingDirectory string) (TestInvocation, error) {
	if sourcePath == "" {
		return TestInvocation{}, errors.New("source path is required")
	}
	if workingDirectory == "" {
		return TestInvocation{}, errors.New("working directory is required")
	}

	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return TestInvocation{}, fmt.Errorf("failed to resolve source path: %w", err)
	}
	absWorkDir, err := filepath.Abs(workingDirectory)
	if err != nil {
		return TestInvocation{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return TestInvocation{
		ID:               uuid.New().String(),
		SourcePath:       absSource,
		WorkingDirectory: absWorkDir,
	}, nil
}

// WorkspaceHandle owns an ephemeral working directory until released
type WorkspaceHandle struct {
	Path string

	once       sync.Once
	release    func() error
	releaseErr error
}

// NewWorkspaceHandle creates a handle whose Release calls release exactly once
func NewWorkspaceHandle(path string, release func() error) *WorkspaceHandle {
	return &WorkspaceHandle{Path: path, release: release}
}

// Release disposes of the workspace. Subsequent calls return the first result.
func (h *WorkspaceHandle) Release() error {
	h.once.Do(func() {
		if h.release != nil {
			h.releaseErr = h.release()
		}
	})
	return h.releaseErr
}

// ArtifactSet is the ordered list of object files produced by the compiler
type ArtifactSet []string

// ExecutableRef names the binary produced by the link stage, relative to the workspace
type ExecutableRef string

// InvocationResult is the raw standard output of the executed binary
type InvocationResult string

// Toolchain describes the external binaries and the naming contract between them
type Toolchain struct {
	ArtifactName   string
	CompilerPath   string
	ExecutableName string
	HarnessPath    string
	ToolchainPath  string
}

// WithDefaults fills unset fields with the documented conventions
func (t Toolchain) WithDefaults() Toolchain {
	if t.ArtifactName == "" {
		t.ArtifactName = DefaultArtifactName
	}
	if t.CompilerPath == "" {
		t.CompilerPath = DefaultCompilerPath
	}
	if t.ExecutableName == "" {
		t.ExecutableName = DefaultExecutableName
	}
	if t.ToolchainPath == "" {
		t.ToolchainPath = DefaultToolchainPath
	}
	return t
}

// Validate checks the toolchain can be used to build a pipeline
func (t Toolchain) Validate() error {
	if t.HarnessPath == "" {
		return errors.New("harness path is required")
	}
	if filepath.Base(t.ArtifactName) != t.ArtifactName {
		return fmt.Errorf("artifact name %q must not contain a directory", t.ArtifactName)
	}
	if filepath.Base(t.ExecutableName) != t.ExecutableName {
		return fmt.Errorf("executable name %q must not contain a directory", t.ExecutableName)
	}
	return nil
}
