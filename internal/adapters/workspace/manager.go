package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

// DirManager implements ports.WorkspaceManager on the local filesystem
type DirManager struct{}

// Compile-time interface verification
var _ ports.WorkspaceManager = (*DirManager)(nil)

// NewDirManager creates a new DirManager
func NewDirManager() *DirManager {
	return &DirManager{}
}

// Acquire creates path (an existing directory is not an error) and returns a
// handle that removes it recursively on Release. The handle's Path is always
// absolute since every stage runs with it as the working directory.
func (m *DirManager) Acquire(path string) (*domain.WorkspaceHandle, error) {
	if path == "" {
		return nil, domain.NewInvocationError(domain.StageWorkspace, "", fmt.Errorf("workspace path is empty"))
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return nil, domain.NewInvocationError(domain.StageWorkspace, "", fmt.Errorf("failed to resolve workspace path: %w", err))
	}

	logging.Logger.Debug("Acquiring workspace", "path", path)

	if err := os.MkdirAll(path, 0755); err != nil {
		logging.Logger.Error("Failed to create workspace", "error", err, "path", path)
		return nil, domain.NewInvocationError(domain.StageWorkspace, "", fmt.Errorf("failed to create workspace %s: %w", path, err))
	}

	return domain.NewWorkspaceHandle(path, func() error {
		logging.Logger.Debug("Releasing workspace", "path", path)
		if err := os.RemoveAll(path); err != nil {
			return domain.NewInvocationError(domain.StageWorkspace, "", fmt.Errorf("failed to remove workspace %s: %w", path, err))
		}
		return nil
	}), nil
}
