package ports

import "sushitest/internal/domain"

// WorkspaceManager creates and disposes of invocation workspaces
type WorkspaceManager interface {
	// Acquire creates the directory (no error if it already exists) and returns
	// a handle with an absolute Path whose Release removes it recursively
	Acquire(path string) (*domain.WorkspaceHandle, error)
}
