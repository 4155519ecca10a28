package ports

import (
	"context"

	"sushitest/internal/domain"
)

// Compiler runs the external compiler on one source file
type Compiler interface {
	Compile(ctx context.Context, sourcePath, workDir string) (domain.ArtifactSet, error)
}

// Linker combines the native harness with compiled artifacts into an executable
type Linker interface {
	Link(ctx context.Context, harnessPath string, artifacts domain.ArtifactSet, workDir string) (domain.ExecutableRef, error)
}

// Executor runs a produced executable and captures its standard output
type Executor interface {
	Run(ctx context.Context, exe domain.ExecutableRef, workDir string) (domain.InvocationResult, error)
}
