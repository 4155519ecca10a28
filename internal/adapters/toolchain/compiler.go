package toolchain

import (
	"context"
	"fmt"
	"path/filepath"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

// Compiler runs the external source-to-object compiler
type Compiler struct {
	artifactName string
	path         string
}

// Compile-time interface verification
var _ ports.Compiler = (*Compiler)(nil)

// NewCompiler creates a Compiler from the toolchain description
func NewCompiler(tc domain.Toolchain) *Compiler {
	tc = tc.WithDefaults()
	return &Compiler{
		artifactName: tc.ArtifactName,
		path:         tc.CompilerPath,
	}
}

// Compile runs `<compiler> <absolute source path>` inside workDir.
// The compiler writes a single object file with a fixed name into its working
// directory; that path is returned without inspecting the directory.
func (c *Compiler) Compile(ctx context.Context, sourcePath, workDir string) (domain.ArtifactSet, error) {
	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, domain.NewInvocationError(domain.StageCompile, "", fmt.Errorf("failed to resolve source path: %w", err))
	}

	logging.Logger.Info("Compiling", "compiler", c.path, "source", absSource, "workdir", workDir)

	result, err := runProcess(ctx, workDir, c.path, absSource)
	if err != nil {
		logging.Logger.Error("Compiler rejected source", "source", absSource, "error", err, "output", result.Combined)
		return nil, domain.NewInvocationError(domain.StageCompile, result.Combined, err)
	}

	return domain.ArtifactSet{filepath.Join(workDir, c.artifactName)}, nil
}
