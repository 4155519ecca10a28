package toolchain

import (
	"context"
	"errors"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

// Linker builds the test executable from the native harness and compiled objects
type Linker struct {
	executableName string
	path           string
}

// Compile-time interface verification
var _ ports.Linker = (*Linker)(nil)

// NewLinker creates a Linker from the toolchain description
func NewLinker(tc domain.Toolchain) *Linker {
	tc = tc.WithDefaults()
	return &Linker{
		executableName: tc.ExecutableName,
		path:           tc.ToolchainPath,
	}
}

// Link runs `<toolchain> <harness> <artifacts...> -o <executable>` inside workDir
func (l *Linker) Link(ctx context.Context, harnessPath string, artifacts domain.ArtifactSet, workDir string) (domain.ExecutableRef, error) {
	if len(artifacts) == 0 {
		return "", domain.NewInvocationError(domain.StageLink, "", errors.New("no object files to link"))
	}

	args := make([]string, 0, len(artifacts)+3)
	args = append(args, harnessPath)
	args = append(args, artifacts...)
	args = append(args, "-o", l.executableName)

	logging.Logger.Info("Linking", "toolchain", l.path, "harness", harnessPath, "artifacts", len(artifacts), "workdir", workDir)

	result, err := runProcess(ctx, workDir, l.path, args...)
	if err != nil {
		logging.Logger.Error("Link failed", "error", err, "output", result.Combined)
		return "", domain.NewInvocationError(domain.StageLink, result.Combined, err)
	}

	return domain.ExecutableRef(l.executableName), nil
}
