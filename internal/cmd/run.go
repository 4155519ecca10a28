package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"sushitest/internal/domain"
	"sushitest/internal/services"
)

// RunCmd compiles, links and runs one source file
type RunCmd struct {
	Expect  *string `help:"Expected output; exit with an error when it differs"`
	Source  string  `arg:"" help:"Source file to compile" type:"existingfile"`
	WorkDir string  `help:"Workspace directory (default: <source>.test next to the source)" name:"workdir" type:"path"`
}

// Run executes the single-source pipeline. The program's stdout is copied
// verbatim to our stdout.
func (r *RunCmd) Run(ctx context.Context, cli *CLI) error {
	if err := cli.Container.Toolchain.Validate(); err != nil {
		return fmt.Errorf("toolchain not configured: %w", err)
	}

	tc := domain.TestCase{
		Expected:   r.Expect,
		Name:       filepath.Base(r.Source),
		SourcePath: r.Source,
		WorkDir:    r.WorkDir,
	}
	res := cli.Container.SuiteService.RunCase(ctx, "", tc, services.SuiteOptions{})

	fmt.Fprint(os.Stdout, res.Output)

	switch res.Status {
	case domain.CaseError:
		return res.Err
	case domain.CaseFail:
		return fmt.Errorf("output mismatch: expected %q, got %q", *r.Expect, res.Output)
	}
	return nil
}
