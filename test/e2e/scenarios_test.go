// Package e2e runs the declared sushi suites against a real compiler and host
// toolchain. The tests skip unless SUSHITEST_COMPILER and SUSHITEST_HARNESS are
// set and clang++ (or SUSHITEST_TOOLCHAIN) is on PATH.
package e2e

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptersuite "sushitest/internal/adapters/suite"
	"sushitest/internal/adapters/toolchain"
	"sushitest/internal/adapters/workspace"
	"sushitest/internal/config"
	"sushitest/internal/domain"
	"sushitest/internal/services"
)

func realToolchain(t *testing.T) domain.Toolchain {
	t.Helper()

	compiler := os.Getenv("SUSHITEST_COMPILER")
	harness := os.Getenv("SUSHITEST_HARNESS")
	if compiler == "" || harness == "" {
		t.Skip("SUSHITEST_COMPILER and SUSHITEST_HARNESS must be set")
	}

	tc := domain.Toolchain{
		CompilerPath:  config.ResolveExecutable(compiler),
		HarnessPath:   config.ResolveFile(harness),
		ToolchainPath: config.ResolveExecutable(os.Getenv("SUSHITEST_TOOLCHAIN")),
	}.WithDefaults()
	if _, err := exec.LookPath(tc.ToolchainPath); err != nil {
		t.Skipf("%s not found: %v", tc.ToolchainPath, err)
	}
	require.NoError(t, tc.Validate())
	return tc
}

func TestSuites(t *testing.T) {
	tc := realToolchain(t)
	pipeline := services.NewPipelineService(
		workspace.NewDirManager(),
		toolchain.NewCompiler(tc),
		toolchain.NewLinker(tc),
		toolchain.NewExecutor(),
		services.PipelineOptions{HarnessPath: tc.HarnessPath, StageTimeout: time.Minute},
	)
	runner := services.NewSuiteService(pipeline, nil)
	reader := adaptersuite.NewJSONSuiteReader()

	files, err := reader.Discover(filepath.Join("testdata", "suites"))
	require.NoError(t, err)

	for _, file := range files {
		suite, err := reader.Read(file)
		require.NoError(t, err)

		t.Run(suite.Name, func(t *testing.T) {
			report, err := runner.RunSuite(context.Background(), *suite, services.SuiteOptions{Parallelism: 1})
			require.NoError(t, err)

			for _, res := range report.Results {
				t.Run(res.Case.Name, func(t *testing.T) {
					require.NoError(t, res.Err, "diagnostics: %s", res.Diagnostics)
					assert.Equal(t, domain.CasePass, res.Status, "output %q", res.Output)
					assert.NoDirExists(t, res.Case.WorkDir)
				})
			}
		})
	}
}
