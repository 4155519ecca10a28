package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sushitest/internal/adapters/storage"
	"sushitest/internal/adapters/toolchain"
	"sushitest/internal/adapters/workspace"
	"sushitest/internal/config"
	"sushitest/internal/domain"
	"sushitest/internal/services"
	"sushitest/internal/testutil"
)

func newRealPipeline(t *testing.T, ft *testutil.FakeToolchain, timeout time.Duration) *services.PipelineService {
	t.Helper()
	tc := ft.Toolchain()
	return services.NewPipelineService(
		workspace.NewDirManager(),
		toolchain.NewCompiler(tc),
		toolchain.NewLinker(tc),
		toolchain.NewExecutor(),
		services.PipelineOptions{HarnessPath: tc.HarnessPath, StageTimeout: timeout},
	)
}

// The fake compiler turns a source into a shell script, so each scenario is
// written as the shell equivalent of its sushi program.
func TestCompileAndRun_Scenarios(t *testing.T) {
	ft := testutil.NewFakeToolchain(t)
	pipeline := newRealPipeline(t, ft, 0)
	dir := t.TempDir()

	tests := []struct {
		name   string
		file   string
		body   string
		output string
	}{
		{"plus equal", "plusequal.assignments.sushi", `x=2; x=$((x+3)); printf %s "$x"`, "5"},
		{"minus equal", "minusequal.assignments.sushi", `x=8; x=$((x-3)); printf %s "$x"`, "5"},
		{"let", "let.assignments.sushi", `a=10; printf %s "$a"`, "10"},
		{"for loop", "for.loops.sushi", `s=0; for i in 1 2 3 4 5; do s=$((s+i)); done; printf %s "$s"`, "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := ft.Source(t, dir, tt.file, tt.body)
			inv, err := domain.NewTestInvocation(src, domain.DefaultWorkDir(src))
			require.NoError(t, err)

			result, err := pipeline.CompileAndRun(context.Background(), inv)

			require.NoError(t, err)
			assert.Equal(t, domain.InvocationResult(tt.output), result)
			assert.NoDirExists(t, inv.WorkingDirectory)
		})
	}
}

// Tools configured with relative paths and a relative working directory must
// still resolve after each stage switches into the workspace.
func TestCompileAndRun_RelativePaths(t *testing.T) {
	ft := testutil.NewFakeToolchain(t)
	dir := t.TempDir()
	t.Chdir(dir)

	compiler, err := os.ReadFile(ft.CompilerPath)
	require.NoError(t, err)
	linker, err := os.ReadFile(ft.LinkerPath)
	require.NoError(t, err)
	testutil.WriteExecutable(t, filepath.Join(dir, "build", "sushi"), string(compiler))
	testutil.WriteExecutable(t, filepath.Join(dir, "build", "clang++"), string(linker))
	testutil.WriteFile(t, filepath.Join(dir, "clang_harness.cpp"), "int main() { return 0; }\n")

	tc := (&config.Settings{
		Compiler:  "./build/sushi",
		Harness:   "clang_harness.cpp",
		Toolchain: "build/clang++",
	}).ResolveToolchain()
	pipeline := services.NewPipelineService(
		workspace.NewDirManager(),
		toolchain.NewCompiler(tc),
		toolchain.NewLinker(tc),
		toolchain.NewExecutor(),
		services.PipelineOptions{HarnessPath: tc.HarnessPath},
	)

	src := ft.Source(t, dir, "plusequal.assignments.sushi", `printf 5`)
	inv := domain.TestInvocation{ID: "relative", SourcePath: src, WorkingDirectory: "ws"}

	result, err := pipeline.CompileAndRun(context.Background(), inv)

	require.NoError(t, err, "diagnostics: %s", domain.DiagnosticsOf(err))
	assert.Equal(t, domain.InvocationResult("5"), result)
	assert.NoDirExists(t, filepath.Join(dir, "ws"))
}

func TestCompileAndRun_OutputIsNotTrimmed(t *testing.T) {
	ft := testutil.NewFakeToolchain(t)
	dir := t.TempDir()
	src := ft.Source(t, dir, "spaces.sushi", `printf '  5\n\n'`)
	inv, err := domain.NewTestInvocation(src, filepath.Join(dir, "work"))
	require.NoError(t, err)

	result, err := newRealPipeline(t, ft, 0).CompileAndRun(context.Background(), inv)

	require.NoError(t, err)
	assert.Equal(t, domain.InvocationResult("  5\n\n"), result)
}

func TestCompileAndRun_FailuresCleanUp(t *testing.T) {
	ft := testutil.NewFakeToolchain(t)
	pipeline := newRealPipeline(t, ft, 0)
	dir := t.TempDir()

	tests := []struct {
		name     string
		body     string
		sentinel error
		diag     string
	}{
		{"compile error", testutil.SyntaxErrorMarker, domain.ErrCompile, "unexpected token"},
		{"link error", "# " + testutil.LinkErrorMarker, domain.ErrLink, "undefined symbol"},
		{"run error", `echo boom >&2; exit 3`, domain.ErrRun, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := ft.Source(t, dir, filepath.Base(t.Name())+".sushi", tt.body)
			inv, err := domain.NewTestInvocation(src, domain.DefaultWorkDir(src))
			require.NoError(t, err)

			result, err := pipeline.CompileAndRun(context.Background(), inv)

			require.Error(t, err)
			assert.Empty(t, result)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, domain.DiagnosticsOf(err), tt.diag)
			assert.NoDirExists(t, inv.WorkingDirectory)
		})
	}
}

func TestCompileAndRun_StageTimeout(t *testing.T) {
	ft := testutil.NewFakeToolchain(t)
	dir := t.TempDir()
	src := ft.Source(t, dir, "hang.sushi", `sleep 30`)
	inv, err := domain.NewTestInvocation(src, domain.DefaultWorkDir(src))
	require.NoError(t, err)

	start := time.Now()
	_, err = newRealPipeline(t, ft, 500*time.Millisecond).CompileAndRun(context.Background(), inv)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRun)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.NoDirExists(t, inv.WorkingDirectory)
}

func TestRunSuite_RealPipelineRecordsHistory(t *testing.T) {
	ft := testutil.NewFakeToolchain(t)
	dir := t.TempDir()

	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	suite := domain.Suite{Name: "Assignments", Dir: dir}
	for _, c := range []struct{ name, body, expected string }{
		{"+=", `printf 5`, "5"},
		{"-=", `printf 4`, "5"},
		{"broken", testutil.SyntaxErrorMarker, "10"},
	} {
		src := ft.Source(t, dir, c.name+".sushi", c.body)
		suite.Cases = append(suite.Cases, domain.TestCase{
			Expected:   domain.ExpectOutput(c.expected),
			Name:       c.name,
			SourcePath: src,
			WorkDir:    domain.DefaultWorkDir(src),
		})
	}

	svc := services.NewSuiteService(newRealPipeline(t, ft, 0), repo)
	report, err := svc.RunSuite(context.Background(), suite, services.SuiteOptions{Parallelism: 3})
	require.NoError(t, err)

	statuses := []domain.CaseStatus{}
	for _, res := range report.Results {
		statuses = append(statuses, res.Status)
		assert.NoDirExists(t, res.Case.WorkDir)
	}
	assert.Equal(t, []domain.CaseStatus{domain.CasePass, domain.CaseFail, domain.CaseError}, statuses)

	records, err := services.NewHistoryService(repo).List(context.Background(), domain.RunFilter{Suite: "Assignments"})
	require.NoError(t, err)
	assert.Len(t, records, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "only the sources remain")
}
