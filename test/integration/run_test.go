package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sushitest/internal/testutil"
	"sushitest/test/integration/harness"
)

func TestRun_Scenarios(t *testing.T) {
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
			env := harness.NewTestEnvironment(t)
			src := env.WriteSource(tt.file, tt.body)

			result := harness.RunCommand(t, env, "run", src, "--expect", tt.output)

			harness.AssertSuccess(t, result)
			harness.AssertStdoutEquals(t, result, tt.output)
			harness.AssertNoDir(t, src+".test")
		})
	}
}

func TestRun_RelativeToolPaths(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	compiler, err := os.ReadFile(env.Toolchain.CompilerPath)
	require.NoError(t, err)
	linker, err := os.ReadFile(env.Toolchain.LinkerPath)
	require.NoError(t, err)
	testutil.WriteExecutable(t, filepath.Join(env.WorkDir, "build", "sushi"), string(compiler))
	testutil.WriteExecutable(t, filepath.Join(env.WorkDir, "bin", "clang++"), string(linker))
	env.SetEnv("SUSHITEST_COMPILER", "build/sushi")
	src := env.WriteSource("plusequal.assignments.sushi", `printf 5`)

	result := harness.RunCommand(t, env, "--toolchain", "./bin/clang++", "run", src, "--expect", "5")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutEquals(t, result, "5")
}

func TestRun_CustomWorkDir(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	src := env.WriteSource("pwd.sushi", `printf %s "$(basename "$(pwd)")"`)
	workDir := filepath.Join(env.WorkDir, "scratch", "ws")

	result := harness.RunCommand(t, env, "run", src, "--workdir", workDir)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutEquals(t, result, "ws")
	harness.AssertNoDir(t, workDir)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		args       []string
		wantStderr []string
	}{
		{
			name:       "compile error",
			body:       testutil.SyntaxErrorMarker,
			wantStderr: []string{"compile stage failed", "unexpected token"},
		},
		{
			name:       "link error",
			body:       "# " + testutil.LinkErrorMarker,
			wantStderr: []string{"link stage failed", "undefined symbol"},
		},
		{
			name:       "run error",
			body:       `echo crashed >&2; exit 4`,
			wantStderr: []string{"run stage failed", "crashed"},
		},
		{
			name:       "output mismatch",
			body:       `printf 4`,
			args:       []string{"--expect", "5"},
			wantStderr: []string{"output mismatch", `expected "5", got "4"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			src := env.WriteSource("case.sushi", tt.body)

			result := harness.RunCommand(t, env, append([]string{"run", src}, tt.args...)...)

			harness.AssertExitCode(t, result, 1)
			for _, want := range tt.wantStderr {
				harness.AssertStderrContains(t, result, want)
			}
			harness.AssertNoDir(t, src+".test")
		})
	}
}

func TestRun_RequiresHarness(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetEnv("SUSHITEST_HARNESS", "")
	src := env.WriteSource("a.sushi", `printf 5`)

	result := harness.RunCommand(t, env, "run", src)

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "harness path is required")
	harness.AssertStdoutEmpty(t, result)
}

func TestRun_MissingSource(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "run", filepath.Join(env.WorkDir, "missing.sushi"))

	harness.AssertFailure(t, result)
}
