package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sushitest/internal/testutil"
	"sushitest/test/integration/harness"
)

const assignmentsSuite = `{
  "name": "Assignments",
  "cases": [
    {"name": "+=", "source": "plusequal.assignments.sushi", "expected": "5"},
    {"name": "-=", "source": "minusequal.assignments.sushi", "expected": "5"},
    {"name": "let", "source": "let.assignments.sushi", "expected": "10"}
  ]
}`

func writeAssignments(env *harness.TestEnvironment, minusBody string) {
	env.WriteFile("assignments/suite.json", assignmentsSuite)
	env.WriteSource("assignments/plusequal.assignments.sushi", `x=2; x=$((x+3)); printf %s "$x"`)
	env.WriteSource("assignments/minusequal.assignments.sushi", minusBody)
	env.WriteSource("assignments/let.assignments.sushi", `a=10; printf %s "$a"`)
}

func TestSuite_AllPass(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	writeAssignments(env, `x=8; x=$((x-3)); printf %s "$x"`)

	result := harness.RunCommand(t, env, "suite", "--parallel", "2")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Assignments")
	harness.AssertStdoutContains(t, result, "PASS")
	harness.AssertStdoutNotContains(t, result, "FAIL")
	harness.AssertStdoutContains(t, result, "3 passed, 0 failed")
	harness.AssertNoDir(t, env.WorkDir+"/assignments/plusequal.assignments.sushi.test")
}

func TestSuite_ReportsFailures(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	writeAssignments(env, `printf 4`)
	env.WriteFile("broken/suite.json", `{"name": "Broken", "cases": [{"name": "syntax", "source": "bad.sushi", "expected": "1"}]}`)
	env.WriteSource("broken/bad.sushi", testutil.SyntaxErrorMarker)

	result := harness.RunCommand(t, env, "suite", env.WorkDir)

	harness.AssertExitCode(t, result, 1)
	harness.AssertStdoutContains(t, result, "FAIL")
	harness.AssertStdoutContains(t, result, `got:      "4"`)
	harness.AssertStdoutContains(t, result, "ERROR")
	harness.AssertStdoutContains(t, result, "compile stage failed")
	harness.AssertStdoutContains(t, result, "2 passed, 2 failed")
	harness.AssertStderrContains(t, result, "2 of 4 cases failed")
}

func TestSuite_JSONFormat(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	writeAssignments(env, `printf 4`)

	result := harness.RunCommand(t, env, "suite", "assignments/suite.json", "--format", "json")

	harness.AssertExitCode(t, result, 1)
	var suites []struct {
		Cases []struct {
			Name   string `json:"name"`
			Output string `json:"output"`
			Status string `json:"status"`
		} `json:"cases"`
		Failed int    `json:"failed"`
		Name   string `json:"name"`
		Passed int    `json:"passed"`
	}
	harness.AssertValidJSON(t, result, &suites)
	require.Len(t, suites, 1)
	assert.Equal(t, "Assignments", suites[0].Name)
	assert.Equal(t, 2, suites[0].Passed)
	require.Len(t, suites[0].Cases, 3)
	assert.Equal(t, "fail", suites[0].Cases[1].Status)
	assert.Equal(t, "4", suites[0].Cases[1].Output)
}

func TestSuite_WorkspaceRoot(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	writeAssignments(env, `x=8; x=$((x-3)); printf %s "$x"`)
	root := t.TempDir()

	result := harness.RunCommand(t, env, "suite", "--workspace-root", root)

	harness.AssertSuccess(t, result)
	harness.AssertDirEmpty(t, root)
}

func TestSuite_InvalidDeclaration(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteFile("dup/suite.json", `{"name": "Dup", "cases": [
		{"name": "a", "source": "a.sushi", "workdir": "w"},
		{"name": "b", "source": "b.sushi", "workdir": "w"}]}`)

	result := harness.RunCommand(t, env, "suite")

	harness.AssertExitCode(t, result, 1)
	harness.AssertStderrContains(t, result, "share workspace")
}
