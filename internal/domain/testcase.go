package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// TestCase is a declared compile-and-run check: a source file and its expected output.
// A nil Expected only checks that every stage succeeds.
type TestCase struct {
	Expected   *string
	Name       string
	SourcePath string
	WorkDir    string
}

// ExpectOutput returns an expectation for TestCase.Expected
func ExpectOutput(output string) *string {
	return &output
}

// Check reports whether output satisfies the case expectation
func (tc TestCase) Check(output InvocationResult) bool {
	return tc.Expected == nil || *tc.Expected == string(output)
}

// DefaultWorkDir returns the workspace used when a case does not name one:
// "<source base name>.test" next to the source file
func DefaultWorkDir(sourcePath string) string {
	return filepath.Join(filepath.Dir(sourcePath), filepath.Base(sourcePath)+".test")
}

// Suite groups test cases loaded from one declaration file
type Suite struct {
	Cases []TestCase
	Dir   string
	Name  string
}

// Validate rejects suites whose cases cannot run safely side by side
func (s Suite) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("suite name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite '%s' has no cases", s.Name)
	}

	names := make(map[string]bool, len(s.Cases))
	workDirs := make(map[string]string, len(s.Cases))
	for i, tc := range s.Cases {
		if strings.TrimSpace(tc.Name) == "" {
			return fmt.Errorf("suite '%s': case %d has no name", s.Name, i)
		}
		if tc.SourcePath == "" {
			return fmt.Errorf("suite '%s': case '%s' has no source", s.Name, tc.Name)
		}
		if tc.WorkDir == "" {
			return fmt.Errorf("suite '%s': case '%s' has no workspace", s.Name, tc.Name)
		}
		if names[tc.Name] {
			return fmt.Errorf("suite '%s': duplicate case name '%s'", s.Name, tc.Name)
		}
		names[tc.Name] = true

		dir := filepath.Clean(tc.WorkDir)
		if other, found := workDirs[dir]; found {
			return fmt.Errorf("suite '%s': cases '%s' and '%s' share workspace %s", s.Name, other, tc.Name, dir)
		}
		workDirs[dir] = tc.Name
	}
	return nil
}

// CaseStatus is the outcome of one test case
type CaseStatus string

const (
	CaseError CaseStatus = "error" // a pipeline stage failed
	CaseFail  CaseStatus = "fail"  // ran, but output did not match
	CasePass  CaseStatus = "pass"
)

// CaseResult is the outcome of running one test case
type CaseResult struct {
	Case         TestCase
	Diagnostics  string
	Duration     time.Duration
	Err          error
	InvocationID string
	Output       string
	Stage        Stage
	Status       CaseStatus
}

// SuiteReport collects case results in declaration order
type SuiteReport struct {
	Duration time.Duration
	Results  []CaseResult
	Suite    string
}

// Passed returns the number of passing cases
func (r *SuiteReport) Passed() int {
	return r.count(CasePass)
}

// Failed returns the number of cases that did not pass
func (r *SuiteReport) Failed() int {
	return len(r.Results) - r.Passed()
}

// OK reports whether every case passed
func (r *SuiteReport) OK() bool {
	return r.Failed() == 0
}

func (r *SuiteReport) count(status CaseStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}
