package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

// FileName is the suite declaration file name looked up by Discover
const FileName = "suite.json"

// suiteFile is the on-disk layout of a suite declaration
type suiteFile struct {
	Cases []caseFile `json:"cases"`
	Name  string     `json:"name"`
}

type caseFile struct {
	Expected *string `json:"expected,omitempty"`
	Name     string  `json:"name"`
	Source   string  `json:"source"`
	WorkDir  string  `json:"workdir,omitempty"`
}

// JSONSuiteReader loads suites from suite.json files
type JSONSuiteReader struct{}

// Verify interface compliance at compile time
var _ ports.SuiteReader = (*JSONSuiteReader)(nil)

// NewJSONSuiteReader creates a new JSONSuiteReader
func NewJSONSuiteReader() *JSONSuiteReader {
	return &JSONSuiteReader{}
}

// Read loads the suite at path. Relative source and workspace paths are
// resolved against the directory holding the file.
func (r *JSONSuiteReader) Read(path string) (*domain.Suite, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve suite path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}

	var file suiteFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse suite %s: %w", absPath, err)
	}

	dir := filepath.Dir(absPath)
	suite := &domain.Suite{
		Cases: make([]domain.TestCase, 0, len(file.Cases)),
		Dir:   dir,
		Name:  file.Name,
	}
	for _, c := range file.Cases {
		tc := domain.TestCase{
			Expected: c.Expected,
			Name:     c.Name,
		}
		if c.Source != "" {
			tc.SourcePath = resolve(dir, c.Source)
			tc.WorkDir = domain.DefaultWorkDir(tc.SourcePath)
		}
		if c.WorkDir != "" {
			tc.WorkDir = resolve(dir, c.WorkDir)
		}
		suite.Cases = append(suite.Cases, tc)
	}

	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", absPath, err)
	}

	logging.Logger.Debug("Suite loaded", "path", absPath, "name", suite.Name, "cases", len(suite.Cases))
	return suite, nil
}

// Discover returns the suite files named by root: root itself when it is a
// file, otherwise every suite.json below it in lexical order
func (r *JSONSuiteReader) Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != root && isWorkspaceDir(d.Name()) {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == FileName {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", root, err)
	}
	if len(found) == 0 {
		return nil, errors.New("no " + FileName + " found under " + root)
	}

	sort.Strings(found)
	return found, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}

// isWorkspaceDir reports whether name looks like a leftover case workspace
func isWorkspaceDir(name string) bool {
	return filepath.Ext(name) == ".test"
}
