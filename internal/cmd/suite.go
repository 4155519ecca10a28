package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"sushitest/internal/config"
	"sushitest/internal/domain"
	"sushitest/internal/services"
	"sushitest/internal/theme"
)

// SuiteCmd runs suite declaration files
type SuiteCmd struct {
	Format        string   `help:"Output format: text or json" enum:"text,json" default:"text"`
	Parallel      int      `help:"Maximum cases run at once (0 = settings or default)" short:"p" env:"SUSHITEST_PARALLELISM"`
	Paths         []string `arg:"" optional:"" help:"suite.json files or directories to search (default: suite_paths setting, then the current directory)"`
	WorkspaceRoot string   `help:"Create case workspaces under this directory instead of next to the sources" type:"path"`
}

// Run discovers, loads and runs every suite, then prints a report
func (s *SuiteCmd) Run(ctx context.Context, cli *CLI) error {
	if err := cli.Container.Toolchain.Validate(); err != nil {
		return fmt.Errorf("toolchain not configured: %w", err)
	}

	suites, err := s.loadSuites(cli)
	if err != nil {
		return err
	}

	opts := services.SuiteOptions{
		Parallelism:   effectiveParallelism(s.Parallel, cli.settings),
		WorkspaceRoot: s.workspaceRoot(cli.settings),
	}

	reports := make([]*domain.SuiteReport, 0, len(suites))
	for _, suite := range suites {
		report, err := cli.Container.SuiteService.RunSuite(ctx, *suite, opts)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if s.Format == "json" {
		if err := writeSuiteJSON(os.Stdout, reports); err != nil {
			return err
		}
	} else {
		writeSuiteText(os.Stdout, reports)
	}

	passed, total := 0, 0
	for _, r := range reports {
		passed += r.Passed()
		total += len(r.Results)
	}
	if passed != total {
		return fmt.Errorf("%d of %d cases failed", total-passed, total)
	}
	return nil
}

func (s *SuiteCmd) loadSuites(cli *CLI) ([]*domain.Suite, error) {
	paths := s.Paths
	if len(paths) == 0 {
		paths = cli.settings.SuitePaths
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var suites []*domain.Suite
	for _, root := range paths {
		files, err := cli.Container.SuiteReader.Discover(config.ExpandPath(root))
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			suite, err := cli.Container.SuiteReader.Read(file)
			if err != nil {
				return nil, err
			}
			suites = append(suites, suite)
		}
	}
	return suites, nil
}

// effectiveParallelism applies flag > settings.json > default
func effectiveParallelism(flag int, settings *config.Settings) int {
	if flag > 0 {
		return flag
	}
	if settings.Parallelism != nil && *settings.Parallelism > 0 {
		return *settings.Parallelism
	}
	return config.DefaultParallelism
}

func (s *SuiteCmd) workspaceRoot(settings *config.Settings) string {
	if s.WorkspaceRoot != "" {
		return s.WorkspaceRoot
	}
	return config.ExpandPath(settings.WorkspaceRoot)
}

func writeSuiteText(w io.Writer, reports []*domain.SuiteReport) {
	passed, total := 0, 0
	for _, report := range reports {
		fmt.Fprintln(w, theme.SuiteTitleStyle.Render(report.Suite))
		for _, res := range report.Results {
			fmt.Fprintf(w, "  %s %s %s\n",
				theme.StatusLabel(res.Status),
				res.Case.Name,
				theme.MutedStyle.Render(res.Duration.Round(time.Millisecond).String()))

			switch res.Status {
			case domain.CaseFail:
				fmt.Fprintf(w, "        expected: %q\n", *res.Case.Expected)
				fmt.Fprintf(w, "        got:      %q\n", res.Output)
			case domain.CaseError:
				fmt.Fprintf(w, "        %s\n", indent(res.Err.Error(), "        "))
			}
		}
		passed += report.Passed()
		total += len(report.Results)
	}
	fmt.Fprintf(w, "\n%d passed, %d failed\n", passed, total-passed)
}

func indent(s, prefix string) string {
	return strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\n"+prefix)
}

type caseJSON struct {
	Diagnostics string  `json:"diagnostics,omitempty"`
	DurationMs  int64   `json:"duration_ms"`
	Error       string  `json:"error,omitempty"`
	Expected    *string `json:"expected,omitempty"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Output      string  `json:"output"`
	Source      string  `json:"source"`
	Stage       string  `json:"stage,omitempty"`
	Status      string  `json:"status"`
}

type suiteJSON struct {
	Cases  []caseJSON `json:"cases"`
	Failed int        `json:"failed"`
	Name   string     `json:"name"`
	Passed int        `json:"passed"`
}

func writeSuiteJSON(w io.Writer, reports []*domain.SuiteReport) error {
	out := make([]suiteJSON, 0, len(reports))
	for _, report := range reports {
		sj := suiteJSON{
			Cases:  make([]caseJSON, 0, len(report.Results)),
			Failed: report.Failed(),
			Name:   report.Suite,
			Passed: report.Passed(),
		}
		for _, res := range report.Results {
			cj := caseJSON{
				Diagnostics: res.Diagnostics,
				DurationMs:  res.Duration.Milliseconds(),
				Expected:    res.Case.Expected,
				ID:          res.InvocationID,
				Name:        res.Case.Name,
				Output:      res.Output,
				Source:      res.Case.SourcePath,
				Stage:       string(res.Stage),
				Status:      string(res.Status),
			}
			if res.Err != nil {
				cj.Error = res.Err.Error()
			}
			sj.Cases = append(sj.Cases, cj)
		}
		out = append(out, sj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
