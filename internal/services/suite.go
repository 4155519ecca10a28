package services

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

// Invoker runs one test invocation end to end
type Invoker interface {
	CompileAndRun(ctx context.Context, inv domain.TestInvocation) (domain.InvocationResult, error)
}

// SuiteOptions controls how a suite is run
type SuiteOptions struct {
	// Parallelism bounds concurrently running cases (<= 0 means 1)
	Parallelism int
	// WorkspaceRoot, when set, places every case workspace at <root>/<uuid>
	// instead of the case's declared directory
	WorkspaceRoot string
}

// SuiteService runs declared test cases and checks their output
type SuiteService struct {
	invoker  Invoker
	recorder ports.RunRecorder
}

// NewSuiteService creates a new SuiteService. recorder may be nil.
func NewSuiteService(invoker Invoker, recorder ports.RunRecorder) *SuiteService {
	return &SuiteService{
		invoker:  invoker,
		recorder: recorder,
	}
}

// RunSuite runs every case of suite, each in its own workspace, and returns the
// results in declaration order. A failing case never stops the others.
func (s *SuiteService) RunSuite(ctx context.Context, suite domain.Suite, opts SuiteOptions) (*domain.SuiteReport, error) {
	if err := suite.Validate(); err != nil {
		return nil, err
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}

	logging.Logger.Info("Running suite", "suite", suite.Name, "cases", len(suite.Cases), "parallelism", parallelism)
	start := time.Now()

	results := make([]domain.CaseResult, len(suite.Cases))

	var g errgroup.Group
	g.SetLimit(parallelism)
	for i, tc := range suite.Cases {
		g.Go(func() error {
			results[i] = s.RunCase(ctx, suite.Name, tc, opts)
			return nil
		})
	}
	_ = g.Wait()

	report := &domain.SuiteReport{
		Duration: time.Since(start),
		Results:  results,
		Suite:    suite.Name,
	}

	logging.Logger.Info("Suite finished",
		"suite", suite.Name,
		"passed", report.Passed(),
		"failed", report.Failed(),
		"duration", report.Duration)

	return report, nil
}

// RunCase runs a single case and records its result
func (s *SuiteService) RunCase(ctx context.Context, suiteName string, tc domain.TestCase, opts SuiteOptions) domain.CaseResult {
	workDir := tc.WorkDir
	if opts.WorkspaceRoot != "" {
		workDir = filepath.Join(opts.WorkspaceRoot, uuid.New().String())
	}
	if workDir == "" {
		workDir = domain.DefaultWorkDir(tc.SourcePath)
	}

	res := domain.CaseResult{Case: tc}
	startedAt := time.Now().UTC()

	inv, err := domain.NewTestInvocation(tc.SourcePath, workDir)
	if err != nil {
		res.Err = err
		res.Status = domain.CaseError
		return res
	}
	res.InvocationID = inv.ID

	output, err := s.invoker.CompileAndRun(ctx, inv)
	res.Duration = time.Since(startedAt)
	res.Output = string(output)

	switch {
	case err != nil:
		res.Err = err
		res.Status = domain.CaseError
		res.Diagnostics = domain.DiagnosticsOf(err)
		if stage, ok := domain.StageOf(err); ok {
			res.Stage = stage
		}
	case tc.Check(output):
		res.Status = domain.CasePass
	default:
		res.Status = domain.CaseFail
	}

	logging.Logger.Info("Case finished",
		"suite", suiteName,
		"case", tc.Name,
		"status", res.Status,
		"stage", res.Stage,
		"duration", res.Duration)

	s.record(ctx, suiteName, inv, res, startedAt)
	return res
}

// record persists a case result; failures are logged and otherwise ignored
func (s *SuiteService) record(ctx context.Context, suiteName string, inv domain.TestInvocation, res domain.CaseResult, startedAt time.Time) {
	if s.recorder == nil {
		return
	}

	digest, err := SourceDigest(inv.SourcePath)
	if err != nil {
		logging.Logger.Debug("Failed to digest source", "source", inv.SourcePath, "error", err)
	}

	record := domain.RunRecord{
		Case:         res.Case.Name,
		Diagnostics:  res.Diagnostics,
		Duration:     res.Duration,
		Expected:     res.Case.Expected,
		ID:           inv.ID,
		Output:       res.Output,
		SourceDigest: digest,
		SourcePath:   inv.SourcePath,
		Stage:        res.Stage,
		StartedAt:    startedAt,
		Status:       res.Status,
		Suite:        suiteName,
	}
	if res.Err != nil && record.Diagnostics == "" {
		record.Diagnostics = res.Err.Error()
	}

	if err := s.recorder.Save(ctx, record); err != nil {
		logging.Logger.Warn("Failed to record case result", "case", res.Case.Name, "error", err)
	}
}
