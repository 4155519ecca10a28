package services

import (
	"context"
	"log/slog"
	"time"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

// PipelineOptions configures the compile-link-run pipeline
type PipelineOptions struct {
	HarnessPath  string
	StageTimeout time.Duration // 0 = no timeout
}

// PipelineService runs one test invocation through compile, link and run
// inside an ephemeral workspace
type PipelineService struct {
	compiler     ports.Compiler
	executor     ports.Executor
	harnessPath  string
	linker       ports.Linker
	stageTimeout time.Duration
	workspaces   ports.WorkspaceManager
}

// NewPipelineService creates a new PipelineService
func NewPipelineService(
	workspaces ports.WorkspaceManager,
	compiler ports.Compiler,
	linker ports.Linker,
	executor ports.Executor,
	opts PipelineOptions,
) *PipelineService {
	return &PipelineService{
		compiler:     compiler,
		executor:     executor,
		harnessPath:  opts.HarnessPath,
		linker:       linker,
		stageTimeout: opts.StageTimeout,
		workspaces:   workspaces,
	}
}

// CompileAndRun acquires the invocation's workspace, compiles, links and runs
// the source there, and returns the executable's raw standard output.
//
// The workspace is released exactly once on every path. A stage error is always
// the error returned; a release failure after a stage error is only logged.
// A release failure after a successful run replaces the result, since the
// workspace was left behind.
func (s *PipelineService) CompileAndRun(ctx context.Context, inv domain.TestInvocation) (result domain.InvocationResult, err error) {
	log := logging.Logger.With("invocation_id", inv.ID, "source", inv.SourcePath, "workdir", inv.WorkingDirectory)
	start := time.Now()

	handle, err := s.workspaces.Acquire(inv.WorkingDirectory)
	if err != nil {
		log.Error("Failed to acquire workspace", "error", err)
		return "", stageError(domain.StageWorkspace, err)
	}

	defer func() {
		releaseErr := handle.Release()
		if releaseErr == nil {
			log.Debug("Workspace released", "duration", time.Since(start))
			return
		}
		if err != nil {
			log.Warn("Failed to release workspace after pipeline failure", "error", releaseErr, "pipeline_error", err)
			return
		}
		log.Error("Failed to release workspace", "error", releaseErr)
		result, err = "", stageError(domain.StageWorkspace, releaseErr)
	}()

	var artifacts domain.ArtifactSet
	err = s.stage(ctx, log, domain.StageCompile, func(ctx context.Context) error {
		var stageErr error
		artifacts, stageErr = s.compiler.Compile(ctx, inv.SourcePath, handle.Path)
		return stageErr
	})
	if err != nil {
		return "", err
	}

	var exe domain.ExecutableRef
	err = s.stage(ctx, log, domain.StageLink, func(ctx context.Context) error {
		var stageErr error
		exe, stageErr = s.linker.Link(ctx, s.harnessPath, artifacts, handle.Path)
		return stageErr
	})
	if err != nil {
		return "", err
	}

	err = s.stage(ctx, log, domain.StageRun, func(ctx context.Context) error {
		var stageErr error
		result, stageErr = s.executor.Run(ctx, exe, handle.Path)
		return stageErr
	})
	if err != nil {
		return "", err
	}

	log.Info("Invocation succeeded", "duration", time.Since(start), "output_bytes", len(result))
	return result, nil
}

// stage runs one pipeline step under the optional stage timeout
func (s *PipelineService) stage(ctx context.Context, log *slog.Logger, stage domain.Stage, fn func(ctx context.Context) error) error {
	if s.stageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.stageTimeout)
		defer cancel()
	}

	log.Debug("Stage started", "stage", stage)
	start := time.Now()

	if err := fn(ctx); err != nil {
		log.Error("Stage failed", "stage", stage, "duration", time.Since(start), "error", err)
		return stageError(stage, err)
	}

	log.Info("Stage completed", "stage", stage, "duration", time.Since(start))
	return nil
}

// stageError tags err with stage unless it already carries a stage
func stageError(stage domain.Stage, err error) error {
	if _, ok := domain.StageOf(err); ok {
		return err
	}
	return domain.NewInvocationError(stage, "", err)
}
