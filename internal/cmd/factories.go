package cmd

import (
	"time"

	adapterstorage "sushitest/internal/adapters/storage"
	adaptersuite "sushitest/internal/adapters/suite"
	adaptertoolchain "sushitest/internal/adapters/toolchain"
	adapterworkspace "sushitest/internal/adapters/workspace"
	"sushitest/internal/domain"
	"sushitest/internal/ports"
	"sushitest/internal/services"
)

// ContainerOptions carries the resolved configuration the container is wired from
type ContainerOptions struct {
	DBPath       string
	History      bool
	StageTimeout time.Duration
	Toolchain    domain.Toolchain
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	HistoryService  *services.HistoryService
	PipelineService *services.PipelineService
	SuiteService    *services.SuiteService

	SuiteReader ports.SuiteReader
	Toolchain   domain.Toolchain

	// Internal - for cleanup only
	runRepo ports.RunRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	// Create adapters
	runRepo, err := adapterstorage.NewSQLiteRepository(opts.DBPath)
	if err != nil {
		return nil, err
	}

	workspaces := adapterworkspace.NewDirManager()
	compiler := adaptertoolchain.NewCompiler(opts.Toolchain)
	linker := adaptertoolchain.NewLinker(opts.Toolchain)
	executor := adaptertoolchain.NewExecutor()

	var recorder ports.RunRecorder
	if opts.History {
		recorder = runRepo
	}

	// Create services
	pipelineService := services.NewPipelineService(workspaces, compiler, linker, executor, services.PipelineOptions{
		HarnessPath:  opts.Toolchain.HarnessPath,
		StageTimeout: opts.StageTimeout,
	})
	suiteService := services.NewSuiteService(pipelineService, recorder)
	historyService := services.NewHistoryService(runRepo)

	return &Container{
		HistoryService:  historyService,
		PipelineService: pipelineService,
		SuiteReader:     adaptersuite.NewJSONSuiteReader(),
		SuiteService:    suiteService,
		Toolchain:       opts.Toolchain,
		runRepo:         runRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.runRepo != nil {
		return c.runRepo.Close()
	}
	return nil
}
