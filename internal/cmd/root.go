package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"sushitest/internal/config"
	"sushitest/internal/domain"
	"sushitest/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version      kong.VersionFlag `help:"Show version information"`
	Debug        bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile    string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles  int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Compiler     string           `help:"Path to the sushi compiler" env:"SUSHITEST_COMPILER"`
	Toolchain    string           `help:"Host toolchain used to link (default clang++)" env:"SUSHITEST_TOOLCHAIN"`
	Harness      string           `help:"Native harness source linked into every test executable" env:"SUSHITEST_HARNESS"`
	StageTimeout *time.Duration   `help:"Abort a compile, link or run stage after this long (0 = no limit)" env:"SUSHITEST_STAGE_TIMEOUT"`
	NoHistory    bool             `help:"Do not record results in the run history" env:"SUSHITEST_NO_HISTORY"`

	Run      RunCmd      `cmd:"run" help:"Compile, link and run a single source file"`
	Suite    SuiteCmd    `cmd:"suite" help:"Run test suites declared in suite.json files"`
	History  HistoryCmd  `cmd:"history" help:"Inspect recorded case results (list, view, prune)"`
	Settings SettingsCmd `cmd:"settings" help:"Show and initialize settings"`

	// Internal fields (not flags)
	Container    *Container       `kong:"-"`
	settings     *config.Settings `kong:"-"`
	stageTimeout time.Duration    `kong:"-"`
	toolchain    domain.Toolchain `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.MaxLogFiles == config.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("SUSHITEST_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("SUSHITEST_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}
	c.stageTimeout = c.resolveStageTimeout()
	if !c.NoHistory {
		c.NoHistory = !c.settings.HistoryEnabled()
	}
	c.toolchain = c.resolveToolchain()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (the compiler, the test binary) inherit the debug settings
	if c.Debug || c.DebugFile != "" {
		os.Setenv("SUSHITEST_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SUSHITEST_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("SUSHITEST_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	logging.Logger.Debug("Toolchain resolved",
		"compiler", c.toolchain.CompilerPath,
		"toolchain", c.toolchain.ToolchainPath,
		"harness", c.toolchain.HarnessPath,
		"stage_timeout", c.stageTimeout,
		"history", !c.NoHistory)

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer(ContainerOptions{
		DBPath:       config.GetDBPath(),
		History:      !c.NoHistory,
		StageTimeout: c.stageTimeout,
		Toolchain:    c.toolchain,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// resolveStageTimeout prefers --stage-timeout (or its env var) whenever it
// was given, including an explicit 0, and falls back to settings.json
func (c *CLI) resolveStageTimeout() time.Duration {
	if c.StageTimeout != nil {
		if *c.StageTimeout < 0 {
			return 0
		}
		return *c.StageTimeout
	}
	return c.settings.StageTimeout()
}

// resolveToolchain layers flag and env values over settings.json
func (c *CLI) resolveToolchain() domain.Toolchain {
	tc := c.settings.ResolveToolchain()
	if c.Compiler != "" {
		tc.CompilerPath = config.ResolveExecutable(c.Compiler)
	}
	if c.Toolchain != "" {
		tc.ToolchainPath = config.ResolveExecutable(c.Toolchain)
	}
	if c.Harness != "" {
		tc.HarnessPath = config.ResolveFile(c.Harness)
	}
	return tc
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
