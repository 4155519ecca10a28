package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"sushitest/internal/config"
	"sushitest/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Example SettingsExampleCmd `cmd:"example" help:"Show settings file location and available options"`
	Init    SettingsInitCmd    `cmd:"init" help:"Write the effective toolchain configuration to settings.json"`
	Show    SettingsShowCmd    `cmd:"show" help:"Show the effective configuration" default:"1"`
}

// SettingsShowCmd displays the configuration after flags, env vars and settings.json are applied
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	tc := cli.Container.Toolchain
	effective := map[string]any{
		"artifact_name":         tc.ArtifactName,
		"compiler":              tc.CompilerPath,
		"executable_name":       tc.ExecutableName,
		"harness":               tc.HarnessPath,
		"history":               !cli.NoHistory,
		"max_log_files":         cli.MaxLogFiles,
		"parallelism":           effectiveParallelism(0, cli.settings),
		"stage_timeout_seconds": int(cli.stageTimeout.Seconds()),
		"suite_paths":           []string(cli.settings.SuitePaths),
		"toolchain":             tc.ToolchainPath,
		"workspace_root":        config.ExpandPath(cli.settings.WorkspaceRoot),
	}

	if s.Format == "json" {
		return printJSON(map[string]any{
			"home":          config.GetHome(),
			"settings_file": config.GetSettingsPath(),
			"settings":      effective,
		})
	}

	fmt.Printf("Home:          %s\n", config.GetHome())
	fmt.Printf("Settings file: %s\n\n", config.GetSettingsPath())
	printSettingsTable(effective)
	return nil
}

// SettingsExampleCmd displays an example settings file
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()
	printSettingsTable(example)

	fmt.Println()
	fmt.Println("Create or edit this file to configure sushitest.")
	fmt.Println("All settings are optional except harness, which run and suite require.")

	return nil
}

// SettingsInitCmd writes settings.json
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings file"`
}

// Run executes the init command
func (s *SettingsInitCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()
	if _, err := os.Stat(path); err == nil && !s.Force {
		return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
	}

	tc := cli.Container.Toolchain
	settings := *cli.settings
	settings.ArtifactName = tc.ArtifactName
	settings.Compiler = tc.CompilerPath
	settings.ExecutableName = tc.ExecutableName
	settings.Harness = tc.HarnessPath
	settings.Toolchain = tc.ToolchainPath
	if cli.stageTimeout > 0 {
		seconds := int(cli.stageTimeout.Seconds())
		settings.StageTimeoutSeconds = &seconds
	}

	if err := config.SaveSettings(&settings); err != nil {
		return err
	}

	logging.Logger.Info("Settings written", "path", path)
	fmt.Printf("Settings written to %s\n", path)
	return nil
}

func printSettingsTable(values map[string]any) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := values[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()
}
