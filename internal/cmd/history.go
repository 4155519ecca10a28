package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"sushitest/internal/domain"
	"sushitest/internal/theme"
)

// HistoryCmd manages recorded case results
type HistoryCmd struct {
	List  HistoryListCmd  `cmd:"list" help:"List recorded runs, newest first" default:"1"`
	Prune HistoryPruneCmd `cmd:"prune" help:"Delete old runs"`
	View  HistoryViewCmd  `cmd:"view" help:"Show one recorded run with its output"`
}

// HistoryListCmd lists recorded runs
type HistoryListCmd struct {
	Case   string `help:"Only runs of this case"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of runs to show" default:"50"`
	Status string `help:"Only runs with this status (pass, fail, error)"`
	Suite  string `help:"Only runs of this suite"`
}

// Run executes the list command
func (h *HistoryListCmd) Run(ctx context.Context, cli *CLI) error {
	filter := domain.RunFilter{
		Case:   h.Case,
		Limit:  h.Limit,
		Status: domain.CaseStatus(h.Status),
		Suite:  h.Suite,
	}
	switch filter.Status {
	case "", domain.CasePass, domain.CaseFail, domain.CaseError:
	default:
		return fmt.Errorf("invalid status %q: must be pass, fail or error", h.Status)
	}

	records, err := cli.Container.HistoryService.List(ctx, filter)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		return printJSON(recordsToJSON(records))
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tSUITE\tCASE\tSTATUS\tSTAGE\tDURATION")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.StartedAt.Local().Format(time.DateTime),
			valueOr(r.Suite, "-"),
			r.Case,
			r.Status,
			valueOr(string(r.Stage), "-"),
			r.Duration.Round(time.Millisecond))
	}
	return w.Flush()
}

// HistoryViewCmd shows one recorded run
type HistoryViewCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	ID     string `arg:"" help:"Run ID"`
}

// Run executes the view command
func (h *HistoryViewCmd) Run(ctx context.Context, cli *CLI) error {
	record, err := cli.Container.HistoryService.Get(ctx, h.ID)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		return printJSON(recordToJSON(*record))
	}

	label := theme.LabelStyle.Render
	fmt.Printf("%s %s\n", label("ID:      "), record.ID)
	fmt.Printf("%s %s\n", label("Status:  "), theme.StatusLabel(record.Status))
	fmt.Printf("%s %s\n", label("Suite:   "), valueOr(record.Suite, "-"))
	fmt.Printf("%s %s\n", label("Case:    "), record.Case)
	fmt.Printf("%s %s\n", label("Source:  "), record.SourcePath)
	fmt.Printf("%s %s\n", label("Digest:  "), valueOr(record.SourceDigest, "-"))
	fmt.Printf("%s %s\n", label("Started: "), record.StartedAt.Local().Format(time.RFC3339))
	fmt.Printf("%s %s\n", label("Duration:"), record.Duration.Round(time.Millisecond))
	if record.Stage != "" {
		fmt.Printf("%s %s\n", label("Stage:   "), record.Stage)
	}
	if record.Expected != nil {
		fmt.Printf("%s %q\n", label("Expected:"), *record.Expected)
	}
	fmt.Printf("%s %q\n", label("Output:  "), record.Output)
	if record.Diagnostics != "" {
		fmt.Printf("\n%s\n%s\n", label("Diagnostics:"), record.Diagnostics)
	}
	return nil
}

// HistoryPruneCmd deletes old runs
type HistoryPruneCmd struct {
	OlderThan time.Duration `help:"Delete runs started longer ago than this (e.g. 720h)" required:""`
}

// Run executes the prune command
func (h *HistoryPruneCmd) Run(ctx context.Context, cli *CLI) error {
	removed, err := cli.Container.HistoryService.Prune(ctx, h.OlderThan)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d run(s)\n", removed)
	return nil
}

type recordJSON struct {
	Case         string  `json:"case"`
	Diagnostics  string  `json:"diagnostics,omitempty"`
	DurationMs   int64   `json:"duration_ms"`
	Expected     *string `json:"expected,omitempty"`
	ID           string  `json:"id"`
	Output       string  `json:"output"`
	SourceDigest string  `json:"source_digest,omitempty"`
	SourcePath   string  `json:"source"`
	Stage        string  `json:"stage,omitempty"`
	StartedAt    string  `json:"started_at"`
	Status       string  `json:"status"`
	Suite        string  `json:"suite,omitempty"`
}

func recordToJSON(r domain.RunRecord) recordJSON {
	return recordJSON{
		Case:         r.Case,
		Diagnostics:  r.Diagnostics,
		DurationMs:   r.Duration.Milliseconds(),
		Expected:     r.Expected,
		ID:           r.ID,
		Output:       r.Output,
		SourceDigest: r.SourceDigest,
		SourcePath:   r.SourcePath,
		Stage:        string(r.Stage),
		StartedAt:    r.StartedAt.UTC().Format(time.RFC3339),
		Status:       string(r.Status),
		Suite:        r.Suite,
	}
}

func recordsToJSON(records []domain.RunRecord) []recordJSON {
	out := make([]recordJSON, 0, len(records))
	for _, r := range records {
		out = append(out, recordToJSON(r))
	}
	return out
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

