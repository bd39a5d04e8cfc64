// Package cli: check.go implements the "drills check" command.
//
// The check command loads a JSONC or YAML case file, grades every case
// concurrently, and prints a report. It exits with ExitCheckFailed when
// any case fails or cannot be evaluated, so it can gate CI jobs.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/drills/internal/casefile"
	"github.com/shinji-kodama/drills/internal/catalog"
	"github.com/shinji-kodama/drills/internal/model"
	"github.com/shinji-kodama/drills/internal/runner"
)

// Report formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// NewCheckCommand creates the "check" cobra command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <casefile>",
		Short: "Grade exercises against a case file",
		Long: `Load input/expected-output cases from a JSONC or YAML file, run them,
and report which passed.

Parallelism and report format can also come from DRILLS_PARALLEL,
DRILLS_FORMAT, or the parallel/format keys of .drills.yaml.

Examples:
  drills check cases.jsonc
  drills check cases.yaml --parallel 8
  drills check cases.jsonc --format yaml`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}

	cmd.Flags().Int("parallel", 0, "Maximum concurrent cases (default: number of CPUs)")
	cmd.Flags().String("format", formatText, "Report format: text, json, yaml")
	_ = cfg.BindPFlag("parallel", cmd.Flags().Lookup("parallel"))
	_ = cfg.BindPFlag("format", cmd.Flags().Lookup("format"))

	return cmd
}

// runCheck is the main logic function for the check command.
func runCheck(cmd *cobra.Command, path string) error {
	format := strings.ToLower(cfg.GetString("format"))
	if IsJSONOutput() {
		format = formatJSON
	}
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid format %q: valid values are text, json, yaml", format))
	}

	// Step 1: Load and validate the case file.
	cases, err := casefile.Load(path)
	if err != nil {
		return err // Load returns CLIError with ExitCaseFileNotFound for missing files
	}
	VerboseLog("Loaded %d cases from %s", len(cases), path)

	// Step 2: Evaluate every case.
	results, err := runner.Run(cmd.Context(), catalog.Default(), cases, runner.Options{
		Parallel: cfg.GetInt("parallel"),
		Logger:   logger,
	})
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "check interrupted", err)
	}

	// Step 3: Report.
	summary := runner.Summarize(results)
	if err := writeReport(cmd.OutOrStdout(), format, summary, results); err != nil {
		return err
	}

	if !summary.OK() {
		return model.NewCLIError(model.ExitCheckFailed,
			fmt.Sprintf("%d of %d cases did not pass", summary.Failed+summary.Errored, summary.Total))
	}
	return nil
}

// reportJSON is the structured report for --format json and yaml.
type reportJSON struct {
	Summary runner.Summary `json:"summary" yaml:"summary"`
	Results []resultJSON   `json:"results" yaml:"results"`
}

// resultJSON is one graded case in a structured report.
type resultJSON struct {
	Name     string `json:"name" yaml:"name"`
	Exercise string `json:"exercise" yaml:"exercise"`
	Outcome  string `json:"outcome" yaml:"outcome"`
	Got      any    `json:"got,omitempty" yaml:"got,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// buildReport converts runner results into the structured report.
func buildReport(summary runner.Summary, results []runner.Result) reportJSON {
	report := reportJSON{
		Summary: summary,
		Results: make([]resultJSON, 0, len(results)),
	}
	for _, r := range results {
		entry := resultJSON{
			Name:     r.Name,
			Exercise: r.Exercise,
			Outcome:  r.Outcome.String(),
			Detail:   r.Detail,
		}
		if r.Got != nil {
			// Decode so YAML renders values natively rather than as bytes.
			var got any
			if err := json.Unmarshal(r.Got, &got); err == nil {
				entry.Got = got
			}
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		report.Results = append(report.Results, entry)
	}
	return report
}

// writeReport renders the graded results in the requested format.
func writeReport(w io.Writer, format string, summary runner.Summary, results []runner.Result) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(buildReport(summary, results), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(buildReport(summary, results)); err != nil {
			return err
		}
		return enc.Close()
	default:
		printReportText(w, summary, results)
		return nil
	}
}

// printReportText prints one line per case, with failure details indented
// beneath, followed by a summary line:
//
//	PASS   seq.second-smallest#1
//	FAIL   seq.max#2
//	       expected error containing "empty"
//	1 passed, 1 failed, 0 errored (2 total)
func printReportText(w io.Writer, summary runner.Summary, results []runner.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%-6s %s\n", strings.ToUpper(r.Outcome.String()), r.Name)
		if r.Outcome == model.OutcomePass {
			continue
		}
		if r.Err != nil {
			fmt.Fprintf(w, "       error: %v\n", r.Err)
		}
		for _, line := range strings.Split(strings.TrimRight(r.Detail, "\n"), "\n") {
			if line != "" {
				fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
	fmt.Fprintf(w, "%d passed, %d failed, %d errored (%d total)\n",
		summary.Passed, summary.Failed, summary.Errored, summary.Total)
}
