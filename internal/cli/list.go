// Package cli: list.go implements the "drills list" command.
//
// The list command displays the registered exercises, optionally filtered
// by category, as a text table or a JSON document depending on --json.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/drills/internal/catalog"
	"github.com/shinji-kodama/drills/internal/model"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// category filters exercises by category. Valid values: seq, numeric,
	// text, all (default).
	category string
}

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available exercises",
		Long: `List the registered exercises with their parameters and a summary.

Examples:
  drills list
  drills list --category text
  drills list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), catalog.Default(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.category, "category", "all",
		"Filter by category: seq, numeric, text, all (default: all)")

	return cmd
}

// runList validates the --category flag and prints the matching exercises.
func runList(w io.Writer, reg *catalog.Registry, flags *listFlags) error {
	var category model.Category
	if flags.category != "all" {
		c, err := model.ParseCategory(flags.category)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid category filter %q: valid values are seq, numeric, text, all", flags.category), err)
		}
		category = c
	}

	exercises := reg.List(category)
	VerboseLog("Listing %d of %d exercises", len(exercises), reg.Len())

	if IsJSONOutput() {
		return printListResultJSON(w, exercises)
	}
	printListResultText(w, exercises)
	return nil
}

// listExerciseJSON is the JSON output structure for a single exercise.
type listExerciseJSON struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Params   []string `json:"params"`
	Summary  string   `json:"summary"`
}

// printListResultJSON outputs the exercise list under an "exercises" key.
func printListResultJSON(w io.Writer, exercises []*catalog.Exercise) error {
	type resultJSON struct {
		Exercises []listExerciseJSON `json:"exercises"`
	}

	result := resultJSON{
		// An empty slice renders as [] instead of null.
		Exercises: make([]listExerciseJSON, 0, len(exercises)),
	}
	for _, ex := range exercises {
		result.Exercises = append(result.Exercises, listExerciseJSON{
			Name:     ex.Name,
			Category: ex.Category.String(),
			Params:   ex.Params,
			Summary:  ex.Summary,
		})
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printListResultText outputs the exercise list as an aligned table:
//
//	NAME                       PARAMS         SUMMARY
//	seq.kth-smallest           (xs, k)        k-th smallest element, 1-based
func printListResultText(w io.Writer, exercises []*catalog.Exercise) {
	if len(exercises) == 0 {
		fmt.Fprintln(w, "No exercises found.")
		return
	}

	fmt.Fprintf(w, "%-30s %-22s %s\n", "NAME", "PARAMS", "SUMMARY")
	for _, ex := range exercises {
		fmt.Fprintf(w, "%-30s %-22s %s\n", ex.Name, FormatParams(ex.Params), ex.Summary)
	}
}

// FormatParams renders a parameter list as "(a, b)".
//
// Example:
//
//	[]string{"xs", "k"} → "(xs, k)"
//	nil                 → "()"
func FormatParams(params []string) string {
	return "(" + strings.Join(params, ", ") + ")"
}
