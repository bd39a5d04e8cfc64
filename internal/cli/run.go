// Package cli: run.go implements the "drills run" command.
//
// The run command invokes a single exercise with positional arguments and
// prints the result as JSON. Each argument is parsed as a JSON value; an
// argument that is not valid JSON is passed as a JSON string, so
// `drills run text.is-palindrome racecar` works without extra quoting.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/drills/internal/catalog"
	"github.com/shinji-kodama/drills/internal/model"
)

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <exercise> [arg ...]",
		Short: "Invoke one exercise",
		Long: `Invoke one exercise with JSON arguments and print its result.

Examples:
  drills run seq.second-smallest '[5, 1, 4, 3, 2]'
  drills run numeric.is-right-triangle 3 4 5
  drills run text.is-palindrome racecar`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runExercise(cmd.OutOrStdout(), catalog.Default(), args[0], args[1:])
		},
	}
}

// runExercise looks up name, invokes it with the parsed arguments, and
// prints the result. Failures map to CLIErrors with dedicated exit codes.
func runExercise(w io.Writer, reg *catalog.Registry, name string, rawArgs []string) error {
	ex, err := reg.Lookup(name)
	if err != nil {
		return model.WrapCLIError(model.ExitExerciseNotFound,
			fmt.Sprintf("exercise %q not found (see \"drills list\")", name), nil)
	}

	args := make([]json.RawMessage, 0, len(rawArgs))
	for _, a := range rawArgs {
		args = append(args, ParseArg(a))
	}
	VerboseLog("Invoking %s with %d argument(s)", ex.Name, len(args))

	got, err := ex.Invoke(args)
	if err != nil {
		if errors.Is(err, catalog.ErrArity) || errors.Is(err, catalog.ErrInvalidArgument) {
			return model.WrapCLIError(model.ExitInvalidArguments,
				fmt.Sprintf("invalid arguments for %s%s", ex.Name, FormatParams(ex.Params)), err)
		}
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("%s failed", ex.Name), err)
	}

	if IsJSONOutput() {
		out := struct {
			Exercise string `json:"exercise"`
			Result   any    `json:"result"`
		}{ex.Name, got}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	data, err := json.Marshal(got)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ParseArg returns s itself when it is valid JSON, and s encoded as a
// JSON string otherwise.
//
// Example:
//
//	`[1, 2]`  → [1, 2]
//	`racecar` → "racecar"
func ParseArg(s string) json.RawMessage {
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	quoted, _ := json.Marshal(s)
	return quoted
}
