// Package model defines the domain types for the drills CLI.
//
// These types describe exercises and the cases that check them. They
// carry no behavior beyond validation and parsing, and they are shared
// by the catalog, casefile, runner, and cli packages.
package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Category groups exercises by the kind of input they work on.
type Category string

const (
	// CategorySequence covers exercises over ordered lists of values:
	// scans, selection, and frequency counting.
	CategorySequence Category = "seq"

	// CategoryNumeric covers closed-form arithmetic and small simulations.
	CategoryNumeric Category = "numeric"

	// CategoryText covers string parsing, formatting, and counting.
	CategoryText Category = "text"
)

// String returns the string representation of Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks whether the Category value is one of the predefined categories.
func (c Category) IsValid() bool {
	switch c {
	case CategorySequence, CategoryNumeric, CategoryText:
		return true
	default:
		return false
	}
}

// ParseCategory converts a string to a Category.
// Returns an error if the string does not match any valid category.
func ParseCategory(s string) (Category, error) {
	category := Category(strings.ToLower(s))
	if !category.IsValid() {
		return "", fmt.Errorf("invalid category: %q (valid: seq, numeric, text)", s)
	}
	return category, nil
}

// exerciseNameRegex validates exercise names: "<category>.<kebab-case>".
var exerciseNameRegex = regexp.MustCompile(`^[a-z]+\.[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateExerciseName checks that name has the "<category>.<kebab-name>"
// form and that its prefix is a known category.
func ValidateExerciseName(name string) error {
	if name == "" {
		return fmt.Errorf("exercise name must not be empty")
	}
	if !exerciseNameRegex.MatchString(name) {
		return fmt.Errorf("invalid exercise name %q: must look like <category>.<kebab-name>", name)
	}
	prefix, _, _ := strings.Cut(name, ".")
	if !Category(prefix).IsValid() {
		return fmt.Errorf("invalid exercise name %q: unknown category %q", name, prefix)
	}
	return nil
}

// CategoryOf returns the category prefix of a valid exercise name.
func CategoryOf(name string) Category {
	prefix, _, _ := strings.Cut(name, ".")
	return Category(prefix)
}

// Case is one input/expected-output pair for an exercise.
//
// Args are kept as raw JSON so each exercise decodes them into its own
// parameter types. Want is likewise raw: nil means "not checked", which
// together with an empty WantError means the case only has to succeed.
type Case struct {
	// Name identifies the case in reports. Loaders fill it in when empty.
	Name string `json:"name,omitempty"`

	// Exercise is the catalog name of the function under test.
	Exercise string `json:"exercise"`

	// Args are the positional arguments, one JSON value per parameter.
	Args []json.RawMessage `json:"args"`

	// Want is the expected result as JSON.
	Want json.RawMessage `json:"want,omitempty"`

	// WantError is a substring the returned error must contain.
	WantError string `json:"wantError,omitempty"`
}

// HasWant reports whether the case checks a result value.
func (c *Case) HasWant() bool {
	return len(c.Want) > 0
}

// Validate checks that the case names an exercise and does not expect both
// a value and an error.
func (c *Case) Validate() error {
	if err := ValidateExerciseName(c.Exercise); err != nil {
		return fmt.Errorf("case %q: %w", c.Name, err)
	}
	if c.HasWant() && c.WantError != "" {
		return fmt.Errorf("case %q: want and wantError are mutually exclusive", c.Name)
	}
	return nil
}

// Outcome is the verdict of running one case.
type Outcome string

const (
	// OutcomePass means the exercise returned the expected value or error.
	OutcomePass Outcome = "pass"

	// OutcomeFail means the exercise ran but its result did not match.
	OutcomeFail Outcome = "fail"

	// OutcomeError means the case could not be evaluated at all: unknown
	// exercise, bad arguments, or an unexpected error.
	OutcomeError Outcome = "error"
)

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	return string(o)
}

// ExitCode defines standard CLI exit codes.
// These codes allow scripts and CI systems to programmatically determine
// the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitExerciseNotFound indicates the named exercise is not in the catalog.
	ExitExerciseNotFound ExitCode = 2

	// ExitInvalidArguments indicates the exercise arguments could not be decoded.
	ExitInvalidArguments ExitCode = 3

	// ExitCaseFileNotFound indicates the case file does not exist.
	ExitCaseFileNotFound ExitCode = 4

	// ExitCheckFailed indicates at least one case failed or errored.
	ExitCheckFailed ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
