// Package model defines the domain types and value objects for the
// drills CLI.
//
// This package contains pure data structures with no external dependencies.
// Exercises are identified by "<category>.<kebab-name>" strings, and each
// Case pairs raw JSON arguments with an expected JSON result or error.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
