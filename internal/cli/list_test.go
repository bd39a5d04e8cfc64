// Package cli: list_test.go contains unit tests for the pure formatting
// helpers and end-to-end tests that drive the root command in-process.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/drills/internal/model"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir()) // keep any .drills.yaml in the working tree out of the test

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// requireExitCode asserts that err is a CLIError carrying code.
func requireExitCode(t *testing.T, err error, code model.ExitCode) {
	t.Helper()
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected CLIError, got %v", err)
	assert.Equal(t, code, cliErr.Code)
}

// TestFormatParams verifies the parenthesised parameter rendering used in
// listings and argument errors.
func TestFormatParams(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		want   string
	}{
		{"nil params", nil, "()"},
		{"single", []string{"xs"}, "(xs)"},
		{"several", []string{"a", "b", "c"}, "(a, b, c)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatParams(tt.params))
		})
	}
}

func TestList_Text(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "seq.second-smallest")
	assert.Contains(t, out, "numeric.binary-digit-sum")
	assert.Contains(t, out, "(a, b, c)")
}

func TestList_CategoryJSON(t *testing.T) {
	out, _, err := execute(t, "list", "--category", "text", "--json")
	require.NoError(t, err)

	var doc struct {
		Exercises []listExerciseJSON `json:"exercises"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.NotEmpty(t, doc.Exercises)
	for _, ex := range doc.Exercises {
		assert.Equal(t, "text", ex.Category)
	}
}

func TestList_InvalidCategory(t *testing.T) {
	_, _, err := execute(t, "list", "--category", "graph")
	requireExitCode(t, err, model.ExitGeneralError)
	assert.ErrorContains(t, err, `invalid category: "graph"`)
}

func TestList_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "list", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Listing")
	assert.NotContains(t, out, "Listing")
}

func TestPrintError(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		NewRootCommand()
		var buf bytes.Buffer
		printError(&buf, "exercise failed", errors.New("empty sequence"))
		assert.Equal(t, "Error: exercise failed: empty sequence\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		NewRootCommand()
		cfg.Set("json", true)
		var buf bytes.Buffer
		printError(&buf, "exercise failed", errors.New("empty sequence"))

		var doc map[string]map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, "exercise failed", doc["error"]["message"])
		assert.Equal(t, "empty sequence", doc["error"]["detail"])
	})
}
