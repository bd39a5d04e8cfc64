package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCategory_String verifies that Category values produce the expected
// string representations for CLI output and JSON serialization.
func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategorySequence, "seq"},
		{CategoryNumeric, "numeric"},
		{CategoryText, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.category.String())
		})
	}
}

// TestCategory_IsValid checks that only defined categories pass validation.
func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategorySequence.IsValid())
	assert.True(t, CategoryNumeric.IsValid())
	assert.True(t, CategoryText.IsValid())
	assert.False(t, Category("graph").IsValid())
	assert.False(t, Category("").IsValid())
}

// TestParseCategory verifies string-to-category conversion,
// including case normalization and error cases.
func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		hasError bool
	}{
		{"seq", CategorySequence, false},
		{"numeric", CategoryNumeric, false},
		{"text", CategoryText, false},
		{"TEXT", CategoryText, false}, // case insensitive
		{"sequence", "", true},        // long form is not accepted
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseCategory(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestValidateExerciseName checks the "<category>.<kebab-name>" rules.
func TestValidateExerciseName(t *testing.T) {
	tests := []struct {
		name     string
		hasError bool
	}{
		{"seq.max", false},
		{"seq.second-smallest", false},
		{"numeric.binary-digit-sum", false},
		{"text.is-palindrome", false},
		{"", true},                     // empty
		{"max", true},                  // no category
		{"graph.bfs", true},            // unknown category
		{"seq.Second", true},           // uppercase
		{"seq.second-", true},          // trailing hyphen
		{"seq.second--smallest", true}, // double hyphen
		{"seq.", true},                 // empty exercise part
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExerciseName(tt.name)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryNumeric, CategoryOf("numeric.gcd"))
	assert.Equal(t, Category("nodot"), CategoryOf("nodot"))
}

// TestCase_Validate checks that a case needs a valid exercise and may not
// expect both a value and an error.
func TestCase_Validate(t *testing.T) {
	t.Run("value case", func(t *testing.T) {
		c := Case{Name: "ok", Exercise: "seq.max", Want: json.RawMessage(`3`)}
		assert.NoError(t, c.Validate())
		assert.True(t, c.HasWant())
	})

	t.Run("error case", func(t *testing.T) {
		c := Case{Name: "empty", Exercise: "seq.max", WantError: "empty"}
		assert.NoError(t, c.Validate())
		assert.False(t, c.HasWant())
	})

	t.Run("both set", func(t *testing.T) {
		c := Case{Name: "both", Exercise: "seq.max", Want: json.RawMessage(`3`), WantError: "empty"}
		assert.ErrorContains(t, c.Validate(), "mutually exclusive")
	})

	t.Run("bad exercise", func(t *testing.T) {
		c := Case{Name: "bad", Exercise: "Max"}
		assert.ErrorContains(t, c.Validate(), `case "bad"`)
	})
}

// TestCase_JSONNullWant verifies that an explicit null is a checked value,
// distinct from an absent want.
func TestCase_JSONNullWant(t *testing.T) {
	var c Case
	require.NoError(t, json.Unmarshal([]byte(`{"exercise":"seq.second-smallest","args":[[1]],"want":null}`), &c))
	assert.True(t, c.HasWant())
	assert.Equal(t, "null", string(c.Want))
	require.Len(t, c.Args, 1)
	assert.JSONEq(t, `[1]`, string(c.Args[0]))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "pass", OutcomePass.String())
	assert.Equal(t, "fail", OutcomeFail.String())
	assert.Equal(t, "error", OutcomeError.String())
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitExerciseNotFound, "exercise not found")
		assert.Equal(t, ExitExerciseNotFound, err.Code)
		assert.Equal(t, "exercise not found", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("unexpected end of JSON input")
		err := WrapCLIError(ExitInvalidArguments, "invalid arguments", inner)
		assert.Equal(t, ExitInvalidArguments, err.Code)
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
		assert.Equal(t, inner, err.Unwrap())
	})

	// Verify errors.Is works with unwrapped errors (Go 1.13+ error chain).
	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("no such file")
		err := WrapCLIError(ExitCaseFileNotFound, "case file not found", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
