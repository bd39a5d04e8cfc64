package casefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/drills/internal/model"
)

// ErrUnsupportedFormat is returned for a file extension the loader does not know.
var ErrUnsupportedFormat = errors.New("unsupported case file format")

// Format identifies the encoding of a case file.
type Format string

const (
	// FormatJSON covers both .json and .jsonc files.
	FormatJSON Format = "json"

	// FormatYAML covers .yaml and .yml files.
	FormatYAML Format = "yaml"
)

// document is the on-disk shape of a case file.
type document struct {
	Cases []model.Case `json:"cases"`
}

// DetectFormat chooses a Format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: .json, .jsonc, .yaml, .yml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a case file, decodes it according to its extension, and
// validates every case.
//
// Returns a CLIError with ExitCaseFileNotFound if the file does not exist,
// whatever its extension.
func Load(path string) ([]model.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitCaseFileNotFound,
				fmt.Sprintf("case file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	cases, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse case file at %s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes case file contents in the given format, fills in default
// case names, and validates every case.
func Parse(data []byte, format Format) ([]model.Case, error) {
	var jsonData []byte
	switch format {
	case FormatJSON:
		// Strip JSONC comments (// and /* */) and trailing commas.
		jsonData = jsonc.ToJSON(data)
	case FormatYAML:
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		jsonData = converted
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var doc document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("decode cases: %w", err)
	}

	for i := range doc.Cases {
		c := &doc.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("%s#%d", c.Exercise, i+1)
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return doc.Cases, nil
}

// yamlToJSON re-encodes a YAML document as JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	out, err := json.Marshal(jsonCompatible(v))
	if err != nil {
		return nil, fmt.Errorf("re-encode yaml as json: %w", err)
	}
	return out, nil
}

// jsonCompatible rewrites map[any]any (which yaml.v3 produces for mappings
// with non-string keys) into map[string]any so encoding/json accepts it.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = jsonCompatible(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = jsonCompatible(val)
		}
		return t
	default:
		return v
	}
}
