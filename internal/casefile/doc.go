// Package casefile loads batches of exercise cases from disk.
//
// A case file holds a single top-level "cases" list. Each entry names an
// exercise, gives its positional arguments, and states either the
// expected result ("want") or a substring of the expected error
// ("wantError"):
//
//	{
//	  // JSONC comments and trailing commas are allowed.
//	  "cases": [
//	    {"exercise": "seq.second-smallest", "args": [[5, 1, 4]], "want": 4},
//	    {"exercise": "seq.max", "args": [[]], "wantError": "empty"},
//	  ],
//	}
//
// JSON and JSONC files are read with github.com/tidwall/jsonc stripping
// comments before encoding/json decodes them. YAML files are decoded with
// gopkg.in/yaml.v3 and then re-encoded as JSON, so both formats end up
// in the same raw-JSON argument representation.
package casefile
