package pctoolbox

import (
	"encoding/json"
	"os"
)

// ReadJSONFile decodes the JSON file at path into v.
// Returns *IOError when the file cannot be opened and *ParseError when
// the contents are not well-formed JSON.
func ReadJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// WriteJSONFile encodes v as JSON to the file at path, overwriting any
// existing file. When pretty is true the output is indented four spaces.
func WriteJSONFile(path string, v any, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	enc := json.NewEncoder(f)
	if pretty {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(v); err != nil {
		_ = f.Close() // Best-effort close; the encode error is the real failure
		return &IOError{Op: "write", Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
