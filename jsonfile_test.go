package pctoolbox_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pctoolbox "github.com/timekillerj/pc-toolbox"
)

func TestWriteJSONFile_PrettyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	in := map[string]any{"name": "Alpha", "count": float64(3)}

	if err := pctoolbox.WriteJSONFile(path, in, true); err != nil {
		t.Fatalf("WriteJSONFile() returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "\n    \"count\"") {
		t.Errorf("pretty output not indented four spaces:\n%s", raw)
	}

	var out map[string]any
	if err := pctoolbox.ReadJSONFile(path, &out); err != nil {
		t.Fatalf("ReadJSONFile() returned error: %v", err)
	}
	if out["name"] != "Alpha" || out["count"] != float64(3) {
		t.Errorf("round-trip mismatch: %v", out)
	}
}

func TestWriteJSONFile_Compact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := pctoolbox.WriteJSONFile(path, map[string]string{"a": "b"}, false); err != nil {
		t.Fatalf("WriteJSONFile() returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(strings.TrimSpace(string(raw)), "\n") {
		t.Errorf("compact output spans multiple lines:\n%s", raw)
	}
}

func TestReadJSONFile_Missing(t *testing.T) {
	err := pctoolbox.ReadJSONFile(filepath.Join(t.TempDir(), "absent.json"), &struct{}{})
	var ioe *pctoolbox.IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("ReadJSONFile() error = %v, want *IOError", err)
	}
	if ioe.Op != "read" {
		t.Errorf("IOError.Op = %q, want %q", ioe.Op, "read")
	}
}

func TestReadJSONFile_Malformed(t *testing.T) {
	path := writeTempFile(t, "bad.json", "{oops")
	err := pctoolbox.ReadJSONFile(path, &struct{}{})
	var pe *pctoolbox.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("ReadJSONFile() error = %v, want *ParseError", err)
	}
}

func TestWriteJSONFile_BadDirectory(t *testing.T) {
	err := pctoolbox.WriteJSONFile(filepath.Join(t.TempDir(), "no-such-dir", "out.json"), "x", false)
	var ioe *pctoolbox.IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("WriteJSONFile() error = %v, want *IOError", err)
	}
	if ioe.Op != "write" {
		t.Errorf("IOError.Op = %q, want %q", ioe.Op, "write")
	}
}
