package pctoolbox_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	pctoolbox "github.com/timekillerj/pc-toolbox"
)

func TestConfirm_SkipBypassesPrompt(t *testing.T) {
	var out bytes.Buffer
	// Reader that would decline if consulted.
	if err := pctoolbox.Confirm(strings.NewReader("no\n"), &out, true); err != nil {
		t.Fatalf("Confirm(skip=true) returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Confirm(skip=true) wrote output: %q", out.String())
	}
}

func TestConfirm_AcceptsYesAndY(t *testing.T) {
	for _, response := range []string{"yes\n", "y\n", "  yes  \n"} {
		var out bytes.Buffer
		if err := pctoolbox.Confirm(strings.NewReader(response), &out, false); err != nil {
			t.Errorf("Confirm(%q) returned error: %v", response, err)
		}
		if !strings.Contains(out.String(), "Would you like to continue") {
			t.Errorf("Confirm(%q) did not display the prompt", response)
		}
	}
}

func TestConfirm_DeclinesEverythingElse(t *testing.T) {
	for _, response := range []string{"no\n", "YES\n", "Y\n", "yep\n", "\n", ""} {
		var out bytes.Buffer
		err := pctoolbox.Confirm(strings.NewReader(response), &out, false)
		if !errors.Is(err, pctoolbox.ErrUserDeclined) {
			t.Errorf("Confirm(%q) error = %v, want ErrUserDeclined", response, err)
		}
	}
}
