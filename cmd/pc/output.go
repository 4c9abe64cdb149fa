package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	pctoolbox "github.com/timekillerj/pc-toolbox"
)

// outputAsJSON writes any value as formatted JSON to the command's stdout.
func outputAsJSON(cmd *cobra.Command, v interface{}) error {
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// statusCodeFor maps an error to the status code printed at the exit
// boundary. Usage problems, a missing settings file, and a declined
// prompt report 400; unreadable or out-of-date files and I/O failures
// report 500. The process exit code is always 1 on failure.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, pctoolbox.ErrMissingArguments),
		errors.Is(err, pctoolbox.ErrSettingsNotFound),
		errors.Is(err, pctoolbox.ErrUserDeclined):
		return 400
	}
	return 500
}

// outputError prints an error with its status code, ensuring no secret
// key is leaked.
func outputError(w io.Writer, err error) {
	msg := scrubSensitiveData(err.Error())
	fmt.Fprintf(w, "\nStatus Code: %d\n%s\n", statusCodeFor(err), msg)
}

// scrubSensitiveData removes the secret key from error messages.
// The library already avoids including it, but this is defense in depth.
func scrubSensitiveData(msg string) string {
	if cfgPassword != "" && strings.Contains(msg, cfgPassword) {
		msg = strings.ReplaceAll(msg, cfgPassword, "[REDACTED]")
	}
	return msg
}

// maskSecret hides a secret key for display, keeping just enough to
// recognize which key is configured.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}

// stringOrDash renders a nullable settings field for human output.
func stringOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
