package pctoolbox

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirm asks for interactive verification before commands run against
// a tenant. When skip is true (the --yes flag) it returns immediately.
// Otherwise it reads one line from r and returns nil only for a trimmed,
// case-sensitive "y" or "yes"; any other response, or end of input,
// yields ErrUserDeclined.
//
// The reader and writer are injected so callers can confirm against any
// terminal and tests never need a real stdin.
func Confirm(r io.Reader, w io.Writer, skip bool) error {
	if skip {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ready to execute commands against your Prisma Cloud tenant ...")
	fmt.Fprint(w, "Would you like to continue (y or yes)? ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return &IOError{Op: "read", Path: "stdin", Err: err}
	}
	fmt.Fprintln(w)

	switch strings.TrimSpace(line) {
	case "y", "yes":
		return nil
	}
	return ErrUserDeclined
}
