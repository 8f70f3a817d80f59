// SPDX-License-Identifier: MIT
package cxt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three tagged failure variants a Burmeister parse
// can surface. Use errors.Is against these, not string matching.
var (
	// ErrIO wraps an underlying byte-stream failure while reading a .cxt file.
	ErrIO = errors.New("cxt: io error")
	// ErrParseInt marks a malformed integer in the .cxt header (lines 3-4).
	ErrParseInt = errors.New("cxt: integer parse error")
	// ErrFormatInvalid marks a structurally wrong .cxt file: a missing or
	// wrong header line, a short incidence row, or a truncated file.
	ErrFormatInvalid = errors.New("cxt: invalid burmeister format")
)

// ioErrorf wraps cause under ErrIO with positional context: the name of the
// field being read, e.g. "object name".
func ioErrorf(where string, cause error) error {
	return fmt.Errorf("cxt: %s: %w: %w", where, ErrIO, cause)
}

// parseIntErrorf wraps cause under ErrParseInt with positional context.
func parseIntErrorf(where string, cause error) error {
	return fmt.Errorf("cxt: %s: %w: %w", where, ErrParseInt, cause)
}

// formatInvalidf reports a structural defect under ErrFormatInvalid.
func formatInvalidf(format string, args ...any) error {
	return fmt.Errorf("cxt: %w: %s", ErrFormatInvalid, fmt.Sprintf(format, args...))
}
