// Package errs wraps cockroachdb/errors so the rest of the codebase has a
// single import for error construction, wrapping and sentinel marking.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original chain. Returns nil for
// a nil err so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as an errors.Is target of err without changing the
// message. A nil err collapses to the mark itself.
//
// The mark participates in the stdlib Unwrap chain, so plain errors.Is
// finds both the original cause and the sentinel.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string   { return e.cause.Error() }
func (e *markedError) Unwrap() []error { return []error{e.cause, e.mark} }

// Format keeps the cause's verbose rendering (stacks from cockroachdb
// wrapping) visible through the mark.
func (e *markedError) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), e.cause)
}

// ExtractStackLines renders the %+v form of err capped at maxLines, for
// structured log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
