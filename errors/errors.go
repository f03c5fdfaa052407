// Package errors defines parse errors for the HTML5 parser.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotImplemented is returned when a feature is not yet implemented.
var ErrNotImplemented = errors.New("not implemented")

// ParseError represents a single parse error with location information.
type ParseError struct {
	// Code is the error code (e.g., "unexpected-null-character").
	// These codes follow the WHATWG HTML5 specification.
	Code string

	// Message is a human-readable error message.
	Message string

	// Line is the 1-based line number where the error occurred.
	Line int

	// Column is the 1-based column number where the error occurred.
	Column int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParseErrors is a collection of parse errors.
// It implements the error interface so it can be returned from Parse.
type ParseErrors []*ParseError

// Error implements the error interface.
func (e ParseErrors) Error() string {
	if len(e) == 0 {
		return "no parse errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d parse errors:\n", len(e)))
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying errors for errors.Is/As support.
func (e ParseErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// SinkError wraps a failure raised by the tree sink itself, as distinct from
// a parse error recovered from malformed markup. A sink error means the tree
// constructor asked its sink to do something the sink's contract forbids
// (for example, attaching a node under its own descendant); it is always a
// constructor bug rather than a property of the input document.
type SinkError struct {
	// Op names the sink operation that failed (e.g., "append", "insert-before").
	Op string

	// Err is the underlying error reported by the sink.
	Err error
}

// Error implements the error interface.
func (e *SinkError) Error() string {
	return fmt.Sprintf("sink error during %s: %s", e.Op, e.Err)
}

// Unwrap supports errors.Is/As against the wrapped sink failure.
func (e *SinkError) Unwrap() error {
	return e.Err
}

// CallerError represents invalid input supplied by the caller of Parse or
// ParseFragment itself, such as an unsupported fragment context element or
// an option combination the parser cannot honor. Caller errors are detected
// and returned before any tokenization begins, so they never appear mixed in
// with parse errors collected mid-document.
type CallerError struct {
	// Message describes what the caller supplied and why it is invalid.
	Message string
}

// Error implements the error interface.
func (e *CallerError) Error() string {
	return fmt.Sprintf("invalid parser input: %s", e.Message)
}

// SelectorError represents an error in CSS selector parsing.
type SelectorError struct {
	// Selector is the original selector string.
	Selector string

	// Position is the character position where the error occurred.
	Position int

	// Message describes the error.
	Message string
}

// Error implements the error interface.
func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q at position %d: %s", e.Selector, e.Position, e.Message)
}
