// Package errors provides sentinel errors and error types for the FEN codec.
// It defines the parse failure taxonomy and a structured error type that
// preserves field context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN is matched by every FEN parse failure.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrMissingField indicates fewer than six space-separated fields.
	ErrMissingField = errors.New("not enough fields")

	// ErrMalformedPlacement indicates a bad piece placement field.
	ErrMalformedPlacement = errors.New("malformed piece placement")

	// ErrMalformedColour indicates an active colour other than "w" or "b".
	ErrMalformedColour = errors.New("malformed active colour")

	// ErrMalformedCastling indicates a castling field that is not "-" or a subset of "KQkq".
	ErrMalformedCastling = errors.New("malformed castling availability")

	// ErrMalformedEnPassant indicates an en-passant field that is neither "-" nor a square.
	ErrMalformedEnPassant = errors.New("malformed en passant target")

	// ErrMalformedSquare indicates a square token that fails the square grammar.
	ErrMalformedSquare = errors.New("malformed square")

	// ErrMalformedNumber indicates a clock field that is not a decimal in 0..255.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error codes reported to API clients.
const (
	CodeInvalidFEN         = "INVALID_FEN"
	CodeMissingField       = "MISSING_FIELD"
	CodeMalformedPlacement = "MALFORMED_PLACEMENT"
	CodeMalformedColour    = "MALFORMED_COLOUR"
	CodeMalformedCastling  = "MALFORMED_CASTLING"
	CodeMalformedEnPassant = "MALFORMED_EN_PASSANT"
	CodeMalformedSquare    = "MALFORMED_SQUARE"
	CodeMalformedNumber    = "MALFORMED_NUMBER"
	CodeInvalidConfig      = "INVALID_CONFIG"
	CodeUnknown            = "UNKNOWN"
)

// Most specific first: ErrInvalidFEN wraps everything else.
var codes = []struct {
	err  error
	code string
}{
	{ErrMissingField, CodeMissingField},
	{ErrMalformedPlacement, CodeMalformedPlacement},
	{ErrMalformedColour, CodeMalformedColour},
	{ErrMalformedCastling, CodeMalformedCastling},
	{ErrMalformedEnPassant, CodeMalformedEnPassant},
	{ErrMalformedSquare, CodeMalformedSquare},
	{ErrMalformedNumber, CodeMalformedNumber},
	{ErrInvalidConfig, CodeInvalidConfig},
	{ErrInvalidFEN, CodeInvalidFEN},
}

// Code returns the API error code for err, or CodeUnknown.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}

// FieldError reports a failure in one FEN field. It unwraps to its sentinel,
// to ErrInvalidFEN and to the underlying cause, if any.
type FieldError struct {
	Err    error  // The sentinel describing the failure
	Field  string // Field name, e.g. "half-move clock"
	Index  int    // 0-based field index in the FEN string
	Value  string // The offending text
	Detail string // Extra context, e.g. "rank 3"
	Cause  error  // Underlying error, e.g. *strconv.NumError
}

// Error returns a formatted error message identifying the field and why it failed.
func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: field %d (%s)", ErrInvalidFEN, e.Index+1, e.Field)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Value != "" {
		msg += fmt.Sprintf(": %q", e.Value)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the sentinel, ErrInvalidFEN and the cause so errors.Is()
// and errors.As() work through the FieldError wrapper.
func (e *FieldError) Unwrap() []error {
	errs := []error{ErrInvalidFEN}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
