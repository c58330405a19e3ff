// Package errors provides sentinel errors and error types for termchess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move the piece cannot make.
	ErrIllegalMove = errors.New("invalid move")

	// ErrWrongTurn indicates a piece of the side not to move was moved.
	ErrWrongTurn = errors.New("not this player's turn")

	// ErrSelfCheck indicates a move that would leave the mover's king in check.
	ErrSelfCheck = errors.New("would be in check")

	// ErrInvalidSquare indicates square text that is not a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidCoord indicates a coordinate pair off the board.
	ErrInvalidCoord = errors.New("invalid coordinates")

	// ErrEmptySquare indicates a move starting from an empty square.
	ErrEmptySquare = errors.New("start square had no piece on it")

	// ErrInvalidNotation indicates malformed move text.
	ErrInvalidNotation = errors.New("invalid move text")

	// ErrNoCandidate indicates that no piece can reach the named square.
	ErrNoCandidate = errors.New("no piece can make that move")

	// ErrAmbiguousMove indicates more than one piece can reach the named square.
	ErrAmbiguousMove = errors.New("more than one piece can make that move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps an engine rejection with the move and the side that tried it.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The rejected move (if known)
	Side     string // The colour that attempted the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, " ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a move-text parsing error.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with input and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
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
