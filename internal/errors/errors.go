// Package errors defines the closed error taxonomy for move parsing and
// game-record handling. Every failure is one of the sentinel values below,
// optionally wrapped with context, and is inspected with errors.Is().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for move parsing and validation.
var (
	// ErrMissingMoveData indicates an empty move string or a move that is
	// semantically incomplete (e.g. a pawn capture without an origin file).
	ErrMissingMoveData = errors.New("missing move data")

	// ErrInvalidInputFormat indicates non-ASCII move input. It is distinct
	// from grammar errors so the UI can report encoding problems separately.
	ErrInvalidInputFormat = errors.New("invalid input format")

	// ErrInvalidMove indicates a grammar violation in the move string.
	ErrInvalidMove = errors.New("invalid move")

	// ErrImpossibleMove indicates semantically contradictory move flags,
	// such as check combined with checkmate.
	ErrImpossibleMove = errors.New("impossible move")

	// ErrMissingDestination indicates a destination square with only one of
	// file and rank present.
	ErrMissingDestination = errors.New("missing destination square")

	// ErrInvalidTag indicates malformed game-record tag data, such as a
	// non-numeric round component.
	ErrInvalidTag = errors.New("invalid tag value")
)

// MoveError wraps a move failure with the offending move text. It
// unwraps to one of the sentinel errors above.
type MoveError struct {
	Err  error  // The underlying sentinel error
	Text string // The move text that failed
}

// Error returns the message including the move text when available.
func (e *MoveError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("move %q: %v", e.Text, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is() through the
// MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
