package engine

import (
	"errors"
	"fmt"
)

// Validation failures. They reach the player as "Error: <message>" and never
// stop the loop.
var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrNoDirection        = errors.New("specify a direction (north, south, east, west)")
	ErrNoExit             = errors.New("no exit")
	ErrItemNameRequired   = errors.New("specify an item name")
	ErrItemNotInRoom      = errors.New("item not found")
	ErrItemNotInInventory = errors.New("item not found in inventory")
	ErrNoMonster          = errors.New("there is no monster here")
)

// ErrNotConfigured is returned by save, load and scores when the collaborator is missing.
var ErrNotConfigured = errors.New("not configured")

// InvalidCommandError marks an expected, recoverable failure caused by the
// player's input.
type InvalidCommandError struct {
	Err error
}

func (e *InvalidCommandError) Error() string { return e.Err.Error() }
func (e *InvalidCommandError) Unwrap() error { return e.Err }

func invalid(err error) error {
	return &InvalidCommandError{Err: err}
}

func invalidf(sentinel error, detail string) error {
	return invalid(fmt.Errorf("%w: %s", sentinel, detail))
}

// IsInvalidCommand reports whether err is a validation failure.
func IsInvalidCommand(err error) bool {
	var ic *InvalidCommandError
	return errors.As(err, &ic)
}

// PanicError carries a value recovered from a panicking command.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// termination ends the session: exit or death. It is turned into an Outcome
// at the dispatch boundary and never shown as an error.
type termination struct {
	status Status
}

func (t *termination) Error() string { return t.status.String() }

var (
	errExit   = &termination{status: StatusExit}
	errDefeat = &termination{status: StatusDefeat}
)

// category names the innermost error type, e.g. "*fs.PathError".
func category(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return fmt.Sprintf("%T", err)
		}
		err = next
	}
}
