package deviceservice

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by collaborators when a package, resource, setting or camera does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned when the caller lacks a permission the platform checks.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrServiceUnavailable is returned when a system service cannot be reached.
	ErrServiceUnavailable = errors.New("system service unavailable")
	// ErrUnknownCapability is returned by Probe for a name it does not know.
	ErrUnknownCapability = errors.New("unknown capability")
	// ErrUnknownAction is returned by Run for a name it does not know.
	ErrUnknownAction = errors.New("unknown action")
)

// CommandError wraps the failure of a one-shot command.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// isAbsence reports whether err means "the thing is not there" rather than "the query broke".
func isAbsence(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrPermissionDenied)
}
