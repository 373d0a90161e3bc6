// Package bridge provides common error definitions.
package bridge

import "errors"

// ErrStateUnavailable is matched by every error returned when shared state
// cannot be read because its guard was left inconsistent.
var ErrStateUnavailable = errors.New("state unavailable")

// StateUnavailableError carries the message surfaced to the view when the
// startup arguments cannot be read.
type StateUnavailableError struct {
	Message string
}

func (e *StateUnavailableError) Error() string {
	return e.Message
}

// Is reports whether target is ErrStateUnavailable.
func (e *StateUnavailableError) Is(target error) bool {
	return target == ErrStateUnavailable
}
