package booking

import (
	"errors"
	"fmt"
)

// InvalidTransitionError reports a state-machine contract violation:
// a transition attempted from a terminal state, a re-approve, or an
// unknown booking id. Callers must treat it as a stale-client error
// and not retry.
type InvalidTransitionError struct {
	BookingID string
	Status    string // current status, empty when the booking does not exist
	Op        string
}

func (e *InvalidTransitionError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("cannot %s booking %s: not found", e.Op, e.BookingID)
	}
	return fmt.Sprintf("cannot %s booking %s in status %q", e.Op, e.BookingID, e.Status)
}

func newInvalidTransition(op, id, status string) error {
	return &InvalidTransitionError{BookingID: id, Status: status, Op: op}
}

// AsInvalidTransition unwraps err to an InvalidTransitionError if it is one.
func AsInvalidTransition(err error) (*InvalidTransitionError, bool) {
	var ite *InvalidTransitionError
	if errors.As(err, &ite) {
		return ite, true
	}
	return nil, false
}
