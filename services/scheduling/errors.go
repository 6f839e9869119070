package scheduling

import (
	"errors"
	"fmt"
)

// Validation reason codes. Each rejected request names its specific
// reason so callers can present an actionable message; the engine
// never coerces an invalid request into a valid one.
const (
	ReasonInvalidDate     = "invalidDate"
	ReasonInvalidStart    = "invalidStart"
	ReasonInvalidDuration = "invalidDuration"
	ReasonCrossesMidnight = "crossesMidnight"
	ReasonPastDate        = "pastDate"
	ReasonBlocked         = "blockedDay"
	ReasonConflict        = "slotConflict"
	ReasonMonthOutOfRange = "monthOutOfRange"
)

type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, msg string) error {
	return &ValidationError{
		Code:    code,
		Message: msg,
	}
}

// AsValidation unwraps err to a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
