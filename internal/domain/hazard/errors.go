package hazard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStatus     = errors.New("unknown workflow status")
	ErrUnknownRiskLevel  = errors.New("unknown risk level")
	ErrUnknownActionType = errors.New("unknown action type")
	ErrUnknownPriority   = errors.New("unknown action priority")
	ErrHazardRequired    = errors.New("hazard id is required")
)

// ValidationError reports missing or out-of-range input. Fields carries the
// full list of offending fields, not just the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "required fields missing or invalid: " + strings.Join(e.Fields, ", ")
}

// InvalidTransitionError reports an attempted transition out of a terminal
// status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status %q is terminal: cannot transition to %q", e.From, e.To)
}

// NotFoundError reports an unknown hazard or action id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidTransition reports whether err is (or wraps) an
// InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var it *InvalidTransitionError
	return errors.As(err, &it)
}
