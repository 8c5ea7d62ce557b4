package hazard

import "time"

// ActionType is the CAPA action kind.
type ActionType string

const (
	ActionImmediate  ActionType = "Immediate"
	ActionCorrective ActionType = "Corrective"
	ActionPreventive ActionType = "Preventive"
)

// ActionTypes lists the closed action type set.
var ActionTypes = []ActionType{ActionImmediate, ActionCorrective, ActionPreventive}

// Priority is the CAPA action priority.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Priorities lists the closed priority set.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// ParseActionType resolves action type text.
func ParseActionType(raw string) (ActionType, error) {
	for _, t := range ActionTypes {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", ErrUnknownActionType
}

// ParsePriority resolves priority text.
func ParsePriority(raw string) (Priority, error) {
	for _, p := range Priorities {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", ErrUnknownPriority
}

// CAPAAction is a corrective or preventive action owned by exactly one
// hazard. Due and completion dates are calendar dates; time-of-day is not
// significant.
type CAPAAction struct {
	ID               string
	Title            string
	Type             ActionType
	Owner            string
	Department       string
	Priority         Priority
	DueDate          time.Time
	RequiredEvidence string
	CompletionDate   *time.Time
	Verification     string
	Effectiveness    string
	CreatedAt        time.Time
}

// Overdue reports whether the action's due date has passed without a
// recorded completion. Computed, never stored: asOf moves independently of
// any mutation.
func (a CAPAAction) Overdue(asOf time.Time) bool {
	if a.DueDate.IsZero() || a.CompletionDate != nil {
		return false
	}
	return DateOf(a.DueDate).Before(DateOf(asOf))
}

// OverdueActions filters to actions overdue as of the given date.
func OverdueActions(actions []CAPAAction, asOf time.Time) []CAPAAction {
	out := make([]CAPAAction, 0, len(actions))
	for _, a := range actions {
		if a.Overdue(asOf) {
			out = append(out, a)
		}
	}
	return out
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
