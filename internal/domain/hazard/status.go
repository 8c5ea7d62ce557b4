package hazard

import (
	"fmt"
	"strings"
	"time"
)

// Status is a workflow status. Display strings match the reporting forms.
type Status string

const (
	StatusDraft                Status = "Draft"
	StatusSubmitted            Status = "Submitted"
	StatusTriage               Status = "Triage"
	StatusAssignedActions      Status = "Assigned actions"
	StatusInProgress           Status = "In progress"
	StatusAwaitingVerification Status = "Awaiting verification"
	StatusClosed               Status = "Closed"
	StatusRejected             Status = "Rejected"
)

// WorkflowStatuses lists every status in workflow order.
var WorkflowStatuses = []Status{
	StatusDraft,
	StatusSubmitted,
	StatusTriage,
	StatusAssignedActions,
	StatusInProgress,
	StatusAwaitingVerification,
	StatusClosed,
	StatusRejected,
}

// OpenStatuses lists the statuses counted as open on dashboards.
var OpenStatuses = []Status{
	StatusSubmitted,
	StatusTriage,
	StatusAssignedActions,
	StatusInProgress,
	StatusAwaitingVerification,
}

var allowedStatuses = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(WorkflowStatuses))
	for _, s := range WorkflowStatuses {
		set[s] = struct{}{}
	}
	return set
}()

// ParseStatus resolves case-insensitive status text to a Status.
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	for s := range allowedStatuses {
		if strings.EqualFold(string(s), trimmed) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusRejected
}

// IsOpen reports whether the status counts as open (not draft, not terminal).
func (s Status) IsOpen() bool {
	for _, open := range OpenStatuses {
		if s == open {
			return true
		}
	}
	return false
}

// TransitionTo moves the hazard to a new non-rejected status.
//
// The workflow is deliberately lenient: any non-terminal status may move to
// any other status. The only hard guards are that terminal statuses cannot
// be left and that Rejected must go through RejectWith. Timestamp side
// effects are stamped here so they hold for every caller:
// first entry into Triage sets TriagedAt once, entry into Closed sets
// ClosedAt, and UpdatedAt is refreshed on every transition.
func (h *Hazard) TransitionTo(to Status, now time.Time) error {
	if _, ok := allowedStatuses[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(to))
	}
	if to == StatusRejected {
		return &ValidationError{Fields: []string{"Rejection reason", "Rejection confirmation"}}
	}
	if h.Status.IsTerminal() {
		return &InvalidTransitionError{From: h.Status, To: to}
	}

	h.Status = to
	h.RejectionReason = ""
	h.UpdatedAt = now
	if to == StatusTriage && h.TriagedAt == nil {
		t := now
		h.TriagedAt = &t
	}
	if to == StatusClosed {
		t := now
		h.ClosedAt = &t
	}
	if to != StatusDraft && h.SubmittedAt == nil {
		t := now
		h.SubmittedAt = &t
	}
	return nil
}

// RejectWith moves the hazard to Rejected. Both a non-empty reason and an
// explicit confirmation are required; failing either leaves the hazard
// untouched.
func (h *Hazard) RejectWith(reason string, confirmed bool, now time.Time) error {
	missing := make([]string, 0, 2)
	if strings.TrimSpace(reason) == "" {
		missing = append(missing, "Rejection reason")
	}
	if !confirmed {
		missing = append(missing, "Rejection confirmation")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if h.Status.IsTerminal() {
		return &InvalidTransitionError{From: h.Status, To: StatusRejected}
	}

	h.Status = StatusRejected
	h.RejectionReason = reason
	h.UpdatedAt = now
	t := now
	h.ClosedAt = &t
	return nil
}
