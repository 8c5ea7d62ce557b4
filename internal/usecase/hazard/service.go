package hazard

import (
	"context"
	"errors"
	"time"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
	"hirs/internal/ports"
)

// Service wires the hazard engine over its injected collaborators: the
// keyed hazard store, the append-only audit log, and the clock.
type Service struct {
	store ports.HazardStore
	audit ports.AuditLog
	clock ports.Clock
}

func NewService(store ports.HazardStore, audit ports.AuditLog, clock ports.Clock) *Service {
	return &Service{
		store: store,
		audit: audit,
		clock: clock,
	}
}

type CreateHazardInput struct {
	Title                string
	Category             string
	Subcategory          string
	Station              string
	Area                 string
	GPSNote              string
	ObservedAt           time.Time
	Description          string
	PeopleExposed        string
	PotentialConsequence string
	ImmediateActions     string
	Witnesses            string
	AttachmentNames      []string
	Classification       string
	Tags                 []string
	Mode                 string
	Reporter             domainhazard.Reporter
	ReporterSeverity     string
	Draft                bool
	Role                 string
}

type UpdateStatusInput struct {
	HazardID string
	Status   string
	Role     string
}

type RejectInput struct {
	HazardID  string
	Reason    string
	Confirmed bool
	Role      string
}

type AssessRiskInput struct {
	HazardID   string
	Likelihood int
	Severity   int
	Role       string
}

// AssessmentResult carries the computed rating plus the escalation policy
// the caller is expected to apply.
type AssessmentResult struct {
	Score      int
	Level      domainhazard.RiskLevel
	Escalation domainhazard.Escalation
	Advisories []string
}

type AddActionInput struct {
	HazardID         string
	Title            string
	Type             string
	Owner            string
	Department       string
	Priority         string
	DueDate          time.Time
	RequiredEvidence string
	Role             string
}

// UpdateActionInput is a partial update: nil pointers leave the field
// unchanged; ClearCompletion removes a recorded completion date.
type UpdateActionInput struct {
	HazardID        string
	ActionID        string
	CompletionDate  *time.Time
	ClearCompletion bool
	Verification    *string
	Effectiveness   *string
	Role            string
}

type SetFeedbackInput struct {
	HazardID string
	Feedback string
	Role     string
}

type SaveInvestigationInput struct {
	HazardID            string
	Summary             string
	ContributingFactors string
	Recommendations     string
	LessonsLearned      string
	REDAStyle           bool
	Role                string
}

func (s *Service) guard(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.store == nil {
		return errors.New("hazard store is required")
	}
	if s.audit == nil {
		return errors.New("audit log is required")
	}
	if s.clock == nil {
		return errors.New("clock is required")
	}
	return nil
}

// translateNotFound maps the store sentinel onto the engine's typed
// NotFoundError so callers match one taxonomy.
func translateNotFound(err error, id string) error {
	if errors.Is(err, ports.ErrHazardNotFound) {
		return &domainhazard.NotFoundError{Kind: "hazard", ID: id}
	}
	return err
}
