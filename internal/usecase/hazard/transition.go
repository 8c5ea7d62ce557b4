package hazard

import (
	"context"
	"strings"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
)

// UpdateStatus moves a hazard to a new workflow status. Timestamp side
// effects (triaged_at, closed_at, updated_at) are stamped inside the
// domain transition, so they hold for every caller. Moving to Rejected is
// not possible here; that path carries its own guard and lives in Reject.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domainhazard.Hazard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	to, err := domainhazard.ParseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	updated, err := s.store.Update(ctx, input.HazardID, func(h *domainhazard.Hazard) error {
		return h.TransitionTo(to, now)
	})
	if err != nil {
		return nil, translateNotFound(err, input.HazardID)
	}

	if err := s.audit.Record(ctx, input.Role, "Status updated", updated.ID, string(to)); err != nil {
		return nil, errs.Wrap(err, "audit status update")
	}
	return updated, nil
}

// Reject moves a hazard to the terminal Rejected status. The transition is
// guarded twice: the reason must be non-empty and the caller must have
// explicitly confirmed. Both failures surface as ValidationError and leave
// the hazard untouched.
func (s *Service) Reject(ctx context.Context, input RejectInput) (*domainhazard.Hazard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(input.Reason)
	now := s.clock.Now()
	updated, err := s.store.Update(ctx, input.HazardID, func(h *domainhazard.Hazard) error {
		return h.RejectWith(reason, input.Confirmed, now)
	})
	if err != nil {
		return nil, translateNotFound(err, input.HazardID)
	}

	if err := s.audit.Record(ctx, input.Role, "Status updated to Rejected", updated.ID, reason); err != nil {
		return nil, errs.Wrap(err, "audit rejection")
	}
	return updated, nil
}
