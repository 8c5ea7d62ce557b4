package hazard

import (
	"context"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
)

// SetFeedback stores or replaces the feedback text shown to the reporter.
func (s *Service) SetFeedback(ctx context.Context, input SetFeedbackInput) (*domainhazard.Hazard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	updated, err := s.store.Update(ctx, input.HazardID, func(h *domainhazard.Hazard) error {
		h.ReporterFeedback = input.Feedback
		h.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err, input.HazardID)
	}

	if err := s.audit.Record(ctx, input.Role, "Reporter feedback updated", updated.ID, ""); err != nil {
		return nil, errs.Wrap(err, "audit feedback")
	}
	return updated, nil
}

// SaveInvestigation stores the hazard's single investigation record,
// replacing any previous content.
func (s *Service) SaveInvestigation(ctx context.Context, input SaveInvestigationInput) (*domainhazard.Hazard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	updated, err := s.store.Update(ctx, input.HazardID, func(h *domainhazard.Hazard) error {
		h.Investigation = &domainhazard.Investigation{
			Summary:             input.Summary,
			ContributingFactors: input.ContributingFactors,
			Recommendations:     input.Recommendations,
			LessonsLearned:      input.LessonsLearned,
			REDAStyle:           input.REDAStyle,
			UpdatedAt:           now,
		}
		h.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err, input.HazardID)
	}

	if err := s.audit.Record(ctx, input.Role, "Investigation saved", updated.ID, ""); err != nil {
		return nil, errs.Wrap(err, "audit investigation")
	}
	return updated, nil
}
