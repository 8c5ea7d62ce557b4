package hazard

import (
	"context"
	"fmt"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
)

// AssessRisk records a triage rating on a hazard. Likelihood and severity
// must both be in [1,5]; the score and level follow from the 5x5 matrix.
// The first assessment stamps triaged_at, and a hazard still sitting in
// Submitted auto-advances to Triage. Identical inputs always yield the
// same score and level.
func (s *Service) AssessRisk(ctx context.Context, input AssessRiskInput) (AssessmentResult, error) {
	if err := s.guard(ctx); err != nil {
		return AssessmentResult{}, err
	}

	if err := domainhazard.ValidateAssessment(domainhazard.AssessmentFields{
		Likelihood: input.Likelihood,
		Severity:   input.Severity,
	}); err != nil {
		return AssessmentResult{}, err
	}

	score, level := domainhazard.ScoreAndLevel(input.Likelihood, input.Severity)

	now := s.clock.Now()
	updated, err := s.store.Update(ctx, input.HazardID, func(h *domainhazard.Hazard) error {
		h.Likelihood = input.Likelihood
		h.Severity = input.Severity
		h.RiskScore = score
		h.RiskLevel = level
		h.UpdatedAt = now
		if h.TriagedAt == nil {
			t := now
			h.TriagedAt = &t
		}
		if h.Status == domainhazard.StatusSubmitted {
			h.Status = domainhazard.StatusTriage
		}
		return nil
	})
	if err != nil {
		return AssessmentResult{}, translateNotFound(err, input.HazardID)
	}

	detail := fmt.Sprintf("%s (L%d×S%d)", level, input.Likelihood, input.Severity)
	if err := s.audit.Record(ctx, input.Role, "Risk assessment saved", updated.ID, detail); err != nil {
		return AssessmentResult{}, errs.Wrap(err, "audit assessment")
	}

	rule, _ := domainhazard.EscalationFor(level)
	return AssessmentResult{
		Score:      score,
		Level:      level,
		Escalation: rule,
		Advisories: domainhazard.Advisories(updated.Category, updated.Subcategory),
	}, nil
}
