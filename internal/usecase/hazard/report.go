package hazard

import (
	"context"
	"strings"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
)

// CreateHazard validates and stores a new hazard report. Draft saves enter
// the workflow at Draft; direct submissions enter at Submitted. The engine
// re-validates required fields regardless of what the presentation layer
// already checked, reporting every missing field together. Nothing is
// stored and nothing is audited when validation fails.
func (s *Service) CreateHazard(ctx context.Context, input CreateHazardInput) (*domainhazard.Hazard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	description := strings.TrimSpace(input.Description)
	area := strings.TrimSpace(input.Area)

	if err := domainhazard.ValidateReport(domainhazard.ReportFields{
		Title:       title,
		Category:    category,
		Description: description,
		Area:        area,
	}); err != nil {
		return nil, err
	}

	classification := domainhazard.ClassificationType(strings.TrimSpace(input.Classification))
	if classification == "" {
		classification = domainhazard.ClassHazard
	}

	mode := parseMode(input.Mode)
	reporter := input.Reporter
	if mode == domainhazard.ModeAnonymous {
		reporter = domainhazard.Reporter{}
	}

	severity := strings.TrimSpace(input.ReporterSeverity)
	if severity == "" {
		severity = "Not given"
	}

	now := s.clock.Now()
	status := domainhazard.StatusSubmitted
	h := &domainhazard.Hazard{
		Title:                title,
		Category:             category,
		Subcategory:          input.Subcategory,
		Station:              input.Station,
		Area:                 area,
		GPSNote:              input.GPSNote,
		ObservedAt:           input.ObservedAt,
		Description:          description,
		PeopleExposed:        input.PeopleExposed,
		PotentialConsequence: input.PotentialConsequence,
		ImmediateActions:     input.ImmediateActions,
		Witnesses:            input.Witnesses,
		AttachmentNames:      append([]string(nil), input.AttachmentNames...),
		Classification:       classification,
		Tags:                 append([]string(nil), input.Tags...),
		Mode:                 mode,
		Reporter:             reporter,
		ReporterSeverity:     severity,
		RiskLevel:            domainhazard.RiskNotAssessed,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if input.Draft {
		status = domainhazard.StatusDraft
	} else {
		submitted := now
		h.SubmittedAt = &submitted
	}
	h.Status = status

	id, err := s.store.Create(ctx, h)
	if err != nil {
		return nil, errs.Wrap(err, "store hazard")
	}

	action := "Report submitted"
	if input.Draft {
		action = "Report created"
	}
	if err := s.audit.Record(ctx, input.Role, action, id, string(status)); err != nil {
		return nil, errs.Wrap(err, "audit report")
	}

	stored, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, id)
	}
	return stored, nil
}

func parseMode(raw string) domainhazard.ReportingMode {
	switch {
	case strings.EqualFold(raw, string(domainhazard.ModeAnonymous)):
		return domainhazard.ModeAnonymous
	case strings.Contains(strings.ToLower(raw), "confidential"):
		return domainhazard.ModeConfidential
	default:
		return domainhazard.ModeNamed
	}
}
