package hazard

import (
	"context"
	"fmt"
	"time"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
)

// SeedSampleData loads two demonstration reports so the workflow has
// something to triage. Idempotent on title: samples already present are
// not duplicated. Returns the number of reports added.
func (s *Service) SeedSampleData(ctx context.Context, role string) (int, error) {
	if err := s.guard(ctx); err != nil {
		return 0, err
	}

	existing, err := s.store.List(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "list hazards")
	}
	present := make(map[string]bool, len(existing))
	for _, h := range existing {
		present[h.Title] = true
	}

	now := s.clock.Now()
	added := 0
	for _, sample := range sampleHazards(now) {
		if present[sample.Title] {
			continue
		}
		actions := sample.Actions
		sample.Actions = nil
		sample.ActionSeq = 0

		id, err := s.store.Create(ctx, sample)
		if err != nil {
			return added, errs.Wrap(err, "store sample hazard")
		}
		if len(actions) > 0 {
			_, err = s.store.Update(ctx, id, func(h *domainhazard.Hazard) error {
				for _, a := range actions {
					a.ID = h.NextActionID()
					h.Actions = append(h.Actions, a)
				}
				return nil
			})
			if err != nil {
				return added, errs.Wrap(err, "store sample actions")
			}
		}
		added++
	}

	detail := fmt.Sprintf("%d sample reports", len(sampleHazards(now)))
	if err := s.audit.Record(ctx, role, "Sample data loaded", "", detail); err != nil {
		return added, errs.Wrap(err, "audit sample load")
	}
	return added, nil
}

func sampleHazards(now time.Time) []*domainhazard.Hazard {
	twoDaysAgo := now.AddDate(0, 0, -2)
	yesterday := now.AddDate(0, 0, -1)
	nextWeek := now.AddDate(0, 0, 7)

	fod := &domainhazard.Hazard{
		Title:                "FOD near stand 14",
		Category:             "Airside / Ramp",
		Subcategory:          "FOD (foreign object debris) and housekeeping",
		Station:              "Main Ramp",
		Area:                 "Stand 14",
		ObservedAt:           twoDaysAgo,
		Description:          "Metal bolt and loose cable observed near stand 14 during pushback. Removed by ramp agent.",
		PeopleExposed:        "2 ramp agents",
		PotentialConsequence: "FOD ingestion",
		ImmediateActions:     "Bolt and cable removed; area swept",
		Witnesses:            "Ramp lead",
		Classification:       domainhazard.ClassHazard,
		Tags:                 []string{"Safety"},
		Mode:                 domainhazard.ModeNamed,
		Reporter:             domainhazard.Reporter{Name: "J. Smith", Department: "Ramp"},
		ReporterSeverity:     "High",
		Likelihood:           3,
		Severity:             4,
		RiskScore:            12,
		RiskLevel:            domainhazard.RiskMedium,
		Status:               domainhazard.StatusAwaitingVerification,
		CreatedAt:            twoDaysAgo,
		UpdatedAt:            now,
		SubmittedAt:          &twoDaysAgo,
		TriagedAt:            &yesterday,
	}
	fod.Actions = []domainhazard.CAPAAction{{
		Title:            "Daily FOD walk",
		Type:             domainhazard.ActionPreventive,
		Owner:            "Ramp Lead",
		Department:       "Ramp",
		Priority:         domainhazard.PriorityMedium,
		DueDate:          nextWeek,
		RequiredEvidence: "Checklist",
		CreatedAt:        yesterday,
	}}

	fuel := &domainhazard.Hazard{
		Title:                "Fuel spill during refuel",
		Category:             "Aircraft servicing",
		Subcategory:          "Refueling/fueling safety",
		Station:              "Main Ramp",
		Area:                 "Stand 8",
		ObservedAt:           yesterday,
		Description:          "Small fuel spill during disconnect; spill contained and reported.",
		PeopleExposed:        "Refueler",
		PotentialConsequence: "Fire risk",
		ImmediateActions:     "Spill kit used; supervisor notified",
		Classification:       domainhazard.ClassIncident,
		Tags:                 []string{"Safety", "Environment"},
		Mode:                 domainhazard.ModeAnonymous,
		ReporterSeverity:     "Critical",
		Likelihood:           2,
		Severity:             5,
		RiskScore:            10,
		RiskLevel:            domainhazard.RiskMedium,
		Status:               domainhazard.StatusTriage,
		CreatedAt:            yesterday,
		UpdatedAt:            now,
		SubmittedAt:          &yesterday,
	}

	return []*domainhazard.Hazard{fod, fuel}
}
