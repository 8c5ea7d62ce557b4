package hazard

import (
	"context"
	"testing"
	"time"

	domainhazard "hirs/internal/domain/hazard"
)

func seedThree(t *testing.T, svc *Service, clock *testClock) []*domainhazard.Hazard {
	t.Helper()
	ctx := context.Background()

	first := mustCreate(t, svc, validReport())

	clock.now = clock.now.Add(time.Hour)
	fuel := validReport()
	fuel.Title = "Fuel spill during refuel"
	fuel.Category = "Aircraft servicing"
	fuel.Subcategory = "Refueling/fueling safety"
	fuel.Station = "Outstation A"
	fuel.Area = "Stand 8"
	second := mustCreate(t, svc, fuel)

	clock.now = clock.now.Add(time.Hour)
	ladder := validReport()
	ladder.Title = "Damaged ladder in store"
	ladder.Category = "Ground service equipment"
	ladder.Area = "Equipment store"
	third := mustCreate(t, svc, ladder)

	if _, err := svc.AssessRisk(ctx, AssessRiskInput{HazardID: second.ID, Likelihood: 5, Severity: 5}); err != nil {
		t.Fatalf("AssessRisk() error = %v", err)
	}
	return []*domainhazard.Hazard{first, second, third}
}

func TestListHazardsNewestFirst(t *testing.T) {
	svc, clock := newTestService(t)
	hs := seedThree(t, svc, clock)

	list, err := svc.ListHazards(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("ListHazards() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	if list[0].ID != hs[2].ID || list[1].ID != hs[1].ID || list[2].ID != hs[0].ID {
		t.Fatalf("order = %q, %q, %q", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestListHazardsFilters(t *testing.T) {
	svc, clock := newTestService(t)
	hs := seedThree(t, svc, clock)
	ctx := context.Background()

	byRisk, err := svc.ListHazards(ctx, Filter{RiskLevel: "Extreme"})
	if err != nil {
		t.Fatalf("ListHazards(risk) error = %v", err)
	}
	if len(byRisk) != 1 || byRisk[0].ID != hs[1].ID {
		t.Fatalf("byRisk = %+v, want only the fuel spill", byRisk)
	}

	byStation, err := svc.ListHazards(ctx, Filter{Station: "Outstation A"})
	if err != nil {
		t.Fatalf("ListHazards(station) error = %v", err)
	}
	if len(byStation) != 1 {
		t.Fatalf("len(byStation) = %d, want 1", len(byStation))
	}

	byStatus, err := svc.ListHazards(ctx, Filter{Status: "submitted"})
	if err != nil {
		t.Fatalf("ListHazards(status) error = %v", err)
	}
	if len(byStatus) != 2 {
		t.Fatalf("len(byStatus) = %d, want 2", len(byStatus))
	}

	bySearch, err := svc.ListHazards(ctx, Filter{Search: "LADDER"})
	if err != nil {
		t.Fatalf("ListHazards(search) error = %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].ID != hs[2].ID {
		t.Fatalf("bySearch = %+v, want only the ladder report", bySearch)
	}

	combined, err := svc.ListHazards(ctx, Filter{Station: "Outstation A", Search: "fuel"})
	if err != nil {
		t.Fatalf("ListHazards(combined) error = %v", err)
	}
	if len(combined) != 1 {
		t.Fatalf("len(combined) = %d, want 1", len(combined))
	}
}

func TestListHazardsRiskDisplayFallsBack(t *testing.T) {
	svc, _ := newTestService(t)
	input := validReport()
	input.ReporterSeverity = "High"
	mustCreate(t, svc, input)

	list, err := svc.ListHazards(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("ListHazards() error = %v", err)
	}
	if list[0].Risk != "High" {
		t.Fatalf("Risk = %q, want the reporter's High before triage", list[0].Risk)
	}
}

func TestAuditTrailTail(t *testing.T) {
	svc, clock := newTestService(t)
	seedThree(t, svc, clock)

	tail, err := svc.AuditTrail(context.Background(), 2)
	if err != nil {
		t.Fatalf("AuditTrail() error = %v", err)
	}
	if len(tail) != 2 {
		t.Fatalf("len(tail) = %d, want 2", len(tail))
	}
	if tail[1].Action != "Risk assessment saved" {
		t.Fatalf("last action = %q, want Risk assessment saved", tail[1].Action)
	}
}
