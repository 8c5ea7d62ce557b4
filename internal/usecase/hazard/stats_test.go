package hazard

import (
	"context"
	"testing"
	"time"
)

func TestStatsAggregates(t *testing.T) {
	svc, clock := newTestService(t)
	hs := seedThree(t, svc, clock)
	ctx := context.Background()

	// close the assessed one a day later, reject the oldest
	clock.now = clock.now.Add(24 * time.Hour)
	if _, err := svc.UpdateStatus(ctx, UpdateStatusInput{HazardID: hs[1].ID, Status: "Closed"}); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := svc.Reject(ctx, RejectInput{HazardID: hs[0].ID, Reason: "duplicate", Confirmed: true}); err != nil {
		t.Fatalf("reject: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 3 || stats.Open != 1 || stats.Closed != 1 || stats.Rejected != 1 {
		t.Fatalf("counts = %d/%d/%d/%d, want 3/1/1/1", stats.Total, stats.Open, stats.Closed, stats.Rejected)
	}
	if stats.ByCategory["Aircraft servicing"] != 1 || stats.ByCategory["Ground service equipment"] != 1 {
		t.Fatalf("ByCategory = %v", stats.ByCategory)
	}
	if stats.OpenByStation["Main Ramp"] != 1 {
		t.Fatalf("OpenByStation = %v", stats.OpenByStation)
	}
	if stats.HeatMap[4][4] != 1 {
		t.Fatalf("HeatMap[4][4] = %d, want 1", stats.HeatMap[4][4])
	}
	if stats.AvgDaysToClose <= 0 {
		t.Fatalf("AvgDaysToClose = %v, want > 0", stats.AvgDaysToClose)
	}
	if stats.AvgDaysToTriage < 0 {
		t.Fatalf("AvgDaysToTriage = %v", stats.AvgDaysToTriage)
	}
}

func TestStatsDraftsNotCountedOpen(t *testing.T) {
	svc, _ := newTestService(t)

	input := validReport()
	input.Draft = true
	mustCreate(t, svc, input)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 1 || stats.Open != 0 {
		t.Fatalf("Total/Open = %d/%d, want 1/0", stats.Total, stats.Open)
	}
	if len(stats.OpenByStation) != 0 || len(stats.OpenByRisk) != 0 {
		t.Fatalf("OpenByStation = %v, OpenByRisk = %v, want empty", stats.OpenByStation, stats.OpenByRisk)
	}
}

func TestStatsCycleTimesRunFromSubmission(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	input := validReport()
	input.Draft = true
	h := mustCreate(t, svc, input)

	// Report sat in draft for two days before submission; only the day
	// between submission and triage counts.
	clock.now = clock.now.Add(48 * time.Hour)
	if _, err := svc.UpdateStatus(ctx, UpdateStatusInput{HazardID: h.ID, Status: "Submitted"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	clock.now = clock.now.Add(24 * time.Hour)
	if _, err := svc.AssessRisk(ctx, AssessRiskInput{HazardID: h.ID, Likelihood: 2, Severity: 2}); err != nil {
		t.Fatalf("assess: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.AvgDaysToTriage != 1 {
		t.Fatalf("AvgDaysToTriage = %v, want 1", stats.AvgDaysToTriage)
	}

	clock.now = clock.now.Add(24 * time.Hour)
	if _, err := svc.UpdateStatus(ctx, UpdateStatusInput{HazardID: h.ID, Status: "Closed"}); err != nil {
		t.Fatalf("close: %v", err)
	}
	stats, err = svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.AvgDaysToClose != 2 {
		t.Fatalf("AvgDaysToClose = %v, want 2", stats.AvgDaysToClose)
	}
}

func TestStatsOpenByRiskOnlyAssessedBands(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	input := validReport()
	input.ReporterSeverity = "Critical"
	h := mustCreate(t, svc, input)

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(stats.OpenByRisk) != 0 {
		t.Fatalf("OpenByRisk before assessment = %v, want empty", stats.OpenByRisk)
	}

	if _, err := svc.AssessRisk(ctx, AssessRiskInput{HazardID: h.ID, Likelihood: 5, Severity: 5}); err != nil {
		t.Fatalf("assess: %v", err)
	}
	stats, err = svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(stats.OpenByRisk) != 1 || stats.OpenByRisk["Extreme"] != 1 {
		t.Fatalf("OpenByRisk after assessment = %v, want {Extreme: 1}", stats.OpenByRisk)
	}
}

func TestStatsEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 0 || stats.AvgDaysToTriage != 0 || stats.AvgDaysToClose != 0 {
		t.Fatalf("stats = %+v, want zeros", stats)
	}
}

func TestExportHazardsAndActions(t *testing.T) {
	svc, clock := newTestService(t)
	hs := seedThree(t, svc, clock)
	ctx := context.Background()

	due := clock.now.AddDate(0, 0, 7)
	if _, err := svc.AddAction(ctx, AddActionInput{
		HazardID:   hs[1].ID,
		Title:      "Review fueling procedure",
		Type:       "Corrective",
		Owner:      "Fuel Supervisor",
		Department: "Fuel",
		DueDate:    due,
	}); err != nil {
		t.Fatalf("AddAction() error = %v", err)
	}

	rows, err := svc.ExportHazards(ctx)
	if err != nil {
		t.Fatalf("ExportHazards() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].ID != hs[2].ID {
		t.Fatalf("rows[0].ID = %q, want newest first", rows[0].ID)
	}
	for _, r := range rows {
		if r.CreatedAt == "" || r.SubmittedAt == "" {
			t.Fatalf("row %q missing timestamps: %+v", r.ID, r)
		}
		if r.ClosedAt != "" {
			t.Fatalf("row %q has ClosedAt while open", r.ID)
		}
	}

	actions, err := svc.ExportActions(ctx)
	if err != nil {
		t.Fatalf("ExportActions() error = %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("len(actions) = %d, want 1", len(actions))
	}
	a := actions[0]
	if a.ReportID != hs[1].ID || a.Type != "Corrective" || a.DueDate != due.Format("2006-01-02") {
		t.Fatalf("action row = %+v", a)
	}
	if a.CompletionDate != "" {
		t.Fatalf("CompletionDate = %q, want empty", a.CompletionDate)
	}
}

func TestSeedSampleDataIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	added, err := svc.SeedSampleData(ctx, "Admin")
	if err != nil {
		t.Fatalf("SeedSampleData() error = %v", err)
	}
	if added != 2 {
		t.Fatalf("added = %d, want 2", added)
	}

	list, err := svc.ListHazards(ctx, Filter{})
	if err != nil {
		t.Fatalf("ListHazards() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}

	fod, err := svc.GetHazard(ctx, "HZ-0001")
	if err != nil {
		t.Fatalf("GetHazard() error = %v", err)
	}
	if len(fod.Actions) != 1 || fod.Actions[0].ID != "HZ-0001-A1" {
		t.Fatalf("sample actions = %+v, want one with id HZ-0001-A1", fod.Actions)
	}

	if entry := lastAuditEntry(t, svc); entry.Action != "Sample data loaded" || entry.Detail != "2 sample reports" {
		t.Fatalf("audit = %q / %q", entry.Action, entry.Detail)
	}

	again, err := svc.SeedSampleData(ctx, "Admin")
	if err != nil {
		t.Fatalf("second SeedSampleData() error = %v", err)
	}
	if again != 0 {
		t.Fatalf("second load added = %d, want 0", again)
	}
	list, _ = svc.ListHazards(ctx, Filter{})
	if len(list) != 2 {
		t.Fatalf("len(list) after reload = %d, want 2", len(list))
	}
}
