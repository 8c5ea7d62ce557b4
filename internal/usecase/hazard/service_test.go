package hazard

import (
	"context"
	"testing"
	"time"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/infrastructure/auditlog"
	"hirs/internal/infrastructure/memstore"
	"hirs/internal/ports"
)

// testClock is a settable clock so overdue and timestamp behavior can be
// driven without sleeping.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	store := memstore.New()
	audit := auditlog.New(clock)
	return NewService(store, audit, clock), clock
}

func validReport() CreateHazardInput {
	return CreateHazardInput{
		Title:       "FOD near stand 14",
		Category:    "Airside / Ramp",
		Subcategory: "FOD (foreign object debris) and housekeeping",
		Station:     "Main Ramp",
		Area:        "Stand 14",
		Description: "Metal bolt observed near stand 14 during pushback.",
		Mode:        "Named",
		Reporter:    domainhazard.Reporter{Name: "J. Smith", Department: "Ramp"},
		Role:        "Reporter",
	}
}

func mustCreate(t *testing.T, svc *Service, input CreateHazardInput) *domainhazard.Hazard {
	t.Helper()
	h, err := svc.CreateHazard(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateHazard() error = %v", err)
	}
	return h
}

func lastAuditEntry(t *testing.T, svc *Service) ports.AuditEntry {
	t.Helper()
	entries, err := svc.AuditTrail(context.Background(), 0)
	if err != nil {
		t.Fatalf("AuditTrail() error = %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("audit trail is empty")
	}
	return entries[len(entries)-1]
}

func TestServiceGuardNilContext(t *testing.T) {
	svc, _ := newTestService(t)

	var ctx context.Context
	if _, err := svc.GetHazard(ctx, "HZ-0001"); err == nil {
		t.Fatal("GetHazard(nil ctx) error = nil, want error")
	}
}

func TestServiceGuardCancelledContext(t *testing.T) {
	svc, _ := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.CreateHazard(ctx, validReport()); err == nil {
		t.Fatal("CreateHazard(cancelled ctx) error = nil, want error")
	}
}

func TestTranslateNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetHazard(context.Background(), "HZ-9999")
	if !domainhazard.IsNotFound(err) {
		t.Fatalf("GetHazard(missing) error = %v, want NotFoundError", err)
	}
}
