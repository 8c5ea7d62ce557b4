package hazard

import (
	"strings"
	"testing"
)

func TestEscalationForHasExactlyFourEntries(t *testing.T) {
	for _, level := range RiskLevels {
		rule, ok := EscalationFor(level)
		if !ok {
			t.Fatalf("EscalationFor(%q) missing", level)
		}
		if rule.Response == "" {
			t.Fatalf("EscalationFor(%q) empty response", level)
		}
	}

	if _, ok := EscalationFor(RiskNotAssessed); ok {
		t.Fatalf("EscalationFor(Not assessed) should not resolve")
	}
}

func TestOnlyExtremeSignalsStopContain(t *testing.T) {
	for _, level := range RiskLevels {
		rule, _ := EscalationFor(level)
		want := level == RiskExtreme
		if rule.StopContain != want {
			t.Fatalf("StopContain for %q = %v, want %v", level, rule.StopContain, want)
		}
	}
}

func TestAdvisoriesMatchCategoryText(t *testing.T) {
	got := Advisories("Airside / Ramp", "FOD (foreign object debris) and housekeeping")
	if len(got) != 1 || !strings.Contains(got[0], "FOD-related") {
		t.Fatalf("FOD advisories = %v", got)
	}

	got = Advisories("Aircraft servicing", "Refueling/fueling safety (bonding/earthing, ignition sources, spill control)")
	if len(got) != 1 || !strings.Contains(got[0], "Fueling-related") {
		t.Fatalf("fuel advisories = %v", got)
	}

	// Matching is case-insensitive.
	if got = Advisories("airside fod zone", ""); len(got) != 1 {
		t.Fatalf("case-insensitive FOD advisories = %v", got)
	}

	if got = Advisories("Cargo, baggage & loading", "Manual handling ergonomics and lifting injuries"); len(got) != 0 {
		t.Fatalf("unexpected advisories = %v", got)
	}
}

func TestAdvisoryTextVerbatim(t *testing.T) {
	got := Advisories("Airside / Ramp", "FOD (foreign object debris) and housekeeping")
	if len(got) != 1 || got[0] != "FOD-related: Prompt safe removal, record cleanup, require photo evidence when possible." {
		t.Fatalf("FOD advisory = %q", got)
	}

	// The separator before "notify" is an en dash, not a hyphen.
	got = Advisories("", "Refueling/fueling safety (bonding/earthing, ignition sources, spill control)")
	if len(got) != 1 || got[0] != "Fueling-related: Spill/fire risk checklist – notify responsible supervisor immediately." {
		t.Fatalf("fuel advisory = %q", got)
	}
}
