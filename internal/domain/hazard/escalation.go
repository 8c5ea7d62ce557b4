package hazard

import "strings"

// Escalation is the mandated response attached to a risk level. StopContain
// signals that a stop/contain acknowledgement sequence is expected before
// the hazard proceeds past triage; the engine exposes the flag but does not
// enforce the gate.
type Escalation struct {
	Level       RiskLevel
	Response    string
	StopContain bool
}

var escalationRules = map[RiskLevel]Escalation{
	RiskExtreme: {
		Level:       RiskExtreme,
		Response:    "Immediate stop/contain checklist; notify Safety and Operations Manager immediately; investigation mandatory.",
		StopContain: true,
	},
	RiskHigh: {
		Level:    RiskHigh,
		Response: "Same-shift review required; actions assigned with short due dates; Safety notified.",
	},
	RiskMedium: {
		Level:    RiskMedium,
		Response: "Action plan required; due date set; periodic review.",
	},
	RiskLow: {
		Level:    RiskLow,
		Response: "Record and monitor; housekeeping/awareness actions as needed.",
	},
}

// EscalationFor returns the mandated response for an assessed level. Levels
// outside the four assessable bands return a zero Escalation and false.
func EscalationFor(level RiskLevel) (Escalation, bool) {
	rule, ok := escalationRules[level]
	return rule, ok
}

const (
	fodAdvisory  = "FOD-related: Prompt safe removal, record cleanup, require photo evidence when possible."
	fuelAdvisory = "Fueling-related: Spill/fire risk checklist – notify responsible supervisor immediately."
)

// Advisories returns category-sensitive triage advisories derived from
// case-insensitive matches on category and subcategory text. Advisory only;
// nothing here changes state.
func Advisories(category, subcategory string) []string {
	cat := strings.ToLower(category)
	sub := strings.ToLower(subcategory)

	out := make([]string, 0, 2)
	if strings.Contains(cat, "fod") || strings.HasPrefix(sub, "fod") {
		out = append(out, fodAdvisory)
	}
	if strings.Contains(cat, "refuel") || strings.Contains(sub, "fuel") {
		out = append(out, fuelAdvisory)
	}
	return out
}
