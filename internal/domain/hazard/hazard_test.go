package hazard

import "testing"

func TestMatchesSearch(t *testing.T) {
	h := &Hazard{
		ID:          "HZ-0007",
		Title:       "Hydraulic oil spill",
		Area:        "Gate 12",
		Category:    "Aircraft servicing",
		Description: "Slick patch near the nose gear.",
	}

	for _, query := range []string{"", "  ", "OIL", "gate 12", "hz-0007", "nose gear"} {
		if !h.MatchesSearch(query) {
			t.Fatalf("MatchesSearch(%q) = false, want true", query)
		}
	}

	// A query must stay inside a single field; "spill" ends the title and
	// "gate" starts the area, so the two joined do not match.
	for _, query := range []string{"spillgate", "12aircraft", "ladder"} {
		if h.MatchesSearch(query) {
			t.Fatalf("MatchesSearch(%q) = true, want false", query)
		}
	}
}
