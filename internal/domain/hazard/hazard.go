package hazard

import (
	"fmt"
	"strings"
	"time"
)

// ClassificationType classifies what kind of safety report this is.
type ClassificationType string

const (
	ClassHazard          ClassificationType = "Hazard"
	ClassNearMiss        ClassificationType = "Near miss"
	ClassIncident        ClassificationType = "Incident"
	ClassUnsafeAct       ClassificationType = "Unsafe act"
	ClassUnsafeCondition ClassificationType = "Unsafe condition"
)

// ClassificationTypes lists the closed classification set.
var ClassificationTypes = []ClassificationType{
	ClassHazard,
	ClassNearMiss,
	ClassIncident,
	ClassUnsafeAct,
	ClassUnsafeCondition,
}

// ReportingMode controls how much reporter identity is recorded.
type ReportingMode string

const (
	ModeNamed        ReportingMode = "Named"
	ModeConfidential ReportingMode = "Confidential"
	ModeAnonymous    ReportingMode = "Anonymous"
)

// Reporter carries optional identity fields. All empty when the reporting
// mode is anonymous.
type Reporter struct {
	Name       string
	EmployeeID string
	Department string
	Role       string
	Contact    string
}

// Summary renders the reporter line shown on reports.
func (r Reporter) Summary(mode ReportingMode) string {
	if mode == ModeAnonymous {
		return "Reported anonymously"
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{r.Name, r.EmployeeID, r.Department, r.Role, r.Contact} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Details not supplied"
	}
	return strings.Join(parts, " • ")
}

// Investigation is the single structured investigation record a hazard may
// own. Text fields are free-form.
type Investigation struct {
	Summary             string
	ContributingFactors string
	Recommendations     string
	LessonsLearned      string
	REDAStyle           bool
	UpdatedAt           time.Time
}

// Hazard is the central entity: one reported hazard, near miss, or unsafe
// condition, with its risk assessment, workflow state, CAPA actions and
// optional investigation.
type Hazard struct {
	ID string

	Title                string
	Category             string
	Subcategory          string
	Station              string
	Area                 string
	GPSNote              string
	ObservedAt           time.Time
	Description          string
	PeopleExposed        string
	PotentialConsequence string
	ImmediateActions     string
	Witnesses            string
	AttachmentNames      []string
	Classification       ClassificationType
	Tags                 []string

	Mode             ReportingMode
	Reporter         Reporter
	ReporterSeverity string // reporter's perceived level, advisory only

	Likelihood int // 0 until assessed
	Severity   int // 0 until assessed
	RiskScore  int
	RiskLevel  RiskLevel

	Status           Status
	RejectionReason  string
	ReporterFeedback string

	Actions       []CAPAAction
	ActionSeq     int // last allocated action sequence number, never reused
	Investigation *Investigation

	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time
	TriagedAt   *time.Time
	ClosedAt    *time.Time
}

// NextActionID allocates the next action id scoped to this hazard.
// Sequence numbers are never reused, independent of list order.
func (h *Hazard) NextActionID() string {
	h.ActionSeq++
	return fmt.Sprintf("%s-A%d", h.ID, h.ActionSeq)
}

// ActionByID finds an owned action. Returns NotFoundError when the id does
// not belong to this hazard.
func (h *Hazard) ActionByID(actionID string) (*CAPAAction, error) {
	for i := range h.Actions {
		if h.Actions[i].ID == actionID {
			return &h.Actions[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "action", ID: actionID}
}

// Clone returns a deep copy so store snapshots never alias live records.
func (h *Hazard) Clone() *Hazard {
	out := *h

	out.AttachmentNames = append([]string(nil), h.AttachmentNames...)
	out.Tags = append([]string(nil), h.Tags...)
	out.Actions = make([]CAPAAction, len(h.Actions))
	copy(out.Actions, h.Actions)
	for i := range out.Actions {
		out.Actions[i].CompletionDate = cloneTime(h.Actions[i].CompletionDate)
	}
	if h.Investigation != nil {
		inv := *h.Investigation
		out.Investigation = &inv
	}
	out.SubmittedAt = cloneTime(h.SubmittedAt)
	out.TriagedAt = cloneTime(h.TriagedAt)
	out.ClosedAt = cloneTime(h.ClosedAt)
	return &out
}

// RiskDisplay is the risk shown on lists: the assessed level when triaged,
// otherwise the reporter's perceived level.
func (h *Hazard) RiskDisplay() string {
	if h.RiskLevel != "" && h.RiskLevel != RiskNotAssessed {
		return string(h.RiskLevel)
	}
	if h.ReporterSeverity != "" {
		return h.ReporterSeverity
	}
	return string(RiskNotAssessed)
}

// MatchesSearch reports whether the query occurs, case-insensitively, in
// title, area, category, id or description.
func (h *Hazard) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	// The NUL separator keeps a query from matching across field boundaries.
	haystack := strings.ToLower(strings.Join([]string{h.Title, h.Area, h.Category, h.ID, h.Description}, "\x00"))
	return strings.Contains(haystack, q)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
