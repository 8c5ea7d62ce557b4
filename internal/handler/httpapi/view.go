package httpapi

import (
	"time"

	domainhazard "hirs/internal/domain/hazard"
	usecasehazard "hirs/internal/usecase/hazard"
)

type hazardPayload struct {
	ID                   string                `json:"id"`
	Title                string                `json:"title"`
	Category             string                `json:"category"`
	Subcategory          string                `json:"subcategory,omitempty"`
	Station              string                `json:"station,omitempty"`
	Area                 string                `json:"area"`
	GPSNote              string                `json:"gps_note,omitempty"`
	ObservedAt           *time.Time            `json:"observed_at,omitempty"`
	Description          string                `json:"description"`
	PeopleExposed        string                `json:"people_exposed,omitempty"`
	PotentialConsequence string                `json:"potential_consequence,omitempty"`
	ImmediateActions     string                `json:"immediate_actions,omitempty"`
	Witnesses            string                `json:"witnesses,omitempty"`
	AttachmentNames      []string              `json:"attachment_names,omitempty"`
	Classification       string                `json:"classification"`
	Tags                 []string              `json:"tags,omitempty"`
	Mode                 string                `json:"mode"`
	ReporterSummary      string                `json:"reporter_summary"`
	ReporterSeverity     string                `json:"reporter_severity"`
	Likelihood           int                   `json:"likelihood"`
	Severity             int                   `json:"severity"`
	RiskScore            int                   `json:"risk_score"`
	RiskLevel            string                `json:"risk_level"`
	Status               string                `json:"status"`
	RejectionReason      string                `json:"rejection_reason,omitempty"`
	ReporterFeedback     string                `json:"reporter_feedback,omitempty"`
	Actions              []actionPayload       `json:"actions"`
	Investigation        *investigationPayload `json:"investigation,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
	SubmittedAt          *time.Time            `json:"submitted_at,omitempty"`
	TriagedAt            *time.Time            `json:"triaged_at,omitempty"`
	ClosedAt             *time.Time            `json:"closed_at,omitempty"`
}

type actionPayload struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Type             string     `json:"type"`
	Owner            string     `json:"owner,omitempty"`
	Department       string     `json:"department,omitempty"`
	Priority         string     `json:"priority"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	RequiredEvidence string     `json:"required_evidence,omitempty"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	Verification     string     `json:"verification,omitempty"`
	Effectiveness    string     `json:"effectiveness,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type investigationPayload struct {
	Summary             string    `json:"summary"`
	ContributingFactors string    `json:"contributing_factors,omitempty"`
	Recommendations     string    `json:"recommendations,omitempty"`
	LessonsLearned      string    `json:"lessons_learned,omitempty"`
	REDAStyle           bool      `json:"reda_style"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type assessmentPayload struct {
	Score       int      `json:"score"`
	Level       string   `json:"level"`
	Response    string   `json:"response"`
	StopContain bool     `json:"stop_contain"`
	Advisories  []string `json:"advisories,omitempty"`
}

func hazardView(h *domainhazard.Hazard) hazardPayload {
	actions := make([]actionPayload, 0, len(h.Actions))
	for _, a := range h.Actions {
		actions = append(actions, actionView(a))
	}

	p := hazardPayload{
		ID:                   h.ID,
		Title:                h.Title,
		Category:             h.Category,
		Subcategory:          h.Subcategory,
		Station:              h.Station,
		Area:                 h.Area,
		GPSNote:              h.GPSNote,
		Description:          h.Description,
		PeopleExposed:        h.PeopleExposed,
		PotentialConsequence: h.PotentialConsequence,
		ImmediateActions:     h.ImmediateActions,
		Witnesses:            h.Witnesses,
		AttachmentNames:      h.AttachmentNames,
		Classification:       string(h.Classification),
		Tags:                 h.Tags,
		Mode:                 string(h.Mode),
		ReporterSummary:      h.Reporter.Summary(h.Mode),
		ReporterSeverity:     h.ReporterSeverity,
		Likelihood:           h.Likelihood,
		Severity:             h.Severity,
		RiskScore:            h.RiskScore,
		RiskLevel:            h.RiskDisplay(),
		Status:               string(h.Status),
		RejectionReason:      h.RejectionReason,
		ReporterFeedback:     h.ReporterFeedback,
		Actions:              actions,
		CreatedAt:            h.CreatedAt,
		UpdatedAt:            h.UpdatedAt,
		SubmittedAt:          h.SubmittedAt,
		TriagedAt:            h.TriagedAt,
		ClosedAt:             h.ClosedAt,
	}
	if !h.ObservedAt.IsZero() {
		t := h.ObservedAt
		p.ObservedAt = &t
	}
	if h.Investigation != nil {
		p.Investigation = &investigationPayload{
			Summary:             h.Investigation.Summary,
			ContributingFactors: h.Investigation.ContributingFactors,
			Recommendations:     h.Investigation.Recommendations,
			LessonsLearned:      h.Investigation.LessonsLearned,
			REDAStyle:           h.Investigation.REDAStyle,
			UpdatedAt:           h.Investigation.UpdatedAt,
		}
	}
	return p
}

func actionView(a domainhazard.CAPAAction) actionPayload {
	p := actionPayload{
		ID:               a.ID,
		Title:            a.Title,
		Type:             string(a.Type),
		Owner:            a.Owner,
		Department:       a.Department,
		Priority:         string(a.Priority),
		RequiredEvidence: a.RequiredEvidence,
		CompletionDate:   a.CompletionDate,
		Verification:     a.Verification,
		Effectiveness:    a.Effectiveness,
		CreatedAt:        a.CreatedAt,
	}
	if !a.DueDate.IsZero() {
		t := a.DueDate
		p.DueDate = &t
	}
	return p
}

func assessmentView(r usecasehazard.AssessmentResult) assessmentPayload {
	return assessmentPayload{
		Score:       r.Score,
		Level:       string(r.Level),
		Response:    r.Escalation.Response,
		StopContain: r.Escalation.StopContain,
		Advisories:  r.Advisories,
	}
}
