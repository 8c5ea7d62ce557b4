package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	domainhazard "hirs/internal/domain/hazard"
	usecasehazard "hirs/internal/usecase/hazard"
)

// Server exposes the hazard engine over HTTP. Mutating endpoints read the
// acting role from the X-Actor-Role header; the engine itself does not
// authenticate.
type Server struct {
	svc      *usecasehazard.Service
	taxonomy domainhazard.Taxonomy
}

func NewServer(svc *usecasehazard.Service, taxonomy domainhazard.Taxonomy) *Server {
	return &Server{svc: svc, taxonomy: taxonomy}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/hazards", func(r chi.Router) {
		r.Post("/", s.createHazard)
		r.Get("/", s.listHazards)
		r.Route("/{hazardID}", func(r chi.Router) {
			r.Get("/", s.getHazard)
			r.Post("/status", s.updateStatus)
			r.Post("/reject", s.reject)
			r.Post("/assessment", s.assess)
			r.Put("/feedback", s.setFeedback)
			r.Put("/investigation", s.saveInvestigation)
			r.Post("/actions", s.addAction)
			r.Patch("/actions/{actionID}", s.updateAction)
			r.Get("/actions/overdue", s.overdueForHazard)
		})
	})
	r.Get("/overdue", s.overdue)
	r.Get("/stats", s.stats)
	r.Get("/audit", s.auditTrail)
	r.Get("/export/hazards", s.exportHazards)
	r.Get("/export/actions", s.exportActions)
	r.Get("/taxonomy", s.getTaxonomy)
	r.Post("/seed", s.seed)

	return r
}

func actorRole(r *http.Request) string {
	if role := r.Header.Get("X-Actor-Role"); role != "" {
		return role
	}
	return "Reporter"
}

type createHazardRequest struct {
	Title                string                `json:"title"`
	Category             string                `json:"category"`
	Subcategory          string                `json:"subcategory"`
	Station              string                `json:"station"`
	Area                 string                `json:"area"`
	GPSNote              string                `json:"gps_note"`
	ObservedAt           time.Time             `json:"observed_at"`
	Description          string                `json:"description"`
	PeopleExposed        string                `json:"people_exposed"`
	PotentialConsequence string                `json:"potential_consequence"`
	ImmediateActions     string                `json:"immediate_actions"`
	Witnesses            string                `json:"witnesses"`
	AttachmentNames      []string              `json:"attachment_names"`
	Classification       string                `json:"classification"`
	Tags                 []string              `json:"tags"`
	Mode                 string                `json:"mode"`
	Reporter             domainhazard.Reporter `json:"reporter"`
	ReporterSeverity     string                `json:"reporter_severity"`
	Draft                bool                  `json:"draft"`
}

func (s *Server) createHazard(w http.ResponseWriter, r *http.Request) {
	var req createHazardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h, err := s.svc.CreateHazard(r.Context(), usecasehazard.CreateHazardInput{
		Title:                req.Title,
		Category:             req.Category,
		Subcategory:          req.Subcategory,
		Station:              req.Station,
		Area:                 req.Area,
		GPSNote:              req.GPSNote,
		ObservedAt:           req.ObservedAt,
		Description:          req.Description,
		PeopleExposed:        req.PeopleExposed,
		PotentialConsequence: req.PotentialConsequence,
		ImmediateActions:     req.ImmediateActions,
		Witnesses:            req.Witnesses,
		AttachmentNames:      req.AttachmentNames,
		Classification:       req.Classification,
		Tags:                 req.Tags,
		Mode:                 req.Mode,
		Reporter:             req.Reporter,
		ReporterSeverity:     req.ReporterSeverity,
		Draft:                req.Draft,
		Role:                 actorRole(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, hazardView(h))
}

func (s *Server) listHazards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := s.svc.ListHazards(r.Context(), usecasehazard.Filter{
		RiskLevel: q.Get("risk"),
		Status:    q.Get("status"),
		Station:   q.Get("station"),
		Search:    q.Get("q"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) getHazard(w http.ResponseWriter, r *http.Request) {
	h, err := s.svc.GetHazard(r.Context(), chi.URLParam(r, "hazardID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hazardView(h))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h, err := s.svc.UpdateStatus(r.Context(), usecasehazard.UpdateStatusInput{
		HazardID: chi.URLParam(r, "hazardID"),
		Status:   req.Status,
		Role:     actorRole(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hazardView(h))
}

type rejectRequest struct {
	Reason    string `json:"reason"`
	Confirmed bool   `json:"confirmed"`
}

func (s *Server) reject(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h, err := s.svc.Reject(r.Context(), usecasehazard.RejectInput{
		HazardID:  chi.URLParam(r, "hazardID"),
		Reason:    req.Reason,
		Confirmed: req.Confirmed,
		Role:      actorRole(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hazardView(h))
}

type assessRequest struct {
	Likelihood int `json:"likelihood"`
	Severity   int `json:"severity"`
}

func (s *Server) assess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.svc.AssessRisk(r.Context(), usecasehazard.AssessRiskInput{
		HazardID:   chi.URLParam(r, "hazardID"),
		Likelihood: req.Likelihood,
		Severity:   req.Severity,
		Role:       actorRole(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assessmentView(result))
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
}

func (s *Server) setFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h, err := s.svc.SetFeedback(r.Context(), usecasehazard.SetFeedbackInput{
		HazardID: chi.URLParam(r, "hazardID"),
		Feedback: req.Feedback,
		Role:     actorRole(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hazardView(h))
}

type investigationRequest struct {
	Summary             string `json:"summary"`
	ContributingFactors string `json:"contributing_factors"`
	Recommendations     string `json:"recommendations"`
	LessonsLearned      string `json:"lessons_learned"`
	REDAStyle           bool   `json:"reda_style"`
}

func (s *Server) saveInvestigation(w http.ResponseWriter, r *http.Request) {
	var req investigationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h, err := s.svc.SaveInvestigation(r.Context(), usecasehazard.SaveInvestigationInput{
		HazardID:            chi.URLParam(r, "hazardID"),
		Summary:             req.Summary,
		ContributingFactors: req.ContributingFactors,
		Recommendations:     req.Recommendations,
		LessonsLearned:      req.LessonsLearned,
		REDAStyle:           req.REDAStyle,
		Role:                actorRole(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hazardView(h))
}

type addActionRequest struct {
	Title            string     `json:"title"`
	Type             string     `json:"type"`
	Owner            string     `json:"owner"`
	Department       string     `json:"department"`
	Priority         string     `json:"priority"`
	DueDate          *time.Time `json:"due_date"`
	RequiredEvidence string     `json:"required_evidence"`
}

func (s *Server) addAction(w http.ResponseWriter, r *http.Request) {
	var req addActionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input := usecasehazard.AddActionInput{
		HazardID:         chi.URLParam(r, "hazardID"),
		Title:            req.Title,
		Type:             req.Type,
		Owner:            req.Owner,
		Department:       req.Department,
		Priority:         req.Priority,
		RequiredEvidence: req.RequiredEvidence,
		Role:             actorRole(r),
	}
	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}

	action, err := s.svc.AddAction(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, actionView(action))
}

type updateActionRequest struct {
	CompletionDate  *time.Time `json:"completion_date"`
	ClearCompletion bool       `json:"clear_completion"`
	Verification    *string    `json:"verification"`
	Effectiveness   *string    `json:"effectiveness"`
}

func (s *Server) updateAction(w http.ResponseWriter, r *http.Request) {
	var req updateActionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	action, err := s.svc.UpdateAction(r.Context(), usecasehazard.UpdateActionInput{
		HazardID:        chi.URLParam(r, "hazardID"),
		ActionID:        chi.URLParam(r, "actionID"),
		CompletionDate:  req.CompletionDate,
		ClearCompletion: req.ClearCompletion,
		Verification:    req.Verification,
		Effectiveness:   req.Effectiveness,
		Role:            actorRole(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actionView(action))
}

func (s *Server) overdueForHazard(w http.ResponseWriter, r *http.Request) {
	actions, err := s.svc.OverdueForHazard(r.Context(), chi.URLParam(r, "hazardID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	views := make([]actionPayload, 0, len(actions))
	for _, a := range actions {
		views = append(views, actionView(a))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) overdue(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Overdue(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) auditTrail(w http.ResponseWriter, r *http.Request) {
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, &domainhazard.ValidationError{Fields: []string{"n"}})
			return
		}
		n = parsed
	}

	entries, err := s.svc.AuditTrail(r.Context(), n)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) exportHazards(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.ExportHazards(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) exportActions(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.ExportActions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) getTaxonomy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.taxonomy)
}

func (s *Server) seed(w http.ResponseWriter, r *http.Request) {
	added, err := s.svc.SeedSampleData(r.Context(), actorRole(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": added})
}
