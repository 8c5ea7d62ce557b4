package hazard

import (
	"context"
	"time"
)

// FlatHazard is the tabular projection of one hazard used by audit
// exports. It is a read-side view, not the internal representation.
type FlatHazard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Status      string `json:"status"`
	RiskLevel   string `json:"risk_level"`
	Station     string `json:"station"`
	Area        string `json:"area"`
	Feedback    string `json:"reporter_feedback"`
	CreatedAt   string `json:"created_at"`
	SubmittedAt string `json:"submitted_at,omitempty"`
	ClosedAt    string `json:"closed_at,omitempty"`
}

// FlatCAPA is the tabular projection of one CAPA action.
type FlatCAPA struct {
	ReportID       string `json:"report_id"`
	Title          string `json:"action"`
	Type           string `json:"type"`
	Owner          string `json:"owner"`
	Department     string `json:"department"`
	DueDate        string `json:"due_date"`
	CompletionDate string `json:"completion_date,omitempty"`
}

// ExportHazards projects every hazard to its flat export row, newest
// first.
func (s *Service) ExportHazards(ctx context.Context) ([]FlatHazard, error) {
	hazards, err := s.listFiltered(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	rows := make([]FlatHazard, 0, len(hazards))
	for _, h := range hazards {
		rows = append(rows, FlatHazard{
			ID:          h.ID,
			Title:       h.Title,
			Category:    h.Category,
			Subcategory: h.Subcategory,
			Status:      string(h.Status),
			RiskLevel:   string(h.RiskLevel),
			Station:     h.Station,
			Area:        h.Area,
			Feedback:    h.ReporterFeedback,
			CreatedAt:   formatStamp(&h.CreatedAt),
			SubmittedAt: formatStamp(h.SubmittedAt),
			ClosedAt:    formatStamp(h.ClosedAt),
		})
	}
	return rows, nil
}

// ExportActions projects every CAPA action across all hazards.
func (s *Service) ExportActions(ctx context.Context) ([]FlatCAPA, error) {
	hazards, err := s.listFiltered(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	rows := make([]FlatCAPA, 0)
	for _, h := range hazards {
		for _, a := range h.Actions {
			row := FlatCAPA{
				ReportID:   h.ID,
				Title:      a.Title,
				Type:       string(a.Type),
				Owner:      a.Owner,
				Department: a.Department,
			}
			if !a.DueDate.IsZero() {
				row.DueDate = a.DueDate.Format("2006-01-02")
			}
			if a.CompletionDate != nil {
				row.CompletionDate = a.CompletionDate.Format("2006-01-02")
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func formatStamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
