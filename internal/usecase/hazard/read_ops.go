package hazard

import (
	"context"
	"sort"
	"strings"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
	"hirs/internal/ports"
)

// Filter narrows hazard lists for dashboards. Empty fields match
// everything; Search is a case-insensitive substring over title, area,
// category, id and description.
type Filter struct {
	RiskLevel string
	Status    string
	Station   string
	Search    string
}

// HazardSummary is one list row.
type HazardSummary struct {
	ID        string
	Title     string
	Risk      string
	Status    domainhazard.Status
	Station   string
	Area      string
	CreatedAt string
}

// ListHazards returns filtered list rows, newest first.
func (s *Service) ListHazards(ctx context.Context, filter Filter) ([]HazardSummary, error) {
	hazards, err := s.listFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]HazardSummary, 0, len(hazards))
	for _, h := range hazards {
		items = append(items, HazardSummary{
			ID:        h.ID,
			Title:     h.Title,
			Risk:      h.RiskDisplay(),
			Status:    h.Status,
			Station:   h.Station,
			Area:      h.Area,
			CreatedAt: h.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return items, nil
}

// GetHazard returns the full hazard record.
func (s *Service) GetHazard(ctx context.Context, id string) (*domainhazard.Hazard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	h, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, id)
	}
	return h, nil
}

// AuditTrail returns the most recent n audit entries (n <= 0 for all),
// oldest first.
func (s *Service) AuditTrail(ctx context.Context, n int) ([]ports.AuditEntry, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.audit.Recent(ctx, n)
}

func (s *Service) listFiltered(ctx context.Context, filter Filter) ([]*domainhazard.Hazard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list hazards")
	}

	out := make([]*domainhazard.Hazard, 0, len(all))
	for _, h := range all {
		if filter.RiskLevel != "" && string(h.RiskLevel) != filter.RiskLevel {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(string(h.Status), filter.Status) {
			continue
		}
		if filter.Station != "" && h.Station != filter.Station {
			continue
		}
		if !h.MatchesSearch(filter.Search) {
			continue
		}
		out = append(out, h)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
