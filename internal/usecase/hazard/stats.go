package hazard

import (
	"context"
	"time"

	domainhazard "hirs/internal/domain/hazard"
)

// DashboardStats aggregates the portfolio for the safety dashboard.
// Averages are zero when no hazard has reached the relevant milestone.
type DashboardStats struct {
	Total    int
	Open     int
	Closed   int
	Rejected int

	AvgDaysToTriage float64
	AvgDaysToClose  float64

	OpenByStation map[string]int
	OpenByRisk    map[string]int
	ByCategory    map[string]int

	// HeatMap counts assessed hazards per likelihood x severity cell.
	// Indexed [likelihood-1][severity-1].
	HeatMap [5][5]int
}

// Stats computes dashboard aggregates over all hazards.
func (s *Service) Stats(ctx context.Context) (*DashboardStats, error) {
	hazards, err := s.listFiltered(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		OpenByStation: make(map[string]int),
		OpenByRisk:    make(map[string]int),
		ByCategory:    make(map[string]int),
	}

	var (
		triageSum   float64
		triageCount int
		closeSum    float64
		closeCount  int
	)

	for _, h := range hazards {
		stats.Total++
		if h.Category != "" {
			stats.ByCategory[h.Category]++
		}

		switch {
		case h.Status == domainhazard.StatusClosed:
			stats.Closed++
		case h.Status == domainhazard.StatusRejected:
			stats.Rejected++
		case h.Status.IsOpen():
			stats.Open++
			station := h.Station
			if station == "" {
				station = "Unassigned"
			}
			stats.OpenByStation[station]++
			// Only assessed bands count here; un-triaged hazards have no
			// risk bucket yet.
			if h.RiskLevel != "" && h.RiskLevel != domainhazard.RiskNotAssessed {
				stats.OpenByRisk[string(h.RiskLevel)]++
			}
		}

		// Cycle times run from submission, not first save.
		start := h.CreatedAt
		if h.SubmittedAt != nil {
			start = *h.SubmittedAt
		}
		if h.TriagedAt != nil {
			triageSum += daysBetween(start, *h.TriagedAt)
			triageCount++
		}
		if h.ClosedAt != nil {
			closeSum += daysBetween(start, *h.ClosedAt)
			closeCount++
		}

		if h.Likelihood >= 1 && h.Likelihood <= 5 && h.Severity >= 1 && h.Severity <= 5 {
			stats.HeatMap[h.Likelihood-1][h.Severity-1]++
		}
	}

	if triageCount > 0 {
		stats.AvgDaysToTriage = triageSum / float64(triageCount)
	}
	if closeCount > 0 {
		stats.AvgDaysToClose = closeSum / float64(closeCount)
	}
	return stats, nil
}

func daysBetween(from, to time.Time) float64 {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return d.Hours() / 24
}
