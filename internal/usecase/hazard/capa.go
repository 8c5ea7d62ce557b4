package hazard

import (
	"context"
	"sort"
	"strings"

	domainhazard "hirs/internal/domain/hazard"
	"hirs/internal/errs"
)

// AddAction appends a corrective/preventive action to a hazard. The action
// receives the next sequential id scoped to its parent. An empty title
// fails with ValidationError before anything is written: the action list
// and the audit log both stay untouched.
func (s *Service) AddAction(ctx context.Context, input AddActionInput) (domainhazard.CAPAAction, error) {
	if err := s.guard(ctx); err != nil {
		return domainhazard.CAPAAction{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domainhazard.CAPAAction{}, &domainhazard.ValidationError{Fields: []string{"Title / description"}}
	}

	actionType := domainhazard.ActionImmediate
	if raw := strings.TrimSpace(input.Type); raw != "" {
		parsed, err := domainhazard.ParseActionType(raw)
		if err != nil {
			return domainhazard.CAPAAction{}, err
		}
		actionType = parsed
	}

	priority := domainhazard.PriorityLow
	if raw := strings.TrimSpace(input.Priority); raw != "" {
		parsed, err := domainhazard.ParsePriority(raw)
		if err != nil {
			return domainhazard.CAPAAction{}, err
		}
		priority = parsed
	}

	now := s.clock.Now()
	var created domainhazard.CAPAAction
	updated, err := s.store.Update(ctx, input.HazardID, func(h *domainhazard.Hazard) error {
		created = domainhazard.CAPAAction{
			ID:               h.NextActionID(),
			Title:            title,
			Type:             actionType,
			Owner:            input.Owner,
			Department:       input.Department,
			Priority:         priority,
			DueDate:          input.DueDate,
			RequiredEvidence: input.RequiredEvidence,
			CreatedAt:        now,
		}
		h.Actions = append(h.Actions, created)
		h.UpdatedAt = now
		return nil
	})
	if err != nil {
		return domainhazard.CAPAAction{}, translateNotFound(err, input.HazardID)
	}

	if err := s.audit.Record(ctx, input.Role, "CAPA action added", updated.ID, title); err != nil {
		return domainhazard.CAPAAction{}, errs.Wrap(err, "audit action add")
	}
	return created, nil
}

// UpdateAction applies a partial update to one action: nil input fields are
// left unchanged. Unknown action ids fail with NotFoundError.
func (s *Service) UpdateAction(ctx context.Context, input UpdateActionInput) (domainhazard.CAPAAction, error) {
	if err := s.guard(ctx); err != nil {
		return domainhazard.CAPAAction{}, err
	}

	now := s.clock.Now()
	var result domainhazard.CAPAAction
	updated, err := s.store.Update(ctx, input.HazardID, func(h *domainhazard.Hazard) error {
		a, err := h.ActionByID(input.ActionID)
		if err != nil {
			return err
		}

		if input.ClearCompletion {
			a.CompletionDate = nil
		} else if input.CompletionDate != nil {
			t := *input.CompletionDate
			a.CompletionDate = &t
		}
		if input.Verification != nil {
			a.Verification = *input.Verification
		}
		if input.Effectiveness != nil {
			a.Effectiveness = *input.Effectiveness
		}

		h.UpdatedAt = now
		result = *a
		return nil
	})
	if err != nil {
		return domainhazard.CAPAAction{}, translateNotFound(err, input.HazardID)
	}

	if err := s.audit.Record(ctx, input.Role, "CAPA action updated", updated.ID, result.Title); err != nil {
		return domainhazard.CAPAAction{}, errs.Wrap(err, "audit action update")
	}
	return result, nil
}

// OverdueForHazard returns the actions of one hazard overdue as of now.
// Overdue is recomputed on every call; today moves independently of any
// mutation.
func (s *Service) OverdueForHazard(ctx context.Context, hazardID string) ([]domainhazard.CAPAAction, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	h, err := s.store.Get(ctx, hazardID)
	if err != nil {
		return nil, translateNotFound(err, hazardID)
	}
	return domainhazard.OverdueActions(h.Actions, s.clock.Now()), nil
}

// OverdueItem is one overdue action row for the cross-hazard summary.
type OverdueItem struct {
	HazardID    string
	ActionID    string
	Title       string
	Owner       string
	Department  string
	DueDate     string
	DaysOverdue int
}

// OverdueSummary aggregates overdue actions across all hazards for
// dashboards, grouped by owner and department. Derived on every call,
// never stored.
type OverdueSummary struct {
	Items        []OverdueItem
	ByOwner      map[string]int
	ByDepartment map[string]int
}

func (s *Service) Overdue(ctx context.Context) (OverdueSummary, error) {
	if err := s.guard(ctx); err != nil {
		return OverdueSummary{}, err
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return OverdueSummary{}, errs.Wrap(err, "list hazards")
	}

	asOf := s.clock.Now()
	today := domainhazard.DateOf(asOf)
	summary := OverdueSummary{
		ByOwner:      make(map[string]int),
		ByDepartment: make(map[string]int),
	}
	for _, h := range all {
		for _, a := range domainhazard.OverdueActions(h.Actions, asOf) {
			days := int(today.Sub(domainhazard.DateOf(a.DueDate)).Hours() / 24)
			summary.Items = append(summary.Items, OverdueItem{
				HazardID:    h.ID,
				ActionID:    a.ID,
				Title:       a.Title,
				Owner:       a.Owner,
				Department:  a.Department,
				DueDate:     a.DueDate.Format("2006-01-02"),
				DaysOverdue: days,
			})
			summary.ByOwner[a.Owner]++
			summary.ByDepartment[a.Department]++
		}
	}

	sort.Slice(summary.Items, func(i, j int) bool {
		if summary.Items[i].HazardID != summary.Items[j].HazardID {
			return summary.Items[i].HazardID < summary.Items[j].HazardID
		}
		return summary.Items[i].ActionID < summary.Items[j].ActionID
	})
	return summary, nil
}
