package memstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"hirs/internal/domain/hazard"
	"hirs/internal/errs"
	"hirs/internal/ports"
)

// Store is the in-process keyed hazard collection. Each record carries its
// own lock so updates to one hazard never interleave, while operations on
// different hazards proceed in parallel.
type Store struct {
	mu      sync.RWMutex
	records map[string]*record
	lastSeq int
}

type record struct {
	mu sync.Mutex
	h  *hazard.Hazard
}

var _ ports.HazardStore = (*Store)(nil)

func New() *Store {
	return &Store{records: make(map[string]*record)}
}

func (s *Store) Create(ctx context.Context, h *hazard.Hazard) (string, error) {
	if ctx == nil {
		return "", errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, "check context")
	}
	if h == nil {
		return "", errors.New("hazard is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeq++
	id := fmt.Sprintf("HZ-%04d", s.lastSeq)
	h.ID = id
	s.records[id] = &record{h: h.Clone()}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (*hazard.Hazard, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	rec, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.h.Clone(), nil
}

func (s *Store) Update(ctx context.Context, id string, fn func(h *hazard.Hazard) error) (*hazard.Hazard, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if fn == nil {
		return nil, errors.New("update func is required")
	}

	rec, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	// Mutate a copy; commit only when fn succeeds, so a failed validation
	// never leaves a partial write behind.
	working := rec.h.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	rec.h = working
	return working.Clone(), nil
}

func (s *Store) List(ctx context.Context) ([]*hazard.Hazard, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	s.mu.RLock()
	recs := make([]*record, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	s.mu.RUnlock()

	out := make([]*hazard.Hazard, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		out = append(out, rec.h.Clone())
		rec.mu.Unlock()
	}
	return out, nil
}

func (s *Store) lookup(id string) (*record, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, hazard.ErrHazardRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[trimmed]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrHazardNotFound, trimmed)
	}
	return rec, nil
}
