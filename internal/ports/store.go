package ports

import (
	"context"
	"errors"

	"hirs/internal/domain/hazard"
)

var ErrHazardNotFound = errors.New("hazard not found")

// HazardStore is the keyed hazard collection injected into the engine by
// the caller. Implementations must give Update at-most-one-writer-per-hazard
// semantics: the mutation closure for a given id never interleaves with
// another writer on the same id, and nothing is committed when it returns
// an error. Cross-hazard operations may run fully in parallel.
type HazardStore interface {
	// Create allocates the next sequential id (HZ-####), assigns it to the
	// record, and stores it.
	Create(ctx context.Context, h *hazard.Hazard) (string, error)

	// Get returns a snapshot copy of one hazard.
	Get(ctx context.Context, id string) (*hazard.Hazard, error)

	// Update runs fn on the live record under that record's lock and
	// commits only when fn returns nil. The returned hazard is a snapshot
	// of the committed state.
	Update(ctx context.Context, id string, fn func(h *hazard.Hazard) error) (*hazard.Hazard, error)

	// List returns snapshot copies of every hazard, unordered.
	List(ctx context.Context) ([]*hazard.Hazard, error)
}
