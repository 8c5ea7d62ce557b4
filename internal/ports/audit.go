package ports

import (
	"context"
	"time"
)

// AuditEntry is one immutable audit record. Entries are created once per
// successful mutating operation and never updated or deleted.
type AuditEntry struct {
	ID        string
	Timestamp time.Time
	Role      string
	Action    string
	EntityID  string
	Detail    string
}

// AuditLog is an append-only audit trail. Implementations must serialize
// writers so concurrent mutations never interleave or lose entries.
// Ordering is insertion order.
type AuditLog interface {
	Record(ctx context.Context, role, action, entityID, detail string) error

	// Recent returns the most recent n entries, oldest first. n <= 0 means
	// the full sequence.
	Recent(ctx context.Context, n int) ([]AuditEntry, error)
}
