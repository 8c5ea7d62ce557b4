package auditlog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hirs/internal/errs"
	"hirs/internal/ports"
)

// Log is a mutex-serialized append-only audit trail. Entries are immutable
// once appended; there is no delete or update path.
type Log struct {
	clock ports.Clock

	mu      sync.Mutex
	entries []ports.AuditEntry
}

var _ ports.AuditLog = (*Log)(nil)

func New(clock ports.Clock) *Log {
	return &Log{clock: clock}
}

func (l *Log) Record(ctx context.Context, role, action, entityID, detail string) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if strings.TrimSpace(action) == "" {
		return errors.New("audit action is required")
	}

	entry := ports.AuditEntry{
		ID:        uuid.NewString(),
		Timestamp: l.clock.Now(),
		Role:      role,
		Action:    action,
		EntityID:  entityID,
		Detail:    detail,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

func (l *Log) Recent(ctx context.Context, n int) ([]ports.AuditEntry, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	start := 0
	if n > 0 && n < len(l.entries) {
		start = len(l.entries) - n
	}

	out := make([]ports.AuditEntry, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out, nil
}
