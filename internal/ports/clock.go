package ports

import "time"

// Clock supplies current time to the engine. Injected, never a hidden
// global, so overdue and triage-timing logic stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
