package service

import (
	"time"

	"mymultichain/helpers"
	"mymultichain/interfaces"
)

// timeProvider implements interfaces.TimeProvider. It returns the current time via the injected now func.
// Used by service.aggregator to measure per-instance latency; tests inject scripted clocks.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
//
// Parameter now - no-arg function returning current time (in prod - time.Now, which keeps the monotonic
// reading so elapsed time is immune to wall-clock jumps; in tests - scripted time).
//
// Returns: interfaces.TimeProvider (*timeProvider).
//
// Called from cmd/main when building the aggregator.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns current time from the injected function.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
