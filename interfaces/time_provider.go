package interfaces

import "time"

// TimeProvider supplies the current time for per-instance latency measurement.
// Injected so tests can use a scripted clock instead of time.Now().
//
// Used by service.aggregator to capture the dispatch timestamp immediately before Execute and the
// completion timestamp right after it. Constructed in cmd/main as NewTimeProvider(time.Now).
type TimeProvider interface {
	// Now returns current time (wall clock with monotonic reading in prod; scripted values in tests).
	Now() time.Time
}
