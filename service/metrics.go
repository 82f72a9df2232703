package service

import (
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// Metrics holds the fan-out counters in a private metrics.Set so several aggregators (e.g. in tests)
// never collide on metric names.
type Metrics struct {
	set      *metrics.Set
	calls    *metrics.Counter
	inflight atomic.Int64
}

// NewMetrics creates the set with the aggregate-call counter and the in-flight gauge registered.
//
// Called from cmd/main (one instance shared by the aggregator and the /metrics handler) and from tests.
func NewMetrics() *Metrics {
	m := &Metrics{set: metrics.NewSet()}
	m.calls = m.set.NewCounter("mymultichain_aggregate_calls_total")
	m.set.NewGauge("mymultichain_inflight_requests", func() float64 {
		return float64(m.inflight.Load())
	})
	return m
}

// Inflight returns the number of outbound requests currently being executed.
func (m *Metrics) Inflight() int64 {
	return m.inflight.Load()
}

// WritePrometheus writes the fan-out metrics followed by the process metrics in Prometheus text format.
//
// Called from handlers.HTTPServer.GetMetrics.
func (m *Metrics) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
	metrics.WritePrometheus(w, true)
}

func (m *Metrics) requestStarted() {
	m.inflight.Add(1)
}

func (m *Metrics) requestFinished(instanceID string, status int, elapsed time.Duration) {
	m.inflight.Add(-1)
	instance := strconv.Quote(instanceID)
	m.set.GetOrCreateCounter(`mymultichain_instance_requests_total{instance=` + instance + `,status="` + strconv.Itoa(status) + `"}`).Inc()
	m.set.GetOrCreateHistogram(`mymultichain_instance_request_duration_seconds{instance=` + instance + `}`).Update(elapsed.Seconds())
}

func (m *Metrics) callFinished() {
	m.calls.Inc()
}
