package service

import (
	"context"

	"mymultichain/domain"
	"mymultichain/helpers"
	"mymultichain/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
)

// aggregator implements interfaces.Aggregator. For every call it runs one branch per registry instance
// (build → execute → normalize), at most limit branches at a time, and merges the results keyed by
// instance ID. Branch failures are already data when they reach the merge, so the merge has no error path.
// Fields are fixed at construction and only read afterwards.
type aggregator struct {
	registry   interfaces.InstanceRegistry
	executor   interfaces.TransportExecutor
	normalizer interfaces.ResponseNormalizer
	clock      interfaces.TimeProvider
	metrics    *Metrics
	limit      int
	logger     log.Logger
}

// NewAggregator creates the fan-out aggregator. Panics on nil dependencies and on limit < 1 (fail-fast at startup).
//
// Parameters: registry - instances to fan out to; executor - sends one request with the per-instance timeout;
// normalizer - builds per-instance results; clock - latency measurement; metrics - in-flight and per-instance
// metrics; limit - maximum number of outbound requests in flight per call; logger - logger.
//
// Returns: interfaces.Aggregator (*aggregator).
//
// Called from cmd/main when building the proxy.
func NewAggregator(
	registry interfaces.InstanceRegistry,
	executor interfaces.TransportExecutor,
	normalizer interfaces.ResponseNormalizer,
	clock interfaces.TimeProvider,
	metrics *Metrics,
	limit int,
	logger log.Logger,
) interfaces.Aggregator {
	return &aggregator{
		registry:   helpers.NilPanic(registry, "service.aggregator.go: registry is required"),
		executor:   helpers.NilPanic(executor, "service.aggregator.go: executor is required"),
		normalizer: helpers.NilPanic(normalizer, "service.aggregator.go: normalizer is required"),
		clock:      helpers.NilPanic(clock, "service.aggregator.go: clock is required"),
		metrics:    helpers.NilPanic(metrics, "service.aggregator.go: metrics is required"),
		limit:      helpers.PositivePanic(limit, "service.aggregator.go: limit must be positive"),
		logger:     log.With(helpers.NilPanic(logger, "service.aggregator.go: logger is required"), "component", "aggregator"),
	}
}

// Aggregate fans req out to every registry instance and waits for all of them.
//
// Parameters: ctx - inbound request context; its values are kept but its cancellation is not propagated, every
// branch runs to completion or to its own timeout; req - inbound request, shared read-only by all branches.
//
// Returns: AggregateResponse with exactly one entry per instance. Never fails.
//
// Called from handlers.HTTPServer.Proxy.
func (a *aggregator) Aggregate(ctx context.Context, req domain.ProxyRequest) domain.AggregateResponse {
	instances := a.registry.Instances()
	logger := log.With(a.logger, "call_id", uuid.NewString())
	ctx = context.WithoutCancel(ctx)

	results := xsync.NewMapOf[string, domain.InstanceResult]()
	var g errgroup.Group
	g.SetLimit(a.limit)
	for _, inst := range instances {
		g.Go(func() error {
			results.Store(inst.ID, a.dispatch(ctx, logger, inst, req))
			return nil
		})
	}
	_ = g.Wait()

	out := make(domain.AggregateResponse, results.Size())
	results.Range(func(id string, result domain.InstanceResult) bool {
		out[id] = result
		return true
	})
	a.metrics.callFinished()
	level.Debug(logger).Log("msg", "fan-out finished", "instances", len(out), "method", req.Method, "path", req.PathAndQuery)
	return out
}

// dispatch runs one branch: build the outbound request, execute it, normalize the outcome.
func (a *aggregator) dispatch(ctx context.Context, logger log.Logger, inst domain.Instance, req domain.ProxyRequest) domain.InstanceResult {
	out := BuildOutboundRequest(inst, req)

	a.metrics.requestStarted()
	start := a.clock.Now()
	outcome := a.executor.Execute(ctx, out, req.Body)
	elapsed := a.clock.Now().Sub(start)
	a.metrics.requestFinished(inst.ID, outcome.Status, elapsed)

	result := a.normalizer.Normalize(inst.ID, outcome, elapsed)
	level.Debug(logger).Log("msg", "request finished", "instance", inst.ID, "status", result.Status, "elapsed_secs", result.ElapsedSecs)
	return result
}
