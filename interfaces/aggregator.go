package interfaces

import (
	"context"

	"mymultichain/domain"
)

// Aggregator replays one inbound request against every registered instance and merges the results.
//
// Implemented by service.aggregator. Called from handlers.HTTPServer.Proxy for every proxied request.
//
//go:generate moq -stub -out mock/aggregator.go -pkg mock . Aggregator
type Aggregator interface {
	// Aggregate fans req out to all instances with bounded concurrency and returns once every instance
	// has produced a result. The response has exactly one entry per instance. Never fails: per-instance
	// failures are carried as status/data in the entries.
	Aggregate(ctx context.Context, req domain.ProxyRequest) domain.AggregateResponse
}
