package interfaces

import (
	"context"
	"net/http"
	"time"

	"mymultichain/domain"
)

// HTTPClient sends one HTTP request and returns the response. *http.Client satisfies it; tests inject
// fakes to observe in-flight requests or to simulate failures without a network.
//
// Called from service.transportExecutor.Execute for every instance of a fan-out call.
//
//go:generate moq -stub -out mock/http_client.go -pkg mock . HTTPClient
type HTTPClient interface {
	// Do sends req and returns the response; the caller closes resp.Body.
	// Returns: (resp, nil) for any HTTP status; (nil, error) on transport failure or context deadline.
	Do(req *http.Request) (*http.Response, error)
}

// TransportExecutor sends one outbound request with the fixed per-request timeout and reads the whole body.
//
// Implemented by service.transportExecutor. Called from service.aggregator once per instance per call.
type TransportExecutor interface {
	// Execute sends out with body and waits up to the configured timeout for the complete response.
	// Parameters: ctx - parent context (values only matter, the executor applies its own deadline);
	// out - addressed request from service.BuildOutboundRequest; body - shared read-only request body.
	// Returns: TransportOutcome{Content: body bytes, Status: upstream status} on any HTTP response;
	// TransportOutcome{Content: error text, Status: 500} on any transport failure. Never fails otherwise.
	Execute(ctx context.Context, out domain.OutboundRequest, body []byte) domain.TransportOutcome
}

// ResponseNormalizer turns a transport outcome into the uniform per-instance result.
//
// Implemented by service.responseNormalizer. Called from service.aggregator after Execute.
type ResponseNormalizer interface {
	// Normalize builds the InstanceResult for instanceID: Data only for 2xx + valid JSON, array elements
	// stamped with shard_id, ElapsedSecs formatted from elapsed.
	Normalize(instanceID string, outcome domain.TransportOutcome, elapsed time.Duration) domain.InstanceResult
}
