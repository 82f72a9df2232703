// Package domain holds the plain data types of the fan-out proxy: backend instances, the inbound
// request handed to the aggregator, the outbound request built per instance, and the per-instance
// and aggregate results.
package domain

import (
	"net/http"
	"strconv"
	"time"
)

// ShardIDField is the key stamped into every object element of an array-shaped success payload.
const ShardIDField = "shard_id"

// ProxyRequest is the inbound request as seen by the aggregator. PathAndQuery is the escaped path plus
// raw query of the inbound request; empty means "no suffix" and the instance base URL is used as-is.
// Body is shared read-only by every branch of a fan-out call and must not be mutated.
type ProxyRequest struct {
	Method       string
	Header       http.Header
	PathAndQuery string
	Body         []byte
}

// OutboundRequest is a fully addressed request for one instance, not yet sent.
type OutboundRequest struct {
	InstanceID string
	Method     string
	URL        string
	Header     http.Header
}

// TransportOutcome is what the transport executor hands to the normalizer: the raw body and the status.
// Transport failures are represented as Status 500 with the error text as Content.
type TransportOutcome struct {
	Content []byte
	Status  int
}

// InstanceResult is one entry of the aggregate response. Data is nil unless Status is 2xx and the body
// parsed as JSON; nil Data serializes as null.
type InstanceResult struct {
	Data        any    `json:"data"`
	Status      int    `json:"status"`
	ElapsedSecs string `json:"elapsed_secs"`
}

// AggregateResponse maps instance ID to its result; it has exactly one entry per configured instance.
type AggregateResponse map[string]InstanceResult

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// FormatElapsed renders d as decimal seconds with the shortest exact representation, e.g. "0.25".
func FormatElapsed(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
