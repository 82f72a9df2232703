package service

import (
	"strings"

	"mymultichain/domain"
	"mymultichain/helpers"
)

// BuildOutboundRequest addresses req to one instance. With a PathAndQuery suffix the target is the
// instance URL with trailing slashes trimmed followed by the suffix (query kept verbatim); without
// one the instance URL is used untouched. Method is copied; headers are copied without the
// connection-managed ones (helpers.ForwardHeaders).
//
// Parameters: instance - target instance; req - inbound request (not mutated, shared by all branches).
//
// Returns: domain.OutboundRequest with its own header map.
//
// Called from service.aggregator once per instance per fan-out call.
func BuildOutboundRequest(instance domain.Instance, req domain.ProxyRequest) domain.OutboundRequest {
	target := instance.URL.String()
	if req.PathAndQuery != "" {
		target = strings.TrimRight(target, "/") + req.PathAndQuery
	}
	return domain.OutboundRequest{
		InstanceID: instance.ID,
		Method:     req.Method,
		URL:        target,
		Header:     helpers.ForwardHeaders(req.Header),
	}
}
