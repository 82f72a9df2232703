// Package handlers contains http handlers for mymultichain.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"mymultichain/domain"
	"mymultichain/helpers"
	"mymultichain/interfaces"
	"mymultichain/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	aggregator interfaces.Aggregator
	registry   interfaces.InstanceRegistry
	metrics    *service.Metrics
	logger     log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil dependencies.
func NewHTTPServer(aggregator interfaces.Aggregator, registry interfaces.InstanceRegistry, metrics *service.Metrics, logger log.Logger) *HTTPServer {
	return &HTTPServer{
		aggregator: helpers.NilPanic(aggregator, "handlers.http.go: aggregator is required"),
		registry:   helpers.NilPanic(registry, "handlers.http.go: registry is required"),
		metrics:    helpers.NilPanic(metrics, "handlers.http.go: metrics is required"),
		logger:     log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// Proxy (ANY /*) replays the request on every instance and returns the aggregate with status 200.
// Per-instance failures are inside the aggregate; only an unreadable inbound body fails the call.
func (h *HTTPServer) Proxy(ectx echo.Context) error {
	r := ectx.Request()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return service.NewBadParameterError("can't read request body", err)
	}

	req := domain.ProxyRequest{
		Method:       r.Method,
		Header:       r.Header,
		PathAndQuery: toProxyPathAndQuery(r.URL.EscapedPath(), r.URL.RawQuery),
		Body:         body,
	}
	level.Debug(h.logger).Log(
		"msg", "proxy request",
		"method", req.Method,
		"path", req.PathAndQuery,
		"request_id", ectx.Response().Header().Get(echo.HeaderXRequestID),
	)

	return ectx.JSON(http.StatusOK, h.aggregator.Aggregate(r.Context(), req))
}

// GetInstances (GET /v1/instances) returns the configured instances in registry order.
func (h *HTTPServer) GetInstances(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toInstancesResponse(h.registry.Instances()))
}

// Health (GET /health) always returns 200 once the server is up.
func (h *HTTPServer) Health(ectx echo.Context) error {
	return ectx.NoContent(http.StatusOK)
}

// GetMetrics (GET /metrics) writes the metrics in Prometheus text format.
func (h *HTTPServer) GetMetrics(ectx echo.Context) error {
	resp := ectx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/plain; version=0.0.4; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	h.metrics.WritePrometheus(resp)
	return nil
}
