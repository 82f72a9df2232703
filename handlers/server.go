package handlers

import (
	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Lists configured instances
	// (GET /v1/instances)
	GetInstances(ctx echo.Context) error
	// Liveness probe
	// (GET /health)
	Health(ctx echo.Context) error
	// Prometheus metrics
	// (GET /metrics)
	GetMetrics(ctx echo.Context) error
	// Fans the request out to every instance
	// (ANY /*)
	Proxy(ctx echo.Context) error
}

// RegisterHandlers adds each server route to the EchoRouter. The catch-all proxy route is
// registered last; echo prefers static routes, so the service routes above always win.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	router.GET("/v1/instances", si.GetInstances)
	router.GET("/health", si.Health)
	router.GET("/metrics", si.GetMetrics)
	router.Any("/*", si.Proxy)
}
