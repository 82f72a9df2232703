// Package main is the entry point for the MyMultichain fan-out proxy. It loads configuration (env + YAML or
// Redis), builds the instance registry, the transport executor over a pooled http.Client, the response
// normalizer and the bounded fan-out aggregator, and serves them with echo: a catch-all proxy route plus
// /v1/instances, /health and /metrics. An optional gRPC health server runs next to it. On SIGINT/SIGTERM
// both servers shut down gracefully within 10s.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mymultichain/adapters/myredis"
	"mymultichain/domain"
	"mymultichain/handlers"
	"mymultichain/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	// .env.local first: godotenv never overrides a variable that is already set
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			level.Error(logger).Log("msg", "Failed to load env file", "file", file, "err", err)
			os.Exit(1)
		}
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	levelOpt, _ := levelOption(config.LogLevel)
	logger = level.NewFilter(logger, levelOpt)

	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc_health", config.GRPCHealthPort,
		"concurrent_requests", config.ConcurrentRequests,
		"request_timeout", config.RequestTimeout,
		"instances_source", config.InstancesSource,
	)

	instances := config.Instances
	if config.InstancesSource == sourceRedis {
		instances, err = loadRedisInstances(config.Redis, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load instances from Redis", "err", err)
			os.Exit(1)
		}
	}

	registry, err := service.NewInstanceRegistry(instances)
	if err != nil {
		level.Error(logger).Log("msg", "Invalid instance list", "err", err)
		os.Exit(1)
	}
	for _, inst := range registry.Instances() {
		level.Info(logger).Log("msg", "Instance registered", "instance", inst.ID, "title", inst.Title, "url", inst.URL)
	}

	metrics := service.NewMetrics()

	// Create fan-out aggregator
	var httpServer *handlers.HTTPServer
	{
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConnsPerHost = config.ConcurrentRequests
		client := &http.Client{Transport: transport}

		aggregator := service.NewAggregator(
			registry,
			service.NewTransportExecutor(client, config.RequestTimeout, logger),
			service.NewResponseNormalizer(),
			service.NewTimeProvider(time.Now),
			metrics,
			config.ConcurrentRequests,
			logger,
		)
		httpServer = handlers.NewHTTPServer(aggregator, registry, metrics, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())
		e.Use(middleware.RequestID())
		e.Use(middleware.BodyLimit(config.MaxBodySize))
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, httpServer)
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			os.Exit(1)
		}
	}()

	grpcServer, healthServer := newHealthServer()
	if config.GRPCHealthPort != 0 {
		lis, err := net.Listen("tcp", ":"+strconv.Itoa(config.GRPCHealthPort))
		if err != nil {
			level.Error(logger).Log("msg", "listen grpc health", "err", err)
			os.Exit(1)
		}
		go func() {
			level.Info(logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr().String())
			if err := grpcServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC health server error", "err", err)
			}
		}()
	}

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}

	level.Info(logger).Log("msg", "Server stopped")
}

// loadRedisInstances connects to Redis, reads the instance list once and closes the client.
func loadRedisInstances(cfg myredis.RedisConfig, logger log.Logger) ([]domain.Instance, error) {
	redisClient, err := myredis.NewRedisUniversalClient(cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	level.Info(logger).Log("msg", "Connected to Redis", "prefix", cfg.Prefix)

	return myredis.NewInstanceSource(redisClient, cfg.Prefix).LoadInstances(ctx)
}
