package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"mymultichain/domain"
	"mymultichain/helpers"
	"mymultichain/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ErrResponseNotUTF8 is the failure reported when an instance answers with a body that is not valid UTF-8.
var ErrResponseNotUTF8 = errors.New("response body is not valid utf-8")

// transportExecutor implements interfaces.TransportExecutor on top of an interfaces.HTTPClient.
// Every failure is folded into a 500 outcome whose content is the error text; the text is logged here
// and nowhere else.
type transportExecutor struct {
	client  interfaces.HTTPClient
	timeout time.Duration
	logger  log.Logger
}

// NewTransportExecutor creates the executor. Panics on nil client or logger and on a non-positive timeout.
//
// Parameters: client - HTTP client (cmd/main passes an *http.Client with a pooled transport); timeout - per-instance
// deadline covering connect, headers and full body read; logger - logger for transport failures.
//
// Returns: interfaces.TransportExecutor (*transportExecutor).
//
// Called from cmd/main when building the aggregator.
func NewTransportExecutor(client interfaces.HTTPClient, timeout time.Duration, logger log.Logger) interfaces.TransportExecutor {
	return &transportExecutor{
		client:  helpers.NilPanic(client, "service.executor.go: client is required"),
		timeout: helpers.PositivePanic(timeout, "service.executor.go: timeout must be positive"),
		logger:  log.With(helpers.NilPanic(logger, "service.executor.go: logger is required"), "component", "transport_executor"),
	}
}

// Execute sends out with body within the configured timeout and returns the body and status.
//
// Parameters: ctx - parent context; out - addressed request; body - shared read-only request body (each call
// reads it through its own bytes.Reader, the slice itself is never written).
//
// Returns: TransportOutcome{Content, Status} for any HTTP response; TransportOutcome{error text, 500} on
// request construction, network, timeout, body read or UTF-8 failure.
//
// Called from service.aggregator.dispatch.
func (e *transportExecutor) Execute(ctx context.Context, out domain.OutboundRequest, body []byte) domain.TransportOutcome {
	content, status, err := e.perform(ctx, out, body)
	if err != nil {
		level.Warn(e.logger).Log("msg", "instance request failed", "instance", out.InstanceID, "url", out.URL, "err", err)
		return domain.TransportOutcome{Content: []byte(err.Error()), Status: http.StatusInternalServerError}
	}
	return domain.TransportOutcome{Content: content, Status: status}
}

func (e *transportExecutor) perform(ctx context.Context, out domain.OutboundRequest, body []byte) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, out.Method, out.URL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	if out.Header != nil {
		req.Header = out.Header
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response body: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, 0, ErrResponseNotUTF8
	}
	return content, resp.StatusCode, nil
}
