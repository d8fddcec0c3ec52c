// Package brokerage is the HTTP client for the brokerage backend that owns
// customer profiles and the nominee, POA and holder records.
//
// Every call forwards the caller's bearer token from the request context.
// A 401 from the backend surfaces as sentinel.ErrTokenInvalid; callers abort
// the whole flow on it.
package brokerage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dematkyc/internal/nomination/payload"
	"dematkyc/pkg/requestcontext"
)

// Endpoint names used in logs, spans and metrics.
const (
	EndpointProfile        = "profile"
	EndpointFetchNominees  = "fetch_nominees"
	EndpointFetchPOAs      = "fetch_poas"
	EndpointFetchHolders   = "fetch_holders"
	EndpointSubmitNominees = "submit_nominees"
	EndpointSubmitPOAs     = "submit_poas"
	EndpointSubmitHolders  = "submit_holders"
)

// MaxConcurrentCalls is the widest fan-out a caller issues at once: a load
// reads the profile and three record sets in parallel. The half-open breaker
// admits at least this many trial calls so one fan-out is never split.
const MaxConcurrentCalls = 4

// RecordStatus is the backend's verdict on one submitted record.
type RecordStatus struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
}

// envelope is the backend's response wrapper.
type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// Observer receives one observation per backend call.
type Observer interface {
	ObserveBrokerageCall(endpoint, outcome string, d time.Duration)
}

// Client talks to the brokerage backend.
type Client struct {
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	logger   *slog.Logger
	observer Observer
	tracer   trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithObserver records call latency and outcome.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithBreakerSettings overrides the circuit breaker thresholds. maxRequests
// is raised to MaxConcurrentCalls when lower.
func WithBreakerSettings(maxRequests uint32, interval, timeout time.Duration, consecutiveFailures uint32) Option {
	return func(c *Client) {
		c.breaker = newBreaker(maxRequests, interval, timeout, consecutiveFailures, c)
	}
}

// New creates a client for baseURL. timeout bounds each call.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		logger: slog.Default(),
		tracer: otel.Tracer("dematkyc/brokerage"),
	}
	c.breaker = newBreaker(MaxConcurrentCalls, time.Minute, 30*time.Second, 5, c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTP exposes the underlying resty client so tests can attach a mock
// transport.
func (c *Client) HTTP() *resty.Client { return c.http }

func newBreaker(maxRequests uint32, interval, timeout time.Duration, consecutiveFailures uint32, c *Client) *gobreaker.CircuitBreaker {
	if maxRequests < MaxConcurrentCalls {
		maxRequests = MaxConcurrentCalls
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "brokerage",
		MaxRequests: maxRequests,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= consecutiveFailures
		},
		IsSuccessful: func(err error) bool { return !breakerFailure(err) },
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

// Profile returns the customer profile the first holder is built from.
func (c *Client) Profile(ctx context.Context, accountID string) (payload.Profile, error) {
	var env envelope[payload.Profile]
	err := c.call(ctx, EndpointProfile, http.MethodGet, "/profiles/{accountID}", accountID, nil, &env)
	return env.Data, err
}

// FetchNominees returns the account's existing nominee records.
func (c *Client) FetchNominees(ctx context.Context, accountID string) ([]payload.NomineeRecord, error) {
	var env envelope[[]payload.NomineeRecord]
	err := c.call(ctx, EndpointFetchNominees, http.MethodGet, "/accounts/{accountID}/nominees", accountID, nil, &env)
	return env.Data, err
}

// FetchPOAs returns the account's existing POA records, one per nature type.
func (c *Client) FetchPOAs(ctx context.Context, accountID string) ([]payload.POARecord, error) {
	var env envelope[[]payload.POARecord]
	err := c.call(ctx, EndpointFetchPOAs, http.MethodGet, "/accounts/{accountID}/poas", accountID, nil, &env)
	return env.Data, err
}

// FetchHolders returns the account's existing holder records.
func (c *Client) FetchHolders(ctx context.Context, accountID string) ([]payload.HolderRecord, error) {
	var env envelope[[]payload.HolderRecord]
	err := c.call(ctx, EndpointFetchHolders, http.MethodGet, "/accounts/{accountID}/holders", accountID, nil, &env)
	return env.Data, err
}

// SubmitNominees writes nominee records and returns one status per record.
func (c *Client) SubmitNominees(ctx context.Context, accountID string, records []payload.NomineeRecord) ([]RecordStatus, error) {
	var env envelope[[]RecordStatus]
	err := c.call(ctx, EndpointSubmitNominees, http.MethodPost, "/accounts/{accountID}/nominees", accountID, records, &env)
	return env.Data, err
}

// SubmitPOAs writes POA records and returns one status per record.
func (c *Client) SubmitPOAs(ctx context.Context, accountID string, records []payload.POARecord) ([]RecordStatus, error) {
	var env envelope[[]RecordStatus]
	err := c.call(ctx, EndpointSubmitPOAs, http.MethodPost, "/accounts/{accountID}/poas", accountID, records, &env)
	return env.Data, err
}

// SubmitHolders writes holder records and returns one status per record.
func (c *Client) SubmitHolders(ctx context.Context, accountID string, records []payload.HolderRecord) ([]RecordStatus, error) {
	var env envelope[[]RecordStatus]
	err := c.call(ctx, EndpointSubmitHolders, http.MethodPost, "/accounts/{accountID}/holders", accountID, records, &env)
	return env.Data, err
}

// call runs one request through the breaker and decodes the envelope into out.
func (c *Client) call(ctx context.Context, endpoint, method, path, accountID string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "brokerage."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("brokerage.endpoint", endpoint),
			attribute.String("http.method", method),
		),
	)
	defer span.End()

	start := time.Now()
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.do(ctx, endpoint, method, path, accountID, body, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = &CallError{Category: ErrorOutage, Endpoint: endpoint, Message: "circuit open", Underlying: err}
	}

	outcome := "ok"
	if err != nil {
		outcome = string(CategoryOf(err))
		if outcome == "" {
			outcome = "error"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		c.logger.WarnContext(ctx, "brokerage call failed",
			"endpoint", endpoint,
			"account_id", accountID,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	if c.observer != nil {
		c.observer.ObserveBrokerageCall(endpoint, outcome, time.Since(start))
	}
	return err
}

func (c *Client) do(ctx context.Context, endpoint, method, path, accountID string, body, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetPathParam("accountID", accountID)
	if token := requestcontext.AuthToken(ctx); token != "" {
		req.SetAuthToken(token)
	}
	if reqID := requestcontext.RequestID(ctx); reqID != "" {
		req.SetHeader("X-Request-ID", reqID)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		category := ErrorOutage
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			category = ErrorTimeout
		}
		return &CallError{Category: category, Endpoint: endpoint, Message: "request failed", Underlying: err}
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	switch status := resp.StatusCode(); {
	case status == http.StatusUnauthorized:
		return &CallError{Category: ErrorAuthentication, Endpoint: endpoint, StatusCode: status, Message: "token rejected"}
	case status == http.StatusNotFound:
		return &CallError{Category: ErrorNotFound, Endpoint: endpoint, StatusCode: status}
	case status >= http.StatusInternalServerError:
		return &CallError{Category: ErrorOutage, Endpoint: endpoint, StatusCode: status, Message: truncate(resp.String())}
	case status >= http.StatusBadRequest:
		return &CallError{Category: ErrorRejected, Endpoint: endpoint, StatusCode: status, Message: truncate(resp.String())}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &CallError{Category: ErrorBadData, Endpoint: endpoint, StatusCode: resp.StatusCode(), Message: "decode response", Underlying: err}
	}
	return nil
}

func truncate(s string) string {
	const limit = 200
	if len(s) <= limit {
		return s
	}
	return fmt.Sprintf("%s...", s[:limit])
}
