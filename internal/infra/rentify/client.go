// Package rentify is the HTTP client for the external Rentify REST backend.
// One method per resource read or mutation; every call carries the caller's
// bearer token and runs inside the shared circuit breaker with retry.
package rentify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("rentify-client")

const dateLayout = "2006-01-02"

// Client wraps HTTP calls to the Rentify backend API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
	bulkhead   *resilience.Bulkhead
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewClient creates a Rentify backend client. baseURL includes the /api
// prefix, e.g. "http://localhost:8081/api".
func NewClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, cfg resilience.Config, metrics *observability.Metrics, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		cfg:        cfg,
		bulkhead:   resilience.NewBulkhead(cfg.MaxConcurrency),
		metrics:    metrics,
		logger:     logger,
	}
}

// doRequest executes one authenticated request against the backend. A 4xx
// maps to a typed domain error wrapped as permanent so the retry loop stops;
// 5xx and transport errors stay retryable.
func (c *Client) doRequest(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, resilience.Permanent(err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, resilience.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("rentify: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.logger.Debug("rentify: request OK",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, resilience.Permanent(&domain.ErrUnauthorized{Message: upstreamMessage(body)})
	case resp.StatusCode == http.StatusNotFound:
		return nil, resilience.Permanent(&domain.ErrNotFound{Resource: "resource", ID: path})
	case resp.StatusCode == http.StatusConflict:
		return nil, resilience.Permanent(&domain.ErrConflict{Message: upstreamMessage(body)})
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, resilience.Permanent(&domain.ErrValidation{Field: "request", Message: upstreamMessage(body)})
	default:
		c.logger.Warn("rentify: upstream error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("rentify backend returned status %d", resp.StatusCode)
	}
}

// call runs doRequest under the bulkhead, circuit breaker and retry policy,
// and maps terminal failures to the shared typed errors.
func (c *Client) call(ctx context.Context, resource, method, path, token string, payload any) ([]byte, error) {
	if err := c.bulkhead.Acquire(ctx); err != nil {
		return nil, &domain.ErrTimeout{Operation: resource}
	}
	defer c.bulkhead.Release()

	out, err := c.cb.Execute(func() (any, error) {
		var body []byte
		retryErr := resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			var err error
			body, err = c.doRequest(ctx, method, path, token, payload)
			return err
		})
		return body, retryErr
	})
	if err != nil {
		c.metrics.IncrUpstreamError(resource)
		switch err {
		case gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests:
			return nil, &domain.ErrCircuitOpen{Service: "rentify-backend"}
		case context.DeadlineExceeded:
			return nil, &domain.ErrTimeout{Operation: resource}
		}
		if isTyped(err) {
			return nil, err
		}
		return nil, &domain.ErrExternalService{Service: "rentify-backend", Err: err}
	}
	return out.([]byte), nil
}

// decode unmarshals an upstream body via the row type's UnmarshalJSON.
func decode[T any](body []byte) (T, error) {
	var v T
	if len(body) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, &domain.ErrExternalService{Service: "rentify-backend", Err: err}
	}
	return v, nil
}

// isTyped reports whether err is already one of the shared domain errors and
// should pass through unwrapped.
func isTyped(err error) bool {
	switch err.(type) {
	case *domain.ErrNotFound, *domain.ErrUnauthorized, *domain.ErrConflict, *domain.ErrValidation:
		return true
	}
	return false
}

// upstreamMessage pulls the "message" field from an upstream error body,
// falling back to the raw body.
func upstreamMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return string(body)
}

// parseDate reads the backend's yyyy-mm-dd dates; empty input is the zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// Some endpoints return full timestamps.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

func parseDatePtr(s string) *time.Time {
	t := parseDate(s)
	if t.IsZero() {
		return nil
	}
	return &t
}
