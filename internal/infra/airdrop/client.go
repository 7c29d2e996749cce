// Package airdrop implements the HTTP client for the airdrop eligibility API.
//
// The client never returns errors for per-address failures: transport
// problems, timeouts and non-2xx answers are folded into error-status
// results so that callers always get one result per requested address.
package airdrop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vietddude/airdrop-checker/internal/core/domain"
	"github.com/vietddude/airdrop-checker/internal/metrics"
)

const (
	endpointEligibility = "eligibility"
	endpointHealth      = "health"
)

// Client queries the airdrop eligibility endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request and retry reporting.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithSleep replaces the function used to wait between retries.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// NewClient creates a new airdrop API client.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: slog.Default(),
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckOne checks a single address.
func (c *Client) CheckOne(ctx context.Context, address string) domain.EligibilityResult {
	c.logger.Info("Checking eligibility", "address", address)

	body, err := c.query(ctx, []string{address})
	if err != nil {
		c.logger.Error("Eligibility check failed", "address", address, "error", err)
		return domain.NewErrorResult(address, err.Error())
	}

	v := interpret(body, address)
	return domain.EligibilityResult{
		Address:   address,
		Status:    v.status,
		Message:   v.message,
		Timestamp: time.Now(),
	}
}

// CheckMany checks all addresses with a single request. On failure every
// address gets an error result carrying the same message.
func (c *Client) CheckMany(ctx context.Context, addresses []string) []domain.EligibilityResult {
	if len(addresses) == 0 {
		return []domain.EligibilityResult{}
	}

	c.logger.Info("Checking eligibility", "count", len(addresses))

	body, err := c.query(ctx, addresses)
	if err != nil {
		c.logger.Error("Batch eligibility check failed", "count", len(addresses), "error", err)
		results := make([]domain.EligibilityResult, len(addresses))
		for i, a := range addresses {
			results[i] = domain.NewErrorResult(a, err.Error())
		}
		return results
	}

	now := time.Now()
	results := make([]domain.EligibilityResult, len(addresses))
	for i, a := range addresses {
		v := interpret(body, a)
		results[i] = domain.EligibilityResult{
			Address:   a,
			Status:    v.status,
			Message:   v.message,
			Timestamp: now,
		}
	}
	return results
}

// HealthCheck reports whether the service answers its health endpoint.
func (c *Client) HealthCheck(ctx context.Context) bool {
	_, err := c.getWithRetry(ctx, endpointHealth, strings.TrimRight(c.cfg.BaseURL, "/")+"/health")
	if err != nil {
		c.logger.Error("Health check failed", "error", err)
		return false
	}
	return true
}

// EligibilityURL builds the request URL for the given addresses.
func (c *Client) EligibilityURL(addresses []string) string {
	escaped := make([]string, len(addresses))
	for i, a := range addresses {
		escaped[i] = url.QueryEscape(a)
	}
	return strings.TrimRight(c.cfg.BaseURL, "/") + c.cfg.Endpoint +
		"?" + QueryParam + "=" + strings.Join(escaped, ",")
}

// query fetches and decodes the eligibility response.
func (c *Client) query(ctx context.Context, addresses []string) (any, error) {
	data, err := c.getWithRetry(ctx, endpointEligibility, c.EligibilityURL(addresses))
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parse response: unexpected data after JSON value")
	}
	return body, nil
}

// get makes a single GET request and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeTransport).Inc()
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeHTTPError).Inc()
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeTransport).Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}

	metrics.APIRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeSuccess).Inc()
	c.logger.Debug("Request completed", "url", rawURL, "status", resp.StatusCode, "latency", time.Since(start))
	return body, nil
}
