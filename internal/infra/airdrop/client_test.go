package airdrop

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vietddude/airdrop-checker/internal/core/domain"
)

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func newTestClient(url string, retries int, opts ...Option) *Client {
	cfg := Config{
		BaseURL:    url,
		Timeout:    5 * time.Second,
		MaxRetries: retries,
		RetryDelay: time.Millisecond,
	}
	return NewClient(cfg, append([]Option{WithSleep(noSleep)}, opts...)...)
}

func TestClient_CheckMany(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != DefaultEndpoint {
			t.Errorf("expected path %s, got %s", DefaultEndpoint, r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected method GET, got %s", r.Method)
		}
		if got := r.URL.Query().Get(QueryParam); got != testAddr+","+otherAddr {
			t.Errorf("unexpected %s: %s", QueryParam, got)
		}
		if r.Header.Get("clq-app-id") != "0g" {
			t.Errorf("expected clq-app-id header, got %q", r.Header.Get("clq-app-id"))
		}
		if !strings.Contains(r.Header.Get("User-Agent"), "Chrome") {
			t.Errorf("expected browser user agent, got %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(`{"total":"1","detail":{"evm":{"` + testAddr + `":"5"}}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, 0)
	results := c.CheckMany(context.Background(), []string{testAddr, otherAddr})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Address != testAddr || results[0].Status != domain.StatusEligible {
		t.Errorf("Unexpected first result: %+v", results[0])
	}
	if results[0].Message != "Eligible with score: 5" {
		t.Errorf("Unexpected message: %q", results[0].Message)
	}
	if results[1].Status != domain.StatusNotEligible {
		t.Errorf("Expected second address not eligible, got %s", results[1].Status)
	}
	if results[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestClient_CheckMany_Empty(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	results := newTestClient(server.URL, 0).CheckMany(context.Background(), nil)
	if results == nil || len(results) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", results)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("Expected no request for empty input")
	}
}

func TestClient_CheckOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get(QueryParam); got != testAddr {
			t.Errorf("unexpected %s: %s", QueryParam, got)
		}
		_, _ = w.Write([]byte(`{"status":"eligible","message":"welcome"}`))
	}))
	defer server.Close()

	r := newTestClient(server.URL, 0).CheckOne(context.Background(), testAddr)
	if r.Status != domain.StatusEligible || r.Message != "welcome" {
		t.Errorf("Unexpected result: %+v", r)
	}
}

func TestClient_RetryThenSuccess(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"eligible":["` + testAddr + `"]}`))
	}))
	defer server.Close()

	var delays []time.Duration
	sleep := func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	c := newTestClient(server.URL, 3, WithSleep(sleep))
	r := c.CheckOne(context.Background(), testAddr)

	if r.Status != domain.StatusEligible {
		t.Fatalf("Expected eligible after retries, got %+v", r)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("Expected 3 attempts, got %d", got)
	}
	if len(delays) != 2 || delays[0] != time.Millisecond || delays[1] != 2*time.Millisecond {
		t.Errorf("Expected linear delays [1ms 2ms], got %v", delays)
	}
}

func TestClient_PersistentFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL, 3)
	results := c.CheckMany(context.Background(), []string{testAddr, otherAddr})

	if got := atomic.LoadInt32(&calls); got != 4 {
		t.Errorf("Expected 4 attempts, got %d", got)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Status != domain.StatusError {
			t.Errorf("Expected error status for %s, got %s", r.Address, r.Status)
		}
		if !strings.Contains(r.Message, "http 500") {
			t.Errorf("Expected underlying failure in message, got %q", r.Message)
		}
	}
	if results[0].Message != results[1].Message {
		t.Error("Expected the same message for every address")
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer server.Close()

	r := newTestClient(server.URL, 0).CheckOne(context.Background(), testAddr)
	if r.Status != domain.StatusError || !strings.Contains(r.Message, "parse response") {
		t.Errorf("Expected parse error result, got %+v", r)
	}
}

func TestClient_TrailingData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"eligible":true} {"eligible":false}`))
	}))
	defer server.Close()

	r := newTestClient(server.URL, 0).CheckOne(context.Background(), testAddr)
	if r.Status != domain.StatusError || !strings.Contains(r.Message, "unexpected data after JSON value") {
		t.Errorf("Expected parse error result, got %+v", r)
	}
}

func TestClient_TrailingWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"eligible\":true}\n\n"))
	}))
	defer server.Close()

	r := newTestClient(server.URL, 0).CheckOne(context.Background(), testAddr)
	if r.Status != domain.StatusEligible {
		t.Errorf("Expected eligible, got %+v", r)
	}
}

func TestClient_ContextCancelStopsRetry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sleep := func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	c := newTestClient(server.URL, 3, WithSleep(sleep))
	_, err := c.getWithRetry(ctx, endpointEligibility, c.EligibilityURL([]string{testAddr}))
	if !errors.Is(err, domain.ErrNetwork) || !errors.Is(err, context.Canceled) {
		t.Errorf("Expected network error wrapping cancellation, got %v", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	if !newTestClient(server.URL, 0).HealthCheck(context.Background()) {
		t.Error("Expected healthy service")
	}

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	if newTestClient(down.URL, 1).HealthCheck(context.Background()) {
		t.Error("Expected unhealthy service")
	}
}

func TestClient_EligibilityURL(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://example.com/"})
	got := c.EligibilityURL([]string{testAddr, otherAddr})
	want := "https://example.com/api/eligibility?walletAddresses=" + testAddr + "," + otherAddr
	if got != want {
		t.Errorf("EligibilityURL = %s, want %s", got, want)
	}
}
