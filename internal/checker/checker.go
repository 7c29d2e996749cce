// Package checker orchestrates address validation, deduplication and the
// eligibility API call, and turns results into statistics and exports.
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vietddude/airdrop-checker/internal/core/address"
	"github.com/vietddude/airdrop-checker/internal/core/domain"
	"github.com/vietddude/airdrop-checker/internal/metrics"
)

// DefaultMaxBatch is the largest number of addresses accepted per check.
const DefaultMaxBatch = 100

// Client performs the remote eligibility lookups.
type Client interface {
	CheckOne(ctx context.Context, address string) domain.EligibilityResult
	CheckMany(ctx context.Context, addresses []string) []domain.EligibilityResult
}

// Checker validates input and delegates lookups to a Client.
type Checker struct {
	client   Client
	logger   *slog.Logger
	maxBatch int
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxBatch overrides DefaultMaxBatch.
func WithMaxBatch(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.maxBatch = n
		}
	}
}

// New creates a Checker.
func New(client Client, opts ...Option) *Checker {
	c := &Checker{
		client:   client,
		logger:   slog.Default(),
		maxBatch: DefaultMaxBatch,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckAddress checks one address. Invalid input yields an error result
// without contacting the service.
func (c *Checker) CheckAddress(ctx context.Context, addr string) domain.EligibilityResult {
	normalized, ok := address.Normalize(addr)
	if !ok {
		c.logger.Debug("Skipping address", "error", address.Check(addr))
		r := domain.NewErrorResult(addr, domain.MsgInvalidAddress)
		record(r)
		return r
	}

	r := c.client.CheckOne(ctx, normalized)
	record(r)
	return r
}

// CheckAddresses checks a batch. Invalid addresses come first as error
// results, followed by the service results for the unique valid ones.
// Only an oversized batch is reported as an error.
func (c *Checker) CheckAddresses(ctx context.Context, addrs []string) ([]domain.EligibilityResult, error) {
	if len(addrs) == 0 {
		return []domain.EligibilityResult{}, nil
	}

	if len(addrs) > c.maxBatch {
		metrics.BatchesRejectedTotal.Inc()
		return nil, fmt.Errorf("%w: got %d, maximum allowed %d", domain.ErrCapacityExceeded, len(addrs), c.maxBatch)
	}

	p := address.ValidateMany(addrs)
	results := make([]domain.EligibilityResult, 0, len(addrs))

	for _, invalid := range p.Invalid {
		c.logger.Debug("Skipping address", "error", address.Check(invalid))
		results = append(results, domain.NewErrorResult(invalid, domain.MsgInvalidAddress))
	}
	if len(p.Invalid) > 0 {
		c.logger.Warn("Skipping invalid addresses", "count", len(p.Invalid))
	}

	unique := address.RemoveDuplicates(p.Valid)
	if len(unique) > 0 {
		results = append(results, c.client.CheckMany(ctx, unique)...)
	}

	for _, r := range results {
		record(r)
	}
	return results, nil
}

// CheckAddressesFromFile reads addresses from a text file and checks them.
func (c *Checker) CheckAddressesFromFile(ctx context.Context, path string) ([]domain.EligibilityResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", domain.ErrFileRead, path, err)
	}
	defer f.Close()

	addrs, err := ParseAddresses(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", domain.ErrFileRead, path, err)
	}

	c.logger.Info("Loaded addresses", "path", path, "count", len(addrs))
	return c.CheckAddresses(ctx, addrs)
}

func record(r domain.EligibilityResult) {
	metrics.ResultsTotal.WithLabelValues(string(r.Status)).Inc()
}
