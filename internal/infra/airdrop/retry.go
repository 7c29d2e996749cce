package airdrop

import (
	"context"
	"fmt"
	"time"

	"github.com/vietddude/airdrop-checker/internal/core/domain"
	"github.com/vietddude/airdrop-checker/internal/metrics"
)

// retryDelay returns the wait before the given retry (1-based). The delay
// grows linearly: base, 2*base, 3*base...
func retryDelay(retry int, base time.Duration) time.Duration {
	if retry < 1 {
		return 0
	}
	return base * time.Duration(retry)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// getWithRetry performs a GET, retrying any failure up to MaxRetries times.
func (c *Client) getWithRetry(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	var lastErr error
	attempts := c.cfg.MaxRetries + 1

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := retryDelay(attempt, c.cfg.RetryDelay)
			c.logger.Warn("Retrying request",
				"retry", fmt.Sprintf("%d/%d", attempt, c.cfg.MaxRetries),
				"url", rawURL,
				"delay", delay,
				"error", lastErr,
			)
			metrics.APIRetriesTotal.WithLabelValues(endpoint).Inc()
			if err := c.sleep(ctx, delay); err != nil {
				return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
			}
		}

		body, err := c.get(ctx, endpoint, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, ctx.Err())
		}
	}

	return nil, fmt.Errorf("%w: failed after %d attempts: %w", domain.ErrNetwork, attempts, lastErr)
}
