package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Retry and transport policy. Fixed constants, not tuned values.
const (
	httpTimeout    = 10 * time.Second
	maxRetries     = 3
	retryBaseDelay = 1 * time.Second

	maxConnections     = 100
	maxIdleConnections = 20
)

// newPooledClient builds the HTTP client shared by a provider across
// requests. The pool is process-wide per provider and released via Close.
func newPooledClient() *http.Client {
	return &http.Client{
		Timeout: httpTimeout,
		Transport: &http.Transport{
			MaxConnsPerHost:     maxConnections,
			MaxIdleConns:        maxConnections,
			MaxIdleConnsPerHost: maxIdleConnections,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// doWithRetry issues the request up to maxRetries times with exponential
// backoff starting at retryBaseDelay. Transport errors, timeouts and
// retryable status codes (429, 5xx) all follow the same retry path.
func doWithRetry(ctx context.Context, client *http.Client, name string, build func() (*http.Request, error)) (*http.Response, error) {
	backoff := retryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := build()
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req.WithContext(ctx))
		if err == nil && !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		if err != nil {
			lastErr = fmt.Errorf("%s request: %w", name, err)
		} else {
			resp.Body.Close()
			lastErr = fmt.Errorf("%s response status %d: %w", name, resp.StatusCode, ErrTemporary)
		}

		if attempt == maxRetries {
			break
		}
		slog.WarnContext(ctx, "provider request failed, retrying",
			"provider", name, "attempt", attempt, "backoff", backoff.String(), "error", lastErr)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	return nil, lastErr
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
