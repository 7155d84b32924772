package google

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"google.golang.org/api/googleapi"
)

const (
	maxAttempts = 4
	baseBackoff = 250 * time.Millisecond
)

// withRetry runs op with bounded exponential backoff. Quota exhaustion and
// server-side failures are transient; auth and permission errors are not
// worth a second attempt and surface immediately.
func withRetry(ctx context.Context, what string, op func() error) error {
	var lastErr error
	backoff := baseBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}
		if attempt == maxAttempts {
			break
		}
		slog.WarnContext(ctx, "Transient store error, retrying",
			"op", what, "attempt", attempt, "backoff", backoff, "error", lastErr)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff *= 2
	}
	return lastErr
}

func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return false
}
