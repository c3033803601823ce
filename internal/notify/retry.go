package notify

import (
	"context"
	"strings"
	"time"

	"github.com/avast/retry-go"
)

// RetryingSender wraps a Sender with bounded retries and backoff. Client
// errors from the endpoint are not retried; a 4xx will fail the same way on
// every attempt.
type RetryingSender struct {
	sender      Sender
	maxAttempts uint
}

// NewRetryingSender creates a new RetryingSender. attempts <= 0 falls back
// to 3.
func NewRetryingSender(sender Sender, attempts uint) *RetryingSender {
	if attempts == 0 {
		attempts = 3
	}
	return &RetryingSender{sender: sender, maxAttempts: attempts}
}

func (s *RetryingSender) Dispatch(ctx context.Context, n Notification) error {
	return retry.Do(
		func() error {
			if err := s.sender.Dispatch(ctx, n); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.maxAttempts),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

func isRetryableError(err error) bool {
	errStr := err.Error()

	// Endpoint rejected the payload; retrying cannot help.
	for _, code := range []string{"400", "401", "403", "404", "422"} {
		if strings.Contains(errStr, "response error "+code) {
			return false
		}
	}
	return true
}
