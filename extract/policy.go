package extract

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
)

// Policy is the pacing and retry policy applied to remote API calls. The
// zero value makes each call exactly once, unpaced.
type Policy struct {
	Limiter *rate.Limiter // minimum interval between calls; nil disables pacing
	Retries uint64        // additional attempts for rate-limit/5xx errors; 0 disables retries
	Backoff time.Duration // base delay for the Fibonacci backoff between retries
}

func (p Policy) do(ctx context.Context, f func() error) error {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if p.Retries == 0 {
		return f()
	}

	backoff := p.Backoff
	if backoff == 0 {
		backoff = 1 * time.Second
	}

	return retry.Do(ctx, retry.WithMaxRetries(p.Retries, retry.NewFibonacci(backoff)), func(ctx context.Context) error {
		if err := f(); err != nil {
			if retryable(err) {
				return retry.RetryableError(err)
			}

			return err
		}

		return nil
	})
}

// retryable is true only for API errors worth a second attempt - rate limit
// responses and server-side failures. Everything else (bad requests, missing
// documents, transport failures) fails immediately.
func retryable(err error) bool {
	var apierr *googleapi.Error

	if errors.As(err, &apierr) {
		return apierr.Code == http.StatusTooManyRequests || apierr.Code >= http.StatusInternalServerError
	}

	return false
}
