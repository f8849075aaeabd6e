package api

import "time"

// RetryPolicy governs how many attempts a request gets and which failures
// are worth retrying. Configured once at client construction; the attempt
// count can be overridden per request.
type RetryPolicy struct {
	// Retries is the number of attempts beyond the first.
	Retries int
	// Delay is the base backoff. Retry n waits n*Delay (linear backoff).
	Delay time.Duration
	// ShouldRetry decides eligibility. Defaults to retrying network
	// failures and 5xx responses only.
	ShouldRetry func(err *Error) bool
}

// DefaultRetryPolicy mirrors the dashboard defaults: 3 retries, 1s base delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Retries:     3,
		Delay:       time.Second,
		ShouldRetry: retryOnServerOrNetwork,
	}
}

func retryOnServerOrNetwork(err *Error) bool {
	return err.Retryable
}

func (p RetryPolicy) shouldRetry(err *Error) bool {
	if p.ShouldRetry != nil {
		return p.ShouldRetry(err)
	}
	return retryOnServerOrNetwork(err)
}

// backoff returns the wait before the given retry (1-based).
func (p RetryPolicy) backoff(retry int) time.Duration {
	return p.Delay * time.Duration(retry)
}
