package hwid

import (
	"context"
	"time"
)

// backoffBase is the delay before the second attempt, doubling afterwards
const backoffBase = 100 * time.Millisecond

// retryQuery runs op until it reports a final outcome, up to attempts
// times, sleeping backoff(attempt) between tries. The delay after the last
// attempt is skipped and a done context ends the loop early.
func retryQuery(ctx context.Context, attempts int, backoff func(int) time.Duration, op func(context.Context) (string, bool)) (string, bool) {
	for attempt := 0; attempt < attempts; attempt++ {
		value, final := op(ctx)
		if final {
			return value, true
		}

		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", false
		case <-time.After(backoff(attempt)):
		}
	}
	return "", false
}

// expBackoff doubles the base delay with every attempt
func expBackoff(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return base << attempt
	}
}
