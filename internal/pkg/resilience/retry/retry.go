// Package retry runs operations that may fail temporarily under an
// exponential backoff policy. It wraps avast/retry-go behind a small
// interface so callers can inject a no-op or test implementation.
//
// It is meant for startup and connectivity work (e.g. reaching a broker).
// Verification calls are never retried here: a failed check is settled on the
// next scheduled poll.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(500*time.Millisecond))
//	err := r.Execute(ctx, func() error { return conn.Ping(ctx).Err() })
package retry

import (
	"context"
	"time"

	"github.com/gabapcia/txproof/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation with retry logic.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// or ctx is done. The operation must be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint          // total attempts, including the first one
	delay       time.Duration // base delay for the exponential backoff
	maxDelay    time.Duration // upper bound for a single delay
	lastErrOnly bool          // return only the final error instead of all of them
	name        string        // operation name used in retry logs
}

// Option configures a Retry built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New builds a Retry. Defaults: 3 attempts, 1s base delay, 5s max delay,
// only the last error returned.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		name:        "operation",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn(ctx, "operation failed, retrying",
				"retry.operation", r.cfg.name,
				"retry.attempt", n+1,
				"error", err,
			)
		}),
	)
}

// WithAttempts sets the total number of attempts (including the first one).
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly chooses between returning the final error (true) or all
// attempt errors combined (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithName labels the operation in retry logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
