// Package entropywatch tracks whether an external entropy source is alive.
//
// The tracker keeps the last successfully observed State. A failed refresh
// leaves that state untouched, so a temporary outage never looks like the
// key disappearing.
package entropywatch

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/txproof/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Source is the external entropy collaborator.
type Source interface {
	// LatestEntropy fetches the newest reading. A non-nil error means the
	// source could not be read.
	LatestEntropy(ctx context.Context) (Reading, error)
}

type config struct {
	now func() time.Time
}

// Option configures a Tracker.
type Option func(*config)

// WithClock overrides the clock used to stamp ObservedAt.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// Tracker holds the latest entropy state and refreshes it on demand.
type Tracker struct {
	source Source
	now    func() time.Time

	mu    sync.RWMutex
	state State
}

// New creates a Tracker starting from the absent state.
func New(source Source, opts ...Option) *Tracker {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tracker{
		source: source,
		now:    cfg.now,
	}
}

// Refresh queries the source once. On success the held state is replaced and
// returned. On failure the previous state is returned along with the error.
func (t *Tracker) Refresh(ctx context.Context) (State, error) {
	ctx, span := otel.Tracer("txproof/entropywatch").Start(ctx, "entropywatch.Refresh")
	defer span.End()

	reading, err := t.source.LatestEntropy(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "entropy refresh failed")
		logger.Warn(ctx, "entropy refresh failed, keeping last known state", "error", err)
		return t.State(), err
	}

	next := stateFromReading(reading, t.now().UTC())
	span.SetAttributes(
		attribute.String("entropy.freshness", next.Freshness().String()),
		attribute.Bool("entropy.has_timestamp", next.HasTimestamp()),
	)

	if reading.Timestamp != nil && !next.HasTimestamp() {
		logger.Debug(ctx, "entropy timestamp could not be parsed", "entropy.timestamp", *reading.Timestamp)
	}

	t.mu.Lock()
	t.state = next
	t.mu.Unlock()

	return next, nil
}

// State returns the held state.
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.state
}
