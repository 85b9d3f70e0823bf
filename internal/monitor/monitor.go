// Package monitor drives the periodic verification cycle.
//
// A cycle fetches the transaction feed, runs it through the enrichment
// pipeline and refreshes the entropy tracker, then replaces the published
// Snapshot in one step. Cycles are started on a fixed interval and may
// overlap. Whichever finishes last wins. Once Stop is called no cycle can
// change the snapshot again.
//
// VerifyTransaction is authorized against the session given to Start. Callers
// exposing it to other principals must authenticate them first.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/txproof/internal/enrichment"
	"github.com/gabapcia/txproof/internal/entropywatch"
	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/pkg/x/chflow"
	"github.com/gabapcia/txproof/internal/session"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrNoSession           = errors.New("no active session")
	ErrAlreadyStarted      = errors.New("monitor already started")
	ErrStopped             = errors.New("monitor stopped")
	ErrNotRunning          = errors.New("monitor not running")
	ErrForbidden           = errors.New("action requires an admin session")
	ErrTransactionNotFound = errors.New("transaction not found")
)

const defaultInterval = 5 * time.Second

// TransactionFeed supplies the raw ledger transactions.
type TransactionFeed interface {
	FetchTransactions(ctx context.Context) ([]enrichment.Transaction, error)
}

// SnapshotPublisher receives every applied snapshot. Errors are logged and
// otherwise ignored.
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, snapshot Snapshot) error
}

// Enricher annotates transactions with verification verdicts.
type Enricher interface {
	Enrich(ctx context.Context, txs []enrichment.Transaction) []enrichment.Transaction
	EnrichOne(ctx context.Context, tx enrichment.Transaction) enrichment.Transaction
}

// EntropyTracker refreshes the entropy liveness state. On failure it returns
// the last known state together with the error.
type EntropyTracker interface {
	Refresh(ctx context.Context) (entropywatch.State, error)
}

type config struct {
	interval   time.Duration
	publishers []SnapshotPublisher
	now        func() time.Time
}

// Option configures a Monitor.
type Option func(*config)

// WithInterval sets the time between cycle starts. Default: 5 seconds.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithPublisher adds a snapshot publisher. It may be given more than once.
func WithPublisher(p SnapshotPublisher) Option {
	return func(c *config) {
		if p != nil {
			c.publishers = append(c.publishers, p)
		}
	}
}

// WithClock overrides the clock used to stamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// Monitor schedules verification cycles and holds the latest Snapshot.
type Monitor struct {
	feed       TransactionFeed
	enricher   Enricher
	entropy    EntropyTracker
	publishers []SnapshotPublisher
	interval   time.Duration
	now        func() time.Time

	mu       sync.Mutex
	state    State
	session  session.Session
	cancel   context.CancelFunc
	done     chan struct{}
	snapshot Snapshot
}

// New builds an idle Monitor.
func New(feed TransactionFeed, enricher Enricher, entropy EntropyTracker, opts ...Option) *Monitor {
	cfg := config{
		interval: defaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Monitor{
		feed:       feed,
		enricher:   enricher,
		entropy:    entropy,
		publishers: cfg.publishers,
		interval:   cfg.interval,
		now:        cfg.now,
		done:       make(chan struct{}),
	}
}

// Start runs the first cycle right away and then one every interval, acting
// on behalf of sess. It returns immediately.
func (m *Monitor) Start(ctx context.Context, sess session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case sess.IsNone():
		return ErrNoSession
	case m.state == Running:
		return ErrAlreadyStarted
	case m.state == Stopped:
		return ErrStopped
	}

	// The loop must outlive the caller's request scope but still carry its
	// logging fields.
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	ctx = logger.Derive(ctx, "session.username", sess.Username)

	m.session = sess
	m.cancel = cancel
	m.state = Running

	go m.loop(ctx)

	logger.Info(ctx, "monitor started", "monitor.interval", m.interval.String())
	return nil
}

// Stop cancels the loop and every in-flight cycle. Results arriving after
// Stop are dropped. Calling Stop more than once is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case Stopped:
		return
	case Idle:
		close(m.done)
	case Running:
		m.cancel()
	}
	m.state = Stopped
}

// Done is closed once the monitor is stopped and no cycle is still running.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// State returns the current lifecycle stage.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Snapshot returns a private copy of the latest applied snapshot.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshot.Clone()
}

func (m *Monitor) loop(ctx context.Context) {
	var cycles sync.WaitGroup
	defer func() {
		cycles.Wait()
		close(m.done)
	}()

	launch := func() {
		cycles.Add(1)
		go func() {
			defer cycles.Done()
			m.runCycle(ctx)
		}()
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	launch()
	for {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			return
		}
		launch()
	}
}

func (m *Monitor) runCycle(ctx context.Context) {
	cycleID := newCycleID()
	ctx = logger.Derive(ctx, "cycle.id", cycleID)

	ctx, span := otel.Tracer("txproof/monitor").Start(ctx, "monitor.Cycle")
	defer span.End()
	span.SetAttributes(attribute.String("cycle.id", cycleID))

	var (
		wg      sync.WaitGroup
		entropy entropywatch.State
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Refresh already logs failures and returns the last known state.
		entropy, _ = m.entropy.Refresh(ctx)
	}()

	raw, err := m.feed.FetchTransactions(ctx)
	var txs []enrichment.Transaction
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transaction feed failed")
		logger.Warn(ctx, "transaction feed failed, keeping previous transactions", "error", err)
	} else {
		txs = m.enricher.Enrich(ctx, raw)
	}

	wg.Wait()

	m.apply(ctx, cycleID, txs, err == nil, entropy)
}

// apply installs the cycle result unless the monitor left the Running state
// while the cycle was in flight.
func (m *Monitor) apply(ctx context.Context, cycleID string, txs []enrichment.Transaction, feedOK bool, entropy entropywatch.State) {
	m.mu.Lock()
	if m.state != Running {
		m.mu.Unlock()
		logger.Debug(ctx, "discarding cycle result after stop")
		return
	}

	next := Snapshot{
		CycleID:      cycleID,
		UpdatedAt:    m.now().UTC(),
		Transactions: txs,
		Entropy:      entropy,
	}
	if !feedOK {
		next.Transactions = m.snapshot.Transactions
	}
	m.snapshot = next
	published := next.Clone()
	m.mu.Unlock()

	logger.Info(ctx, "cycle applied",
		"cycle.transactions", len(published.Transactions),
		"entropy.freshness", published.Entropy.Freshness().String(),
	)

	m.publish(ctx, published)
}

func (m *Monitor) publish(ctx context.Context, snapshot Snapshot) {
	for _, p := range m.publishers {
		if err := p.PublishSnapshot(ctx, snapshot.Clone()); err != nil {
			logger.Warn(ctx, "failed to publish snapshot", "error", err)
		}
	}
}

// VerifyTransaction re-runs both checks for the transaction with the given
// hash and overwrites its annotations in the current snapshot. Only admin
// sessions may call it.
func (m *Monitor) VerifyTransaction(ctx context.Context, hash string) (enrichment.Transaction, error) {
	m.mu.Lock()
	state, sess := m.state, m.session
	idx := m.snapshot.indexOf(hash)
	var tx enrichment.Transaction
	if idx >= 0 {
		tx = m.snapshot.Transactions[idx].Clone()
	}
	m.mu.Unlock()

	switch {
	case state != Running:
		return enrichment.Transaction{}, ErrNotRunning
	case !sess.IsAdmin():
		return enrichment.Transaction{}, ErrForbidden
	case idx < 0:
		return enrichment.Transaction{}, ErrTransactionNotFound
	}

	ctx = logger.Derive(ctx, "transaction.hash", hash)
	fresh := m.enricher.EnrichOne(ctx, tx)

	m.mu.Lock()
	if m.state != Running {
		m.mu.Unlock()
		return enrichment.Transaction{}, ErrNotRunning
	}

	// A cycle may have replaced the snapshot meanwhile. Only annotations are
	// written, and only if the transaction is still listed.
	var published Snapshot
	applied := false
	if i := m.snapshot.indexOf(hash); i >= 0 {
		current := &m.snapshot.Transactions[i]
		current.SignatureValid = fresh.SignatureValid
		current.MerkleValid = fresh.MerkleValid
		current.WalletFingerprint = fresh.WalletFingerprint
		current.WalletAddress = fresh.WalletAddress
		published = m.snapshot.Clone()
		applied = true
	}
	m.mu.Unlock()

	logger.Info(ctx, "transaction re-verified",
		"signature.valid", fresh.SignatureValid.String(),
		"merkle.valid", fresh.MerkleValid.String(),
	)
	if applied {
		m.publish(ctx, published)
	}

	return fresh, nil
}

func newCycleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
