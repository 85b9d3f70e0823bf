package monitor

import (
	"context"
	"sync"

	"github.com/gabapcia/txproof/internal/entropywatch"
	"github.com/gabapcia/txproof/internal/pkg/metrics"
)

// metricsPublisher mirrors every applied snapshot into Prometheus gauges.
// Republishing a cycle already seen, as VerifyTransaction does, refreshes
// the gauges without counting another cycle.
type metricsPublisher struct {
	metrics *metrics.Metrics

	mu        sync.Mutex
	lastCycle string
}

// NewMetricsPublisher returns a SnapshotPublisher that records snapshot
// statistics into m.
func NewMetricsPublisher(m *metrics.Metrics) *metricsPublisher {
	return &metricsPublisher{
		metrics: m,
	}
}

var _ SnapshotPublisher = (*metricsPublisher)(nil)

func (p *metricsPublisher) PublishSnapshot(_ context.Context, snapshot Snapshot) error {
	verdicts := map[string]map[string]int{
		"signature": {},
		"merkle":    {},
	}
	for _, tx := range snapshot.Transactions {
		verdicts["signature"][tx.SignatureValid.String()]++
		verdicts["merkle"][tx.MerkleValid.String()]++
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	newCycle := snapshot.CycleID != p.lastCycle
	p.lastCycle = snapshot.CycleID

	p.metrics.RecordSnapshot(metrics.SnapshotStats{
		NewCycle:       newCycle,
		UpdatedAt:      snapshot.UpdatedAt,
		Transactions:   len(snapshot.Transactions),
		Verdicts:       verdicts,
		EntropyPresent: snapshot.Entropy.Freshness() == entropywatch.Present,
	})

	return nil
}
