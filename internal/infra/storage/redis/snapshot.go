package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txproof/internal/enrichment"
	"github.com/gabapcia/txproof/internal/entropywatch"
	"github.com/gabapcia/txproof/internal/monitor"
)

// transactionsMessage is published on "<prefix>:transactions".
type transactionsMessage struct {
	CycleID      string                   `json:"cycle_id"`
	UpdatedAt    time.Time                `json:"updated_at"`
	Transactions []enrichment.Transaction `json:"transactions"`
}

// entropyMessage is published on "<prefix>:entropy".
type entropyMessage struct {
	CycleID   string             `json:"cycle_id"`
	UpdatedAt time.Time          `json:"updated_at"`
	Entropy   entropywatch.State `json:"entropy"`
}

func (c *client) transactionsChannel() string {
	return fmt.Sprintf("%s:transactions", c.channel)
}

func (c *client) entropyChannel() string {
	return fmt.Sprintf("%s:entropy", c.channel)
}

// PublishSnapshot publishes the transaction list and the entropy state as
// two messages. Both are attempted even if the first one fails.
func (c *client) PublishSnapshot(ctx context.Context, snapshot monitor.Snapshot) error {
	txs := snapshot.Transactions
	if txs == nil {
		txs = []enrichment.Transaction{}
	}

	txPayload, err := json.Marshal(transactionsMessage{
		CycleID:      snapshot.CycleID,
		UpdatedAt:    snapshot.UpdatedAt,
		Transactions: txs,
	})
	if err != nil {
		return err
	}

	entropyPayload, err := json.Marshal(entropyMessage{
		CycleID:   snapshot.CycleID,
		UpdatedAt: snapshot.UpdatedAt,
		Entropy:   snapshot.Entropy,
	})
	if err != nil {
		return err
	}

	return errors.Join(
		c.conn.Publish(ctx, c.transactionsChannel(), txPayload).Err(),
		c.conn.Publish(ctx, c.entropyChannel(), entropyPayload).Err(),
	)
}

var _ monitor.SnapshotPublisher = (*client)(nil)
