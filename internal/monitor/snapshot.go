package monitor

import (
	"time"

	"github.com/gabapcia/txproof/internal/enrichment"
	"github.com/gabapcia/txproof/internal/entropywatch"
)

// Snapshot is the read-only view handed to the presentation layer. Every
// applied cycle replaces it as a whole.
type Snapshot struct {
	CycleID      string                   `json:"cycle_id"`
	UpdatedAt    time.Time                `json:"updated_at"`
	Transactions []enrichment.Transaction `json:"transactions"`
	Entropy      entropywatch.State       `json:"entropy"`
}

// Clone returns a copy that shares no memory with s.
func (s Snapshot) Clone() Snapshot {
	s.Transactions = enrichment.CloneAll(s.Transactions)
	return s
}

// IsEmpty reports whether no cycle has been applied yet.
func (s Snapshot) IsEmpty() bool {
	return s.CycleID == ""
}

// indexOf returns the position of the transaction with the given hash, or -1.
func (s Snapshot) indexOf(hash string) int {
	for i, tx := range s.Transactions {
		if tx.Hash == hash {
			return i
		}
	}
	return -1
}
