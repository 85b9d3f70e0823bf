package enrichment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gabapcia/txproof/internal/sigcheck"
)

// ErrInvalidAmount is returned when an amount is neither a finite number nor
// a string holding one.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a transfer value. Ledger records carry it either as a JSON number
// or as a numeric string.
type Amount float64

// String renders the amount in its canonical signing form.
func (a Amount) String() string {
	return sigcheck.FormatAmount(float64(a))
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(a)) || math.IsInf(float64(a), 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, float64(a))
	}
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		raw = strings.TrimSpace(raw)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}

	*a = Amount(v)
	return nil
}

// Defects flags identity fields the feed delivered in an unusable shape. A
// flagged group fails its check without reaching the verification service.
type Defects struct {
	SignatureInputs bool // sender, recipient, amount, signature or public_key
	ProofInputs     bool // hash, proof or merkle_root
}

// Transaction is a ledger record plus the verification annotations attached
// to it. Identity fields come from the feed. Annotations are only written by
// the pipeline.
type Transaction struct {
	Sender     string   `json:"sender"`
	Recipient  string   `json:"recipient"`
	Amount     Amount   `json:"amount"`
	Hash       string   `json:"hash"`
	Signature  string   `json:"signature"`
	PublicKey  string   `json:"public_key"`
	Proof      []string `json:"proof"`
	MerkleRoot string   `json:"merkle_root"`

	SignatureValid    Verdict `json:"signature_valid"`
	MerkleValid       Verdict `json:"merkle_valid"`
	WalletFingerprint string  `json:"wallet_fingerprint"`
	WalletAddress     string  `json:"wallet_address"`

	Defects Defects `json:"-"`
}

// Message is the canonical text the sender signed.
func (t Transaction) Message() string {
	return sigcheck.CanonicalMessage(t.Sender, t.Recipient, float64(t.Amount))
}

// Clone returns a copy that shares no memory with t.
func (t Transaction) Clone() Transaction {
	if t.Proof != nil {
		t.Proof = append(make([]string, 0, len(t.Proof)), t.Proof...)
	}
	return t
}

// CloneAll deep-copies a transaction list. A nil list stays nil.
func CloneAll(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}

	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = tx.Clone()
	}
	return out
}
