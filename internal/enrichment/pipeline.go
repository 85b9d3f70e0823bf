// Package enrichment annotates ledger transactions with signature and Merkle
// inclusion verdicts.
//
// Each transaction runs both checks concurrently and is annotated only after
// both settle. Transactions are processed concurrently up to a configurable
// limit, and the output always keeps the input order and length. A fault
// while checking one transaction never affects the others: the faulty check
// resolves to Invalid.
package enrichment

import (
	"context"
	"sync"

	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/proofcheck"
	"github.com/gabapcia/txproof/internal/sigcheck"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

const (
	kindSignature = "signature"
	kindMerkle    = "merkle"
)

type config struct {
	maxConcurrency int // transactions verified at the same time
}

// Option configures a Pipeline.
type Option func(*config)

// WithMaxConcurrency bounds how many transactions are verified at once.
// Values below 1 are ignored. Default: 16.
func WithMaxConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxConcurrency = n
		}
	}
}

// Pipeline runs the per-transaction checks.
type Pipeline struct {
	signatures     sigcheck.Service
	proofs         proofcheck.Service
	maxConcurrency int

	verifications metric.Int64Counter
}

// New builds a Pipeline over the given verifiers.
func New(signatures sigcheck.Service, proofs proofcheck.Service, opts ...Option) *Pipeline {
	cfg := config{maxConcurrency: 16}
	for _, opt := range opts {
		opt(&cfg)
	}

	// A failed instrument registration falls back to a no-op counter.
	counter, _ := otel.Meter("txproof/enrichment").Int64Counter(
		"txproof.verifications",
		metric.WithDescription("Settled verification checks by kind and outcome"),
	)

	return &Pipeline{
		signatures:     signatures,
		proofs:         proofs,
		maxConcurrency: cfg.maxConcurrency,
		verifications:  counter,
	}
}

// Enrich annotates every transaction. The result has the same length and
// order as txs. Input values are not modified.
func (p *Pipeline) Enrich(ctx context.Context, txs []Transaction) []Transaction {
	ctx, span := otel.Tracer("txproof/enrichment").Start(ctx, "enrichment.Enrich")
	defer span.End()

	span.SetAttributes(attribute.Int("transactions.count", len(txs)))

	out := make([]Transaction, len(txs))

	var g errgroup.Group
	g.SetLimit(p.maxConcurrency)
	for i, tx := range txs {
		g.Go(func() error {
			out[i] = p.EnrichOne(ctx, tx)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// EnrichOne runs both checks for a single transaction and returns an
// annotated copy.
func (p *Pipeline) EnrichOne(ctx context.Context, tx Transaction) Transaction {
	ctx = logger.Derive(ctx, "transaction.hash", tx.Hash)
	out := tx.Clone()

	var (
		wg     sync.WaitGroup
		sig    sigcheck.Result
		merkle bool
	)

	if tx.Defects.SignatureInputs {
		logger.Warn(ctx, "signature inputs malformed, treating as invalid")
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer p.recoverCheck(ctx, kindSignature)

			sig = p.signatures.Verify(ctx, tx.Message(), tx.Signature, tx.PublicKey)
		}()
	}

	if tx.Defects.ProofInputs {
		logger.Warn(ctx, "proof inputs malformed, treating as invalid")
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer p.recoverCheck(ctx, kindMerkle)

			merkle = p.proofs.Verify(ctx, tx.Hash, tx.Proof, tx.MerkleRoot)
		}()
	}
	wg.Wait()

	out.SignatureValid = VerdictOf(sig.Valid)
	out.MerkleValid = VerdictOf(merkle)
	out.WalletFingerprint = sig.Fingerprint
	out.WalletAddress = sig.Address

	p.record(ctx, kindSignature, out.SignatureValid)
	p.record(ctx, kindMerkle, out.MerkleValid)

	return out
}

// recoverCheck turns a panicking check into a settled Invalid verdict. The
// zero value of the check result is already fail-closed.
func (p *Pipeline) recoverCheck(ctx context.Context, kind string) {
	if r := recover(); r != nil {
		logger.Error(ctx, "verification check panicked", "verification.kind", kind, "panic", r)
	}
}

func (p *Pipeline) record(ctx context.Context, kind string, v Verdict) {
	if p.verifications == nil {
		return
	}

	p.verifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", v.String()),
	))
}
