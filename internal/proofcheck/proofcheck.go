// Package proofcheck asks an external ledger service whether a transaction is
// included under an advertised Merkle root. No tree folding happens locally.
package proofcheck

import (
	"context"

	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/pkg/validator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Request is the payload sent to the inclusion-check service.
type Request struct {
	TransactionHash string   `json:"transaction_hash" validate:"notblank"`
	Proof           []string `json:"proof" validate:"dive,notblank"`
	MerkleRoot      string   `json:"merkle_root" validate:"notblank"`
}

// Checker is the external inclusion-check collaborator.
type Checker interface {
	// CheckInclusion reports whether req.Proof links req.TransactionHash to
	// req.MerkleRoot. A non-nil error means no verdict was obtained.
	CheckInclusion(ctx context.Context, req Request) (bool, error)
}

// Service verifies Merkle inclusion proofs.
type Service interface {
	// Verify returns true only when the collaborator explicitly confirms
	// inclusion. Every fault yields false.
	Verify(ctx context.Context, hash string, proof []string, root string) bool
}

type service struct {
	checker Checker
}

var _ Service = (*service)(nil)

// New returns a Merkle proof verification Service backed by checker.
func New(checker Checker) *service {
	return &service{
		checker: checker,
	}
}

func (s *service) Verify(ctx context.Context, hash string, proof []string, root string) bool {
	ctx, span := otel.Tracer("txproof/proofcheck").Start(ctx, "proofcheck.Verify")
	defer span.End()

	span.SetAttributes(
		attribute.String("transaction.hash", hash),
		attribute.Int("proof.length", len(proof)),
	)

	req := Request{
		TransactionHash: hash,
		Proof:           proof,
		MerkleRoot:      root,
	}
	if req.Proof == nil {
		req.Proof = []string{}
	}

	if err := validator.Validate(req); err != nil {
		logger.Warn(ctx, "inclusion request rejected", "transaction.hash", hash, "error", err)
		span.SetStatus(codes.Error, "invalid request")
		return false
	}

	valid, err := s.checker.CheckInclusion(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "inclusion check failed")
		logger.Warn(ctx, "inclusion check failed, treating as invalid",
			"transaction.hash", hash,
			"error", err,
		)
		return false
	}

	span.SetAttributes(attribute.Bool("merkle.valid", valid))
	return valid
}
