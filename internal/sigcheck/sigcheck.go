// Package sigcheck verifies transaction signatures through an external
// signature-check service and attaches the signer's display fingerprint.
//
// The check is fail-closed: whenever the service cannot give a clean answer
// the result is a negative verdict with no fingerprint.
package sigcheck

import (
	"context"

	"github.com/gabapcia/txproof/internal/fingerprint"
	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/pkg/validator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Request is the payload sent to the signature-check service.
type Request struct {
	Transaction string `json:"transaction" validate:"notblank"`
	Signature   string `json:"signature" validate:"notblank"`
	PublicKey   string `json:"public_key"`
}

// Checker is the external signature-check collaborator.
type Checker interface {
	// CheckSignature asks the service whether req.Signature signs
	// req.Transaction under req.PublicKey. A non-nil error means no verdict
	// was obtained (transport or protocol fault).
	CheckSignature(ctx context.Context, req Request) (bool, error)
}

// Result is the normalized outcome of a signature check.
type Result struct {
	Valid       bool   `json:"valid"`
	Fingerprint string `json:"fingerprint"`
	Address     string `json:"address"`
}

// Service verifies a transaction signature.
type Service interface {
	// Verify never fails: any fault is reported as Result{Valid: false}
	// with empty fingerprint and address.
	Verify(ctx context.Context, message, signature, publicKey string) Result
}

type service struct {
	checker Checker
}

var _ Service = (*service)(nil)

// New returns a signature verification Service backed by checker.
func New(checker Checker) *service {
	return &service{
		checker: checker,
	}
}

func (s *service) Verify(ctx context.Context, message, signature, publicKey string) Result {
	ctx, span := otel.Tracer("txproof/sigcheck").Start(ctx, "sigcheck.Verify")
	defer span.End()

	req := Request{
		Transaction: message,
		Signature:   signature,
		PublicKey:   publicKey,
	}

	valid, err := s.check(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "signature check failed")
		logger.Warn(ctx, "signature check failed, treating as invalid",
			"transaction.message", message,
			"error", err,
		)
		return Result{}
	}

	fp := fingerprint.Derive(publicKey)
	span.SetAttributes(
		attribute.Bool("signature.valid", valid),
		attribute.String("wallet.address", fp.Address),
	)

	return Result{
		Valid:       valid,
		Fingerprint: fp.Suffix,
		Address:     fp.Address,
	}
}

// check validates the request locally before handing it to the collaborator.
func (s *service) check(ctx context.Context, req Request) (bool, error) {
	if err := validator.Validate(req); err != nil {
		return false, err
	}

	return s.checker.CheckSignature(ctx, req)
}
