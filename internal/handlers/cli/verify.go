package cli

import (
	"context"

	"github.com/gabapcia/txproof/internal/fingerprint"
	"github.com/gabapcia/txproof/internal/proofcheck"
	"github.com/gabapcia/txproof/internal/sigcheck"

	"github.com/urfave/cli/v3"
)

// fingerprintCommand prints the display fingerprint of a public key. It needs
// no network access.
//
// Usage example:
//
//	txproof fingerprint --public-key pk1
func fingerprintCommand() *cli.Command {
	return &cli.Command{
		Name:        "fingerprint",
		Description: "Derive the display fingerprint and address of a public key.",
		Usage:       "Prints the 4-character fingerprint and the 0x address for a public key.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "public-key",
				Usage: "Public key blob (may be empty)",
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			return printJSON(c, fingerprint.Derive(c.String("public-key")))
		},
	}
}

// verifySignatureCommand checks one transaction signature against the
// signature-check service. A failed check prints valid=false rather than
// returning an error.
//
// Usage example:
//
//	txproof verify-signature --sender A --recipient B --amount 10 --signature s1 --public-key pk1
func verifySignatureCommand(signatures Provider[sigcheck.Service]) *cli.Command {
	return &cli.Command{
		Name:        "verify-signature",
		Description: "Verify a transaction signature with the ledger service.",
		Usage:       "Builds the canonical message from sender, recipient and amount and checks the signature.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sender", Usage: "Sender identifier", Required: true},
			&cli.StringFlag{Name: "recipient", Usage: "Recipient identifier", Required: true},
			&cli.FloatFlag{Name: "amount", Usage: "Transferred amount", Required: true},
			&cli.StringFlag{Name: "signature", Usage: "Signature blob", Required: true},
			&cli.StringFlag{Name: "public-key", Usage: "Signer public key blob"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := signatures(ctx)
			if err != nil {
				return err
			}

			message := sigcheck.CanonicalMessage(c.String("sender"), c.String("recipient"), c.Float("amount"))
			result := svc.Verify(ctx, message, c.String("signature"), c.String("public-key"))

			return printJSON(c, result)
		},
	}
}

type proofResult struct {
	TransactionHash string `json:"transaction_hash"`
	Valid           bool   `json:"valid"`
}

// verifyProofCommand checks one Merkle inclusion proof.
//
// Usage example:
//
//	txproof verify-proof --hash h1 --proof p1 --proof p2 --root r1
func verifyProofCommand(proofs Provider[proofcheck.Service]) *cli.Command {
	return &cli.Command{
		Name:        "verify-proof",
		Description: "Verify a Merkle inclusion proof with the ledger service.",
		Usage:       "Checks that the transaction hash is included under the given Merkle root.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "hash", Usage: "Transaction hash", Required: true},
			&cli.StringSliceFlag{Name: "proof", Usage: "Proof sibling hash, repeat in order"},
			&cli.StringFlag{Name: "root", Usage: "Merkle root", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := proofs(ctx)
			if err != nil {
				return err
			}

			hash := c.String("hash")
			valid := svc.Verify(ctx, hash, c.StringSlice("proof"), c.String("root"))

			return printJSON(c, proofResult{TransactionHash: hash, Valid: valid})
		},
	}
}

// entropyCommand reads the entropy source once and prints its state.
//
// Usage example:
//
//	txproof entropy
func entropyCommand(entropy Provider[EntropyRefresher]) *cli.Command {
	return &cli.Command{
		Name:        "entropy",
		Description: "Show the entropy source liveness state.",
		Usage:       "Fetches the latest entropy key and timestamp.",
		Action: func(ctx context.Context, c *cli.Command) error {
			tracker, err := entropy(ctx)
			if err != nil {
				return err
			}

			state, err := tracker.Refresh(ctx)
			if err != nil {
				return err
			}

			return printJSON(c, state)
		},
	}
}
