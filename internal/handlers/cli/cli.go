package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gabapcia/txproof/internal/entropywatch"
	"github.com/gabapcia/txproof/internal/proofcheck"
	"github.com/gabapcia/txproof/internal/session"
	"github.com/gabapcia/txproof/internal/sigcheck"

	"github.com/urfave/cli/v3"
)

// Monitor is the scheduler driven by the start command.
type Monitor interface {
	Start(ctx context.Context, sess session.Session) error
	Stop()
	Done() <-chan struct{}
}

// EntropyRefresher reads the entropy source once.
type EntropyRefresher interface {
	Refresh(ctx context.Context) (entropywatch.State, error)
}

// Server is the optional snapshot API run alongside the monitor.
// *http.Server satisfies it.
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// Provider builds a dependency when a command first needs it, so commands
// that work offline never touch the configuration or network they do not use.
type Provider[T any] func(ctx context.Context) (T, error)

// Static returns a Provider that always yields v.
func Static[T any](v T) Provider[T] {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

// Daemon is what the start command runs. API may be nil.
type Daemon struct {
	Monitor Monitor
	API     Server
}

// Services groups the providers the commands draw from.
type Services struct {
	Daemon     Provider[Daemon]
	Signatures Provider[sigcheck.Service]
	Proofs     Provider[proofcheck.Service]
	Entropy    Provider[EntropyRefresher]
}

// Run initializes and executes the txproof CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the verification monitor until interrupted.
//   - `fingerprint`: Prints the display fingerprint of a public key.
//   - `verify-signature`: Checks one transaction signature.
//   - `verify-proof`: Checks one Merkle inclusion proof.
//   - `entropy`: Prints the current entropy liveness state.
func Run(ctx context.Context, svc Services) error {
	return newApp(svc).Run(ctx, os.Args)
}

func newApp(svc Services) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txproof",
		Description:           "Client-side transaction integrity and entropy liveness verification.",
		Usage:                 "txproof [command] [flags]",
		Commands: []*cli.Command{
			startMonitorCommand(svc.Daemon),
			fingerprintCommand(),
			verifySignatureCommand(svc.Signatures),
			verifyProofCommand(svc.Proofs),
			entropyCommand(svc.Entropy),
		},
	}
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(c *cli.Command, v any) error {
	var w io.Writer = os.Stdout
	if root := c.Root(); root != nil && root.Writer != nil {
		w = root.Writer
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
