package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/pkg/x/chflow"
	"github.com/gabapcia/txproof/internal/session"

	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

// startMonitorCommand returns a CLI command that runs the verification
// monitor, and the snapshot API when one is configured, on behalf of the
// given user. The daemon is only built once the flags are valid.
//
// Usage example:
//
//	txproof start --username alice --role admin
//
// The process runs until it receives SIGINT or SIGTERM.
func startMonitorCommand(daemon Provider[Daemon]) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the verification monitor and the snapshot API.",
		Usage:       "Polls the ledger service on a fixed interval. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Usage:    "User the monitor acts for",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "role",
				Usage: "Session role (admin or user)",
				Value: string(session.RoleUser),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := session.New(c.String("username"), session.Role(c.String("role")))
			if err != nil {
				return err
			}

			d, err := daemon(ctx)
			if err != nil {
				return err
			}
			m, api := d.Monitor, d.API

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := m.Start(ctx, sess); err != nil {
				return err
			}

			apiErr := make(chan error, 1)
			if api != nil {
				go func() {
					if err := api.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						apiErr <- err
					}
					close(apiErr)
				}()
			}

			var runErr error
			select {
			case <-ctx.Done():
			case err, ok := <-apiErr:
				if ok {
					logger.Error(ctx, "snapshot api stopped", "error", err)
					runErr = err
				}
			}

			return errors.Join(runErr, shutdown(m, api))
		},
	}
}

// shutdown stops the monitor and the API, waiting up to shutdownTimeout for
// in-flight work.
func shutdown(m Monitor, api Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	m.Stop()

	var errs []error
	if api != nil {
		if err := api.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if err := chflow.Wait(ctx, m.Done()); err != nil {
		logger.Warn(ctx, "gave up waiting for in-flight cycles", "error", err)
	}

	return errors.Join(errs...)
}
