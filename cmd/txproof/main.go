package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/txproof/internal/config"
	"github.com/gabapcia/txproof/internal/enrichment"
	"github.com/gabapcia/txproof/internal/entropywatch"
	"github.com/gabapcia/txproof/internal/handlers/cli"
	apihttp "github.com/gabapcia/txproof/internal/handlers/http"
	"github.com/gabapcia/txproof/internal/infra/ledgerapi"
	"github.com/gabapcia/txproof/internal/infra/storage/redis"
	"github.com/gabapcia/txproof/internal/monitor"
	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/pkg/metrics"
	"github.com/gabapcia/txproof/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/txproof/internal/pkg/transport/http"
	"github.com/gabapcia/txproof/internal/proofcheck"
	"github.com/gabapcia/txproof/internal/sigcheck"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}

	// Telemetry goes first so the logger can attach the OTEL bridge core.
	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			os.Stderr.WriteString("init telemetry: " + err.Error() + "\n")
			return 1
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		os.Stderr.WriteString("init logger: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = logger.Sync() }()

	d := &deps{cfg: cfg}
	defer d.close()

	svc := cli.Services{
		Daemon:     d.daemon,
		Signatures: d.signatures,
		Proofs:     d.proofs,
		Entropy:    d.entropy,
	}

	if err := cli.Run(ctx, svc); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		return 1
	}

	return 0
}

// deps builds the online services on demand so offline commands need neither
// the verifier URL nor a reachable Redis.
type deps struct {
	cfg     config.Config
	closers []func() error
}

func (d *deps) ledgerClient() (*ledgerapi.Client, error) {
	if err := d.cfg.RequireVerifier(); err != nil {
		return nil, err
	}

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(d.cfg.HTTPTimeout),
		transporthttp.WithRetryMax(d.cfg.HTTPRetryMax),
		transporthttp.WithRetryWaitMin(d.cfg.HTTPRetryWaitMin),
		transporthttp.WithRetryWaitMax(d.cfg.HTTPRetryWaitMax),
	)
	return ledgerapi.NewClient(d.cfg.VerifierURL, httpClient), nil
}

func (d *deps) signatures(context.Context) (sigcheck.Service, error) {
	ledger, err := d.ledgerClient()
	if err != nil {
		return nil, err
	}
	return sigcheck.New(ledger), nil
}

func (d *deps) proofs(context.Context) (proofcheck.Service, error) {
	ledger, err := d.ledgerClient()
	if err != nil {
		return nil, err
	}
	return proofcheck.New(ledger), nil
}

func (d *deps) entropy(context.Context) (cli.EntropyRefresher, error) {
	ledger, err := d.ledgerClient()
	if err != nil {
		return nil, err
	}
	return entropywatch.New(ledger), nil
}

func (d *deps) daemon(ctx context.Context) (cli.Daemon, error) {
	ledger, err := d.ledgerClient()
	if err != nil {
		return cli.Daemon{}, err
	}

	pipeline := enrichment.New(sigcheck.New(ledger), proofcheck.New(ledger),
		enrichment.WithMaxConcurrency(d.cfg.MaxConcurrency),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	monitorOpts := []monitor.Option{
		monitor.WithInterval(d.cfg.PollInterval),
		monitor.WithPublisher(monitor.NewMetricsPublisher(m)),
	}

	if d.cfg.RedisEnabled() {
		rdb, err := redis.NewClient(ctx, d.cfg.RedisAddr, d.cfg.RedisUsername, d.cfg.RedisPassword, d.cfg.RedisDB,
			redis.WithChannel(d.cfg.RedisChannel),
		)
		if err != nil {
			return cli.Daemon{}, fmt.Errorf("connect to redis: %w", err)
		}
		d.closers = append(d.closers, rdb.Close)

		monitorOpts = append(monitorOpts, monitor.WithPublisher(rdb))
		logger.Info(ctx, "publishing snapshots to redis", "redis.addr", d.cfg.RedisAddr, "redis.channel", d.cfg.RedisChannel)
	}

	mon := monitor.New(ledger, pipeline, entropywatch.New(ledger), monitorOpts...)

	daemon := cli.Daemon{Monitor: mon}
	if d.cfg.APIEnabled() {
		handler := apihttp.NewHandler(mon,
			apihttp.WithCORSOrigins(d.cfg.CORSOrigins...),
			apihttp.WithMetrics(m),
			apihttp.WithGatherer(registry),
			apihttp.WithVerifyToken(d.cfg.APIToken),
		)
		daemon.API = apihttp.NewServer(d.cfg.APIAddr, handler)
	}

	return daemon, nil
}

func (d *deps) close() {
	for _, closeFn := range d.closers {
		_ = closeFn()
	}
}
