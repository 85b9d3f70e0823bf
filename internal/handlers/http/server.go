// Package http exposes the monitor's read-only snapshot over a small JSON
// API for presentation clients, plus health and Prometheus endpoints.
//
//	GET  /api/transactions              annotated transactions
//	GET  /api/entropy                   entropy liveness state
//	POST /api/transactions/{hash}/verify on-demand re-check (admin sessions)
//	GET  /healthz                       monitor lifecycle state
//	GET  /metrics                       Prometheus exposition
//
// The monitor authorizes re-checks against the session it was started with,
// not against the HTTP caller. Set WithVerifyToken so only callers holding
// the bearer token can trigger them; without it any client that reaches the
// API can.
package http

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gabapcia/txproof/internal/enrichment"
	"github.com/gabapcia/txproof/internal/monitor"
	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/pkg/metrics"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 30 * time.Second
)

// Monitor is the part of monitor.Monitor served by the API.
type Monitor interface {
	Snapshot() monitor.Snapshot
	State() monitor.State
	VerifyTransaction(ctx context.Context, hash string) (enrichment.Transaction, error)
}

type config struct {
	corsOrigins []string
	metrics     *metrics.Metrics
	gatherer    prometheus.Gatherer
	verifyToken string
}

// Option configures the API handler.
type Option func(*config)

// WithCORSOrigins sets the origins allowed to call the API from a browser.
// Default: "*".
func WithCORSOrigins(origins ...string) Option {
	return func(c *config) {
		if len(origins) > 0 {
			c.corsOrigins = origins
		}
	}
}

// WithMetrics records request metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithGatherer sets the registry served on /metrics. Default:
// prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(c *config) {
		c.gatherer = g
	}
}

// WithVerifyToken requires "Authorization: Bearer <token>" on the re-check
// route. An empty token leaves the route open.
func WithVerifyToken(token string) Option {
	return func(c *config) {
		c.verifyToken = token
	}
}

type api struct {
	monitor     Monitor
	metrics     *metrics.Metrics
	verifyToken string
}

// NewHandler builds the API router with CORS, panic recovery and request
// instrumentation applied.
func NewHandler(m Monitor, opts ...Option) http.Handler {
	cfg := config{
		corsOrigins: []string{"*"},
		gatherer:    prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &api{
		monitor:     m,
		metrics:     cfg.metrics,
		verifyToken: cfg.verifyToken,
	}

	r := mux.NewRouter()
	r.Use(a.instrument)

	r.HandleFunc("/api/transactions", a.listTransactions).Methods(http.MethodGet)
	r.HandleFunc("/api/entropy", a.getEntropy).Methods(http.MethodGet)
	r.Handle("/api/transactions/{hash}/verify", a.requireToken(http.HandlerFunc(a.verifyTransaction))).Methods(http.MethodPost)
	r.HandleFunc("/healthz", a.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.corsOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	)

	return recovery(cors(r))
}

// NewServer wraps h in an http.Server listening on addr.
func NewServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
}

// instrument logs and measures every routed request.
func (a *api) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		m := httpsnoop.CaptureMetrics(next, w, r)

		if a.metrics != nil {
			a.metrics.RecordHTTPRequest(route, r.Method, m.Code, m.Duration)
		}
		logger.Debug(r.Context(), "http request served",
			"http.route", route,
			"http.method", r.Method,
			"http.status", m.Code,
			"http.duration", m.Duration.String(),
		)
	})
}

// requireToken rejects requests without the configured bearer token.
func (a *api) requireToken(next http.Handler) http.Handler {
	if a.verifyToken == "" {
		return next
	}

	expected := []byte("Bearer " + a.verifyToken)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get("Authorization"))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeJSON(w, r, http.StatusUnauthorized, errorResponse{Error: "missing or invalid token"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// recoveryLogger sends recovered panics to the package logger.
type recoveryLogger struct{}

func (recoveryLogger) Println(v ...any) {
	logger.Error(context.Background(), "http handler panicked", "panic", v)
}
