// Command app replays a CSV transaction log against in-memory client
// accounts and writes the final balance snapshot to stdout as CSV. Errors
// are logged to stderr as they happen and collected to decide the exit
// status: 0 only when every row parsed, applied and reported cleanly.
// Processing is best-effort; a failing transaction never stops the run.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/fusillicode/toyoments/pkg/config"
	"github.com/fusillicode/toyoments/pkg/csvio"
	"github.com/fusillicode/toyoments/pkg/metrics"
	"github.com/fusillicode/toyoments/pkg/middleware"
	"github.com/fusillicode/toyoments/pkg/processor"
	"github.com/fusillicode/toyoments/pkg/storage/memory"
)

func main() {
	// Load environment variables from .env file, if present.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Report goes to stdout, logs to stderr, so output stays pipeable.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !run(ctx, logger, cfg) {
		os.Exit(1)
	}
}

// run executes one replay and reports whether it was fully clean.
func run(ctx context.Context, logger *slog.Logger, cfg config.Config) bool {
	path := cfg.TransactionsCSV
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		logger.Error("no transactions CSV supplied")
		return false
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Error("failed to open transactions CSV", slog.String("error", err.Error()))
		return false
	}
	defer file.Close()

	collector := metrics.New()
	metricsSrv := startMetricsServer(logger, cfg.MetricsAddr, collector)

	store := memory.New()
	proc := processor.New(store, logger, collector, cfg.Shards)

	clean := true
	failures, err := proc.Run(ctx, csvio.NewReader(file))
	if err != nil {
		logger.Error("replay aborted", slog.String("error", err.Error()))
		clean = false
	}
	if len(failures) > 0 {
		logger.Warn("replay finished with failed transactions", slog.Int("failures", len(failures)))
		clean = false
	}

	accounts, err := store.ListAccounts(ctx)
	if err != nil {
		logger.Error("failed to list accounts for report", slog.String("error", err.Error()))
		clean = false
	}
	for _, reportErr := range csvio.WriteAccounts(os.Stdout, accounts) {
		logger.Error("error writing report", slog.String("error", reportErr.Error()))
		clean = false
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown failed", slog.String("error", err.Error()))
		}
	}
	return clean
}

// startMetricsServer exposes /metrics and /healthz while a long replay runs.
// Disabled when addr is empty.
func startMetricsServer(logger *slog.Logger, addr string, collector *metrics.Collector) *http.Server {
	if addr == "" {
		return nil
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	router.Handle("/metrics", collector.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: addr, Handler: router}
	go func() {
		logger.Info("starting metrics server", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.String("error", err.Error()))
		}
	}()
	return server
}
