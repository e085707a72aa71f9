// Package main is the entry point for the oracle API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/wanderify/oracle/internal/attest"
	"github.com/wanderify/oracle/internal/cache"
	"github.com/wanderify/oracle/internal/config"
	"github.com/wanderify/oracle/internal/domain"
	"github.com/wanderify/oracle/internal/handler"
	"github.com/wanderify/oracle/internal/metrics"
	"github.com/wanderify/oracle/internal/middleware"
	"github.com/wanderify/oracle/internal/repo"
	"github.com/wanderify/oracle/internal/service"
	"github.com/wanderify/oracle/migrations"
	"github.com/wanderify/oracle/spec"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.RunMigrations {
		if err := migrate(context.Background(), pool); err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	// --- Signer -----------------------------------------------------------
	// A missing key is not fatal: reads keep working and /api/verify
	// answers with a configuration error.
	signer := attest.Load(cfg.VerifierPrivateKey)
	if err := signer.Err(); err != nil {
		slog.Warn("attestation signing disabled", "error", err)
	} else {
		slog.Info("attestation signer loaded", "oracle_address", signer.Address())
	}

	// --- Services ---------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store := cache.New(10 * time.Minute)
	repos := repo.NewTx(pool)

	ledger := service.NewLedgerService(repo.NewTransactor(pool), repos, signer, store, service.LedgerConfig{
		Window: domain.CheckInWindow{
			OpensBefore: cfg.CheckInOpensBefore,
			Grace:       cfg.CheckInGrace,
		},
		PoolBalanceTTL: cfg.PoolBalanceTTL,
	}, m, logger)
	leaderboard := service.NewLeaderboardService(repos.Journeys, store, cfg.LeaderboardTTL, m, logger)
	destinations := service.NewDestinationService(repos.Destinations, store, cfg.PoolBalanceTTL, m, logger)
	users := service.NewUserService(repos.Users, repos.Commitments, repos.Journeys)

	srv := handler.NewServer(ledger, leaderboard, destinations, users, handler.Info{
		Version:       version,
		OracleAddress: signer.Address(),
	}, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
	// Recoverer → CORS → MaxBody.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetricsHandler(m))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(middleware.DefaultMaxBodyBytes))

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})
	r.Mount("/", srv.Routes())

	// --- Background expiry ------------------------------------------------
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		runExpirySweep(sweepCtx, ledger, cfg.ExpirySweepInterval, logger)
	}()

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "version", version)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	stopSweep()
	<-sweepDone

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending goose migrations through a database/sql handle
// borrowed from the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "count", len(results))
	return nil
}

type expirer interface {
	ExpireOverdue(ctx context.Context) (int, error)
}

// runExpirySweep expires overdue commitments every interval until ctx is
// cancelled. A zero interval disables it.
func runExpirySweep(ctx context.Context, l expirer, interval time.Duration, log *slog.Logger) {
	if interval <= 0 {
		log.Info("expiry sweep disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := l.ExpireOverdue(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.ErrorContext(ctx, "expiry sweep failed", "expired", n, "error", err)
				continue
			}
			if n > 0 {
				log.InfoContext(ctx, "expiry sweep", "expired", n)
			}
		}
	}
}
