package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bet-settlement-gateway/config"
	eventsAdapter "bet-settlement-gateway/internal/adapter/events"
	httpHandler "bet-settlement-gateway/internal/adapter/http/handler"
	"bet-settlement-gateway/internal/adapter/platform"
	settlementBackend "bet-settlement-gateway/internal/adapter/settlement"
	pgStorage "bet-settlement-gateway/internal/adapter/storage/postgres"
	redisStorage "bet-settlement-gateway/internal/adapter/storage/redis"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/internal/service"
	"bet-settlement-gateway/pkg/logger"
	"bet-settlement-gateway/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Bet Settlement Gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	traceRepo := pgStorage.NewTraceRepo(pool)
	grantRepo := pgStorage.NewGrantRepo(pool)
	reputationRepo := pgStorage.NewReputationRepo(pool)
	merkleRepo := pgStorage.NewMerkleRepo(pool)
	disputeRepo := pgStorage.NewDisputeRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis-backed confirmation cache (webhook idempotency fast path)
	confirmationCache := redisStorage.NewConfirmationCache(rdb)

	// Betting platform collaborator
	var betting ports.BettingPlatform
	if cfg.Platform.BaseURL != "" {
		betting = platform.NewClient(cfg.Platform)
		log.Info().Str("base_url", cfg.Platform.BaseURL).Msg("Using remote betting platform")
	} else {
		betting = platform.NewInMemory()
		log.Warn().Msg("No platform base URL configured, using in-process platform")
	}

	// Event publisher (optional)
	var publisher ports.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPub := eventsAdapter.NewKafkaPublisher(cfg.Kafka, log)
		defer kafkaPub.Close() //nolint:errcheck
		publisher = kafkaPub
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka publisher enabled")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Capability tokens and verdict attestations
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ProvisionalExpiry, cfg.JWT.FullExpiry)
	signer := service.NewMACAttestationSigner(cfg.Attestation.Key)

	// Core services
	traceRegistry := service.NewTraceRegistry(traceRepo, transactor, log)
	reputationRegistry := service.NewReputationRegistry(reputationRepo, log)
	accessControl := service.NewAccessControl(grantRepo, transactor, betting, tokenSvc, publisher, m, cfg.Access.ProvisionalWindow, log)
	merkleAnchor := service.NewMerkleAnchor(merkleRepo, transactor, betting, m, log)
	disputeResolver := service.NewDisputeResolver(disputeRepo, betting, reputationRegistry, signer, m,
		cfg.Facilitator.AgentID, cfg.Dispute.GraceWindowMs, cfg.Dispute.LatencyThresholdMs, log)

	// Settlement backends confirm through the orchestrator; the indirection
	// breaks the construction cycle between the two.
	var orchestrator ports.SettlementOrchestrator
	confirm := func(ctx context.Context, req ports.ConfirmationRequest) {
		if _, err := orchestrator.ConfirmSettlement(ctx, req); err != nil {
			log.Error().Err(err).Str("trace_id", req.TraceID).Msg("backend confirmation failed")
		}
	}
	backends := map[string]ports.SettlementBackend{
		"pix":  settlementBackend.NewPixBackend(confirm, cfg.Backends.PixDelay, log),
		"card": settlementBackend.NewCardBackend(confirm, cfg.Backends.CardDelay, cfg.Backends.CardMaxAmount, log),
	}

	orchestrator = service.NewSettlementOrchestrator(
		traceRegistry, reputationRegistry, accessControl, betting,
		backends, confirmationCache, publisher, m,
		cfg.Facilitator.AgentID, cfg.Facilitator.Payee, log,
	)

	// Expired provisional grants are swept in the background
	reaper := service.NewExpiryReaper(accessControl, cfg.Access.SweepInterval, log)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Orchestrator:   orchestrator,
		Traces:         traceRegistry,
		Reputation:     reputationRegistry,
		Access:         accessControl,
		Anchor:         merkleAnchor,
		Disputes:       disputeResolver,
		TokenSvc:       tokenSvc,
		Betting:        betting,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		MetricsReg:     registry,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return reaper.Run(gctx)
	})
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
