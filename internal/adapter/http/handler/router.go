package handler

import (
	"bet-settlement-gateway/internal/adapter/http/middleware"
	"bet-settlement-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Orchestrator   ports.SettlementOrchestrator
	Traces         ports.TraceRegistry
	Reputation     ports.ReputationRegistry
	Access         ports.AccessController
	Anchor         ports.MerkleAnchor
	Disputes       ports.DisputeResolver
	TokenSvc       ports.TokenService
	Betting        ports.BettingPlatform
	HealthCheckers []ports.HealthChecker
	MetricsReg     prometheus.Gatherer // nil = /metrics disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	if deps.MetricsReg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsReg, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")

	// --- Settlement pipeline ---
	settlementHandler := NewSettlementHandler(deps.Orchestrator)
	settlements := v1.Group("/settlements")
	{
		settlements.POST("", settlementHandler.ProcessIntent)
		settlements.POST("/confirmations", settlementHandler.Confirm)
	}
	v1.GET("/facilitator/status", settlementHandler.Status)

	// --- Trace ledger ---
	traceHandler := NewTraceHandler(deps.Traces)
	traces := v1.Group("/traces")
	{
		traces.GET("", traceHandler.ListTraces)
		traces.GET("/:traceID", traceHandler.GetTrace)
		traces.GET("/:traceID/verification", traceHandler.VerifySettlement)
	}

	// --- Reputation ---
	reputationHandler := NewReputationHandler(deps.Reputation)
	reputation := v1.Group("/reputation")
	{
		reputation.POST("/validations", reputationHandler.SubmitValidation)
		reputation.POST("/feedback", reputationHandler.SubmitFeedback)
		reputation.GET("/:agent", reputationHandler.GetReputation)
	}

	// --- Access grants ---
	tokenAuth := middleware.TokenAuth(deps.TokenSvc)
	accessHandler := NewAccessHandler(deps.Access, deps.Betting)
	v1.GET("/access/verify", tokenAuth, accessHandler.VerifyToken)
	v1.GET("/access/grants/:traceID", accessHandler.GetGrant)
	v1.GET("/subjects/:subjectID/grants", accessHandler.ListGrants)

	// --- Anchoring ---
	anchorHandler := NewAnchorHandler(deps.Anchor)
	anchors := v1.Group("/anchors")
	{
		anchors.POST("", anchorHandler.Commit)
		anchors.POST("/verify", anchorHandler.VerifyInclusion)
		anchors.GET("", anchorHandler.ListCommits)
		anchors.GET("/:root", anchorHandler.GetCommitByRoot)
	}

	// --- Disputes & bet outcome ---
	disputeHandler := NewDisputeHandler(deps.Disputes)
	v1.POST("/disputes", disputeHandler.CreateDispute)
	bets := v1.Group("/bets")
	{
		bets.POST("/:betID/validation", disputeHandler.Validate)
		bets.GET("/:betID/disputes", disputeHandler.ListForBet)
		bets.GET("/:betID/outcome", tokenAuth, accessHandler.GetBetOutcome)
	}
	v1.GET("/batches/:batchID/disputes", disputeHandler.ListForBatch)

	return r
}
