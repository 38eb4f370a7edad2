package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/contracts/events"
	"bet-settlement-gateway/pkg/metrics"

	"github.com/rs/zerolog"
)

const confirmationCacheTTL = 24 * time.Hour

// SettlementOrchestratorImpl implements ports.SettlementOrchestrator,
// sequencing the pipeline: intent validation, wager debit, trace and
// validation records, provisional access, async backend dispatch, and
// the confirmation path that upgrades or revokes access.
type SettlementOrchestratorImpl struct {
	traces     ports.TraceRegistry
	reputation ports.ReputationRegistry
	access     ports.AccessController
	betting    ports.BettingPlatform
	backends   map[string]ports.SettlementBackend
	cache      ports.ConfirmationCache
	publisher  ports.EventPublisher // nil = event publishing disabled
	metrics    *metrics.Metrics
	agentID    string
	payee      string
	log        zerolog.Logger
}

// NewSettlementOrchestrator creates a new SettlementOrchestratorImpl.
func NewSettlementOrchestrator(
	traces ports.TraceRegistry,
	reputation ports.ReputationRegistry,
	access ports.AccessController,
	betting ports.BettingPlatform,
	backends map[string]ports.SettlementBackend,
	cache ports.ConfirmationCache,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	agentID, payee string,
	log zerolog.Logger,
) *SettlementOrchestratorImpl {
	return &SettlementOrchestratorImpl{
		traces:     traces,
		reputation: reputation,
		access:     access,
		betting:    betting,
		backends:   backends,
		cache:      cache,
		publisher:  publisher,
		metrics:    m,
		agentID:    agentID,
		payee:      payee,
		log:        log,
	}
}

// ProcessIntent validates the payment intent, debits the wager, records
// the trace, grants provisional access, and dispatches settlement to
// the subject's fiat backend. The dispatch runs asynchronously; the
// returned status means "accepted for settlement", not "money moved".
func (s *SettlementOrchestratorImpl) ProcessIntent(ctx context.Context, req ports.IntentRequest) (*ports.IntentResult, error) {
	if err := s.validateIntent(&req.Intent); err != nil {
		return nil, err
	}

	backendName, err := s.betting.PreferredBackend(ctx, req.SubjectID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve backend: %w", err))
	}
	backend, ok := s.backends[backendName]
	if !ok {
		return nil, apperror.ErrUnknownBackend(backendName)
	}

	// The wager leaves the balance before any settlement state exists, so
	// a rejected debit leaves nothing to unwind.
	if err := s.betting.DebitBalance(ctx, req.SubjectID, req.Intent.Amount); err != nil {
		return nil, err
	}

	trace, err := s.traces.RecordIntent(ctx, req.Intent.Payer, req.Intent.Payee, req.Intent.Amount, req.Intent.Currency)
	if err != nil {
		s.refund(ctx, req.SubjectID, req.Intent.Amount)
		return nil, err
	}

	validationID, err := s.reputation.SubmitValidation(ctx, trace.TraceID, s.agentID, domain.ValidationTypePaymentIntent, map[string]any{
		"intent_id": req.Intent.IntentID,
		"bet_id":    req.BetID,
		"amount":    req.Intent.Amount,
		"currency":  req.Intent.Currency,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("trace_id", trace.TraceID).Msg("failed to record intent validation")
	} else if err := s.traces.LinkValidation(ctx, trace.TraceID, validationID); err != nil {
		s.log.Warn().Err(err).Str("trace_id", trace.TraceID).Msg("failed to link validation")
	}

	grantRes, err := s.access.GrantProvisional(ctx, req.SubjectID, trace.TraceID, req.BetID)
	if err != nil {
		s.refund(ctx, req.SubjectID, req.Intent.Amount)
		return nil, err
	}

	dispatch := ports.SettlementDispatch{
		TraceID:   trace.TraceID,
		Amount:    req.Intent.Amount,
		Currency:  req.Intent.Currency,
		Payer:     req.Intent.Payer,
		Payee:     req.Intent.Payee,
		Reference: req.BetID,
	}
	go s.dispatch(context.WithoutCancel(ctx), backend, dispatch)

	s.metrics.IncIntents()
	s.log.Info().
		Str("trace_id", trace.TraceID).
		Str("subject_id", req.SubjectID).
		Str("backend", backendName).
		Int64("amount", req.Intent.Amount).
		Msg("settlement initiated")

	return &ports.IntentResult{
		TraceID:     trace.TraceID,
		Status:      "SETTLEMENT_INITIATED",
		AccessLevel: domain.AccessLevelProvisional,
		AccessToken: grantRes.Token,
	}, nil
}

func (s *SettlementOrchestratorImpl) validateIntent(intent *domain.PaymentIntent) error {
	switch {
	case intent.Payer == "" || intent.Payee == "":
		return apperror.ErrInvalidIntent("payer and payee are required")
	case s.payee != "" && intent.Payee != s.payee:
		return apperror.ErrInvalidIntent("payee does not match the settlement facilitator")
	case intent.Amount <= 0:
		return apperror.ErrInvalidIntent("amount must be positive")
	case !intent.HasWellFormedSignature():
		return apperror.ErrInvalidIntent("malformed signature")
	}
	return nil
}

// dispatch hands the settlement to the backend. A dispatch that never
// reaches the rail is settled FAILED through the normal confirmation
// path, so the debit is refunded and access revoked exactly once.
func (s *SettlementOrchestratorImpl) dispatch(ctx context.Context, backend ports.SettlementBackend, req ports.SettlementDispatch) {
	externalTxID, err := backend.Dispatch(ctx, req)
	if err != nil {
		s.log.Error().Err(err).
			Str("trace_id", req.TraceID).
			Str("backend", backend.Name()).
			Msg("settlement dispatch failed")
		if _, err := s.ConfirmSettlement(ctx, ports.ConfirmationRequest{
			TraceID: req.TraceID,
			Backend: backend.Name(),
			Status:  domain.SettlementStatusFailed,
		}); err != nil {
			s.log.Error().Err(err).Str("trace_id", req.TraceID).Msg("failed to settle dispatch failure")
		}
		return
	}
	s.log.Debug().
		Str("trace_id", req.TraceID).
		Str("backend", backend.Name()).
		Str("external_tx_id", externalTxID).
		Msg("settlement dispatched")
}

// ConfirmSettlement applies a backend confirmation. Delivery is
// at-least-once: a repeat for a settled trace returns the original
// result from the cache or the trace row without re-running effects.
func (s *SettlementOrchestratorImpl) ConfirmSettlement(ctx context.Context, req ports.ConfirmationRequest) (*ports.ConfirmationResult, error) {
	if cached := s.cachedResult(ctx, req.TraceID); cached != nil {
		return cached, nil
	}

	rec, err := s.traces.RecordSettlement(ctx, req.TraceID, req.ExternalTxRef, req.Status)
	if err != nil {
		return nil, err
	}

	result := &ports.ConfirmationResult{
		TraceID:   req.TraceID,
		Status:    string(rec.Trace.SettlementStatus),
		LatencyMs: rec.LatencyMs,
		Timestamp: time.Now().UTC(),
	}
	if rec.Trace.FiatReferenceHash != nil {
		result.FiatReferenceHash = *rec.Trace.FiatReferenceHash
	}

	if rec.AlreadySettled {
		result.AccessLevel = s.currentLevel(ctx, req.TraceID)
		s.storeResult(ctx, req.TraceID, result)
		return result, nil
	}

	switch rec.Trace.SettlementStatus {
	case domain.SettlementStatusConfirmed:
		result.AccessLevel = s.applyConfirmation(ctx, req, rec)
		s.metrics.IncConfirmed()
	case domain.SettlementStatusFailed:
		s.recordFeedback(ctx, req.TraceID, 0.0, domain.FeedbackTypeFailure, map[string]any{
			"backend": req.Backend,
		})
		if err := s.access.Revoke(ctx, req.TraceID, "failed"); err != nil {
			s.log.Error().Err(err).Str("trace_id", req.TraceID).Msg("failed to revoke access on settlement failure")
		}
		result.AccessLevel = domain.AccessLevelRevoked
		s.metrics.IncFailed()
	}

	s.storeResult(ctx, req.TraceID, result)
	return result, nil
}

// applyConfirmation runs the success-side effects: feedback, access
// upgrade, bet acceptance, and the confirmed event.
func (s *SettlementOrchestratorImpl) applyConfirmation(ctx context.Context, req ports.ConfirmationRequest, rec *ports.SettlementRecord) domain.AccessLevel {
	proof := map[string]any{
		"backend":    req.Backend,
		"latency_ms": rec.LatencyMs,
	}
	if rec.Trace.FiatReferenceHash != nil {
		proof["fiat_reference_hash"] = *rec.Trace.FiatReferenceHash
	}
	s.recordFeedback(ctx, req.TraceID, 1.0, domain.FeedbackTypeSuccess, proof)

	subjectID, err := s.betting.ResolveSubject(ctx, rec.Trace.Payer)
	if err != nil || subjectID == "" {
		s.log.Warn().Err(err).
			Str("trace_id", req.TraceID).
			Str("payer", rec.Trace.Payer).
			Msg("no subject for payer, settlement recorded without access upgrade")
		return domain.AccessLevelProvisional
	}

	upgraded, err := s.access.UpgradeToFull(ctx, subjectID, req.TraceID)
	if err != nil {
		// The provisional window may have elapsed before the confirmation
		// arrived; the settlement stays recorded but access is gone.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "SET_003" {
			s.log.Warn().Str("trace_id", req.TraceID).Msg("confirmation arrived after grant revocation")
			return domain.AccessLevelRevoked
		}
		s.log.Error().Err(err).Str("trace_id", req.TraceID).Msg("failed to upgrade access")
		return domain.AccessLevelProvisional
	}

	confirmedAt := time.Now().UTC()
	if rec.Trace.SettlementTimestamp != nil {
		confirmedAt = *rec.Trace.SettlementTimestamp
	}
	if err := s.betting.SetBetAccepted(ctx, upgraded.Grant.BetID, domain.AccessLevelFull, confirmedAt); err != nil {
		s.log.Error().Err(err).Str("bet_id", upgraded.Grant.BetID).Msg("failed to mark bet accepted")
	}

	if s.publisher != nil {
		evt := events.SettlementConfirmed{
			TraceID:     req.TraceID,
			BetID:       upgraded.Grant.BetID,
			SubjectID:   subjectID,
			Backend:     req.Backend,
			LatencyMs:   rec.LatencyMs,
			AccessLevel: string(domain.AccessLevelFull),
			Ts:          confirmedAt,
		}
		if err := s.publisher.PublishSettlementConfirmed(ctx, evt); err != nil {
			s.log.Warn().Err(err).Str("trace_id", req.TraceID).Msg("failed to publish confirmation event")
		}
	}

	return domain.AccessLevelFull
}

// Status reports the facilitator's public identity and derived
// reputation.
func (s *SettlementOrchestratorImpl) Status(ctx context.Context) (*ports.FacilitatorStatus, error) {
	rep, err := s.reputation.ReputationOf(ctx, s.agentID)
	if err != nil {
		return nil, err
	}
	return &ports.FacilitatorStatus{
		AgentID:    s.agentID,
		Status:     "active",
		Reputation: rep,
		Trusted:    rep.IsTrusted(),
	}, nil
}

func (s *SettlementOrchestratorImpl) recordFeedback(ctx context.Context, traceID string, rating float64, feedbackType string, proof map[string]any) {
	feedbackID, err := s.reputation.SubmitFeedback(ctx, traceID, s.agentID, rating, feedbackType, proof)
	if err != nil {
		s.log.Warn().Err(err).Str("trace_id", traceID).Msg("failed to record settlement feedback")
		return
	}
	if err := s.traces.LinkFeedback(ctx, traceID, feedbackID); err != nil {
		s.log.Warn().Err(err).Str("trace_id", traceID).Msg("failed to link feedback")
	}
}

func (s *SettlementOrchestratorImpl) refund(ctx context.Context, subjectID string, amount int64) {
	if err := s.betting.CreditBalance(ctx, subjectID, amount); err != nil {
		s.log.Error().Err(err).Str("subject_id", subjectID).Int64("amount", amount).Msg("failed to refund after intent failure")
	}
}

func (s *SettlementOrchestratorImpl) currentLevel(ctx context.Context, traceID string) domain.AccessLevel {
	grant, err := s.access.GrantFor(ctx, traceID)
	if err != nil || grant == nil {
		return domain.AccessLevelRevoked
	}
	return grant.Level
}

func (s *SettlementOrchestratorImpl) cachedResult(ctx context.Context, traceID string) *ports.ConfirmationResult {
	data, err := s.cache.Get(ctx, traceID)
	if err != nil {
		s.log.Warn().Err(err).Str("trace_id", traceID).Msg("confirmation cache read failed")
		return nil
	}
	if data == nil {
		return nil
	}
	var result ports.ConfirmationResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.log.Warn().Err(err).Str("trace_id", traceID).Msg("corrupt cached confirmation")
		return nil
	}
	return &result
}

func (s *SettlementOrchestratorImpl) storeResult(ctx context.Context, traceID string, result *ports.ConfirmationResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, traceID, data, confirmationCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("trace_id", traceID).Msg("confirmation cache write failed")
	}
}
