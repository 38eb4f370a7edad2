package service

import (
	"context"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DisputeResolverImpl implements ports.DisputeResolver. Verdicts are a
// pure function of the bet's recorded timestamps and the market close,
// so re-running a dispute always yields the same outcome.
type DisputeResolverImpl struct {
	disputeRepo        ports.DisputeRepository
	betting            ports.BettingPlatform
	reputation         ports.ReputationRegistry
	signer             ports.AttestationSigner
	metrics            *metrics.Metrics
	agentID            string
	graceWindowMs      int64
	latencyThresholdMs int64
	log                zerolog.Logger
}

// NewDisputeResolver creates a new DisputeResolverImpl.
func NewDisputeResolver(
	disputeRepo ports.DisputeRepository,
	betting ports.BettingPlatform,
	reputation ports.ReputationRegistry,
	signer ports.AttestationSigner,
	m *metrics.Metrics,
	agentID string,
	graceWindowMs, latencyThresholdMs int64,
	log zerolog.Logger,
) *DisputeResolverImpl {
	return &DisputeResolverImpl{
		disputeRepo:        disputeRepo,
		betting:            betting,
		reputation:         reputation,
		signer:             signer,
		metrics:            m,
		agentID:            agentID,
		graceWindowMs:      graceWindowMs,
		latencyThresholdMs: latencyThresholdMs,
		log:                log,
	}
}

// Validate re-evaluates the bet's timing against market close and signs
// the verdict. Timing is judged on server receipt: a bet that arrived
// after close was rightly rejected, one that arrived before close was
// not. A wrong rejection just inside the grace window with delivery
// latency above the threshold is additionally flagged as a latency
// fault.
func (s *DisputeResolverImpl) Validate(ctx context.Context, betID string) (*domain.ValidationResult, error) {
	bet, err := s.betting.GetBet(ctx, betID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get bet: %w", err))
	}
	if bet == nil {
		return nil, apperror.ErrBetNotFound(betID)
	}

	market, err := s.betting.GetMarket(ctx, bet.MarketID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get market: %w", err))
	}
	if market == nil {
		return nil, apperror.ErrMarketNotFound(bet.MarketID)
	}

	result := s.evaluate(bet, market)

	resolvedAt := time.Now().UTC()
	payload := fmt.Sprintf("%s|%s|%d", bet.BetID, result.Verdict, resolvedAt.UnixMilli())
	result.Attestation = s.signer.Sign(payload)

	return result, nil
}

func (s *DisputeResolverImpl) evaluate(bet *domain.Bet, market *domain.Market) *domain.ValidationResult {
	// A market that never formally closed is treated as closing now.
	closeTime := time.Now().UTC()
	if market.CloseTime != nil {
		closeTime = market.CloseTime.UTC()
	}

	result := &domain.ValidationResult{
		BetPlacedAt:     bet.PlacedAt,
		MarketCloseTime: closeTime,
		LatencyMs:       bet.LatencyMs,
	}

	timeDiff := bet.ServerReceivedAt.Sub(closeTime)
	grace := time.Duration(s.graceWindowMs) * time.Millisecond

	switch bet.Status {
	case domain.BetStatusRejected:
		if timeDiff > 0 {
			result.Verdict = domain.VerdictCorrect
			result.Explanation = fmt.Sprintf("bet arrived %dms after market close; rejection stands", timeDiff.Milliseconds())
			break
		}
		result.Verdict = domain.VerdictIncorrect
		if timeDiff >= -grace && bet.LatencyMs > s.latencyThresholdMs {
			result.LatencyFault = true
			result.Explanation = fmt.Sprintf(
				"bet arrived %dms before close with %dms delivery latency; rejection caused by network delay",
				-timeDiff.Milliseconds(), bet.LatencyMs)
		} else {
			result.Explanation = "bet arrived before market close but was rejected"
		}
	case domain.BetStatusAccepted, domain.BetStatusPending, domain.BetStatusWon, domain.BetStatusLost:
		if timeDiff <= 0 {
			result.Verdict = domain.VerdictCorrect
			result.Explanation = "bet arrived before market close; acceptance stands"
		} else {
			result.Verdict = domain.VerdictIncorrect
			result.Explanation = fmt.Sprintf("bet arrived %dms after market close but was accepted", timeDiff.Milliseconds())
		}
	default:
		result.Verdict = domain.VerdictCorrect
		result.Explanation = "no timing rule applies to this bet status"
	}
	return result
}

// CreateDispute validates the bet, persists the resolved dispute, and
// records DISPUTE_FILED feedback against the settlement agent when the
// bet carries a trace.
func (s *DisputeResolverImpl) CreateDispute(ctx context.Context, betID, reason string) (*domain.Dispute, error) {
	result, err := s.Validate(ctx, betID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dispute := &domain.Dispute{
		ID:         uuid.New(),
		BetID:      betID,
		Reason:     reason,
		Status:     domain.DisputeStatusResolved,
		Result:     *result,
		CreatedAt:  now,
		ResolvedAt: &now,
	}
	if err := s.disputeRepo.Create(ctx, dispute); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create dispute: %w", err))
	}

	s.metrics.IncDisputes(string(result.Verdict))
	s.log.Info().
		Str("dispute_id", dispute.ID.String()).
		Str("bet_id", betID).
		Str("verdict", string(result.Verdict)).
		Bool("latency_fault", result.LatencyFault).
		Msg("dispute resolved")

	bet, err := s.betting.GetBet(ctx, betID)
	if err == nil && bet != nil && bet.TraceID != nil {
		proof := map[string]any{
			"dispute_id":  dispute.ID.String(),
			"verdict":     string(result.Verdict),
			"attestation": result.Attestation,
		}
		if _, err := s.reputation.SubmitFeedback(ctx, *bet.TraceID, s.agentID, 0.0, domain.FeedbackTypeDispute, proof); err != nil {
			s.log.Warn().Err(err).Str("bet_id", betID).Msg("failed to record dispute feedback")
		}
	}

	return dispute, nil
}

// DisputesFor lists all disputes filed against a bet, newest first.
func (s *DisputeResolverImpl) DisputesFor(ctx context.Context, betID string) ([]domain.Dispute, error) {
	disputes, err := s.disputeRepo.ListByBetID(ctx, betID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list disputes: %w", err))
	}
	return disputes, nil
}

// DisputesForBatch lists disputes across every bet in a batch.
func (s *DisputeResolverImpl) DisputesForBatch(ctx context.Context, batchID string) ([]domain.Dispute, error) {
	betIDs, err := s.betting.BetIDsForBatch(ctx, batchID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list batch bets: %w", err))
	}
	if len(betIDs) == 0 {
		return []domain.Dispute{}, nil
	}
	disputes, err := s.disputeRepo.ListByBetIDs(ctx, betIDs)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list disputes by bets: %w", err))
	}
	return disputes, nil
}
