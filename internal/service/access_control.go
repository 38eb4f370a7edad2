package service

import (
	"context"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/contracts/events"
	"bet-settlement-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const expiredSweepBatchSize = 100

// AccessControlImpl implements ports.AccessController. Grants move
// PROVISIONAL -> FULL on confirmation or PROVISIONAL -> REVOKED on
// failure/expiry; never backward, never out of a terminal level.
type AccessControlImpl struct {
	grantRepo         ports.GrantRepository
	transactor        ports.DBTransactor
	betting           ports.BettingPlatform
	tokenSvc          ports.TokenService
	publisher         ports.EventPublisher // nil = event publishing disabled
	metrics           *metrics.Metrics
	provisionalWindow time.Duration
	log               zerolog.Logger
}

// NewAccessControl creates a new AccessControlImpl.
func NewAccessControl(
	grantRepo ports.GrantRepository,
	transactor ports.DBTransactor,
	betting ports.BettingPlatform,
	tokenSvc ports.TokenService,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	provisionalWindow time.Duration,
	log zerolog.Logger,
) *AccessControlImpl {
	return &AccessControlImpl{
		grantRepo:         grantRepo,
		transactor:        transactor,
		betting:           betting,
		tokenSvc:          tokenSvc,
		publisher:         publisher,
		metrics:           m,
		provisionalWindow: provisionalWindow,
		log:               log,
	}
}

// GrantProvisional creates an ACTIVE PROVISIONAL grant with a fixed
// expiry window and issues the matching capability token.
func (s *AccessControlImpl) GrantProvisional(ctx context.Context, subjectID, traceID, betID string) (*ports.AccessGrantResult, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.provisionalWindow)

	grant := &domain.AccessGrant{
		ID:        uuid.New(),
		SubjectID: subjectID,
		TraceID:   traceID,
		BetID:     betID,
		Level:     domain.AccessLevelProvisional,
		GrantedAt: now,
		ExpiresAt: &expiresAt,
		Status:    domain.GrantStatusActive,
	}
	if err := s.grantRepo.Create(ctx, grant); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create grant: %w", err))
	}

	token, _, err := s.tokenSvc.Generate(subjectID, traceID, betID, domain.AccessLevelProvisional)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate provisional token: %w", err))
	}

	s.log.Info().
		Str("subject_id", subjectID).
		Str("trace_id", traceID).
		Time("expires_at", expiresAt).
		Msg("provisional access granted")

	return &ports.AccessGrantResult{Grant: grant, Token: token, ExpiresAt: expiresAt}, nil
}

// UpgradeToFull promotes the trace's ACTIVE grant to FULL. The grant row
// is locked so the upgrade never races the expiry sweep; upgrading an
// already-FULL grant is a no-op that reissues a token.
func (s *AccessControlImpl) UpgradeToFull(ctx context.Context, subjectID, traceID string) (*ports.AccessGrantResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	grant, err := s.grantRepo.GetByTraceIDForUpdate(ctx, dbTx, traceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock grant: %w", err))
	}
	if grant == nil || grant.Status != domain.GrantStatusActive {
		return nil, apperror.ErrGrantNotFound(traceID)
	}

	now := time.Now().UTC()
	if grant.Level != domain.AccessLevelFull {
		if err := s.grantRepo.Upgrade(ctx, dbTx, grant.ID, now); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("upgrade grant: %w", err))
		}
		grant.Level = domain.AccessLevelFull
		grant.UpgradedAt = &now
		grant.ExpiresAt = nil
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	token, _, err := s.tokenSvc.Generate(subjectID, traceID, grant.BetID, domain.AccessLevelFull)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate full token: %w", err))
	}

	s.log.Info().
		Str("subject_id", subjectID).
		Str("trace_id", traceID).
		Msg("access upgraded to FULL")

	return &ports.AccessGrantResult{Grant: grant, Token: token}, nil
}

// Revoke applies the terminal REVOKED transition and, exactly once,
// rejects the bet and refunds the wagered amount. Calling it on a
// FULL, already-revoked, or missing grant is a no-op.
func (s *AccessControlImpl) Revoke(ctx context.Context, traceID string, reason string) error {
	grant, err := s.grantRepo.GetActiveByTraceID(ctx, traceID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get grant: %w", err))
	}
	if grant == nil {
		return nil
	}
	if grant.Level == domain.AccessLevelFull {
		// FULL is terminal. A sweep that snapshotted the grant while it
		// was still PROVISIONAL must not unwind a confirmed settlement.
		return nil
	}

	now := time.Now().UTC()
	won, err := s.grantRepo.Revoke(ctx, grant.ID, now)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("revoke grant: %w", err))
	}
	if !won {
		// Another caller (sweep or failure handler) got there first.
		return nil
	}

	s.metrics.IncRevoked()
	s.log.Info().
		Str("trace_id", traceID).
		Str("subject_id", grant.SubjectID).
		Str("reason", reason).
		Msg("access revoked")

	bet, err := s.betting.GetBet(ctx, grant.BetID)
	if err != nil || bet == nil {
		s.log.Warn().Err(err).Str("bet_id", grant.BetID).Msg("revoked grant without resolvable bet, skipping refund")
		return nil
	}

	if err := s.betting.SetBetRejected(ctx, bet.BetID); err != nil {
		s.log.Error().Err(err).Str("bet_id", bet.BetID).Msg("failed to reject bet on revoke")
	}
	if err := s.betting.CreditBalance(ctx, grant.SubjectID, bet.Amount); err != nil {
		s.log.Error().Err(err).Str("subject_id", grant.SubjectID).Int64("amount", bet.Amount).Msg("failed to refund on revoke")
	} else {
		s.log.Info().Str("subject_id", grant.SubjectID).Int64("amount", bet.Amount).Msg("wager refunded")
	}

	if s.publisher != nil {
		evt := events.SettlementRevoked{
			TraceID:   traceID,
			BetID:     bet.BetID,
			SubjectID: grant.SubjectID,
			Reason:    reason,
			Refund:    bet.Amount,
			Ts:        now,
		}
		if err := s.publisher.PublishSettlementRevoked(ctx, evt); err != nil {
			s.log.Warn().Err(err).Str("trace_id", traceID).Msg("failed to publish revocation event")
		}
	}

	return nil
}

// GrantFor returns the trace's ACTIVE grant, or nil when none exists.
// An elapsed PROVISIONAL grant is reported as nil; the sweep performs
// the actual revocation and refund.
func (s *AccessControlImpl) GrantFor(ctx context.Context, traceID string) (*domain.AccessGrant, error) {
	grant, err := s.grantRepo.GetActiveByTraceID(ctx, traceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get grant: %w", err))
	}
	if grant == nil || grant.IsExpired(time.Now().UTC()) {
		return nil, nil
	}
	return grant, nil
}

// GrantsForSubject lists all grants ever issued to a subject.
func (s *AccessControlImpl) GrantsForSubject(ctx context.Context, subjectID string) ([]domain.AccessGrant, error) {
	grants, err := s.grantRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list grants: %w", err))
	}
	return grants, nil
}

// RevokeExpired revokes every ACTIVE PROVISIONAL grant whose window
// elapsed as of the given instant. The conditional transition inside
// Revoke guarantees each grant is refunded at most once even when
// sweeps overlap.
func (s *AccessControlImpl) RevokeExpired(ctx context.Context, asOf time.Time) (int, error) {
	expired, err := s.grantRepo.ListExpiredProvisional(ctx, asOf, expiredSweepBatchSize)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list expired grants: %w", err))
	}

	revoked := 0
	for _, grant := range expired {
		if err := s.Revoke(ctx, grant.TraceID, "expired"); err != nil {
			s.log.Error().Err(err).Str("trace_id", grant.TraceID).Msg("failed to revoke expired grant")
			continue
		}
		revoked++
	}
	return revoked, nil
}
