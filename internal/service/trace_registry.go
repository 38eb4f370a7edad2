package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// TraceRegistryImpl implements ports.TraceRegistry over the append-only
// payment_traces ledger.
type TraceRegistryImpl struct {
	traceRepo  ports.TraceRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewTraceRegistry creates a new TraceRegistryImpl.
func NewTraceRegistry(traceRepo ports.TraceRepository, transactor ports.DBTransactor, log zerolog.Logger) *TraceRegistryImpl {
	return &TraceRegistryImpl{
		traceRepo:  traceRepo,
		transactor: transactor,
		log:        log,
	}
}

// RecordIntent appends a PENDING trace for a payment intent and returns it.
// The ledger reference stands in for an on-chain transaction hash.
func (s *TraceRegistryImpl) RecordIntent(ctx context.Context, payer, payee string, amount int64, currency string) (*domain.PaymentTrace, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	now := time.Now().UTC()
	trace := &domain.PaymentTrace{
		TraceID:          newTraceID(now),
		Payer:            payer,
		Payee:            payee,
		Amount:           amount,
		Currency:         currency,
		IntentTimestamp:  now,
		SettlementStatus: domain.SettlementStatusPending,
		LedgerReference:  newLedgerReference(),
	}

	if err := s.traceRepo.Create(ctx, trace); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record intent: %w", err))
	}

	s.log.Info().
		Str("trace_id", trace.TraceID).
		Str("payer", payer).
		Int64("amount", amount).
		Str("currency", currency).
		Msg("payment intent recorded")

	return trace, nil
}

// RecordSettlement writes the settlement outcome exactly once. The trace
// row is locked so concurrent confirmations of the same trace serialize;
// a repeat call is a no-op returning the prior outcome.
func (s *TraceRegistryImpl) RecordSettlement(ctx context.Context, traceID, externalTxRef string, status domain.SettlementStatus) (*ports.SettlementRecord, error) {
	if status != domain.SettlementStatusConfirmed && status != domain.SettlementStatusFailed {
		return nil, apperror.Validation(fmt.Sprintf("settlement status must be CONFIRMED or FAILED, got %s", status))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	trace, err := s.traceRepo.GetByTraceIDForUpdate(ctx, dbTx, traceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock trace: %w", err))
	}
	if trace == nil {
		return nil, apperror.ErrTraceNotFound(traceID)
	}

	if trace.IsSettled() {
		s.log.Debug().Str("trace_id", traceID).Msg("settlement already recorded, returning prior result")
		return &ports.SettlementRecord{
			Trace:          trace,
			LatencyMs:      trace.LatencyMs(),
			AlreadySettled: true,
		}, nil
	}

	settledAt := time.Now().UTC()
	refHash := hashFiatReference(externalTxRef)

	if err := s.traceRepo.RecordSettlement(ctx, dbTx, traceID, settledAt, refHash, status); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record settlement: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	trace.SettlementTimestamp = &settledAt
	trace.SettlementStatus = status
	trace.FiatReferenceHash = &refHash
	latency := trace.LatencyMs()

	s.log.Info().
		Str("trace_id", traceID).
		Str("status", string(status)).
		Int64("latency_ms", latency).
		Msg("settlement recorded")

	return &ports.SettlementRecord{Trace: trace, LatencyMs: latency}, nil
}

// GetTrace fetches a trace by id.
func (s *TraceRegistryImpl) GetTrace(ctx context.Context, traceID string) (*domain.PaymentTrace, error) {
	trace, err := s.traceRepo.GetByTraceID(ctx, traceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get trace: %w", err))
	}
	if trace == nil {
		return nil, apperror.ErrTraceNotFound(traceID)
	}
	return trace, nil
}

// GetTracesByPayer lists all traces for a payer, newest first.
func (s *TraceRegistryImpl) GetTracesByPayer(ctx context.Context, payer string) ([]domain.PaymentTrace, error) {
	traces, err := s.traceRepo.ListByPayer(ctx, payer)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list traces by payer: %w", err))
	}
	return traces, nil
}

// VerifySettlement reports whether the trace settled CONFIRMED and its
// intent-to-settlement latency.
func (s *TraceRegistryImpl) VerifySettlement(ctx context.Context, traceID string) (bool, int64, error) {
	trace, err := s.traceRepo.GetByTraceID(ctx, traceID)
	if err != nil {
		return false, 0, apperror.InternalError(fmt.Errorf("verify settlement: %w", err))
	}
	if trace == nil {
		return false, 0, nil
	}
	return trace.SettlementStatus == domain.SettlementStatusConfirmed, trace.LatencyMs(), nil
}

// LinkValidation records the validation id issued for this trace's intent.
func (s *TraceRegistryImpl) LinkValidation(ctx context.Context, traceID, validationID string) error {
	if err := s.traceRepo.SetValidationID(ctx, traceID, validationID); err != nil {
		return apperror.InternalError(fmt.Errorf("link validation: %w", err))
	}
	return nil
}

// LinkFeedback records the feedback id issued for this trace's settlement.
func (s *TraceRegistryImpl) LinkFeedback(ctx context.Context, traceID, feedbackID string) error {
	if err := s.traceRepo.SetFeedbackID(ctx, traceID, feedbackID); err != nil {
		return apperror.InternalError(fmt.Errorf("link feedback: %w", err))
	}
	return nil
}

// newTraceID builds an opaque, collision-resistant trace id.
func newTraceID(now time.Time) string {
	return fmt.Sprintf("trace-%d-%s", now.UnixMilli(), randomHex(8))
}

// newLedgerReference simulates an external ledger transaction hash.
func newLedgerReference() string {
	return "0x" + randomHex(32)
}

// hashFiatReference hashes the external transaction reference so the raw
// reference is never stored.
func hashFiatReference(ref string) string {
	sum := sha256.Sum256([]byte(ref))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
