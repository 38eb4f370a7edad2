package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TraceRepo implements ports.TraceRepository.
type TraceRepo struct {
	pool Pool
}

// NewTraceRepo creates a new TraceRepo.
func NewTraceRepo(pool Pool) *TraceRepo {
	return &TraceRepo{pool: pool}
}

const traceColumns = `trace_id, payer, payee, amount, currency, intent_timestamp,
	settlement_timestamp, settlement_status, fiat_reference_hash, ledger_reference,
	validation_id, feedback_id`

// Create inserts a new payment trace.
func (r *TraceRepo) Create(ctx context.Context, t *domain.PaymentTrace) error {
	query := `INSERT INTO payment_traces (trace_id, payer, payee, amount, currency, intent_timestamp,
		settlement_timestamp, settlement_status, fiat_reference_hash, ledger_reference, validation_id, feedback_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		t.TraceID, t.Payer, t.Payee, t.Amount, t.Currency, t.IntentTimestamp,
		t.SettlementTimestamp, t.SettlementStatus, t.FiatReferenceHash, t.LedgerReference,
		t.ValidationID, t.FeedbackID,
	)
	if err != nil {
		return fmt.Errorf("insert payment trace: %w", err)
	}
	return nil
}

// GetByTraceID fetches a trace by its id. Returns nil, nil when absent.
func (r *TraceRepo) GetByTraceID(ctx context.Context, traceID string) (*domain.PaymentTrace, error) {
	query := fmt.Sprintf(`SELECT %s FROM payment_traces WHERE trace_id = $1`, traceColumns)
	return r.scanTrace(r.pool.QueryRow(ctx, query, traceID))
}

// GetByTraceIDForUpdate fetches a trace inside a transaction with a row
// lock, serializing concurrent settlement writes for the same trace.
func (r *TraceRepo) GetByTraceIDForUpdate(ctx context.Context, tx pgx.Tx, traceID string) (*domain.PaymentTrace, error) {
	query := fmt.Sprintf(`SELECT %s FROM payment_traces WHERE trace_id = $1 FOR UPDATE`, traceColumns)
	return r.scanTrace(tx.QueryRow(ctx, query, traceID))
}

// RecordSettlement writes the terminal settlement fields. Only a PENDING
// row may transition.
func (r *TraceRepo) RecordSettlement(ctx context.Context, tx pgx.Tx, traceID string, settledAt time.Time, refHash string, status domain.SettlementStatus) error {
	query := `UPDATE payment_traces
		SET settlement_timestamp = $1, fiat_reference_hash = $2, settlement_status = $3
		WHERE trace_id = $4 AND settlement_status = 'PENDING'`

	tag, err := tx.Exec(ctx, query, settledAt, refHash, status, traceID)
	if err != nil {
		return fmt.Errorf("record settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trace not pending: %s", traceID)
	}
	return nil
}

// SetValidationID links the validation record issued for the intent.
func (r *TraceRepo) SetValidationID(ctx context.Context, traceID, validationID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE payment_traces SET validation_id = $1 WHERE trace_id = $2`, validationID, traceID)
	if err != nil {
		return fmt.Errorf("set validation id: %w", err)
	}
	return nil
}

// SetFeedbackID links the feedback record issued for the settlement.
func (r *TraceRepo) SetFeedbackID(ctx context.Context, traceID, feedbackID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE payment_traces SET feedback_id = $1 WHERE trace_id = $2`, feedbackID, traceID)
	if err != nil {
		return fmt.Errorf("set feedback id: %w", err)
	}
	return nil
}

// ListByPayer fetches all traces for a payer, newest intent first.
func (r *TraceRepo) ListByPayer(ctx context.Context, payer string) ([]domain.PaymentTrace, error) {
	query := fmt.Sprintf(`SELECT %s FROM payment_traces WHERE payer = $1 ORDER BY intent_timestamp DESC`, traceColumns)

	rows, err := r.pool.Query(ctx, query, payer)
	if err != nil {
		return nil, fmt.Errorf("list traces by payer: %w", err)
	}
	defer rows.Close()

	var traces []domain.PaymentTrace
	for rows.Next() {
		var t domain.PaymentTrace
		if err := rows.Scan(
			&t.TraceID, &t.Payer, &t.Payee, &t.Amount, &t.Currency, &t.IntentTimestamp,
			&t.SettlementTimestamp, &t.SettlementStatus, &t.FiatReferenceHash, &t.LedgerReference,
			&t.ValidationID, &t.FeedbackID,
		); err != nil {
			return nil, fmt.Errorf("scan trace row: %w", err)
		}
		traces = append(traces, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trace rows: %w", err)
	}
	return traces, nil
}

func (r *TraceRepo) scanTrace(row pgx.Row) (*domain.PaymentTrace, error) {
	t := &domain.PaymentTrace{}
	err := row.Scan(
		&t.TraceID, &t.Payer, &t.Payee, &t.Amount, &t.Currency, &t.IntentTimestamp,
		&t.SettlementTimestamp, &t.SettlementStatus, &t.FiatReferenceHash, &t.LedgerReference,
		&t.ValidationID, &t.FeedbackID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan trace: %w", err)
	}
	return t, nil
}
