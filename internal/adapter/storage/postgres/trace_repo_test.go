package postgres

import (
	"context"
	"testing"
	"time"

	"bet-settlement-gateway/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrace(traceID string) *domain.PaymentTrace {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PaymentTrace{
		TraceID:          traceID,
		Payer:            "0xPAYER",
		Payee:            "0xPAYEE",
		Amount:           150000,
		Currency:         "BRL",
		IntentTimestamp:  now,
		SettlementStatus: domain.SettlementStatusPending,
		LedgerReference:  "0xabc123",
	}
}

func traceTestColumns() []string {
	return []string{"trace_id", "payer", "payee", "amount", "currency", "intent_timestamp",
		"settlement_timestamp", "settlement_status", "fiat_reference_hash", "ledger_reference",
		"validation_id", "feedback_id"}
}

func traceRow(t *domain.PaymentTrace) *pgxmock.Rows {
	return pgxmock.NewRows(traceTestColumns()).AddRow(
		t.TraceID, t.Payer, t.Payee, t.Amount, t.Currency, t.IntentTimestamp,
		t.SettlementTimestamp, t.SettlementStatus, t.FiatReferenceHash, t.LedgerReference,
		t.ValidationID, t.FeedbackID,
	)
}

func TestTraceRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTraceRepo(mock)
	trace := newTestTrace("trace-1700000000000-deadbeef")

	mock.ExpectExec("INSERT INTO payment_traces").
		WithArgs(
			trace.TraceID, trace.Payer, trace.Payee, trace.Amount, trace.Currency, trace.IntentTimestamp,
			trace.SettlementTimestamp, trace.SettlementStatus, trace.FiatReferenceHash, trace.LedgerReference,
			trace.ValidationID, trace.FeedbackID,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), trace)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraceRepo_GetByTraceID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTraceRepo(mock)
	trace := newTestTrace("trace-1700000000000-deadbeef")

	mock.ExpectQuery("SELECT .+ FROM payment_traces WHERE trace_id").
		WithArgs(trace.TraceID).
		WillReturnRows(traceRow(trace))

	result, err := repo.GetByTraceID(context.Background(), trace.TraceID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, trace.TraceID, result.TraceID)
	assert.Equal(t, trace.Amount, result.Amount)
	assert.Equal(t, domain.SettlementStatusPending, result.SettlementStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraceRepo_GetByTraceID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTraceRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payment_traces WHERE trace_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(traceTestColumns()))

	result, err := repo.GetByTraceID(context.Background(), "trace-missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraceRepo_GetByTraceIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTraceRepo(mock)
	trace := newTestTrace("trace-1700000000000-deadbeef")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM payment_traces WHERE trace_id .+ FOR UPDATE").
		WithArgs(trace.TraceID).
		WillReturnRows(traceRow(trace))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByTraceIDForUpdate(context.Background(), dbTx, trace.TraceID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, trace.TraceID, result.TraceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraceRepo_RecordSettlement(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTraceRepo(mock)
	settledAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payment_traces").
		WithArgs(settledAt, "a1b2c3", domain.SettlementStatusConfirmed, "trace-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.RecordSettlement(context.Background(), dbTx, "trace-1", settledAt, "a1b2c3", domain.SettlementStatusConfirmed)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraceRepo_RecordSettlement_NotPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTraceRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payment_traces").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.RecordSettlement(context.Background(), dbTx, "trace-1", time.Now(), "ref", domain.SettlementStatusFailed)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraceRepo_SetValidationID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTraceRepo(mock)

	mock.ExpectExec("UPDATE payment_traces SET validation_id").
		WithArgs("val-123", "trace-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetValidationID(context.Background(), "trace-1", "val-123")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTraceRepo_ListByPayer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTraceRepo(mock)
	a := newTestTrace("trace-1")
	b := newTestTrace("trace-2")

	rows := pgxmock.NewRows(traceTestColumns()).
		AddRow(b.TraceID, b.Payer, b.Payee, b.Amount, b.Currency, b.IntentTimestamp,
			b.SettlementTimestamp, b.SettlementStatus, b.FiatReferenceHash, b.LedgerReference,
			b.ValidationID, b.FeedbackID).
		AddRow(a.TraceID, a.Payer, a.Payee, a.Amount, a.Currency, a.IntentTimestamp,
			a.SettlementTimestamp, a.SettlementStatus, a.FiatReferenceHash, a.LedgerReference,
			a.ValidationID, a.FeedbackID)

	mock.ExpectQuery("SELECT .+ FROM payment_traces WHERE payer").
		WithArgs("0xPAYER").
		WillReturnRows(rows)

	traces, err := repo.ListByPayer(context.Background(), "0xPAYER")
	require.NoError(t, err)
	require.Len(t, traces, 2)
	assert.Equal(t, "trace-2", traces[0].TraceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
