package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports/mocks"
	"bet-settlement-gateway/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type traceTestDeps struct {
	svc        *TraceRegistryImpl
	traceRepo  *mocks.MockTraceRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupTraceRegistry(t *testing.T) *traceTestDeps {
	ctrl := gomock.NewController(t)
	d := &traceTestDeps{
		traceRepo:  mocks.NewMockTraceRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewTraceRegistry(d.traceRepo, d.transactor, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

// ==================== RecordIntent Tests ====================

func TestTraceRegistry_RecordIntent_Success(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	var created *domain.PaymentTrace
	d.traceRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, trace *domain.PaymentTrace) error {
			created = trace
			return nil
		})

	trace, err := d.svc.RecordIntent(ctx, "0xPAYER", "0xPAYEE", 5000, "BRL")
	require.NoError(t, err)
	require.NotNil(t, trace)
	assert.Same(t, created, trace)

	assert.True(t, strings.HasPrefix(trace.TraceID, "trace-"))
	assert.True(t, strings.HasPrefix(trace.LedgerReference, "0x"))
	assert.Len(t, trace.LedgerReference, 66)
	assert.Equal(t, domain.SettlementStatusPending, trace.SettlementStatus)
	assert.Equal(t, int64(5000), trace.Amount)
	assert.Nil(t, trace.SettlementTimestamp)
}

func TestTraceRegistry_RecordIntent_UniqueTraceIDs(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.traceRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)

	a, err := d.svc.RecordIntent(ctx, "0xPAYER", "0xPAYEE", 100, "BRL")
	require.NoError(t, err)
	b, err := d.svc.RecordIntent(ctx, "0xPAYER", "0xPAYEE", 100, "BRL")
	require.NoError(t, err)

	assert.NotEqual(t, a.TraceID, b.TraceID)
	assert.NotEqual(t, a.LedgerReference, b.LedgerReference)
}

func TestTraceRegistry_RecordIntent_InvalidAmount(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	_, err := d.svc.RecordIntent(context.Background(), "0xPAYER", "0xPAYEE", 0, "BRL")
	assertAppError(t, err, "VAL_002")

	_, err = d.svc.RecordIntent(context.Background(), "0xPAYER", "0xPAYEE", -100, "BRL")
	assertAppError(t, err, "VAL_002")
}

// ==================== RecordSettlement Tests ====================

func TestTraceRegistry_RecordSettlement_Confirmed(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intentAt := time.Now().UTC().Add(-2 * time.Second)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.traceRepo.EXPECT().GetByTraceIDForUpdate(ctx, tx, "trace-1").Return(&domain.PaymentTrace{
		TraceID:          "trace-1",
		Payer:            "0xPAYER",
		Amount:           5000,
		IntentTimestamp:  intentAt,
		SettlementStatus: domain.SettlementStatusPending,
	}, nil)
	d.traceRepo.EXPECT().RecordSettlement(ctx, tx, "trace-1", gomock.Any(), gomock.Any(), domain.SettlementStatusConfirmed).Return(nil)

	rec, err := d.svc.RecordSettlement(ctx, "trace-1", "pix-e2e-123", domain.SettlementStatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.False(t, rec.AlreadySettled)
	assert.Equal(t, domain.SettlementStatusConfirmed, rec.Trace.SettlementStatus)
	assert.GreaterOrEqual(t, rec.LatencyMs, int64(2000))

	sum := sha256.Sum256([]byte("pix-e2e-123"))
	require.NotNil(t, rec.Trace.FiatReferenceHash)
	assert.Equal(t, hex.EncodeToString(sum[:]), *rec.Trace.FiatReferenceHash)
}

func TestTraceRegistry_RecordSettlement_Idempotent(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intentAt := time.Now().UTC().Add(-5 * time.Second)
	settledAt := intentAt.Add(1500 * time.Millisecond)
	refHash := "deadbeef"

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.traceRepo.EXPECT().GetByTraceIDForUpdate(ctx, tx, "trace-1").Return(&domain.PaymentTrace{
		TraceID:             "trace-1",
		IntentTimestamp:     intentAt,
		SettlementTimestamp: &settledAt,
		SettlementStatus:    domain.SettlementStatusConfirmed,
		FiatReferenceHash:   &refHash,
	}, nil)
	// No RecordSettlement expectation: a repeat must not write.

	rec, err := d.svc.RecordSettlement(ctx, "trace-1", "other-ref", domain.SettlementStatusFailed)
	require.NoError(t, err)

	assert.True(t, rec.AlreadySettled)
	assert.Equal(t, domain.SettlementStatusConfirmed, rec.Trace.SettlementStatus)
	assert.Equal(t, int64(1500), rec.LatencyMs)
	assert.Equal(t, "deadbeef", *rec.Trace.FiatReferenceHash)
}

func TestTraceRegistry_RecordSettlement_NotFound(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.traceRepo.EXPECT().GetByTraceIDForUpdate(ctx, tx, "trace-missing").Return(nil, nil)

	_, err := d.svc.RecordSettlement(ctx, "trace-missing", "ref", domain.SettlementStatusConfirmed)
	assertAppError(t, err, "SET_002")
}

func TestTraceRegistry_RecordSettlement_RejectsNonTerminalStatus(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	_, err := d.svc.RecordSettlement(context.Background(), "trace-1", "ref", domain.SettlementStatusPending)
	assertAppError(t, err, "VAL_004")
}

// ==================== Lookup Tests ====================

func TestTraceRegistry_GetTrace_NotFound(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	d.traceRepo.EXPECT().GetByTraceID(gomock.Any(), "trace-missing").Return(nil, nil)

	_, err := d.svc.GetTrace(context.Background(), "trace-missing")
	assertAppError(t, err, "SET_002")
}

func TestTraceRegistry_VerifySettlement(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	intentAt := time.Now().UTC().Add(-time.Second)
	settledAt := intentAt.Add(250 * time.Millisecond)

	d.traceRepo.EXPECT().GetByTraceID(ctx, "trace-ok").Return(&domain.PaymentTrace{
		TraceID:             "trace-ok",
		IntentTimestamp:     intentAt,
		SettlementTimestamp: &settledAt,
		SettlementStatus:    domain.SettlementStatusConfirmed,
	}, nil)

	confirmed, latency, err := d.svc.VerifySettlement(ctx, "trace-ok")
	require.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, int64(250), latency)
}

func TestTraceRegistry_VerifySettlement_UnknownTrace(t *testing.T) {
	d := setupTraceRegistry(t)
	defer d.ctrl.Finish()

	d.traceRepo.EXPECT().GetByTraceID(gomock.Any(), "trace-missing").Return(nil, nil)

	confirmed, latency, err := d.svc.VerifySettlement(context.Background(), "trace-missing")
	require.NoError(t, err)
	assert.False(t, confirmed)
	assert.Zero(t, latency)
}
