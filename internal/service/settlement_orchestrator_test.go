package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/internal/core/ports/mocks"
	"bet-settlement-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPayee = "0xPAYEE"

type orchestratorTestDeps struct {
	svc        *SettlementOrchestratorImpl
	traces     *mocks.MockTraceRegistry
	reputation *mocks.MockReputationRegistry
	access     *mocks.MockAccessController
	betting    *mocks.MockBettingPlatform
	backend    *mocks.MockSettlementBackend
	cache      *mocks.MockConfirmationCache
	ctrl       *gomock.Controller
}

func setupOrchestrator(t *testing.T) *orchestratorTestDeps {
	ctrl := gomock.NewController(t)
	d := &orchestratorTestDeps{
		traces:     mocks.NewMockTraceRegistry(ctrl),
		reputation: mocks.NewMockReputationRegistry(ctrl),
		access:     mocks.NewMockAccessController(ctrl),
		betting:    mocks.NewMockBettingPlatform(ctrl),
		backend:    mocks.NewMockSettlementBackend(ctrl),
		cache:      mocks.NewMockConfirmationCache(ctrl),
		ctrl:       ctrl,
	}
	d.backend.EXPECT().Name().Return("pix").AnyTimes()
	d.svc = NewSettlementOrchestrator(
		d.traces, d.reputation, d.access, d.betting,
		map[string]ports.SettlementBackend{"pix": d.backend},
		d.cache, nil, nil, testAgentID, testPayee, zerolog.Nop(),
	)
	return d
}

func validIntent() domain.PaymentIntent {
	return domain.PaymentIntent{
		IntentID:  "intent-1",
		Payer:     "0xPAYER",
		Payee:     testPayee,
		Amount:    5000,
		Currency:  "BRL",
		Nonce:     1,
		Signature: "0x" + string(make64hex()),
	}
}

func make64hex() []byte {
	b := make([]byte, 64)
	for i := range b {
		b[i] = 'a'
	}
	return b
}

// ==================== ProcessIntent Tests ====================

func TestOrchestrator_ProcessIntent_Success(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	intent := validIntent()
	req := ports.IntentRequest{Intent: intent, SubjectID: "subj-1", BetID: "bet-1", MarketID: "market-1"}
	trace := &domain.PaymentTrace{TraceID: "trace-1", Payer: intent.Payer, Amount: intent.Amount}

	d.betting.EXPECT().PreferredBackend(ctx, "subj-1").Return("pix", nil)
	d.betting.EXPECT().DebitBalance(ctx, "subj-1", int64(5000)).Return(nil)
	d.traces.EXPECT().RecordIntent(ctx, intent.Payer, intent.Payee, int64(5000), "BRL").Return(trace, nil)
	d.reputation.EXPECT().SubmitValidation(ctx, "trace-1", testAgentID, domain.ValidationTypePaymentIntent, gomock.Any()).
		Return("val-1", nil)
	d.traces.EXPECT().LinkValidation(ctx, "trace-1", "val-1").Return(nil)
	d.access.EXPECT().GrantProvisional(ctx, "subj-1", "trace-1", "bet-1").Return(&ports.AccessGrantResult{
		Grant: &domain.AccessGrant{TraceID: "trace-1", Level: domain.AccessLevelProvisional},
		Token: "tok-prov",
	}, nil)

	dispatched := make(chan ports.SettlementDispatch, 1)
	d.backend.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dr ports.SettlementDispatch) (string, error) {
			dispatched <- dr
			return "pix-e2e-1", nil
		})

	res, err := d.svc.ProcessIntent(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "trace-1", res.TraceID)
	assert.Equal(t, "SETTLEMENT_INITIATED", res.Status)
	assert.Equal(t, domain.AccessLevelProvisional, res.AccessLevel)
	assert.Equal(t, "tok-prov", res.AccessToken)

	select {
	case dr := <-dispatched:
		assert.Equal(t, "trace-1", dr.TraceID)
		assert.Equal(t, int64(5000), dr.Amount)
		assert.Equal(t, "bet-1", dr.Reference)
	case <-time.After(time.Second):
		t.Fatal("settlement was never dispatched")
	}
}

func TestOrchestrator_ProcessIntent_MalformedSignature(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	intent := validIntent()
	intent.Signature = "deadbeef"

	_, err := d.svc.ProcessIntent(context.Background(), ports.IntentRequest{Intent: intent, SubjectID: "subj-1"})
	assertAppError(t, err, "VAL_001")
}

func TestOrchestrator_ProcessIntent_WrongPayee(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	intent := validIntent()
	intent.Payee = "0xSOMEONE_ELSE"

	_, err := d.svc.ProcessIntent(context.Background(), ports.IntentRequest{Intent: intent, SubjectID: "subj-1"})
	assertAppError(t, err, "VAL_001")
}

func TestOrchestrator_ProcessIntent_NonPositiveAmount(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	intent := validIntent()
	intent.Amount = 0

	_, err := d.svc.ProcessIntent(context.Background(), ports.IntentRequest{Intent: intent, SubjectID: "subj-1"})
	assertAppError(t, err, "VAL_001")
}

func TestOrchestrator_ProcessIntent_InsufficientBalance(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.IntentRequest{Intent: validIntent(), SubjectID: "subj-1", BetID: "bet-1"}

	d.betting.EXPECT().PreferredBackend(ctx, "subj-1").Return("pix", nil)
	d.betting.EXPECT().DebitBalance(ctx, "subj-1", int64(5000)).Return(apperror.ErrInsufficientBalance())
	// No RecordIntent expectation: nothing is written after a rejected debit.

	_, err := d.svc.ProcessIntent(ctx, req)
	assertAppError(t, err, "SET_001")
}

func TestOrchestrator_ProcessIntent_UnknownBackend(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.IntentRequest{Intent: validIntent(), SubjectID: "subj-1", BetID: "bet-1"}

	d.betting.EXPECT().PreferredBackend(ctx, "subj-1").Return("wire", nil)

	_, err := d.svc.ProcessIntent(ctx, req)
	assertAppError(t, err, "SET_004")
}

// ==================== ConfirmSettlement Tests ====================

func confirmedRecord(traceID string) *ports.SettlementRecord {
	settledAt := time.Now().UTC()
	refHash := "abc123"
	return &ports.SettlementRecord{
		Trace: &domain.PaymentTrace{
			TraceID:             traceID,
			Payer:               "0xPAYER",
			SettlementTimestamp: &settledAt,
			SettlementStatus:    domain.SettlementStatusConfirmed,
			FiatReferenceHash:   &refHash,
		},
		LatencyMs: 180,
	}
}

func TestOrchestrator_ConfirmSettlement_Success(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.ConfirmationRequest{TraceID: "trace-1", ExternalTxRef: "pix-e2e-1", Backend: "pix", Status: domain.SettlementStatusConfirmed}
	rec := confirmedRecord("trace-1")

	d.cache.EXPECT().Get(ctx, "trace-1").Return(nil, nil)
	d.traces.EXPECT().RecordSettlement(ctx, "trace-1", "pix-e2e-1", domain.SettlementStatusConfirmed).Return(rec, nil)
	d.reputation.EXPECT().SubmitFeedback(ctx, "trace-1", testAgentID, 1.0, domain.FeedbackTypeSuccess, gomock.Any()).
		Return("fb-1", nil)
	d.traces.EXPECT().LinkFeedback(ctx, "trace-1", "fb-1").Return(nil)
	d.betting.EXPECT().ResolveSubject(ctx, "0xPAYER").Return("subj-1", nil)
	d.access.EXPECT().UpgradeToFull(ctx, "subj-1", "trace-1").Return(&ports.AccessGrantResult{
		Grant: &domain.AccessGrant{TraceID: "trace-1", BetID: "bet-1", Level: domain.AccessLevelFull},
		Token: "tok-full",
	}, nil)
	d.betting.EXPECT().SetBetAccepted(ctx, "bet-1", domain.AccessLevelFull, gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(ctx, "trace-1", gomock.Any(), confirmationCacheTTL).Return(nil)

	res, err := d.svc.ConfirmSettlement(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "CONFIRMED", res.Status)
	assert.Equal(t, domain.AccessLevelFull, res.AccessLevel)
	assert.Equal(t, int64(180), res.LatencyMs)
	assert.Equal(t, "abc123", res.FiatReferenceHash)
}

func TestOrchestrator_ConfirmSettlement_CachedReplay(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cached := ports.ConfirmationResult{TraceID: "trace-1", Status: "CONFIRMED", AccessLevel: domain.AccessLevelFull, LatencyMs: 180}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	d.cache.EXPECT().Get(ctx, "trace-1").Return(data, nil)
	// No RecordSettlement expectation: the replay never reaches the registry.

	res, err := d.svc.ConfirmSettlement(ctx, ports.ConfirmationRequest{TraceID: "trace-1", Status: domain.SettlementStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, cached, *res)
}

func TestOrchestrator_ConfirmSettlement_DuplicateAfterCacheMiss(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	rec := confirmedRecord("trace-1")
	rec.AlreadySettled = true

	d.cache.EXPECT().Get(ctx, "trace-1").Return(nil, nil)
	d.traces.EXPECT().RecordSettlement(ctx, "trace-1", "ref", domain.SettlementStatusConfirmed).Return(rec, nil)
	d.access.EXPECT().GrantFor(ctx, "trace-1").Return(&domain.AccessGrant{Level: domain.AccessLevelFull}, nil)
	d.cache.EXPECT().Set(ctx, "trace-1", gomock.Any(), confirmationCacheTTL).Return(nil)
	// No feedback expectations: duplicate confirmations leave no new records.

	res, err := d.svc.ConfirmSettlement(ctx, ports.ConfirmationRequest{TraceID: "trace-1", ExternalTxRef: "ref", Status: domain.SettlementStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, domain.AccessLevelFull, res.AccessLevel)
}

func TestOrchestrator_ConfirmSettlement_Failed(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	settledAt := time.Now().UTC()
	rec := &ports.SettlementRecord{
		Trace: &domain.PaymentTrace{
			TraceID:             "trace-1",
			Payer:               "0xPAYER",
			SettlementTimestamp: &settledAt,
			SettlementStatus:    domain.SettlementStatusFailed,
		},
		LatencyMs: 90,
	}

	d.cache.EXPECT().Get(ctx, "trace-1").Return(nil, nil)
	d.traces.EXPECT().RecordSettlement(ctx, "trace-1", "", domain.SettlementStatusFailed).Return(rec, nil)
	d.reputation.EXPECT().SubmitFeedback(ctx, "trace-1", testAgentID, 0.0, domain.FeedbackTypeFailure, gomock.Any()).
		Return("fb-1", nil)
	d.traces.EXPECT().LinkFeedback(ctx, "trace-1", "fb-1").Return(nil)
	d.access.EXPECT().Revoke(ctx, "trace-1", "failed").Return(nil)
	d.cache.EXPECT().Set(ctx, "trace-1", gomock.Any(), confirmationCacheTTL).Return(nil)

	res, err := d.svc.ConfirmSettlement(ctx, ports.ConfirmationRequest{TraceID: "trace-1", Backend: "pix", Status: domain.SettlementStatusFailed})
	require.NoError(t, err)
	assert.Equal(t, "FAILED", res.Status)
	assert.Equal(t, domain.AccessLevelRevoked, res.AccessLevel)
}

func TestOrchestrator_ConfirmSettlement_LateAfterRevocation(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	rec := confirmedRecord("trace-1")

	d.cache.EXPECT().Get(ctx, "trace-1").Return(nil, nil)
	d.traces.EXPECT().RecordSettlement(ctx, "trace-1", "ref", domain.SettlementStatusConfirmed).Return(rec, nil)
	d.reputation.EXPECT().SubmitFeedback(ctx, "trace-1", testAgentID, 1.0, domain.FeedbackTypeSuccess, gomock.Any()).
		Return("fb-1", nil)
	d.traces.EXPECT().LinkFeedback(ctx, "trace-1", "fb-1").Return(nil)
	d.betting.EXPECT().ResolveSubject(ctx, "0xPAYER").Return("subj-1", nil)
	d.access.EXPECT().UpgradeToFull(ctx, "subj-1", "trace-1").Return(nil, apperror.ErrGrantNotFound("trace-1"))
	d.cache.EXPECT().Set(ctx, "trace-1", gomock.Any(), confirmationCacheTTL).Return(nil)

	res, err := d.svc.ConfirmSettlement(ctx, ports.ConfirmationRequest{TraceID: "trace-1", ExternalTxRef: "ref", Status: domain.SettlementStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", res.Status)
	assert.Equal(t, domain.AccessLevelRevoked, res.AccessLevel)
}

func TestOrchestrator_ConfirmSettlement_UnknownTrace(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, "trace-missing").Return(nil, nil)
	d.traces.EXPECT().RecordSettlement(ctx, "trace-missing", "ref", domain.SettlementStatusConfirmed).
		Return(nil, apperror.ErrTraceNotFound("trace-missing"))

	_, err := d.svc.ConfirmSettlement(ctx, ports.ConfirmationRequest{TraceID: "trace-missing", ExternalTxRef: "ref", Status: domain.SettlementStatusConfirmed})
	assertAppError(t, err, "SET_002")
}

// ==================== Status Tests ====================

func TestOrchestrator_Status(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.reputation.EXPECT().ReputationOf(ctx, testAgentID).Return(&domain.Reputation{
		Agent:       testAgentID,
		Score:       0.98,
		SuccessRate: 0.98,
	}, nil)

	status, err := d.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, testAgentID, status.AgentID)
	assert.Equal(t, "active", status.Status)
	assert.True(t, status.Trusted)
}
