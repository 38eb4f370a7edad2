package service

import (
	"context"
	"testing"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testProvisionalWindow = 10 * time.Minute

type accessTestDeps struct {
	svc        *AccessControlImpl
	grantRepo  *mocks.MockGrantRepository
	transactor *mocks.MockDBTransactor
	betting    *mocks.MockBettingPlatform
	tokenSvc   *mocks.MockTokenService
	ctrl       *gomock.Controller
}

func setupAccessControl(t *testing.T) *accessTestDeps {
	ctrl := gomock.NewController(t)
	d := &accessTestDeps{
		grantRepo:  mocks.NewMockGrantRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		betting:    mocks.NewMockBettingPlatform(ctrl),
		tokenSvc:   mocks.NewMockTokenService(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewAccessControl(
		d.grantRepo, d.transactor, d.betting, d.tokenSvc,
		nil, nil, testProvisionalWindow, zerolog.Nop(),
	)
	return d
}

// ==================== GrantProvisional Tests ====================

func TestAccessControl_GrantProvisional(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	var created *domain.AccessGrant
	d.grantRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, grant *domain.AccessGrant) error {
			created = grant
			return nil
		})
	d.tokenSvc.EXPECT().Generate("subj-1", "trace-1", "bet-1", domain.AccessLevelProvisional).
		Return("tok-prov", time.Now().Add(testProvisionalWindow), nil)

	res, err := d.svc.GrantProvisional(ctx, "subj-1", "trace-1", "bet-1")
	require.NoError(t, err)

	assert.Equal(t, "tok-prov", res.Token)
	assert.Equal(t, domain.AccessLevelProvisional, created.Level)
	assert.Equal(t, domain.GrantStatusActive, created.Status)
	require.NotNil(t, created.ExpiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(testProvisionalWindow), *created.ExpiresAt, time.Second)
}

// ==================== UpgradeToFull Tests ====================

func TestAccessControl_UpgradeToFull(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	expiresAt := time.Now().UTC().Add(5 * time.Minute)
	grant := &domain.AccessGrant{
		ID:        uuid.New(),
		SubjectID: "subj-1",
		TraceID:   "trace-1",
		BetID:     "bet-1",
		Level:     domain.AccessLevelProvisional,
		ExpiresAt: &expiresAt,
		Status:    domain.GrantStatusActive,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.grantRepo.EXPECT().GetByTraceIDForUpdate(ctx, tx, "trace-1").Return(grant, nil)
	d.grantRepo.EXPECT().Upgrade(ctx, tx, grant.ID, gomock.Any()).Return(nil)
	d.tokenSvc.EXPECT().Generate("subj-1", "trace-1", "bet-1", domain.AccessLevelFull).
		Return("tok-full", time.Time{}, nil)

	res, err := d.svc.UpgradeToFull(ctx, "subj-1", "trace-1")
	require.NoError(t, err)

	assert.Equal(t, "tok-full", res.Token)
	assert.Equal(t, domain.AccessLevelFull, res.Grant.Level)
	assert.Nil(t, res.Grant.ExpiresAt)
	assert.NotNil(t, res.Grant.UpgradedAt)
}

func TestAccessControl_UpgradeToFull_AlreadyFull(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	grant := &domain.AccessGrant{
		ID:        uuid.New(),
		SubjectID: "subj-1",
		TraceID:   "trace-1",
		BetID:     "bet-1",
		Level:     domain.AccessLevelFull,
		Status:    domain.GrantStatusActive,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.grantRepo.EXPECT().GetByTraceIDForUpdate(ctx, tx, "trace-1").Return(grant, nil)
	// No Upgrade expectation: the repeat must not write.
	d.tokenSvc.EXPECT().Generate("subj-1", "trace-1", "bet-1", domain.AccessLevelFull).
		Return("tok-full", time.Time{}, nil)

	res, err := d.svc.UpgradeToFull(ctx, "subj-1", "trace-1")
	require.NoError(t, err)
	assert.Equal(t, domain.AccessLevelFull, res.Grant.Level)
}

func TestAccessControl_UpgradeToFull_NoGrant(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.grantRepo.EXPECT().GetByTraceIDForUpdate(ctx, tx, "trace-1").Return(nil, nil)

	_, err := d.svc.UpgradeToFull(ctx, "subj-1", "trace-1")
	assertAppError(t, err, "SET_003")
}

func TestAccessControl_UpgradeToFull_RevokedGrant(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.grantRepo.EXPECT().GetByTraceIDForUpdate(ctx, tx, "trace-1").Return(&domain.AccessGrant{
		ID:     uuid.New(),
		Level:  domain.AccessLevelRevoked,
		Status: domain.GrantStatusRevoked,
	}, nil)

	_, err := d.svc.UpgradeToFull(ctx, "subj-1", "trace-1")
	assertAppError(t, err, "SET_003")
}

// ==================== Revoke Tests ====================

func TestAccessControl_Revoke_RefundsOnce(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	grant := &domain.AccessGrant{
		ID:        uuid.New(),
		SubjectID: "subj-1",
		TraceID:   "trace-1",
		BetID:     "bet-1",
		Level:     domain.AccessLevelProvisional,
		Status:    domain.GrantStatusActive,
	}

	d.grantRepo.EXPECT().GetActiveByTraceID(ctx, "trace-1").Return(grant, nil)
	d.grantRepo.EXPECT().Revoke(ctx, grant.ID, gomock.Any()).Return(true, nil)
	d.betting.EXPECT().GetBet(ctx, "bet-1").Return(&domain.Bet{
		BetID:     "bet-1",
		SubjectID: "subj-1",
		Amount:    5000,
	}, nil)
	d.betting.EXPECT().SetBetRejected(ctx, "bet-1").Return(nil)
	d.betting.EXPECT().CreditBalance(ctx, "subj-1", int64(5000)).Return(nil)

	require.NoError(t, d.svc.Revoke(ctx, "trace-1", "failed"))
}

func TestAccessControl_Revoke_LoserSkipsRefund(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	grant := &domain.AccessGrant{
		ID:      uuid.New(),
		BetID:   "bet-1",
		TraceID: "trace-1",
		Status:  domain.GrantStatusActive,
	}

	d.grantRepo.EXPECT().GetActiveByTraceID(ctx, "trace-1").Return(grant, nil)
	// Someone else flipped the row; no bet or balance calls may follow.
	d.grantRepo.EXPECT().Revoke(ctx, grant.ID, gomock.Any()).Return(false, nil)

	require.NoError(t, d.svc.Revoke(ctx, "trace-1", "expired"))
}

func TestAccessControl_Revoke_FullGrantIsNoOp(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	upgradedAt := time.Now().UTC()
	grant := &domain.AccessGrant{
		ID:         uuid.New(),
		SubjectID:  "subj-1",
		TraceID:    "trace-1",
		BetID:      "bet-1",
		Level:      domain.AccessLevelFull,
		UpgradedAt: &upgradedAt,
		Status:     domain.GrantStatusActive,
	}

	// A sweep can snapshot a grant as expired PROVISIONAL and only call
	// Revoke after a late confirmation upgraded it. No revocation, bet
	// rejection, or refund may follow.
	d.grantRepo.EXPECT().GetActiveByTraceID(ctx, "trace-1").Return(grant, nil)

	require.NoError(t, d.svc.Revoke(ctx, "trace-1", "expired"))
}

func TestAccessControl_Revoke_NoActiveGrant(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	d.grantRepo.EXPECT().GetActiveByTraceID(gomock.Any(), "trace-1").Return(nil, nil)

	require.NoError(t, d.svc.Revoke(context.Background(), "trace-1", "failed"))
}

// ==================== GrantFor Tests ====================

func TestAccessControl_GrantFor_HidesExpired(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	expired := time.Now().UTC().Add(-time.Minute)
	d.grantRepo.EXPECT().GetActiveByTraceID(gomock.Any(), "trace-1").Return(&domain.AccessGrant{
		ID:        uuid.New(),
		Level:     domain.AccessLevelProvisional,
		ExpiresAt: &expired,
		Status:    domain.GrantStatusActive,
	}, nil)

	grant, err := d.svc.GrantFor(context.Background(), "trace-1")
	require.NoError(t, err)
	assert.Nil(t, grant)
}

// ==================== RevokeExpired Tests ====================

func TestAccessControl_RevokeExpired(t *testing.T) {
	d := setupAccessControl(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	asOf := time.Now().UTC()
	grant := domain.AccessGrant{
		ID:        uuid.New(),
		SubjectID: "subj-1",
		TraceID:   "trace-1",
		BetID:     "bet-1",
		Level:     domain.AccessLevelProvisional,
		Status:    domain.GrantStatusActive,
	}

	d.grantRepo.EXPECT().ListExpiredProvisional(ctx, asOf, expiredSweepBatchSize).Return([]domain.AccessGrant{grant}, nil)
	d.grantRepo.EXPECT().GetActiveByTraceID(ctx, "trace-1").Return(&grant, nil)
	d.grantRepo.EXPECT().Revoke(ctx, grant.ID, gomock.Any()).Return(true, nil)
	d.betting.EXPECT().GetBet(ctx, "bet-1").Return(&domain.Bet{BetID: "bet-1", Amount: 2500}, nil)
	d.betting.EXPECT().SetBetRejected(ctx, "bet-1").Return(nil)
	d.betting.EXPECT().CreditBalance(ctx, "subj-1", int64(2500)).Return(nil)

	revoked, err := d.svc.RevokeExpired(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, revoked)
}
