package ports

import (
	"context"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/pkg/contracts/events"
)

// BettingPlatform is the external betting/market collaborator. Placement
// fields (market match, odds, initial status) are owned by the platform;
// this core only drives the settlement-derived mutations. Balance
// operations must be atomic increments per subject.
type BettingPlatform interface {
	GetBet(ctx context.Context, betID string) (*domain.Bet, error)
	GetMarket(ctx context.Context, marketID string) (*domain.Market, error)
	IsMarketOpen(ctx context.Context, marketID string) (bool, error)
	BetIDsForBatch(ctx context.Context, batchID string) ([]string, error)

	SetBetAccepted(ctx context.Context, betID string, level domain.AccessLevel, confirmedAt time.Time) error
	SetBetRejected(ctx context.Context, betID string) error
	SetAnchorProof(ctx context.Context, betID string, root string) error

	// DebitBalance returns apperror.ErrInsufficientBalance without any
	// partial effect when the subject cannot cover the amount.
	DebitBalance(ctx context.Context, subjectID string, amount int64) error
	CreditBalance(ctx context.Context, subjectID string, amount int64) error

	// ResolveSubject maps a payer identity to a subject id, or "" when no
	// subject matches.
	ResolveSubject(ctx context.Context, payer string) (string, error)
	PreferredBackend(ctx context.Context, subjectID string) (string, error)
}

// SettlementDispatch is the request handed to a fiat settlement backend.
type SettlementDispatch struct {
	TraceID   string
	Amount    int64
	Currency  string
	Payer     string
	Payee     string
	Reference string // Bet id
}

// SettlementBackend is a fiat rail (PIX, card). Dispatch returns once the
// backend accepted the request; confirmation arrives later through the
// orchestrator's confirmation callback.
type SettlementBackend interface {
	Name() string
	Dispatch(ctx context.Context, req SettlementDispatch) (externalTxID string, err error)
}

// EventPublisher emits settlement lifecycle events. Best-effort: failures
// are logged, never propagated into the settlement path.
type EventPublisher interface {
	PublishSettlementConfirmed(ctx context.Context, e events.SettlementConfirmed) error
	PublishSettlementRevoked(ctx context.Context, e events.SettlementRevoked) error
}

// HealthChecker reports liveness of an infrastructure dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
