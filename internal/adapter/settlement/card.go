package settlement

import (
	"context"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// CardBackend simulates a card-acquirer rail. Slower than PIX and bounded
// by a per-transaction limit, mirroring acquirer risk rules.
type CardBackend struct {
	confirm   ConfirmFunc
	delay     time.Duration
	maxAmount int64
	log       zerolog.Logger
}

// NewCardBackend creates a simulated card backend. maxAmount of 0 means
// no limit.
func NewCardBackend(confirm ConfirmFunc, delay time.Duration, maxAmount int64, log zerolog.Logger) *CardBackend {
	return &CardBackend{
		confirm:   confirm,
		delay:     delay,
		maxAmount: maxAmount,
		log:       log.With().Str("backend", "card").Logger(),
	}
}

// Name returns the rail identifier.
func (b *CardBackend) Name() string { return "card" }

// Dispatch accepts the settlement and schedules its confirmation. Amounts
// over the acquirer limit are declined at dispatch time.
func (b *CardBackend) Dispatch(ctx context.Context, req ports.SettlementDispatch) (string, error) {
	if req.Amount <= 0 {
		return "", fmt.Errorf("card: non-positive amount %d", req.Amount)
	}
	if b.maxAmount > 0 && req.Amount > b.maxAmount {
		return "", fmt.Errorf("card: amount %d exceeds acquirer limit %d", req.Amount, b.maxAmount)
	}

	externalTxID := "card-auth-" + randomSuffix()
	b.log.Info().
		Str("trace_id", req.TraceID).
		Str("external_tx_id", externalTxID).
		Int64("amount", req.Amount).
		Msg("card settlement authorized")

	go b.settle(ctx, req.TraceID, externalTxID)
	return externalTxID, nil
}

func (b *CardBackend) settle(ctx context.Context, traceID, externalTxID string) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(b.delay):
	}
	b.confirm(ctx, ports.ConfirmationRequest{
		TraceID:       traceID,
		ExternalTxRef: externalTxID,
		Backend:       b.Name(),
		Status:        domain.SettlementStatusConfirmed,
	})
}
