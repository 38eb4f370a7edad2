package settlement

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// ConfirmFunc delivers a backend confirmation back into the orchestrator.
// Simulated rails call it after the simulated settlement delay; a real
// rail would hit the confirmation webhook instead.
type ConfirmFunc func(ctx context.Context, req ports.ConfirmationRequest)

// PixBackend simulates the PIX instant-payment rail. Dispatch accepts the
// request immediately; confirmation arrives asynchronously after the
// configured delay.
type PixBackend struct {
	confirm ConfirmFunc
	delay   time.Duration
	log     zerolog.Logger
}

// NewPixBackend creates a simulated PIX backend.
func NewPixBackend(confirm ConfirmFunc, delay time.Duration, log zerolog.Logger) *PixBackend {
	return &PixBackend{
		confirm: confirm,
		delay:   delay,
		log:     log.With().Str("backend", "pix").Logger(),
	}
}

// Name returns the rail identifier.
func (b *PixBackend) Name() string { return "pix" }

// Dispatch accepts the settlement and schedules its confirmation.
func (b *PixBackend) Dispatch(ctx context.Context, req ports.SettlementDispatch) (string, error) {
	if req.Amount <= 0 {
		return "", fmt.Errorf("pix: non-positive amount %d", req.Amount)
	}

	externalTxID := "pix-e2e-" + randomSuffix()
	b.log.Info().
		Str("trace_id", req.TraceID).
		Str("external_tx_id", externalTxID).
		Int64("amount", req.Amount).
		Msg("pix settlement accepted")

	go b.settle(ctx, req.TraceID, externalTxID)
	return externalTxID, nil
}

func (b *PixBackend) settle(ctx context.Context, traceID, externalTxID string) {
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

func randomSuffix() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
