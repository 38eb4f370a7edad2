package service

import (
	"context"
	"time"

	"bet-settlement-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// ExpiryReaper periodically revokes provisional grants whose window
// elapsed. A single sweeping loop replaces per-grant timers; overlap
// with the failure path is safe because revocation is conditional.
type ExpiryReaper struct {
	access   ports.AccessController
	interval time.Duration
	log      zerolog.Logger
}

// NewExpiryReaper creates a new ExpiryReaper.
func NewExpiryReaper(access ports.AccessController, interval time.Duration, log zerolog.Logger) *ExpiryReaper {
	return &ExpiryReaper{access: access, interval: interval, log: log}
}

// Run sweeps until the context is cancelled.
func (r *ExpiryReaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info().Dur("interval", r.interval).Msg("expiry reaper started")
	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("expiry reaper stopped")
			return ctx.Err()
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep performs one revocation pass.
func (r *ExpiryReaper) Sweep(ctx context.Context) {
	revoked, err := r.access.RevokeExpired(ctx, time.Now().UTC())
	if err != nil {
		r.log.Error().Err(err).Msg("expiry sweep failed")
		return
	}
	if revoked > 0 {
		r.log.Info().Int("revoked", revoked).Msg("expired provisional grants revoked")
	}
}
