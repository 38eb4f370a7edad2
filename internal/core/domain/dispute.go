package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the outcome of re-evaluating a disputed bet.
type Verdict string

const (
	VerdictCorrect   Verdict = "CORRECT"
	VerdictIncorrect Verdict = "INCORRECT"
)

// DisputeStatus tracks dispute resolution. Disputes are resolved
// synchronously in this design, so persisted rows are always resolved.
type DisputeStatus string

const (
	DisputeStatusPending  DisputeStatus = "pending"
	DisputeStatusResolved DisputeStatus = "resolved"
)

// ValidationResult is the deterministic verdict produced by re-evaluating
// a bet's timing against market close. The attestation stands in for a
// trusted-execution signature over the verdict.
type ValidationResult struct {
	Verdict         Verdict   `json:"verdict"`
	Explanation     string    `json:"explanation"`
	LatencyFault    bool      `json:"latency_fault"` // Rejection caused by network delay, not true lateness
	Attestation     string    `json:"attestation"`
	BetPlacedAt     time.Time `json:"bet_placed_at"`
	MarketCloseTime time.Time `json:"market_close_time"`
	LatencyMs       int64     `json:"latency_ms"`
}

// Dispute is an immutable record of a post-hoc challenge against a bet,
// embedding the validation result. One bet may accumulate many disputes.
type Dispute struct {
	ID         uuid.UUID        `json:"id"`
	BetID      string           `json:"bet_id"`
	Reason     string           `json:"reason"`
	Status     DisputeStatus    `json:"status"`
	Result     ValidationResult `json:"result"`
	CreatedAt  time.Time        `json:"created_at"`
	ResolvedAt *time.Time       `json:"resolved_at,omitempty"`
}
