package domain

import "time"

// SettlementStatus represents the lifecycle state of a payment trace.
type SettlementStatus string

const (
	SettlementStatusPending   SettlementStatus = "PENDING"
	SettlementStatusConfirmed SettlementStatus = "CONFIRMED"
	SettlementStatusFailed    SettlementStatus = "FAILED"
)

// PaymentTrace is an append-only ledger row pairing a payment intent with
// its eventual fiat settlement outcome. The intent timestamp is immutable;
// the settlement fields are written exactly once.
type PaymentTrace struct {
	TraceID             string           `json:"trace_id"`
	Payer               string           `json:"payer"`
	Payee               string           `json:"payee"`
	Amount              int64            `json:"amount"` // In smallest unit (centavos)
	Currency            string           `json:"currency"`
	IntentTimestamp     time.Time        `json:"intent_timestamp"`
	SettlementTimestamp *time.Time       `json:"settlement_timestamp,omitempty"`
	SettlementStatus    SettlementStatus `json:"settlement_status"`
	FiatReferenceHash   *string          `json:"fiat_reference_hash,omitempty"` // SHA-256 of the external tx ref
	LedgerReference     string           `json:"ledger_reference"`
	ValidationID        *string          `json:"validation_id,omitempty"`
	FeedbackID          *string          `json:"feedback_id,omitempty"`
}

// IsSettled returns true once the trace has a terminal settlement outcome.
func (t *PaymentTrace) IsSettled() bool {
	return t.SettlementStatus == SettlementStatusConfirmed ||
		t.SettlementStatus == SettlementStatusFailed
}

// LatencyMs returns the intent-to-settlement latency in milliseconds,
// or 0 if the trace is not settled yet.
func (t *PaymentTrace) LatencyMs() int64 {
	if t.SettlementTimestamp == nil {
		return 0
	}
	return t.SettlementTimestamp.Sub(t.IntentTimestamp).Milliseconds()
}
