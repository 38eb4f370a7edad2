package domain

import "time"

// Validation and feedback type tags recorded against a settlement agent.
const (
	ValidationTypePaymentIntent = "PAYMENT_INTENT"
	FeedbackTypeSuccess         = "PAYMENT_SETTLEMENT_SUCCESS"
	FeedbackTypeFailure         = "PAYMENT_SETTLEMENT_FAILURE"
	FeedbackTypeDispute         = "DISPUTE_FILED"
)

// ValidationRecord is an append-only entry noting that an agent validated
// a payment intent. Never mutated or deleted.
type ValidationRecord struct {
	ID             string    `json:"id"`
	TraceID        string    `json:"trace_id"`
	Agent          string    `json:"agent"`
	ValidationType string    `json:"validation_type"`
	Metadata       []byte    `json:"metadata,omitempty"` // JSON blob
	CreatedAt      time.Time `json:"created_at"`
}

// FeedbackRecord is an append-only rating of an agent's settlement
// performance. Rating is in [0, 1].
type FeedbackRecord struct {
	ID           string    `json:"id"`
	TraceID      string    `json:"trace_id"`
	Agent        string    `json:"agent"`
	Rating       float64   `json:"rating"`
	FeedbackType string    `json:"feedback_type"`
	Proof        []byte    `json:"proof,omitempty"` // JSON blob
	CreatedAt    time.Time `json:"created_at"`
}

// Reputation is the derived (never stored) aggregate view of an agent's
// feedback history.
type Reputation struct {
	Agent                 string  `json:"agent"`
	Score                 float64 `json:"score"` // Mean rating
	TotalSettlements      int64   `json:"total_settlements"`
	SuccessfulSettlements int64   `json:"successful_settlements"`
	SuccessRate           float64 `json:"success_rate"`
	RecentDisputes        int64   `json:"recent_disputes"`
}

// IsTrusted reports whether the agent clears the trust bar used by the
// facilitator status surface.
func (r *Reputation) IsTrusted() bool {
	return r.SuccessRate > 0.95
}
