package events

import "time"

// SettlementConfirmed is emitted after a fiat backend confirms a
// settlement and the bet has been accepted.
type SettlementConfirmed struct {
	TraceID     string    `json:"traceId"`
	BetID       string    `json:"betId"`
	SubjectID   string    `json:"subjectId"`
	Backend     string    `json:"backend"`
	LatencyMs   int64     `json:"latencyMs"`
	AccessLevel string    `json:"accessLevel"`
	Ts          time.Time `json:"ts"`
}

// SettlementRevoked is emitted when a provisional grant is revoked by
// backend failure or expiry and the wager refunded.
type SettlementRevoked struct {
	TraceID   string    `json:"traceId"`
	BetID     string    `json:"betId"`
	SubjectID string    `json:"subjectId"`
	Reason    string    `json:"reason"` // "failed" | "expired"
	Refund    int64     `json:"refund"`
	Ts        time.Time `json:"ts"`
}
