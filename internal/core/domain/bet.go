package domain

import "time"

// BetStatus mirrors the betting collaborator's bet lifecycle. This core
// owns only the settlement-derived transition (pending -> accepted) and
// the rejection applied on revocation.
type BetStatus string

const (
	BetStatusPending  BetStatus = "pending"
	BetStatusAccepted BetStatus = "accepted"
	BetStatusRejected BetStatus = "rejected"
	BetStatusWon      BetStatus = "won"
	BetStatusLost     BetStatus = "lost"
)

// Bet is the read view of the betting collaborator's bet record.
type Bet struct {
	BetID            string      `json:"bet_id"`
	SubjectID        string      `json:"subject_id"`
	MarketID         string      `json:"market_id"`
	Amount           int64       `json:"amount"`
	Odds             float64     `json:"odds"`
	Status           BetStatus   `json:"status"`
	PlacedAt         time.Time   `json:"placed_at"`
	ServerReceivedAt time.Time   `json:"server_received_at"`
	LatencyMs        int64       `json:"latency_ms"`
	TraceID          *string     `json:"trace_id,omitempty"`
	AccessLevel      AccessLevel `json:"access_level"`
	AnchorProof      *string     `json:"anchor_proof,omitempty"`
	ConfirmedAt      *time.Time  `json:"confirmed_at,omitempty"`
}

// Market is the read view of the collaborator's market record. A nil
// CloseTime means the market never formally closed.
type Market struct {
	ID        string     `json:"id"`
	BatchID   string     `json:"batch_id"` // Event the market belongs to
	Status    string     `json:"status"`
	CloseTime *time.Time `json:"close_time,omitempty"`
}

// PaymentIntent is the signed payment promise submitted alongside a bet.
// The signature is checked for shape only; real verification is behind
// the attestation signer abstraction.
type PaymentIntent struct {
	IntentID  string `json:"intent_id"`
	Payer     string `json:"payer"`
	Payee     string `json:"payee"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Nonce     int64  `json:"nonce"`
	Signature string `json:"signature"`
}

// HasWellFormedSignature reports whether the intent signature looks like
// a hex-encoded secp256k1 signature (0x prefix, 65+ bytes encoded).
func (p *PaymentIntent) HasWellFormedSignature() bool {
	return len(p.Signature) >= 66 && p.Signature[:2] == "0x"
}
