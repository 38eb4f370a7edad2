package dto

import "time"

// IntentRequest is the request body for submitting a payment intent
// alongside a bet.
type IntentRequest struct {
	IntentID  string `json:"intent_id" binding:"required,max=100"`
	Payer     string `json:"payer" binding:"required,max=100"`
	Payee     string `json:"payee" binding:"required,max=100"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Currency  string `json:"currency" binding:"required,len=3"`
	Nonce     int64  `json:"nonce"`
	Signature string `json:"signature" binding:"required"`
	SubjectID string `json:"subject_id" binding:"required,max=100"`
	BetID     string `json:"bet_id" binding:"required,max=100"`
	MarketID  string `json:"market_id" binding:"required,max=100"`
}

// ConfirmationRequest is the settlement backend's webhook body.
type ConfirmationRequest struct {
	TraceID       string `json:"trace_id" binding:"required"`
	ExternalTxRef string `json:"external_tx_ref"`
	Backend       string `json:"backend" binding:"required"`
	Status        string `json:"status" binding:"required,oneof=CONFIRMED FAILED"`
}

// ValidationRequest is the request body for submitting a validation record.
type ValidationRequest struct {
	TraceID        string         `json:"trace_id" binding:"required"`
	Agent          string         `json:"agent" binding:"required,max=100"`
	ValidationType string         `json:"validation_type" binding:"required,max=50"`
	Metadata       map[string]any `json:"metadata"`
}

// FeedbackRequest is the request body for submitting a feedback record.
type FeedbackRequest struct {
	TraceID      string         `json:"trace_id" binding:"required"`
	Agent        string         `json:"agent" binding:"required,max=100"`
	Rating       *float64       `json:"rating" binding:"required"`
	FeedbackType string         `json:"feedback_type" binding:"required,max=50"`
	Proof        map[string]any `json:"proof"`
}

// CommitRequest is the request body for anchoring a bet batch.
type CommitRequest struct {
	BatchID string   `json:"batch_id" binding:"required,max=100"`
	BetIDs  []string `json:"bet_ids" binding:"required"`
}

// VerifyInclusionRequest asks whether a bet is included under a root.
// An empty root only checks that an anchored proof exists.
type VerifyInclusionRequest struct {
	BetID string `json:"bet_id" binding:"required"`
	Root  string `json:"root"`
}

// DisputeRequest is the request body for filing a dispute.
type DisputeRequest struct {
	BetID  string `json:"bet_id" binding:"required,max=100"`
	Reason string `json:"reason" binding:"required,max=500"`
}

// RecordResponse returns the id of an appended record.
type RecordResponse struct {
	ID string `json:"id"`
}

// TraceResponse is the public view of a payment trace.
type TraceResponse struct {
	TraceID             string     `json:"trace_id"`
	Payer               string     `json:"payer"`
	Payee               string     `json:"payee"`
	Amount              int64      `json:"amount"`
	Currency            string     `json:"currency"`
	IntentTimestamp     time.Time  `json:"intent_timestamp"`
	SettlementTimestamp *time.Time `json:"settlement_timestamp,omitempty"`
	SettlementStatus    string     `json:"settlement_status"`
	FiatReferenceHash   *string    `json:"fiat_reference_hash,omitempty"`
	LedgerReference     string     `json:"ledger_reference"`
	LatencyMs           int64      `json:"latency_ms"`
}

// SettlementVerification reports whether a trace settled and how fast.
type SettlementVerification struct {
	TraceID   string `json:"trace_id"`
	Confirmed bool   `json:"confirmed"`
	LatencyMs int64  `json:"latency_ms"`
}

// GrantResponse is the public view of an access grant.
type GrantResponse struct {
	ID        string     `json:"id"`
	SubjectID string     `json:"subject_id"`
	TraceID   string     `json:"trace_id"`
	BetID     string     `json:"bet_id"`
	Level     string     `json:"level"`
	Status    string     `json:"status"`
	GrantedAt time.Time  `json:"granted_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// TokenClaimsResponse echoes the validated capability token claims.
type TokenClaimsResponse struct {
	SubjectID string `json:"subject_id"`
	TraceID   string `json:"trace_id"`
	BetID     string `json:"bet_id"`
	Level     string `json:"level"`
}

// BetOutcomeResponse is the token-gated view of a bet's outcome.
type BetOutcomeResponse struct {
	BetID       string     `json:"bet_id"`
	Status      string     `json:"status"`
	AccessLevel string     `json:"access_level"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	AnchorProof *string    `json:"anchor_proof,omitempty"`
}

// CommitResponse is the public view of a Merkle commit.
type CommitResponse struct {
	ID              string    `json:"id"`
	BatchID         string    `json:"batch_id"`
	Root            string    `json:"root"`
	BetCount        int       `json:"bet_count"`
	LedgerReference string    `json:"ledger_reference"`
	CreatedAt       time.Time `json:"created_at"`
}
