package ports

import (
	"context"
	"time"

	"bet-settlement-gateway/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// SettlementRecord is the outcome of recording a settlement on a trace.
// AlreadySettled marks an idempotent repeat: the prior outcome is
// returned unchanged and nothing was written.
type SettlementRecord struct {
	Trace          *domain.PaymentTrace
	LatencyMs      int64
	AlreadySettled bool
}

// TraceRegistry is the append-only ledger of payment intents and their
// settlement outcomes; the source of latency truth.
type TraceRegistry interface {
	RecordIntent(ctx context.Context, payer, payee string, amount int64, currency string) (*domain.PaymentTrace, error)
	RecordSettlement(ctx context.Context, traceID, externalTxRef string, status domain.SettlementStatus) (*SettlementRecord, error)
	GetTrace(ctx context.Context, traceID string) (*domain.PaymentTrace, error)
	GetTracesByPayer(ctx context.Context, payer string) ([]domain.PaymentTrace, error)
	VerifySettlement(ctx context.Context, traceID string) (confirmed bool, latencyMs int64, err error)
	LinkValidation(ctx context.Context, traceID, validationID string) error
	LinkFeedback(ctx context.Context, traceID, feedbackID string) error
}

// ReputationRegistry is the append-only validation/feedback log per
// settlement agent.
type ReputationRegistry interface {
	SubmitValidation(ctx context.Context, traceID, agent, validationType string, metadata map[string]any) (string, error)
	SubmitFeedback(ctx context.Context, traceID, agent string, rating float64, feedbackType string, proof map[string]any) (string, error)
	ReputationOf(ctx context.Context, agent string) (*domain.Reputation, error)
}

// AccessGrantResult pairs a persisted grant with its capability token.
type AccessGrantResult struct {
	Grant     *domain.AccessGrant
	Token     string
	ExpiresAt time.Time // Zero for FULL grants
}

// AccessController issues and transitions time-bounded access grants.
type AccessController interface {
	GrantProvisional(ctx context.Context, subjectID, traceID, betID string) (*AccessGrantResult, error)
	UpgradeToFull(ctx context.Context, subjectID, traceID string) (*AccessGrantResult, error)
	Revoke(ctx context.Context, traceID string, reason string) error
	GrantFor(ctx context.Context, traceID string) (*domain.AccessGrant, error)
	GrantsForSubject(ctx context.Context, subjectID string) ([]domain.AccessGrant, error)
	// RevokeExpired sweeps ACTIVE PROVISIONAL grants whose window elapsed,
	// returning how many were revoked.
	RevokeExpired(ctx context.Context, asOf time.Time) (int, error)
}

// MerkleAnchor batches finalized bet records into a Merkle tree and
// commits the root with a verifiable per-bet proof.
type MerkleAnchor interface {
	Commit(ctx context.Context, batchID string, betIDs []string) (*domain.MerkleCommit, error)
	Verify(ctx context.Context, betID string, expectedRoot string) (*domain.InclusionResult, error)
	CommitsFor(ctx context.Context, batchID string) ([]domain.MerkleCommit, error)
	CommitByRoot(ctx context.Context, root string) (*domain.MerkleCommit, error)
}

// DisputeResolver deterministically re-evaluates bet timing against
// market close and issues a signed verdict.
type DisputeResolver interface {
	Validate(ctx context.Context, betID string) (*domain.ValidationResult, error)
	CreateDispute(ctx context.Context, betID, reason string) (*domain.Dispute, error)
	DisputesFor(ctx context.Context, betID string) ([]domain.Dispute, error)
	DisputesForBatch(ctx context.Context, batchID string) ([]domain.Dispute, error)
}

// IntentRequest is the validated input for processing a payment intent.
type IntentRequest struct {
	Intent    domain.PaymentIntent
	SubjectID string
	BetID     string
	MarketID  string
}

// IntentResult reports that settlement dispatch was accepted, not that
// money moved.
type IntentResult struct {
	TraceID     string             `json:"trace_id"`
	Status      string             `json:"status"` // SETTLEMENT_INITIATED
	AccessLevel domain.AccessLevel `json:"access_level"`
	AccessToken string             `json:"access_token"`
}

// ConfirmationRequest is the settlement backend's confirmation callback
// payload. Delivery is at-least-once.
type ConfirmationRequest struct {
	TraceID       string
	ExternalTxRef string
	Backend       string
	Status        domain.SettlementStatus
}

// ConfirmationResult is the outcome of a settlement confirmation.
type ConfirmationResult struct {
	TraceID           string             `json:"trace_id"`
	Status            string             `json:"status"`
	AccessLevel       domain.AccessLevel `json:"access_level"`
	LatencyMs         int64              `json:"latency_ms"`
	FiatReferenceHash string             `json:"fiat_reference_hash,omitempty"`
	Timestamp         time.Time          `json:"timestamp"`
}

// FacilitatorStatus is the public view of the settlement agent.
type FacilitatorStatus struct {
	AgentID    string             `json:"agent_id"`
	Status     string             `json:"status"`
	Reputation *domain.Reputation `json:"reputation"`
	Trusted    bool               `json:"trusted"`
}

// SettlementOrchestrator sequences intent recording, settlement dispatch,
// confirmation handling, and access transitions.
type SettlementOrchestrator interface {
	ProcessIntent(ctx context.Context, req IntentRequest) (*IntentResult, error)
	ConfirmSettlement(ctx context.Context, req ConfirmationRequest) (*ConfirmationResult, error)
	Status(ctx context.Context) (*FacilitatorStatus, error)
}

// --- Capability Ports ---

// AccessClaims holds the parsed capability token claims.
type AccessClaims struct {
	SubjectID string
	TraceID   string
	BetID     string
	Level     domain.AccessLevel
}

// TokenService issues and validates signed, time-limited capability
// tokens embedding subject, trace, level, and bet reference.
type TokenService interface {
	Generate(subjectID, traceID, betID string, level domain.AccessLevel) (string, time.Time, error)
	Validate(token string) (*AccessClaims, error)
}

// AttestationSigner produces and checks attestation proofs over dispute
// verdicts. Implementations decide the actual scheme; the permissive
// checker lives only in test doubles.
type AttestationSigner interface {
	Sign(payload string) string
	Verify(payload string, proof string) bool
}

// ConfirmationCache is the fast-path idempotency check for settlement
// confirmations (at-least-once webhook delivery).
type ConfirmationCache interface {
	Get(ctx context.Context, traceID string) ([]byte, error) // Returns cached result JSON or nil
	Set(ctx context.Context, traceID string, value []byte, ttl time.Duration) error
}
