package ports

import (
	"context"
	"time"

	"bet-settlement-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TraceRepository defines persistence for the append-only payment trace
// ledger. Methods accepting pgx.Tx run inside transaction blocks so a
// trace's settlement mutation is a single locked read-modify-write.
type TraceRepository interface {
	Create(ctx context.Context, trace *domain.PaymentTrace) error
	GetByTraceID(ctx context.Context, traceID string) (*domain.PaymentTrace, error)
	GetByTraceIDForUpdate(ctx context.Context, tx pgx.Tx, traceID string) (*domain.PaymentTrace, error)
	RecordSettlement(ctx context.Context, tx pgx.Tx, traceID string, settledAt time.Time, refHash string, status domain.SettlementStatus) error
	SetValidationID(ctx context.Context, traceID string, validationID string) error
	SetFeedbackID(ctx context.Context, traceID string, feedbackID string) error
	ListByPayer(ctx context.Context, payer string) ([]domain.PaymentTrace, error)
}

// GrantRepository defines persistence for access grants.
type GrantRepository interface {
	Create(ctx context.Context, grant *domain.AccessGrant) error
	GetActiveByTraceID(ctx context.Context, traceID string) (*domain.AccessGrant, error)
	GetByTraceIDForUpdate(ctx context.Context, tx pgx.Tx, traceID string) (*domain.AccessGrant, error)
	Upgrade(ctx context.Context, tx pgx.Tx, id uuid.UUID, upgradedAt time.Time) error
	// Revoke applies the ACTIVE -> REVOKED transition. It returns true only
	// for the caller that actually flipped the row, so refunds happen once.
	Revoke(ctx context.Context, id uuid.UUID, revokedAt time.Time) (bool, error)
	ListBySubject(ctx context.Context, subjectID string) ([]domain.AccessGrant, error)
	ListExpiredProvisional(ctx context.Context, asOf time.Time, limit int) ([]domain.AccessGrant, error)
}

// ReputationRepository defines append-only persistence for validation and
// feedback records. Rows are never updated or deleted.
type ReputationRepository interface {
	CreateValidation(ctx context.Context, rec *domain.ValidationRecord) error
	CreateFeedback(ctx context.Context, rec *domain.FeedbackRecord) error
	ListFeedbackByAgent(ctx context.Context, agent string) ([]domain.FeedbackRecord, error)
}

// MerkleRepository defines persistence for batch commits and per-leaf
// inclusion proofs.
type MerkleRepository interface {
	CreateCommit(ctx context.Context, tx pgx.Tx, commit *domain.MerkleCommit) error
	CreateProofs(ctx context.Context, tx pgx.Tx, proofs []domain.MerkleProof) error
	GetLatestProofByBetID(ctx context.Context, betID string) (*domain.MerkleProof, error)
	GetCommitByID(ctx context.Context, id uuid.UUID) (*domain.MerkleCommit, error)
	GetCommitByRoot(ctx context.Context, root string) (*domain.MerkleCommit, error)
	ListCommitsByBatch(ctx context.Context, batchID string) ([]domain.MerkleCommit, error)
}

// DisputeRepository defines persistence for resolved disputes.
type DisputeRepository interface {
	Create(ctx context.Context, dispute *domain.Dispute) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dispute, error)
	ListByBetID(ctx context.Context, betID string) ([]domain.Dispute, error)
	ListByBetIDs(ctx context.Context, betIDs []string) ([]domain.Dispute, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
