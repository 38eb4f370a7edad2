package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bet-settlement-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Trace Repo ---

type inMemoryTraceRepo struct {
	mu     sync.RWMutex
	traces map[string]*domain.PaymentTrace
}

func newInMemoryTraceRepo() *inMemoryTraceRepo {
	return &inMemoryTraceRepo{traces: make(map[string]*domain.PaymentTrace)}
}

func (r *inMemoryTraceRepo) Create(ctx context.Context, t *domain.PaymentTrace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.traces[t.TraceID]; ok {
		return fmt.Errorf("trace already exists")
	}
	copied := *t
	r.traces[t.TraceID] = &copied
	return nil
}

func (r *inMemoryTraceRepo) GetByTraceID(ctx context.Context, traceID string) (*domain.PaymentTrace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.traces[traceID]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *inMemoryTraceRepo) GetByTraceIDForUpdate(ctx context.Context, tx pgx.Tx, traceID string) (*domain.PaymentTrace, error) {
	return r.GetByTraceID(ctx, traceID)
}

func (r *inMemoryTraceRepo) RecordSettlement(ctx context.Context, tx pgx.Tx, traceID string, settledAt time.Time, refHash string, status domain.SettlementStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.traces[traceID]
	if !ok {
		return fmt.Errorf("trace not found: %s", traceID)
	}
	if t.SettlementStatus != domain.SettlementStatusPending {
		return fmt.Errorf("trace not pending: %s", traceID)
	}
	t.SettlementTimestamp = &settledAt
	t.FiatReferenceHash = &refHash
	t.SettlementStatus = status
	return nil
}

func (r *inMemoryTraceRepo) SetValidationID(ctx context.Context, traceID, validationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.traces[traceID]; ok {
		t.ValidationID = &validationID
	}
	return nil
}

func (r *inMemoryTraceRepo) SetFeedbackID(ctx context.Context, traceID, feedbackID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.traces[traceID]; ok {
		t.FeedbackID = &feedbackID
	}
	return nil
}

func (r *inMemoryTraceRepo) ListByPayer(ctx context.Context, payer string) ([]domain.PaymentTrace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentTrace
	for _, t := range r.traces {
		if t.Payer == payer {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].IntentTimestamp.After(out[j].IntentTimestamp)
	})
	return out, nil
}

// --- In-Memory Grant Repo ---

type inMemoryGrantRepo struct {
	mu     sync.RWMutex
	grants map[uuid.UUID]*domain.AccessGrant
}

func newInMemoryGrantRepo() *inMemoryGrantRepo {
	return &inMemoryGrantRepo{grants: make(map[uuid.UUID]*domain.AccessGrant)}
}

func (r *inMemoryGrantRepo) Create(ctx context.Context, g *domain.AccessGrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.grants {
		if existing.TraceID == g.TraceID && existing.Status == domain.GrantStatusActive {
			return fmt.Errorf("active grant already exists for trace %s", g.TraceID)
		}
	}
	copied := *g
	r.grants[g.ID] = &copied
	return nil
}

func (r *inMemoryGrantRepo) GetActiveByTraceID(ctx context.Context, traceID string) (*domain.AccessGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.grants {
		if g.TraceID == traceID && g.Status == domain.GrantStatusActive {
			copied := *g
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryGrantRepo) GetByTraceIDForUpdate(ctx context.Context, tx pgx.Tx, traceID string) (*domain.AccessGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *domain.AccessGrant
	for _, g := range r.grants {
		if g.TraceID != traceID {
			continue
		}
		if latest == nil || g.GrantedAt.After(latest.GrantedAt) {
			latest = g
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (r *inMemoryGrantRepo) Upgrade(ctx context.Context, tx pgx.Tx, id uuid.UUID, upgradedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.grants[id]
	if !ok || g.Status != domain.GrantStatusActive {
		return fmt.Errorf("grant not active: %s", id)
	}
	g.Level = domain.AccessLevelFull
	g.UpgradedAt = &upgradedAt
	g.ExpiresAt = nil
	return nil
}

func (r *inMemoryGrantRepo) Revoke(ctx context.Context, id uuid.UUID, revokedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.grants[id]
	if !ok || g.Status != domain.GrantStatusActive || g.Level != domain.AccessLevelProvisional {
		return false, nil
	}
	g.Level = domain.AccessLevelRevoked
	g.Status = domain.GrantStatusRevoked
	g.RevokedAt = &revokedAt
	return true, nil
}

func (r *inMemoryGrantRepo) ListBySubject(ctx context.Context, subjectID string) ([]domain.AccessGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AccessGrant
	for _, g := range r.grants {
		if g.SubjectID == subjectID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GrantedAt.After(out[j].GrantedAt)
	})
	return out, nil
}

func (r *inMemoryGrantRepo) ListExpiredProvisional(ctx context.Context, asOf time.Time, limit int) ([]domain.AccessGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AccessGrant
	for _, g := range r.grants {
		if g.Status == domain.GrantStatusActive && g.Level == domain.AccessLevelProvisional &&
			g.ExpiresAt != nil && g.ExpiresAt.Before(asOf) {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExpiresAt.Before(*out[j].ExpiresAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Reputation Repo ---

type inMemoryReputationRepo struct {
	mu          sync.RWMutex
	validations []domain.ValidationRecord
	feedback    []domain.FeedbackRecord
}

func newInMemoryReputationRepo() *inMemoryReputationRepo {
	return &inMemoryReputationRepo{}
}

func (r *inMemoryReputationRepo) CreateValidation(ctx context.Context, rec *domain.ValidationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validations = append(r.validations, *rec)
	return nil
}

func (r *inMemoryReputationRepo) CreateFeedback(ctx context.Context, rec *domain.FeedbackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback = append(r.feedback, *rec)
	return nil
}

func (r *inMemoryReputationRepo) ListFeedbackByAgent(ctx context.Context, agent string) ([]domain.FeedbackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.FeedbackRecord
	for _, rec := range r.feedback {
		if rec.Agent == agent {
			out = append(out, rec)
		}
	}
	return out, nil
}

// --- In-Memory Merkle Repo ---

type inMemoryMerkleRepo struct {
	mu      sync.RWMutex
	commits map[uuid.UUID]*domain.MerkleCommit
	proofs  []domain.MerkleProof
}

func newInMemoryMerkleRepo() *inMemoryMerkleRepo {
	return &inMemoryMerkleRepo{commits: make(map[uuid.UUID]*domain.MerkleCommit)}
}

func (r *inMemoryMerkleRepo) CreateCommit(ctx context.Context, tx pgx.Tx, c *domain.MerkleCommit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *c
	r.commits[c.ID] = &copied
	return nil
}

func (r *inMemoryMerkleRepo) CreateProofs(ctx context.Context, tx pgx.Tx, proofs []domain.MerkleProof) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.proofs = append(r.proofs, proofs...)
	return nil
}

func (r *inMemoryMerkleRepo) GetLatestProofByBetID(ctx context.Context, betID string) (*domain.MerkleProof, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.proofs) - 1; i >= 0; i-- {
		if r.proofs[i].BetID == betID {
			copied := r.proofs[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerkleRepo) GetCommitByID(ctx context.Context, id uuid.UUID) (*domain.MerkleCommit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commits[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *inMemoryMerkleRepo) GetCommitByRoot(ctx context.Context, root string) (*domain.MerkleCommit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.commits {
		if c.Root == root {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerkleRepo) ListCommitsByBatch(ctx context.Context, batchID string) ([]domain.MerkleCommit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.MerkleCommit
	for _, c := range r.commits {
		if c.BatchID == batchID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// --- In-Memory Dispute Repo ---

type inMemoryDisputeRepo struct {
	mu       sync.RWMutex
	disputes []domain.Dispute
}

func newInMemoryDisputeRepo() *inMemoryDisputeRepo {
	return &inMemoryDisputeRepo{}
}

func (r *inMemoryDisputeRepo) Create(ctx context.Context, d *domain.Dispute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disputes = append(r.disputes, *d)
	return nil
}

func (r *inMemoryDisputeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.disputes {
		if d.ID == id {
			copied := d
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryDisputeRepo) ListByBetID(ctx context.Context, betID string) ([]domain.Dispute, error) {
	return r.ListByBetIDs(ctx, []string{betID})
}

func (r *inMemoryDisputeRepo) ListByBetIDs(ctx context.Context, betIDs []string) ([]domain.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wanted := make(map[string]bool, len(betIDs))
	for _, id := range betIDs {
		wanted[id] = true
	}
	var out []domain.Dispute
	for _, d := range r.disputes {
		if wanted[d.BetID] {
			out = append(out, d)
		}
	}
	return out, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
