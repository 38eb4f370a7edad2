package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bet-settlement-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerkleRepo implements ports.MerkleRepository. Bet id order and proof
// paths are stored as JSONB so verification reads back exactly what the
// commit computed.
type MerkleRepo struct {
	pool Pool
}

// NewMerkleRepo creates a new MerkleRepo.
func NewMerkleRepo(pool Pool) *MerkleRepo {
	return &MerkleRepo{pool: pool}
}

// CreateCommit inserts a batch commit within a database transaction.
func (r *MerkleRepo) CreateCommit(ctx context.Context, tx pgx.Tx, c *domain.MerkleCommit) error {
	betIDs, err := json.Marshal(c.BetIDs)
	if err != nil {
		return fmt.Errorf("marshal bet ids: %w", err)
	}

	query := `INSERT INTO merkle_commits (id, batch_id, root, bet_ids, ledger_reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := tx.Exec(ctx, query, c.ID, c.BatchID, c.Root, betIDs, c.LedgerReference, c.CreatedAt); err != nil {
		return fmt.Errorf("insert merkle commit: %w", err)
	}
	return nil
}

// CreateProofs inserts the per-leaf inclusion proofs of a commit.
func (r *MerkleRepo) CreateProofs(ctx context.Context, tx pgx.Tx, proofs []domain.MerkleProof) error {
	query := `INSERT INTO merkle_proofs (bet_id, commit_id, leaf_hash, path)
		VALUES ($1, $2, $3, $4)`

	for _, p := range proofs {
		path, err := json.Marshal(p.Path)
		if err != nil {
			return fmt.Errorf("marshal proof path: %w", err)
		}
		if _, err := tx.Exec(ctx, query, p.BetID, p.CommitID, p.LeafHash, path); err != nil {
			return fmt.Errorf("insert merkle proof: %w", err)
		}
	}
	return nil
}

// GetLatestProofByBetID fetches the bet's proof from its most recent
// commit, or nil, nil when the bet was never anchored.
func (r *MerkleRepo) GetLatestProofByBetID(ctx context.Context, betID string) (*domain.MerkleProof, error) {
	query := `SELECT p.bet_id, p.commit_id, p.leaf_hash, p.path
		FROM merkle_proofs p JOIN merkle_commits c ON c.id = p.commit_id
		WHERE p.bet_id = $1 ORDER BY c.created_at DESC LIMIT 1`

	p := &domain.MerkleProof{}
	var path []byte
	err := r.pool.QueryRow(ctx, query, betID).Scan(&p.BetID, &p.CommitID, &p.LeafHash, &path)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan merkle proof: %w", err)
	}
	if err := json.Unmarshal(path, &p.Path); err != nil {
		return nil, fmt.Errorf("unmarshal proof path: %w", err)
	}
	return p, nil
}

// GetCommitByID fetches a commit by id, or nil, nil.
func (r *MerkleRepo) GetCommitByID(ctx context.Context, id uuid.UUID) (*domain.MerkleCommit, error) {
	query := `SELECT id, batch_id, root, bet_ids, ledger_reference, created_at
		FROM merkle_commits WHERE id = $1`
	return r.scanCommit(r.pool.QueryRow(ctx, query, id))
}

// GetCommitByRoot fetches a commit by its root hash, or nil, nil.
func (r *MerkleRepo) GetCommitByRoot(ctx context.Context, root string) (*domain.MerkleCommit, error) {
	query := `SELECT id, batch_id, root, bet_ids, ledger_reference, created_at
		FROM merkle_commits WHERE root = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanCommit(r.pool.QueryRow(ctx, query, root))
}

// ListCommitsByBatch fetches all commits for a batch, newest first.
func (r *MerkleRepo) ListCommitsByBatch(ctx context.Context, batchID string) ([]domain.MerkleCommit, error) {
	query := `SELECT id, batch_id, root, bet_ids, ledger_reference, created_at
		FROM merkle_commits WHERE batch_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list commits by batch: %w", err)
	}
	defer rows.Close()

	var commits []domain.MerkleCommit
	for rows.Next() {
		var c domain.MerkleCommit
		var betIDs []byte
		if err := rows.Scan(&c.ID, &c.BatchID, &c.Root, &betIDs, &c.LedgerReference, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan commit row: %w", err)
		}
		if err := json.Unmarshal(betIDs, &c.BetIDs); err != nil {
			return nil, fmt.Errorf("unmarshal bet ids: %w", err)
		}
		commits = append(commits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commit rows: %w", err)
	}
	return commits, nil
}

func (r *MerkleRepo) scanCommit(row pgx.Row) (*domain.MerkleCommit, error) {
	c := &domain.MerkleCommit{}
	var betIDs []byte
	err := row.Scan(&c.ID, &c.BatchID, &c.Root, &betIDs, &c.LedgerReference, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan commit: %w", err)
	}
	if err := json.Unmarshal(betIDs, &c.BetIDs); err != nil {
		return nil, fmt.Errorf("unmarshal bet ids: %w", err)
	}
	return c, nil
}
