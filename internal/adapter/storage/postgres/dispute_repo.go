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

// DisputeRepo implements ports.DisputeRepository. The validation result
// is stored as JSONB alongside the dispute row.
type DisputeRepo struct {
	pool Pool
}

// NewDisputeRepo creates a new DisputeRepo.
func NewDisputeRepo(pool Pool) *DisputeRepo {
	return &DisputeRepo{pool: pool}
}

// Create inserts a resolved dispute.
func (r *DisputeRepo) Create(ctx context.Context, d *domain.Dispute) error {
	result, err := json.Marshal(d.Result)
	if err != nil {
		return fmt.Errorf("marshal dispute result: %w", err)
	}

	query := `INSERT INTO disputes (id, bet_id, reason, status, result, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.pool.Exec(ctx, query, d.ID, d.BetID, d.Reason, d.Status, result, d.CreatedAt, d.ResolvedAt); err != nil {
		return fmt.Errorf("insert dispute: %w", err)
	}
	return nil
}

// GetByID fetches a dispute by id, or nil, nil.
func (r *DisputeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dispute, error) {
	query := `SELECT id, bet_id, reason, status, result, created_at, resolved_at
		FROM disputes WHERE id = $1`

	d := &domain.Dispute{}
	var result []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.BetID, &d.Reason, &d.Status, &result, &d.CreatedAt, &d.ResolvedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan dispute: %w", err)
	}
	if err := json.Unmarshal(result, &d.Result); err != nil {
		return nil, fmt.Errorf("unmarshal dispute result: %w", err)
	}
	return d, nil
}

// ListByBetID fetches all disputes filed against a bet, newest first.
func (r *DisputeRepo) ListByBetID(ctx context.Context, betID string) ([]domain.Dispute, error) {
	query := `SELECT id, bet_id, reason, status, result, created_at, resolved_at
		FROM disputes WHERE bet_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, betID)
	if err != nil {
		return nil, fmt.Errorf("list disputes by bet: %w", err)
	}
	defer rows.Close()
	return r.collectDisputes(rows)
}

// ListByBetIDs fetches disputes across a set of bets, newest first.
func (r *DisputeRepo) ListByBetIDs(ctx context.Context, betIDs []string) ([]domain.Dispute, error) {
	query := `SELECT id, bet_id, reason, status, result, created_at, resolved_at
		FROM disputes WHERE bet_id = ANY($1) ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, betIDs)
	if err != nil {
		return nil, fmt.Errorf("list disputes by bets: %w", err)
	}
	defer rows.Close()
	return r.collectDisputes(rows)
}

func (r *DisputeRepo) collectDisputes(rows pgx.Rows) ([]domain.Dispute, error) {
	var disputes []domain.Dispute
	for rows.Next() {
		var d domain.Dispute
		var result []byte
		if err := rows.Scan(&d.ID, &d.BetID, &d.Reason, &d.Status, &result, &d.CreatedAt, &d.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan dispute row: %w", err)
		}
		if err := json.Unmarshal(result, &d.Result); err != nil {
			return nil, fmt.Errorf("unmarshal dispute result: %w", err)
		}
		disputes = append(disputes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispute rows: %w", err)
	}
	return disputes, nil
}
