package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GrantRepo implements ports.GrantRepository.
type GrantRepo struct {
	pool Pool
}

// NewGrantRepo creates a new GrantRepo.
func NewGrantRepo(pool Pool) *GrantRepo {
	return &GrantRepo{pool: pool}
}

const grantColumns = `id, subject_id, trace_id, bet_id, level, granted_at,
	upgraded_at, expires_at, revoked_at, status`

// Create inserts a new access grant. A partial unique index on
// (trace_id) WHERE status = 'ACTIVE' enforces at most one ACTIVE grant
// per trace.
func (r *GrantRepo) Create(ctx context.Context, g *domain.AccessGrant) error {
	query := `INSERT INTO access_grants (id, subject_id, trace_id, bet_id, level, granted_at,
		upgraded_at, expires_at, revoked_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		g.ID, g.SubjectID, g.TraceID, g.BetID, g.Level, g.GrantedAt,
		g.UpgradedAt, g.ExpiresAt, g.RevokedAt, g.Status,
	)
	if err != nil {
		return fmt.Errorf("insert access grant: %w", err)
	}
	return nil
}

// GetActiveByTraceID fetches the trace's ACTIVE grant, or nil, nil.
func (r *GrantRepo) GetActiveByTraceID(ctx context.Context, traceID string) (*domain.AccessGrant, error) {
	query := fmt.Sprintf(`SELECT %s FROM access_grants WHERE trace_id = $1 AND status = 'ACTIVE'`, grantColumns)
	return r.scanGrant(r.pool.QueryRow(ctx, query, traceID))
}

// GetByTraceIDForUpdate locks the trace's most recent grant row inside a
// transaction.
func (r *GrantRepo) GetByTraceIDForUpdate(ctx context.Context, tx pgx.Tx, traceID string) (*domain.AccessGrant, error) {
	query := fmt.Sprintf(`SELECT %s FROM access_grants WHERE trace_id = $1
		ORDER BY granted_at DESC LIMIT 1 FOR UPDATE`, grantColumns)
	return r.scanGrant(tx.QueryRow(ctx, query, traceID))
}

// Upgrade promotes a grant to FULL and clears its expiry.
func (r *GrantRepo) Upgrade(ctx context.Context, tx pgx.Tx, id uuid.UUID, upgradedAt time.Time) error {
	query := `UPDATE access_grants
		SET level = 'FULL', upgraded_at = $1, expires_at = NULL
		WHERE id = $2 AND status = 'ACTIVE'`

	tag, err := tx.Exec(ctx, query, upgradedAt, id)
	if err != nil {
		return fmt.Errorf("upgrade grant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grant not active: %s", id)
	}
	return nil
}

// Revoke applies the ACTIVE PROVISIONAL -> REVOKED transition. The
// conditional update makes concurrent revocations race-free: exactly
// one caller sees a row flip and gets true. A grant upgraded to FULL
// between the caller's read and this write is left untouched.
func (r *GrantRepo) Revoke(ctx context.Context, id uuid.UUID, revokedAt time.Time) (bool, error) {
	query := `UPDATE access_grants
		SET level = 'REVOKED', status = 'REVOKED', revoked_at = $1
		WHERE id = $2 AND status = 'ACTIVE' AND level = 'PROVISIONAL'`

	tag, err := r.pool.Exec(ctx, query, revokedAt, id)
	if err != nil {
		return false, fmt.Errorf("revoke grant: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListBySubject fetches all grants ever issued to a subject, newest first.
func (r *GrantRepo) ListBySubject(ctx context.Context, subjectID string) ([]domain.AccessGrant, error) {
	query := fmt.Sprintf(`SELECT %s FROM access_grants WHERE subject_id = $1 ORDER BY granted_at DESC`, grantColumns)

	rows, err := r.pool.Query(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list grants by subject: %w", err)
	}
	defer rows.Close()
	return r.collectGrants(rows)
}

// ListExpiredProvisional fetches ACTIVE PROVISIONAL grants whose window
// elapsed as of the given instant, oldest first.
func (r *GrantRepo) ListExpiredProvisional(ctx context.Context, asOf time.Time, limit int) ([]domain.AccessGrant, error) {
	query := fmt.Sprintf(`SELECT %s FROM access_grants
		WHERE status = 'ACTIVE' AND level = 'PROVISIONAL' AND expires_at < $1
		ORDER BY expires_at ASC LIMIT $2`, grantColumns)

	rows, err := r.pool.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired grants: %w", err)
	}
	defer rows.Close()
	return r.collectGrants(rows)
}

func (r *GrantRepo) collectGrants(rows pgx.Rows) ([]domain.AccessGrant, error) {
	var grants []domain.AccessGrant
	for rows.Next() {
		var g domain.AccessGrant
		if err := rows.Scan(
			&g.ID, &g.SubjectID, &g.TraceID, &g.BetID, &g.Level, &g.GrantedAt,
			&g.UpgradedAt, &g.ExpiresAt, &g.RevokedAt, &g.Status,
		); err != nil {
			return nil, fmt.Errorf("scan grant row: %w", err)
		}
		grants = append(grants, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grant rows: %w", err)
	}
	return grants, nil
}

func (r *GrantRepo) scanGrant(row pgx.Row) (*domain.AccessGrant, error) {
	g := &domain.AccessGrant{}
	err := row.Scan(
		&g.ID, &g.SubjectID, &g.TraceID, &g.BetID, &g.Level, &g.GrantedAt,
		&g.UpgradedAt, &g.ExpiresAt, &g.RevokedAt, &g.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan grant: %w", err)
	}
	return g, nil
}
