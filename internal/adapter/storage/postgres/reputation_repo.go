package postgres

import (
	"context"
	"fmt"

	"bet-settlement-gateway/internal/core/domain"
)

// ReputationRepo implements ports.ReputationRepository. Both tables are
// append-only; there are no update or delete statements.
type ReputationRepo struct {
	pool Pool
}

// NewReputationRepo creates a new ReputationRepo.
func NewReputationRepo(pool Pool) *ReputationRepo {
	return &ReputationRepo{pool: pool}
}

// CreateValidation appends a validation record.
func (r *ReputationRepo) CreateValidation(ctx context.Context, rec *domain.ValidationRecord) error {
	query := `INSERT INTO validation_records (id, trace_id, agent, validation_type, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.TraceID, rec.Agent, rec.ValidationType, rec.Metadata, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert validation record: %w", err)
	}
	return nil
}

// CreateFeedback appends a feedback record.
func (r *ReputationRepo) CreateFeedback(ctx context.Context, rec *domain.FeedbackRecord) error {
	query := `INSERT INTO feedback_records (id, trace_id, agent, rating, feedback_type, proof, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.TraceID, rec.Agent, rec.Rating, rec.FeedbackType, rec.Proof, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback record: %w", err)
	}
	return nil
}

// ListFeedbackByAgent fetches all feedback for an agent, oldest first.
func (r *ReputationRepo) ListFeedbackByAgent(ctx context.Context, agent string) ([]domain.FeedbackRecord, error) {
	query := `SELECT id, trace_id, agent, rating, feedback_type, proof, created_at
		FROM feedback_records WHERE agent = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, agent)
	if err != nil {
		return nil, fmt.Errorf("list feedback by agent: %w", err)
	}
	defer rows.Close()

	var records []domain.FeedbackRecord
	for rows.Next() {
		var rec domain.FeedbackRecord
		if err := rows.Scan(
			&rec.ID, &rec.TraceID, &rec.Agent, &rec.Rating, &rec.FeedbackType, &rec.Proof, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback rows: %w", err)
	}
	return records, nil
}
