package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReputationRegistryImpl implements ports.ReputationRegistry over the
// append-only validation and feedback logs.
type ReputationRegistryImpl struct {
	repo ports.ReputationRepository
	log  zerolog.Logger
}

// NewReputationRegistry creates a new ReputationRegistryImpl.
func NewReputationRegistry(repo ports.ReputationRepository, log zerolog.Logger) *ReputationRegistryImpl {
	return &ReputationRegistryImpl{repo: repo, log: log}
}

// SubmitValidation appends a validation record and returns its id.
func (s *ReputationRegistryImpl) SubmitValidation(ctx context.Context, traceID, agent, validationType string, metadata map[string]any) (string, error) {
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("marshal validation metadata: %w", err))
	}

	rec := &domain.ValidationRecord{
		ID:             "val-" + uuid.New().String(),
		TraceID:        traceID,
		Agent:          agent,
		ValidationType: validationType,
		Metadata:       metaJSON,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.CreateValidation(ctx, rec); err != nil {
		return "", apperror.InternalError(fmt.Errorf("create validation: %w", err))
	}

	s.log.Info().
		Str("validation_id", rec.ID).
		Str("trace_id", traceID).
		Str("type", validationType).
		Msg("validation submitted")

	return rec.ID, nil
}

// SubmitFeedback appends a feedback record and returns its id. The rating
// must fall in [0, 1].
func (s *ReputationRegistryImpl) SubmitFeedback(ctx context.Context, traceID, agent string, rating float64, feedbackType string, proof map[string]any) (string, error) {
	if rating < 0 || rating > 1 {
		return "", apperror.ErrInvalidRating()
	}

	proofJSON, err := json.Marshal(proof)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("marshal feedback proof: %w", err))
	}

	rec := &domain.FeedbackRecord{
		ID:           "fb-" + uuid.New().String(),
		TraceID:      traceID,
		Agent:        agent,
		Rating:       rating,
		FeedbackType: feedbackType,
		Proof:        proofJSON,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateFeedback(ctx, rec); err != nil {
		return "", apperror.InternalError(fmt.Errorf("create feedback: %w", err))
	}

	s.log.Info().
		Str("feedback_id", rec.ID).
		Str("trace_id", traceID).
		Float64("rating", rating).
		Msg("feedback submitted")

	return rec.ID, nil
}

// ReputationOf aggregates the agent's feedback into a derived reputation
// view. Computed on demand; consistent with the latest SubmitFeedback.
func (s *ReputationRegistryImpl) ReputationOf(ctx context.Context, agent string) (*domain.Reputation, error) {
	feedback, err := s.repo.ListFeedbackByAgent(ctx, agent)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list feedback: %w", err))
	}

	rep := &domain.Reputation{
		Agent:       agent,
		Score:       1.0,
		SuccessRate: 1.0,
	}
	if len(feedback) == 0 {
		return rep, nil
	}

	// Only success and failure records are settlements; dispute filings
	// count separately.
	var ratingSum float64
	for _, fb := range feedback {
		ratingSum += fb.Rating
		switch fb.FeedbackType {
		case domain.FeedbackTypeSuccess:
			rep.TotalSettlements++
			rep.SuccessfulSettlements++
		case domain.FeedbackTypeFailure:
			rep.TotalSettlements++
		case domain.FeedbackTypeDispute:
			rep.RecentDisputes++
		}
	}
	rep.Score = ratingSum / float64(len(feedback))
	rep.SuccessRate = float64(rep.SuccessfulSettlements) / float64(len(feedback))

	return rep, nil
}
