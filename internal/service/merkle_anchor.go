package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MerkleAnchorImpl implements ports.MerkleAnchor. Each commit snapshots
// an ordered batch of bet records under a single root and stores the
// sibling path for every leaf, so later verification needs only the
// stored proof and the claimed root.
type MerkleAnchorImpl struct {
	merkleRepo ports.MerkleRepository
	transactor ports.DBTransactor
	betting    ports.BettingPlatform
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewMerkleAnchor creates a new MerkleAnchorImpl.
func NewMerkleAnchor(
	merkleRepo ports.MerkleRepository,
	transactor ports.DBTransactor,
	betting ports.BettingPlatform,
	m *metrics.Metrics,
	log zerolog.Logger,
) *MerkleAnchorImpl {
	return &MerkleAnchorImpl{
		merkleRepo: merkleRepo,
		transactor: transactor,
		betting:    betting,
		metrics:    m,
		log:        log,
	}
}

// Commit hashes the batch's bet records in the supplied order, anchors
// the root, and stores one inclusion proof per bet. Committing the same
// ordered ids against unchanged bets reproduces the same root.
func (s *MerkleAnchorImpl) Commit(ctx context.Context, batchID string, betIDs []string) (*domain.MerkleCommit, error) {
	if len(betIDs) == 0 {
		return nil, apperror.ErrEmptyBatch()
	}

	leaves := make([]string, len(betIDs))
	for i, betID := range betIDs {
		bet, err := s.betting.GetBet(ctx, betID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get bet %s: %w", betID, err))
		}
		if bet == nil {
			return nil, apperror.ErrBetNotFound(betID)
		}
		leaves[i] = betLeafHash(bet)
	}

	root, paths := buildMerkleTree(leaves)

	commit := &domain.MerkleCommit{
		ID:              uuid.New(),
		BatchID:         batchID,
		Root:            root,
		BetIDs:          append([]string(nil), betIDs...),
		LedgerReference: newLedgerReference(),
		CreatedAt:       time.Now().UTC(),
	}
	proofs := make([]domain.MerkleProof, len(betIDs))
	for i, betID := range betIDs {
		proofs[i] = domain.MerkleProof{
			BetID:    betID,
			CommitID: commit.ID,
			LeafHash: leaves[i],
			Path:     paths[i],
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.merkleRepo.CreateCommit(ctx, dbTx, commit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create commit: %w", err))
	}
	if err := s.merkleRepo.CreateProofs(ctx, dbTx, proofs); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create proofs: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Stamping the bets is best-effort; the stored proof is authoritative.
	for _, betID := range betIDs {
		if err := s.betting.SetAnchorProof(ctx, betID, root); err != nil {
			s.log.Warn().Err(err).Str("bet_id", betID).Msg("failed to stamp anchor proof on bet")
		}
	}

	s.metrics.IncCommits()
	s.log.Info().
		Str("batch_id", batchID).
		Str("root", root).
		Int("bets", len(betIDs)).
		Msg("merkle batch committed")

	return commit, nil
}

// Verify recomputes the root from the bet's latest stored proof and
// compares it to the claimed root. With no root given it only attests
// that an anchored proof exists.
func (s *MerkleAnchorImpl) Verify(ctx context.Context, betID string, expectedRoot string) (*domain.InclusionResult, error) {
	proof, err := s.merkleRepo.GetLatestProofByBetID(ctx, betID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get proof: %w", err))
	}
	if proof == nil {
		return nil, apperror.ErrProofNotFound(betID)
	}

	computed := foldProof(proof.LeafHash, proof.Path)
	return &domain.InclusionResult{
		Verified: expectedRoot == "" || computed == expectedRoot,
		Root:     computed,
		BetHash:  proof.LeafHash,
	}, nil
}

// CommitsFor lists all commits anchored for a batch, newest first.
func (s *MerkleAnchorImpl) CommitsFor(ctx context.Context, batchID string) ([]domain.MerkleCommit, error) {
	commits, err := s.merkleRepo.ListCommitsByBatch(ctx, batchID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list commits: %w", err))
	}
	return commits, nil
}

// CommitByRoot fetches a commit by its root hash, or nil when unknown.
func (s *MerkleAnchorImpl) CommitByRoot(ctx context.Context, root string) (*domain.MerkleCommit, error) {
	commit, err := s.merkleRepo.GetCommitByRoot(ctx, root)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get commit by root: %w", err))
	}
	return commit, nil
}

// betLeafHash canonicalizes a bet record into its leaf hash. Every field
// that the proof should bind is included; changing any of them after the
// commit breaks verification.
func betLeafHash(bet *domain.Bet) string {
	canonical := fmt.Sprintf("%s|%s|%s|%d|%s|%s|%s",
		bet.BetID,
		bet.SubjectID,
		bet.MarketID,
		bet.Amount,
		strconv.FormatFloat(bet.Odds, 'g', -1, 64),
		bet.PlacedAt.UTC().Format(time.RFC3339Nano),
		bet.Status,
	)
	return sha256Hex(canonical)
}

// buildMerkleTree folds the leaves bottom-up, duplicating the last hash
// on odd-sized levels, and returns the root plus one sibling path per
// leaf.
func buildMerkleTree(leaves []string) (string, [][]domain.ProofStep) {
	paths := make([][]domain.ProofStep, len(leaves))
	// index of each original leaf within the current level
	positions := make([]int, len(leaves))
	for i := range positions {
		positions[i] = i
	}

	level := append([]string(nil), leaves...)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}

		next := make([]string, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, sha256Hex(level[i]+level[i+1]))
		}

		for leaf, pos := range positions {
			sibling := pos ^ 1
			paths[leaf] = append(paths[leaf], domain.ProofStep{
				Hash: level[sibling],
				Left: sibling < pos,
			})
			positions[leaf] = pos / 2
		}
		level = next
	}
	return level[0], paths
}

// foldProof recomputes the root from a leaf and its sibling path.
func foldProof(leaf string, path []domain.ProofStep) string {
	h := leaf
	for _, step := range path {
		if step.Left {
			h = sha256Hex(step.Hash + h)
		} else {
			h = sha256Hex(h + step.Hash)
		}
	}
	return h
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
