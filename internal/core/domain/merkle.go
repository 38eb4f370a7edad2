package domain

import (
	"time"

	"github.com/google/uuid"
)

// MerkleCommit anchors an ordered batch of bet records under a single
// root hash. Immutable once created; re-committing the same ordered
// bet-id set against unchanged bet data yields the same root.
type MerkleCommit struct {
	ID              uuid.UUID `json:"id"`
	BatchID         string    `json:"batch_id"`
	Root            string    `json:"root"`
	BetIDs          []string  `json:"bet_ids"` // Order as supplied
	LedgerReference string    `json:"ledger_reference"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProofStep is one sibling hash in a Merkle inclusion path, folded
// bottom-up. Left indicates the sibling sits left of the running hash.
type ProofStep struct {
	Hash string `json:"hash"`
	Left bool   `json:"left"`
}

// MerkleProof is the stored sibling chain letting a verifier recompute
// the root from a single leaf without the full batch.
type MerkleProof struct {
	BetID    string      `json:"bet_id"`
	CommitID uuid.UUID   `json:"commit_id"`
	LeafHash string      `json:"leaf_hash"`
	Path     []ProofStep `json:"path"`
}

// InclusionResult is the outcome of verifying a bet against a root.
type InclusionResult struct {
	Verified bool   `json:"verified"`
	Root     string `json:"root,omitempty"`
	BetHash  string `json:"bet_hash,omitempty"`
}
