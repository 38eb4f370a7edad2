package handler

import (
	"bet-settlement-gateway/internal/adapter/http/dto"
	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AnchorHandler handles Merkle batch commits and inclusion verification.
type AnchorHandler struct {
	anchor ports.MerkleAnchor
}

// NewAnchorHandler creates a new AnchorHandler.
func NewAnchorHandler(anchor ports.MerkleAnchor) *AnchorHandler {
	return &AnchorHandler{anchor: anchor}
}

// Commit handles POST /api/v1/anchors.
func (h *AnchorHandler) Commit(c *gin.Context) {
	var req dto.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	commit, err := h.anchor.Commit(c.Request.Context(), req.BatchID, req.BetIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toCommitResponse(commit))
}

// ListCommits handles GET /api/v1/anchors?batch_id=....
func (h *AnchorHandler) ListCommits(c *gin.Context) {
	batchID := c.Query("batch_id")
	if batchID == "" {
		response.Error(c, apperror.Validation("batch_id query parameter is required"))
		return
	}

	commits, err := h.anchor.CommitsFor(c.Request.Context(), batchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.CommitResponse, 0, len(commits))
	for i := range commits {
		out = append(out, toCommitResponse(&commits[i]))
	}
	response.OK(c, out)
}

// GetCommitByRoot handles GET /api/v1/anchors/:root.
func (h *AnchorHandler) GetCommitByRoot(c *gin.Context) {
	root := c.Param("root")
	commit, err := h.anchor.CommitByRoot(c.Request.Context(), root)
	if err != nil {
		response.Error(c, err)
		return
	}
	if commit == nil {
		response.Error(c, apperror.Validation("no commit with root "+root))
		return
	}
	response.OK(c, toCommitResponse(commit))
}

// VerifyInclusion handles POST /api/v1/anchors/verify.
func (h *AnchorHandler) VerifyInclusion(c *gin.Context) {
	var req dto.VerifyInclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.anchor.Verify(c.Request.Context(), req.BetID, req.Root)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

func toCommitResponse(commit *domain.MerkleCommit) dto.CommitResponse {
	return dto.CommitResponse{
		ID:              commit.ID.String(),
		BatchID:         commit.BatchID,
		Root:            commit.Root,
		BetCount:        len(commit.BetIDs),
		LedgerReference: commit.LedgerReference,
		CreatedAt:       commit.CreatedAt,
	}
}
