package handler

import (
	"bet-settlement-gateway/internal/adapter/http/dto"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DisputeHandler handles dispute filing and verdict queries.
type DisputeHandler struct {
	resolver ports.DisputeResolver
}

// NewDisputeHandler creates a new DisputeHandler.
func NewDisputeHandler(resolver ports.DisputeResolver) *DisputeHandler {
	return &DisputeHandler{resolver: resolver}
}

// CreateDispute handles POST /api/v1/disputes. Resolution is synchronous;
// the response carries the signed verdict.
func (h *DisputeHandler) CreateDispute(c *gin.Context) {
	var req dto.DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	dispute, err := h.resolver.CreateDispute(c.Request.Context(), req.BetID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dispute)
}

// Validate handles POST /api/v1/bets/:betID/validation, a dry-run verdict
// that files nothing.
func (h *DisputeHandler) Validate(c *gin.Context) {
	result, err := h.resolver.Validate(c.Request.Context(), c.Param("betID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ListForBet handles GET /api/v1/bets/:betID/disputes.
func (h *DisputeHandler) ListForBet(c *gin.Context) {
	disputes, err := h.resolver.DisputesFor(c.Request.Context(), c.Param("betID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, disputes)
}

// ListForBatch handles GET /api/v1/batches/:batchID/disputes.
func (h *DisputeHandler) ListForBatch(c *gin.Context) {
	disputes, err := h.resolver.DisputesForBatch(c.Request.Context(), c.Param("batchID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, disputes)
}
