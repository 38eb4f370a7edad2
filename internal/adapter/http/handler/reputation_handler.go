package handler

import (
	"bet-settlement-gateway/internal/adapter/http/dto"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReputationHandler handles validation/feedback submission and reputation
// queries.
type ReputationHandler struct {
	reputation ports.ReputationRegistry
}

// NewReputationHandler creates a new ReputationHandler.
func NewReputationHandler(reputation ports.ReputationRegistry) *ReputationHandler {
	return &ReputationHandler{reputation: reputation}
}

// SubmitValidation handles POST /api/v1/reputation/validations.
func (h *ReputationHandler) SubmitValidation(c *gin.Context) {
	var req dto.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	id, err := h.reputation.SubmitValidation(c.Request.Context(), req.TraceID, req.Agent, req.ValidationType, req.Metadata)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.RecordResponse{ID: id})
}

// SubmitFeedback handles POST /api/v1/reputation/feedback.
func (h *ReputationHandler) SubmitFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	id, err := h.reputation.SubmitFeedback(c.Request.Context(), req.TraceID, req.Agent, *req.Rating, req.FeedbackType, req.Proof)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.RecordResponse{ID: id})
}

// GetReputation handles GET /api/v1/reputation/:agent.
func (h *ReputationHandler) GetReputation(c *gin.Context) {
	rep, err := h.reputation.ReputationOf(c.Request.Context(), c.Param("agent"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rep)
}
