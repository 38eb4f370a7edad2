package handler

import (
	"bet-settlement-gateway/internal/adapter/http/dto"
	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles the intent and confirmation endpoints.
type SettlementHandler struct {
	orchestrator ports.SettlementOrchestrator
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(orchestrator ports.SettlementOrchestrator) *SettlementHandler {
	return &SettlementHandler{orchestrator: orchestrator}
}

// ProcessIntent handles POST /api/v1/settlements.
func (h *SettlementHandler) ProcessIntent(c *gin.Context) {
	var req dto.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orchestrator.ProcessIntent(c.Request.Context(), ports.IntentRequest{
		Intent: domain.PaymentIntent{
			IntentID:  req.IntentID,
			Payer:     req.Payer,
			Payee:     req.Payee,
			Amount:    req.Amount,
			Currency:  req.Currency,
			Nonce:     req.Nonce,
			Signature: req.Signature,
		},
		SubjectID: req.SubjectID,
		BetID:     req.BetID,
		MarketID:  req.MarketID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 202: dispatch accepted, settlement confirmation is asynchronous
	response.Accepted(c, result)
}

// Confirm handles POST /api/v1/settlements/confirmations, the backend
// webhook. Delivery is at-least-once; repeats return the original result.
func (h *SettlementHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orchestrator.ConfirmSettlement(c.Request.Context(), ports.ConfirmationRequest{
		TraceID:       req.TraceID,
		ExternalTxRef: req.ExternalTxRef,
		Backend:       req.Backend,
		Status:        domain.SettlementStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Status handles GET /api/v1/facilitator/status.
func (h *SettlementHandler) Status(c *gin.Context) {
	status, err := h.orchestrator.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}
