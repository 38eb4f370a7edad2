package handler

import (
	"bet-settlement-gateway/internal/adapter/http/dto"
	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// TraceHandler handles trace ledger queries.
type TraceHandler struct {
	traces ports.TraceRegistry
}

// NewTraceHandler creates a new TraceHandler.
func NewTraceHandler(traces ports.TraceRegistry) *TraceHandler {
	return &TraceHandler{traces: traces}
}

// GetTrace handles GET /api/v1/traces/:traceID.
func (h *TraceHandler) GetTrace(c *gin.Context) {
	trace, err := h.traces.GetTrace(c.Request.Context(), c.Param("traceID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTraceResponse(trace))
}

// ListTraces handles GET /api/v1/traces?payer=....
func (h *TraceHandler) ListTraces(c *gin.Context) {
	payer := c.Query("payer")
	if payer == "" {
		response.Error(c, apperror.Validation("payer query parameter is required"))
		return
	}

	traces, err := h.traces.GetTracesByPayer(c.Request.Context(), payer)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.TraceResponse, 0, len(traces))
	for i := range traces {
		out = append(out, toTraceResponse(&traces[i]))
	}
	response.OK(c, out)
}

// VerifySettlement handles GET /api/v1/traces/:traceID/verification.
func (h *TraceHandler) VerifySettlement(c *gin.Context) {
	traceID := c.Param("traceID")
	confirmed, latencyMs, err := h.traces.VerifySettlement(c.Request.Context(), traceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SettlementVerification{
		TraceID:   traceID,
		Confirmed: confirmed,
		LatencyMs: latencyMs,
	})
}

func toTraceResponse(t *domain.PaymentTrace) dto.TraceResponse {
	return dto.TraceResponse{
		TraceID:             t.TraceID,
		Payer:               t.Payer,
		Payee:               t.Payee,
		Amount:              t.Amount,
		Currency:            t.Currency,
		IntentTimestamp:     t.IntentTimestamp,
		SettlementTimestamp: t.SettlementTimestamp,
		SettlementStatus:    string(t.SettlementStatus),
		FiatReferenceHash:   t.FiatReferenceHash,
		LedgerReference:     t.LedgerReference,
		LatencyMs:           t.LatencyMs(),
	}
}
