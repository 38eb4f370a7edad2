package handler

import (
	"bet-settlement-gateway/internal/adapter/http/dto"
	"bet-settlement-gateway/internal/adapter/http/middleware"
	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/pkg/apperror"
	"bet-settlement-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccessHandler handles grant queries and token-gated outcome reads.
type AccessHandler struct {
	access  ports.AccessController
	betting ports.BettingPlatform
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(access ports.AccessController, betting ports.BettingPlatform) *AccessHandler {
	return &AccessHandler{access: access, betting: betting}
}

// VerifyToken handles GET /api/v1/access/verify. The TokenAuth middleware
// already validated the bearer token; this just echoes the claims.
func (h *AccessHandler) VerifyToken(c *gin.Context) {
	response.OK(c, dto.TokenClaimsResponse{
		SubjectID: c.GetString(middleware.CtxSubjectID),
		TraceID:   c.GetString(middleware.CtxTraceID),
		BetID:     c.GetString(middleware.CtxBetID),
		Level:     string(levelFromCtx(c)),
	})
}

// GetGrant handles GET /api/v1/access/grants/:traceID.
func (h *AccessHandler) GetGrant(c *gin.Context) {
	traceID := c.Param("traceID")
	grant, err := h.access.GrantFor(c.Request.Context(), traceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if grant == nil {
		response.Error(c, apperror.ErrGrantNotFound(traceID))
		return
	}
	response.OK(c, toGrantResponse(grant))
}

// ListGrants handles GET /api/v1/subjects/:subjectID/grants.
func (h *AccessHandler) ListGrants(c *gin.Context) {
	grants, err := h.access.GrantsForSubject(c.Request.Context(), c.Param("subjectID"))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.GrantResponse, 0, len(grants))
	for i := range grants {
		out = append(out, toGrantResponse(&grants[i]))
	}
	response.OK(c, out)
}

// GetBetOutcome handles GET /api/v1/bets/:betID/outcome. The capability
// token must reference the requested bet.
func (h *AccessHandler) GetBetOutcome(c *gin.Context) {
	betID := c.Param("betID")
	if c.GetString(middleware.CtxBetID) != betID {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if levelFromCtx(c) == domain.AccessLevelRevoked {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	bet, err := h.betting.GetBet(c.Request.Context(), betID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if bet == nil {
		response.Error(c, apperror.ErrBetNotFound(betID))
		return
	}

	out := dto.BetOutcomeResponse{
		BetID:       bet.BetID,
		Status:      string(bet.Status),
		AccessLevel: string(bet.AccessLevel),
		ConfirmedAt: bet.ConfirmedAt,
	}
	// Anchor proofs are visible only at FULL level
	if levelFromCtx(c) == domain.AccessLevelFull {
		out.AnchorProof = bet.AnchorProof
	}
	response.OK(c, out)
}

func levelFromCtx(c *gin.Context) domain.AccessLevel {
	if v, ok := c.Get(middleware.CtxLevel); ok {
		if level, ok := v.(domain.AccessLevel); ok {
			return level
		}
	}
	return domain.AccessLevelRevoked
}

func toGrantResponse(g *domain.AccessGrant) dto.GrantResponse {
	return dto.GrantResponse{
		ID:        g.ID.String(),
		SubjectID: g.SubjectID,
		TraceID:   g.TraceID,
		BetID:     g.BetID,
		Level:     string(g.Level),
		Status:    string(g.Status),
		GrantedAt: g.GrantedAt,
		ExpiresAt: g.ExpiresAt,
		RevokedAt: g.RevokedAt,
	}
}
