package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bet-settlement-gateway/internal/adapter/http/dto"
	"bet-settlement-gateway/internal/adapter/http/middleware"
	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/internal/core/ports"
	"bet-settlement-gateway/internal/core/ports/mocks"
	"bet-settlement-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, w *httptest.ResponseRecorder, path string, body any) *gin.Context {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Settlement Handler Tests ---

func validIntentRequest() dto.IntentRequest {
	return dto.IntentRequest{
		IntentID:  "intent-001",
		Payer:     "0xPAYER",
		Payee:     "0xPAYEE",
		Amount:    150000,
		Currency:  "BRL",
		Nonce:     1,
		Signature: "0xsig",
		SubjectID: "subject-1",
		BetID:     "bet-001",
		MarketID:  "market-1",
	}
}

func TestProcessIntent_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockSettlementOrchestrator(ctrl)
	h := NewSettlementHandler(mockOrch)

	mockOrch.EXPECT().ProcessIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.IntentRequest) (*ports.IntentResult, error) {
			assert.Equal(t, "intent-001", req.Intent.IntentID)
			assert.Equal(t, "bet-001", req.BetID)
			return &ports.IntentResult{
				TraceID:     "trace-1",
				Status:      "SETTLEMENT_INITIATED",
				AccessLevel: domain.AccessLevelProvisional,
				AccessToken: "token",
			}, nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/settlements", validIntentRequest())
	h.ProcessIntent(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "trace-1", data["trace_id"])
	assert.Equal(t, "SETTLEMENT_INITIATED", data["status"])
	assert.Equal(t, "PROVISIONAL", data["access_level"])
}

func TestProcessIntent_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSettlementHandler(mocks.NewMockSettlementOrchestrator(ctrl))

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/settlements", map[string]any{"payer": "0xPAYER"})
	h.ProcessIntent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessIntent_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockSettlementOrchestrator(ctrl)
	h := NewSettlementHandler(mockOrch)

	mockOrch.EXPECT().ProcessIntent(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientBalance())

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/settlements", validIntentRequest())
	h.ProcessIntent(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SET_001", resp["error_code"])
}

func TestConfirm_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrch := mocks.NewMockSettlementOrchestrator(ctrl)
	h := NewSettlementHandler(mockOrch)

	mockOrch.EXPECT().ConfirmSettlement(gomock.Any(), ports.ConfirmationRequest{
		TraceID:       "trace-1",
		ExternalTxRef: "pix-e2e-123",
		Backend:       "pix",
		Status:        domain.SettlementStatusConfirmed,
	}).Return(&ports.ConfirmationResult{
		TraceID:     "trace-1",
		Status:      "CONFIRMED",
		AccessLevel: domain.AccessLevelFull,
		LatencyMs:   180,
	}, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/settlements/confirmations", dto.ConfirmationRequest{
		TraceID:       "trace-1",
		ExternalTxRef: "pix-e2e-123",
		Backend:       "pix",
		Status:        "CONFIRMED",
	})
	h.Confirm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "FULL", data["access_level"])
}

func TestConfirm_RejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSettlementHandler(mocks.NewMockSettlementOrchestrator(ctrl))

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/settlements/confirmations", dto.ConfirmationRequest{
		TraceID: "trace-1",
		Backend: "pix",
		Status:  "MAYBE",
	})
	h.Confirm(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Trace Handler Tests ---

func TestGetTrace_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTraces := mocks.NewMockTraceRegistry(ctrl)
	h := NewTraceHandler(mockTraces)

	mockTraces.EXPECT().GetTrace(gomock.Any(), "trace-missing").
		Return(nil, apperror.ErrTraceNotFound("trace-missing"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/traces/trace-missing", nil)
	c.Params = gin.Params{{Key: "traceID", Value: "trace-missing"}}
	h.GetTrace(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifySettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTraces := mocks.NewMockTraceRegistry(ctrl)
	h := NewTraceHandler(mockTraces)

	mockTraces.EXPECT().VerifySettlement(gomock.Any(), "trace-1").
		Return(true, int64(180), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/traces/trace-1/verification", nil)
	c.Params = gin.Params{{Key: "traceID", Value: "trace-1"}}
	h.VerifySettlement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["confirmed"])
	assert.Equal(t, float64(180), data["latency_ms"])
}

func TestListTraces_RequiresPayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTraceHandler(mocks.NewMockTraceRegistry(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/traces", nil)
	h.ListTraces(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reputation Handler Tests ---

func TestSubmitFeedback_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRep := mocks.NewMockReputationRegistry(ctrl)
	h := NewReputationHandler(mockRep)

	mockRep.EXPECT().SubmitFeedback(gomock.Any(), "trace-1", "0xFAC", 1.0, "PAYMENT_SETTLEMENT_SUCCESS", gomock.Any()).
		Return("fb-123", nil)

	rating := 1.0
	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/reputation/feedback", dto.FeedbackRequest{
		TraceID:      "trace-1",
		Agent:        "0xFAC",
		Rating:       &rating,
		FeedbackType: "PAYMENT_SETTLEMENT_SUCCESS",
	})
	h.SubmitFeedback(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "fb-123", data["id"])
}

func TestSubmitValidation_RatingBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRep := mocks.NewMockReputationRegistry(ctrl)
	h := NewReputationHandler(mockRep)

	mockRep.EXPECT().SubmitFeedback(gomock.Any(), "trace-1", "0xFAC", 1.5, "X", gomock.Any()).
		Return("", apperror.ErrInvalidRating())

	rating := 1.5
	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/reputation/feedback", dto.FeedbackRequest{
		TraceID:      "trace-1",
		Agent:        "0xFAC",
		Rating:       &rating,
		FeedbackType: "X",
	})
	h.SubmitFeedback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Access Handler Tests ---

func TestGetGrant_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccess := mocks.NewMockAccessController(ctrl)
	h := NewAccessHandler(mockAccess, mocks.NewMockBettingPlatform(ctrl))

	mockAccess.EXPECT().GrantFor(gomock.Any(), "trace-1").Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/access/grants/trace-1", nil)
	c.Params = gin.Params{{Key: "traceID", Value: "trace-1"}}
	h.GetGrant(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetGrant_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccess := mocks.NewMockAccessController(ctrl)
	h := NewAccessHandler(mockAccess, mocks.NewMockBettingPlatform(ctrl))

	now := time.Now().UTC()
	mockAccess.EXPECT().GrantFor(gomock.Any(), "trace-1").Return(&domain.AccessGrant{
		ID:        uuid.New(),
		SubjectID: "subject-1",
		TraceID:   "trace-1",
		BetID:     "bet-001",
		Level:     domain.AccessLevelProvisional,
		GrantedAt: now,
		Status:    domain.GrantStatusActive,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/access/grants/trace-1", nil)
	c.Params = gin.Params{{Key: "traceID", Value: "trace-1"}}
	h.GetGrant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "PROVISIONAL", data["level"])
}

func TestGetBetOutcome_TokenMustMatchBet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAccessHandler(mocks.NewMockAccessController(ctrl), mocks.NewMockBettingPlatform(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/bets/bet-002/outcome", nil)
	c.Params = gin.Params{{Key: "betID", Value: "bet-002"}}
	c.Set(middleware.CtxBetID, "bet-001")
	c.Set(middleware.CtxLevel, domain.AccessLevelFull)
	h.GetBetOutcome(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBetOutcome_ProvisionalHidesAnchorProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBetting := mocks.NewMockBettingPlatform(ctrl)
	h := NewAccessHandler(mocks.NewMockAccessController(ctrl), mockBetting)

	proof := "abc123"
	mockBetting.EXPECT().GetBet(gomock.Any(), "bet-001").Return(&domain.Bet{
		BetID:       "bet-001",
		Status:      domain.BetStatusAccepted,
		AccessLevel: domain.AccessLevelProvisional,
		AnchorProof: &proof,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/bets/bet-001/outcome", nil)
	c.Params = gin.Params{{Key: "betID", Value: "bet-001"}}
	c.Set(middleware.CtxBetID, "bet-001")
	c.Set(middleware.CtxLevel, domain.AccessLevelProvisional)
	h.GetBetOutcome(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "accepted", data["status"])
	_, hasProof := data["anchor_proof"]
	assert.False(t, hasProof)
}

// --- Anchor Handler Tests ---

func TestCommit_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockMerkleAnchor(ctrl)
	h := NewAnchorHandler(mockAnchor)

	mockAnchor.EXPECT().Commit(gomock.Any(), "batch-7", []string{"bet-1", "bet-2"}).
		Return(&domain.MerkleCommit{
			ID:              uuid.New(),
			BatchID:         "batch-7",
			Root:            "roothash",
			BetIDs:          []string{"bet-1", "bet-2"},
			LedgerReference: "0xref",
			CreatedAt:       time.Now().UTC(),
		}, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/anchors", dto.CommitRequest{
		BatchID: "batch-7",
		BetIDs:  []string{"bet-1", "bet-2"},
	})
	h.Commit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "roothash", data["root"])
	assert.Equal(t, float64(2), data["bet_count"])
}

func TestCommit_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockMerkleAnchor(ctrl)
	h := NewAnchorHandler(mockAnchor)

	mockAnchor.EXPECT().Commit(gomock.Any(), "batch-7", []string{}).
		Return(nil, apperror.ErrEmptyBatch())

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/anchors", dto.CommitRequest{
		BatchID: "batch-7",
		BetIDs:  []string{},
	})
	h.Commit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyInclusion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnchor := mocks.NewMockMerkleAnchor(ctrl)
	h := NewAnchorHandler(mockAnchor)

	mockAnchor.EXPECT().Verify(gomock.Any(), "bet-1", "roothash").
		Return(&domain.InclusionResult{Verified: true, Root: "roothash", BetHash: "leaf"}, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/anchors/verify", dto.VerifyInclusionRequest{
		BetID: "bet-1",
		Root:  "roothash",
	})
	h.VerifyInclusion(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["verified"])
}

// --- Dispute Handler Tests ---

func TestCreateDispute_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockDisputeResolver(ctrl)
	h := NewDisputeHandler(mockResolver)

	mockResolver.EXPECT().CreateDispute(gomock.Any(), "bet-001", "settled too late").
		Return(&domain.Dispute{
			ID:     uuid.New(),
			BetID:  "bet-001",
			Reason: "settled too late",
			Status: domain.DisputeStatusResolved,
			Result: domain.ValidationResult{Verdict: domain.VerdictCorrect},
		}, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/disputes", dto.DisputeRequest{
		BetID:  "bet-001",
		Reason: "settled too late",
	})
	h.CreateDispute(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	result := data["result"].(map[string]interface{})
	assert.Equal(t, "CORRECT", result["verdict"])
}

func TestCreateDispute_BetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockDisputeResolver(ctrl)
	h := NewDisputeHandler(mockResolver)

	mockResolver.EXPECT().CreateDispute(gomock.Any(), "bet-x", "r").
		Return(nil, apperror.ErrBetNotFound("bet-x"))

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/disputes", dto.DisputeRequest{BetID: "bet-x", Reason: "r"})
	h.CreateDispute(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Middleware: TokenAuth ---

func TestTokenAuth_RejectsMissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := gin.New()
	r.GET("/protected", middleware.TokenAuth(mocks.NewMockTokenService(ctrl)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuth_SetsClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockToken := mocks.NewMockTokenService(ctrl)
	mockToken.EXPECT().Validate("valid-token").Return(&ports.AccessClaims{
		SubjectID: "subject-1",
		TraceID:   "trace-1",
		BetID:     "bet-001",
		Level:     domain.AccessLevelFull,
	}, nil)

	r := gin.New()
	r.GET("/protected", middleware.TokenAuth(mockToken), func(c *gin.Context) {
		assert.Equal(t, "subject-1", c.GetString(middleware.CtxSubjectID))
		assert.Equal(t, "trace-1", c.GetString(middleware.CtxTraceID))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
