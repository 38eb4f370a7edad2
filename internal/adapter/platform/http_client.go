package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bet-settlement-gateway/config"
	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/pkg/apperror"
)

// Client implements ports.BettingPlatform against the betting platform's
// HTTP API. Mutations carry the gateway's write scope; reads are plain
// GETs. A 402 on debit maps to the insufficient-balance error so the
// orchestrator can surface it untranslated.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an HTTP betting platform client.
func NewClient(cfg config.PlatformConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetBet fetches a bet record. Returns nil, nil when the bet is unknown.
func (c *Client) GetBet(ctx context.Context, betID string) (*domain.Bet, error) {
	var bet domain.Bet
	found, err := c.getJSON(ctx, "/bets/"+url.PathEscape(betID), &bet)
	if err != nil || !found {
		return nil, err
	}
	return &bet, nil
}

// GetMarket fetches a market record. Returns nil, nil when unknown.
func (c *Client) GetMarket(ctx context.Context, marketID string) (*domain.Market, error) {
	var market domain.Market
	found, err := c.getJSON(ctx, "/markets/"+url.PathEscape(marketID), &market)
	if err != nil || !found {
		return nil, err
	}
	return &market, nil
}

// IsMarketOpen reports whether the market still accepts bets.
func (c *Client) IsMarketOpen(ctx context.Context, marketID string) (bool, error) {
	var out struct {
		Open bool `json:"open"`
	}
	found, err := c.getJSON(ctx, "/markets/"+url.PathEscape(marketID)+"/open", &out)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return out.Open, nil
}

// BetIDsForBatch lists the finalized bet ids of an event batch.
func (c *Client) BetIDsForBatch(ctx context.Context, batchID string) ([]string, error) {
	var out struct {
		BetIDs []string `json:"bet_ids"`
	}
	found, err := c.getJSON(ctx, "/batches/"+url.PathEscape(batchID)+"/bets", &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return out.BetIDs, nil
}

// SetBetAccepted marks the bet accepted with its access level.
func (c *Client) SetBetAccepted(ctx context.Context, betID string, level domain.AccessLevel, confirmedAt time.Time) error {
	return c.postJSON(ctx, "/bets/"+url.PathEscape(betID)+"/accept", map[string]any{
		"access_level": level,
		"confirmed_at": confirmedAt,
	})
}

// SetBetRejected marks the bet rejected.
func (c *Client) SetBetRejected(ctx context.Context, betID string) error {
	return c.postJSON(ctx, "/bets/"+url.PathEscape(betID)+"/reject", nil)
}

// SetAnchorProof records the Merkle root the bet was anchored under.
func (c *Client) SetAnchorProof(ctx context.Context, betID string, root string) error {
	return c.postJSON(ctx, "/bets/"+url.PathEscape(betID)+"/anchor", map[string]any{
		"root": root,
	})
}

// DebitBalance withdraws the wager from the subject's balance.
func (c *Client) DebitBalance(ctx context.Context, subjectID string, amount int64) error {
	err := c.postJSON(ctx, "/subjects/"+url.PathEscape(subjectID)+"/debit", map[string]any{
		"amount": amount,
	})
	var httpErr *statusError
	if errors.As(err, &httpErr) && httpErr.code == http.StatusPaymentRequired {
		return apperror.ErrInsufficientBalance()
	}
	return err
}

// CreditBalance returns funds to the subject's balance.
func (c *Client) CreditBalance(ctx context.Context, subjectID string, amount int64) error {
	return c.postJSON(ctx, "/subjects/"+url.PathEscape(subjectID)+"/credit", map[string]any{
		"amount": amount,
	})
}

// ResolveSubject maps a payer identity to a subject id, or "".
func (c *Client) ResolveSubject(ctx context.Context, payer string) (string, error) {
	var out struct {
		SubjectID string `json:"subject_id"`
	}
	found, err := c.getJSON(ctx, "/subjects/resolve?payer="+url.QueryEscape(payer), &out)
	if err != nil || !found {
		return "", err
	}
	return out.SubjectID, nil
}

// PreferredBackend returns the subject's preferred settlement rail.
func (c *Client) PreferredBackend(ctx context.Context, subjectID string) (string, error) {
	var out struct {
		Backend string `json:"backend"`
	}
	found, err := c.getJSON(ctx, "/subjects/"+url.PathEscape(subjectID)+"/backend", &out)
	if err != nil {
		return "", err
	}
	if !found {
		return "pix", nil
	}
	return out.Backend, nil
}

type statusError struct {
	code int
	path string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("platform %s: http %d", e.path, e.code)
}

// getJSON returns found=false for a 404 without error.
func (c *Client) getJSON(ctx context.Context, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("platform request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("platform get %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if res.StatusCode >= 300 {
		return false, &statusError{code: res.StatusCode, path: path}
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return false, fmt.Errorf("platform decode %s: %w", path, err)
	}
	return true, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return fmt.Errorf("platform encode %s: %w", path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("platform request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("platform post %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return &statusError{code: res.StatusCode, path: path}
	}
	return nil
}
