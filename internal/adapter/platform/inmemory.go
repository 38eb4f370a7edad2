package platform

import (
	"context"
	"sync"
	"time"

	"bet-settlement-gateway/internal/core/domain"
	"bet-settlement-gateway/pkg/apperror"
)

// InMemory is a self-contained betting platform used when no platform
// base URL is configured (local development) and by integration tests.
// All operations are safe for concurrent use; balance mutations are
// atomic under the platform lock.
type InMemory struct {
	mu       sync.Mutex
	bets     map[string]*domain.Bet
	markets  map[string]*domain.Market
	balances map[string]int64
	batches  map[string][]string
	backends map[string]string
	subjects map[string]string // payer -> subject id
}

// NewInMemory creates an empty in-memory platform.
func NewInMemory() *InMemory {
	return &InMemory{
		bets:     make(map[string]*domain.Bet),
		markets:  make(map[string]*domain.Market),
		balances: make(map[string]int64),
		batches:  make(map[string][]string),
		backends: make(map[string]string),
		subjects: make(map[string]string),
	}
}

// AddBet seeds a bet and registers it under its market's batch.
func (p *InMemory) AddBet(bet *domain.Bet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := *bet
	p.bets[bet.BetID] = &copied
	if market, ok := p.markets[bet.MarketID]; ok {
		p.batches[market.BatchID] = append(p.batches[market.BatchID], bet.BetID)
	}
}

// AddMarket seeds a market.
func (p *InMemory) AddMarket(market *domain.Market) {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := *market
	p.markets[market.ID] = &copied
}

// SetBalance seeds a subject balance.
func (p *InMemory) SetBalance(subjectID string, amount int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balances[subjectID] = amount
}

// Balance reads a subject balance.
func (p *InMemory) Balance(subjectID string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balances[subjectID]
}

// MapPayer links a payer identity to a subject id.
func (p *InMemory) MapPayer(payer, subjectID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects[payer] = subjectID
}

// SetPreferredBackend overrides a subject's settlement rail.
func (p *InMemory) SetPreferredBackend(subjectID, backend string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.backends[subjectID] = backend
}

func (p *InMemory) GetBet(_ context.Context, betID string) (*domain.Bet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	bet, ok := p.bets[betID]
	if !ok {
		return nil, nil
	}
	copied := *bet
	return &copied, nil
}

func (p *InMemory) GetMarket(_ context.Context, marketID string) (*domain.Market, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	market, ok := p.markets[marketID]
	if !ok {
		return nil, nil
	}
	copied := *market
	return &copied, nil
}

func (p *InMemory) IsMarketOpen(_ context.Context, marketID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	market, ok := p.markets[marketID]
	if !ok {
		return false, nil
	}
	if market.CloseTime == nil {
		return market.Status == "open", nil
	}
	return time.Now().Before(*market.CloseTime), nil
}

func (p *InMemory) BetIDsForBatch(_ context.Context, batchID string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := p.batches[batchID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (p *InMemory) SetBetAccepted(_ context.Context, betID string, level domain.AccessLevel, confirmedAt time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	bet, ok := p.bets[betID]
	if !ok {
		return apperror.ErrBetNotFound(betID)
	}
	bet.Status = domain.BetStatusAccepted
	bet.AccessLevel = level
	bet.ConfirmedAt = &confirmedAt
	return nil
}

func (p *InMemory) SetBetRejected(_ context.Context, betID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	bet, ok := p.bets[betID]
	if !ok {
		return apperror.ErrBetNotFound(betID)
	}
	bet.Status = domain.BetStatusRejected
	bet.AccessLevel = domain.AccessLevelRevoked
	return nil
}

func (p *InMemory) SetAnchorProof(_ context.Context, betID string, root string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	bet, ok := p.bets[betID]
	if !ok {
		return apperror.ErrBetNotFound(betID)
	}
	bet.AnchorProof = &root
	return nil
}

func (p *InMemory) DebitBalance(_ context.Context, subjectID string, amount int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.balances[subjectID] < amount {
		return apperror.ErrInsufficientBalance()
	}
	p.balances[subjectID] -= amount
	return nil
}

func (p *InMemory) CreditBalance(_ context.Context, subjectID string, amount int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balances[subjectID] += amount
	return nil
}

func (p *InMemory) ResolveSubject(_ context.Context, payer string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.subjects[payer], nil
}

func (p *InMemory) PreferredBackend(_ context.Context, subjectID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if backend, ok := p.backends[subjectID]; ok {
		return backend, nil
	}
	return "pix", nil
}
