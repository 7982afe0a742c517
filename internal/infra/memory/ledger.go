package memory

import (
	"context"
	"sort"
	"sync"

	"carv-arcade-service/internal/domain"
)

// Ledger is an in-memory implementation of app.Ledger. It stands in for a
// durable store; swap it out behind the interface without touching protocol
// logic.
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]int
	events   map[string][]domain.Event
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[string]int),
		events:   make(map[string][]domain.Event),
	}
}

func (l *Ledger) GetOrCreate(_ context.Context, address string) (domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.balances[address]; !ok {
		l.balances[address] = 0
	}
	return domain.Account{Address: address, TotalPoints: l.balances[address]}, nil
}

// Apply credits delta and prepends event under one lock, so readers never see
// a balance without its event or vice versa.
func (l *Ledger) Apply(_ context.Context, address string, delta int, event domain.Event) (domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[address] += delta
	l.events[address] = append([]domain.Event{event}, l.events[address]...)
	return domain.Account{Address: address, TotalPoints: l.balances[address]}, nil
}

func (l *Ledger) Profile(_ context.Context, address string) (domain.Profile, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	balance, ok := l.balances[address]
	if !ok {
		return domain.Profile{}, domain.ErrAccountNotFound
	}
	history := make([]domain.Event, len(l.events[address]))
	copy(history, l.events[address])
	return domain.Profile{Address: address, TotalPoints: balance, Events: history}, nil
}

// Leaderboard sorts by points descending; ties break by address so the order
// is stable across calls.
func (l *Ledger) Leaderboard(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	l.mu.RLock()
	entries := make([]domain.LeaderboardEntry, 0, len(l.balances))
	for address, points := range l.balances {
		entries = append(entries, domain.LeaderboardEntry{Address: address, TotalPoints: points})
	}
	l.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].Address < entries[j].Address
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
