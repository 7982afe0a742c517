package memory

import (
	"context"
	"sync"
	"time"

	"carv-arcade-service/internal/domain"

	"github.com/google/uuid"
)

// NonceStore is an in-memory implementation of app.NonceRegistry. One live
// nonce per address; issuing a new one invalidates the previous.
type NonceStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu     sync.Mutex
	nonces map[string]storedNonce
}

type storedNonce struct {
	value     string
	expiresAt time.Time
}

func NewNonceStore(ttl time.Duration) *NonceStore {
	return NewNonceStoreWithClock(ttl, time.Now)
}

// NewNonceStoreWithClock allows deterministic expiry in tests.
func NewNonceStoreWithClock(ttl time.Duration, clock func() time.Time) *NonceStore {
	return &NonceStore{
		ttl:    ttl,
		clock:  clock,
		nonces: make(map[string]storedNonce),
	}
}

func (s *NonceStore) Issue(_ context.Context, address string) (string, error) {
	nonce := uuid.NewString()
	s.mu.Lock()
	s.nonces[address] = storedNonce{
		value:     nonce,
		expiresAt: s.clock().Add(s.ttl),
	}
	s.mu.Unlock()
	return nonce, nil
}

// Consume deletes the nonce on success. Failures leave state untouched so a
// caller can distinguish "never issued" from "already used" only by the shared
// invalid-nonce error, which is deliberate: the distinction leaks nothing.
func (s *NonceStore) Consume(_ context.Context, address, nonce string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.nonces[address]
	if !ok || stored.value != nonce || !s.clock().Before(stored.expiresAt) {
		return domain.ErrInvalidNonce
	}
	delete(s.nonces, address)
	return nil
}
