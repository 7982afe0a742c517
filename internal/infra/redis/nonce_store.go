package redis

import (
	"context"
	"fmt"
	"time"

	"carv-arcade-service/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// consumeScript deletes the nonce only when the stored value matches, making
// validate-and-consume a single atomic step server-side.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// NonceStore is a Redis-backed implementation of app.NonceRegistry. Expiry
// rides on the key TTL; SET on issue overwrites any prior nonce for the
// address.
type NonceStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNonceStore(client *redis.Client, ttl time.Duration) *NonceStore {
	return &NonceStore{client: client, ttl: ttl}
}

func (s *NonceStore) Issue(ctx context.Context, address string) (string, error) {
	nonce := uuid.NewString()
	if err := s.client.Set(ctx, s.key(address), nonce, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store nonce: %w", err)
	}
	return nonce, nil
}

func (s *NonceStore) Consume(ctx context.Context, address, nonce string) error {
	deleted, err := consumeScript.Run(ctx, s.client, []string{s.key(address)}, nonce).Int()
	if err != nil {
		return fmt.Errorf("consume nonce: %w", err)
	}
	if deleted == 0 {
		return domain.ErrInvalidNonce
	}
	return nil
}

func (s *NonceStore) key(address string) string {
	return "arcade:nonce:" + address
}
