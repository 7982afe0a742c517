package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"carv-arcade-service/internal/domain"
)

func TestNonceLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewNonceStore(5 * time.Minute)

	nonce, err := store.Issue(ctx, "addr-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := store.Consume(ctx, "addr-1", nonce); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if err := store.Consume(ctx, "addr-1", nonce); !errors.Is(err, domain.ErrInvalidNonce) {
		t.Fatalf("expected invalid nonce on reuse, got %v", err)
	}
}

func TestIssueOverwritesPreviousNonce(t *testing.T) {
	ctx := context.Background()
	store := NewNonceStore(5 * time.Minute)

	first, _ := store.Issue(ctx, "addr-1")
	second, _ := store.Issue(ctx, "addr-1")

	if err := store.Consume(ctx, "addr-1", first); !errors.Is(err, domain.ErrInvalidNonce) {
		t.Fatalf("stale nonce must be unusable, got %v", err)
	}
	if err := store.Consume(ctx, "addr-1", second); err != nil {
		t.Fatalf("fresh nonce must consume: %v", err)
	}
}

func TestNonceExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewNonceStoreWithClock(5*time.Minute, func() time.Time { return now })

	nonce, _ := store.Issue(ctx, "addr-1")

	now = now.Add(5*time.Minute + time.Second)
	if err := store.Consume(ctx, "addr-1", nonce); !errors.Is(err, domain.ErrInvalidNonce) {
		t.Fatalf("expected expired nonce, got %v", err)
	}
}

func TestNoncesAreScopedPerAddress(t *testing.T) {
	ctx := context.Background()
	store := NewNonceStore(5 * time.Minute)

	nonce, _ := store.Issue(ctx, "addr-1")
	if err := store.Consume(ctx, "addr-2", nonce); !errors.Is(err, domain.ErrInvalidNonce) {
		t.Fatalf("nonce must not work for another address, got %v", err)
	}
	if err := store.Consume(ctx, "addr-1", nonce); err != nil {
		t.Fatalf("owner consume failed: %v", err)
	}
}
