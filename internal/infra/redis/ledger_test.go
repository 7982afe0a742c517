package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"carv-arcade-service/internal/domain"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return NewLedger(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func spinEvent(id string, delta int) domain.Event {
	return domain.Event{ID: id, Type: domain.EventSpin, Delta: delta, Timestamp: time.Now().UTC()}
}

func TestRedisLedgerApplyAndProfile(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)

	account, err := ledger.GetOrCreate(ctx, "addr-1")
	if err != nil || account.TotalPoints != 0 {
		t.Fatalf("expected zero-balance account, got %+v err=%v", account, err)
	}

	account, err = ledger.Apply(ctx, "addr-1", 8, spinEvent("e1", 8))
	if err != nil || account.TotalPoints != 8 {
		t.Fatalf("apply: %+v err=%v", account, err)
	}
	account, err = ledger.Apply(ctx, "addr-1", -5, spinEvent("e2", -5))
	if err != nil || account.TotalPoints != 3 {
		t.Fatalf("apply: %+v err=%v", account, err)
	}

	profile, err := ledger.Profile(ctx, "addr-1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.TotalPoints != 3 {
		t.Fatalf("expected balance 3, got %d", profile.TotalPoints)
	}
	if len(profile.Events) != 2 || profile.Events[0].ID != "e2" || profile.Events[1].ID != "e1" {
		t.Fatalf("expected newest-first history, got %+v", profile.Events)
	}
	if profile.Events[0].TxHash != nil {
		t.Fatalf("txHash must stay null, got %v", *profile.Events[0].TxHash)
	}
}

func TestRedisLedgerProfileUnknownAddress(t *testing.T) {
	ledger := newTestLedger(t)
	if _, err := ledger.Profile(context.Background(), "nobody"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected account not found, got %v", err)
	}
}

func TestRedisLedgerLeaderboard(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)

	_, _ = ledger.Apply(ctx, "alice", 25, spinEvent("e1", 25))
	_, _ = ledger.Apply(ctx, "bob", 10, spinEvent("e2", 10))
	_, _ = ledger.Apply(ctx, "carol", 10, spinEvent("e3", 10))

	entries, err := ledger.Leaderboard(ctx, 2)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 || entries[0].Address != "alice" || entries[0].TotalPoints != 25 {
		t.Fatalf("unexpected leaderboard %+v", entries)
	}
	if entries[1].TotalPoints != 10 {
		t.Fatalf("expected a 10-point runner-up, got %+v", entries[1])
	}
}
