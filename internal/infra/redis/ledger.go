package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"carv-arcade-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Ledger keeps balances in a sorted set (score = points, so the leaderboard
// is one ZREVRANGE away) and each address's event history in a list, newest
// first via LPUSH.
//
// Per-address write serialization is the caller's job (the service holds an
// address lock around every mutation); within that, Apply pipelines the
// balance change and the event append so readers see them land together.
type Ledger struct {
	client *redis.Client
}

func NewLedger(client *redis.Client) *Ledger {
	return &Ledger{client: client}
}

const pointsKey = "arcade:points"

func eventsKey(address string) string {
	return "arcade:events:" + address
}

func (l *Ledger) GetOrCreate(ctx context.Context, address string) (domain.Account, error) {
	if err := l.client.ZAddNX(ctx, pointsKey, redis.Z{Score: 0, Member: address}).Err(); err != nil {
		return domain.Account{}, fmt.Errorf("ensure account: %w", err)
	}
	points, err := l.client.ZScore(ctx, pointsKey, address).Result()
	if err != nil {
		return domain.Account{}, fmt.Errorf("read balance: %w", err)
	}
	return domain.Account{Address: address, TotalPoints: int(points)}, nil
}

func (l *Ledger) Apply(ctx context.Context, address string, delta int, event domain.Event) (domain.Account, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return domain.Account{}, fmt.Errorf("marshal event: %w", err)
	}

	pipe := l.client.TxPipeline()
	incr := pipe.ZIncrBy(ctx, pointsKey, float64(delta), address)
	pipe.LPush(ctx, eventsKey(address), payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.Account{}, fmt.Errorf("apply ledger entry: %w", err)
	}
	return domain.Account{Address: address, TotalPoints: int(incr.Val())}, nil
}

func (l *Ledger) Profile(ctx context.Context, address string) (domain.Profile, error) {
	points, err := l.client.ZScore(ctx, pointsKey, address).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Profile{}, domain.ErrAccountNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read balance: %w", err)
	}

	raw, err := l.client.LRange(ctx, eventsKey(address), 0, -1).Result()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read events: %w", err)
	}
	events := make([]domain.Event, 0, len(raw))
	for _, item := range raw {
		var event domain.Event
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			return domain.Profile{}, fmt.Errorf("unmarshal event: %w", err)
		}
		events = append(events, event)
	}
	return domain.Profile{Address: address, TotalPoints: int(points), Events: events}, nil
}

func (l *Ledger) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		return []domain.LeaderboardEntry{}, nil
	}
	members, err := l.client.ZRevRangeWithScores(ctx, pointsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	entries := make([]domain.LeaderboardEntry, 0, len(members))
	for _, member := range members {
		address, _ := member.Member.(string)
		entries = append(entries, domain.LeaderboardEntry{
			Address:     address,
			TotalPoints: int(member.Score),
		})
	}
	return entries, nil
}
