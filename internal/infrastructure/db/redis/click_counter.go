package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/arcadia/zoo-api/internal/core/ports"
)

// clicksKey is a sorted set: member = animal id, score = click count.
const clicksKey = "zoo:animal_clicks"

// ClickCounter stores per-animal view counts in a Redis sorted set so the
// ranking comes for free.
type ClickCounter struct {
	client *redis.Client
}

func NewClickCounter(client *redis.Client) *ClickCounter {
	return &ClickCounter{client: client}
}

func (c *ClickCounter) Increment(ctx context.Context, animalID int64) error {
	if err := c.client.ZIncrBy(ctx, clicksKey, 1, member(animalID)).Err(); err != nil {
		return fmt.Errorf("increment clicks %d: %w", animalID, err)
	}
	return nil
}

// Count returns 0 for an animal that was never clicked.
func (c *ClickCounter) Count(ctx context.Context, animalID int64) (int64, error) {
	score, err := c.client.ZScore(ctx, clicksKey, member(animalID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("count clicks %d: %w", animalID, err)
	}
	return int64(score), nil
}

func (c *ClickCounter) Top(ctx context.Context, n int) ([]ports.RankedAnimal, error) {
	if n <= 0 {
		return nil, nil
	}

	entries, err := c.client.ZRevRangeWithScores(ctx, clicksKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("top clicks: %w", err)
	}

	out := make([]ports.RankedAnimal, 0, len(entries))
	for _, z := range entries {
		raw, _ := z.Member.(string)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, ports.RankedAnimal{AnimalID: id, Clicks: int64(z.Score)})
	}
	return out, nil
}

// Forget drops the counter of a deleted animal.
func (c *ClickCounter) Forget(ctx context.Context, animalID int64) error {
	return c.client.ZRem(ctx, clicksKey, member(animalID)).Err()
}

func member(animalID int64) string {
	return strconv.FormatInt(animalID, 10)
}
