package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const levelKeyFmt = "leaderboard:level_%d"

// RedisLeaderboard ranks the fastest completions per level in Redis sorted
// sets, keyed by player ID with the best seconds as score.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and TTL.
func NewRedisLeaderboard(client *redis.Client, ttlSeconds int) (i.Leaderboard, error) {
	board := &RedisLeaderboard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Submit records a completion time for a player unless their existing entry
// is already equal or faster. The check-then-set runs under a distributed
// lock since multiple API instances share the same sets.
func (rl *RedisLeaderboard) Submit(ctx context.Context, level int, playerID string, seconds int64) error {
	key := rl.levelKey(level)

	mutex := rl.locker.NewMutex(key + ":submit_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	current, err := rl.client.ZScore(ctx, key, playerID).Result()
	if err == nil && int64(current) <= seconds {
		return nil
	}
	if err != nil && err != redis.Nil {
		return err
	}

	if err := rl.client.ZAdd(ctx, key, redis.Z{Score: float64(seconds), Member: playerID}).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rl.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		_ = rl.client.Expire(ctx, key, rl.ttl).Err()
	}

	return nil
}

// Top returns up to count entries for a level, fastest first.
func (rl *RedisLeaderboard) Top(ctx context.Context, level int, count int64) ([]i.LeaderboardEntry, error) {
	if count <= 0 {
		return nil, nil
	}

	ranked, err := rl.client.ZRangeWithScores(ctx, rl.levelKey(level), 0, count-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.LeaderboardEntry, 0, len(ranked))
	for _, z := range ranked {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, i.LeaderboardEntry{
			PlayerID: member,
			Seconds:  int64(z.Score),
		})
	}

	return entries, nil
}

func (rl *RedisLeaderboard) levelKey(level int) string {
	return fmt.Sprintf(levelKeyFmt, level)
}
