package i

import (
	"context"
)

// LeaderboardEntry is one row of a per-level ranking: a player and their
// fastest completion in whole seconds.
type LeaderboardEntry struct {
	PlayerID string
	Seconds  int64
}

// Leaderboard ranks the fastest completions of each level across all
// players.
type Leaderboard interface {
	// Submit records a completion time for a player unless their existing
	// entry is already equal or faster.
	Submit(ctx context.Context, level int, playerID string, seconds int64) error

	// Top returns up to count entries for a level, fastest first.
	Top(ctx context.Context, level int, count int64) ([]LeaderboardEntry, error)
}
