package service

import (
	"context"
	"math/rand"
	"testing"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/beka-birhanu/maze-sprint-api/game"
	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBestTimeRepo struct {
	saved []*dmn.BestTime
}

func (f *fakeBestTimeRepo) SaveIfBetter(bt *dmn.BestTime) (bool, error) {
	f.saved = append(f.saved, bt)
	return true, nil
}

func (f *fakeBestTimeRepo) ByPlayer(uuid.UUID) ([]*dmn.BestTime, error) {
	return f.saved, nil
}

func (f *fakeBestTimeRepo) ByPlayerAndLevel(uuid.UUID, int) (*dmn.BestTime, error) {
	return nil, nil
}

type fakeLeaderboard struct {
	entries []i.LeaderboardEntry
}

func (f *fakeLeaderboard) Submit(_ context.Context, _ int, playerID string, seconds int64) error {
	f.entries = append(f.entries, i.LeaderboardEntry{PlayerID: playerID, Seconds: seconds})
	return nil
}

func (f *fakeLeaderboard) Top(context.Context, int, int64) ([]i.LeaderboardEntry, error) {
	return f.entries, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newTestPlay(t *testing.T) (*Play, *fakeBestTimeRepo, *fakeLeaderboard) {
	t.Helper()

	repo := &fakeBestTimeRepo{}
	board := &fakeLeaderboard{}
	play, err := NewPlayService(&PlayConfig{
		BestTimes:   repo,
		Leaderboard: board,
		MazeFactory: func(width, height int) (game.Maze, error) {
			return maze.New(width, height, rand.New(rand.NewSource(5)))
		},
		Logger: nopLogger{},
	})
	require.NoError(t, err)
	return play, repo, board
}

// solve finds the direction sequence from one cell to another across open
// walls, breadth-first.
func solve(m game.Maze, from, to maze.CellPosition) []string {
	type step struct {
		pos       maze.CellPosition
		direction string
	}
	prev := map[maze.CellPosition]step{from: {}}
	queue := []maze.CellPosition{from}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if pos == to {
			break
		}

		for direction := range maze.Directions {
			move, err := m.NewValidMove(pos, direction)
			if err != nil {
				continue
			}
			if _, seen := prev[move.To]; seen {
				continue
			}
			prev[move.To] = step{pos: pos, direction: direction}
			queue = append(queue, move.To)
		}
	}

	var directions []string
	for at := to; at != from; at = prev[at].pos {
		directions = append([]string{prev[at].direction}, directions...)
	}
	return directions
}

func TestPlay_StartLevel(t *testing.T) {
	play, _, _ := newTestPlay(t)
	playerID := uuid.New()

	t.Run("invalid level", func(t *testing.T) {
		_, err := play.StartLevel(playerID, 0)
		assert.ErrorIs(t, err, game.ErrInvalidLevel)
	})

	t.Run("opens a session at the origin", func(t *testing.T) {
		session, err := play.StartLevel(playerID, 1)
		require.NoError(t, err)
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, session.PlayerPos())
		assert.Equal(t, maze.CellPosition{Row: 4, Col: 4}, session.GoalPos())
		assert.False(t, session.Won())
	})

	t.Run("replaces the previous session", func(t *testing.T) {
		first, err := play.StartLevel(playerID, 1)
		require.NoError(t, err)

		second, err := play.StartLevel(playerID, 2)
		require.NoError(t, err)

		_, err = play.Session(playerID, first.ID())
		assert.ErrorIs(t, err, ErrSessionNotFound)

		found, err := play.Session(playerID, second.ID())
		require.NoError(t, err)
		assert.Equal(t, second.ID(), found.ID())
	})
}

func TestPlay_SessionOwnership(t *testing.T) {
	play, _, _ := newTestPlay(t)
	playerID := uuid.New()

	session, err := play.StartLevel(playerID, 1)
	require.NoError(t, err)

	_, err = play.Session(uuid.New(), session.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = play.Move(uuid.New(), session.ID(), "East")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = play.Move(playerID, uuid.New(), "East")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPlay_BlockedMoveIsNoOp(t *testing.T) {
	play, repo, board := newTestPlay(t)
	playerID := uuid.New()

	session, err := play.StartLevel(playerID, 1)
	require.NoError(t, err)

	// (0,0) is the north-west corner; both of these hit perimeter walls.
	for _, direction := range []string{"North", "West"} {
		moved, err := play.Move(playerID, session.ID(), direction)
		require.NoError(t, err)
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, moved.PlayerPos())
	}

	assert.Empty(t, repo.saved)
	assert.Empty(t, board.entries)
}

func TestPlay_WinningRecordsTime(t *testing.T) {
	play, repo, board := newTestPlay(t)
	playerID := uuid.New()

	session, err := play.StartLevel(playerID, 1)
	require.NoError(t, err)

	directions := solve(session.Maze(), session.PlayerPos(), session.GoalPos())
	require.NotEmpty(t, directions)

	var last *game.Session
	for _, direction := range directions {
		last, err = play.Move(playerID, session.ID(), direction)
		require.NoError(t, err)
	}

	assert.True(t, last.Won())
	assert.Equal(t, last.GoalPos(), last.PlayerPos())

	require.Len(t, repo.saved, 1)
	assert.Equal(t, playerID, repo.saved[0].PlayerID)
	assert.Equal(t, 1, repo.saved[0].Level)
	assert.GreaterOrEqual(t, repo.saved[0].Seconds, int64(0))

	require.Len(t, board.entries, 1)
	assert.Equal(t, playerID.String(), board.entries[0].PlayerID)

	// Finished sessions are dropped.
	_, err = play.Session(playerID, session.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
