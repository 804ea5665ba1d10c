package game

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/maze-sprint-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor builds a 1-cell-tall maze. Its layout is fully determined: the
// only openings are the east/west walls between consecutive cells.
func corridor(t *testing.T, length int) *maze.DFSMaze {
	t.Helper()
	m, err := maze.New(length, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return m
}

func TestNewSession_Validation(t *testing.T) {
	m := corridor(t, 3)

	t.Run("nil maze", func(t *testing.T) {
		_, err := NewSession(&Config{PlayerID: uuid.New(), Level: 1, Goal: maze.CellPosition{}})
		assert.ErrorIs(t, err, ErrNilMaze)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := NewSession(&Config{PlayerID: uuid.New(), Level: 0, Maze: m, Goal: maze.CellPosition{Row: 0, Col: 2}})
		assert.ErrorIs(t, err, ErrInvalidLevel)
	})

	t.Run("goal out of maze", func(t *testing.T) {
		_, err := NewSession(&Config{PlayerID: uuid.New(), Level: 1, Maze: m, Goal: maze.CellPosition{Row: 1, Col: 0}})
		assert.ErrorIs(t, err, ErrInvalidGoalPosition)
	})
}

func TestSession_BlockedMoveIsNoOp(t *testing.T) {
	m := corridor(t, 3)
	s, err := NewSession(&Config{PlayerID: uuid.New(), Level: 1, Maze: m, Goal: maze.CellPosition{Row: 0, Col: 2}})
	require.NoError(t, err)

	for _, direction := range []string{"North", "South", "West", "Sideways"} {
		moved, won := s.Move(direction)
		assert.False(t, moved)
		assert.False(t, won)
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, s.PlayerPos())
	}
}

func TestSession_WalkToGoal(t *testing.T) {
	m := corridor(t, 3)
	s, err := NewSession(&Config{PlayerID: uuid.New(), Level: 1, Maze: m, Goal: maze.CellPosition{Row: 0, Col: 2}})
	require.NoError(t, err)

	moved, won := s.Move("East")
	assert.True(t, moved)
	assert.False(t, won)
	assert.Equal(t, maze.CellPosition{Row: 0, Col: 1}, s.PlayerPos())

	// Walking back is legal too; the opening is symmetric.
	moved, won = s.Move("West")
	assert.True(t, moved)
	assert.False(t, won)

	_, _ = s.Move("East")
	moved, won = s.Move("East")
	assert.True(t, moved)
	assert.True(t, won)
	assert.True(t, s.Won())
	assert.GreaterOrEqual(t, s.ElapsedSeconds(), int64(0))

	// A finished session ignores further moves and keeps its time.
	elapsed := s.ElapsedSeconds()
	moved, won = s.Move("West")
	assert.False(t, moved)
	assert.True(t, won)
	assert.Equal(t, maze.CellPosition{Row: 0, Col: 2}, s.PlayerPos())
	assert.Equal(t, elapsed, s.ElapsedSeconds())
}

func TestDimensionsForLevel(t *testing.T) {
	_, _, err := DimensionsForLevel(0)
	assert.ErrorIs(t, err, ErrInvalidLevel)

	width, height, err := DimensionsForLevel(1)
	require.NoError(t, err)
	assert.Equal(t, 5, width)
	assert.Equal(t, 5, height)

	width, height, err = DimensionsForLevel(100)
	require.NoError(t, err)
	assert.Equal(t, maxLevelDimension, width)
	assert.Equal(t, maxLevelDimension, height)
}
