package maze

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openPairs counts wall openings between adjacent cells, once per pair.
// Horizontal pairs are counted on the west cell's east wall, vertical pairs
// on the north cell's south wall.
func openPairs(m *DFSMaze) int {
	count := 0
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if col+1 < m.Width && !m.Grid[row][col].EastWall {
				count++
			}
			if row+1 < m.Height && !m.Grid[row][col].SouthWall {
				count++
			}
		}
	}
	return count
}

// reachable walks the maze from (0,0) across open walls and returns the set
// of visited positions.
func reachable(m *DFSMaze) map[CellPosition]struct{} {
	visited := map[CellPosition]struct{}{{Row: 0, Col: 0}: {}}
	queue := []CellPosition{{Row: 0, Col: 0}}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		for _, move := range m.neighbors(pos) {
			if !m.IsValidMove(move) {
				continue
			}
			if _, seen := visited[move.To]; seen {
				continue
			}
			visited[move.To] = struct{}{}
			queue = append(queue, move.To)
		}
	}
	return visited
}

func TestNew_RejectsInvalidDimensions(t *testing.T) {
	testCases := []struct {
		width  int
		height int
	}{
		{0, 5},
		{5, 0},
		{-1, 3},
		{3, -1},
		{maxMazeDimenssion + 1, 5},
		{5, maxMazeDimenssion + 1},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%dx%d", tc.width, tc.height), func(t *testing.T) {
			m, err := New(tc.width, tc.height, nil)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestNew_SingleCell(t *testing.T) {
	m, err := New(1, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	cell := m.Grid[0][0]
	assert.True(t, cell.HasNorthWall())
	assert.True(t, cell.HasSouthWall())
	assert.True(t, cell.HasEastWall())
	assert.True(t, cell.HasWestWall())
	assert.Equal(t, 0, openPairs(m))
	assert.Len(t, reachable(m), 1)
}

func TestNew_ProducesPerfectMaze(t *testing.T) {
	testCases := []struct {
		width  int
		height int
	}{
		{1, 1},
		{2, 2},
		{8, 8},
		{12, 7},
		{1, 9},
		{20, 20},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%dx%d", tc.width, tc.height), func(t *testing.T) {
			m, err := New(tc.width, tc.height, rand.New(rand.NewSource(42)))
			require.NoError(t, err)

			// Every cell must be reachable from (0,0).
			visited := reachable(m)
			assert.Len(t, visited, tc.width*tc.height)

			// A spanning tree over w*h cells has exactly w*h-1 edges.
			// Connected with that edge count also means acyclic, so
			// exactly one simple path joins any two cells.
			assert.Equal(t, tc.width*tc.height-1, openPairs(m))

			// Openings must be symmetric across every shared wall.
			for row := 0; row < m.Height; row++ {
				for col := 0; col < m.Width; col++ {
					if col+1 < m.Width {
						assert.Equal(t, m.Grid[row][col].EastWall, m.Grid[row][col+1].WestWall)
					}
					if row+1 < m.Height {
						assert.Equal(t, m.Grid[row][col].SouthWall, m.Grid[row+1][col].NorthWall)
					}
				}
			}

			// Perimeter walls have no neighbor and must never be opened.
			for col := 0; col < m.Width; col++ {
				assert.True(t, m.Grid[0][col].NorthWall)
				assert.True(t, m.Grid[m.Height-1][col].SouthWall)
			}
			for row := 0; row < m.Height; row++ {
				assert.True(t, m.Grid[row][0].WestWall)
				assert.True(t, m.Grid[row][m.Width-1].EastWall)
			}
		})
	}
}

func TestNew_SameSeedReproducesLayout(t *testing.T) {
	first, err := New(8, 8, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	second, err := New(8, 8, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestNew_UnseededCallsStayValid(t *testing.T) {
	for i := 0; i < 5; i++ {
		m, err := New(8, 8, nil)
		require.NoError(t, err)
		assert.Len(t, reachable(m), 64)
		assert.Equal(t, 63, openPairs(m))
	}
}

func TestIsValidMove_RejectsOutOfBound(t *testing.T) {
	m, err := New(4, 4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.False(t, m.IsValidMove(Move{
		From:      CellPosition{Row: 0, Col: 0},
		To:        CellPosition{Row: -1, Col: 0},
		Direction: "North",
	}))
	assert.False(t, m.IsValidMove(Move{
		From:      CellPosition{Row: 3, Col: 3},
		To:        CellPosition{Row: 3, Col: 4},
		Direction: "East",
	}))
	assert.False(t, m.IsValidMove(Move{
		From:      CellPosition{Row: 0, Col: 0},
		To:        CellPosition{Row: 0, Col: 1},
		Direction: "SomewhereElse",
	}))
}

func TestNewValidMove_MatchesWallFlags(t *testing.T) {
	m, err := New(8, 8, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	walls := map[string]func(*Cell) bool{
		"North": (*Cell).HasNorthWall,
		"South": (*Cell).HasSouthWall,
		"East":  (*Cell).HasEastWall,
		"West":  (*Cell).HasWestWall,
	}

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			pos := CellPosition{Row: row, Col: col}
			for dir, hasWall := range walls {
				move, err := m.NewValidMove(pos, dir)
				if hasWall(m.Grid[row][col]) {
					assert.ErrorIs(t, err, ErrInvalidMove)
					continue
				}

				// An open wall always leads to an in-bound
				// neighbor one cell away, and the reciprocal
				// side is open too.
				require.NoError(t, err)
				delta := Directions[dir]
				assert.Equal(t, CellPosition{Row: row + delta.Row, Col: col + delta.Col}, move.To)
				assert.True(t, m.IsValidMove(Move{
					From:      move.To,
					To:        pos,
					Direction: opposite(dir),
				}))
			}
		}
	}
}

func opposite(direction string) string {
	switch direction {
	case "North":
		return "South"
	case "South":
		return "North"
	case "East":
		return "West"
	default:
		return "East"
	}
}
