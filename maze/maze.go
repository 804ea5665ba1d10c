/*
Package maze provides tools for creating and managing rectangular mazes.

It defines the `DFSMaze` structure, composed of `Cell` objects that track the
wall configuration of each grid position.

Mazes are generated with a randomized depth-first backtracker, which carves a
spanning tree over the cell grid: every cell ends up reachable from every
other through exactly one simple path (a "perfect" maze).

Utility functions enable neighbor detection, move validation, and ASCII
visualization of the maze.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

const (
	maxMazeDimenssion = 64
)

var (
	Directions = map[string]CellPosition{
		"North": {Row: -1, Col: 0},
		"South": {Row: 1, Col: 0},
		"East":  {Row: 0, Col: 1},
		"West":  {Row: 0, Col: -1},
	}

	// directionOrder fixes the neighbor scan order so that a seeded rng
	// reproduces the same layout. Selection among unvisited neighbors is
	// uniform either way.
	directionOrder = []string{"North", "South", "East", "West"}

	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidMove       = errors.New("invalid move request")
)

// DFSMaze represents a rectangular maze consisting of cells with walls.
type DFSMaze struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Grid   [][]*Cell // 2D grid of cells forming the maze, indexed [row][col]
}

// New initializes a new maze of the given dimensions and generates its
// layout. Dimensions must be at least 1x1; a 1x1 maze is valid and keeps all
// four walls. A nil rng wires a time-seeded source; tests pass a fixed seed
// for reproducible layouts.
func New(width, height int, rng *rand.Rand) (*DFSMaze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimenssion {
		return nil, ErrInvalidDimensions
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := make([][]*Cell, height)
	for i := range grid {
		grid[i] = make([]*Cell, width)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	maze := &DFSMaze{
		Width:  width,
		Height: height,
		Grid:   grid,
	}
	maze.generateMaze(rng)
	return maze, nil
}

// Size returns the maze dimensions as (width, height).
func (m *DFSMaze) Size() (int, int) {
	return m.Width, m.Height
}

// CellAt returns the cell at the given coordinates, or nil when out of
// bounds.
func (m *DFSMaze) CellAt(row, col int) *Cell {
	if !m.InBound(row, col) {
		return nil
	}
	return m.Grid[row][col]
}

// InBound reports whether the given coordinates fall inside the maze grid.
func (m *DFSMaze) InBound(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// neighbors finds all valid moves from a given cell position.
func (m *DFSMaze) neighbors(pos CellPosition) []Move {
	var result []Move
	for _, dir := range directionOrder {
		delta := Directions[dir]
		neighbor := CellPosition{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
		if m.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir})
		}
	}
	return result
}

// unvisitedNeighbors finds the moves from a cell whose destination has not
// been visited yet during generation.
func (m *DFSMaze) unvisitedNeighbors(pos CellPosition) []Move {
	var result []Move
	for _, move := range m.neighbors(pos) {
		if !m.Grid[move.To.Row][move.To.Col].visited {
			result = append(result, move)
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells in the specified
// direction. Both sides are cleared in the same call, so openings are always
// symmetric.
func (m *DFSMaze) openWall(move Move) {
	switch move.Direction {
	case "North":
		m.Grid[move.From.Row][move.From.Col].NorthWall = false
		m.Grid[move.To.Row][move.To.Col].SouthWall = false
	case "South":
		m.Grid[move.From.Row][move.From.Col].SouthWall = false
		m.Grid[move.To.Row][move.To.Col].NorthWall = false
	case "East":
		m.Grid[move.From.Row][move.From.Col].EastWall = false
		m.Grid[move.To.Row][move.To.Col].WestWall = false
	case "West":
		m.Grid[move.From.Row][move.From.Col].WestWall = false
		m.Grid[move.To.Row][move.To.Col].EastWall = false
	}
}

// generateMaze carves the maze with a randomized depth-first backtracker.
// Starting from (0,0) it keeps an explicit stack of positions: the top cell
// is inspected without popping, a random unvisited neighbor is connected and
// pushed, and the cell is popped only once no unvisited neighbor remains.
// Every cell is pushed exactly once, so each wall opening joins a new cell to
// the tree and no cycle can form.
func (m *DFSMaze) generateMaze(rng *rand.Rand) {
	start := CellPosition{Row: 0, Col: 0}
	m.Grid[start.Row][start.Col].visited = true
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := m.unvisitedNeighbors(current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		m.openWall(next)
		m.Grid[next.To.Row][next.To.Col].visited = true
		stack = append(stack, next.To)
	}
}

// IsValidMove checks if a move is valid (i.e., the connecting wall is down).
func (m *DFSMaze) IsValidMove(move Move) bool {
	// Ensure both the starting and destination positions are valid.
	if !m.InBound(move.From.Row, move.From.Col) || !m.InBound(move.To.Row, move.To.Col) {
		return false
	}

	// Check the walls based on the direction of the move. Openings are
	// symmetric, so both sides must agree.
	switch move.Direction {
	case "North":
		return !m.Grid[move.From.Row][move.From.Col].NorthWall && !m.Grid[move.To.Row][move.To.Col].SouthWall
	case "South":
		return !m.Grid[move.From.Row][move.From.Col].SouthWall && !m.Grid[move.To.Row][move.To.Col].NorthWall
	case "East":
		return !m.Grid[move.From.Row][move.From.Col].EastWall && !m.Grid[move.To.Row][move.To.Col].WestWall
	case "West":
		return !m.Grid[move.From.Row][move.From.Col].WestWall && !m.Grid[move.To.Row][move.To.Col].EastWall
	default:
		return false
	}
}

// NewValidMove builds the move from a position in the given compass
// direction and validates it against the maze walls. Returns ErrInvalidMove
// when the direction is unknown, the destination is out of bounds, or the
// connecting wall is still up.
func (m *DFSMaze) NewValidMove(from CellPosition, direction string) (Move, error) {
	delta, ok := Directions[direction]
	if !ok {
		return Move{}, ErrInvalidMove
	}

	move := Move{
		From:      from,
		To:        CellPosition{Row: from.Row + delta.Row, Col: from.Col + delta.Col},
		Direction: direction,
	}

	if !m.IsValidMove(move) {
		return Move{}, ErrInvalidMove
	}
	return move, nil
}

// String provides a textual representation of the maze.
func (m *DFSMaze) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.Width) + "\n"

	for row := 0; row < m.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			if cell.EastWall {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
