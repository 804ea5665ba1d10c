package game

import (
	"github.com/beka-birhanu/maze-sprint-api/maze"
)

// Maze defines the methods that a maze must implement for session logic.
type Maze interface {
	// Size returns the maze dimensions as (width, height).
	Size() (int, int)

	// CellAt returns the cell at the given coordinates, or nil when out
	// of bounds.
	CellAt(row, col int) *maze.Cell

	// InBound reports whether the given coordinates fall inside the maze.
	InBound(row, col int) bool

	// NewValidMove builds and validates a move from a position in the
	// given compass direction.
	NewValidMove(from maze.CellPosition, direction string) (maze.Move, error)

	// String provides a textual representation of the maze.
	String() string
}
