// Package gameapi provides structures and utilities for playing maze levels
// over HTTP.
package gameapi

import (
	"github.com/beka-birhanu/maze-sprint-api/game"
)

// PositionResponse is a cell coordinate in the maze grid.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellResponse carries the wall flags of one maze cell. A move through a
// side is legal iff that side's flag is false.
type CellResponse struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// MoveRequest asks to move the player one cell in a compass direction.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required,oneof=North South East West"`
}

// SessionResponse is the full state of a game session: the maze layout, the
// player and goal positions, and the timer.
type SessionResponse struct {
	SessionID      string           `json:"session_id"`
	Level          int              `json:"level"`
	Width          int              `json:"width"`
	Height         int              `json:"height"`
	Player         PositionResponse `json:"player"`
	Goal           PositionResponse `json:"goal"`
	Cells          [][]CellResponse `json:"cells"`
	Won            bool             `json:"won"`
	ElapsedSeconds int64            `json:"elapsed_seconds"`
}

// MoveResponse is the state change after a move request. Moved is false when
// a wall or the grid edge blocked the move.
type MoveResponse struct {
	Moved          bool             `json:"moved"`
	Won            bool             `json:"won"`
	Player         PositionResponse `json:"player"`
	ElapsedSeconds int64            `json:"elapsed_seconds"`
}

// BestTimeResponse is one persisted best completion time.
type BestTimeResponse struct {
	Level   int   `json:"level"`
	Seconds int64 `json:"seconds"`
}

// LeaderboardEntryResponse is one row of a per-level ranking.
type LeaderboardEntryResponse struct {
	PlayerID string `json:"player_id"`
	Seconds  int64  `json:"seconds"`
}

// newSessionResponse flattens a session into its transport shape. Only wall
// flags leave the maze package; generation-internal state stays internal.
func newSessionResponse(s *game.Session) *SessionResponse {
	width, height := s.Maze().Size()

	cells := make([][]CellResponse, height)
	for row := 0; row < height; row++ {
		cells[row] = make([]CellResponse, width)
		for col := 0; col < width; col++ {
			cell := s.Maze().CellAt(row, col)
			cells[row][col] = CellResponse{
				North: cell.HasNorthWall(),
				South: cell.HasSouthWall(),
				East:  cell.HasEastWall(),
				West:  cell.HasWestWall(),
			}
		}
	}

	playerPos := s.PlayerPos()
	goalPos := s.GoalPos()
	return &SessionResponse{
		SessionID:      s.ID().String(),
		Level:          s.Level(),
		Width:          width,
		Height:         height,
		Player:         PositionResponse{Row: playerPos.Row, Col: playerPos.Col},
		Goal:           PositionResponse{Row: goalPos.Row, Col: goalPos.Col},
		Cells:          cells,
		Won:            s.Won(),
		ElapsedSeconds: s.ElapsedSeconds(),
	}
}
