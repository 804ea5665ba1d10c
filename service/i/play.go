package i

import (
	"github.com/beka-birhanu/maze-sprint-api/game"
	"github.com/google/uuid"
)

// PlayManager owns the active game sessions: it starts levels, applies
// moves, and records results when a player reaches the goal.
type PlayManager interface {
	// StartLevel generates a fresh maze for the level and opens a session
	// for the player, replacing any session they already had.
	StartLevel(playerID uuid.UUID, level int) (*game.Session, error)

	// Move applies a directional move to the player's session. Blocked
	// moves are no-ops, not errors.
	Move(playerID, sessionID uuid.UUID, direction string) (*game.Session, error)

	// Session returns the player's session by ID.
	Session(playerID, sessionID uuid.UUID) (*game.Session, error)
}
